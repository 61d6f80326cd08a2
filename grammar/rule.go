// Copyright 2025-2026 The LeekwarsParser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grammar

import (
	"fmt"

	"github.com/NyalephTheCat/LeekwarsParser/internal/ext/slicesx"
)

// Rule is the tag of a node in a parse tree: the name of the production
// that produced it.
type Rule int16

const (
	Unknown Rule = iota

	Root
	EOI
	WHITESPACE
	COMMENT

	Statement
	BlockStatement
	ReturnStatement
	BreakStatement
	ContinueStatement
	WhileStatement
	DoWhileStatement
	IfStatement
	ForStatement
	ForInit
	FunctionDeclaration
	Parameters
	Parameter
	VariableDeclaration
	VarDeclKeyword
	VarDec
	ExpressionStatement

	Expression
	Operand
	Operator
	Arguments
	Index
	Member
	ParenExpression
	ArrayLiteral
	Identifier
	Number
	String
	Literal

	Type
	TypeAtom
	TypeArguments

	// Keywords.
	If
	Else
	While
	Do
	For
	In
	Function
	Return
	Break
	Continue
	Var
	Global

	// Punctuation.
	Semi
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Comma
	Dot
	Eq
	Question
	Colon
	Pipe
	Lt
	Gt

	ruleCount
)

var ruleNames = [...]string{
	Unknown:             "Unknown",
	Root:                "Root",
	EOI:                 "EOI",
	WHITESPACE:          "WHITESPACE",
	COMMENT:             "COMMENT",
	Statement:           "Statement",
	BlockStatement:      "BlockStatement",
	ReturnStatement:     "ReturnStatement",
	BreakStatement:      "BreakStatement",
	ContinueStatement:   "ContinueStatement",
	WhileStatement:      "WhileStatement",
	DoWhileStatement:    "DoWhileStatement",
	IfStatement:         "IfStatement",
	ForStatement:        "ForStatement",
	ForInit:             "ForInit",
	FunctionDeclaration: "FunctionDeclaration",
	Parameters:          "Parameters",
	Parameter:           "Parameter",
	VariableDeclaration: "VariableDeclaration",
	VarDeclKeyword:      "VarDeclKeyword",
	VarDec:              "VarDec",
	ExpressionStatement: "ExpressionStatement",
	Expression:          "Expression",
	Operand:             "Operand",
	Operator:            "Operator",
	Arguments:           "Arguments",
	Index:               "Index",
	Member:              "Member",
	ParenExpression:     "ParenExpression",
	ArrayLiteral:        "ArrayLiteral",
	Identifier:          "Identifier",
	Number:              "Number",
	String:              "String",
	Literal:             "Literal",
	Type:                "Type",
	TypeAtom:            "TypeAtom",
	TypeArguments:       "TypeArguments",
	If:                  "If",
	Else:                "Else",
	While:               "While",
	Do:                  "Do",
	For:                 "For",
	In:                  "In",
	Function:            "Function",
	Return:              "Return",
	Break:               "Break",
	Continue:            "Continue",
	Var:                 "Var",
	Global:              "Global",
	Semi:                "Semi",
	LBrace:              "LBrace",
	RBrace:              "RBrace",
	LParen:              "LParen",
	RParen:              "RParen",
	LBracket:            "LBracket",
	RBracket:            "RBracket",
	Comma:               "Comma",
	Dot:                 "Dot",
	Eq:                  "Eq",
	Question:            "Question",
	Colon:               "Colon",
	Pipe:                "Pipe",
	Lt:                  "Lt",
	Gt:                  "Gt",
}

// literals holds the fixed text of every rule that always matches the same
// text. Rules absent from this table match variable text.
var literals = map[Rule]string{
	If:       "if",
	Else:     "else",
	While:    "while",
	Do:       "do",
	For:      "for",
	In:       "in",
	Function: "function",
	Return:   "return",
	Break:    "break",
	Continue: "continue",
	Var:      "var",
	Global:   "global",
	Semi:     ";",
	LBrace:   "{",
	RBrace:   "}",
	LParen:   "(",
	RParen:   ")",
	LBracket: "[",
	RBracket: "]",
	Comma:    ",",
	Dot:      ".",
	Eq:       "=",
	Question: "?",
	Colon:    ":",
	Pipe:     "|",
	Lt:       "<",
	Gt:       ">",
	EOI:      "",
}

// keywords are the words that can never be identifiers.
var keywords = map[string]struct{}{
	"if": {}, "else": {}, "while": {}, "do": {}, "for": {}, "in": {},
	"function": {}, "return": {}, "break": {}, "continue": {},
	"var": {}, "global": {}, "true": {}, "false": {}, "null": {},
}

// String implements [fmt.Stringer].
func (r Rule) String() string {
	if name, ok := slicesx.Get(ruleNames[:], r); ok && name != "" {
		return name
	}
	return fmt.Sprintf("grammar.Rule(%d)", int(r))
}

// Literal returns the fixed text that this rule always matches, if it has
// one. EOI has the empty literal.
func (r Rule) Literal() (text string, ok bool) {
	text, ok = literals[r]
	return text, ok
}

// IsTrivia returns whether this rule tags skipped text: whitespace and
// comments.
func (r Rule) IsTrivia() bool {
	return r == WHITESPACE || r == COMMENT
}

// IsKeyword returns whether word is reserved and thus not an identifier.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}
