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

package ast

import (
	"errors"
	"fmt"

	"github.com/NyalephTheCat/LeekwarsParser/grammar"
	"github.com/NyalephTheCat/LeekwarsParser/reporter"
)

const (
	StatementKindEmpty StatementKind = iota + 1
	StatementKindBlock
	StatementKindReturn
	StatementKindBreak
	StatementKindContinue
	StatementKindWhile
	StatementKindDoWhile
	StatementKindIf
	StatementKindFunction
	StatementKindVariable
	StatementKindExpression
)

// StatementKind is the kind of a [Statement].
type StatementKind int8

// String implements [fmt.Stringer].
func (k StatementKind) String() string {
	switch k {
	case StatementKindEmpty:
		return "Empty"
	case StatementKindBlock:
		return "Block"
	case StatementKindReturn:
		return "Return"
	case StatementKindBreak:
		return "Break"
	case StatementKindContinue:
		return "Continue"
	case StatementKindWhile:
		return "While"
	case StatementKindDoWhile:
		return "DoWhile"
	case StatementKindIf:
		return "If"
	case StatementKindFunction:
		return "Function"
	case StatementKindVariable:
		return "Variable"
	case StatementKindExpression:
		return "Expression"
	default:
		return fmt.Sprintf("ast.StatementKind(%d)", int(k))
	}
}

// Statement is any statement.
//
// It is a closed sum: exactly one of the As* methods returns non-nil,
// selected by [Statement.Kind]. The zero Statement has kind 0 and prints as
// nothing.
type Statement struct {
	kind StatementKind
	ptr  Emitter
}

// Kind returns which kind of statement this is.
func (s Statement) Kind() StatementKind {
	return s.kind
}

// Emit implements [Emitter].
func (s Statement) Emit(sink Sink) {
	if s.ptr != nil {
		s.ptr.Emit(sink)
	}
}

// AsEmpty returns the lone semicolon of an empty statement.
func (s Statement) AsEmpty() *Node[Semi] {
	return as[Semi](s, StatementKindEmpty)
}

// AsBlock returns this statement as a block.
func (s Statement) AsBlock() *Node[BlockStatement] {
	return as[BlockStatement](s, StatementKindBlock)
}

// AsReturn returns this statement as a return.
func (s Statement) AsReturn() *Node[ReturnStatement] {
	return as[ReturnStatement](s, StatementKindReturn)
}

// AsBreak returns this statement as a break.
func (s Statement) AsBreak() *Node[BreakStatement] {
	return as[BreakStatement](s, StatementKindBreak)
}

// AsContinue returns this statement as a continue.
func (s Statement) AsContinue() *Node[ContinueStatement] {
	return as[ContinueStatement](s, StatementKindContinue)
}

// AsWhile returns this statement as a while loop.
func (s Statement) AsWhile() *Node[WhileStatement] {
	return as[WhileStatement](s, StatementKindWhile)
}

// AsDoWhile returns this statement as a do-while loop.
func (s Statement) AsDoWhile() *Node[DoWhileStatement] {
	return as[DoWhileStatement](s, StatementKindDoWhile)
}

// AsIf returns this statement as an if.
func (s Statement) AsIf() *Node[IfStatement] {
	return as[IfStatement](s, StatementKindIf)
}

// AsFunction returns this statement as a function declaration.
func (s Statement) AsFunction() *Node[FunctionDeclaration] {
	return as[FunctionDeclaration](s, StatementKindFunction)
}

// AsVariable returns this statement as a variable declaration.
func (s Statement) AsVariable() *Node[VariableDeclaration] {
	return as[VariableDeclaration](s, StatementKindVariable)
}

// AsExpression returns this statement as an expression statement.
func (s Statement) AsExpression() *Node[ExpressionStatement] {
	return as[ExpressionStatement](s, StatementKindExpression)
}

func as[T Emitter](s Statement, kind StatementKind) *Node[T] {
	if s.kind != kind {
		return nil
	}
	return s.ptr.(*Node[T])
}

// statementParser builds one kind of statement from a cursor over the
// children of a Statement grammar node.
type statementParser func(c *Cursor) (Statement, error)

// statementTable maps the rule of a Statement's first meaningful child to
// the parser for that kind of statement. Statement kinds are added here and
// nowhere else.
var statementTable map[grammar.Rule]statementParser

func init() {
	statementTable = map[grammar.Rule]statementParser{
		grammar.Semi:                variant[Semi](StatementKindEmpty),
		grammar.BlockStatement:      variant[BlockStatement](StatementKindBlock),
		grammar.ReturnStatement:     variant[ReturnStatement](StatementKindReturn),
		grammar.BreakStatement:      variant[BreakStatement](StatementKindBreak),
		grammar.ContinueStatement:   variant[ContinueStatement](StatementKindContinue),
		grammar.WhileStatement:      variant[WhileStatement](StatementKindWhile),
		grammar.DoWhileStatement:    variant[DoWhileStatement](StatementKindDoWhile),
		grammar.IfStatement:         variant[IfStatement](StatementKindIf),
		grammar.FunctionDeclaration: variant[FunctionDeclaration](StatementKindFunction),
		grammar.VariableDeclaration: variant[VariableDeclaration](StatementKindVariable),
		grammar.ExpressionStatement: variant[ExpressionStatement](StatementKindExpression),
	}
}

func variant[T Emitter, P payload[T]](kind StatementKind) statementParser {
	return func(c *Cursor) (Statement, error) {
		node, err := wrap[T, P](c)
		if err != nil {
			return Statement{}, err
		}
		return Statement{kind: kind, ptr: &node}, nil
	}
}

func (s *Statement) match(c *Cursor) error {
	inner, err := c.descend(grammar.Statement)
	if err != nil {
		return err
	}

	head := inner.Peek()
	if head.IsZero() {
		return ErrNoMatch
	}

	var stmt Statement
	if parse, ok := statementTable[head.Rule()]; ok {
		stmt, err = parse(&inner)
	} else {
		stmt, err = statementTable[grammar.ExpressionStatement](&inner)
		if errors.Is(err, ErrNoMatch) {
			pos := reporter.PosOf(head.Tree().File(), head.Span().Start)
			return reporter.Errorf(pos, "%w: %v", ErrStatementUnrecognized, head.Rule())
		}
	}
	if err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*s = stmt
	return nil
}
