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

import "github.com/NyalephTheCat/LeekwarsParser/grammar"

// Fixed tokens. Each is a zero-size payload that matches a single grammar
// node of its rule, and prints as that rule's fixed text.
type (
	Semi      struct{} // ;
	LBrace    struct{} // {
	RBrace    struct{} // }
	LParen    struct{} // (
	RParen    struct{} // )
	Comma     struct{} // ,
	Equal     struct{} // =
	EndOfFile struct{} // The end of the input; prints as nothing.

	IfKeyword       struct{}
	ElseKeyword     struct{}
	WhileKeyword    struct{}
	DoKeyword       struct{}
	ReturnKeyword   struct{}
	BreakKeyword    struct{}
	ContinueKeyword struct{}
	FunctionKeyword struct{}
	VarKeyword      struct{}
	GlobalKeyword   struct{}
)

func (Semi) Emit(s Sink)      { emitLiteral(s, grammar.Semi) }
func (LBrace) Emit(s Sink)    { emitLiteral(s, grammar.LBrace) }
func (RBrace) Emit(s Sink)    { emitLiteral(s, grammar.RBrace) }
func (LParen) Emit(s Sink)    { emitLiteral(s, grammar.LParen) }
func (RParen) Emit(s Sink)    { emitLiteral(s, grammar.RParen) }
func (Comma) Emit(s Sink)     { emitLiteral(s, grammar.Comma) }
func (Equal) Emit(s Sink)     { emitLiteral(s, grammar.Eq) }
func (EndOfFile) Emit(s Sink) { emitLiteral(s, grammar.EOI) }

func (IfKeyword) Emit(s Sink)       { emitLiteral(s, grammar.If) }
func (ElseKeyword) Emit(s Sink)     { emitLiteral(s, grammar.Else) }
func (WhileKeyword) Emit(s Sink)    { emitLiteral(s, grammar.While) }
func (DoKeyword) Emit(s Sink)       { emitLiteral(s, grammar.Do) }
func (ReturnKeyword) Emit(s Sink)   { emitLiteral(s, grammar.Return) }
func (BreakKeyword) Emit(s Sink)    { emitLiteral(s, grammar.Break) }
func (ContinueKeyword) Emit(s Sink) { emitLiteral(s, grammar.Continue) }
func (FunctionKeyword) Emit(s Sink) { emitLiteral(s, grammar.Function) }
func (VarKeyword) Emit(s Sink)      { emitLiteral(s, grammar.Var) }
func (GlobalKeyword) Emit(s Sink)   { emitLiteral(s, grammar.Global) }

func (*Semi) match(c *Cursor) error      { return leaf(c, grammar.Semi) }
func (*LBrace) match(c *Cursor) error    { return leaf(c, grammar.LBrace) }
func (*RBrace) match(c *Cursor) error    { return leaf(c, grammar.RBrace) }
func (*LParen) match(c *Cursor) error    { return leaf(c, grammar.LParen) }
func (*RParen) match(c *Cursor) error    { return leaf(c, grammar.RParen) }
func (*Comma) match(c *Cursor) error     { return leaf(c, grammar.Comma) }
func (*Equal) match(c *Cursor) error     { return leaf(c, grammar.Eq) }
func (*EndOfFile) match(c *Cursor) error { return leaf(c, grammar.EOI) }

func (*IfKeyword) match(c *Cursor) error       { return leaf(c, grammar.If) }
func (*ElseKeyword) match(c *Cursor) error     { return leaf(c, grammar.Else) }
func (*WhileKeyword) match(c *Cursor) error    { return leaf(c, grammar.While) }
func (*DoKeyword) match(c *Cursor) error       { return leaf(c, grammar.Do) }
func (*ReturnKeyword) match(c *Cursor) error   { return leaf(c, grammar.Return) }
func (*BreakKeyword) match(c *Cursor) error    { return leaf(c, grammar.Break) }
func (*ContinueKeyword) match(c *Cursor) error { return leaf(c, grammar.Continue) }
func (*FunctionKeyword) match(c *Cursor) error { return leaf(c, grammar.Function) }
func (*VarKeyword) match(c *Cursor) error      { return leaf(c, grammar.Var) }
func (*GlobalKeyword) match(c *Cursor) error   { return leaf(c, grammar.Global) }

func leaf(c *Cursor, rule grammar.Rule) error {
	_, err := c.expect(rule)
	return err
}

// Identifier is a name.
type Identifier struct {
	Name string
}

// Emit implements [Emitter].
func (i Identifier) Emit(s Sink) { s.Text(i.Name) }

func (i *Identifier) match(c *Cursor) error {
	node, err := c.expect(grammar.Identifier)
	if err != nil {
		return err
	}
	i.Name = node.Text()
	return nil
}

// Token is a piece of source text inside an [Expression] or
// [TypeAnnotation].
type Token string

// Emit implements [Emitter].
func (t Token) Emit(s Sink) { s.Text(string(t)) }

// Expression is an expression. Its inner structure is not modeled: it is kept
// as the sequence of tokens it was made of, each with the trivia before it.
type Expression struct {
	Tokens []Node[Token]
}

// Emit implements [Emitter].
func (e Expression) Emit(s Sink) {
	for _, tok := range e.Tokens {
		tok.Emit(s)
	}
}

// Text returns the expression's source text, without any trivia.
func (e Expression) Text() string {
	return joinTokens(e.Tokens)
}

func (e *Expression) match(c *Cursor) error {
	node, err := c.expect(grammar.Expression)
	if err != nil {
		return err
	}
	e.Tokens, err = tokens(node)
	return err
}

// TypeAnnotation is a type, such as "integer" or "Array<string> | null". Like
// [Expression], it is kept as a sequence of tokens.
type TypeAnnotation struct {
	Tokens []Node[Token]
}

// Emit implements [Emitter].
func (t TypeAnnotation) Emit(s Sink) {
	for _, tok := range t.Tokens {
		tok.Emit(s)
	}
}

// Text returns the type's source text, without any trivia.
func (t TypeAnnotation) Text() string {
	return joinTokens(t.Tokens)
}

func (t *TypeAnnotation) match(c *Cursor) error {
	node, err := c.expect(grammar.Type)
	if err != nil {
		return err
	}
	t.Tokens, err = tokens(node)
	return err
}

// tokens flattens the leaves of a subtree, in order. Trivia is attached to
// the token after it, or to the last token if none follows.
func tokens(root grammar.Node) ([]Node[Token], error) {
	var (
		out     []Node[Token]
		pending []Trivia
	)
	var walk func(grammar.Node)
	walk = func(n grammar.Node) {
		switch n.Rule() {
		case grammar.COMMENT:
			pending = append(pending, Comment(n.Text()))
			return
		case grammar.WHITESPACE:
			pending = append(pending, Whitespace(n.Text()))
			return
		}

		kids := n.Children()
		if kids.Len() == 0 {
			if text := n.Text(); text != "" {
				out = append(out, Node[Token]{Leading: pending, Value: Token(text)})
				pending = nil
			}
			return
		}
		for i := range kids.Len() {
			walk(kids.At(i))
		}
	}
	walk(root)

	if len(out) == 0 {
		return nil, ErrNoMatch
	}
	out[len(out)-1].Trailing = pending
	return out, nil
}

func joinTokens(toks []Node[Token]) string {
	var n int
	for _, tok := range toks {
		n += len(tok.Value)
	}
	buf := make([]byte, 0, n)
	for _, tok := range toks {
		buf = append(buf, tok.Value...)
	}
	return string(buf)
}
