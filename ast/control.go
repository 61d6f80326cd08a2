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

// IfStatement is an if, with an optional else branch.
type IfStatement struct {
	If        Node[IfKeyword]
	Open      Node[LParen]
	Condition Node[Expression]
	Close     Node[RParen]
	Then      Node[Statement]

	// Else and ElseBody are either both set or both nil.
	Else     *Node[ElseKeyword]
	ElseBody *Node[Statement]

	Semi *Node[Semi]
}

// Emit implements [Emitter].
func (i IfStatement) Emit(s Sink) {
	i.If.Emit(s)
	i.Open.Emit(s)
	i.Condition.Emit(s)
	i.Close.Emit(s)
	i.Then.Emit(s)
	emitOptional(s, i.Else)
	emitOptional(s, i.ElseBody)
	emitOptional(s, i.Semi)
}

func (i *IfStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.IfStatement)
	if err != nil {
		return err
	}

	var out IfStatement
	if out.If, err = wrap[IfKeyword](&inner); err != nil {
		return err
	}
	if out.Open, out.Condition, out.Close, err = condition(&inner); err != nil {
		return err
	}
	if out.Then, err = wrap[Statement](&inner); err != nil {
		return err
	}
	if out.Else, err = wrapOptional[ElseKeyword](&inner); err != nil {
		return err
	}
	if out.Else != nil {
		body, err := wrap[Statement](&inner)
		if err != nil {
			return err
		}
		out.ElseBody = &body
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*i = out
	return nil
}

// WhileStatement is a while loop.
type WhileStatement struct {
	While     Node[WhileKeyword]
	Open      Node[LParen]
	Condition Node[Expression]
	Close     Node[RParen]
	Body      Node[Statement]
}

// Emit implements [Emitter].
func (w WhileStatement) Emit(s Sink) {
	w.While.Emit(s)
	w.Open.Emit(s)
	w.Condition.Emit(s)
	w.Close.Emit(s)
	w.Body.Emit(s)
}

func (w *WhileStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.WhileStatement)
	if err != nil {
		return err
	}

	var out WhileStatement
	if out.While, err = wrap[WhileKeyword](&inner); err != nil {
		return err
	}
	if out.Open, out.Condition, out.Close, err = condition(&inner); err != nil {
		return err
	}
	if out.Body, err = wrap[Statement](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*w = out
	return nil
}

// DoWhileStatement is a do-while loop.
type DoWhileStatement struct {
	Do        Node[DoKeyword]
	Body      Node[Statement]
	While     Node[WhileKeyword]
	Open      Node[LParen]
	Condition Node[Expression]
	Close     Node[RParen]
	Semi      *Node[Semi]
}

// Emit implements [Emitter].
func (d DoWhileStatement) Emit(s Sink) {
	d.Do.Emit(s)
	d.Body.Emit(s)
	d.While.Emit(s)
	d.Open.Emit(s)
	d.Condition.Emit(s)
	d.Close.Emit(s)
	emitOptional(s, d.Semi)
}

func (d *DoWhileStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.DoWhileStatement)
	if err != nil {
		return err
	}

	var out DoWhileStatement
	if out.Do, err = wrap[DoKeyword](&inner); err != nil {
		return err
	}
	if out.Body, err = wrap[Statement](&inner); err != nil {
		return err
	}
	if out.While, err = wrap[WhileKeyword](&inner); err != nil {
		return err
	}
	if out.Open, out.Condition, out.Close, err = condition(&inner); err != nil {
		return err
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*d = out
	return nil
}

// condition matches a parenthesized expression.
func condition(c *Cursor) (lparen Node[LParen], cond Node[Expression], rparen Node[RParen], err error) {
	if lparen, err = wrap[LParen](c); err != nil {
		return
	}
	if cond, err = wrap[Expression](c); err != nil {
		return
	}
	rparen, err = wrap[RParen](c)
	return
}

// ReturnStatement is a return, with an optional value.
type ReturnStatement struct {
	Return Node[ReturnKeyword]
	Value  *Node[Expression]
	Semi   *Node[Semi]
}

// Emit implements [Emitter].
func (r ReturnStatement) Emit(s Sink) {
	r.Return.Emit(s)
	emitOptional(s, r.Value)
	emitOptional(s, r.Semi)
}

func (r *ReturnStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.ReturnStatement)
	if err != nil {
		return err
	}

	var out ReturnStatement
	if out.Return, err = wrap[ReturnKeyword](&inner); err != nil {
		return err
	}
	if out.Value, err = wrapOptional[Expression](&inner); err != nil {
		return err
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*r = out
	return nil
}

// BreakStatement is a break.
type BreakStatement struct {
	Break Node[BreakKeyword]
	Semi  *Node[Semi]
}

// Emit implements [Emitter].
func (b BreakStatement) Emit(s Sink) {
	b.Break.Emit(s)
	emitOptional(s, b.Semi)
}

func (b *BreakStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.BreakStatement)
	if err != nil {
		return err
	}

	var out BreakStatement
	if out.Break, err = wrap[BreakKeyword](&inner); err != nil {
		return err
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*b = out
	return nil
}

// ContinueStatement is a continue.
type ContinueStatement struct {
	Continue Node[ContinueKeyword]
	Semi     *Node[Semi]
}

// Emit implements [Emitter].
func (k ContinueStatement) Emit(s Sink) {
	k.Continue.Emit(s)
	emitOptional(s, k.Semi)
}

func (k *ContinueStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.ContinueStatement)
	if err != nil {
		return err
	}

	var out ContinueStatement
	if out.Continue, err = wrap[ContinueKeyword](&inner); err != nil {
		return err
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*k = out
	return nil
}

// ExpressionStatement is an expression evaluated for its effects.
type ExpressionStatement struct {
	Value Node[Expression]
	Semi  *Node[Semi]
}

// Emit implements [Emitter].
func (e ExpressionStatement) Emit(s Sink) {
	e.Value.Emit(s)
	emitOptional(s, e.Semi)
}

func (e *ExpressionStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.ExpressionStatement)
	if err != nil {
		return err
	}

	var out ExpressionStatement
	if out.Value, err = wrap[Expression](&inner); err != nil {
		return err
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*e = out
	return nil
}
