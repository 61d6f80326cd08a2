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

// Cursor walks the children of a grammar node.
//
// A Cursor is a small value. Copying one forks it: the copy can be advanced
// speculatively and either committed by assigning it back, or dropped, which
// leaves the original where it was.
type Cursor struct {
	kids grammar.Children
	idx  int
}

// NewCursor returns a cursor over the children of node.
func NewCursor(node grammar.Node) Cursor {
	return Cursor{kids: node.Children()}
}

// Done returns whether every child has been consumed.
func (c *Cursor) Done() bool {
	return c.idx >= c.kids.Len()
}

// PeekSkippable returns the next child without consuming it, which may be
// trivia. Returns the zero node if the cursor is done.
func (c *Cursor) PeekSkippable() grammar.Node {
	return c.kids.At(c.idx)
}

// NextSkippable consumes and returns the next child, which may be trivia.
func (c *Cursor) NextSkippable() grammar.Node {
	node := c.PeekSkippable()
	if !node.IsZero() {
		c.idx++
	}
	return node
}

// Peek returns the next child that is not trivia, without consuming
// anything. Returns the zero node if only trivia remains.
func (c *Cursor) Peek() grammar.Node {
	for i := c.idx; i < c.kids.Len(); i++ {
		if node := c.kids.At(i); !node.Rule().IsTrivia() {
			return node
		}
	}
	return grammar.Node{}
}

// Next consumes the next non-trivia child, and returns it.
//
// Any trivia skipped along the way is lost; callers that care about it
// should call [Cursor.Trivia] first.
func (c *Cursor) Next() grammar.Node {
	for !c.Done() {
		if node := c.NextSkippable(); !node.Rule().IsTrivia() {
			return node
		}
	}
	return grammar.Node{}
}

// Trivia consumes the run of trivia children at the cursor.
func (c *Cursor) Trivia() []Trivia {
	var out []Trivia
	for {
		node := c.PeekSkippable()
		switch node.Rule() {
		case grammar.COMMENT:
			out = append(out, Comment(node.Text()))
		case grammar.WHITESPACE:
			out = append(out, Whitespace(node.Text()))
		default:
			return out
		}
		c.idx++
	}
}

// RestIsTrivia returns whether everything left to consume is trivia. This is
// vacuously true when the cursor is done.
func (c *Cursor) RestIsTrivia() bool {
	return c.Peek().IsZero()
}

// expect consumes the next child if it was produced by rule. The cursor must
// be positioned on a non-trivia child.
func (c *Cursor) expect(rule grammar.Rule) (grammar.Node, error) {
	node := c.PeekSkippable()
	if node.IsZero() || node.Rule() != rule {
		return grammar.Node{}, ErrNoMatch
	}
	c.idx++
	return node, nil
}

// descend consumes the next child if it was produced by rule, and returns a
// cursor over its children.
func (c *Cursor) descend(rule grammar.Rule) (Cursor, error) {
	node, err := c.expect(rule)
	if err != nil {
		return Cursor{}, err
	}
	return NewCursor(node), nil
}

// finish reports whether a composite consumed all of its children. Leftover
// children would not be printed, so a composite that leaves any does not
// match.
func (c *Cursor) finish() error {
	if !c.Done() {
		return ErrNoMatch
	}
	return nil
}
