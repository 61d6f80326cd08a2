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

// BlockStatement is a braced list of statements.
type BlockStatement struct {
	Open       Node[LBrace]
	Statements []Node[Statement]
	Close      Node[RBrace]
}

// Emit implements [Emitter].
func (b BlockStatement) Emit(s Sink) {
	b.Open.Emit(s)
	for _, stmt := range b.Statements {
		stmt.Emit(s)
	}
	b.Close.Emit(s)
}

func (b *BlockStatement) match(c *Cursor) error {
	inner, err := c.descend(grammar.BlockStatement)
	if err != nil {
		return err
	}

	var out BlockStatement
	if out.Open, err = wrap[LBrace](&inner); err != nil {
		return err
	}
	if out.Statements, err = wrapAll[Statement](&inner); err != nil {
		return err
	}
	if out.Close, err = wrap[RBrace](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*b = out
	return nil
}
