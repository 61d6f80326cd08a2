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
	"fmt"

	"github.com/NyalephTheCat/LeekwarsParser/grammar"
	"github.com/NyalephTheCat/LeekwarsParser/reporter"
)

// Program is a whole LeekScript file.
type Program struct {
	Statements []Node[Statement]
	End        Node[EndOfFile]
}

// Emit implements [Emitter].
func (p *Program) Emit(s Sink) {
	for _, stmt := range p.Statements {
		stmt.Emit(s)
	}
	p.End.Emit(s)
}

// Convert builds a Program from the parse tree of a whole file.
//
// Errors carry the position at which conversion stopped, and wrap either
// [ErrNoMatch] or [ErrStatementUnrecognized].
func Convert(tree *grammar.Tree) (*Program, error) {
	root := tree.Root()
	if root.Rule() != grammar.Root {
		return nil, errorAt(root, fmt.Errorf("%w: expected %v, found %v", ErrNoMatch, grammar.Root, root.Rule()))
	}

	var (
		prog Program
		err  error
	)
	c := NewCursor(root)
	if prog.Statements, err = wrapAll[Statement](&c); err != nil {
		return nil, err
	}
	if prog.End, err = wrap[EndOfFile](&c); err != nil {
		return nil, errorAt(c.Peek(), fmt.Errorf("%w: cannot convert %v", err, c.Peek().Rule()))
	}
	if !c.Done() {
		return nil, errorAt(c.Peek(), fmt.Errorf("%w: %v after end of input", ErrNoMatch, c.Peek().Rule()))
	}
	return &prog, nil
}

func errorAt(node grammar.Node, err error) error {
	if node.IsZero() {
		return err
	}
	return reporter.Error(reporter.PosOf(node.Tree().File(), node.Span().Start), err)
}
