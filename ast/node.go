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

import "errors"

// Node is a payload together with the trivia around it.
//
// Leading is the trivia between the previous sibling (or the start of the
// enclosing sequence) and this node. Trailing is only non-empty when this
// node is the last meaningful element of its enclosing sequence and trivia
// follows it there.
type Node[T Emitter] struct {
	Leading  []Trivia
	Value    T
	Trailing []Trivia
}

// Emit implements [Emitter].
func (n Node[T]) Emit(sink Sink) {
	emitTrivia(sink, n.Leading)
	n.Value.Emit(sink)
	emitTrivia(sink, n.Trailing)
}

// payload is implemented by pointers to types that can be matched against a
// cursor. match is called with the cursor on the payload's first meaningful
// child and consumes what it matched. The cursor is discarded if it fails.
type payload[T any] interface {
	*T
	Emitter
	match(c *Cursor) error
}

// wrap matches a T at the cursor, attaching the trivia around it.
//
// On failure the cursor is left where it was and the zero Node is returned;
// a failed match never produces a partial node.
func wrap[T Emitter, P payload[T]](c *Cursor) (Node[T], error) {
	fork := *c
	var node Node[T]
	node.Leading = fork.Trivia()
	if err := P(&node.Value).match(&fork); err != nil {
		return Node[T]{}, err
	}
	if fork.RestIsTrivia() {
		node.Trailing = fork.Trivia()
	}
	*c = fork
	return node, nil
}

// wrapOptional is like wrap, but treats [ErrNoMatch] as absence. Any other
// error is returned as is.
func wrapOptional[T Emitter, P payload[T]](c *Cursor) (*Node[T], error) {
	node, err := wrap[T, P](c)
	switch {
	case errors.Is(err, ErrNoMatch):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return &node, nil
}

// wrapAll matches Ts until one fails to match.
func wrapAll[T Emitter, P payload[T]](c *Cursor) ([]Node[T], error) {
	var out []Node[T]
	for {
		node, err := wrap[T, P](c)
		switch {
		case errors.Is(err, ErrNoMatch):
			return out, nil
		case err != nil:
			return nil, err
		}
		out = append(out, node)
	}
}

// emitOptional emits n if it is present.
func emitOptional[T Emitter](sink Sink, n *Node[T]) {
	if n != nil {
		n.Emit(sink)
	}
}
