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

	"github.com/NyalephTheCat/LeekwarsParser/grammar"
)

// FunctionDeclaration declares a named function.
type FunctionDeclaration struct {
	Function   Node[FunctionKeyword]
	Name       Node[Identifier]
	Open       Node[LParen]
	Parameters *Node[Parameters]
	Close      Node[RParen]
	Body       Node[BlockStatement]
	Semi       *Node[Semi]
}

// Emit implements [Emitter].
func (f FunctionDeclaration) Emit(s Sink) {
	f.Function.Emit(s)
	f.Name.Emit(s)
	f.Open.Emit(s)
	emitOptional(s, f.Parameters)
	f.Close.Emit(s)
	f.Body.Emit(s)
	emitOptional(s, f.Semi)
}

func (f *FunctionDeclaration) match(c *Cursor) error {
	inner, err := c.descend(grammar.FunctionDeclaration)
	if err != nil {
		return err
	}

	var out FunctionDeclaration
	if out.Function, err = wrap[FunctionKeyword](&inner); err != nil {
		return err
	}
	if out.Name, err = wrap[Identifier](&inner); err != nil {
		return err
	}
	if out.Open, err = wrap[LParen](&inner); err != nil {
		return err
	}
	if out.Parameters, err = wrapOptional[Parameters](&inner); err != nil {
		return err
	}
	if out.Close, err = wrap[RParen](&inner); err != nil {
		return err
	}
	if out.Body, err = wrap[BlockStatement](&inner); err != nil {
		return err
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*f = out
	return nil
}

// Parameters is a comma-separated, non-empty list of parameters.
//
// Commas holds the separators: Commas[i] sits between List[i] and
// List[i+1], so there is always one fewer comma than parameters.
type Parameters struct {
	List   []Node[Parameter]
	Commas []Node[Comma]
}

// Emit implements [Emitter].
func (p Parameters) Emit(s Sink) {
	for i, param := range p.List {
		if i > 0 {
			p.Commas[i-1].Emit(s)
		}
		param.Emit(s)
	}
}

func (p *Parameters) match(c *Cursor) error {
	inner, err := c.descend(grammar.Parameters)
	if err != nil {
		return err
	}

	var out Parameters
	for {
		param, err := wrap[Parameter](&inner)
		if errors.Is(err, ErrNoMatch) {
			break
		} else if err != nil {
			return err
		}
		out.List = append(out.List, param)

		comma, err := wrap[Comma](&inner)
		if errors.Is(err, ErrNoMatch) {
			break
		} else if err != nil {
			return err
		}
		out.Commas = append(out.Commas, comma)
	}
	if len(out.List) == 0 || len(out.Commas) != len(out.List)-1 {
		return ErrNoMatch
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*p = out
	return nil
}

// Parameter is a function parameter, optionally typed.
type Parameter struct {
	Type *Node[TypeAnnotation]
	Name Node[Identifier]
}

// Emit implements [Emitter].
func (p Parameter) Emit(s Sink) {
	emitOptional(s, p.Type)
	p.Name.Emit(s)
}

func (p *Parameter) match(c *Cursor) error {
	inner, err := c.descend(grammar.Parameter)
	if err != nil {
		return err
	}

	var out Parameter
	if out.Type, err = wrapOptional[TypeAnnotation](&inner); err != nil {
		return err
	}
	if out.Name, err = wrap[Identifier](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*p = out
	return nil
}
