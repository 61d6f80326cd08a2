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
)

// VariableDeclaration declares a variable, optionally initializing it.
type VariableDeclaration struct {
	Keyword Node[VarDeclKeyword]
	Name    Node[Identifier]

	// Equal and Value are either both set or both nil.
	Equal *Node[Equal]
	Value *Node[Expression]

	Semi *Node[Semi]
}

// Emit implements [Emitter].
func (v VariableDeclaration) Emit(s Sink) {
	v.Keyword.Emit(s)
	v.Name.Emit(s)
	emitOptional(s, v.Equal)
	emitOptional(s, v.Value)
	emitOptional(s, v.Semi)
}

func (v *VariableDeclaration) match(c *Cursor) error {
	inner, err := c.descend(grammar.VariableDeclaration)
	if err != nil {
		return err
	}

	var out VariableDeclaration
	if out.Keyword, err = wrap[VarDeclKeyword](&inner); err != nil {
		return err
	}
	if out.Name, err = wrap[Identifier](&inner); err != nil {
		return err
	}
	if out.Equal, err = wrapOptional[Equal](&inner); err != nil {
		return err
	}
	if out.Equal != nil {
		value, err := wrap[Expression](&inner)
		if err != nil {
			return err
		}
		out.Value = &value
	}
	if out.Semi, err = wrapOptional[Semi](&inner); err != nil {
		return err
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*v = out
	return nil
}

const (
	VarDeclKindLocal VarDeclKind = iota + 1
	VarDeclKindGlobal
)

// VarDeclKind is the kind of a [VarDeclKeyword].
type VarDeclKind int8

// String implements [fmt.Stringer].
func (k VarDeclKind) String() string {
	switch k {
	case VarDeclKindLocal:
		return "Local"
	case VarDeclKindGlobal:
		return "Global"
	default:
		return fmt.Sprintf("ast.VarDeclKind(%d)", int(k))
	}
}

// VarDeclKeyword introduces a variable declaration: either a local
// declaration ("var" or a type) or "global" with an optional type.
//
// Like [Statement], it is a closed sum selected by [VarDeclKeyword.Kind].
type VarDeclKeyword struct {
	kind VarDeclKind
	ptr  Emitter
}

// Kind returns which kind of declaration this is.
func (k VarDeclKeyword) Kind() VarDeclKind {
	return k.kind
}

// Emit implements [Emitter].
func (k VarDeclKeyword) Emit(s Sink) {
	if k.ptr != nil {
		k.ptr.Emit(s)
	}
}

// AsLocal returns this keyword as a local declaration.
func (k VarDeclKeyword) AsLocal() *Node[VarDec] {
	if k.kind != VarDeclKindLocal {
		return nil
	}
	return k.ptr.(*Node[VarDec])
}

// AsGlobal returns this keyword as a global declaration.
func (k VarDeclKeyword) AsGlobal() *Node[GlobalDecl] {
	if k.kind != VarDeclKindGlobal {
		return nil
	}
	return k.ptr.(*Node[GlobalDecl])
}

func (k *VarDeclKeyword) match(c *Cursor) error {
	inner, err := c.descend(grammar.VarDeclKeyword)
	if err != nil {
		return err
	}

	var out VarDeclKeyword
	switch inner.Peek().Rule() {
	case grammar.VarDec:
		node, err := wrap[VarDec](&inner)
		if err != nil {
			return err
		}
		out = VarDeclKeyword{kind: VarDeclKindLocal, ptr: &node}
	case grammar.Global:
		node, err := wrap[GlobalDecl](&inner)
		if err != nil {
			return err
		}
		out = VarDeclKeyword{kind: VarDeclKindGlobal, ptr: &node}
	default:
		return ErrNoMatch
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*k = out
	return nil
}

// VarDec is the keyword of a local declaration: exactly one of Var and Type
// is set.
type VarDec struct {
	Var  *Node[VarKeyword]
	Type *Node[TypeAnnotation]
}

// Emit implements [Emitter].
func (v VarDec) Emit(s Sink) {
	emitOptional(s, v.Var)
	emitOptional(s, v.Type)
}

func (v *VarDec) match(c *Cursor) error {
	inner, err := c.descend(grammar.VarDec)
	if err != nil {
		return err
	}

	var out VarDec
	switch inner.Peek().Rule() {
	case grammar.Var:
		node, err := wrap[VarKeyword](&inner)
		if err != nil {
			return err
		}
		out.Var = &node
	case grammar.Type:
		node, err := wrap[TypeAnnotation](&inner)
		if err != nil {
			return err
		}
		out.Type = &node
	default:
		return ErrNoMatch
	}
	if err := inner.finish(); err != nil {
		return err
	}

	*v = out
	return nil
}

// GlobalDecl is the keyword of a global declaration, with an optional type.
type GlobalDecl struct {
	Global Node[GlobalKeyword]
	Type   *Node[TypeAnnotation]
}

// Emit implements [Emitter].
func (g GlobalDecl) Emit(s Sink) {
	g.Global.Emit(s)
	emitOptional(s, g.Type)
}

// match consumes the keyword and the type, which are siblings within their
// VarDeclKeyword.
func (g *GlobalDecl) match(c *Cursor) error {
	var (
		out GlobalDecl
		err error
	)
	if out.Global, err = wrap[GlobalKeyword](c); err != nil {
		return err
	}
	if out.Type, err = wrapOptional[TypeAnnotation](c); err != nil {
		return err
	}

	*g = out
	return nil
}
