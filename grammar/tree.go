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
	"strings"

	"github.com/NyalephTheCat/LeekwarsParser/internal/ext/slicesx"
	"github.com/NyalephTheCat/LeekwarsParser/source"
)

// ID is the index of a node within its [Tree].
type ID int32

// Tree is a parse tree produced by [Parse] or a [Builder].
//
// Nodes live in a single arena and refer to their children by [ID]; a tree is
// immutable once built.
type Tree struct {
	file  *source.File
	nodes []rawNode
	kids  []ID
	root  ID
}

type rawNode struct {
	rule         Rule
	start, end   int
	first, count int32 // Range of this node's children within Tree.kids.
}

// File returns the file this tree was parsed from.
func (t *Tree) File() *source.File {
	return t.file
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return t.Node(t.root)
}

// Node returns the node with the given ID.
//
// Returns the zero Node if id is out of range.
func (t *Tree) Node(id ID) Node {
	if t == nil || slicesx.GetPointer(t.nodes, id) == nil {
		return Node{}
	}
	return Node{tree: t, id: id}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// String renders the tree one node per line, indented by depth, the way a
// grammar debugger would show it.
func (t *Tree) String() string {
	var b strings.Builder
	var walk func(Node, int)
	walk = func(n Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "- %v: %q\n", n.Rule(), n.Text())
		kids := n.Children()
		for i := range kids.Len() {
			walk(kids.At(i), depth+1)
		}
	}
	walk(t.Root(), 0)
	return b.String()
}

// Node is a node of a parse tree: a rule tag, the span of text the rule
// matched, and the ordered children it matched along the way.
//
// Node is a handle; copying it is cheap and it compares equal to any other
// handle to the same node.
type Node struct {
	tree *Tree
	id   ID
}

// IsZero returns whether this is the zero Node, which refers to nothing.
func (n Node) IsZero() bool {
	return n.tree == nil
}

// ID returns this node's index in its tree.
func (n Node) ID() ID {
	return n.id
}

// Tree returns the tree this node belongs to.
func (n Node) Tree() *Tree {
	return n.tree
}

func (n Node) raw() *rawNode {
	if n.IsZero() {
		return nil
	}
	return &n.tree.nodes[n.id]
}

// Rule returns the rule that produced this node. The zero Node has rule
// [Unknown].
func (n Node) Rule() Rule {
	if n.IsZero() {
		return Unknown
	}
	return n.raw().rule
}

// Span returns the range of source text this node matched.
func (n Node) Span() source.Span {
	if n.IsZero() {
		return source.Span{}
	}
	raw := n.raw()
	return n.tree.file.Span(raw.start, raw.end)
}

// Text returns the source text this node matched.
func (n Node) Text() string {
	if n.IsZero() {
		return ""
	}
	return n.Span().Text()
}

// Children returns this node's children, in source order.
func (n Node) Children() Children {
	if n.IsZero() {
		return Children{}
	}
	raw := n.raw()
	return Children{
		tree: n.tree,
		ids:  n.tree.kids[raw.first : raw.first+raw.count],
	}
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	if n.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%v@%v", n.Rule(), n.Span())
}

// Children is a read-only view over the children of a [Node].
type Children struct {
	tree *Tree
	ids  []ID
}

// Len returns the number of children.
func (c Children) Len() int {
	return len(c.ids)
}

// At returns the i-th child.
//
// Returns the zero Node if i is out of range.
func (c Children) At(i int) Node {
	id, ok := slicesx.Get(c.ids, i)
	if !ok {
		return Node{}
	}
	return Node{tree: c.tree, id: id}
}

// Builder assembles a [Tree] bottom-up: children must be pushed before the
// node that contains them.
//
// Parsers other than [Parse] can use a Builder to produce trees that the
// rest of this module accepts.
type Builder struct {
	tree *Tree
}

// NewBuilder returns a builder for a tree over the given file.
func NewBuilder(file *source.File) *Builder {
	return &Builder{tree: &Tree{file: file}}
}

// Push adds a node that matched text[start:end] with the given, already
// pushed, children. Returns the new node's ID.
//
// Panics if the span is out of bounds for the file or if a child ID does not
// refer to an existing node.
func (b *Builder) Push(rule Rule, start, end int, children ...ID) ID {
	if start < 0 || end < start || end > len(b.tree.file.Text()) {
		panic(fmt.Sprintf("grammar: span [%d:%d] out of bounds for %q", start, end, b.tree.file.Path()))
	}
	for _, child := range children {
		if int(child) >= len(b.tree.nodes) || child < 0 {
			panic(fmt.Sprintf("grammar: child %d pushed after its parent", child))
		}
	}

	first := len(b.tree.kids)
	b.tree.kids = append(b.tree.kids, children...)
	b.tree.nodes = append(b.tree.nodes, rawNode{
		rule:  rule,
		start: start,
		end:   end,
		first: int32(first),
		count: int32(len(children)),
	})
	return ID(len(b.tree.nodes) - 1)
}

// Build finishes the tree with the given root. The builder must not be used
// afterwards.
func (b *Builder) Build(root ID) *Tree {
	tree := b.tree
	b.tree = nil
	tree.root = root
	return tree
}
