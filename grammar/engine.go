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
	"slices"
	"strconv"
	"strings"

	"github.com/NyalephTheCat/LeekwarsParser/reporter"
	"github.com/NyalephTheCat/LeekwarsParser/source"
)

// SyntaxError is returned by [Parse] when the text does not satisfy the
// grammar. It is fatal: no partial tree accompanies it.
type SyntaxError struct {
	Pos reporter.SourcePos
	// Expected lists what the grammar would have accepted at Pos, sorted.
	// Empty for lexical errors.
	Expected []string
	// Found is the offending text at Pos, or empty at end of input.
	Found string

	err error // Lexical error, if that is what this is.
}

var _ reporter.ErrorWithPos = (*SyntaxError)(nil)

// Error implements [error].
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %v", e.Pos, e.Unwrap())
}

// GetPosition implements [reporter.ErrorWithPos].
func (e *SyntaxError) GetPosition() reporter.SourcePos {
	return e.Pos
}

// Unwrap implements [reporter.ErrorWithPos].
func (e *SyntaxError) Unwrap() error {
	if e.err != nil {
		return e.err
	}

	found := "end of input"
	if e.Found != "" {
		found = strconv.Quote(e.Found)
	}
	switch len(e.Expected) {
	case 0:
		return fmt.Errorf("unexpected %s", found)
	case 1:
		return fmt.Errorf("expected %s, found %s", e.Expected[0], found)
	default:
		return fmt.Errorf("expected one of %s, found %s", strings.Join(e.Expected, ", "), found)
	}
}

// Parse parses the contents of file, starting at the given rule, which must
// match the whole file.
//
// Only [Root] admits leading and trailing trivia; other start rules are
// useful for parsing fragments such as a single statement.
func Parse(file *source.File, start Rule) (*Tree, error) {
	m, ok := productions[start]
	if !ok {
		return nil, fmt.Errorf("grammar: %v is not a production", start)
	}

	lx := &lexer{text: file.Text()}
	toks, lexErr := lx.lex()
	if lexErr != nil {
		return nil, &SyntaxError{
			Pos: reporter.PosOf(file, lexErr.offset),
			err: lexErr.err,
		}
	}

	p := &parser{file: file, toks: toks}
	var out []*pnode
	ok = m(p, &out)
	if ok && p.pos != len(p.toks) {
		p.expect(p.pos, "end of input")
		ok = false
	}
	if !ok {
		return nil, p.syntaxError()
	}

	b := NewBuilder(file)
	return b.Build(flatten(b, out[0])), nil
}

// pnode is a node under construction. Backtracking discards pnodes freely;
// only the accepted tree is copied into the arena.
type pnode struct {
	rule       Rule
	start, end int
	children   []*pnode
}

func flatten(b *Builder, n *pnode) ID {
	ids := make([]ID, len(n.children))
	for i, child := range n.children {
		ids[i] = flatten(b, child)
	}
	return b.Push(n.rule, n.start, n.end, ids...)
}

type parser struct {
	file *source.File
	toks []token
	pos  int

	// The farthest token index at which a terminal failed to match, and what
	// was expected there.
	failPos  int
	expected []string
}

// offset returns the byte offset of token i, or the end of the file.
func (p *parser) offset(i int) int {
	if i < len(p.toks) {
		return p.toks[i].start
	}
	return len(p.file.Text())
}

func (p *parser) text(t token) string {
	return p.file.Text()[t.start:t.end]
}

// expect records that name would have been accepted at token index pos.
func (p *parser) expect(pos int, name string) {
	switch {
	case pos > p.failPos:
		p.failPos = pos
		p.expected = append(p.expected[:0], name)
	case pos == p.failPos && !slices.Contains(p.expected, name):
		p.expected = append(p.expected, name)
	}
}

func (p *parser) syntaxError() *SyntaxError {
	err := &SyntaxError{
		Pos:      reporter.PosOf(p.file, p.offset(p.failPos)),
		Expected: slices.Sorted(slices.Values(p.expected)),
	}
	if p.failPos < len(p.toks) {
		err.Found = p.text(p.toks[p.failPos])
	}
	return err
}

// trivia consumes skippable tokens, appending them to out as trivia nodes.
func (p *parser) trivia(out *[]*pnode) {
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		var rule Rule
		switch t.kind {
		case Space:
			rule = WHITESPACE
		case Comment:
			rule = COMMENT
		default:
			return
		}
		*out = append(*out, &pnode{rule: rule, start: t.start, end: t.end})
		p.pos++
	}
}

// matcher is a parsing expression. On success it appends what it matched to
// out and advances the parser. On failure it must leave both untouched.
type matcher func(p *parser, out *[]*pnode) bool

// terminal matches one token satisfying ok, producing a childless node
// tagged rule.
func terminal(rule Rule, name string, ok func(kind Kind, text string) bool) matcher {
	return func(p *parser, out *[]*pnode) bool {
		if p.pos < len(p.toks) {
			t := p.toks[p.pos]
			if ok(t.kind, p.text(t)) {
				*out = append(*out, &pnode{rule: rule, start: t.start, end: t.end})
				p.pos++
				return true
			}
		}
		p.expect(p.pos, name)
		return false
	}
}

// keyword matches the reserved word that is rule's literal.
func keyword(rule Rule) matcher {
	word, _ := rule.Literal()
	return terminal(rule, strconv.Quote(word), func(kind Kind, text string) bool {
		return kind == Ident && text == word
	})
}

// punct matches the punctuation that is rule's literal.
func punct(rule Rule) matcher {
	lit, _ := rule.Literal()
	return terminal(rule, strconv.Quote(lit), func(kind Kind, text string) bool {
		return kind == Punct && text == lit
	})
}

// oneOf matches any token of the given kind whose text is in texts.
func oneOf(rule Rule, kind Kind, texts ...string) matcher {
	return terminal(rule, strings.ToLower(rule.String()), func(k Kind, text string) bool {
		return k == kind && slices.Contains(texts, text)
	})
}

// adjacent matches the longest run of up to three Punct tokens, with no
// trivia between them, whose joined text is in texts. The run becomes a single
// childless node tagged rule.
//
// The lexer never produces "<<" or ">>" so that generic type arguments can
// close back to back; shift operators are put together here instead.
func adjacent(rule Rule, texts ...string) matcher {
	name := strings.ToLower(rule.String())
	return func(p *parser, out *[]*pnode) bool {
		var joined string
		n := 0
		for i := p.pos; i < len(p.toks) && i < p.pos+3; i++ {
			t := p.toks[i]
			if t.kind != Punct || (i > p.pos && p.toks[i-1].end != t.start) {
				break
			}
			joined += p.text(t)
			if slices.Contains(texts, joined) {
				n = i + 1 - p.pos
			}
		}
		if n == 0 {
			p.expect(p.pos, name)
			return false
		}
		start, end := p.toks[p.pos].start, p.toks[p.pos+n-1].end
		*out = append(*out, &pnode{rule: rule, start: start, end: end})
		p.pos += n
		return true
	}
}

// eoi matches the end of input, producing an empty EOI node.
func eoi(p *parser, out *[]*pnode) bool {
	if p.pos != len(p.toks) {
		p.expect(p.pos, "end of input")
		return false
	}
	end := len(p.file.Text())
	*out = append(*out, &pnode{rule: EOI, start: end, end: end})
	return true
}

// rule wraps whatever m matches in a node tagged r.
func rule(r Rule, m matcher) matcher {
	return func(p *parser, out *[]*pnode) bool {
		start := p.pos
		var children []*pnode
		if !m(p, &children) {
			return false
		}
		node := &pnode{rule: r, start: p.offset(start), children: children}
		node.end = node.start
		if p.pos > start {
			node.end = p.toks[p.pos-1].end
		}
		*out = append(*out, node)
		return true
	}
}

// ref defers the lookup of a production, which allows recursive grammars.
func ref(r Rule) matcher {
	return func(p *parser, out *[]*pnode) bool {
		return productions[r](p, out)
	}
}

// seq matches each of ms in order, collecting trivia between them.
//
// Trivia is only kept in front of an element that consumed something; an
// element that matched nothing (an absent optional, an empty repetition, a
// lookahead) leaves the trivia for whatever element comes after it.
func seq(ms ...matcher) matcher {
	return func(p *parser, out *[]*pnode) bool {
		pos, n := p.pos, len(*out)
		for i, m := range ms {
			mark, markN := p.pos, len(*out)
			if i > 0 {
				p.trivia(out)
			}
			after, afterN := p.pos, len(*out)
			if !m(p, out) {
				p.pos, *out = pos, (*out)[:n]
				return false
			}
			if p.pos == after && len(*out) == afterN {
				p.pos, *out = mark, (*out)[:markN]
			}
		}
		return true
	}
}

// choice matches the first of ms that matches.
func choice(ms ...matcher) matcher {
	return func(p *parser, out *[]*pnode) bool {
		for _, m := range ms {
			if m(p, out) {
				return true
			}
		}
		return false
	}
}

// opt matches m if possible, and otherwise matches nothing.
func opt(m matcher) matcher {
	return func(p *parser, out *[]*pnode) bool {
		m(p, out)
		return true
	}
}

// star matches m zero or more times, with trivia in between.
func star(m matcher) matcher {
	return func(p *parser, out *[]*pnode) bool {
		if !m(p, out) {
			return true
		}
		for {
			pos, n := p.pos, len(*out)
			p.trivia(out)
			if !m(p, out) {
				p.pos, *out = pos, (*out)[:n]
				return true
			}
		}
	}
}

// soi matches the start of input without producing a node.
func soi(p *parser, _ *[]*pnode) bool {
	return p.pos == 0
}

// followedBy succeeds without consuming anything iff m would match here.
func followedBy(m matcher) matcher {
	return func(p *parser, out *[]*pnode) bool {
		pos := p.pos
		var scratch []*pnode
		p.trivia(&scratch)
		ok := m(p, &scratch)
		p.pos = pos
		return ok
	}
}
