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

// Package printer renders syntax trees back into source text.
//
// With [DefaultOptions], printing is the inverse of parsing: the output is
// byte-for-byte the text the tree was built from. Other options transform
// trivia only; tokens are always printed as they were parsed.
package printer

import (
	"io"
	"strings"

	"github.com/NyalephTheCat/LeekwarsParser/ast"
)

// Print renders a node, with its trivia, to text.
func Print(options Options, node ast.Emitter) string {
	var out strings.Builder
	node.Emit(&printer{options: options.withDefaults(), out: &out})
	return out.String()
}

// Fprint is like [Print], but writes to w.
func Fprint(w io.Writer, options Options, node ast.Emitter) error {
	_, err := io.WriteString(w, Print(options, node))
	return err
}

// printer is an [ast.Sink] that applies [Options] to trivia.
type printer struct {
	options Options
	out     *strings.Builder
}

func (p *printer) Text(text string) {
	p.out.WriteString(text)
}

func (p *printer) Trivia(t ast.Trivia) {
	switch {
	case t.IsComment():
		if p.options.KeepComments {
			p.out.WriteString(t.Text)
		}
	case p.options.SimplifyWhitespace:
		p.out.WriteString(SimplifyWhitespace(t.Text))
	default:
		p.out.WriteString(t.Text)
	}
}
