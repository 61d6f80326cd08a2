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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	t.Parallel()

	type tok struct {
		Kind Kind
		Text string
	}

	tests := []struct {
		name string
		text string
		want []tok
	}{
		{name: "empty"},
		{
			name: "space",
			text: " \t\r\n",
			want: []tok{{Space, " \t\r\n"}},
		},
		{
			name: "comments",
			text: "// line\n/* block\n */",
			want: []tok{{Comment, "// line"}, {Space, "\n"}, {Comment, "/* block\n */"}},
		},
		{
			name: "identifiers",
			text: "if _x2 données",
			want: []tok{{Ident, "if"}, {Space, " "}, {Ident, "_x2"}, {Space, " "}, {Ident, "données"}},
		},
		{
			name: "numbers",
			text: "0 12.5 1e10 0xFF 0b101 1_000",
			want: []tok{
				{Num, "0"}, {Space, " "}, {Num, "12.5"}, {Space, " "}, {Num, "1e10"}, {Space, " "},
				{Num, "0xFF"}, {Space, " "}, {Num, "0b101"}, {Space, " "}, {Num, "1_000"},
			},
		},
		{
			name: "strings",
			text: `'a' "b\"c"`,
			want: []tok{{Str, `'a'`}, {Space, " "}, {Str, `"b\"c"`}},
		},
		{
			name: "maximal munch",
			text: "a===b**=c",
			want: []tok{{Ident, "a"}, {Punct, "==="}, {Ident, "b"}, {Punct, "**="}, {Ident, "c"}},
		},
		{
			name: "generic close",
			text: "Array<Array<int>>",
			want: []tok{
				{Ident, "Array"}, {Punct, "<"}, {Ident, "Array"}, {Punct, "<"},
				{Ident, "int"}, {Punct, ">"}, {Punct, ">"},
			},
		},
		{
			name: "garbage",
			text: "#",
			want: []tok{{Unrecognized, "#"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			lx := &lexer{text: test.text}
			toks, err := lx.lex()
			require.Nil(t, err)

			var got []tok
			var text strings.Builder
			for _, tk := range toks {
				got = append(got, tok{tk.kind, test.text[tk.start:tk.end]})
				text.WriteString(test.text[tk.start:tk.end])
			}
			assert.Equal(t, test.want, got)
			assert.Equal(t, test.text, text.String())
		})
	}
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		offset int
		err    error
	}{
		{text: "a /* b", offset: 2, err: errUnterminatedComment},
		{text: "x = 'abc", offset: 4, err: errUnterminatedString},
		{text: "x = \"a\nb\"", offset: 4, err: errUnterminatedString},
		{text: "x\xff", offset: 1, err: errInvalidUTF8},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			lx := &lexer{text: test.text}
			_, err := lx.lex()
			require.NotNil(t, err)
			assert.Equal(t, test.offset, err.offset)
			assert.ErrorIs(t, err.err, test.err)
		})
	}
}
