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
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies what kind of lexeme a token is.
type Kind byte

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input file.

	Space   // Non-comment contiguous whitespace.
	Comment // A single comment.
	Ident   // An identifier or keyword.
	Str     // A quoted string.
	Num     // A numeric literal.
	Punct   // Punctuation or an operator.
)

// IsSkippable returns whether this is a token that the productions never see
// directly; it is collected as trivia between the elements of a sequence.
func (k Kind) IsSkippable() bool {
	return k == Space || k == Comment
}

// token is a lexeme: a kind and a byte range of the input.
type token struct {
	kind       Kind
	start, end int
}

// puncts is the operator table, longest first so that the lexer can do
// maximal munch by taking the first match.
var puncts = []string{
	"===", "!==", "**=",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "**", "=>", "->", "??",
	";", "{", "}", "(", ")", "[", "]", ",", ".", "=", "<", ">",
	"+", "-", "*", "/", "%", "!", "?", ":", "|", "&", "^", "~", "@", "\\",
}

var (
	errUnterminatedComment = errors.New("block comment never terminates, unexpected EOF")
	errUnterminatedString  = errors.New("string literal never terminates")
	errInvalidUTF8         = errors.New("invalid UTF-8")
)

// lexer splits the input into tokens. Every byte of the input ends up in
// exactly one token, so concatenating the tokens reproduces the input.
type lexer struct {
	text string
	pos  int
	mark int
}

// lexError is a failure to tokenize at a byte offset.
type lexError struct {
	offset int
	err    error
}

func (l *lexer) peek() (rune, int) {
	if l.pos >= len(l.text) {
		return -1, 0
	}
	return utf8.DecodeRuneInString(l.text[l.pos:])
}

func (l *lexer) lex() ([]token, *lexError) {
	var toks []token
	for l.pos < len(l.text) {
		l.mark = l.pos
		kind, err := l.next()
		if err != nil {
			return nil, &lexError{offset: l.mark, err: err}
		}
		toks = append(toks, token{kind: kind, start: l.mark, end: l.pos})
	}
	return toks, nil
}

func (l *lexer) next() (Kind, error) {
	c, size := l.peek()
	rest := l.text[l.pos:]

	switch {
	case c == utf8.RuneError && size == 1:
		return Unrecognized, errInvalidUTF8

	case isSpace(c):
		for isSpace(c) {
			l.pos += size
			c, size = l.peek()
		}
		return Space, nil

	case strings.HasPrefix(rest, "//"):
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			nl = len(rest)
		}
		l.pos += nl
		return Comment, nil

	case strings.HasPrefix(rest, "/*"):
		end := strings.Index(rest[2:], "*/")
		if end < 0 {
			return Unrecognized, errUnterminatedComment
		}
		l.pos += end + 4
		return Comment, nil

	case c == '_' || unicode.IsLetter(c):
		for c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
			l.pos += size
			c, size = l.peek()
		}
		return Ident, nil

	case c >= '0' && c <= '9':
		l.readNumber()
		return Num, nil

	case c == '\'' || c == '"':
		if !l.readString(byte(c)) {
			return Unrecognized, errUnterminatedString
		}
		return Str, nil
	}

	for _, p := range puncts {
		if strings.HasPrefix(rest, p) {
			l.pos += len(p)
			return Punct, nil
		}
	}

	// A single rune the productions will never accept; the parser reports it.
	l.pos += size
	return Unrecognized, nil
}

func (l *lexer) readNumber() {
	rest := l.text[l.pos:]
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X' || rest[1] == 'b' || rest[1] == 'B') {
		l.pos += 2
		for l.pos < len(l.text) && isHexDigit(l.text[l.pos]) {
			l.pos++
		}
		return
	}

	digits := func() {
		for l.pos < len(l.text) && (isDigit(l.text[l.pos]) || l.text[l.pos] == '_') {
			l.pos++
		}
	}
	digits()
	if l.pos+1 < len(l.text) && l.text[l.pos] == '.' && isDigit(l.text[l.pos+1]) {
		l.pos++
		digits()
	}
	if l.pos < len(l.text) && (l.text[l.pos] == 'e' || l.text[l.pos] == 'E') {
		save := l.pos
		l.pos++
		if l.pos < len(l.text) && (l.text[l.pos] == '+' || l.text[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.text) && isDigit(l.text[l.pos]) {
			digits()
		} else {
			l.pos = save
		}
	}
}

func (l *lexer) readString(quote byte) bool {
	l.pos++ // Opening quote.
	for l.pos < len(l.text) {
		switch l.text[l.pos] {
		case '\\':
			l.pos += 2
		case '\n':
			return false
		case quote:
			l.pos++
			return true
		default:
			l.pos++
		}
	}
	return false
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
