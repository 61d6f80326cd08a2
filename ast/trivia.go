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

import "fmt"

const (
	TriviaComment TriviaKind = iota + 1
	TriviaWhitespace
)

// TriviaKind distinguishes the two kinds of [Trivia].
type TriviaKind int8

// String implements [fmt.Stringer].
func (k TriviaKind) String() string {
	switch k {
	case TriviaComment:
		return "Comment"
	case TriviaWhitespace:
		return "Whitespace"
	default:
		return fmt.Sprintf("ast.TriviaKind(%d)", int(k))
	}
}

// Trivia is a run of source text with no syntactic meaning: a comment or
// contiguous whitespace. Text is exactly the matched source text.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// Comment returns comment trivia with the given text, delimiters included.
func Comment(text string) Trivia {
	return Trivia{Kind: TriviaComment, Text: text}
}

// Whitespace returns whitespace trivia with the given text.
func Whitespace(text string) Trivia {
	return Trivia{Kind: TriviaWhitespace, Text: text}
}

// IsComment returns whether this is comment trivia.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaComment
}

// String implements [fmt.Stringer].
func (t Trivia) String() string {
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}
