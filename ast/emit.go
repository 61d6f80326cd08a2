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

import "github.com/NyalephTheCat/LeekwarsParser/grammar"

// Sink receives the pieces of a tree, in source order.
type Sink interface {
	// Text receives the literal text of a token.
	Text(text string)
	// Trivia receives a comment or whitespace run.
	Trivia(trivia Trivia)
}

// Emitter is anything that can replay itself into a [Sink]. Every node and
// payload in this package is an Emitter.
type Emitter interface {
	Emit(sink Sink)
}

func emitTrivia(sink Sink, trivia []Trivia) {
	for _, t := range trivia {
		sink.Trivia(t)
	}
}

func emitLiteral(sink Sink, rule grammar.Rule) {
	if text, _ := rule.Literal(); text != "" {
		sink.Text(text)
	}
}
