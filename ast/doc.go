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

// Package ast defines a lossless syntax tree for LeekScript.
//
// Trees are built from a [grammar.Tree] by [Convert]. Every node of the tree
// is a [Node], which wraps a payload together with the trivia (comments and
// whitespace) that precede it. Trivia between two siblings always belongs to
// the second one; a node only has trailing trivia when nothing but trivia
// follows it in its enclosing sequence. With this rule every byte of the
// source is owned by exactly one leaf or trivia run, so emitting a tree
// reproduces its source exactly.
//
// Payloads mirror the grammar's productions. Fixed tokens such as keywords
// and punctuation are zero-size types identified only by their rule.
// [Statement] and [VarDeclKeyword] are closed sums, resolved by looking
// ahead at the first meaningful child of their grammar node.
//
// Trees are immutable once built and may be printed any number of times,
// see package printer.
package ast
