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

// Package leekscript parses LeekScript source into a lossless syntax tree and
// prints it back.
//
// Processing a file has three steps:
//  1. Parse the text into a parse tree.
//     Also see: grammar.Parse
//  2. Convert the parse tree into a typed syntax tree, which keeps every
//     comment and whitespace run attached to the node after it.
//     Also see: ast.Convert
//  3. Print the syntax tree. With the default options this reproduces the
//     input exactly; other options strip comments or normalize whitespace.
//     Also see: printer.Print
//
// [Parse] and [Format] run these steps for a single file held in memory.
//
// # Formatter
//
// A Formatter processes many files at once, using multiple CPU cores. It
// loads files through a [Resolver]; the minimal Formatter reads files from
// the file system relative to the current working directory:
//
//	formatter := leekscript.Formatter{
//	    Resolver: &leekscript.SourceResolver{},
//	}
//
// This Formatter uses default parallelism, equal to the number of CPU cores
// detected, prints with [printer.DefaultOptions], and fails fast at the first
// error. All of these can be customized by setting other fields.
package leekscript
