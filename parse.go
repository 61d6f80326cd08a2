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

package leekscript

import (
	"errors"

	"github.com/NyalephTheCat/LeekwarsParser/ast"
	"github.com/NyalephTheCat/LeekwarsParser/grammar"
	"github.com/NyalephTheCat/LeekwarsParser/printer"
	"github.com/NyalephTheCat/LeekwarsParser/source"
)

// ErrEmptySource is reported as a warning for files that contain no
// statements.
var ErrEmptySource = errors.New("file contains no statements")

// Parse parses and converts the text of a single file. The path is used only
// for error positions.
//
// A syntax error is returned as a [*grammar.SyntaxError]; an error from
// conversion wraps [ast.ErrNoMatch] or [ast.ErrStatementUnrecognized]. Both
// implement [reporter.ErrorWithPos].
func Parse(path, text string) (*ast.Program, error) {
	tree, err := grammar.Parse(source.NewFile(path, text), grammar.Root)
	if err != nil {
		return nil, err
	}
	return ast.Convert(tree)
}

// Format parses the text of a single file and prints it with the given
// options.
func Format(path, text string, options printer.Options) (string, error) {
	prog, err := Parse(path, text)
	if err != nil {
		return "", err
	}
	return printer.Print(options, prog), nil
}
