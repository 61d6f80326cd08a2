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

package leekscript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leekscript "github.com/NyalephTheCat/LeekwarsParser"
	"github.com/NyalephTheCat/LeekwarsParser/ast"
	"github.com/NyalephTheCat/LeekwarsParser/grammar"
	"github.com/NyalephTheCat/LeekwarsParser/printer"
	"github.com/NyalephTheCat/LeekwarsParser/reporter"
)

func TestParse(t *testing.T) {
	t.Parallel()

	prog, err := leekscript.Parse("a.ls", "var x = 1;\nx++;")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)
	assert.Equal(t, ast.StatementKindVariable, prog.Statements[0].Value.Kind())
	assert.Equal(t, ast.StatementKindExpression, prog.Statements[1].Value.Kind())

	_, err = leekscript.Parse("a.ls", "var = 1;")
	var syn *grammar.SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.Equal(t, "a.ls", syn.Pos.Filename)

	_, err = leekscript.Parse("b.ls", "\n\nfor (;;) {}")
	require.ErrorIs(t, err, ast.ErrStatementUnrecognized)
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, reporter.SourcePos{Filename: "b.ls", Line: 3, Col: 1, Offset: 2}, ewp.GetPosition())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	options := printer.DefaultOptions()
	options.KeepComments = false
	out, err := leekscript.Format("a.ls", "break; // stop", options)
	require.NoError(t, err)
	assert.Equal(t, "break; ", out)

	_, err = leekscript.Format("a.ls", "break; /* stop", options)
	assert.Error(t, err)
}
