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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NyalephTheCat/LeekwarsParser/ast"
	"github.com/NyalephTheCat/LeekwarsParser/grammar"
	"github.com/NyalephTheCat/LeekwarsParser/printer"
	"github.com/NyalephTheCat/LeekwarsParser/reporter"
	"github.com/NyalephTheCat/LeekwarsParser/source"
)

func convert(t *testing.T, text string) *ast.Program {
	t.Helper()
	tree, err := grammar.Parse(source.NewFile("test.ls", text), grammar.Root)
	require.NoError(t, err)
	prog, err := ast.Convert(tree)
	require.NoError(t, err)
	return prog
}

func convertErr(t *testing.T, text string) error {
	t.Helper()
	tree, err := grammar.Parse(source.NewFile("test.ls", text), grammar.Root)
	require.NoError(t, err)
	prog, err := ast.Convert(tree)
	require.Error(t, err)
	assert.Nil(t, prog)
	return err
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"      ",
		";",
		";;",
		";//comment\n;",
		"/*comment*/;",
		"{}",
		"{;}",
		"{\n;\n}",
		"break",
		"break;",
		"if(x)y;else z;",
		"if(x)y;",
		"/* Some comments */",
		"//An empty statement",
		"/* Some comments */ //An empty statement",
		"//An empty statement\n",
		"/* Some comments \nAnother line on the same comment*/",
		"{ ; /* inside */ }",
		"\n\n  if ( x ) { y } else { z }  \n",
		"if (a) b; else if (c) d; else e;;",
		"while (i < 10) { i++; continue }",
		"do { i-- } while ( i > 0 ) ;",
		"return",
		"return /* nothing */ ;",
		"return a  +  b;",
		"function add(integer a, b) {\n\treturn a + b; // sum\n}\n",
		"function f ( ) { } ;",
		"function g(a,b , c){}",
		"var x = [1, 2, 3];\nglobal g;\nglobal integer | null h = null\n",
		"Array < integer > xs = [ ]",
		"f(1, 'two', [3])[0].x = !y ? 1 : -2;",
		"x /* a */ = /* b */ y /* c */;",
		"\r\n;\r\n",
		"x = y >> 2;",
		"a <<= 1;",
		"b >>>= c >>> /* bits */ 1",
		"Array<Array<int>> a;",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			prog := convert(t, text)
			assert.Equal(t, text, printer.Print(printer.DefaultOptions(), prog))
		})
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		kind ast.StatementKind
	}{
		{";", ast.StatementKindEmpty},
		{"{}", ast.StatementKindBlock},
		{"break", ast.StatementKindBreak},
		{"continue", ast.StatementKindContinue},
		{"return 1", ast.StatementKindReturn},
		{"if (x) y", ast.StatementKindIf},
		{"while (x) y", ast.StatementKindWhile},
		{"do x while (y)", ast.StatementKindDoWhile},
		{"function f() {}", ast.StatementKindFunction},
		{"var x", ast.StatementKindVariable},
		{"global x", ast.StatementKindVariable},
		{"integer x", ast.StatementKindVariable},
		{"x = 1", ast.StatementKindExpression},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			prog := convert(t, test.text)
			require.Len(t, prog.Statements, 1)
			stmt := prog.Statements[0].Value
			assert.Equal(t, test.kind, stmt.Kind())

			variants := map[ast.StatementKind]bool{
				ast.StatementKindEmpty:      stmt.AsEmpty() != nil,
				ast.StatementKindBlock:      stmt.AsBlock() != nil,
				ast.StatementKindBreak:      stmt.AsBreak() != nil,
				ast.StatementKindContinue:   stmt.AsContinue() != nil,
				ast.StatementKindReturn:     stmt.AsReturn() != nil,
				ast.StatementKindIf:         stmt.AsIf() != nil,
				ast.StatementKindWhile:      stmt.AsWhile() != nil,
				ast.StatementKindDoWhile:    stmt.AsDoWhile() != nil,
				ast.StatementKindFunction:   stmt.AsFunction() != nil,
				ast.StatementKindVariable:   stmt.AsVariable() != nil,
				ast.StatementKindExpression: stmt.AsExpression() != nil,
			}
			for kind, ok := range variants {
				assert.Equal(t, kind == test.kind, ok, "As%v", kind)
			}
		})
	}
}

func TestUnrecognizedStatement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text      string
		line, col int
	}{
		{"for (x in xs) {}", 1, 1},
		{"x;\n{\n  for (;;);\n}", 3, 3},
		{"if (x) for (var i = 0; i < 1; i++) {}", 1, 8},
		{"while (x) { y; for (;;) {} }", 1, 16},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			err := convertErr(t, test.text)
			assert.ErrorIs(t, err, ast.ErrStatementUnrecognized)
			assert.NotErrorIs(t, err, ast.ErrNoMatch)

			var ewp reporter.ErrorWithPos
			require.ErrorAs(t, err, &ewp)
			assert.Equal(t, test.line, ewp.GetPosition().Line)
			assert.Equal(t, test.col, ewp.GetPosition().Col)
		})
	}
}

func TestOptionalSlots(t *testing.T) {
	t.Parallel()

	brk := convert(t, "break").Statements[0].Value.AsBreak()
	require.NotNil(t, brk)
	assert.Nil(t, brk.Value.Semi)

	brk = convert(t, "break;").Statements[0].Value.AsBreak()
	require.NotNil(t, brk)
	assert.NotNil(t, brk.Value.Semi)

	ifs := convert(t, "if(x)y;else z;").Statements[0].Value.AsIf()
	require.NotNil(t, ifs)
	assert.NotNil(t, ifs.Value.Else)
	require.NotNil(t, ifs.Value.ElseBody)
	assert.Equal(t, ast.StatementKindExpression, ifs.Value.ElseBody.Value.Kind())
	assert.Nil(t, ifs.Value.Semi)

	ifs = convert(t, "if(x)y;").Statements[0].Value.AsIf()
	require.NotNil(t, ifs)
	assert.Nil(t, ifs.Value.Else)
	assert.Nil(t, ifs.Value.ElseBody)

	ret := convert(t, "return;").Statements[0].Value.AsReturn()
	require.NotNil(t, ret)
	assert.Nil(t, ret.Value.Value)
	assert.NotNil(t, ret.Value.Semi)

	decl := convert(t, "var x").Statements[0].Value.AsVariable()
	require.NotNil(t, decl)
	assert.Nil(t, decl.Value.Equal)
	assert.Nil(t, decl.Value.Value)

	fn := convert(t, "function f() {}").Statements[0].Value.AsFunction()
	require.NotNil(t, fn)
	assert.Nil(t, fn.Value.Parameters)
	assert.Equal(t, "f", fn.Value.Name.Value.Name)
}

func TestTriviaOwnership(t *testing.T) {
	t.Parallel()

	prog := convert(t, "a;/*x*/b;")
	require.Len(t, prog.Statements, 2)

	first, second := prog.Statements[0], prog.Statements[1]
	assert.Empty(t, first.Leading)
	assert.Empty(t, first.Trailing)
	assert.Empty(t, first.Value.AsExpression().Value.Semi.Trailing)
	assert.Equal(t, []ast.Trivia{ast.Comment("/*x*/")}, second.Leading)
	assert.Empty(t, prog.End.Leading)

	// Trivia after the last statement of a block belongs to the brace.
	block := convert(t, "{ ; /* end */ }").Statements[0].Value.AsBlock()
	require.NotNil(t, block)
	require.Len(t, block.Value.Statements, 1)
	assert.Equal(t, []ast.Trivia{ast.Whitespace(" ")}, block.Value.Statements[0].Leading)
	assert.Empty(t, block.Value.Statements[0].Trailing)
	assert.Equal(t,
		[]ast.Trivia{ast.Whitespace(" "), ast.Comment("/* end */"), ast.Whitespace(" ")},
		block.Value.Close.Leading,
	)

	// Trivia at the end of the file belongs to the end of input.
	prog = convert(t, "; // done\n")
	assert.Equal(t,
		[]ast.Trivia{ast.Whitespace(" "), ast.Comment("// done"), ast.Whitespace("\n")},
		prog.End.Leading,
	)
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	decl := convert(t, "integer x = a + b;").Statements[0].Value.AsVariable()
	require.NotNil(t, decl)
	local := decl.Value.Keyword.Value.AsLocal()
	require.NotNil(t, local)
	assert.Nil(t, decl.Value.Keyword.Value.AsGlobal())
	assert.Equal(t, ast.VarDeclKindLocal, decl.Value.Keyword.Value.Kind())
	assert.Nil(t, local.Value.Var)
	require.NotNil(t, local.Value.Type)
	assert.Equal(t, "integer", local.Value.Type.Value.Text())
	assert.Equal(t, "x", decl.Value.Name.Value.Name)
	require.NotNil(t, decl.Value.Value)
	assert.Equal(t, "a+b", decl.Value.Value.Value.Text())

	decl = convert(t, "global Array<integer> | null g").Statements[0].Value.AsVariable()
	require.NotNil(t, decl)
	global := decl.Value.Keyword.Value.AsGlobal()
	require.NotNil(t, global)
	assert.Equal(t, ast.VarDeclKindGlobal, decl.Value.Keyword.Value.Kind())
	require.NotNil(t, global.Value.Type)
	assert.Equal(t, "Array<integer>|null", global.Value.Type.Value.Text())

	fn := convert(t, "function f(a, integer b,c) {}").Statements[0].Value.AsFunction()
	require.NotNil(t, fn)
	require.NotNil(t, fn.Value.Parameters)
	params := fn.Value.Parameters.Value
	require.Len(t, params.List, 3)
	assert.Len(t, params.Commas, 2)
	assert.Nil(t, params.List[0].Value.Type)
	require.NotNil(t, params.List[1].Value.Type)
	assert.Equal(t, "integer", params.List[1].Value.Type.Value.Text())
	assert.Equal(t, []ast.Trivia{ast.Whitespace(" ")}, params.List[1].Leading)
	assert.Equal(t, "c", params.List[2].Value.Name.Value.Name)
}

func TestPrintParameters(t *testing.T) {
	t.Parallel()

	param := func(name string) ast.Node[ast.Parameter] {
		return ast.Node[ast.Parameter]{Value: ast.Parameter{
			Name: ast.Node[ast.Identifier]{Value: ast.Identifier{Name: name}},
		}}
	}
	params := ast.Parameters{
		List:   []ast.Node[ast.Parameter]{param("a"), param("b"), param("c")},
		Commas: make([]ast.Node[ast.Comma], 2),
	}
	assert.Equal(t, "a,b,c", printer.Print(printer.DefaultOptions(), params))

	params = ast.Parameters{List: []ast.Node[ast.Parameter]{param("a")}}
	assert.Equal(t, "a", printer.Print(printer.DefaultOptions(), params))
}
