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

// productions is the LeekScript grammar: one parsing expression per rule.
// Every entry is wrapped in rule() so that it produces exactly one node.
var productions map[Rule]matcher

var (
	binaryOperators = []string{
		"===", "!==", "**=", "==", "!=", "<=", ">=", "&&", "||",
		"+=", "-=", "*=", "/=", "%=", "**", "??",
		"=", "<", ">", "+", "-", "*", "/", "%", "&", "|", "^",
	}
	// Shifts span several tokens; see adjacent.
	shiftOperators   = []string{"<<", ">>", ">>>", "<<=", ">>=", ">>>="}
	prefixOperators  = []string{"!", "-", "+", "~", "++", "--", "@"}
	postfixOperators = []string{"++", "--", "!"}
)

func init() {
	identifier := terminal(Identifier, "identifier", func(kind Kind, text string) bool {
		return kind == Ident && !IsKeyword(text)
	})
	number := terminal(Number, "number", func(kind Kind, _ string) bool { return kind == Num })
	str := terminal(String, "string", func(kind Kind, _ string) bool { return kind == Str })
	literal := oneOf(Literal, Ident, "true", "false", "null")

	semi := punct(Semi)
	comma := punct(Comma)

	// list matches m (Comma m)*.
	list := func(m matcher) matcher {
		return seq(m, star(seq(comma, m)))
	}

	productions = map[Rule]matcher{
		Root: rule(Root, seq(soi, star(ref(Statement)), eoi)),

		Statement: rule(Statement, choice(
			semi,
			ref(BlockStatement),
			ref(ReturnStatement),
			ref(BreakStatement),
			ref(ContinueStatement),
			ref(WhileStatement),
			ref(DoWhileStatement),
			ref(IfStatement),
			ref(ForStatement),
			ref(FunctionDeclaration),
			ref(VariableDeclaration),
			ref(ExpressionStatement),
		)),

		BlockStatement: rule(BlockStatement, seq(
			punct(LBrace), star(ref(Statement)), punct(RBrace),
		)),
		ReturnStatement: rule(ReturnStatement, seq(
			keyword(Return), opt(ref(Expression)), opt(semi),
		)),
		BreakStatement:    rule(BreakStatement, seq(keyword(Break), opt(semi))),
		ContinueStatement: rule(ContinueStatement, seq(keyword(Continue), opt(semi))),
		WhileStatement: rule(WhileStatement, seq(
			keyword(While), punct(LParen), ref(Expression), punct(RParen), ref(Statement),
		)),
		DoWhileStatement: rule(DoWhileStatement, seq(
			keyword(Do), ref(Statement),
			keyword(While), punct(LParen), ref(Expression), punct(RParen),
			opt(semi),
		)),
		IfStatement: rule(IfStatement, seq(
			keyword(If), punct(LParen), ref(Expression), punct(RParen), ref(Statement),
			opt(seq(keyword(Else), ref(Statement))),
			opt(semi),
		)),
		ForStatement: rule(ForStatement, seq(
			keyword(For), punct(LParen),
			choice(
				seq(opt(keyword(Var)), identifier, keyword(In), ref(Expression)),
				seq(opt(ref(ForInit)), semi, opt(ref(Expression)), semi, opt(ref(Expression))),
			),
			punct(RParen), ref(Statement),
		)),
		ForInit: rule(ForInit, choice(
			seq(keyword(Var), identifier, opt(seq(punct(Eq), ref(Expression)))),
			ref(Expression),
		)),

		FunctionDeclaration: rule(FunctionDeclaration, seq(
			keyword(Function), identifier,
			punct(LParen), opt(ref(Parameters)), punct(RParen),
			ref(BlockStatement),
			opt(semi),
		)),
		Parameters: rule(Parameters, list(ref(Parameter))),
		Parameter: rule(Parameter, choice(
			seq(ref(Type), identifier),
			identifier,
		)),

		VariableDeclaration: rule(VariableDeclaration, seq(
			ref(VarDeclKeyword), identifier,
			opt(seq(punct(Eq), ref(Expression))),
			opt(semi),
		)),
		VarDeclKeyword: rule(VarDeclKeyword, choice(
			ref(VarDec),
			seq(keyword(Global), opt(seq(ref(Type), followedBy(identifier)))),
		)),
		VarDec: rule(VarDec, choice(
			keyword(Var),
			seq(ref(Type), followedBy(identifier)),
		)),

		ExpressionStatement: rule(ExpressionStatement, seq(ref(Expression), opt(semi))),

		Expression: rule(Expression, seq(
			ref(Operand),
			star(seq(
				choice(adjacent(Operator, shiftOperators...), oneOf(Operator, Punct, binaryOperators...)),
				ref(Operand),
			)),
			opt(seq(punct(Question), ref(Expression), punct(Colon), ref(Expression))),
		)),
		Operand: rule(Operand, seq(
			star(oneOf(Operator, Punct, prefixOperators...)),
			choice(number, str, literal, identifier, ref(ParenExpression), ref(ArrayLiteral)),
			star(choice(
				ref(Arguments),
				ref(Index),
				ref(Member),
				oneOf(Operator, Punct, postfixOperators...),
			)),
		)),
		Arguments: rule(Arguments, seq(
			punct(LParen), opt(list(ref(Expression))), punct(RParen),
		)),
		Index:           rule(Index, seq(punct(LBracket), ref(Expression), punct(RBracket))),
		Member:          rule(Member, seq(punct(Dot), identifier)),
		ParenExpression: rule(ParenExpression, seq(punct(LParen), ref(Expression), punct(RParen))),
		ArrayLiteral: rule(ArrayLiteral, seq(
			punct(LBracket), opt(list(ref(Expression))), punct(RBracket),
		)),

		Type: rule(Type, seq(ref(TypeAtom), star(seq(punct(Pipe), ref(TypeAtom))))),
		TypeAtom: rule(TypeAtom, seq(
			choice(identifier, literal),
			opt(ref(TypeArguments)),
		)),
		TypeArguments: rule(TypeArguments, seq(
			punct(Lt), list(ref(Type)), punct(Gt),
		)),
	}
}
