package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/lexer"
)

// parseDirectives consumes the directive prologue: leading expression
// statements that are plain string literals.
func (p *Parser) parseDirectives() []ast.Directive {
	var directives []ast.Directive
	for p.at(lexer.TokenString) {
		// A string followed by an operator is an expression, not a
		// directive: `"a" + b`.
		next := p.peek()
		switch next.Type {
		case lexer.TokenSemicolon, lexer.TokenEOF, lexer.TokenRBrace:
		default:
			if !next.OnNewLine {
				return directives
			}
			// ASI applies; still a directive.
			if p.tokenContinuesExpression(next.Type) {
				return directives
			}
		}
		start := p.start()
		tok := p.cur()
		p.bump()
		lit := p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value})
		p.semicolon()
		raw := tok.Literal
		if len(raw) >= 2 {
			raw = raw[1 : len(raw)-1]
		}
		directives = append(directives, ast.Directive{
			Loc:        p.finish(start),
			Expression: lit,
			Value:      raw,
		})
	}
	return directives
}

// tokenContinuesExpression reports whether tt extends a preceding
// expression across a line break, defeating ASI.
func (p *Parser) tokenContinuesExpression(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenDot, lexer.TokenLBracket, lexer.TokenLParen,
		lexer.TokenTemplate, lexer.TokenTemplateHead, lexer.TokenQuestionDot,
		lexer.TokenComma, lexer.TokenQuestion:
		return true
	}
	return tt.IsAssignmentOperator() || p.binaryPrecedence(tt) > 0
}

// parseStatementList parses statements until the terminator token,
// resynchronizing after any hard failure so one bad statement never
// takes the rest of the block with it.
func (p *Parser) parseStatementList(end lexer.TokenType) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.at(end) && !p.at(lexer.TokenEOF) {
		start := p.start()
		stmt := p.parseStatement(false)
		if p.fatal {
			p.synchronize(start)
			stmt = p.invalidStmt(p.finish(start))
		}
		stmts = append(stmts, stmt)
	}
	return p.alloc.CopyStmts(stmts)
}

// parseStatement dispatches on the leading token. singleStatement is
// true in the restricted positions (if branches, loop bodies, labels)
// where declarations are not statements.
func (p *Parser) parseStatement(singleStatement bool) ast.Stmt {
	if !p.enter() {
		sp := p.cur().Span
		p.bump()
		return p.invalidStmt(sp)
	}
	defer p.leave()

	switch p.cur().Type {
	case lexer.TokenLBrace:
		return p.parseBlockStatement()
	case lexer.TokenSemicolon:
		start := p.start()
		p.bump()
		return p.alloc.EmptyStatement.Alloc(ast.EmptyStatement{Loc: p.finish(start)})
	case lexer.TokenVar:
		return p.parseVariableStatement(singleStatement)
	case lexer.TokenLet:
		if p.letDeclarationFollows() {
			return p.parseVariableStatement(singleStatement)
		}
	case lexer.TokenConst:
		// `const enum` is a TS declaration, not a variable statement.
		if p.ts() && p.peek().Type == lexer.TokenEnum {
			return p.parseEnumDeclaration(Modifiers{})
		}
		return p.parseVariableStatement(singleStatement)
	case lexer.TokenFunction:
		return p.parseFunctionDeclaration(singleStatement)
	case lexer.TokenAsync:
		if p.atFunctionWithAsync() {
			return p.parseFunctionDeclaration(singleStatement)
		}
	case lexer.TokenClass:
		return p.parseClassDeclaration(nil, Modifiers{})
	case lexer.TokenAt:
		return p.parseDecoratedDeclaration()
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenDo:
		return p.parseDoWhileStatement()
	case lexer.TokenWhile:
		return p.parseWhileStatement()
	case lexer.TokenFor:
		return p.parseForStatement()
	case lexer.TokenBreak, lexer.TokenContinue:
		return p.parseBreakOrContinue()
	case lexer.TokenReturn:
		return p.parseReturnStatement()
	case lexer.TokenWith:
		return p.parseWithStatement()
	case lexer.TokenSwitch:
		return p.parseSwitchStatement()
	case lexer.TokenThrow:
		return p.parseThrowStatement()
	case lexer.TokenTry:
		return p.parseTryStatement()
	case lexer.TokenDebugger:
		return p.parseDebuggerStatement()
	case lexer.TokenImport:
		next := p.peek()
		if next.Type != lexer.TokenLParen && next.Type != lexer.TokenDot {
			return p.parseImportDeclaration()
		}
	case lexer.TokenExport:
		return p.parseExportDeclaration()
	}

	if p.ts() {
		if stmt, ok := p.parseTSDeclarationStatement(); ok {
			return stmt
		}
	}
	return p.parseExpressionOrLabeledStatement()
}

// letDeclarationFollows disambiguates the contextual `let` keyword: it
// heads a declaration only when a binding can follow.
func (p *Parser) letDeclarationFollows() bool {
	next := p.peek()
	switch next.Type {
	case lexer.TokenLBracket, lexer.TokenLBrace:
		return true
	}
	return next.Type.IsBindingIdentifier()
}

func (p *Parser) parseBlockStatement() ast.Stmt {
	start := p.start()
	p.expect(lexer.TokenLBrace)
	body := p.parseStatementList(lexer.TokenRBrace)
	p.expect(lexer.TokenRBrace)
	return p.alloc.BlockStatement.Alloc(ast.BlockStatement{
		Loc:  p.finish(start),
		Body: body,
	})
}

// parseVariableStatement parses a var/let/const statement including
// its terminating semicolon.
func (p *Parser) parseVariableStatement(singleStatement bool) ast.Stmt {
	decl := p.parseVariableDeclaration(false, Modifiers{})
	if decl == nil {
		return p.invalidStmt(p.cur().Span)
	}
	if singleStatement && decl.Kind != ast.VariableVar {
		p.bag.Add(diagLexicalDeclarationSingleStatement(decl.Loc))
	}
	p.semicolon()
	return decl
}

// parseVariableDeclaration parses the declaration proper, leaving the
// semicolon to the caller so for-loop heads can reuse it.
func (p *Parser) parseVariableDeclaration(inForHead bool, mods Modifiers) *ast.VariableDeclaration {
	start := p.start()
	var kind ast.VariableKind
	switch p.cur().Type {
	case lexer.TokenVar:
		kind = ast.VariableVar
	case lexer.TokenLet:
		kind = ast.VariableLet
	case lexer.TokenConst:
		kind = ast.VariableConst
	default:
		p.bag.Add(diagUnexpectedToken(p.cur().Span))
		p.fatal = true
		return nil
	}
	p.bump()

	declare := mods.ContainsDeclare()
	var decls []ast.VariableDeclarator
	for {
		decl := p.parseVariableDeclarator(kind, inForHead, declare)
		decls = append(decls, decl)
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	return p.alloc.VariableDeclaration.Alloc(ast.VariableDeclaration{
		Loc:          p.finish(start),
		Kind:         kind,
		Declare:      declare,
		Declarations: decls,
	})
}

func (p *Parser) parseVariableDeclarator(kind ast.VariableKind, inForHead, declare bool) ast.VariableDeclarator {
	start := p.start()
	if p.at(lexer.TokenLet) && kind != ast.VariableVar {
		p.bag.Add(diagLetInLexicalBinding(p.cur().Span))
	}
	tok := p.cur()
	target := p.parseBindingTarget()
	if target == nil {
		p.fatal = false
		return ast.VariableDeclarator{Loc: tok.Span}
	}

	definite := false
	if p.ts() && p.at(lexer.TokenBang) && !p.curOnNewLine() {
		definite = true
		p.bump()
	}
	var annotation *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("Type annotations", p.cur().Span))
		}
		annotation = p.parseTypeAnnotation()
	}
	id := ast.BindingPattern{Kind: target, TypeAnnotation: annotation}

	var init ast.Expr
	if p.eat(lexer.TokenAssign) {
		init = p.parseAssignmentExpressionOrHigher()
	} else if !inForHead && !declare {
		_, isIdent := target.(*ast.BindingIdentifier)
		switch {
		case !isIdent:
			p.bag.Add(diagMissingInitializerInDestructuring(id.Span()))
		case kind == ast.VariableConst && !p.ts():
			p.bag.Add(diagMissingInitializerInConst(id.Span()))
		case kind == ast.VariableConst && p.ts() && !definite:
			p.bag.Add(diagMissingInitializerInConst(id.Span()))
		}
	}
	if definite && init != nil {
		p.bag.Add(diagDefiniteWithInitializer(id.Span()))
	}
	return ast.VariableDeclarator{
		Loc:      p.finish(start),
		ID:       id,
		Init:     init,
		Definite: definite,
	}
}

func (p *Parser) parseIfStatement() ast.Stmt {
	start := p.start()
	p.bump() // if
	p.expect(lexer.TokenLParen)
	test := p.parseExpression()
	p.expect(lexer.TokenRParen)
	consequent := p.parseStatement(true)
	var alternate ast.Stmt
	if p.eat(lexer.TokenElse) {
		alternate = p.parseStatement(true)
	}
	return p.alloc.IfStatement.Alloc(ast.IfStatement{
		Loc:        p.finish(start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	})
}

func (p *Parser) parseDoWhileStatement() ast.Stmt {
	start := p.start()
	p.bump() // do
	body := p.parseStatement(true)
	p.expect(lexer.TokenWhile)
	p.expect(lexer.TokenLParen)
	test := p.parseExpression()
	p.expect(lexer.TokenRParen)
	// The trailing semicolon after do-while is optional everywhere.
	p.eat(lexer.TokenSemicolon)
	return p.alloc.DoWhileStatement.Alloc(ast.DoWhileStatement{
		Loc:  p.finish(start),
		Body: body,
		Test: test,
	})
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	start := p.start()
	p.bump() // while
	p.expect(lexer.TokenLParen)
	test := p.parseExpression()
	p.expect(lexer.TokenRParen)
	body := p.parseStatement(true)
	return p.alloc.WhileStatement.Alloc(ast.WhileStatement{
		Loc:  p.finish(start),
		Test: test,
		Body: body,
	})
}

// parseForStatement covers the classic three-clause form, for-in and
// for-of, plus `for await`. The init clause parses with the `in`
// operator disabled so the for-in arm stays unambiguous.
func (p *Parser) parseForStatement() ast.Stmt {
	start := p.start()
	p.bump() // for
	awaitTok := p.cur()
	isAwait := p.eat(lexer.TokenAwait)
	if isAwait && !p.ctx.HasAwait() {
		p.bag.Add(diagAwaitOutsideAsync(awaitTok.Span))
	}
	p.expect(lexer.TokenLParen)

	var init ast.Node
	switch {
	case p.at(lexer.TokenSemicolon):
	case p.at(lexer.TokenVar) || p.at(lexer.TokenConst) ||
		(p.at(lexer.TokenLet) && p.letDeclarationFollows()):
		saved := p.ctx
		p.ctx = p.ctx.WithIn(false)
		init = p.parseVariableDeclaration(true, Modifiers{})
		p.ctx = saved
	default:
		saved := p.ctx
		p.ctx = p.ctx.WithIn(false)
		init = p.parseExpression()
		p.ctx = saved
	}

	if p.at(lexer.TokenIn) || p.at(lexer.TokenOf) {
		return p.parseForInOrOf(start, init, isAwait)
	}
	if isAwait {
		p.bag.Add(diagForAwaitNotOf(awaitTok.Span))
	}

	p.expect(lexer.TokenSemicolon)
	var test ast.Expr
	if !p.at(lexer.TokenSemicolon) {
		test = p.parseExpression()
	}
	p.expect(lexer.TokenSemicolon)
	var update ast.Expr
	if !p.at(lexer.TokenRParen) {
		update = p.parseExpression()
	}
	p.expect(lexer.TokenRParen)
	body := p.parseStatement(true)
	return p.alloc.ForStatement.Alloc(ast.ForStatement{
		Loc:    p.finish(start),
		Init:   init,
		Test:   test,
		Update: update,
		Body:   body,
	})
}

func (p *Parser) parseForInOrOf(start uint32, left ast.Node, isAwait bool) ast.Stmt {
	isOf := p.at(lexer.TokenOf)
	forTok := p.cur()
	p.bump() // in | of
	if isAwait && !isOf {
		p.bag.Add(diagForAwaitNotOf(forTok.Span))
	}

	if decl, ok := left.(*ast.VariableDeclaration); ok {
		if len(decl.Declarations) > 1 {
			p.bag.Add(diagForInMultipleBindings(decl.Loc))
		}
		if len(decl.Declarations) == 1 && decl.Declarations[0].Init != nil {
			kind := "for-of"
			if !isOf {
				kind = "for-in"
			}
			p.bag.Add(diagForLoopInitializer(kind, decl.Declarations[0].Loc))
		}
	} else if expr, ok := left.(ast.Expr); ok {
		p.checkAssignmentTarget(expr, true)
	}

	var right ast.Expr
	if isOf {
		right = p.parseAssignmentExpressionOrHigher()
	} else {
		right = p.parseExpression()
	}
	p.expect(lexer.TokenRParen)
	body := p.parseStatement(true)

	if isOf {
		return p.alloc.ForOfStatement.Alloc(ast.ForOfStatement{
			Loc:   p.finish(start),
			Await: isAwait,
			Left:  left,
			Right: right,
			Body:  body,
		})
	}
	return p.alloc.ForInStatement.Alloc(ast.ForInStatement{
		Loc:   p.finish(start),
		Left:  left,
		Right: right,
		Body:  body,
	})
}

// parseBreakOrContinue handles both jump statements; the label, when
// present, must start on the same line.
func (p *Parser) parseBreakOrContinue() ast.Stmt {
	start := p.start()
	isBreak := p.at(lexer.TokenBreak)
	p.bump()

	var label *ast.IdentifierName
	if !p.canInsertSemicolon() && p.cur().Type.IsIdentifierName() {
		tok := p.cur()
		p.bump()
		label = p.alloc.IdentifierName.Alloc(ast.IdentifierName{Loc: tok.Span, Name: tok.Literal})
	}
	p.semicolon()
	loc := p.finish(start)
	if isBreak {
		return p.alloc.BreakStatement.Alloc(ast.BreakStatement{Loc: loc, Label: label})
	}
	return p.alloc.ContinueStatement.Alloc(ast.ContinueStatement{Loc: loc, Label: label})
}

// parseReturnStatement parses `return [expr]`. The argument must start
// on the same line; a return outside any function body is diagnosed
// but still produces the node.
func (p *Parser) parseReturnStatement() ast.Stmt {
	start := p.start()
	tok := p.cur()
	p.bump()
	if !p.ctx.HasReturn() {
		p.bag.Add(diagReturnOutsideFunction(tok.Span))
	}
	var argument ast.Expr
	if !p.canInsertSemicolon() && !p.at(lexer.TokenSemicolon) {
		saved := p.ctx
		p.ctx = p.ctx.WithIn(true)
		argument = p.parseExpression()
		p.ctx = saved
	}
	p.semicolon()
	return p.alloc.ReturnStatement.Alloc(ast.ReturnStatement{
		Loc:      p.finish(start),
		Argument: argument,
	})
}

func (p *Parser) parseWithStatement() ast.Stmt {
	start := p.start()
	tok := p.cur()
	p.bump()
	if p.module() {
		p.bag.Add(diagWithInStrictMode(tok.Span))
	}
	p.expect(lexer.TokenLParen)
	object := p.parseExpression()
	p.expect(lexer.TokenRParen)
	body := p.parseStatement(true)
	return p.alloc.WithStatement.Alloc(ast.WithStatement{
		Loc:    p.finish(start),
		Object: object,
		Body:   body,
	})
}

func (p *Parser) parseSwitchStatement() ast.Stmt {
	start := p.start()
	p.bump() // switch
	p.expect(lexer.TokenLParen)
	discriminant := p.parseExpression()
	p.expect(lexer.TokenRParen)
	p.expect(lexer.TokenLBrace)

	var cases []ast.SwitchCase
	seenDefault := false
	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		caseStart := p.start()
		var test ast.Expr
		if p.eat(lexer.TokenCase) {
			test = p.parseExpression()
		} else if p.at(lexer.TokenDefault) {
			if seenDefault {
				p.bag.Add(diagMultipleDefaultClauses(p.cur().Span))
			}
			seenDefault = true
			p.bump()
		} else {
			p.bag.Add(diagUnexpectedToken(p.cur().Span))
			p.synchronize(caseStart)
			continue
		}
		p.expect(lexer.TokenColon)

		var consequent []ast.Stmt
		for !p.at(lexer.TokenCase) && !p.at(lexer.TokenDefault) &&
			!p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
			stmtStart := p.start()
			stmt := p.parseStatement(false)
			if p.fatal {
				p.synchronize(stmtStart)
				stmt = p.invalidStmt(p.finish(stmtStart))
			}
			consequent = append(consequent, stmt)
		}
		cases = append(cases, ast.SwitchCase{
			Loc:        p.finish(caseStart),
			Test:       test,
			Consequent: p.alloc.CopyStmts(consequent),
		})
	}
	p.expect(lexer.TokenRBrace)
	return p.alloc.SwitchStatement.Alloc(ast.SwitchStatement{
		Loc:          p.finish(start),
		Discriminant: discriminant,
		Cases:        cases,
	})
}

// parseThrowStatement parses `throw expr`; a line break after the
// keyword is an outright error, there is no argument-less throw.
func (p *Parser) parseThrowStatement() ast.Stmt {
	start := p.start()
	p.bump() // throw
	if p.curOnNewLine() {
		p.bag.Add(diagNewlineAfterThrow(p.cur().Span))
	}
	argument := p.parseExpression()
	p.semicolon()
	return p.alloc.ThrowStatement.Alloc(ast.ThrowStatement{
		Loc:      p.finish(start),
		Argument: argument,
	})
}

func (p *Parser) parseTryStatement() ast.Stmt {
	start := p.start()
	p.bump() // try
	block := p.parseBlockOnly()

	var handler *ast.CatchClause
	if p.at(lexer.TokenCatch) {
		catchStart := p.start()
		p.bump()
		var param *ast.BindingPattern
		if p.eat(lexer.TokenLParen) {
			pattern := p.parseBindingPatternWithAnnotation(false)
			param = p.alloc.BindingPattern.Alloc(pattern)
			p.expect(lexer.TokenRParen)
		}
		body := p.parseBlockOnly()
		handler = p.alloc.CatchClause.Alloc(ast.CatchClause{
			Loc:   p.finish(catchStart),
			Param: param,
			Body:  body,
		})
	}

	var finalizer *ast.BlockStatement
	if p.eat(lexer.TokenFinally) {
		finalizer = p.parseBlockOnly()
	}
	if handler == nil && finalizer == nil {
		p.bag.Add(diagExpectToken("catch", p.cur().Type.String(), p.cur().Span))
	}
	return p.alloc.TryStatement.Alloc(ast.TryStatement{
		Loc:       p.finish(start),
		Block:     block,
		Handler:   handler,
		Finalizer: finalizer,
	})
}

func (p *Parser) parseBlockOnly() *ast.BlockStatement {
	start := p.start()
	p.expect(lexer.TokenLBrace)
	body := p.parseStatementList(lexer.TokenRBrace)
	p.expect(lexer.TokenRBrace)
	return p.alloc.BlockStatement.Alloc(ast.BlockStatement{
		Loc:  p.finish(start),
		Body: body,
	})
}

func (p *Parser) parseDebuggerStatement() ast.Stmt {
	start := p.start()
	p.bump()
	p.semicolon()
	return p.alloc.DebuggerStatement.Alloc(ast.DebuggerStatement{Loc: p.finish(start)})
}

// parseExpressionOrLabeledStatement resolves the identifier-colon
// ambiguity: `foo:` starts a labeled statement, anything else is an
// expression statement.
func (p *Parser) parseExpressionOrLabeledStatement() ast.Stmt {
	start := p.start()
	if p.cur().Type.IsIdentifierName() && p.peek().Type == lexer.TokenColon {
		tok := p.cur()
		p.bump()
		p.bump() // :
		label := p.alloc.IdentifierName.Alloc(ast.IdentifierName{Loc: tok.Span, Name: tok.Literal})
		body := p.parseStatement(true)
		return p.alloc.LabeledStatement.Alloc(ast.LabeledStatement{
			Loc:   p.finish(start),
			Label: label,
			Body:  body,
		})
	}

	expr := p.parseExpression()
	if p.fatal {
		return p.invalidStmt(p.finish(start))
	}
	p.semicolon()
	return p.alloc.ExpressionStatement.Alloc(ast.ExpressionStatement{
		Loc:        p.finish(start),
		Expression: expr,
	})
}
