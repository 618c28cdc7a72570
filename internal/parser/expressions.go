package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/lexer"
)

// parseExpression parses a full comma-sequence expression.
func (p *Parser) parseExpression() ast.Expr {
	start := p.start()
	first := p.parseAssignmentExpressionOrHigher()
	if !p.at(lexer.TokenComma) {
		return first
	}
	exprs := []ast.Expr{first}
	for p.eat(lexer.TokenComma) {
		exprs = append(exprs, p.parseAssignmentExpressionOrHigher())
	}
	return p.alloc.SequenceExpression.Alloc(ast.SequenceExpression{
		Loc:         p.finish(start),
		Expressions: p.alloc.CopyExprs(exprs),
	})
}

// parseAssignmentExpressionOrHigher is the workhorse entry for any
// single-expression position.
func (p *Parser) parseAssignmentExpressionOrHigher() ast.Expr {
	if !p.enter() {
		return p.invalidExpr(p.cur().Span)
	}
	defer p.leave()

	if p.at(lexer.TokenYield) && p.atYieldExpression() {
		return p.parseYieldExpression()
	}
	if arrow, ok := p.tryParseArrowFunction(); ok {
		return arrow
	}

	start := p.start()
	lhs := p.parseConditionalExpressionOrHigher()

	op := p.cur().Type
	if !op.IsAssignmentOperator() {
		return lhs
	}
	p.checkAssignmentTarget(lhs, op == lexer.TokenAssign)
	opText := op.String()
	p.bump()
	right := p.parseAssignmentExpressionOrHigher()
	return p.alloc.AssignmentExpression.Alloc(ast.AssignmentExpression{
		Loc:      p.finish(start),
		Operator: opText,
		Left:     lhs,
		Right:    right,
	})
}

// checkAssignmentTarget diagnoses left-hand sides that cannot be
// assigned to. Destructuring literal shapes are only valid targets of
// plain `=`.
func (p *Parser) checkAssignmentTarget(lhs ast.Expr, simpleAssign bool) {
	switch e := lhs.(type) {
	case *ast.IdentifierReference, *ast.MemberExpression, *ast.TSNonNullExpression,
		*ast.InvalidExpression:
		return
	case *ast.TSAsExpression:
		p.checkAssignmentTarget(e.Expression, simpleAssign)
		return
	case *ast.ParenthesizedExpression:
		p.checkAssignmentTarget(e.Expression, simpleAssign)
		return
	case *ast.ArrayExpression, *ast.ObjectExpression:
		if simpleAssign {
			return
		}
	}
	p.bag.Add(diagInvalidAssignmentTarget(lhs.Span()))
}

func (p *Parser) parseConditionalExpressionOrHigher() ast.Expr {
	start := p.start()
	test := p.parseBinaryExpressionOrHigher(0)
	if !p.at(lexer.TokenQuestion) {
		return test
	}
	p.bump()
	saved := p.ctx
	p.ctx = p.ctx.WithIn(true)
	consequent := p.parseAssignmentExpressionOrHigher()
	p.ctx = saved
	p.expect(lexer.TokenColon)
	alternate := p.parseAssignmentExpressionOrHigher()
	return p.alloc.ConditionalExpression.Alloc(ast.ConditionalExpression{
		Loc:        p.finish(start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	})
}

// binaryPrecedence returns the binding power of the current token as a
// binary operator, or 0 when it is not one. The `in` operator only
// counts when the context permits it.
func (p *Parser) binaryPrecedence(tt lexer.TokenType) int {
	switch tt {
	case lexer.TokenNullish:
		return 1
	case lexer.TokenLogicalOr:
		return 2
	case lexer.TokenLogicalAnd:
		return 3
	case lexer.TokenPipe:
		return 4
	case lexer.TokenCaret:
		return 5
	case lexer.TokenAmp:
		return 6
	case lexer.TokenEq, lexer.TokenNotEq, lexer.TokenStrictEq, lexer.TokenNotStrictEq:
		return 7
	case lexer.TokenLt, lexer.TokenGt, lexer.TokenLtEq, lexer.TokenGtEq,
		lexer.TokenInstanceof:
		return 8
	case lexer.TokenIn:
		if p.ctx.HasIn() {
			return 8
		}
		return 0
	case lexer.TokenShl, lexer.TokenShr, lexer.TokenUShr:
		return 9
	case lexer.TokenPlus, lexer.TokenMinus:
		return 10
	case lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent:
		return 11
	}
	return 0
}

const relationalPrecedence = 8

func (p *Parser) parseBinaryExpressionOrHigher(minPrec int) ast.Expr {
	start := p.start()
	lhs := p.parseExponentiationOrHigher()
	return p.parseBinaryExpressionRest(start, lhs, minPrec)
}

func (p *Parser) parseBinaryExpressionRest(start uint32, lhs ast.Expr, minPrec int) ast.Expr {
	for {
		// `expr as T` and `expr satisfies T` bind like relational
		// operators. A line break before the keyword ends the
		// expression instead, so `as` can start the next statement.
		if p.ts() && (p.at(lexer.TokenAs) || p.at(lexer.TokenSatisfies)) &&
			!p.curOnNewLine() && relationalPrecedence > minPrec {
			satisfies := p.at(lexer.TokenSatisfies)
			p.bump()
			ty := p.parseType()
			if satisfies {
				lhs = p.alloc.TSSatisfiesExpression.Alloc(ast.TSSatisfiesExpression{
					Loc:            p.finish(start),
					Expression:     lhs,
					TypeAnnotation: ty,
				})
			} else {
				lhs = p.alloc.TSAsExpression.Alloc(ast.TSAsExpression{
					Loc:            p.finish(start),
					Expression:     lhs,
					TypeAnnotation: ty,
				})
			}
			continue
		}

		op := p.cur().Type
		prec := p.binaryPrecedence(op)
		if prec == 0 || prec <= minPrec {
			return lhs
		}
		opText := op.String()
		p.bump()
		rhs := p.parseBinaryExpressionOrHigher(prec)

		switch op {
		case lexer.TokenLogicalAnd, lexer.TokenLogicalOr, lexer.TokenNullish:
			if op == lexer.TokenNullish {
				p.checkNullishMixing(lhs)
				p.checkNullishMixing(rhs)
			}
			lhs = p.alloc.LogicalExpression.Alloc(ast.LogicalExpression{
				Loc:      p.finish(start),
				Operator: opText,
				Left:     lhs,
				Right:    rhs,
			})
		default:
			lhs = p.alloc.BinaryExpression.Alloc(ast.BinaryExpression{
				Loc:      p.finish(start),
				Operator: opText,
				Left:     lhs,
				Right:    rhs,
			})
		}
	}
}

// checkNullishMixing rejects `a ?? b || c` without parentheses.
func (p *Parser) checkNullishMixing(operand ast.Expr) {
	if logical, ok := operand.(*ast.LogicalExpression); ok {
		if logical.Operator == "&&" || logical.Operator == "||" {
			p.bag.Add(diagNullishMixedWithLogical(logical.Loc))
		}
	}
}

func (p *Parser) parseExponentiationOrHigher() ast.Expr {
	start := p.start()
	isUnary := p.atUnaryOperator()
	lhs := p.parseUnaryExpressionOrHigher()
	if !p.at(lexer.TokenPow) {
		return lhs
	}
	if isUnary {
		// -a ** b is ambiguous and the grammar forbids it outright.
		p.bag.Add(diagUnexpectedToken(p.cur().Span))
	}
	p.bump()
	rhs := p.parseExponentiationOrHigher()
	return p.alloc.BinaryExpression.Alloc(ast.BinaryExpression{
		Loc:      p.finish(start),
		Operator: "**",
		Left:     lhs,
		Right:    rhs,
	})
}

func (p *Parser) atUnaryOperator() bool {
	switch p.cur().Type {
	case lexer.TokenDelete, lexer.TokenVoid, lexer.TokenTypeof,
		lexer.TokenPlus, lexer.TokenMinus, lexer.TokenTilde, lexer.TokenBang:
		return true
	case lexer.TokenAwait:
		return p.ctx.HasAwait()
	}
	return false
}

func (p *Parser) parseUnaryExpressionOrHigher() ast.Expr {
	start := p.start()
	tok := p.cur()
	switch tok.Type {
	case lexer.TokenDelete, lexer.TokenVoid, lexer.TokenTypeof,
		lexer.TokenPlus, lexer.TokenMinus, lexer.TokenTilde, lexer.TokenBang:
		opText := tok.Type.String()
		if tok.Type.IsKeyword() {
			opText = tok.Literal
		}
		p.bump()
		arg := p.parseUnaryExpressionOrHigher()
		return p.alloc.UnaryExpression.Alloc(ast.UnaryExpression{
			Loc:      p.finish(start),
			Operator: opText,
			Argument: arg,
		})
	case lexer.TokenInc, lexer.TokenDec:
		opText := tok.Type.String()
		p.bump()
		arg := p.parseUnaryExpressionOrHigher()
		p.checkSimpleTarget(arg)
		return p.alloc.UpdateExpression.Alloc(ast.UpdateExpression{
			Loc:      p.finish(start),
			Operator: opText,
			Prefix:   true,
			Argument: arg,
		})
	case lexer.TokenAwait:
		if p.atAwaitExpression() {
			return p.parseAwaitExpression()
		}
	case lexer.TokenLt:
		// `<T>expr` type assertions are old-style TS syntax; in .ts
		// files they are still legal outside JSX.
		if p.ts() {
			if assertion, ok := p.tryParseTypeAssertion(); ok {
				return assertion
			}
		}
	}
	return p.parsePostfixExpression()
}

// atAwaitExpression decides whether `await` heads an await expression
// or is a plain identifier. Outside await context it is still treated
// as an operator when an operand clearly follows, with a diagnostic,
// which recovers `await fn()` inside a sync function sensibly.
func (p *Parser) atAwaitExpression() bool {
	if p.ctx.HasAwait() {
		return true
	}
	next := p.peek()
	return !next.OnNewLine && p.tokenCanStartExpression(next.Type)
}

func (p *Parser) parseAwaitExpression() ast.Expr {
	start := p.start()
	if !p.ctx.HasAwait() {
		p.bag.Add(diagAwaitOutsideAsync(p.cur().Span))
	}
	p.bump()
	arg := p.parseUnaryExpressionOrHigher()
	return p.alloc.AwaitExpression.Alloc(ast.AwaitExpression{
		Loc:      p.finish(start),
		Argument: arg,
	})
}

func (p *Parser) parsePostfixExpression() ast.Expr {
	start := p.start()
	expr := p.parseLHSExpression()
	tok := p.cur()
	if (tok.Type == lexer.TokenInc || tok.Type == lexer.TokenDec) && !tok.OnNewLine {
		p.checkSimpleTarget(expr)
		p.bump()
		return p.alloc.UpdateExpression.Alloc(ast.UpdateExpression{
			Loc:      p.finish(start),
			Operator: tok.Type.String(),
			Prefix:   false,
			Argument: expr,
		})
	}
	return expr
}

func (p *Parser) checkSimpleTarget(expr ast.Expr) {
	switch expr.(type) {
	case *ast.IdentifierReference, *ast.MemberExpression,
		*ast.TSNonNullExpression, *ast.ParenthesizedExpression,
		*ast.InvalidExpression:
	default:
		p.bag.Add(diagInvalidAssignmentTarget(expr.Span()))
	}
}

// tokenCanStartExpression is a conservative first-set test used by
// lookahead decisions.
func (p *Parser) tokenCanStartExpression(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenIdent, lexer.TokenNumber, lexer.TokenBigInt, lexer.TokenString,
		lexer.TokenTemplate, lexer.TokenTemplateHead, lexer.TokenRegExp,
		lexer.TokenLParen, lexer.TokenLBracket, lexer.TokenLBrace,
		lexer.TokenThis, lexer.TokenSuper, lexer.TokenNew, lexer.TokenFunction,
		lexer.TokenClass, lexer.TokenTrue, lexer.TokenFalse, lexer.TokenNull,
		lexer.TokenTypeof, lexer.TokenVoid, lexer.TokenDelete,
		lexer.TokenPlus, lexer.TokenMinus, lexer.TokenTilde, lexer.TokenBang,
		lexer.TokenInc, lexer.TokenDec, lexer.TokenSlash, lexer.TokenSlashAssign,
		lexer.TokenImport, lexer.TokenAwait, lexer.TokenYield,
		lexer.TokenPrivateName:
		return true
	}
	return tt.IsContextualKeyword()
}

// --- left-hand-side expressions ---

func (p *Parser) parseLHSExpression() ast.Expr {
	start := p.start()
	var base ast.Expr
	switch {
	case p.at(lexer.TokenNew):
		base = p.parseNewExpression()
	case p.at(lexer.TokenSuper):
		base = p.parseSuper()
	default:
		base = p.parsePrimaryExpression()
	}
	return p.parseCallMemberChain(start, base, false)
}

// parseCallMemberChain extends base with member accesses, calls,
// tagged templates and the TS postfix forms until nothing more
// attaches.
func (p *Parser) parseCallMemberChain(start uint32, base ast.Expr, inOptionalChain bool) ast.Expr {
	for {
		switch p.cur().Type {
		case lexer.TokenDot:
			p.bump()
			base = p.parseStaticMember(start, base, false)
		case lexer.TokenQuestionDot:
			p.bump()
			inOptionalChain = true
			switch p.cur().Type {
			case lexer.TokenLParen:
				args := p.parseArguments()
				base = p.alloc.CallExpression.Alloc(ast.CallExpression{
					Loc:       p.finish(start),
					Callee:    base,
					Arguments: args,
					Optional:  true,
				})
			case lexer.TokenLBracket:
				base = p.parseComputedMember(start, base, true)
			case lexer.TokenTemplate, lexer.TokenTemplateHead:
				p.bag.Add(diagOptionalChainTaggedTemplate(p.cur().Span))
				base = p.parseTaggedTemplate(start, base, nil)
			default:
				base = p.parseStaticMember(start, base, true)
			}
		case lexer.TokenLBracket:
			base = p.parseComputedMember(start, base, false)
		case lexer.TokenLParen:
			args := p.parseArguments()
			base = p.alloc.CallExpression.Alloc(ast.CallExpression{
				Loc:       p.finish(start),
				Callee:    base,
				Arguments: args,
			})
		case lexer.TokenTemplate, lexer.TokenTemplateHead:
			if inOptionalChain {
				p.bag.Add(diagOptionalChainTaggedTemplate(p.cur().Span))
			}
			base = p.parseTaggedTemplate(start, base, nil)
		case lexer.TokenBang:
			if !p.ts() || p.curOnNewLine() {
				return base
			}
			p.bump()
			base = p.alloc.TSNonNullExpression.Alloc(ast.TSNonNullExpression{
				Loc:        p.finish(start),
				Expression: base,
			})
		case lexer.TokenLt, lexer.TokenShl:
			if !p.ts() {
				return base
			}
			next, ok := p.tryParseTypeArgumentsInExpression(start, base)
			if !ok {
				return base
			}
			base = next
		default:
			return base
		}
	}
}

func (p *Parser) parseStaticMember(start uint32, object ast.Expr, optional bool) ast.Expr {
	var property ast.Expr
	if p.at(lexer.TokenPrivateName) {
		tok := p.cur()
		p.bump()
		property = p.alloc.PrivateIdentifier.Alloc(ast.PrivateIdentifier{
			Loc:  tok.Span,
			Name: tok.Literal,
		})
	} else {
		name := p.parseIdentifierName()
		if name == nil {
			p.fatal = false
			return p.invalidExpr(p.finish(start))
		}
		property = name
	}
	return p.alloc.MemberExpression.Alloc(ast.MemberExpression{
		Loc:      p.finish(start),
		Object:   object,
		Property: property,
		Optional: optional,
	})
}

func (p *Parser) parseComputedMember(start uint32, object ast.Expr, optional bool) ast.Expr {
	p.bump() // [
	saved := p.ctx
	p.ctx = p.ctx.WithIn(true)
	property := p.parseExpression()
	p.ctx = saved
	p.expect(lexer.TokenRBracket)
	return p.alloc.MemberExpression.Alloc(ast.MemberExpression{
		Loc:      p.finish(start),
		Object:   object,
		Property: property,
		Computed: true,
		Optional: optional,
	})
}

// tryParseTypeArgumentsInExpression speculatively reads `<TypeArgs>`
// after an expression. It commits only when what follows proves the
// angle bracket was not a comparison: an argument list makes it a
// generic call, a template makes it a tagged template, and anything
// that cannot continue an expression makes it an instantiation
// expression.
func (p *Parser) tryParseTypeArgumentsInExpression(start uint32, base ast.Expr) (ast.Expr, bool) {
	var result ast.Expr
	ok := p.tryParse(func() bool {
		typeArgs := p.parseTypeArguments()
		if typeArgs == nil || p.fatal {
			return false
		}
		switch p.cur().Type {
		case lexer.TokenLParen:
			args := p.parseArguments()
			result = p.alloc.CallExpression.Alloc(ast.CallExpression{
				Loc:           p.finish(start),
				Callee:        base,
				TypeArguments: typeArgs,
				Arguments:     args,
			})
			return true
		case lexer.TokenTemplate, lexer.TokenTemplateHead:
			result = p.parseTaggedTemplate(start, base, typeArgs)
			return true
		}
		if p.tokenCanStartExpression(p.cur().Type) && !p.curOnNewLine() {
			// `a < b > c` style comparison; back out.
			return false
		}
		result = p.alloc.TSInstantiationExpression.Alloc(ast.TSInstantiationExpression{
			Loc:           p.finish(start),
			Expression:    base,
			TypeArguments: typeArgs,
		})
		return true
	})
	return result, ok
}

// parseArguments reads a parenthesized argument list, spread and
// trailing comma included.
func (p *Parser) parseArguments() []ast.Expr {
	p.expect(lexer.TokenLParen)
	saved := p.ctx
	p.ctx = p.ctx.WithIn(true)
	defer func() { p.ctx = saved }()

	var args []ast.Expr
	for !p.at(lexer.TokenRParen) && !p.at(lexer.TokenEOF) {
		if p.at(lexer.TokenEllipsis) {
			spreadStart := p.start()
			p.bump()
			arg := p.parseAssignmentExpressionOrHigher()
			args = append(args, p.alloc.SpreadElement.Alloc(ast.SpreadElement{
				Loc:      p.finish(spreadStart),
				Argument: arg,
			}))
		} else {
			args = append(args, p.parseAssignmentExpressionOrHigher())
		}
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRParen)
	return p.alloc.CopyExprs(args)
}

// parseNewExpression handles `new expr(...)`, argument-less `new` and
// the `new.target` meta property.
func (p *Parser) parseNewExpression() ast.Expr {
	start := p.start()
	newTok := p.cur()
	p.bump()

	if p.at(lexer.TokenDot) {
		p.bump()
		prop := p.cur()
		if prop.Type != lexer.TokenTarget {
			p.bag.Add(diagUnexpectedToken(prop.Span))
		}
		if !p.ctx.HasReturn() {
			p.bag.Add(diagNewTargetOutsideFunction(p.finish(start)))
		}
		p.bump()
		return p.alloc.MetaProperty.Alloc(ast.MetaProperty{
			Loc: p.finish(start),
			Meta: p.alloc.IdentifierName.Alloc(ast.IdentifierName{
				Loc: newTok.Span, Name: "new",
			}),
			Property: p.alloc.IdentifierName.Alloc(ast.IdentifierName{
				Loc: prop.Span, Name: prop.Literal,
			}),
		})
	}

	calleeStart := p.start()
	var callee ast.Expr
	if p.at(lexer.TokenNew) {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	// Member accesses bind to the callee; call parentheses end it.
	callee = p.parseNewCalleeChain(calleeStart, callee)

	var typeArgs *ast.TSTypeArguments
	if p.ts() && (p.at(lexer.TokenLt) || p.at(lexer.TokenShl)) {
		p.tryParse(func() bool {
			ta := p.parseTypeArguments()
			if ta == nil || p.fatal || !p.at(lexer.TokenLParen) {
				return false
			}
			typeArgs = ta
			return true
		})
	}

	var args []ast.Expr
	if p.at(lexer.TokenLParen) {
		args = p.parseArguments()
	}
	return p.alloc.NewExpression.Alloc(ast.NewExpression{
		Loc:           p.finish(start),
		Callee:        callee,
		TypeArguments: typeArgs,
		Arguments:     args,
	})
}

// parseNewCalleeChain is the member-only subset of the chain loop used
// for new-expression callees.
func (p *Parser) parseNewCalleeChain(start uint32, base ast.Expr) ast.Expr {
	for {
		switch p.cur().Type {
		case lexer.TokenDot:
			p.bump()
			base = p.parseStaticMember(start, base, false)
		case lexer.TokenLBracket:
			base = p.parseComputedMember(start, base, false)
		default:
			return base
		}
	}
}

func (p *Parser) parseSuper() ast.Expr {
	tok := p.cur()
	p.bump()
	if !p.ctx.HasSuper() {
		p.bag.Add(diagSuperOutsideClass(tok.Span))
	} else {
		switch p.cur().Type {
		case lexer.TokenDot, lexer.TokenLBracket, lexer.TokenLParen:
		default:
			p.bag.Add(diagSuperOutsideClass(tok.Span))
		}
	}
	return p.alloc.Super.Alloc(ast.Super{Loc: tok.Span})
}

// --- primary expressions ---

func (p *Parser) parsePrimaryExpression() ast.Expr {
	tok := p.cur()
	switch tok.Type {
	case lexer.TokenThis:
		p.bump()
		return p.alloc.ThisExpression.Alloc(ast.ThisExpression{Loc: tok.Span})
	case lexer.TokenTrue, lexer.TokenFalse:
		p.bump()
		return p.alloc.BooleanLiteral.Alloc(ast.BooleanLiteral{
			Loc: tok.Span, Value: tok.Type == lexer.TokenTrue,
		})
	case lexer.TokenNull:
		p.bump()
		return p.alloc.NullLiteral.Alloc(ast.NullLiteral{Loc: tok.Span})
	case lexer.TokenNumber:
		p.bump()
		return p.alloc.NumericLiteral.Alloc(ast.NumericLiteral{
			Loc: tok.Span, Value: tok.Number, Raw: tok.Literal,
		})
	case lexer.TokenBigInt:
		p.bump()
		return p.alloc.BigIntLiteral.Alloc(ast.BigIntLiteral{Loc: tok.Span, Raw: tok.Literal})
	case lexer.TokenString:
		p.bump()
		return p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value})
	case lexer.TokenSlash, lexer.TokenSlashAssign:
		return p.parseRegExpLiteral()
	case lexer.TokenTemplate, lexer.TokenTemplateHead:
		return p.parseTemplateLiteral()
	case lexer.TokenLBracket:
		return p.parseArrayExpression()
	case lexer.TokenLBrace:
		return p.parseObjectExpression()
	case lexer.TokenLParen:
		return p.parseParenthesizedExpression()
	case lexer.TokenFunction:
		return p.parseFunctionExpression(false)
	case lexer.TokenAsync:
		if p.atAsyncFunctionExpression() {
			return p.parseFunctionExpression(true)
		}
	case lexer.TokenClass:
		return p.parseClassExpression()
	case lexer.TokenImport:
		return p.parseImportExpressionOrMeta()
	case lexer.TokenPrivateName:
		// `#field in obj` is the only expression position for a bare
		// private name; the binary loop validates the `in`.
		p.bump()
		return p.alloc.PrivateIdentifier.Alloc(ast.PrivateIdentifier{
			Loc: tok.Span, Name: tok.Literal,
		})
	}
	if p.atIdentifier() {
		ref := p.parseIdentifierReference()
		if ref == nil {
			p.fatal = true
			return p.invalidExpr(tok.Span)
		}
		return ref
	}
	p.bag.Add(diagUnexpectedToken(tok.Span))
	p.fatal = true
	return p.invalidExpr(tok.Span)
}

// atAsyncFunctionExpression matches `async function` with no line
// break between the tokens.
func (p *Parser) atAsyncFunctionExpression() bool {
	next := p.peek()
	return next.Type == lexer.TokenFunction && !next.OnNewLine
}

func (p *Parser) parseRegExpLiteral() ast.Expr {
	p.lex.ReScanSlashAsRegExp()
	tok := p.cur()
	p.bump()
	pattern, flags := splitRegExpLiteral(tok.Literal)
	return p.alloc.RegExpLiteral.Alloc(ast.RegExpLiteral{
		Loc:     tok.Span,
		Pattern: pattern,
		Flags:   flags,
	})
}

// splitRegExpLiteral divides `/pattern/flags` source text.
func splitRegExpLiteral(raw string) (pattern, flags string) {
	if len(raw) < 2 || raw[0] != '/' {
		return raw, ""
	}
	for i := len(raw) - 1; i > 0; i-- {
		if raw[i] == '/' {
			return raw[1:i], raw[i+1:]
		}
	}
	return raw[1:], ""
}

func (p *Parser) parseTemplateLiteral() ast.Expr {
	return p.parseTemplateLiteralNode()
}

func (p *Parser) parseTemplateLiteralNode() *ast.TemplateLiteral {
	start := p.start()
	tok := p.cur()

	if tok.Type == lexer.TokenTemplate {
		p.bump()
		return p.alloc.TemplateLiteral.Alloc(ast.TemplateLiteral{
			Loc: p.finish(start),
			Quasis: []ast.TemplateElement{{
				Loc: tok.Span, Cooked: tok.Value, Raw: tok.Literal, Tail: true,
			}},
		})
	}

	quasis := []ast.TemplateElement{{
		Loc: tok.Span, Cooked: tok.Value, Raw: tok.Literal,
	}}
	var exprs []ast.Expr
	p.bump()
	for {
		saved := p.ctx
		p.ctx = p.ctx.WithIn(true)
		exprs = append(exprs, p.parseExpression())
		p.ctx = saved

		if !p.at(lexer.TokenRBrace) {
			p.bag.Add(diagExpectToken("}", p.cur().Type.String(), p.cur().Span))
			break
		}
		p.lex.ReScanTemplateContinuation()
		chunk := p.cur()
		tail := chunk.Type == lexer.TokenTemplateTail
		quasis = append(quasis, ast.TemplateElement{
			Loc: chunk.Span, Cooked: chunk.Value, Raw: chunk.Literal, Tail: tail,
		})
		p.bump()
		if tail || chunk.Type == lexer.TokenEOF {
			break
		}
	}
	return p.alloc.TemplateLiteral.Alloc(ast.TemplateLiteral{
		Loc:         p.finish(start),
		Quasis:      quasis,
		Expressions: p.alloc.CopyExprs(exprs),
	})
}

func (p *Parser) parseTaggedTemplate(start uint32, tag ast.Expr, typeArgs *ast.TSTypeArguments) ast.Expr {
	quasi := p.parseTemplateLiteralNode()
	return p.alloc.TaggedTemplateExpression.Alloc(ast.TaggedTemplateExpression{
		Loc:           p.finish(start),
		Tag:           tag,
		TypeArguments: typeArgs,
		Quasi:         quasi,
	})
}

func (p *Parser) parseArrayExpression() ast.Expr {
	start := p.start()
	p.bump() // [
	saved := p.ctx
	p.ctx = p.ctx.WithIn(true)
	defer func() { p.ctx = saved }()

	var elements []ast.Expr
	for !p.at(lexer.TokenRBracket) && !p.at(lexer.TokenEOF) {
		if p.at(lexer.TokenComma) {
			elements = append(elements, nil) // elision
			p.bump()
			continue
		}
		if p.at(lexer.TokenEllipsis) {
			spreadStart := p.start()
			p.bump()
			arg := p.parseAssignmentExpressionOrHigher()
			elements = append(elements, p.alloc.SpreadElement.Alloc(ast.SpreadElement{
				Loc:      p.finish(spreadStart),
				Argument: arg,
			}))
		} else {
			elements = append(elements, p.parseAssignmentExpressionOrHigher())
		}
		if !p.at(lexer.TokenRBracket) && !p.expect(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBracket)
	return p.alloc.ArrayExpression.Alloc(ast.ArrayExpression{
		Loc:      p.finish(start),
		Elements: p.alloc.CopyExprs(elements),
	})
}

func (p *Parser) parseObjectExpression() ast.Expr {
	start := p.start()
	p.bump() // {
	saved := p.ctx
	p.ctx = p.ctx.WithIn(true)
	defer func() { p.ctx = saved }()

	var props []ast.Expr
	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		props = append(props, p.parseObjectLiteralMember())
		if p.fatal {
			p.fatal = false
			// Skip to the next member boundary inside the literal.
			for !p.at(lexer.TokenComma) && !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
				p.bump()
			}
		}
		if !p.at(lexer.TokenRBrace) && !p.expect(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)
	return p.alloc.ObjectExpression.Alloc(ast.ObjectExpression{
		Loc:        p.finish(start),
		Properties: p.alloc.CopyExprs(props),
	})
}

func (p *Parser) parseObjectLiteralMember() ast.Expr {
	start := p.start()
	if p.at(lexer.TokenEllipsis) {
		p.bump()
		arg := p.parseAssignmentExpressionOrHigher()
		return p.alloc.SpreadElement.Alloc(ast.SpreadElement{
			Loc:      p.finish(start),
			Argument: arg,
		})
	}

	async := false
	generator := false
	kind := ast.PropertyInit

	// `async`, `get` and `set` are keys unless a property key follows.
	if p.at(lexer.TokenAsync) && p.propertyKeyFollows() && !p.peek().OnNewLine {
		async = true
		p.bump()
	}
	if p.eat(lexer.TokenStar) {
		generator = true
	}
	if !async && !generator {
		if p.at(lexer.TokenGet) && p.propertyKeyFollows() {
			kind = ast.PropertyGet
			p.bump()
		} else if p.at(lexer.TokenSet) && p.propertyKeyFollows() {
			kind = ast.PropertySet
			p.bump()
		}
	}

	key, computed := p.parsePropertyKey()
	if key == nil {
		p.fatal = true
		return p.invalidExpr(p.finish(start))
	}

	if kind != ast.PropertyInit || async || generator || p.at(lexer.TokenLParen) || p.at(lexer.TokenLt) {
		method := p.parseMethodFunction(async, generator, kind, ast.UniqueFormalParameters)
		return p.alloc.ObjectProperty.Alloc(ast.ObjectProperty{
			Loc:      p.finish(start),
			Kind:     kind,
			Key:      key,
			Value:    method,
			Computed: computed,
			Method:   kind == ast.PropertyInit,
		})
	}

	if p.eat(lexer.TokenColon) {
		value := p.parseAssignmentExpressionOrHigher()
		return p.alloc.ObjectProperty.Alloc(ast.ObjectProperty{
			Loc:      p.finish(start),
			Key:      key,
			Value:    value,
			Computed: computed,
		})
	}

	// Shorthand, possibly with a cover initializer that only becomes
	// legal if the literal turns out to be a destructuring pattern.
	ref, isIdent := key.(*ast.IdentifierReference)
	if !isIdent {
		p.bag.Add(diagExpectToken(":", p.cur().Type.String(), p.cur().Span))
		return p.alloc.ObjectProperty.Alloc(ast.ObjectProperty{
			Loc: p.finish(start), Key: key, Value: key, Computed: computed, Shorthand: true,
		})
	}
	value := ast.Expr(ref)
	if p.at(lexer.TokenAssign) {
		p.bump()
		init := p.parseAssignmentExpressionOrHigher()
		value = p.alloc.AssignmentExpression.Alloc(ast.AssignmentExpression{
			Loc:      p.finish(start),
			Operator: "=",
			Left:     ref,
			Right:    init,
		})
	}
	return p.alloc.ObjectProperty.Alloc(ast.ObjectProperty{
		Loc:       p.finish(start),
		Key:       key,
		Value:     value,
		Shorthand: true,
	})
}

// propertyKeyFollows reports whether the token after the current one
// can be a property key, which disambiguates `get x()` from `get: 1`
// and `get() {}`.
func (p *Parser) propertyKeyFollows() bool {
	next := p.peek()
	switch next.Type {
	case lexer.TokenString, lexer.TokenNumber, lexer.TokenBigInt,
		lexer.TokenLBracket, lexer.TokenStar, lexer.TokenPrivateName:
		return true
	}
	return next.Type.IsIdentifierName()
}

// parsePropertyKey reads one property key; computed keys return the
// bracketed expression.
func (p *Parser) parsePropertyKey() (ast.Expr, bool) {
	tok := p.cur()
	switch tok.Type {
	case lexer.TokenString:
		p.bump()
		return p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value}), false
	case lexer.TokenNumber:
		p.bump()
		return p.alloc.NumericLiteral.Alloc(ast.NumericLiteral{
			Loc: tok.Span, Value: tok.Number, Raw: tok.Literal,
		}), false
	case lexer.TokenBigInt:
		p.bump()
		return p.alloc.BigIntLiteral.Alloc(ast.BigIntLiteral{Loc: tok.Span, Raw: tok.Literal}), false
	case lexer.TokenLBracket:
		p.bump()
		saved := p.ctx
		p.ctx = p.ctx.WithIn(true)
		key := p.parseAssignmentExpressionOrHigher()
		p.ctx = saved
		p.expect(lexer.TokenRBracket)
		return key, true
	case lexer.TokenPrivateName:
		p.bump()
		return p.alloc.PrivateIdentifier.Alloc(ast.PrivateIdentifier{
			Loc: tok.Span, Name: tok.Literal,
		}), false
	}
	if tok.Type.IsIdentifierName() {
		p.bump()
		return p.alloc.IdentifierReference.Alloc(ast.IdentifierReference{
			Loc: tok.Span, Name: tok.Literal,
		}), false
	}
	p.bag.Add(diagIdentifierExpected(tok.Span))
	return nil, false
}

func (p *Parser) parseParenthesizedExpression() ast.Expr {
	start := p.start()
	p.bump() // (
	saved := p.ctx
	p.ctx = p.ctx.WithIn(true)
	expr := p.parseExpression()
	p.ctx = saved
	p.expect(lexer.TokenRParen)
	return p.alloc.ParenthesizedExpression.Alloc(ast.ParenthesizedExpression{
		Loc:        p.finish(start),
		Expression: expr,
	})
}

// parseImportExpressionOrMeta handles dynamic import calls and
// `import.meta`. A bare `import` in expression position is an error.
func (p *Parser) parseImportExpressionOrMeta() ast.Expr {
	start := p.start()
	importTok := p.cur()
	p.bump()

	if p.at(lexer.TokenDot) {
		p.bump()
		prop := p.cur()
		if prop.Type != lexer.TokenMeta {
			p.bag.Add(diagUnexpectedToken(prop.Span))
		}
		if !p.module() {
			p.bag.Add(diagImportMetaOutsideModule(p.finish(start)))
		}
		p.bump()
		return p.alloc.MetaProperty.Alloc(ast.MetaProperty{
			Loc: p.finish(start),
			Meta: p.alloc.IdentifierName.Alloc(ast.IdentifierName{
				Loc: importTok.Span, Name: "import",
			}),
			Property: p.alloc.IdentifierName.Alloc(ast.IdentifierName{
				Loc: prop.Span, Name: prop.Literal,
			}),
		})
	}

	if !p.at(lexer.TokenLParen) {
		p.bag.Add(diagUnexpectedToken(p.cur().Span))
		p.fatal = true
		return p.invalidExpr(p.finish(start))
	}
	p.bump()
	saved := p.ctx
	p.ctx = p.ctx.WithIn(true)
	source := p.parseAssignmentExpressionOrHigher()
	var options ast.Expr
	if p.eat(lexer.TokenComma) && !p.at(lexer.TokenRParen) {
		options = p.parseAssignmentExpressionOrHigher()
		p.eat(lexer.TokenComma)
	}
	p.ctx = saved
	p.expect(lexer.TokenRParen)
	return p.alloc.ImportExpression.Alloc(ast.ImportExpression{
		Loc:     p.finish(start),
		Source:  source,
		Options: options,
	})
}

// tryParseTypeAssertion reads the old-style `<T>expr` assertion. The
// angle bracket could also open a generic arrow function; that case
// was tried earlier in assignment parsing, so a committed type here
// followed by an expression is an assertion. Kept as TSAsExpression
// with the operand order normalized.
func (p *Parser) tryParseTypeAssertion() (ast.Expr, bool) {
	var result ast.Expr
	start := p.start()
	ok := p.tryParse(func() bool {
		if !p.eat(lexer.TokenLt) {
			return false
		}
		ty := p.parseType()
		if p.fatal || !p.eat(lexer.TokenGt) {
			return false
		}
		expr := p.parseUnaryExpressionOrHigher()
		if p.fatal {
			return false
		}
		result = p.alloc.TSAsExpression.Alloc(ast.TSAsExpression{
			Loc:            p.finish(start),
			Expression:     expr,
			TypeAnnotation: ty,
		})
		return true
	})
	return result, ok
}
