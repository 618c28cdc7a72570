package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/lexer"
)

// eatLtInType consumes a `<` in type position, splitting `<<` so the
// inner list sees its own opener.
func (p *Parser) eatLtInType() bool {
	switch p.cur().Type {
	case lexer.TokenLt:
		p.bump()
		return true
	case lexer.TokenShl, lexer.TokenShlAssign, lexer.TokenLtEq:
		p.lex.ReScanLessThan()
		p.bump()
		return true
	}
	return false
}

// eatGtInType consumes a `>` in type position. Compound tokens that
// merely start with `>` are split first, so `Map<string, Set<T>>`
// closes both lists off the single `>>` token.
func (p *Parser) eatGtInType() bool {
	switch p.cur().Type {
	case lexer.TokenGt:
		p.bump()
		return true
	case lexer.TokenShr, lexer.TokenUShr, lexer.TokenGtEq,
		lexer.TokenShrAssign, lexer.TokenUShrAssign:
		p.lex.ReScanGreaterThan()
		p.bump()
		return true
	}
	return false
}

// parseTypeAnnotation reads `: T`.
func (p *Parser) parseTypeAnnotation() *ast.TSTypeAnnotation {
	start := p.start()
	p.expect(lexer.TokenColon)
	ty := p.parseType()
	return p.alloc.TSTypeAnnotation.Alloc(ast.TSTypeAnnotation{
		Loc:            p.finish(start),
		TypeAnnotation: ty,
	})
}

// parseReturnTypeAnnotation reads `: T` where T may be a type
// predicate (`x is T`, `asserts x`).
func (p *Parser) parseReturnTypeAnnotation() *ast.TSTypeAnnotation {
	start := p.start()
	p.expect(lexer.TokenColon)
	ty := p.parseTypeOrTypePredicate()
	return p.alloc.TSTypeAnnotation.Alloc(ast.TSTypeAnnotation{
		Loc:            p.finish(start),
		TypeAnnotation: ty,
	})
}

func (p *Parser) parseTypeOrTypePredicate() ast.TSType {
	start := p.start()
	if p.at(lexer.TokenAsserts) && !p.peek().OnNewLine &&
		(p.peek().Type.IsIdentifierName() || p.peek().Type == lexer.TokenThis) {
		p.bump()
		name := p.parseTypePredicateName()
		var annotation *ast.TSTypeAnnotation
		if p.at(lexer.TokenIs) {
			isStart := p.start()
			p.bump()
			ty := p.parseType()
			annotation = p.alloc.TSTypeAnnotation.Alloc(ast.TSTypeAnnotation{
				Loc:            p.finish(isStart),
				TypeAnnotation: ty,
			})
		}
		return p.alloc.TSTypePredicate.Alloc(ast.TSTypePredicate{
			Loc:            p.finish(start),
			ParameterName:  name,
			Asserts:        true,
			TypeAnnotation: annotation,
		})
	}

	if (p.cur().Type.IsIdentifierName() || p.at(lexer.TokenThis)) &&
		p.peek().Type == lexer.TokenIs && !p.peek().OnNewLine {
		name := p.parseTypePredicateName()
		isStart := p.start()
		p.bump() // is
		ty := p.parseType()
		annotation := p.alloc.TSTypeAnnotation.Alloc(ast.TSTypeAnnotation{
			Loc:            p.finish(isStart),
			TypeAnnotation: ty,
		})
		return p.alloc.TSTypePredicate.Alloc(ast.TSTypePredicate{
			Loc:            p.finish(start),
			ParameterName:  name,
			TypeAnnotation: annotation,
		})
	}
	return p.parseType()
}

func (p *Parser) parseTypePredicateName() ast.Node {
	tok := p.cur()
	p.bump()
	if tok.Type == lexer.TokenThis {
		return p.alloc.TSKeywordType.Alloc(ast.TSKeywordType{Loc: tok.Span, Kind: "this"})
	}
	return p.alloc.IdentifierName.Alloc(ast.IdentifierName{Loc: tok.Span, Name: tok.Literal})
}

// parseType is the top type production: conditional types over unions.
func (p *Parser) parseType() ast.TSType {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	if fn, ok := p.tryParseFunctionOrConstructorType(); ok {
		return fn
	}

	start := p.start()
	check := p.parseUnionTypeOrHigher()
	if check == nil || !p.at(lexer.TokenExtends) || p.curOnNewLine() {
		return check
	}
	p.bump() // extends
	// The extends clause itself cannot contain a bare conditional.
	extends := p.parseUnionTypeOrHigher()
	p.expect(lexer.TokenQuestion)
	trueType := p.parseType()
	p.expect(lexer.TokenColon)
	falseType := p.parseType()
	return p.alloc.TSConditionalType.Alloc(ast.TSConditionalType{
		Loc:         p.finish(start),
		CheckType:   check,
		ExtendsType: extends,
		TrueType:    trueType,
		FalseType:   falseType,
	})
}

// tryParseFunctionOrConstructorType recognizes `(params) => R`,
// `<T>(params) => R` and `[abstract] new (params) => R` heads.
// Parenthesized heads are ambiguous with grouping, so the attempt
// rolls back entirely when no `=>` materializes.
func (p *Parser) tryParseFunctionOrConstructorType() (ast.TSType, bool) {
	abstract := false
	isCtor := p.at(lexer.TokenNew)
	if p.at(lexer.TokenAbstract) && p.peek().Type == lexer.TokenNew {
		abstract = true
		isCtor = true
	}
	if !isCtor && !p.at(lexer.TokenLParen) && !p.at(lexer.TokenLt) && p.cur().Type != lexer.TokenShl {
		return nil, false
	}

	var result ast.TSType
	ok := p.tryParse(func() bool {
		start := p.start()
		if abstract {
			p.bump()
		}
		if isCtor {
			p.bump() // new
		}
		var typeParams *ast.TSTypeParameterDeclaration
		if p.at(lexer.TokenLt) || p.cur().Type == lexer.TokenShl {
			typeParams = p.parseTypeParameters()
			if typeParams == nil || p.fatal {
				return false
			}
		}
		if !p.at(lexer.TokenLParen) {
			return false
		}
		thisParam, params := p.parseFormalParameters(ast.SignatureParameters)
		if p.fatal || params == nil {
			return false
		}
		if !p.at(lexer.TokenArrow) {
			return false
		}
		arrowStart := p.start()
		p.bump()
		retType := p.parseTypeOrTypePredicate()
		if retType == nil {
			return false
		}
		annotation := p.alloc.TSTypeAnnotation.Alloc(ast.TSTypeAnnotation{
			Loc:            p.finish(arrowStart),
			TypeAnnotation: retType,
		})
		if isCtor {
			if thisParam != nil {
				p.bag.Add(diagUnexpectedToken(thisParam.Loc))
			}
			result = p.alloc.TSConstructorType.Alloc(ast.TSConstructorType{
				Loc:            p.finish(start),
				Abstract:       abstract,
				TypeParameters: typeParams,
				Params:         params,
				ReturnType:     annotation,
			})
		} else {
			result = p.alloc.TSFunctionType.Alloc(ast.TSFunctionType{
				Loc:            p.finish(start),
				TypeParameters: typeParams,
				ThisParam:      thisParam,
				Params:         params,
				ReturnType:     annotation,
			})
		}
		return true
	})
	return result, ok
}

// parseUnionTypeOrHigher parses `A | B | C`, tolerating a leading `|`.
func (p *Parser) parseUnionTypeOrHigher() ast.TSType {
	start := p.start()
	p.eat(lexer.TokenPipe)
	first := p.parseIntersectionTypeOrHigher()
	if !p.at(lexer.TokenPipe) {
		return first
	}
	types := []ast.TSType{first}
	for p.eat(lexer.TokenPipe) {
		types = append(types, p.parseIntersectionTypeOrHigher())
	}
	return p.alloc.TSUnionType.Alloc(ast.TSUnionType{
		Loc:   p.finish(start),
		Types: types,
	})
}

func (p *Parser) parseIntersectionTypeOrHigher() ast.TSType {
	start := p.start()
	p.eat(lexer.TokenAmp)
	first := p.parseTypeOperatorOrHigher()
	if !p.at(lexer.TokenAmp) {
		return first
	}
	types := []ast.TSType{first}
	for p.eat(lexer.TokenAmp) {
		types = append(types, p.parseTypeOperatorOrHigher())
	}
	return p.alloc.TSIntersectionType.Alloc(ast.TSIntersectionType{
		Loc:   p.finish(start),
		Types: types,
	})
}

// parseTypeOperatorOrHigher handles the prefix operators keyof,
// unique, readonly and infer.
func (p *Parser) parseTypeOperatorOrHigher() ast.TSType {
	start := p.start()
	switch p.cur().Type {
	case lexer.TokenKeyof, lexer.TokenUnique, lexer.TokenReadonly:
		op := p.cur().Literal
		p.bump()
		arg := p.parseTypeOperatorOrHigher()
		return p.alloc.TSTypeOperator.Alloc(ast.TSTypeOperator{
			Loc:            p.finish(start),
			Operator:       op,
			TypeAnnotation: arg,
		})
	case lexer.TokenInfer:
		p.bump()
		name := p.parseBindingIdentifier()
		if name == nil {
			return nil
		}
		param := p.alloc.TSTypeParameter.Alloc(ast.TSTypeParameter{
			Loc:  name.Loc,
			Name: name,
		})
		return p.alloc.TSInferType.Alloc(ast.TSInferType{
			Loc:           p.finish(start),
			TypeParameter: param,
		})
	}
	return p.parsePostfixType()
}

// parsePostfixType parses a primary type followed by `[]` array and
// `[K]` indexed-access suffixes. A line break before `[` ends the
// type, mirroring ASI at the expression level.
func (p *Parser) parsePostfixType() ast.TSType {
	start := p.start()
	ty := p.parsePrimaryType()
	for ty != nil && p.at(lexer.TokenLBracket) && !p.curOnNewLine() {
		p.bump()
		if p.eat(lexer.TokenRBracket) {
			ty = p.alloc.TSArrayType.Alloc(ast.TSArrayType{
				Loc:         p.finish(start),
				ElementType: ty,
			})
			continue
		}
		index := p.parseType()
		p.expect(lexer.TokenRBracket)
		ty = p.alloc.TSIndexedAccessType.Alloc(ast.TSIndexedAccessType{
			Loc:        p.finish(start),
			ObjectType: ty,
			IndexType:  index,
		})
	}
	return ty
}

// keywordTypeNames are identifiers that denote built-in types when
// they appear alone in type position.
var keywordTypeNames = map[string]bool{
	"any": true, "bigint": true, "boolean": true, "intrinsic": true,
	"never": true, "number": true, "object": true, "string": true,
	"symbol": true, "unknown": true,
}

func (p *Parser) parsePrimaryType() ast.TSType {
	tok := p.cur()
	switch tok.Type {
	case lexer.TokenVoid:
		p.bump()
		return p.alloc.TSKeywordType.Alloc(ast.TSKeywordType{Loc: tok.Span, Kind: "void"})
	case lexer.TokenNull:
		p.bump()
		return p.alloc.TSKeywordType.Alloc(ast.TSKeywordType{Loc: tok.Span, Kind: "null"})
	case lexer.TokenUndefined:
		p.bump()
		return p.alloc.TSKeywordType.Alloc(ast.TSKeywordType{Loc: tok.Span, Kind: "undefined"})
	case lexer.TokenThis:
		p.bump()
		return p.alloc.TSKeywordType.Alloc(ast.TSKeywordType{Loc: tok.Span, Kind: "this"})
	case lexer.TokenString:
		p.bump()
		return p.alloc.TSLiteralType.Alloc(ast.TSLiteralType{
			Loc:     tok.Span,
			Literal: p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value}),
		})
	case lexer.TokenNumber:
		p.bump()
		return p.alloc.TSLiteralType.Alloc(ast.TSLiteralType{
			Loc: tok.Span,
			Literal: p.alloc.NumericLiteral.Alloc(ast.NumericLiteral{
				Loc: tok.Span, Value: tok.Number, Raw: tok.Literal,
			}),
		})
	case lexer.TokenBigInt:
		p.bump()
		return p.alloc.TSLiteralType.Alloc(ast.TSLiteralType{
			Loc:     tok.Span,
			Literal: p.alloc.BigIntLiteral.Alloc(ast.BigIntLiteral{Loc: tok.Span, Raw: tok.Literal}),
		})
	case lexer.TokenTrue, lexer.TokenFalse:
		p.bump()
		return p.alloc.TSLiteralType.Alloc(ast.TSLiteralType{
			Loc: tok.Span,
			Literal: p.alloc.BooleanLiteral.Alloc(ast.BooleanLiteral{
				Loc: tok.Span, Value: tok.Type == lexer.TokenTrue,
			}),
		})
	case lexer.TokenMinus:
		start := p.start()
		p.bump()
		num := p.cur()
		if num.Type != lexer.TokenNumber && num.Type != lexer.TokenBigInt {
			p.bag.Add(diagUnexpectedToken(num.Span))
			p.fatal = true
			return nil
		}
		p.bump()
		var lit ast.Expr
		if num.Type == lexer.TokenNumber {
			lit = p.alloc.NumericLiteral.Alloc(ast.NumericLiteral{
				Loc: num.Span, Value: num.Number, Raw: num.Literal,
			})
		} else {
			lit = p.alloc.BigIntLiteral.Alloc(ast.BigIntLiteral{Loc: num.Span, Raw: num.Literal})
		}
		return p.alloc.TSLiteralType.Alloc(ast.TSLiteralType{
			Loc: p.finish(start),
			Literal: p.alloc.UnaryExpression.Alloc(ast.UnaryExpression{
				Loc: p.finish(start), Operator: "-", Argument: lit,
			}),
		})
	case lexer.TokenTemplate, lexer.TokenTemplateHead:
		return p.parseTemplateLiteralType()
	case lexer.TokenTypeof:
		return p.parseTypeQuery()
	case lexer.TokenLParen:
		start := p.start()
		p.bump()
		inner := p.parseType()
		p.expect(lexer.TokenRParen)
		return p.alloc.TSParenthesizedType.Alloc(ast.TSParenthesizedType{
			Loc:            p.finish(start),
			TypeAnnotation: inner,
		})
	case lexer.TokenLBracket:
		return p.parseTupleType()
	case lexer.TokenLBrace:
		return p.parseTypeLiteralOrMappedType()
	}

	if tok.Type.IsIdentifierName() {
		if keywordTypeNames[tok.Literal] && !p.qualifiedNameFollows() {
			p.bump()
			return p.alloc.TSKeywordType.Alloc(ast.TSKeywordType{Loc: tok.Span, Kind: tok.Literal})
		}
		return p.parseTypeReference()
	}
	p.bag.Add(diagUnexpectedToken(tok.Span))
	p.fatal = true
	return nil
}

// qualifiedNameFollows reports whether the current identifier extends
// into `A.B` or `A<...>`, so keyword-named types like a local `string`
// namespace still work.
func (p *Parser) qualifiedNameFollows() bool {
	next := p.peek()
	return next.Type == lexer.TokenDot
}

func (p *Parser) parseTypeReference() ast.TSType {
	start := p.start()
	name := p.parseTypeName()
	if name == nil {
		return nil
	}
	var typeArgs *ast.TSTypeArguments
	if !p.curOnNewLine() && (p.at(lexer.TokenLt) || p.cur().Type == lexer.TokenShl) {
		typeArgs = p.parseTypeArguments()
	}
	return p.alloc.TSTypeReference.Alloc(ast.TSTypeReference{
		Loc:           p.finish(start),
		TypeName:      name,
		TypeArguments: typeArgs,
	})
}

// parseTypeName parses `A` or `A.B.C`.
func (p *Parser) parseTypeName() ast.Node {
	start := p.start()
	tok := p.cur()
	if !tok.Type.IsIdentifierName() {
		p.bag.Add(diagIdentifierExpected(tok.Span))
		p.fatal = true
		return nil
	}
	p.bump()
	var name ast.Node = p.alloc.IdentifierName.Alloc(ast.IdentifierName{
		Loc: tok.Span, Name: tok.Literal,
	})
	for p.eat(lexer.TokenDot) {
		right := p.parseIdentifierName()
		if right == nil {
			p.fatal = false
			break
		}
		name = p.alloc.TSQualifiedName.Alloc(ast.TSQualifiedName{
			Loc:   p.finish(start),
			Left:  name,
			Right: right,
		})
	}
	return name
}

func (p *Parser) parseTypeQuery() ast.TSType {
	start := p.start()
	p.bump() // typeof
	name := p.parseTypeName()
	if name == nil {
		return nil
	}
	var typeArgs *ast.TSTypeArguments
	if !p.curOnNewLine() && (p.at(lexer.TokenLt) || p.cur().Type == lexer.TokenShl) {
		typeArgs = p.parseTypeArguments()
	}
	return p.alloc.TSTypeQuery.Alloc(ast.TSTypeQuery{
		Loc:           p.finish(start),
		ExprName:      name,
		TypeArguments: typeArgs,
	})
}

func (p *Parser) parseTupleType() ast.TSType {
	start := p.start()
	p.bump() // [
	var elements []ast.TSType
	for !p.at(lexer.TokenRBracket) && !p.at(lexer.TokenEOF) {
		elements = append(elements, p.parseTupleElement())
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBracket)
	return p.alloc.TSTupleType.Alloc(ast.TSTupleType{
		Loc:          p.finish(start),
		ElementTypes: elements,
	})
}

func (p *Parser) parseTupleElement() ast.TSType {
	start := p.start()
	if p.at(lexer.TokenEllipsis) {
		p.bump()
		ty := p.parseTupleElement()
		return p.alloc.TSRestType.Alloc(ast.TSRestType{
			Loc:            p.finish(start),
			TypeAnnotation: ty,
		})
	}
	// `name: T` and `name?: T` label forms.
	if p.cur().Type.IsIdentifierName() {
		next := p.peek()
		if next.Type == lexer.TokenColon ||
			(next.Type == lexer.TokenQuestion) {
			labelTok := p.cur()
			if labeled := p.tryParseNamedTupleMember(start, labelTok); labeled != nil {
				return labeled
			}
		}
	}
	ty := p.parseType()
	if p.at(lexer.TokenQuestion) {
		p.bump()
		return p.alloc.TSOptionalType.Alloc(ast.TSOptionalType{
			Loc:            p.finish(start),
			TypeAnnotation: ty,
		})
	}
	return ty
}

func (p *Parser) tryParseNamedTupleMember(start uint32, labelTok lexer.Token) ast.TSType {
	var result ast.TSType
	p.tryParse(func() bool {
		p.bump() // label
		optional := p.eat(lexer.TokenQuestion)
		if !p.eat(lexer.TokenColon) {
			return false
		}
		ty := p.parseType()
		if ty == nil {
			return false
		}
		result = p.alloc.TSNamedTupleMember.Alloc(ast.TSNamedTupleMember{
			Loc: p.finish(start),
			Label: p.alloc.IdentifierName.Alloc(ast.IdentifierName{
				Loc: labelTok.Span, Name: labelTok.Literal,
			}),
			Optional:    optional,
			ElementType: ty,
		})
		return true
	})
	return result
}

func (p *Parser) parseTemplateLiteralType() ast.TSType {
	start := p.start()
	tok := p.cur()
	if tok.Type == lexer.TokenTemplate {
		p.bump()
		return p.alloc.TSTemplateLiteralType.Alloc(ast.TSTemplateLiteralType{
			Loc: p.finish(start),
			Quasis: []ast.TemplateElement{{
				Loc: tok.Span, Cooked: tok.Value, Raw: tok.Literal, Tail: true,
			}},
		})
	}

	quasis := []ast.TemplateElement{{Loc: tok.Span, Cooked: tok.Value, Raw: tok.Literal}}
	var types []ast.TSType
	p.bump()
	for {
		types = append(types, p.parseType())
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
	return p.alloc.TSTemplateLiteralType.Alloc(ast.TSTemplateLiteralType{
		Loc:    p.finish(start),
		Quasis: quasis,
		Types:  types,
	})
}

// parseTypeLiteralOrMappedType disambiguates `{ [K in T]: V }` from an
// ordinary member list by peeking for the `in` after the bracket name.
func (p *Parser) parseTypeLiteralOrMappedType() ast.TSType {
	if p.mappedTypeFollows() {
		return p.parseMappedType()
	}
	start := p.start()
	p.bump() // {
	members := p.parseSignatureList(lexer.TokenRBrace)
	p.expect(lexer.TokenRBrace)
	return p.alloc.TSTypeLiteral.Alloc(ast.TSTypeLiteral{
		Loc:     p.finish(start),
		Members: members,
	})
}

func (p *Parser) mappedTypeFollows() bool {
	return p.lookahead(func() bool {
		p.bump() // {
		if p.at(lexer.TokenPlus) || p.at(lexer.TokenMinus) {
			p.bump()
			return p.at(lexer.TokenReadonly)
		}
		p.eat(lexer.TokenReadonly)
		if !p.eat(lexer.TokenLBracket) {
			return false
		}
		if !p.cur().Type.IsIdentifierName() {
			return false
		}
		p.bump()
		return p.at(lexer.TokenIn)
	})
}

func (p *Parser) parseMappedType() ast.TSType {
	start := p.start()
	p.bump() // {

	readonly := ""
	switch {
	case p.eat(lexer.TokenPlus):
		p.expect(lexer.TokenReadonly)
		readonly = "+"
	case p.eat(lexer.TokenMinus):
		p.expect(lexer.TokenReadonly)
		readonly = "-"
	case p.eat(lexer.TokenReadonly):
		readonly = "readonly"
	}

	p.expect(lexer.TokenLBracket)
	name := p.parseBindingIdentifier()
	if name == nil {
		return nil
	}
	p.expect(lexer.TokenIn)
	constraint := p.parseType()
	param := p.alloc.TSTypeParameter.Alloc(ast.TSTypeParameter{
		Loc:        name.Loc,
		Name:       name,
		Constraint: constraint,
	})

	var nameType ast.TSType
	if p.eat(lexer.TokenAs) {
		nameType = p.parseType()
	}
	p.expect(lexer.TokenRBracket)

	optional := ""
	switch {
	case p.eat(lexer.TokenPlus):
		p.expect(lexer.TokenQuestion)
		optional = "+"
	case p.eat(lexer.TokenMinus):
		p.expect(lexer.TokenQuestion)
		optional = "-"
	case p.eat(lexer.TokenQuestion):
		optional = "?"
	}

	var annotation ast.TSType
	if p.eat(lexer.TokenColon) {
		annotation = p.parseType()
	}
	p.eat(lexer.TokenSemicolon)
	p.expect(lexer.TokenRBrace)
	return p.alloc.TSMappedType.Alloc(ast.TSMappedType{
		Loc:            p.finish(start),
		TypeParameter:  param,
		NameType:       nameType,
		TypeAnnotation: annotation,
		Optional:       optional,
		Readonly:       readonly,
	})
}

// --- signature members (interfaces and type literals) ---

// parseSignatureList parses members until the end token, tolerating
// `;`, `,` and newline separators.
func (p *Parser) parseSignatureList(end lexer.TokenType) []ast.TSSignature {
	var members []ast.TSSignature
	for !p.at(end) && !p.at(lexer.TokenEOF) {
		member := p.parseSignatureMember()
		if p.fatal {
			p.fatal = false
			for !p.at(lexer.TokenSemicolon) && !p.at(lexer.TokenComma) &&
				!p.at(end) && !p.at(lexer.TokenEOF) {
				p.bump()
			}
		}
		if member != nil {
			members = append(members, member)
		}
		if !p.eat(lexer.TokenSemicolon) && !p.eat(lexer.TokenComma) {
			if !p.at(end) && !p.curOnNewLine() && !p.at(lexer.TokenEOF) {
				p.bag.Add(diagExpectSemicolon(p.cur().Span))
				break
			}
		}
	}
	return members
}

func (p *Parser) parseSignatureMember() ast.TSSignature {
	start := p.start()

	if p.at(lexer.TokenLParen) || p.at(lexer.TokenLt) {
		typeParams, thisParam, params, returnType := p.parseSignatureTail()
		if p.fatal {
			return nil
		}
		return p.alloc.TSCallSignatureDeclaration.Alloc(ast.TSCallSignatureDeclaration{
			Loc:            p.finish(start),
			TypeParameters: typeParams,
			ThisParam:      thisParam,
			Params:         params,
			ReturnType:     returnType,
		})
	}
	if p.at(lexer.TokenNew) && (p.peek().Type == lexer.TokenLParen || p.peek().Type == lexer.TokenLt) {
		p.bump()
		typeParams, _, params, returnType := p.parseSignatureTail()
		if p.fatal {
			return nil
		}
		return p.alloc.TSConstructSignatureDeclaration.Alloc(ast.TSConstructSignatureDeclaration{
			Loc:            p.finish(start),
			TypeParameters: typeParams,
			Params:         params,
			ReturnType:     returnType,
		})
	}

	readonly := false
	if p.at(lexer.TokenReadonly) && p.nextTokenCanFollowModifier() {
		readonly = true
		p.bump()
	}

	if p.at(lexer.TokenLBracket) && p.indexSignatureFollows() {
		sig := p.parseIndexSignature(start, readonly, false)
		if sig == nil {
			p.fatal = true
			return nil
		}
		return sig
	}

	kind := ast.MethodKindMethod
	if p.at(lexer.TokenGet) && p.propertyKeyFollows() {
		kind = ast.MethodKindGet
		p.bump()
	} else if p.at(lexer.TokenSet) && p.propertyKeyFollows() {
		kind = ast.MethodKindSet
		p.bump()
	}

	key, computed := p.parsePropertyKey()
	if key == nil {
		p.fatal = true
		return nil
	}
	optional := p.eat(lexer.TokenQuestion)

	if kind != ast.MethodKindMethod || p.at(lexer.TokenLParen) || p.at(lexer.TokenLt) {
		typeParams, thisParam, params, returnType := p.parseSignatureTail()
		if p.fatal {
			return nil
		}
		return p.alloc.TSMethodSignature.Alloc(ast.TSMethodSignature{
			Loc:            p.finish(start),
			Key:            key,
			Computed:       computed,
			Optional:       optional,
			Kind:           kind,
			TypeParameters: typeParams,
			ThisParam:      thisParam,
			Params:         params,
			ReturnType:     returnType,
		})
	}

	var annotation *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		annotation = p.parseTypeAnnotation()
	}
	return p.alloc.TSPropertySignature.Alloc(ast.TSPropertySignature{
		Loc:            p.finish(start),
		Key:            key,
		Computed:       computed,
		Optional:       optional,
		Readonly:       readonly,
		TypeAnnotation: annotation,
	})
}

func (p *Parser) parseSignatureTail() (*ast.TSTypeParameterDeclaration, *ast.TSThisParameter, *ast.FormalParameters, *ast.TSTypeAnnotation) {
	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	thisParam, params := p.parseFormalParameters(ast.SignatureParameters)
	var returnType *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		returnType = p.parseReturnTypeAnnotation()
	}
	return typeParams, thisParam, params, returnType
}

// parseIndexSignature parses `[name: K]: V` starting at the bracket.
func (p *Parser) parseIndexSignature(start uint32, readonly, static bool) *ast.TSIndexSignature {
	p.expect(lexer.TokenLBracket)
	nameTok := p.cur()
	if !nameTok.Type.IsIdentifierName() {
		p.bag.Add(diagIdentifierExpected(nameTok.Span))
		return nil
	}
	p.bump()
	keyAnnotation := p.parseTypeAnnotation()
	p.expect(lexer.TokenRBracket)
	valueAnnotation := p.parseTypeAnnotation()
	p.eat(lexer.TokenSemicolon)
	return p.alloc.TSIndexSignature.Alloc(ast.TSIndexSignature{
		Loc: p.finish(start),
		Parameter: p.alloc.TSIndexSignatureName.Alloc(ast.TSIndexSignatureName{
			Loc:            nameTok.Span,
			Name:           nameTok.Literal,
			TypeAnnotation: keyAnnotation,
		}),
		TypeAnnotation: valueAnnotation,
		Readonly:       readonly,
		Static:         static,
	})
}

// --- type parameters and arguments ---

// parseTypeParameters parses `<in out const T extends C = D, ...>`.
func (p *Parser) parseTypeParameters() *ast.TSTypeParameterDeclaration {
	start := p.start()
	if !p.eatLtInType() {
		p.fatal = true
		return nil
	}
	if p.eatGtInType() {
		p.bag.Add(diagTypeParameterListEmpty(p.finish(start)))
		return p.alloc.TSTypeParameterDeclaration.Alloc(ast.TSTypeParameterDeclaration{
			Loc: p.finish(start),
		})
	}

	var params []ast.TSTypeParameter
	for {
		params = append(params, p.parseTypeParameter())
		if p.fatal {
			return nil
		}
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	if !p.eatGtInType() {
		p.bag.Add(diagExpectToken(">", p.cur().Type.String(), p.cur().Span))
		p.fatal = true
		return nil
	}
	return p.alloc.TSTypeParameterDeclaration.Alloc(ast.TSTypeParameterDeclaration{
		Loc:    p.finish(start),
		Params: params,
	})
}

func (p *Parser) parseTypeParameter() ast.TSTypeParameter {
	start := p.start()
	mods := p.parseModifiers(true)
	p.verifyModifiers(&mods, flagsTypeParameter, diagModifierCannotBeUsedHere)

	name := p.parseBindingIdentifier()
	if name == nil {
		return ast.TSTypeParameter{Loc: p.finish(start)}
	}
	var constraint ast.TSType
	if p.eat(lexer.TokenExtends) {
		constraint = p.parseType()
	}
	var def ast.TSType
	if p.eat(lexer.TokenAssign) {
		def = p.parseType()
	}
	return ast.TSTypeParameter{
		Loc:        p.finish(start),
		Name:       name,
		Constraint: constraint,
		Default:    def,
		In:         mods.Contains(ModifierIn),
		Out:        mods.Contains(ModifierOut),
		Const:      mods.Contains(ModifierConst),
	}
}

// parseTypeArguments parses `<T, U>` at a use site. Callers in
// expression position wrap this in tryParse, so failure must set the
// fatal flag rather than recover locally.
func (p *Parser) parseTypeArguments() *ast.TSTypeArguments {
	start := p.start()
	if !p.eatLtInType() {
		p.fatal = true
		return nil
	}
	if p.eatGtInType() {
		p.bag.Add(diagTypeArgumentListEmpty(p.finish(start)))
		return p.alloc.TSTypeArguments.Alloc(ast.TSTypeArguments{Loc: p.finish(start)})
	}

	var params []ast.TSType
	for {
		ty := p.parseType()
		if ty == nil || p.fatal {
			p.fatal = true
			return nil
		}
		params = append(params, ty)
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	if !p.eatGtInType() {
		p.fatal = true
		return nil
	}
	return p.alloc.TSTypeArguments.Alloc(ast.TSTypeArguments{
		Loc:    p.finish(start),
		Params: params,
	})
}
