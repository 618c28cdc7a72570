package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/lexer"
)

// parseBindingPatternWithAnnotation parses a full binding: target,
// optional `?` marker, `: type` annotation, and `= default` when
// allowInitializer is set.
func (p *Parser) parseBindingPatternWithAnnotation(allowInitializer bool) ast.BindingPattern {
	start := p.start()
	target := p.parseBindingTarget()
	if target == nil {
		return ast.BindingPattern{}
	}

	optional := false
	if p.at(lexer.TokenQuestion) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("Optional parameters", p.cur().Span))
		}
		optional = true
		p.bump()
	}

	var annotation *ast.TSTypeAnnotation
	if p.at(lexer.TokenColon) {
		if !p.ts() {
			p.bag.Add(diagTSSyntaxInJS("Type annotations", p.cur().Span))
		}
		annotation = p.parseTypeAnnotation()
	}

	pattern := ast.BindingPattern{
		Kind:           target,
		TypeAnnotation: annotation,
		Optional:       optional,
	}
	if allowInitializer && p.at(lexer.TokenAssign) {
		p.bump()
		saved := p.ctx
		p.ctx = p.ctx.WithIn(true)
		init := p.parseAssignmentExpressionOrHigher()
		p.ctx = saved
		pattern = ast.BindingPattern{
			Kind: p.alloc.AssignmentPattern.Alloc(ast.AssignmentPattern{
				Loc:   p.finish(start),
				Left:  pattern,
				Right: init,
			}),
		}
	}
	return pattern
}

// parseBindingTarget parses the destructuring shape only, without
// annotation or default.
func (p *Parser) parseBindingTarget() ast.BindingTarget {
	switch p.cur().Type {
	case lexer.TokenLBrace:
		return p.parseObjectPattern()
	case lexer.TokenLBracket:
		return p.parseArrayPattern()
	}
	id := p.parseBindingIdentifier()
	if id == nil {
		return nil
	}
	return id
}

func (p *Parser) parseObjectPattern() ast.BindingTarget {
	start := p.start()
	p.bump() // {

	var props []ast.BindingProperty
	var rest *ast.BindingRestElement
	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		if p.at(lexer.TokenEllipsis) {
			restStart := p.start()
			p.bump()
			// Object rest targets must be plain identifiers.
			if !p.atIdentifier() {
				p.bag.Add(diagInvalidRestElement(p.cur().Span))
			}
			target := p.parseBindingTarget()
			if target == nil {
				p.fatal = false
				break
			}
			rest = p.alloc.BindingRestElement.Alloc(ast.BindingRestElement{
				Loc:      p.finish(restStart),
				Argument: ast.BindingPattern{Kind: target},
			})
			if p.at(lexer.TokenComma) {
				p.bag.Add(diagRestParameterLast(rest.Loc))
				p.bump()
				continue
			}
			break
		}
		props = append(props, p.parseBindingProperty())
		if p.fatal {
			p.fatal = false
			for !p.at(lexer.TokenComma) && !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
				p.bump()
			}
		}
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)
	return p.alloc.ObjectPattern.Alloc(ast.ObjectPattern{
		Loc:        p.finish(start),
		Properties: props,
		Rest:       rest,
	})
}

func (p *Parser) parseBindingProperty() ast.BindingProperty {
	start := p.start()
	key, computed := p.parsePropertyKey()
	if key == nil {
		p.fatal = true
		return ast.BindingProperty{Loc: p.finish(start)}
	}

	if computed || !p.atShorthandBindingProperty(key) {
		p.expect(lexer.TokenColon)
		value := p.parseBindingPatternWithAnnotation(true)
		return ast.BindingProperty{
			Loc:      p.finish(start),
			Key:      key,
			Value:    value,
			Computed: computed,
		}
	}

	// Shorthand: the key is also the binding.
	ref := key.(*ast.IdentifierReference)
	p.checkIdentifierContext(lexer.Token{Type: lexer.TokenIdent, Span: ref.Loc, Literal: ref.Name})
	id := p.alloc.BindingIdentifier.Alloc(ast.BindingIdentifier{Loc: ref.Loc, Name: ref.Name})
	value := ast.BindingPattern{Kind: id}
	if p.at(lexer.TokenAssign) {
		p.bump()
		init := p.parseAssignmentExpressionOrHigher()
		value = ast.BindingPattern{
			Kind: p.alloc.AssignmentPattern.Alloc(ast.AssignmentPattern{
				Loc:   p.finish(start),
				Left:  value,
				Right: init,
			}),
		}
	}
	return ast.BindingProperty{
		Loc:       p.finish(start),
		Key:       key,
		Value:     value,
		Shorthand: true,
	}
}

// atShorthandBindingProperty reports whether the parsed key stands for
// a shorthand binding rather than a `key: value` pair.
func (p *Parser) atShorthandBindingProperty(key ast.Expr) bool {
	if _, ok := key.(*ast.IdentifierReference); !ok {
		return false
	}
	return !p.at(lexer.TokenColon)
}

func (p *Parser) parseArrayPattern() ast.BindingTarget {
	start := p.start()
	p.bump() // [

	var elements []*ast.BindingPattern
	var rest *ast.BindingRestElement
	for !p.at(lexer.TokenRBracket) && !p.at(lexer.TokenEOF) {
		if p.at(lexer.TokenComma) {
			elements = append(elements, nil) // elision
			p.bump()
			continue
		}
		if p.at(lexer.TokenEllipsis) {
			restStart := p.start()
			p.bump()
			pattern := p.parseBindingPatternWithAnnotation(false)
			rest = p.alloc.BindingRestElement.Alloc(ast.BindingRestElement{
				Loc:      p.finish(restStart),
				Argument: pattern,
			})
			if p.at(lexer.TokenComma) {
				p.bag.Add(diagRestParameterLast(rest.Loc))
				p.bump()
				continue
			}
			break
		}
		pattern := p.parseBindingPatternWithAnnotation(true)
		elements = append(elements, p.alloc.BindingPattern.Alloc(pattern))
		if p.fatal {
			p.fatal = false
			for !p.at(lexer.TokenComma) && !p.at(lexer.TokenRBracket) && !p.at(lexer.TokenEOF) {
				p.bump()
			}
		}
		if !p.at(lexer.TokenRBracket) && !p.expect(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBracket)
	return p.alloc.ArrayPattern.Alloc(ast.ArrayPattern{
		Loc:      p.finish(start),
		Elements: elements,
		Rest:     rest,
	})
}
