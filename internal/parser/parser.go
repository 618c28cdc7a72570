// Package parser implements a recursive-descent parser for JavaScript
// and TypeScript source. It produces an arena-allocated AST together
// with a bag of diagnostics; syntax errors do not abort the parse, the
// parser resynchronizes at statement boundaries and keeps going.
package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/lexer"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// maxNestingDepth bounds recursion so pathologically nested input
// fails with a diagnostic instead of a stack overflow.
const maxNestingDepth = 1024

// Options configure a single parse.
type Options struct {
	// TypeScript enables the TS grammar extensions: type annotations,
	// interfaces, enums, namespaces, modifiers, and angle-bracket
	// re-scanning inside type positions.
	TypeScript bool
	// SourceType selects script or module goal symbol. Modules are
	// implicitly strict and permit top-level await.
	SourceType ast.SourceType
}

// Parser holds the state for one source file. It is not safe for
// concurrent use; parse each file with its own Parser.
type Parser struct {
	file  *span.File
	lex   *lexer.Lexer
	alloc *ast.Allocator
	bag   *diagnostics.Bag
	opts  Options

	ctx Context

	// prevEnd is the end offset of the most recently consumed token,
	// used to finish node spans without peeking backwards.
	prevEnd uint32

	// fatal is set when a production fails hard. The statement loop
	// clears it and resynchronizes.
	fatal bool

	depth int

	// seenDefaultExport guards against a second `export default` in
	// the same module.
	seenDefaultExport bool
}

// New prepares a parser over file. Diagnostics accumulate in bag; the
// caller inspects bag.HasErrors after Parse.
func New(file *span.File, alloc *ast.Allocator, bag *diagnostics.Bag, opts Options) *Parser {
	return &Parser{
		file:  file,
		lex:   lexer.New(file, bag),
		alloc: alloc,
		bag:   bag,
		opts:  opts,
		ctx:   NewContext(opts.SourceType == ast.SourceModule),
	}
}

// Parse consumes the whole file and returns the program. The returned
// tree is always structurally complete; errors surface as diagnostics
// and Invalid* placeholder nodes.
func (p *Parser) Parse() *ast.Program {
	start := p.cur().Span.Start
	directives := p.parseDirectives()
	body := p.parseStatementList(lexer.TokenEOF)
	return p.alloc.Program.Alloc(ast.Program{
		Loc:        span.New(start, p.cur().Span.End),
		SourceType: p.opts.SourceType,
		Directives: directives,
		Body:       body,
	})
}

// ts reports whether TypeScript productions are enabled.
func (p *Parser) ts() bool { return p.opts.TypeScript }

func (p *Parser) module() bool { return p.opts.SourceType == ast.SourceModule }

// --- token plumbing ---

func (p *Parser) cur() lexer.Token { return p.lex.Current() }

func (p *Parser) at(tt lexer.TokenType) bool { return p.lex.Current().Type == tt }

func (p *Parser) peek() lexer.Token { return p.lex.Peek() }

// bump consumes the current token unconditionally.
func (p *Parser) bump() {
	p.prevEnd = p.lex.Current().Span.End
	p.lex.Next()
}

// eat consumes the current token if it has the given type.
func (p *Parser) eat(tt lexer.TokenType) bool {
	if p.at(tt) {
		p.bump()
		return true
	}
	return false
}

// expect consumes a token of the given type or records a diagnostic at
// the current position. It never advances past an unexpected token.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.eat(tt) {
		return true
	}
	p.bag.Add(diagExpectToken(tt.String(), p.cur().Type.String(), p.cur().Span))
	return false
}

// start returns the offset where the node about to be parsed begins.
func (p *Parser) start() uint32 { return p.cur().Span.Start }

// finish closes a span opened with start.
func (p *Parser) finish(start uint32) span.Span { return span.New(start, p.prevEnd) }

// curOnNewLine reports whether a line terminator precedes the current
// token, the condition automatic semicolon insertion and the
// restricted productions test for.
func (p *Parser) curOnNewLine() bool { return p.cur().OnNewLine }

// --- speculative parsing ---

// checkpoint captures everything a rewind must restore: lexer
// position, the diagnostic high-water mark, the grammar context, and
// the failure flag. Diagnostics recorded after the mark are discarded
// on restore so abandoned speculative branches stay silent.
type checkpoint struct {
	lex     lexer.Checkpoint
	mark    int
	prevEnd uint32
	ctx     Context
	fatal   bool
}

func (p *Parser) checkpoint() checkpoint {
	return checkpoint{
		lex:     p.lex.Checkpoint(),
		mark:    p.bag.Mark(),
		prevEnd: p.prevEnd,
		ctx:     p.ctx,
		fatal:   p.fatal,
	}
}

func (p *Parser) rewind(cp checkpoint) {
	p.lex.Restore(cp.lex)
	p.bag.Truncate(cp.mark)
	p.prevEnd = cp.prevEnd
	p.ctx = cp.ctx
	p.fatal = cp.fatal
}

// lookahead runs f and rewinds regardless of its result. Use it to
// answer "what is ahead" questions that need more than one token.
func (p *Parser) lookahead(f func() bool) bool {
	cp := p.checkpoint()
	ok := f()
	p.rewind(cp)
	return ok
}

// tryParse runs f and keeps its effects only on success. On failure
// the parser state, including diagnostics, is as if f never ran.
func (p *Parser) tryParse(f func() bool) bool {
	cp := p.checkpoint()
	if f() {
		return true
	}
	p.rewind(cp)
	return false
}

// --- recursion guard ---

// enter bumps the nesting depth, failing hard when input nests beyond
// the limit.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > maxNestingDepth {
		p.bag.Add(diagNestingTooDeep(p.cur().Span))
		p.fatal = true
		return false
	}
	return true
}

func (p *Parser) leave() { p.depth-- }

// --- automatic semicolon insertion ---

// canInsertSemicolon reports whether ASI applies at the current token:
// end of input, a closing brace, or a preceding line terminator.
func (p *Parser) canInsertSemicolon() bool {
	tok := p.cur()
	return tok.Type == lexer.TokenEOF || tok.Type == lexer.TokenRBrace || tok.OnNewLine
}

// semicolon consumes an explicit semicolon or applies ASI, diagnosing
// when neither is possible.
func (p *Parser) semicolon() {
	if p.eat(lexer.TokenSemicolon) {
		return
	}
	if p.canInsertSemicolon() {
		return
	}
	p.bag.Add(diagExpectSemicolon(p.cur().Span))
}

// --- error recovery ---

// syncTokens are the token types a resynchronizing statement loop
// stops at. Each plausibly begins a statement or closes a block.
var syncTokens = map[lexer.TokenType]bool{
	lexer.TokenEOF:       true,
	lexer.TokenSemicolon: true,
	lexer.TokenRBrace:    true,
	lexer.TokenLBrace:    true,
	lexer.TokenClass:     true,
	lexer.TokenConst:     true,
	lexer.TokenFunction:  true,
	lexer.TokenIf:        true,
	lexer.TokenFor:       true,
	lexer.TokenWhile:     true,
	lexer.TokenDo:        true,
	lexer.TokenSwitch:    true,
	lexer.TokenReturn:    true,
	lexer.TokenThrow:     true,
	lexer.TokenTry:       true,
	lexer.TokenVar:       true,
	lexer.TokenLet:       true,
	lexer.TokenImport:    true,
	lexer.TokenExport:    true,
	lexer.TokenBreak:     true,
	lexer.TokenContinue:  true,
	lexer.TokenDebugger:  true,
	lexer.TokenWith:      true,
}

// synchronize skips tokens until a plausible statement boundary.
// from is the offset the failed production started at; when no input
// was consumed since then, one token is dropped so the caller makes
// progress.
func (p *Parser) synchronize(from uint32) {
	p.fatal = false
	if p.at(lexer.TokenEOF) {
		return
	}
	if p.cur().Span.Start == from {
		p.bump()
	}
	for !p.at(lexer.TokenEOF) {
		if p.eat(lexer.TokenSemicolon) {
			return
		}
		if syncTokens[p.cur().Type] {
			return
		}
		p.bump()
	}
}

// --- identifiers ---

// parseBindingIdentifier parses an identifier in a binding position,
// diagnosing reserved words that are illegal under the current
// context (await in async code, yield in generators).
func (p *Parser) parseBindingIdentifier() *ast.BindingIdentifier {
	tok := p.cur()
	if !tok.Type.IsBindingIdentifier() {
		p.bag.Add(diagIdentifierExpected(tok.Span))
		p.fatal = true
		return nil
	}
	p.checkIdentifierContext(tok)
	p.bump()
	return p.alloc.BindingIdentifier.Alloc(ast.BindingIdentifier{
		Loc:  tok.Span,
		Name: tok.Literal,
	})
}

// parseIdentifierReference parses an identifier in an expression
// position with the same context checks as binding positions.
func (p *Parser) parseIdentifierReference() *ast.IdentifierReference {
	tok := p.cur()
	if !tok.Type.IsBindingIdentifier() {
		p.bag.Add(diagIdentifierExpected(tok.Span))
		p.fatal = true
		return nil
	}
	p.checkIdentifierContext(tok)
	p.bump()
	return p.alloc.IdentifierReference.Alloc(ast.IdentifierReference{
		Loc:  tok.Span,
		Name: tok.Literal,
	})
}

// parseIdentifierName parses any identifier-like token, keywords
// included, for positions where reservedness does not apply such as
// member accesses and object property keys.
func (p *Parser) parseIdentifierName() *ast.IdentifierName {
	tok := p.cur()
	if !tok.Type.IsIdentifierName() {
		p.bag.Add(diagIdentifierExpected(tok.Span))
		p.fatal = true
		return nil
	}
	p.bump()
	return p.alloc.IdentifierName.Alloc(ast.IdentifierName{
		Loc:  tok.Span,
		Name: tok.Literal,
	})
}

// checkIdentifierContext diagnoses await and yield used as identifiers
// where the surrounding context reserves them.
func (p *Parser) checkIdentifierContext(tok lexer.Token) {
	switch tok.Type {
	case lexer.TokenAwait:
		if p.ctx.HasAwait() {
			p.bag.Add(diagAwaitReserved(tok.Span))
		} else if p.module() {
			p.bag.Add(diagAwaitReservedInModule(tok.Span))
		}
	case lexer.TokenYield:
		if p.ctx.HasYield() {
			p.bag.Add(diagYieldReserved(tok.Span))
		}
	}
}

// atIdentifier reports whether the current token can begin a binding
// identifier under the current context.
func (p *Parser) atIdentifier() bool {
	return p.cur().Type.IsBindingIdentifier()
}

// invalidExpr builds the placeholder node used when an expression
// production fails hard, so the enclosing tree stays complete.
func (p *Parser) invalidExpr(sp span.Span) ast.Expr {
	return p.alloc.InvalidExpression.Alloc(ast.InvalidExpression{Loc: sp})
}

func (p *Parser) invalidStmt(sp span.Span) ast.Stmt {
	return p.alloc.InvalidStatement.Alloc(ast.InvalidStatement{Loc: sp})
}
