package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/lexer"
)

// parseImportDeclaration parses a static `import` statement. Dynamic
// `import()` and `import.meta` never reach here.
func (p *Parser) parseImportDeclaration() ast.Stmt {
	start := p.start()
	importTok := p.cur()
	p.expect(lexer.TokenImport)
	if !p.module() {
		p.bag.Add(diagImportOutsideModule(importTok.Span))
	}

	// `import "side-effect"`
	if p.at(lexer.TokenString) {
		source := p.parseModuleSource()
		p.semicolon()
		return p.alloc.ImportDeclaration.Alloc(ast.ImportDeclaration{
			Loc:    p.finish(start),
			Source: source,
		})
	}

	kind := ast.ImportExportValue
	if p.ts() && p.at(lexer.TokenTypeKeyword) && p.typeOnlyClauseFollows() {
		kind = ast.ImportExportType
		p.bump()
	}

	var specifiers []ast.Node
	if p.atIdentifier() {
		defStart := p.start()
		local := p.parseBindingIdentifier()
		if local == nil {
			return p.invalidStmt(p.finish(start))
		}
		specifiers = append(specifiers, p.alloc.ImportDefaultSpecifier.Alloc(ast.ImportDefaultSpecifier{
			Loc:   p.finish(defStart),
			Local: local,
		}))
		if p.eat(lexer.TokenComma) {
			specifiers = p.parseImportSpecifierGroup(specifiers, kind)
		}
	} else {
		specifiers = p.parseImportSpecifierGroup(specifiers, kind)
	}
	if p.fatal {
		return p.invalidStmt(p.finish(start))
	}

	p.expect(lexer.TokenFrom)
	source := p.parseModuleSource()
	p.semicolon()
	return p.alloc.ImportDeclaration.Alloc(ast.ImportDeclaration{
		Loc:        p.finish(start),
		Specifiers: specifiers,
		Source:     source,
		ImportKind: kind,
	})
}

// typeOnlyClauseFollows distinguishes `import type {x}` from a value
// import whose default binding is literally named `type`.
func (p *Parser) typeOnlyClauseFollows() bool {
	return p.lookahead(func() bool {
		p.bump() // type
		if p.at(lexer.TokenLBrace) || p.at(lexer.TokenStar) {
			return true
		}
		if !p.cur().Type.IsBindingIdentifier() {
			return false
		}
		p.bump()
		return p.at(lexer.TokenFrom) || p.at(lexer.TokenComma)
	})
}

func (p *Parser) parseImportSpecifierGroup(specifiers []ast.Node, kind ast.ImportOrExportKind) []ast.Node {
	switch p.cur().Type {
	case lexer.TokenStar:
		nsStart := p.start()
		p.bump()
		p.expect(lexer.TokenAs)
		local := p.parseBindingIdentifier()
		if local == nil {
			return specifiers
		}
		return append(specifiers, p.alloc.ImportNamespaceSpecifier.Alloc(ast.ImportNamespaceSpecifier{
			Loc:   p.finish(nsStart),
			Local: local,
		}))
	case lexer.TokenLBrace:
		p.bump()
		for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
			spec := p.parseImportSpecifier(kind)
			if p.fatal {
				return specifiers
			}
			specifiers = append(specifiers, spec)
			if !p.eat(lexer.TokenComma) {
				break
			}
		}
		p.expect(lexer.TokenRBrace)
		return specifiers
	}
	p.bag.Add(diagUnexpectedToken(p.cur().Span))
	p.fatal = true
	return specifiers
}

func (p *Parser) parseImportSpecifier(declKind ast.ImportOrExportKind) ast.Node {
	start := p.start()
	kind := ast.ImportExportValue
	if p.ts() && p.at(lexer.TokenTypeKeyword) && p.typeOnlySpecifierFollows() {
		kind = ast.ImportExportType
		p.bump()
	}
	if declKind == ast.ImportExportType && kind == ast.ImportExportType {
		p.bag.Add(diagTypeModifierOnTypeImport(p.cur().Span))
	}

	imported := p.parseModuleExportName()
	if imported == nil {
		p.fatal = true
		return nil
	}

	var local *ast.BindingIdentifier
	if p.eat(lexer.TokenAs) {
		local = p.parseBindingIdentifier()
		if local == nil {
			return nil
		}
	} else {
		name, ok := imported.(*ast.IdentifierName)
		if !ok {
			// A string export name must be renamed to bind locally.
			p.bag.Add(diagIdentifierExpected(imported.Span()))
			p.fatal = true
			return nil
		}
		if !p.bindingNameAllowed(name.Name) {
			p.bag.Add(diagIdentifierExpected(name.Loc))
		}
		local = p.alloc.BindingIdentifier.Alloc(ast.BindingIdentifier{
			Loc:  name.Loc,
			Name: name.Name,
		})
	}
	return p.alloc.ImportSpecifier.Alloc(ast.ImportSpecifier{
		Loc:        p.finish(start),
		Imported:   imported,
		Local:      local,
		ImportKind: kind,
	})
}

// typeOnlySpecifierFollows decides whether `type` inside a named
// import or export list is a modifier or the imported name itself.
func (p *Parser) typeOnlySpecifierFollows() bool {
	next := p.peek()
	if next.Type == lexer.TokenAs {
		// `{ type as x }` imports the name `type`. The modifier
		// reading needs a second `as`: `{ type as as x }`.
		return p.lookahead(func() bool {
			p.bump() // type
			p.bump() // as
			if !p.at(lexer.TokenAs) {
				return false
			}
			p.bump()
			return p.cur().Type.IsIdentifierName()
		})
	}
	return next.Type.IsIdentifierName() || next.Type == lexer.TokenString
}

// bindingNameAllowed rejects names that cannot bind in the current
// context, such as `await` in modules.
func (p *Parser) bindingNameAllowed(name string) bool {
	switch name {
	case "await":
		return !p.module()
	case "yield":
		return !p.ctx.HasYield()
	}
	return true
}

// parseModuleExportName parses an identifier or string literal naming
// an imported or exported binding.
func (p *Parser) parseModuleExportName() ast.Expr {
	tok := p.cur()
	if tok.Type == lexer.TokenString {
		p.bump()
		return p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value})
	}
	if tok.Type.IsIdentifierName() {
		p.bump()
		return p.alloc.IdentifierName.Alloc(ast.IdentifierName{Loc: tok.Span, Name: tok.Literal})
	}
	p.bag.Add(diagIdentifierExpected(tok.Span))
	return nil
}

func (p *Parser) parseModuleSource() *ast.StringLiteral {
	tok := p.cur()
	if tok.Type != lexer.TokenString {
		p.bag.Add(diagExpectToken("string literal", tok.Type.String(), tok.Span))
		p.fatal = true
		return nil
	}
	p.bump()
	return p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value})
}

func (p *Parser) parseExportDeclaration() ast.Stmt {
	return p.parseExportDeclarationWithDecorators(nil)
}

func (p *Parser) parseExportDeclarationWithDecorators(decorators []ast.Decorator) ast.Stmt {
	start := p.start()
	exportTok := p.cur()
	p.expect(lexer.TokenExport)
	if !p.module() {
		p.bag.Add(diagImportOutsideModule(exportTok.Span))
	}

	switch p.cur().Type {
	case lexer.TokenDefault:
		return p.parseExportDefault(start, decorators)
	case lexer.TokenStar:
		return p.parseExportAll(start, ast.ImportExportValue)
	case lexer.TokenLBrace:
		return p.parseExportNamed(start, ast.ImportExportValue)
	case lexer.TokenTypeKeyword:
		if p.ts() {
			switch p.peek().Type {
			case lexer.TokenStar:
				p.bump()
				return p.parseExportAll(start, ast.ImportExportType)
			case lexer.TokenLBrace:
				p.bump()
				return p.parseExportNamed(start, ast.ImportExportType)
			}
		}
	}

	decl := p.parseExportedDeclaration(decorators)
	if decl == nil {
		p.bag.Add(diagUnexpectedToken(p.cur().Span))
		return p.invalidStmt(p.finish(start))
	}
	return p.alloc.ExportNamedDeclaration.Alloc(ast.ExportNamedDeclaration{
		Loc:         p.finish(start),
		Declaration: decl,
	})
}

// parseExportedDeclaration parses the declaration forms that may
// follow `export`.
func (p *Parser) parseExportedDeclaration(decorators []ast.Decorator) ast.Stmt {
	switch p.cur().Type {
	case lexer.TokenVar, lexer.TokenConst:
		if p.ts() && p.at(lexer.TokenConst) && p.peek().Type == lexer.TokenEnum {
			return p.parseEnumDeclaration(Modifiers{})
		}
		return p.parseVariableStatement(false)
	case lexer.TokenLet:
		if p.letDeclarationFollows() {
			return p.parseVariableStatement(false)
		}
	case lexer.TokenFunction:
		return p.parseFunctionDeclaration(false)
	case lexer.TokenAsync:
		if p.atFunctionWithAsync() {
			return p.parseFunctionDeclaration(false)
		}
	case lexer.TokenClass:
		return p.parseClassDeclaration(decorators, Modifiers{})
	case lexer.TokenAt:
		return p.parseDecoratedDeclaration()
	}
	if p.ts() {
		if stmt, ok := p.parseTSDeclarationStatement(); ok {
			return stmt
		}
	}
	return nil
}

func (p *Parser) parseExportDefault(start uint32, decorators []ast.Decorator) ast.Stmt {
	defaultTok := p.cur()
	p.bump() // default
	if p.seenDefaultExport {
		p.bag.Add(diagDuplicateDefaultExport(defaultTok.Span))
	}
	p.seenDefaultExport = true

	var decl ast.Node
	switch {
	case p.at(lexer.TokenFunction) || p.atFunctionWithAsync():
		fnStart := p.start()
		async := p.eat(lexer.TokenAsync)
		p.expect(lexer.TokenFunction)
		generator := p.eat(lexer.TokenStar)
		fn := p.parseFunctionImpl(fnStart, functionKindDefaultExport, async, generator, Modifiers{})
		if fn == nil {
			return p.invalidStmt(p.finish(start))
		}
		decl = fn
	case p.at(lexer.TokenClass):
		decl = p.parseClass(ast.ClassTypeDeclaration, decorators, Modifiers{}, true)
	case p.at(lexer.TokenAbstract) && p.peek().Type == lexer.TokenClass:
		mods := p.parseModifiers(false)
		decl = p.parseClass(ast.ClassTypeDeclaration, decorators, mods, true)
	case p.at(lexer.TokenInterface) && p.ts():
		decl = p.parseInterfaceDeclaration(Modifiers{})
	default:
		decl = p.parseAssignmentExpressionOrHigher()
		p.semicolon()
	}
	return p.alloc.ExportDefaultDeclaration.Alloc(ast.ExportDefaultDeclaration{
		Loc:         p.finish(start),
		Declaration: decl,
	})
}

func (p *Parser) parseExportAll(start uint32, kind ast.ImportOrExportKind) ast.Stmt {
	p.expect(lexer.TokenStar)
	var exported *ast.IdentifierName
	if p.eat(lexer.TokenAs) {
		name := p.parseModuleExportName()
		if ident, ok := name.(*ast.IdentifierName); ok {
			exported = ident
		} else if str, ok := name.(*ast.StringLiteral); ok {
			exported = p.alloc.IdentifierName.Alloc(ast.IdentifierName{Loc: str.Loc, Name: str.Value})
		}
	}
	p.expect(lexer.TokenFrom)
	source := p.parseModuleSource()
	p.semicolon()
	return p.alloc.ExportAllDeclaration.Alloc(ast.ExportAllDeclaration{
		Loc:        p.finish(start),
		Exported:   exported,
		Source:     source,
		ExportKind: kind,
	})
}

func (p *Parser) parseExportNamed(start uint32, kind ast.ImportOrExportKind) ast.Stmt {
	p.expect(lexer.TokenLBrace)
	var specifiers []ast.ExportSpecifier
	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		spec, ok := p.parseExportSpecifier(kind)
		if !ok {
			break
		}
		specifiers = append(specifiers, spec)
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)

	var source *ast.StringLiteral
	if p.eat(lexer.TokenFrom) {
		source = p.parseModuleSource()
	}
	p.semicolon()
	return p.alloc.ExportNamedDeclaration.Alloc(ast.ExportNamedDeclaration{
		Loc:        p.finish(start),
		Specifiers: specifiers,
		Source:     source,
		ExportKind: kind,
	})
}

func (p *Parser) parseExportSpecifier(declKind ast.ImportOrExportKind) (ast.ExportSpecifier, bool) {
	start := p.start()
	kind := ast.ImportExportValue
	if p.ts() && p.at(lexer.TokenTypeKeyword) && p.typeOnlySpecifierFollows() {
		kind = ast.ImportExportType
		p.bump()
	}
	if declKind == ast.ImportExportType && kind == ast.ImportExportType {
		p.bag.Add(diagTypeModifierOnTypeImport(p.cur().Span))
	}

	local := p.parseModuleExportName()
	if local == nil {
		return ast.ExportSpecifier{}, false
	}
	exported := local
	if p.eat(lexer.TokenAs) {
		exported = p.parseModuleExportName()
		if exported == nil {
			return ast.ExportSpecifier{}, false
		}
	}
	return ast.ExportSpecifier{
		Loc:        p.finish(start),
		Local:      local,
		Exported:   exported,
		ExportKind: kind,
	}, true
}

// --- TypeScript declaration statements ---

// parseTSDeclarationStatement recognizes interface, type alias, enum,
// namespace, module and `declare` prefixed declarations. It returns
// false without consuming anything when the tokens do not start one,
// since every keyword involved is contextual.
func (p *Parser) parseTSDeclarationStatement() (ast.Stmt, bool) {
	switch p.cur().Type {
	case lexer.TokenInterface:
		if p.peek().Type.IsBindingIdentifier() && !p.peek().OnNewLine {
			return p.parseInterfaceDeclaration(Modifiers{}), true
		}
	case lexer.TokenTypeKeyword:
		if p.peek().Type.IsBindingIdentifier() && !p.peek().OnNewLine {
			return p.parseTypeAliasDeclaration(Modifiers{}), true
		}
	case lexer.TokenEnum:
		return p.parseEnumDeclaration(Modifiers{}), true
	case lexer.TokenNamespace, lexer.TokenModule:
		next := p.peek()
		if !next.OnNewLine && (next.Type.IsIdentifierName() || next.Type == lexer.TokenString) {
			return p.parseModuleDeclaration(Modifiers{}), true
		}
	case lexer.TokenGlobal:
		if p.peek().Type == lexer.TokenLBrace {
			return p.parseModuleDeclaration(Modifiers{}), true
		}
	case lexer.TokenAbstract:
		if p.peek().Type == lexer.TokenClass {
			mods := p.parseModifiers(false)
			return p.parseClassDeclaration(nil, mods), true
		}
	case lexer.TokenDeclare:
		if p.declareStatementFollows() {
			return p.parseDeclareStatement(), true
		}
	}
	return nil, false
}

func (p *Parser) declareStatementFollows() bool {
	next := p.peek()
	if next.OnNewLine {
		return false
	}
	switch next.Type {
	case lexer.TokenVar, lexer.TokenLet, lexer.TokenConst, lexer.TokenFunction,
		lexer.TokenAsync, lexer.TokenClass, lexer.TokenAbstract,
		lexer.TokenInterface, lexer.TokenTypeKeyword, lexer.TokenEnum,
		lexer.TokenNamespace, lexer.TokenModule, lexer.TokenGlobal:
		return true
	}
	return false
}

// parseDeclareStatement parses `declare <declaration>`.
func (p *Parser) parseDeclareStatement() ast.Stmt {
	declareTok := p.cur()
	p.bump()
	mods := Modifiers{}
	mods.add(Modifier{Loc: declareTok.Span, Kind: ModifierDeclare})
	if p.at(lexer.TokenAbstract) && p.peek().Type == lexer.TokenClass {
		abstractTok := p.cur()
		p.bump()
		mods.add(Modifier{Loc: abstractTok.Span, Kind: ModifierAbstract})
	}
	return p.parseDeclarationWithModifiers(mods)
}

func (p *Parser) parseDeclarationWithModifiers(mods Modifiers) ast.Stmt {
	switch p.cur().Type {
	case lexer.TokenVar, lexer.TokenLet, lexer.TokenConst:
		if p.at(lexer.TokenConst) && p.peek().Type == lexer.TokenEnum {
			return p.parseEnumDeclaration(mods)
		}
		decl := p.parseVariableDeclaration(false, mods)
		if decl == nil {
			return p.invalidStmt(p.cur().Span)
		}
		p.semicolon()
		return decl
	case lexer.TokenFunction, lexer.TokenAsync:
		start := p.start()
		async := p.eat(lexer.TokenAsync)
		p.expect(lexer.TokenFunction)
		generator := p.eat(lexer.TokenStar)
		fn := p.parseFunctionImpl(start, functionKindTSDeclare, async, generator, mods)
		if fn == nil {
			return p.invalidStmt(p.finish(start))
		}
		return fn
	case lexer.TokenClass:
		return p.parseClassDeclaration(nil, mods)
	case lexer.TokenInterface:
		return p.parseInterfaceDeclaration(mods)
	case lexer.TokenTypeKeyword:
		return p.parseTypeAliasDeclaration(mods)
	case lexer.TokenEnum:
		return p.parseEnumDeclaration(mods)
	case lexer.TokenNamespace, lexer.TokenModule, lexer.TokenGlobal:
		return p.parseModuleDeclaration(mods)
	}
	p.bag.Add(diagUnexpectedToken(p.cur().Span))
	p.fatal = true
	return p.invalidStmt(p.cur().Span)
}

func (p *Parser) parseInterfaceDeclaration(mods Modifiers) ast.Stmt {
	start := p.start()
	if !p.ts() {
		p.bag.Add(diagTSSyntaxInJS("interface declarations", p.cur().Span))
	}
	p.expect(lexer.TokenInterface)
	id := p.parseBindingIdentifier()
	if id == nil {
		return p.invalidStmt(p.finish(start))
	}

	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}

	var heritage []ast.TSInterfaceHeritage
	if p.eat(lexer.TokenExtends) {
		for {
			heritage = append(heritage, p.parseInterfaceHeritage())
			if !p.eat(lexer.TokenComma) {
				break
			}
		}
	}
	// `implements` is a class clause; flag it but keep parsing.
	if p.at(lexer.TokenImplements) {
		p.bag.Add(diagInterfaceExtendsClause(p.cur().Span))
		p.bump()
		for {
			p.parseInterfaceHeritage()
			if !p.eat(lexer.TokenComma) {
				break
			}
		}
	}

	bodyStart := p.start()
	p.expect(lexer.TokenLBrace)
	members := p.parseSignatureList(lexer.TokenRBrace)
	p.expect(lexer.TokenRBrace)
	body := p.alloc.TSInterfaceBody.Alloc(ast.TSInterfaceBody{
		Loc:  p.finish(bodyStart),
		Body: members,
	})
	return p.alloc.TSInterfaceDeclaration.Alloc(ast.TSInterfaceDeclaration{
		Loc:            p.finish(start),
		ID:             id,
		TypeParameters: typeParams,
		Extends:        heritage,
		Body:           body,
		Declare:        mods.ContainsDeclare(),
	})
}

func (p *Parser) parseInterfaceHeritage() ast.TSInterfaceHeritage {
	start := p.start()
	expr := p.parseLHSExpression()
	var typeArgs *ast.TSTypeArguments
	if p.at(lexer.TokenLt) || p.cur().Type == lexer.TokenShl {
		typeArgs = p.parseTypeArguments()
	}
	return ast.TSInterfaceHeritage{
		Loc:           p.finish(start),
		Expression:    expr,
		TypeArguments: typeArgs,
	}
}

func (p *Parser) parseTypeAliasDeclaration(mods Modifiers) ast.Stmt {
	start := p.start()
	if !p.ts() {
		p.bag.Add(diagTSSyntaxInJS("type alias declarations", p.cur().Span))
	}
	p.bump() // type
	id := p.parseBindingIdentifier()
	if id == nil {
		return p.invalidStmt(p.finish(start))
	}
	var typeParams *ast.TSTypeParameterDeclaration
	if p.at(lexer.TokenLt) {
		typeParams = p.parseTypeParameters()
	}
	p.expect(lexer.TokenAssign)
	ty := p.parseType()
	p.semicolon()
	return p.alloc.TSTypeAliasDeclaration.Alloc(ast.TSTypeAliasDeclaration{
		Loc:            p.finish(start),
		ID:             id,
		TypeParameters: typeParams,
		TypeAnnotation: ty,
		Declare:        mods.ContainsDeclare(),
	})
}

func (p *Parser) parseEnumDeclaration(mods Modifiers) ast.Stmt {
	start := p.start()
	if !p.ts() {
		p.bag.Add(diagTSSyntaxInJS("enum declarations", p.cur().Span))
	}
	isConst := p.eat(lexer.TokenConst)
	p.expect(lexer.TokenEnum)
	id := p.parseBindingIdentifier()
	if id == nil {
		return p.invalidStmt(p.finish(start))
	}

	p.expect(lexer.TokenLBrace)
	var members []ast.TSEnumMember
	for !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
		member, ok := p.parseEnumMember()
		if !ok {
			// Skip to the next member boundary.
			for !p.at(lexer.TokenComma) && !p.at(lexer.TokenRBrace) && !p.at(lexer.TokenEOF) {
				p.bump()
			}
		} else {
			members = append(members, member)
		}
		if !p.eat(lexer.TokenComma) {
			break
		}
	}
	p.expect(lexer.TokenRBrace)
	return p.alloc.TSEnumDeclaration.Alloc(ast.TSEnumDeclaration{
		Loc:     p.finish(start),
		ID:      id,
		Members: members,
		Const:   isConst,
		Declare: mods.ContainsDeclare(),
	})
}

func (p *Parser) parseEnumMember() (ast.TSEnumMember, bool) {
	start := p.start()
	tok := p.cur()
	var id ast.Expr
	switch {
	case tok.Type.IsIdentifierName():
		p.bump()
		id = p.alloc.IdentifierName.Alloc(ast.IdentifierName{Loc: tok.Span, Name: tok.Literal})
	case tok.Type == lexer.TokenString:
		p.bump()
		id = p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value})
	default:
		p.bag.Add(diagEnumMemberExpected(tok.Span))
		return ast.TSEnumMember{}, false
	}

	var init ast.Expr
	if p.eat(lexer.TokenAssign) {
		init = p.parseAssignmentExpressionOrHigher()
	}
	return ast.TSEnumMember{
		Loc:         p.finish(start),
		ID:          id,
		Initializer: init,
	}, true
}

// parseModuleDeclaration parses `namespace N {}`, `module N {}`,
// `module "name" {}` and `global {}`.
func (p *Parser) parseModuleDeclaration(mods Modifiers) ast.Stmt {
	start := p.start()
	if !p.ts() {
		p.bag.Add(diagTSSyntaxInJS("namespace declarations", p.cur().Span))
	}

	kind := ast.TSModuleKindNamespace
	var id ast.Node
	switch p.cur().Type {
	case lexer.TokenGlobal:
		kind = ast.TSModuleKindGlobal
		tok := p.cur()
		p.bump()
		id = p.alloc.IdentifierName.Alloc(ast.IdentifierName{Loc: tok.Span, Name: tok.Literal})
	case lexer.TokenModule:
		kind = ast.TSModuleKindModule
		p.bump()
		if p.at(lexer.TokenString) {
			tok := p.cur()
			p.bump()
			id = p.alloc.StringLiteral.Alloc(ast.StringLiteral{Loc: tok.Span, Value: tok.Value})
		} else {
			id = p.parseModulePath()
		}
	default:
		p.expect(lexer.TokenNamespace)
		id = p.parseModulePath()
	}
	if id == nil {
		return p.invalidStmt(p.finish(start))
	}

	var body *ast.TSModuleBlock
	if p.at(lexer.TokenLBrace) {
		bodyStart := p.start()
		p.bump()
		stmts := p.parseStatementList(lexer.TokenRBrace)
		p.expect(lexer.TokenRBrace)
		body = p.alloc.TSModuleBlock.Alloc(ast.TSModuleBlock{
			Loc:  p.finish(bodyStart),
			Body: stmts,
		})
	} else {
		p.semicolon()
	}
	return p.alloc.TSModuleDeclaration.Alloc(ast.TSModuleDeclaration{
		Loc:     p.finish(start),
		ID:      id,
		Body:    body,
		Kind:    kind,
		Declare: mods.ContainsDeclare(),
	})
}

// parseModulePath parses `A.B.C` namespace names.
func (p *Parser) parseModulePath() ast.Node {
	return p.parseTypeName()
}
