package parser

import (
	"github.com/kyanite-dev/kyanite/internal/ast"
	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/lexer"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// ModifierKind identifies a single TypeScript modifier keyword.
type ModifierKind uint8

const (
	ModifierAbstract ModifierKind = iota
	ModifierAccessor
	ModifierAsync
	ModifierConst
	ModifierDeclare
	ModifierIn
	ModifierOut
	ModifierOverride
	ModifierPrivate
	ModifierProtected
	ModifierPublic
	ModifierReadonly
	ModifierStatic
)

var modifierNames = [...]string{
	ModifierAbstract:  "abstract",
	ModifierAccessor:  "accessor",
	ModifierAsync:     "async",
	ModifierConst:     "const",
	ModifierDeclare:   "declare",
	ModifierIn:        "in",
	ModifierOut:       "out",
	ModifierOverride:  "override",
	ModifierPrivate:   "private",
	ModifierProtected: "protected",
	ModifierPublic:    "public",
	ModifierReadonly:  "readonly",
	ModifierStatic:    "static",
}

func (k ModifierKind) String() string { return modifierNames[k] }

// ModifierFlags is a bitset over ModifierKind used to express which
// modifiers a construct accepts.
type ModifierFlags uint16

const (
	FlagAbstract ModifierFlags = 1 << ModifierAbstract
	FlagAccessor ModifierFlags = 1 << ModifierAccessor
	FlagAsync    ModifierFlags = 1 << ModifierAsync
	FlagConst    ModifierFlags = 1 << ModifierConst
	FlagDeclare  ModifierFlags = 1 << ModifierDeclare
	FlagIn       ModifierFlags = 1 << ModifierIn
	FlagOut      ModifierFlags = 1 << ModifierOut
	FlagOverride  ModifierFlags = 1 << ModifierOverride
	FlagPrivate   ModifierFlags = 1 << ModifierPrivate
	FlagProtected ModifierFlags = 1 << ModifierProtected
	FlagPublic    ModifierFlags = 1 << ModifierPublic
	FlagReadonly ModifierFlags = 1 << ModifierReadonly
	FlagStatic   ModifierFlags = 1 << ModifierStatic

	FlagNone          ModifierFlags = 0
	FlagAccessibility               = FlagPublic | FlagPrivate | FlagProtected

	// flagsFunction is what a function declaration accepts.
	flagsFunction = FlagDeclare | FlagAsync
	// flagsParameter is what a formal parameter accepts, in TS
	// constructor parameter-property positions.
	flagsParameter = FlagAccessibility | FlagReadonly | FlagOverride
	// flagsClassMember is what methods and properties accept.
	flagsClassMember = FlagAccessibility | FlagStatic | FlagAbstract |
		FlagOverride | FlagReadonly | FlagAsync | FlagDeclare | FlagAccessor
	// flagsTypeParameter covers variance and const annotations.
	flagsTypeParameter = FlagIn | FlagOut | FlagConst
)

// Modifier is one parsed modifier keyword with its location.
type Modifier struct {
	Loc  span.Span
	Kind ModifierKind
}

// Modifiers collects the modifiers preceding a declaration. Invalid
// combinations are kept in the list and reported by verify; dropping
// them would lose the spans later checks need.
type Modifiers struct {
	list  []Modifier
	flags ModifierFlags
}

func (m *Modifiers) Contains(k ModifierKind) bool {
	return m.flags&(1<<k) != 0
}

func (m *Modifiers) ContainsDeclare() bool { return m.Contains(ModifierDeclare) }
func (m *Modifiers) ContainsAsync() bool   { return m.Contains(ModifierAsync) }
func (m *Modifiers) ContainsStatic() bool  { return m.Contains(ModifierStatic) }
func (m *Modifiers) IsEmpty() bool         { return len(m.list) == 0 }

// Accessibility returns the first accessibility modifier, if any.
func (m *Modifiers) Accessibility() ast.Accessibility {
	for _, mod := range m.list {
		switch mod.Kind {
		case ModifierPublic:
			return ast.AccessibilityPublic
		case ModifierPrivate:
			return ast.AccessibilityPrivate
		case ModifierProtected:
			return ast.AccessibilityProtected
		}
	}
	return ast.AccessibilityNone
}

func (m *Modifiers) add(mod Modifier) {
	m.list = append(m.list, mod)
	m.flags |= 1 << mod.Kind
}

// Span returns the range covering every parsed modifier.
func (m *Modifiers) Span() span.Span {
	if len(m.list) == 0 {
		return span.Empty(0)
	}
	return m.list[0].Loc.Merge(m.list[len(m.list)-1].Loc)
}

var tokenModifierKinds = map[lexer.TokenType]ModifierKind{
	lexer.TokenAbstract:  ModifierAbstract,
	lexer.TokenAccessor:  ModifierAccessor,
	lexer.TokenAsync:     ModifierAsync,
	lexer.TokenConst:     ModifierConst,
	lexer.TokenDeclare:   ModifierDeclare,
	lexer.TokenIn:        ModifierIn,
	lexer.TokenOut:       ModifierOut,
	lexer.TokenOverride:  ModifierOverride,
	lexer.TokenPrivate:   ModifierPrivate,
	lexer.TokenProtected: ModifierProtected,
	lexer.TokenPublic:    ModifierPublic,
	lexer.TokenReadonly:  ModifierReadonly,
	lexer.TokenStatic:    ModifierStatic,
}

// parseModifiers consumes the run of modifier keywords at the current
// position. A keyword only counts as a modifier when the token after
// it can start the modified thing; `static = 1` is a property named
// static, not a static property.
func (p *Parser) parseModifiers(allowConst bool) Modifiers {
	var mods Modifiers
	for {
		kind, ok := tokenModifierKinds[p.cur().Type]
		if !ok {
			break
		}
		if kind == ModifierConst && !allowConst {
			break
		}
		if kind != ModifierIn && kind != ModifierOut && !p.nextTokenCanFollowModifier() {
			break
		}
		tok := p.cur()
		if mods.Contains(kind) {
			p.bag.Add(diagModifierAlreadySeen(kind.String(), tok.Span))
		} else if kind <= ModifierPublic && kind >= ModifierPrivate && mods.flags&FlagAccessibility != 0 {
			p.bag.Add(diagAccessibilityModifierAlreadySeen(tok.Span))
		}
		mods.add(Modifier{Loc: tok.Span, Kind: kind})
		p.bump()
	}
	return mods
}

// nextTokenCanFollowModifier looks one token past a candidate modifier
// keyword. A line break after `async` ends the modifier per ASI, and
// tokens like `=` or `(` mean the keyword was really a name.
func (p *Parser) nextTokenCanFollowModifier() bool {
	next := p.peek()
	if next.OnNewLine {
		return false
	}
	switch next.Type {
	case lexer.TokenAssign, lexer.TokenLParen, lexer.TokenRParen, lexer.TokenColon,
		lexer.TokenComma, lexer.TokenQuestion, lexer.TokenSemicolon, lexer.TokenRBrace,
		lexer.TokenLt, lexer.TokenEOF, lexer.TokenArrow:
		return false
	}
	return true
}

// verifyModifiers reports every parsed modifier not present in
// allowed. Parsing always retains the modifier; legality is a
// separate, positional question answered here.
func (p *Parser) verifyModifiers(mods *Modifiers, allowed ModifierFlags,
	diag func(string, span.Span) diagnostics.Diagnostic) {
	for _, mod := range mods.list {
		if allowed&(1<<mod.Kind) == 0 {
			p.bag.Add(diag(mod.Kind.String(), mod.Loc))
		}
		if !p.ts() {
			switch mod.Kind {
			case ModifierAsync, ModifierStatic, ModifierAccessor:
			default:
				p.bag.Add(diagTSSyntaxInJS("'"+mod.Kind.String()+"' modifier", mod.Loc))
			}
		}
	}
}
