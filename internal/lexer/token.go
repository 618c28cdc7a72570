// Package lexer implements the JavaScript/TypeScript tokenizer that
// feeds the kyanite grammar engine. It produces one token at a time,
// tracks line-break flags for ASI decisions, and supports position
// checkpoints so the parser can scan speculatively and rewind.
package lexer

import (
	"fmt"

	"github.com/kyanite-dev/kyanite/internal/span"
)

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	TokenEOF TokenType = iota

	// Literals and names
	TokenIdent
	TokenPrivateName
	TokenNumber
	TokenBigInt
	TokenString
	TokenTemplate // `...` with no substitution
	TokenTemplateHead
	TokenTemplateMiddle
	TokenTemplateTail
	TokenRegExp

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenColon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenArrow
	TokenAt
	TokenQuestion
	TokenQuestionDot
	TokenNullish
	TokenNullishAssign
	TokenBang
	TokenNotEq
	TokenNotStrictEq
	TokenAssign
	TokenEq
	TokenStrictEq
	TokenLt
	TokenLtEq
	TokenShl
	TokenShlAssign
	TokenGt
	TokenGtEq
	TokenShr
	TokenShrAssign
	TokenUShr
	TokenUShrAssign
	TokenPlus
	TokenInc
	TokenPlusAssign
	TokenMinus
	TokenDec
	TokenMinusAssign
	TokenStar
	TokenPow
	TokenStarAssign
	TokenPowAssign
	TokenSlash
	TokenSlashAssign
	TokenPercent
	TokenPercentAssign
	TokenAmp
	TokenLogicalAnd
	TokenAmpAssign
	TokenLogicalAndAssign
	TokenPipe
	TokenLogicalOr
	TokenPipeAssign
	TokenLogicalOrAssign
	TokenCaret
	TokenCaretAssign
	TokenTilde

	// Reserved keywords
	TokenAwait
	TokenBreak
	TokenCase
	TokenCatch
	TokenClass
	TokenConst
	TokenContinue
	TokenDebugger
	TokenDefault
	TokenDelete
	TokenDo
	TokenElse
	TokenEnum
	TokenExport
	TokenExtends
	TokenFalse
	TokenFinally
	TokenFor
	TokenFunction
	TokenIf
	TokenImport
	TokenIn
	TokenInstanceof
	TokenNew
	TokenNull
	TokenReturn
	TokenSuper
	TokenSwitch
	TokenThis
	TokenThrow
	TokenTrue
	TokenTry
	TokenTypeof
	TokenVar
	TokenVoid
	TokenWhile
	TokenWith
	TokenYield

	// Contextual keywords (legal identifiers outside their grammar role)
	TokenAbstract
	TokenAccessor
	TokenAs
	TokenAsserts
	TokenAsync
	TokenDeclare
	TokenFrom
	TokenGet
	TokenGlobal
	TokenImplements
	TokenInfer
	TokenInterface
	TokenIs
	TokenKeyof
	TokenLet
	TokenMeta
	TokenModule
	TokenNamespace
	TokenOf
	TokenOut
	TokenOverride
	TokenPackage
	TokenPrivate
	TokenProtected
	TokenPublic
	TokenReadonly
	TokenSatisfies
	TokenSet
	TokenStatic
	TokenTarget
	TokenTypeKeyword
	TokenUndefined
	TokenUnique
)

// Token is one lexical token with its source span. OnNewLine is true
// when at least one line terminator separates the token from the one
// before it; the parser consults it for ASI and restricted productions.
type Token struct {
	Type      TokenType
	Span      span.Span
	OnNewLine bool

	Literal string  // raw source text
	Value   string  // cooked value for strings and template chunks
	Number  float64 // numeric value for TokenNumber
}

func (t Token) String() string {
	return fmt.Sprintf("{%s %q %s}", t.Type, t.Literal, t.Span)
}

var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenIdent:            "identifier",
	TokenPrivateName:      "private name",
	TokenNumber:           "number",
	TokenBigInt:           "bigint",
	TokenString:           "string",
	TokenTemplate:         "template",
	TokenTemplateHead:     "template head",
	TokenTemplateMiddle:   "template middle",
	TokenTemplateTail:     "template tail",
	TokenRegExp:           "regular expression",
	TokenLParen:           "(",
	TokenRParen:           ")",
	TokenLBrace:           "{",
	TokenRBrace:           "}",
	TokenLBracket:         "[",
	TokenRBracket:         "]",
	TokenSemicolon:        ";",
	TokenColon:            ":",
	TokenComma:            ",",
	TokenDot:              ".",
	TokenEllipsis:         "...",
	TokenArrow:            "=>",
	TokenAt:               "@",
	TokenQuestion:         "?",
	TokenQuestionDot:      "?.",
	TokenNullish:          "??",
	TokenNullishAssign:    "??=",
	TokenBang:             "!",
	TokenNotEq:            "!=",
	TokenNotStrictEq:      "!==",
	TokenAssign:           "=",
	TokenEq:               "==",
	TokenStrictEq:         "===",
	TokenLt:               "<",
	TokenLtEq:             "<=",
	TokenShl:              "<<",
	TokenShlAssign:        "<<=",
	TokenGt:               ">",
	TokenGtEq:             ">=",
	TokenShr:              ">>",
	TokenShrAssign:        ">>=",
	TokenUShr:             ">>>",
	TokenUShrAssign:       ">>>=",
	TokenPlus:             "+",
	TokenInc:              "++",
	TokenPlusAssign:       "+=",
	TokenMinus:            "-",
	TokenDec:              "--",
	TokenMinusAssign:      "-=",
	TokenStar:             "*",
	TokenPow:              "**",
	TokenStarAssign:       "*=",
	TokenPowAssign:        "**=",
	TokenSlash:            "/",
	TokenSlashAssign:      "/=",
	TokenPercent:          "%",
	TokenPercentAssign:    "%=",
	TokenAmp:              "&",
	TokenLogicalAnd:       "&&",
	TokenAmpAssign:        "&=",
	TokenLogicalAndAssign: "&&=",
	TokenPipe:             "|",
	TokenLogicalOr:        "||",
	TokenPipeAssign:       "|=",
	TokenLogicalOrAssign:  "||=",
	TokenCaret:            "^",
	TokenCaretAssign:      "^=",
	TokenTilde:            "~",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	if kw, ok := keywordNames[tt]; ok {
		return kw
	}
	return fmt.Sprintf("token(%d)", int(tt))
}

// keywords maps source text to keyword token types. Contextual
// keywords are scanned as their own types; the parser decides whether
// they act as keywords or plain identifiers at each use site.
var keywords = map[string]TokenType{
	"await":      TokenAwait,
	"break":      TokenBreak,
	"case":       TokenCase,
	"catch":      TokenCatch,
	"class":      TokenClass,
	"const":      TokenConst,
	"continue":   TokenContinue,
	"debugger":   TokenDebugger,
	"default":    TokenDefault,
	"delete":     TokenDelete,
	"do":         TokenDo,
	"else":       TokenElse,
	"enum":       TokenEnum,
	"export":     TokenExport,
	"extends":    TokenExtends,
	"false":      TokenFalse,
	"finally":    TokenFinally,
	"for":        TokenFor,
	"function":   TokenFunction,
	"if":         TokenIf,
	"import":     TokenImport,
	"in":         TokenIn,
	"instanceof": TokenInstanceof,
	"new":        TokenNew,
	"null":       TokenNull,
	"return":     TokenReturn,
	"super":      TokenSuper,
	"switch":     TokenSwitch,
	"this":       TokenThis,
	"throw":      TokenThrow,
	"true":       TokenTrue,
	"try":        TokenTry,
	"typeof":     TokenTypeof,
	"var":        TokenVar,
	"void":       TokenVoid,
	"while":      TokenWhile,
	"with":       TokenWith,
	"yield":      TokenYield,

	"abstract":   TokenAbstract,
	"accessor":   TokenAccessor,
	"as":         TokenAs,
	"asserts":    TokenAsserts,
	"async":      TokenAsync,
	"declare":    TokenDeclare,
	"from":       TokenFrom,
	"get":        TokenGet,
	"global":     TokenGlobal,
	"implements": TokenImplements,
	"infer":      TokenInfer,
	"interface":  TokenInterface,
	"is":         TokenIs,
	"keyof":      TokenKeyof,
	"let":        TokenLet,
	"meta":       TokenMeta,
	"module":     TokenModule,
	"namespace":  TokenNamespace,
	"of":         TokenOf,
	"out":        TokenOut,
	"override":   TokenOverride,
	"package":    TokenPackage,
	"private":    TokenPrivate,
	"protected":  TokenProtected,
	"public":     TokenPublic,
	"readonly":   TokenReadonly,
	"satisfies":  TokenSatisfies,
	"set":        TokenSet,
	"static":     TokenStatic,
	"target":     TokenTarget,
	"type":       TokenTypeKeyword,
	"undefined":  TokenUndefined,
	"unique":     TokenUnique,
}

var keywordNames = func() map[TokenType]string {
	m := make(map[TokenType]string, len(keywords))
	for name, tt := range keywords {
		m[tt] = name
	}
	return m
}()

// IsKeyword reports whether the token type is any keyword, reserved
// or contextual.
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenAwait && tt <= TokenUnique
}

// IsReservedKeyword reports whether the token type is a keyword that
// can never be used as a binding identifier. `await` and `yield` are
// excluded: their legality depends on context and the parser checks
// them against the active Context value.
func (tt TokenType) IsReservedKeyword() bool {
	return tt >= TokenBreak && tt <= TokenWith
}

// IsStrictReservedWord reports whether the token type is reserved only
// in strict mode code.
func (tt TokenType) IsStrictReservedWord() bool {
	switch tt {
	case TokenImplements, TokenInterface, TokenLet, TokenPackage,
		TokenPrivate, TokenProtected, TokenPublic, TokenStatic, TokenYield:
		return true
	}
	return false
}

// IsBindingIdentifier reports whether the token can serve as a binding
// identifier in at least some context. Context-sensitive legality
// (await/yield, strict-mode words) is checked separately by the parser.
func (tt TokenType) IsBindingIdentifier() bool {
	if tt == TokenIdent {
		return true
	}
	if tt == TokenAwait || tt == TokenYield {
		return true
	}
	return tt.IsContextualKeyword()
}

// IsContextualKeyword reports whether the token is a keyword only in
// particular grammar positions.
func (tt TokenType) IsContextualKeyword() bool {
	return tt >= TokenAbstract && tt <= TokenUnique
}

// IsIdentifierName reports whether the token can appear where an
// IdentifierName is expected (property keys, member access).
func (tt TokenType) IsIdentifierName() bool {
	return tt == TokenIdent || tt.IsKeyword()
}

// IsAssignmentOperator reports whether the token is one of the
// compound or simple assignment operators.
func (tt TokenType) IsAssignmentOperator() bool {
	switch tt {
	case TokenAssign, TokenPlusAssign, TokenMinusAssign, TokenStarAssign,
		TokenSlashAssign, TokenPercentAssign, TokenPowAssign,
		TokenShlAssign, TokenShrAssign, TokenUShrAssign,
		TokenAmpAssign, TokenPipeAssign, TokenCaretAssign,
		TokenLogicalAndAssign, TokenLogicalOrAssign, TokenNullishAssign:
		return true
	}
	return false
}
