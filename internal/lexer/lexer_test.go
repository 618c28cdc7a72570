package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/span"
)

func lex(t *testing.T, src string) (*Lexer, *diagnostics.Bag) {
	t.Helper()
	bag := diagnostics.NewBag()
	return New(span.NewFile("test.ts", src), bag), bag
}

func kinds(l *Lexer) []TokenType {
	var out []TokenType
	for tok := l.Current(); tok.Type != TokenEOF; tok = l.Next() {
		out = append(out, tok.Type)
	}
	return out
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			name:  "function declaration",
			input: "function f(a, b) {}",
			want: []TokenType{
				TokenFunction, TokenIdent, TokenLParen, TokenIdent, TokenComma,
				TokenIdent, TokenRParen, TokenLBrace, TokenRBrace,
			},
		},
		{
			name:  "arrow with types",
			input: "const f = (x: number): void => x;",
			want: []TokenType{
				TokenConst, TokenIdent, TokenAssign, TokenLParen, TokenIdent,
				TokenColon, TokenIdent, TokenRParen, TokenColon, TokenVoid,
				TokenArrow, TokenIdent, TokenSemicolon,
			},
		},
		{
			name:  "compound operators",
			input: "a ??= b ** c >>> d !== e?.f",
			want: []TokenType{
				TokenIdent, TokenNullishAssign, TokenIdent, TokenPow, TokenIdent,
				TokenUShr, TokenIdent, TokenNotStrictEq, TokenIdent,
				TokenQuestionDot, TokenIdent,
			},
		},
		{
			name:  "contextual keywords",
			input: "async function f() { await x; yield y; }",
			want: []TokenType{
				TokenAsync, TokenFunction, TokenIdent, TokenLParen, TokenRParen,
				TokenLBrace, TokenAwait, TokenIdent, TokenSemicolon,
				TokenYield, TokenIdent, TokenSemicolon, TokenRBrace,
			},
		},
		{
			name:  "spread and rest",
			input: "f(...args)",
			want: []TokenType{
				TokenIdent, TokenLParen, TokenEllipsis, TokenIdent, TokenRParen,
			},
		},
		{
			name:  "private name",
			input: "this.#count",
			want:  []TokenType{TokenThis, TokenDot, TokenPrivateName},
		},
		{
			name:  "decorator",
			input: "@injectable class C {}",
			want: []TokenType{
				TokenAt, TokenIdent, TokenClass, TokenIdent, TokenLBrace, TokenRBrace,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, bag := lex(t, tt.input)
			assert.Equal(t, tt.want, kinds(l))
			assert.False(t, bag.HasErrors())
		})
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		input string
		tt    TokenType
		value float64
	}{
		{"42", TokenNumber, 42},
		{"3.25", TokenNumber, 3.25},
		{".5", TokenNumber, 0.5},
		{"1e3", TokenNumber, 1000},
		{"1_000_000", TokenNumber, 1000000},
		{"0xFF", TokenNumber, 255},
		{"0b101", TokenNumber, 5},
		{"0o17", TokenNumber, 15},
		{"10n", TokenBigInt, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, bag := lex(t, tt.input)
			tok := l.Current()
			require.Equal(t, tt.tt, tok.Type)
			if tt.tt == TokenNumber {
				assert.Equal(t, tt.value, tok.Number)
			}
			assert.False(t, bag.HasErrors())
		})
	}
}

func TestScanStrings(t *testing.T) {
	l, bag := lex(t, `'a\nb' "cAd"`)
	tok := l.Current()
	require.Equal(t, TokenString, tok.Type)
	assert.Equal(t, "a\nb", tok.Value)

	tok = l.Next()
	require.Equal(t, TokenString, tok.Type)
	assert.Equal(t, "cAd", tok.Value)
	assert.False(t, bag.HasErrors())
}

func TestUnterminatedString(t *testing.T) {
	l, bag := lex(t, "'abc\nnext")
	tok := l.Current()
	assert.Equal(t, TokenString, tok.Type)
	assert.True(t, bag.HasErrors())
	// Lexing continues on the next line.
	assert.Equal(t, TokenIdent, l.Next().Type)
}

func TestTemplates(t *testing.T) {
	l, _ := lex(t, "`a${x}b${y}c`")
	tok := l.Current()
	require.Equal(t, TokenTemplateHead, tok.Type)
	assert.Equal(t, "a", tok.Value)

	require.Equal(t, TokenIdent, l.Next().Type)
	require.Equal(t, TokenRBrace, l.Next().Type)

	tok = l.ReScanTemplateContinuation()
	require.Equal(t, TokenTemplateMiddle, tok.Type)
	assert.Equal(t, "b", tok.Value)

	require.Equal(t, TokenIdent, l.Next().Type)
	require.Equal(t, TokenRBrace, l.Next().Type)

	tok = l.ReScanTemplateContinuation()
	require.Equal(t, TokenTemplateTail, tok.Type)
	assert.Equal(t, "c", tok.Value)
}

func TestNoSubstitutionTemplate(t *testing.T) {
	l, _ := lex(t, "`plain`")
	tok := l.Current()
	require.Equal(t, TokenTemplate, tok.Type)
	assert.Equal(t, "plain", tok.Value)
}

func TestRegExpReScan(t *testing.T) {
	l, bag := lex(t, "/ab[c/]d/gi")
	require.Equal(t, TokenSlash, l.Current().Type)

	tok := l.ReScanSlashAsRegExp()
	require.Equal(t, TokenRegExp, tok.Type)
	assert.Equal(t, "/ab[c/]d/gi", tok.Literal)
	assert.False(t, bag.HasErrors())
}

func TestGreaterThanSplit(t *testing.T) {
	l, _ := lex(t, "Map<string, Array<number>> x")
	for l.Current().Type != TokenShr {
		l.Next()
	}
	tok := l.ReScanGreaterThan()
	assert.Equal(t, TokenGt, tok.Type)
	assert.Equal(t, uint32(1), tok.Span.Len())
	assert.Equal(t, TokenGt, l.Next().Type)
	assert.Equal(t, TokenIdent, l.Next().Type)
}

func TestOnNewLine(t *testing.T) {
	l, _ := lex(t, "a\nb c")
	assert.False(t, l.Current().OnNewLine)
	assert.True(t, l.Next().OnNewLine)  // b
	assert.False(t, l.Next().OnNewLine) // c
}

func TestCheckpointRestore(t *testing.T) {
	l, _ := lex(t, "a b c")
	cp := l.Checkpoint()
	l.Next()
	l.Next()
	require.Equal(t, "c", l.Current().Literal)
	l.Restore(cp)
	assert.Equal(t, "a", l.Current().Literal)
	assert.Equal(t, "b", l.Next().Literal)
}

func TestPeekDoesNotAdvance(t *testing.T) {
	l, _ := lex(t, "a b")
	assert.Equal(t, "b", l.Peek().Literal)
	assert.Equal(t, "a", l.Current().Literal)
}

func TestCommentsAndShebang(t *testing.T) {
	l, bag := lex(t, "#!/usr/bin/env node\n// comment\n/* block */ x")
	tok := l.Current()
	assert.Equal(t, TokenIdent, tok.Type)
	assert.Equal(t, "x", tok.Literal)
	assert.True(t, tok.OnNewLine)
	assert.False(t, bag.HasErrors())
}
