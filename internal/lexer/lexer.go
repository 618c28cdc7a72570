package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kyanite-dev/kyanite/internal/diagnostics"
	"github.com/kyanite-dev/kyanite/internal/span"
)

// Lexer scans one source file. It exposes exactly one current token;
// the parser advances it with Next and rewinds it with checkpoints.
type Lexer struct {
	file *span.File
	src  string
	bag  *diagnostics.Bag

	pos       int  // offset of the next unscanned byte
	tok       Token
	onNewLine bool // pending line-break flag for the next token
}

// Checkpoint is an opaque lexer position for speculative parsing.
// Restoring a checkpoint rewinds the token stream exactly; diagnostics
// raised in between are the caller's responsibility (see Bag.Mark).
type Checkpoint struct {
	pos int
	tok Token
}

// New creates a lexer over the file and scans the first token.
func New(file *span.File, bag *diagnostics.Bag) *Lexer {
	l := &Lexer{file: file, src: file.Src, bag: bag}
	l.skipShebang()
	l.Next()
	return l
}

// File returns the source file being scanned.
func (l *Lexer) File() *span.File {
	return l.file
}

// Current returns the current token without advancing.
func (l *Lexer) Current() Token {
	return l.tok
}

// Next scans and returns the next token.
func (l *Lexer) Next() Token {
	l.onNewLine = false
	l.skipTrivia()
	start := l.pos
	l.tok.Literal = ""
	l.tok.Value = ""
	l.tok.Number = 0
	tt := l.scan()
	l.tok.Type = tt
	l.tok.Span = span.New(uint32(start), uint32(l.pos))
	l.tok.OnNewLine = l.onNewLine
	if l.tok.Literal == "" {
		l.tok.Literal = l.src[start:l.pos]
	}
	return l.tok
}

// Checkpoint captures the current lexer position.
func (l *Lexer) Checkpoint() Checkpoint {
	return Checkpoint{pos: l.pos, tok: l.tok}
}

// Restore rewinds the lexer to a previously captured checkpoint.
func (l *Lexer) Restore(cp Checkpoint) {
	l.pos = cp.pos
	l.tok = cp.tok
}

// Peek returns the token after the current one without consuming it.
func (l *Lexer) Peek() Token {
	cp := l.Checkpoint()
	mark := l.bag.Mark()
	tok := l.Next()
	l.Restore(cp)
	l.bag.Truncate(mark)
	return tok
}

func (l *Lexer) error(msg string, sp span.Span) {
	l.bag.Add(diagnostics.Error(msg, sp))
}

func (l *Lexer) skipShebang() {
	if strings.HasPrefix(l.src, "#!") {
		for l.pos < len(l.src) && l.src[l.pos] != '\n' {
			l.pos++
		}
	}
}

// skipTrivia consumes whitespace and comments, recording whether a
// line terminator was crossed.
func (l *Lexer) skipTrivia() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n' || c == '\r':
			l.onNewLine = true
			l.pos++
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			l.pos++
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			l.pos += 2
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			start := l.pos
			l.pos += 2
			closed := false
			for l.pos < len(l.src) {
				if l.src[l.pos] == '\n' {
					l.onNewLine = true
				}
				if l.src[l.pos] == '*' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
					l.pos += 2
					closed = true
					break
				}
				l.pos++
			}
			if !closed {
				l.error("unterminated block comment", span.New(uint32(start), uint32(l.pos)))
			}
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if r == ' ' || r == ' ' {
				l.onNewLine = true
				l.pos += size
			} else if unicode.IsSpace(r) {
				l.pos += size
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) scan() TokenType {
	if l.pos >= len(l.src) {
		return TokenEOF
	}
	c := l.src[l.pos]

	switch {
	case isIdentStart(rune(c)) || c >= utf8.RuneSelf:
		return l.scanIdentOrKeyword()
	case c >= '0' && c <= '9':
		return l.scanNumber()
	}

	l.pos++
	switch c {
	case '(':
		return TokenLParen
	case ')':
		return TokenRParen
	case '{':
		return TokenLBrace
	case '}':
		return TokenRBrace
	case '[':
		return TokenLBracket
	case ']':
		return TokenRBracket
	case ';':
		return TokenSemicolon
	case ':':
		return TokenColon
	case ',':
		return TokenComma
	case '@':
		return TokenAt
	case '~':
		return TokenTilde
	case '#':
		return l.scanPrivateName()
	case '"', '\'':
		return l.scanString(c)
	case '`':
		return l.scanTemplate(true)
	case '.':
		if l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos--
			return l.scanNumber()
		}
		if l.match("..") {
			return TokenEllipsis
		}
		return TokenDot
	case '?':
		if l.match("?=") {
			return TokenNullishAssign
		}
		if l.match("?") {
			return TokenNullish
		}
		// `?.` only when not followed by a digit: `a?.5:b` is a
		// conditional, not optional chaining.
		if l.pos < len(l.src) && l.src[l.pos] == '.' &&
			!(l.pos+1 < len(l.src) && l.src[l.pos+1] >= '0' && l.src[l.pos+1] <= '9') {
			l.pos++
			return TokenQuestionDot
		}
		return TokenQuestion
	case '!':
		if l.match("==") {
			return TokenNotStrictEq
		}
		if l.match("=") {
			return TokenNotEq
		}
		return TokenBang
	case '=':
		if l.match("==") {
			return TokenStrictEq
		}
		if l.match("=") {
			return TokenEq
		}
		if l.match(">") {
			return TokenArrow
		}
		return TokenAssign
	case '<':
		if l.match("<=") {
			return TokenShlAssign
		}
		if l.match("<") {
			return TokenShl
		}
		if l.match("=") {
			return TokenLtEq
		}
		return TokenLt
	case '>':
		if l.match(">>=") {
			return TokenUShrAssign
		}
		if l.match(">>") {
			return TokenUShr
		}
		if l.match(">=") {
			return TokenShrAssign
		}
		if l.match(">") {
			return TokenShr
		}
		if l.match("=") {
			return TokenGtEq
		}
		return TokenGt
	case '+':
		if l.match("+") {
			return TokenInc
		}
		if l.match("=") {
			return TokenPlusAssign
		}
		return TokenPlus
	case '-':
		if l.match("-") {
			return TokenDec
		}
		if l.match("=") {
			return TokenMinusAssign
		}
		return TokenMinus
	case '*':
		if l.match("*=") {
			return TokenPowAssign
		}
		if l.match("*") {
			return TokenPow
		}
		if l.match("=") {
			return TokenStarAssign
		}
		return TokenStar
	case '/':
		if l.match("=") {
			return TokenSlashAssign
		}
		return TokenSlash
	case '%':
		if l.match("=") {
			return TokenPercentAssign
		}
		return TokenPercent
	case '&':
		if l.match("&=") {
			return TokenLogicalAndAssign
		}
		if l.match("&") {
			return TokenLogicalAnd
		}
		if l.match("=") {
			return TokenAmpAssign
		}
		return TokenAmp
	case '|':
		if l.match("|=") {
			return TokenLogicalOrAssign
		}
		if l.match("|") {
			return TokenLogicalOr
		}
		if l.match("=") {
			return TokenPipeAssign
		}
		return TokenPipe
	case '^':
		if l.match("=") {
			return TokenCaretAssign
		}
		return TokenCaret
	}

	l.error("unexpected character", span.New(uint32(l.pos-1), uint32(l.pos)))
	// Skip the offending byte and scan on: the parser must always see
	// a usable stream.
	l.skipTrivia()
	return l.scan()
}

// match consumes s if it immediately follows the cursor.
func (l *Lexer) match(s string) bool {
	if strings.HasPrefix(l.src[l.pos:], s) {
		l.pos += len(s)
		return true
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' ||
		r >= utf8.RuneSelf && unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || r >= '0' && r <= '9' ||
		r >= utf8.RuneSelf && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r))
}

func (l *Lexer) scanIdentOrKeyword() TokenType {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}
	if tt, ok := keywords[l.src[start:l.pos]]; ok {
		return tt
	}
	return TokenIdent
}

func (l *Lexer) scanPrivateName() TokenType {
	// Cursor is just past `#`.
	if l.pos >= len(l.src) || !isIdentStart(rune(l.src[l.pos])) {
		l.error("expected identifier after `#`", span.New(uint32(l.pos-1), uint32(l.pos)))
		return TokenPrivateName
	}
	l.scanIdentOrKeyword()
	return TokenPrivateName
}

func (l *Lexer) scanNumber() TokenType {
	start := l.pos
	tt := TokenNumber

	if l.src[l.pos] == '0' && l.pos+1 < len(l.src) {
		switch l.src[l.pos+1] {
		case 'x', 'X':
			l.pos += 2
			l.scanDigits(isHexDigit)
		case 'o', 'O':
			l.pos += 2
			l.scanDigits(func(c byte) bool { return c >= '0' && c <= '7' })
		case 'b', 'B':
			l.pos += 2
			l.scanDigits(func(c byte) bool { return c == '0' || c == '1' })
		default:
			l.scanDecimal()
		}
	} else {
		l.scanDecimal()
	}

	if l.pos < len(l.src) && l.src[l.pos] == 'n' {
		l.pos++
		tt = TokenBigInt
	}

	// An identifier glued to a number is always malformed.
	if l.pos < len(l.src) && isIdentStart(rune(l.src[l.pos])) {
		idStart := l.pos
		l.scanIdentOrKeyword()
		l.error("identifier cannot immediately follow a numeric literal",
			span.New(uint32(idStart), uint32(l.pos)))
	}

	raw := l.src[start:l.pos]
	if tt == TokenNumber {
		clean := strings.ReplaceAll(strings.TrimSuffix(raw, "n"), "_", "")
		if v, err := parseNumber(clean); err == nil {
			l.tok.Number = v
		} else {
			l.error("invalid numeric literal", span.New(uint32(start), uint32(l.pos)))
		}
	}
	return tt
}

func parseNumber(s string) (float64, error) {
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			v, err := strconv.ParseUint(s[2:], baseOf(s[1]), 64)
			return float64(v), err
		}
	}
	return strconv.ParseFloat(s, 64)
}

func baseOf(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	default:
		return 2
	}
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func (l *Lexer) scanDigits(valid func(byte) bool) {
	for l.pos < len(l.src) && (valid(l.src[l.pos]) || l.src[l.pos] == '_') {
		l.pos++
	}
}

func (l *Lexer) scanDecimal() {
	digits := func(c byte) bool { return c >= '0' && c <= '9' }
	l.scanDigits(digits)
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		l.scanDigits(digits)
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		mark := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos < len(l.src) && digits(l.src[l.pos]) {
			l.scanDigits(digits)
		} else {
			l.pos = mark // not an exponent after all
		}
	}
}

func (l *Lexer) scanString(quote byte) TokenType {
	start := l.pos - 1
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case quote:
			l.pos++
			l.tok.Value = sb.String()
			l.tok.Literal = l.src[start:l.pos]
			return TokenString
		case '\\':
			l.pos++
			l.scanEscape(&sb)
		case '\n', '\r':
			l.error("unterminated string literal", span.New(uint32(start), uint32(l.pos)))
			l.tok.Value = sb.String()
			l.tok.Literal = l.src[start:l.pos]
			return TokenString
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	l.error("unterminated string literal", span.New(uint32(start), uint32(l.pos)))
	l.tok.Value = sb.String()
	l.tok.Literal = l.src[start:l.pos]
	return TokenString
}

func (l *Lexer) scanEscape(sb *strings.Builder) {
	if l.pos >= len(l.src) {
		return
	}
	c := l.src[l.pos]
	l.pos++
	switch c {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		if l.pos >= len(l.src) || l.src[l.pos] < '0' || l.src[l.pos] > '9' {
			sb.WriteByte(0)
			return
		}
		sb.WriteByte('0')
	case 'x':
		if l.pos+2 <= len(l.src) && isHexDigit(l.src[l.pos]) && isHexDigit(l.src[l.pos+1]) {
			v, _ := strconv.ParseUint(l.src[l.pos:l.pos+2], 16, 32)
			sb.WriteRune(rune(v))
			l.pos += 2
		} else {
			l.error("invalid hexadecimal escape", span.New(uint32(l.pos-2), uint32(l.pos)))
		}
	case 'u':
		l.scanUnicodeEscape(sb)
	case '\n':
		// line continuation
	case '\r':
		if l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
		}
	default:
		sb.WriteByte(c)
	}
}

func (l *Lexer) scanUnicodeEscape(sb *strings.Builder) {
	if l.pos < len(l.src) && l.src[l.pos] == '{' {
		end := strings.IndexByte(l.src[l.pos:], '}')
		if end < 0 {
			l.error("unterminated unicode escape", span.New(uint32(l.pos-2), uint32(l.pos)))
			return
		}
		v, err := strconv.ParseUint(l.src[l.pos+1:l.pos+end], 16, 32)
		if err != nil || v > unicode.MaxRune {
			l.error("invalid unicode escape", span.New(uint32(l.pos-2), uint32(l.pos+end+1)))
		} else {
			sb.WriteRune(rune(v))
		}
		l.pos += end + 1
		return
	}
	if l.pos+4 <= len(l.src) {
		v, err := strconv.ParseUint(l.src[l.pos:l.pos+4], 16, 32)
		if err == nil {
			sb.WriteRune(rune(v))
			l.pos += 4
			return
		}
	}
	l.error("invalid unicode escape", span.New(uint32(l.pos-2), uint32(l.pos)))
}

// scanTemplate scans a template chunk. With head=true the cursor is
// just past the opening backtick; otherwise just past the `}` closing
// a substitution. Returns Template/TemplateHead for head chunks and
// TemplateMiddle/TemplateTail otherwise.
func (l *Lexer) scanTemplate(head bool) TokenType {
	start := l.pos - 1
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '`':
			l.pos++
			l.tok.Value = sb.String()
			l.tok.Literal = l.src[start:l.pos]
			if head {
				return TokenTemplate
			}
			return TokenTemplateTail
		case '$':
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '{' {
				l.pos += 2
				l.tok.Value = sb.String()
				l.tok.Literal = l.src[start:l.pos]
				if head {
					return TokenTemplateHead
				}
				return TokenTemplateMiddle
			}
			sb.WriteByte(c)
			l.pos++
		case '\\':
			l.pos++
			l.scanEscape(&sb)
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	l.error("unterminated template literal", span.New(uint32(start), uint32(l.pos)))
	l.tok.Value = sb.String()
	l.tok.Literal = l.src[start:l.pos]
	if head {
		return TokenTemplate
	}
	return TokenTemplateTail
}

// ReScanTemplateContinuation re-interprets a `}` that closes a
// template substitution as the start of the next template chunk. The
// current token must be TokenRBrace.
func (l *Lexer) ReScanTemplateContinuation() Token {
	start := l.tok.Span.Start
	l.pos = int(start) + 1
	tt := l.scanTemplate(false)
	l.tok.Type = tt
	l.tok.Span = span.New(start, uint32(l.pos))
	l.tok.OnNewLine = false
	return l.tok
}

// ReScanSlashAsRegExp re-scans a `/` or `/=` token as a regular
// expression literal. The parser calls this where the grammar permits
// a regex and never where division is possible.
func (l *Lexer) ReScanSlashAsRegExp() Token {
	start := int(l.tok.Span.Start)
	l.pos = start + 1
	inClass := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\n' || c == '\r' {
			l.error("unterminated regular expression", span.New(uint32(start), uint32(l.pos)))
			break
		}
		l.pos++
		switch c {
		case '\\':
			if l.pos < len(l.src) {
				l.pos++
			}
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				goto flags
			}
		}
	}
	if l.pos >= len(l.src) {
		l.error("unterminated regular expression", span.New(uint32(start), uint32(l.pos)))
	}
flags:
	for l.pos < len(l.src) && isIdentPart(rune(l.src[l.pos])) {
		l.pos++
	}
	l.tok.Type = TokenRegExp
	l.tok.Span = span.New(uint32(start), uint32(l.pos))
	l.tok.Literal = l.src[start:l.pos]
	return l.tok
}

// ReScanGreaterThan splits a compound right-shift or comparison token
// so that nested type argument lists can each consume a single `>`.
// The current token must begin with `>`; it is replaced by TokenGt
// covering only the first character.
func (l *Lexer) ReScanGreaterThan() Token {
	start := int(l.tok.Span.Start)
	l.pos = start + 1
	l.tok.Type = TokenGt
	l.tok.Span = span.New(uint32(start), uint32(start+1))
	l.tok.Literal = ">"
	return l.tok
}

// ReScanLessThan splits `<<` into `<` for type argument positions.
func (l *Lexer) ReScanLessThan() Token {
	start := int(l.tok.Span.Start)
	l.pos = start + 1
	l.tok.Type = TokenLt
	l.tok.Span = span.New(uint32(start), uint32(start+1))
	l.tok.Literal = "<"
	return l.tok
}
