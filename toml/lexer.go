package toml

import "fmt"

// lexer walks the raw input byte by byte. Config files are ASCII-safe TOML;
// quoted strings may carry arbitrary UTF-8 bytes untouched.
type lexer struct {
	input []byte
	pos   int
	line  int
}

func newLexer(input []byte) *lexer {
	return &lexer{input: input, line: 1}
}

// next returns the next token in the stream.
func (l *lexer) next() token {
	l.skipSpace()

	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, line: l.line}
	}

	ch := l.input[l.pos]

	switch ch {
	case '\n':
		l.pos++
		tok := token{typ: tokenNewline, line: l.line}
		l.line++
		return tok
	case '#':
		l.skipComment()
		return l.next()
	case '=':
		l.pos++
		return token{typ: tokenEqual, literal: "=", line: l.line}
	case ',':
		l.pos++
		return token{typ: tokenComma, literal: ",", line: l.line}
	case '[':
		l.pos++
		return token{typ: tokenLBracket, literal: "[", line: l.line}
	case ']':
		l.pos++
		return token{typ: tokenRBracket, literal: "]", line: l.line}
	case '"':
		return l.readString()
	}

	if isDigit(ch) || ch == '+' || ch == '-' {
		return l.readNumber()
	}
	if isBareChar(ch) {
		return l.readBare()
	}

	l.pos++
	return token{typ: tokenError, literal: fmt.Sprintf("unexpected character %q", ch), line: l.line}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) skipComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

func (l *lexer) readString() token {
	l.pos++ // opening quote
	start := l.pos
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '"':
			lit := string(l.input[start:l.pos])
			l.pos++
			return token{typ: tokenString, literal: lit, line: l.line}
		case '\n':
			return token{typ: tokenError, literal: "unterminated string", line: l.line}
		default:
			l.pos++
		}
	}
	return token{typ: tokenError, literal: "unterminated string", line: l.line}
}

func (l *lexer) readNumber() token {
	start := l.pos
	isFloat := false

	if l.input[l.pos] == '+' || l.input[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if isDigit(ch) || ch == '_' {
			l.pos++
			continue
		}
		if ch == '.' || ch == 'e' || ch == 'E' {
			isFloat = true
			l.pos++
			continue
		}
		break
	}

	lit := string(l.input[start:l.pos])
	if isFloat {
		return token{typ: tokenFloat, literal: lit, line: l.line}
	}
	return token{typ: tokenInteger, literal: lit, line: l.line}
}

func (l *lexer) readBare() token {
	start := l.pos
	for l.pos < len(l.input) && isBareChar(l.input[l.pos]) {
		l.pos++
	}
	return token{typ: tokenBare, literal: string(l.input[start:l.pos]), line: l.line}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isBareChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || isDigit(ch) || ch == '_' || ch == '-'
}
