package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// parser builds a generic map[string]any from the token stream.
// Supported grammar: top-level and [table] sections, key = value pairs,
// strings, integers, floats, booleans, and flat arrays. That is the full
// surface the game config uses; dotted keys, inline tables, and arrays of
// tables are rejected with a descriptive error.
type parser struct {
	lex  *lexer
	tok  token
	peek token
}

func newParser(input []byte) *parser {
	p := &parser{lex: newLexer(input)}
	// Prime tok and peek
	p.advance()
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.peek
	p.peek = p.lex.next()
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("toml: line %d: %s", p.tok.line, fmt.Sprintf(format, args...))
}

// parse consumes the whole document.
func (p *parser) parse() (map[string]any, error) {
	root := make(map[string]any)
	current := root

	for p.tok.typ != tokenEOF {
		switch p.tok.typ {
		case tokenNewline:
			p.advance()

		case tokenLBracket:
			table, err := p.parseTableHeader()
			if err != nil {
				return nil, err
			}
			sub := make(map[string]any)
			root[table] = sub
			current = sub

		case tokenBare, tokenString:
			key := p.tok.literal
			p.advance()
			if p.tok.typ != tokenEqual {
				return nil, p.errorf("expected '=' after key %q", key)
			}
			p.advance()
			val, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			current[key] = val
			if p.tok.typ != tokenNewline && p.tok.typ != tokenEOF {
				return nil, p.errorf("unexpected %s after value for %q", p.tok, key)
			}

		case tokenError:
			return nil, p.errorf("%s", p.tok.literal)

		default:
			return nil, p.errorf("unexpected %s", p.tok)
		}
	}

	return root, nil
}

func (p *parser) parseTableHeader() (string, error) {
	p.advance() // consume '['
	if p.tok.typ == tokenLBracket {
		return "", p.errorf("arrays of tables are not supported")
	}
	if p.tok.typ != tokenBare && p.tok.typ != tokenString {
		return "", p.errorf("expected table name, got %s", p.tok)
	}
	name := p.tok.literal
	if strings.Contains(name, ".") {
		return "", p.errorf("dotted table names are not supported")
	}
	p.advance()
	if p.tok.typ != tokenRBracket {
		return "", p.errorf("expected ']' to close table header %q", name)
	}
	p.advance()
	return name, nil
}

func (p *parser) parseValue() (any, error) {
	switch p.tok.typ {
	case tokenString:
		v := p.tok.literal
		p.advance()
		return v, nil

	case tokenInteger:
		v, err := strconv.ParseInt(strings.ReplaceAll(p.tok.literal, "_", ""), 10, 64)
		if err != nil {
			return nil, p.errorf("invalid integer %q", p.tok.literal)
		}
		p.advance()
		return v, nil

	case tokenFloat:
		v, err := strconv.ParseFloat(strings.ReplaceAll(p.tok.literal, "_", ""), 64)
		if err != nil {
			return nil, p.errorf("invalid float %q", p.tok.literal)
		}
		p.advance()
		return v, nil

	case tokenBare:
		switch p.tok.literal {
		case "true":
			p.advance()
			return true, nil
		case "false":
			p.advance()
			return false, nil
		}
		return nil, p.errorf("unquoted value %q", p.tok.literal)

	case tokenLBracket:
		return p.parseArray()
	}

	return nil, p.errorf("unexpected %s in value position", p.tok)
}

func (p *parser) parseArray() (any, error) {
	p.advance() // consume '['
	values := make([]any, 0, 4)

	for {
		// Arrays may span lines
		for p.tok.typ == tokenNewline {
			p.advance()
		}
		if p.tok.typ == tokenRBracket {
			p.advance()
			return values, nil
		}
		if p.tok.typ == tokenEOF {
			return nil, p.errorf("unterminated array")
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, val)

		for p.tok.typ == tokenNewline {
			p.advance()
		}
		switch p.tok.typ {
		case tokenComma:
			p.advance()
		case tokenRBracket:
			// closing handled at loop top
		default:
			return nil, p.errorf("expected ',' or ']' in array, got %s", p.tok)
		}
	}
}
