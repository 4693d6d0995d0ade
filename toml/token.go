package toml

import "fmt"

// tokenType discriminates lexical tokens.
type tokenType int

const (
	tokenError tokenType = iota
	tokenEOF
	tokenNewline

	tokenBare    // bare key, boolean, or non-quoted literal
	tokenString  // "quoted"
	tokenInteger // 42
	tokenFloat   // 4.2

	tokenEqual    // =
	tokenComma    // ,
	tokenLBracket // [
	tokenRBracket // ]
)

// token is one lexical unit with its source line for error reporting.
type token struct {
	typ     tokenType
	literal string
	line    int
}

func (t token) String() string {
	switch t.typ {
	case tokenEOF:
		return "EOF"
	case tokenNewline:
		return "newline"
	case tokenError:
		return fmt.Sprintf("error(%s)", t.literal)
	}
	return fmt.Sprintf("%q", t.literal)
}
