// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"fmt"
)

// Kind is the type of a lexical token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	TOKEN_ERROR      = Kind(0)  // error
	TOKEN_EOL        = Kind(1)  // eol
	TOKEN_EOF        = Kind(2)  // eof
	TOKEN_OPEN       = Kind(3)  // [
	TOKEN_CLOSE      = Kind(4)  // ]
	TOKEN_COLON      = Kind(5)  // :
	TOKEN_COMMA      = Kind(6)  // ,
	TOKEN_PARALLEL   = Kind(7)  // ||
	TOKEN_NUMERIC    = Kind(8)  // numeric
	TOKEN_IDENTIFIER = Kind(9)  // identifier
	TOKEN_LABEL      = Kind(10) // label
	TOKEN_META       = Kind(11) // meta
)

// SizeMarker is the explicit '#' or '##' width hint of a numeric or label.
type SizeMarker int

const (
	SIZE_NONE  = SizeMarker(0) // No marker.
	SIZE_SMALL = SizeMarker(1) // '#'
	SIZE_BIG   = SizeMarker(2) // '##'
)

// Prefix returns the source form of the size marker.
func (sm SizeMarker) Prefix() string {
	switch sm {
	case SIZE_SMALL:
		return "#"
	case SIZE_BIG:
		return "##"
	}
	return ""
}

// Token is a single lexical unit of a source line.
type Token struct {
	Kind   Kind // Token type.
	Offset int  // Byte offset of the token in the input.

	Text string     // Identifier, label or meta statement name.
	Size SizeMarker // Size marker of a numeric or label.

	Signed   bool  // Numeric had an explicit '+' or '-'.
	Negative bool  // Numeric had a '-'.
	HasValue bool  // Numeric had digits after its sign.
	Value    int64 // Numeric value, sign applied.
}

// Punct reports if the token is one of the punctuation kinds.
func (tok Token) Punct() bool {
	switch tok.Kind {
	case TOKEN_OPEN, TOKEN_CLOSE, TOKEN_COLON, TOKEN_COMMA, TOKEN_PARALLEL:
		return true
	}
	return false
}

// String returns the token in a form close to its source text.
func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_NUMERIC:
		sign := ""
		value := tok.Value
		if tok.Signed {
			sign = "+"
			if tok.Negative {
				sign = "-"
				value = -value
			}
		}
		if !tok.HasValue {
			return tok.Size.Prefix() + sign
		}
		return fmt.Sprintf("%v%v%v", tok.Size.Prefix(), sign, value)
	case TOKEN_IDENTIFIER:
		return tok.Text
	case TOKEN_LABEL:
		return tok.Size.Prefix() + "$" + tok.Text
	case TOKEN_META:
		return "." + tok.Text
	}
	return tok.Kind.String()
}
