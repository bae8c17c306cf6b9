package table

import (
	"strings"
)

type tokenKind int

const (
	TABLE_HEX    = tokenKind(0) // Opcode, without the 'h'.
	TABLE_IDENT  = tokenKind(1) // Keyword, literal, or ',' '_' '||'.
	TABLE_AT     = tokenKind(2) // '@'
	TABLE_NUMBER = tokenKind(3) // Decimal digits.
)

type token struct {
	kind   tokenKind
	text   string
	offset int // Byte offset in the row text.
}

// end returns the offset just past the token.
func (tok token) end() int {
	return tok.offset + len(tok.text)
}

func isUpperHex(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'F')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlnum(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// lexRow splits one line of table text into tokens. A blank or comment
// only line has no tokens. The first token of a row is always the opcode.
func lexRow(text string) (tokens []token, err error) {
	if n := strings.IndexByte(text, ';'); n >= 0 {
		text = text[:n]
	}

	pos := 0
	skip := func() {
		for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t' || text[pos] == '\r') {
			pos++
		}
	}

	skip()
	if pos == len(text) {
		return
	}

	if len(text)-pos < 5 || text[pos+4] != 'h' {
		err = ErrOpcode
		return
	}
	for n := range 4 {
		if !isUpperHex(text[pos+n]) {
			err = ErrOpcode
			return
		}
	}
	tokens = append(tokens, token{TABLE_HEX, text[pos : pos+4], pos})
	pos += 5
	if pos < len(text) && isAlnum(text[pos]) {
		err = ErrOpcode
		return
	}

	for skip(); pos < len(text); skip() {
		start := pos
		ch := text[pos]
		switch {
		case isDigit(ch):
			for pos < len(text) && isDigit(text[pos]) {
				pos++
			}
			tokens = append(tokens, token{TABLE_NUMBER, text[start:pos], start})
		case isAlnum(ch):
			for pos < len(text) && isAlnum(text[pos]) {
				pos++
			}
			tokens = append(tokens, token{TABLE_IDENT, text[start:pos], start})
		case ch == '@':
			pos++
			tokens = append(tokens, token{TABLE_AT, "@", start})
		case ch == ',' || ch == '_':
			pos++
			tokens = append(tokens, token{TABLE_IDENT, text[start:pos], start})
		case strings.HasPrefix(text[pos:], "||"):
			pos += 2
			tokens = append(tokens, token{TABLE_IDENT, "||", start})
		default:
			return nil, ErrCharacter
		}
	}

	return
}
