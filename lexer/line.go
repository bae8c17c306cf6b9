package lexer

import (
	"strings"
)

// Line is the consumable token sequence of one source line.
//
// Matchers consume tokens by reslicing from the front, and never modify
// the tokens themselves, so a copy of the Line value is a private cursor
// over the same tokens.
type Line []Token

// Empty returns true if all tokens have been consumed.
func (tl Line) Empty() bool {
	return len(tl) == 0
}

// Peek returns the first token without consuming it.
func (tl Line) Peek() (tok Token, ok bool) {
	if len(tl) == 0 {
		return
	}
	return tl[0], true
}

// Next consumes the first token.
func (tl *Line) Next() (tok Token, ok bool) {
	tok, ok = tl.Peek()
	if ok {
		*tl = (*tl)[1:]
	}
	return
}

// Match consumes the first token if it is of the requested kind.
func (tl *Line) Match(kind Kind) (tok Token, ok bool) {
	tok, ok = tl.Peek()
	if !ok || tok.Kind != kind {
		return Token{}, false
	}
	*tl = (*tl)[1:]
	return
}

// MatchIdentifier consumes the first token if it is the identifier word.
func (tl *Line) MatchIdentifier(word string) (ok bool) {
	tok, ok := tl.Peek()
	if !ok || tok.Kind != TOKEN_IDENTIFIER || tok.Text != word {
		return false
	}
	*tl = (*tl)[1:]
	return true
}

// String returns the tokens joined by spaces.
func (tl Line) String() string {
	words := make([]string, len(tl))
	for n, tok := range tl {
		words[n] = tok.String()
	}
	return strings.Join(words, " ")
}
