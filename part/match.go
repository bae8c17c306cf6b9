package part

import (
	"github.com/ezrec/tdsp/internal"
	"github.com/ezrec/tdsp/lexer"
)

// matchVocab consumes an identifier that is in the vocabulary.
func matchVocab(tl *lexer.Line, v *Vocab) (index int, ok bool) {
	tok, ok := tl.Peek()
	if !ok || tok.Kind != lexer.TOKEN_IDENTIFIER {
		return 0, false
	}

	index = v.Index(tok.Text)
	if index < 0 {
		return 0, false
	}

	tl.Next()
	return index, true
}

// matchNumeric consumes a numeric that fits the field width, and returns
// it as a width-bit two's complement value.
// A value out of range is no different from any other mismatch.
func matchNumeric(tl *lexer.Line, signed bool, width uint) (value uint32, ok bool) {
	tok, ok := tl.Peek()
	if !ok || tok.Kind != lexer.TOKEN_NUMERIC || !tok.HasValue {
		return 0, false
	}

	if signed {
		limit := int64(1) << (width - 1)
		if tok.Value < -limit || tok.Value >= limit {
			return 0, false
		}
	} else {
		if tok.Value < 0 || tok.Value >= int64(1)<<width {
			return 0, false
		}
	}

	tl.Next()
	return uint32(tok.Value) & internal.Ones(width), true
}

// sameToken compares a source token against a pattern token.
func sameToken(tok, want lexer.Token) bool {
	switch {
	case tok.Kind != want.Kind:
		return false
	case tok.Punct():
		return true
	case tok.Kind == lexer.TOKEN_NUMERIC:
		return tok.HasValue == want.HasValue && tok.Value == want.Value && tok.Negative == want.Negative
	}

	return tok.Text == want.Text
}
