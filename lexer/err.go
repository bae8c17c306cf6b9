package lexer

import (
	"github.com/ezrec/tdsp/translate"
)

var f = translate.From

// ErrLex is an unrecognized character or malformed numeral.
type ErrLex struct {
	Offset int // Byte offset of the bad input.
	Line   int // Line number, from 1.
	Column int // Column, from 1.
}

func (err *ErrLex) Error() string {
	return f("line %d column %d: unrecognized input", err.Line, err.Column)
}
