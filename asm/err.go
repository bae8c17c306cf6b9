package asm

import (
	"errors"

	"github.com/ezrec/tdsp/translate"
)

var f = translate.From

var (
	ErrNoMatch = errors.New(f("no instruction matches"))
)

// ErrSyntax is a source line that could not be assembled.
type ErrSyntax struct {
	LineNo int    // Source line number.
	Text   string // Source text, without surrounding space.
	Err    error  // ErrNoMatch, or the *lexer.ErrLex of the line.
}

func (err *ErrSyntax) Error() string {
	return f("%d: %v: '%v'", err.LineNo, err.Err, err.Text)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
