package table

import (
	"errors"

	"github.com/ezrec/tdsp/translate"
)

var f = translate.From

var (
	ErrOpcode        = errors.New(f("opcode is not four uppercase hex digits and 'h'"))
	ErrCharacter     = errors.New(f("unrecognized character"))
	ErrUnexpected    = errors.New(f("unexpected token"))
	ErrPosition      = errors.New(f("bit position invalid"))
	ErrKeyword       = errors.New(f("unknown keyword"))
	ErrInvertOffset  = errors.New(f("offset cannot be inverted"))
	ErrOffsetMissing = errors.New(f("offset without a preceding part"))
	ErrNoReverse     = errors.New(f("NoReverse without a following ','"))
	ErrAddress18     = errors.New(f("Address18 requires @16and<n>"))
	ErrSecondWord    = errors.New(f("more than one part in the second word"))
	ErrFieldRange    = errors.New(f("field outside of 32 bits"))
)

// ErrTable is a malformed row of an instruction table.
type ErrTable struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrTable) Error() string {
	return f("table line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrTable) Unwrap() error {
	return err.Err
}
