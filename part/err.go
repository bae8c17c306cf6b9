package part

import (
	"errors"

	"github.com/ezrec/tdsp/translate"
)

var f = translate.From

var (
	ErrCombineUnsupported = errors.New(f("part does not combine"))
	ErrCombineDuplicate   = errors.New(f("part already combined"))
	ErrCombineOverlap     = errors.New(f("combined part overlaps"))
)
