package part

import (
	"github.com/ezrec/tdsp/lexer"
)

// Arena holds every part of a table. Parts refer to each other by Index.
type Arena struct {
	parts []Part
}

// Add appends a part to the arena.
func (a *Arena) Add(p Part) Index {
	a.parts = append(a.parts, p)
	return Index(len(a.parts) - 1)
}

// Len returns the number of parts in the arena.
func (a *Arena) Len() int {
	return len(a.parts)
}

// Get returns the part at index, or nil. The pointer is only valid until
// the next Add.
func (a *Arena) Get(index Index) *Part {
	if index < 0 || int(index) >= len(a.parts) {
		return nil
	}
	return &a.parts[index]
}

// Mask returns every bit the part at index can ever own.
func (a *Arena) Mask(index Index) (mask uint32) {
	p := a.Get(index)
	if p == nil {
		return 0
	}

	switch p.Kind {
	case PART_NOT:
		mask = a.Mask(p.Child)
	case PART_MEMORY:
		mask = p.fieldMask()
		if p.Child != None {
			mask |= a.Mask(p.Child)
		}
	default:
		mask = p.fieldMask()
	}

	return
}

// Parse runs the part at index against the front of the line.
// On failure, tokens may have been consumed.
func (a *Arena) Parse(index Index, tl *lexer.Line) (bm BitsMask, ok bool) {
	p := a.Get(index)
	if p == nil {
		return
	}

	switch p.Kind {
	case PART_NOT:
		bm, ok = a.Parse(p.Child, tl)
		if !ok {
			return BitsMask{}, false
		}
		bm.Bits ^= bm.Mask
		return
	case PART_MEMORY:
		bm.Bits, ok = p.parse(tl)
		if !ok {
			return BitsMask{}, false
		}
		bm.Mask = p.fieldMask()
		if p.Child != None {
			var child BitsMask
			child, ok = a.Parse(p.Child, tl)
			if !ok {
				return BitsMask{}, false
			}
			bm, ok = bm.Merge(child)
			if !ok {
				return BitsMask{}, false
			}
		}
		if _, ok = tl.Match(lexer.TOKEN_CLOSE); !ok {
			return BitsMask{}, false
		}
		return
	}

	bm.Bits, ok = p.parse(tl)
	if !ok {
		return BitsMask{}, false
	}
	bm.Mask = p.fieldMask()

	return
}

// CombineWith attaches child to parent, so that child is matched inside
// of the parent's syntax. Only memory operands accept a child, only one,
// and its bits may not overlap the parent.
func (a *Arena) CombineWith(parent, child Index) (err error) {
	p := a.Get(parent)
	if p == nil || a.Get(child) == nil || p.Kind != PART_MEMORY {
		err = ErrCombineUnsupported
		return
	}

	if p.Child != None {
		err = ErrCombineDuplicate
		return
	}

	if a.Mask(parent)&a.Mask(child) != 0 {
		err = ErrCombineOverlap
		return
	}

	p.Child = child
	return
}
