// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	_ "embed"
	"iter"
	"log"
	"strings"
	"sync"

	"github.com/ezrec/tdsp/lexer"
	"github.com/ezrec/tdsp/part"
)

// Row is one candidate encoding: base opcode bits, and the parts that
// must match the whole line.
type Row struct {
	Bits   uint16
	Parts  []part.Index
	LineNo int    // Line of the row in the table text.
	Source string // Table text of the row.
}

// Table is an ordered list of rows; the first row that matches a line
// wins. A table is never modified after it is compiled.
type Table struct {
	Arena *part.Arena
	Rows  []Row
}

// merge runs the parts of row over tl, and folds their contributions.
func (tb *Table) merge(row *Row, tl lexer.Line) (acc part.BitsMask, ok bool) {
	results := make([]part.BitsMask, 0, len(row.Parts))
	for _, index := range row.Parts {
		var bm part.BitsMask
		bm, ok = tb.Arena.Parse(index, &tl)
		if !ok {
			return
		}
		results = append(results, bm)
	}

	// Leftover tokens.
	if !tl.Empty() {
		return part.BitsMask{}, false
	}

	for _, bm := range results {
		acc, ok = acc.Merge(bm)
		if !ok {
			return part.BitsMask{}, false
		}
	}

	return acc, true
}

// TryParse encodes the line with a single row. The line is not consumed.
func (tb *Table) TryParse(row *Row, tl lexer.Line) (words []uint16, ok bool) {
	bm, ok := tb.merge(row, tl)
	if !ok {
		return
	}

	words = append(words, uint16(bm.Bits&0xffff)|row.Bits)
	if bm.Mask&0xffff_0000 != 0 {
		words = append(words, uint16(bm.Bits>>16))
	}

	return
}

// Lookup encodes the line with the first row that matches it.
func (tb *Table) Lookup(tl lexer.Line) (words []uint16, index int, ok bool) {
	for index = range tb.Rows {
		words, ok = tb.TryParse(&tb.Rows[index], tl)
		if ok {
			return
		}
	}

	return nil, -1, false
}

// All iterates over the rows, in match priority order.
func (tb *Table) All() iter.Seq2[int, *Row] {
	return func(yield func(int, *Row) bool) {
		for n := range tb.Rows {
			if !yield(n, &tb.Rows[n]) {
				return
			}
		}
	}
}

//go:embed teaklite.tbl
var teakliteTable string

var defaultTable = sync.OnceValue(func() *Table {
	tb, err := Compile(strings.NewReader(teakliteTable))
	if err != nil {
		log.Fatalf("table: teaklite.tbl: %v", err)
	}
	return tb
})

// Default returns the built-in TeakLite instruction table.
func Default() *Table {
	return defaultTable()
}
