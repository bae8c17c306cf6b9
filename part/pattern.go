package part

import (
	"log"
	"strings"

	"github.com/ezrec/tdsp/internal"
	"github.com/ezrec/tdsp/lexer"
)

// Alternatives is a priority ordered list of token patterns; a pattern
// encodes as its index.
type Alternatives struct {
	Name     string
	Patterns []lexer.Line
}

// NewAlternatives lexes each pattern text into a token pattern.
func NewAlternatives(name string, patterns ...string) (alt *Alternatives) {
	alt = &Alternatives{Name: name}
	for _, text := range patterns {
		line, err := lexer.New(strings.NewReader(text)).ReadLine()
		if err != nil {
			log.Fatalf("part: %v pattern %q: %v", name, text, err)
		}
		alt.Patterns = append(alt.Patterns, line)
	}

	return
}

// Width returns the number of bits needed to encode a pattern index.
func (alt *Alternatives) Width() uint {
	return internal.CeilLog2(len(alt.Patterns))
}

// match finds the first pattern that is exactly the rest of the line.
func (alt *Alternatives) match(tl *lexer.Line) (index int, ok bool) {
	for index, pattern := range alt.Patterns {
		if len(pattern) != len(*tl) {
			continue
		}
		probe := *tl
		matched := true
		for _, want := range pattern {
			tok, _ := probe.Next()
			if !sameToken(tok, want) {
				matched = false
				break
			}
		}
		if matched && probe.Empty() {
			*tl = probe
			return index, true
		}
	}

	return 0, false
}

// Flags is a set of flag names that may be listed, comma separated, in
// the order of Names. Each flag sets its own bit.
type Flags struct {
	Name  string
	Names []string
	Bits  []uint // Bit of each name, relative to the part position.
}

// mask returns the bits owned by the flags.
func (fl *Flags) mask() (mask uint32) {
	for _, bit := range fl.Bits {
		mask |= 1 << bit
	}
	return
}

// match consumes a, possibly empty, list of flags.
func (fl *Flags) match(tl *lexer.Line) (bits uint32, ok bool) {
	last := -1
	for {
		probe := *tl
		if last >= 0 {
			if _, ok := probe.Match(lexer.TOKEN_COMMA); !ok {
				break
			}
		}

		tok, ok := probe.Match(lexer.TOKEN_IDENTIFIER)
		if !ok {
			break
		}

		index := -1
		for n, name := range fl.Names {
			if name == tok.Text {
				index = n
				break
			}
		}
		if index < 0 {
			break
		}

		// Repeated or out of order.
		if index <= last {
			return 0, false
		}

		last = index
		bits |= 1 << fl.Bits[index]
		*tl = probe
	}

	return bits, true
}

// Swap and bank flags of the TeakLite.
var (
	SwapTypes4 = NewAlternatives("SwapTypes4",
		"a0, b0",
		"a0, b1",
		"a1, b0",
		"a1, b1",
		"a0, b0, a1, b1",
		"a0, b1, a1, b0",
		"a0, b0, a1",
		"a0, b1, a1",
		"a1, b0, a0",
		"a1, b1, a0",
		"b0, a0, b1",
		"b0, a1, b1",
		"b1, a0, b0",
		"b1, a1, b0",
	)

	BankFlags6 = &Flags{
		Name:  "BankFlags6",
		Names: []string{"r0", "r1", "r4", "cfgi", "r7", "cfgj"},
		Bits:  []uint{0, 1, 2, 3, 4, 5},
	}
)
