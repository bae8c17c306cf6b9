package part

import (
	"slices"

	"github.com/ezrec/tdsp/internal"
)

// Vocab is an ordered list of names; a name encodes as its index.
// Empty names fill encodings that have no syntax.
type Vocab struct {
	Name  string
	Words []string
}

// Index returns the position of word in the vocabulary, or -1.
func (v *Vocab) Index(word string) int {
	if len(word) == 0 {
		return -1
	}
	return slices.Index(v.Words, word)
}

// Width returns the number of bits needed to encode an index.
func (v *Vocab) Width() uint {
	return internal.CeilLog2(len(v.Words))
}

// Register vocabularies of the TeakLite.
var (
	Rn   = &Vocab{"Rn", []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7"}}
	Ax   = &Vocab{"Ax", []string{"a0", "a1"}}
	Axl  = &Vocab{"Axl", []string{"a0l", "a1l"}}
	Axh  = &Vocab{"Axh", []string{"a0h", "a1h"}}
	Bx   = &Vocab{"Bx", []string{"b0", "b1"}}
	Bxl  = &Vocab{"Bxl", []string{"b0l", "b1l"}}
	Bxh  = &Vocab{"Bxh", []string{"b0h", "b1h"}}
	Ab   = &Vocab{"Ab", []string{"b0", "b1", "a0", "a1"}}
	Abl  = &Vocab{"Abl", []string{"b0l", "b1l", "a0l", "a1l"}}
	Abh  = &Vocab{"Abh", []string{"b0h", "b1h", "a0h", "a1h"}}
	Abe  = &Vocab{"Abe", []string{"b0e", "b1e", "a0e", "a1e"}}
	Px   = &Vocab{"Px", []string{"p0", "p1"}}
	Ablh = &Vocab{"Ablh", []string{"b0l", "b0h", "b1l", "b1h", "a0l", "a0h", "a1l", "a1h"}}
	Cond = &Vocab{"Cond", []string{
		"true", "eq", "neq", "gt", "ge", "lt", "le", "nn",
		"c", "v", "e", "l", "nr", "niu0", "iu0", "iu1",
	}}

	Register = &Vocab{"Register", []string{
		"r0", "r1", "r2", "r3", "r4", "r5", "r7", "y0",
		"st0", "st1", "st2", "p0", "pc", "sp", "cfgi", "cfgj",
		"b0h", "b1h", "b0l", "b1l", "ext0", "ext1", "ext2", "ext3",
		"a0", "a1", "a0l", "a1l", "a0h", "a1h", "lc", "sv",
	}}
	RegisterP0 = &Vocab{"RegisterP0", []string{
		"r0", "r1", "r2", "r3", "r4", "r5", "r7", "y0",
		"st0", "st1", "st2", "p0h", "pc", "sp", "cfgi", "cfgj",
		"b0h", "b1h", "b0l", "b1l", "ext0", "ext1", "ext2", "ext3",
		"a0", "a1", "a0l", "a1l", "a0h", "a1h", "lc", "sv",
	}}

	R0123457y0 = &Vocab{"R0123457y0", []string{"r0", "r1", "r2", "r3", "r4", "r5", "r7", "y0"}}
	R01        = &Vocab{"R01", []string{"r0", "r1"}}
	R04        = &Vocab{"R04", []string{"r0", "r4"}}
	R45        = &Vocab{"R45", []string{"r4", "r5"}}
	R0123      = &Vocab{"R0123", []string{"r0", "r1", "r2", "r3"}}
	R0425      = &Vocab{"R0425", []string{"r0", "r4", "r2", "r5"}}
	R4567      = &Vocab{"R4567", []string{"r4", "r5", "r6", "r7"}}

	ArArpSttMod = &Vocab{"ArArpSttMod", []string{
		"ar0", "ar1", "arp0", "arp1", "arp2", "arp3", "", "",
		"stt0", "stt1", "stt2", "", "mod0", "mod1", "mod2", "mod3",
	}}
	ArArp  = &Vocab{"ArArp", []string{"ar0", "ar1", "arp0", "arp1", "arp2", "arp3", "", ""}}
	SttMod = &Vocab{"SttMod", []string{"stt0", "stt1", "stt2", "", "mod0", "mod1", "mod2", "mod3"}}
	Ar     = &Vocab{"Ar", []string{"ar0", "ar1"}}
	Arp    = &Vocab{"Arp", []string{"arp0", "arp1", "arp2", "arp3"}}
)
