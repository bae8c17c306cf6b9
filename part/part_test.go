package part

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tdsp/lexer"
)

func line(t *testing.T, text string) lexer.Line {
	tl, err := lexer.New(strings.NewReader(text)).ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("%q: %v", text, err)
	}
	return tl
}

// parseAll runs a single part, and requires the whole line be consumed.
func parseAll(t *testing.T, arena *Arena, index Index, text string) (bm BitsMask, ok bool) {
	tl := line(t, text)
	bm, ok = arena.Parse(index, &tl)
	if ok && !tl.Empty() {
		ok = false
	}
	return
}

func TestBitsMask_Merge(t *testing.T) {
	assert := assert.New(t)

	acc := BitsMask{}
	acc, ok := acc.Merge(BitsMask{Bits: 0x3, Mask: 0x7})
	assert.True(ok)
	assert.Equal(BitsMask{Bits: 0x3, Mask: 0x7}, acc)

	merged, ok := acc.Merge(BitsMask{Bits: 0x1, Mask: 0x1})
	assert.True(ok)
	assert.Equal(acc, merged)

	_, ok = acc.Merge(BitsMask{Bits: 0x0, Mask: 0x1})
	assert.False(ok)

	merged, ok = acc.Merge(BitsMask{Bits: 0x80, Mask: 0xf0})
	assert.True(ok)
	assert.Equal(BitsMask{Bits: 0x83, Mask: 0xf7}, merged)
}

func TestPart_Immediate(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	imm8u := arena.Add(Immediate("Imm8u", 8, false, 0))
	imm7s := arena.Add(Immediate("Imm7s", 7, true, 4))

	table := [...]struct {
		index Index
		text  string
		ok    bool
		bits  uint32
	}{
		{imm8u, "0", true, 0},
		{imm8u, "255", true, 0xff},
		{imm8u, "0xff", true, 0xff},
		{imm8u, "+12", true, 12},
		{imm8u, "-1", false, 0},
		{imm8u, "256", false, 0},
		{imm8u, "-", false, 0},
		{imm8u, "r0", false, 0},
		{imm7s, "-64", true, 0x40 << 4},
		{imm7s, "63", true, 0x3f << 4},
		{imm7s, "-1", true, 0x7f << 4},
		{imm7s, "-65", false, 0},
		{imm7s, "64", false, 0},
	}

	for _, entry := range table {
		bm, ok := parseAll(t, arena, entry.index, entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		if entry.ok {
			assert.Equal(entry.bits, bm.Bits, entry.text)
		}
	}

	assert.Equal(uint32(0xff), arena.Mask(imm8u))
	assert.Equal(uint32(0x7f0), arena.Mask(imm7s))
}

func TestPart_Vocab(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	rn := arena.Add(Vocabulary(Rn, 4))
	inverted := Vocabulary(Rn, 0)
	inverted.Invert = true
	rnInv := arena.Add(inverted)
	ararp := arena.Add(Vocabulary(ArArp, 0))

	bm, ok := parseAll(t, arena, rn, "r3")
	assert.True(ok)
	assert.Equal(BitsMask{Bits: 0x30, Mask: 0x70}, bm)

	bm, ok = parseAll(t, arena, rnInv, "r3")
	assert.True(ok)
	assert.Equal(BitsMask{Bits: 0x4, Mask: 0x7}, bm)

	_, ok = parseAll(t, arena, rn, "r8")
	assert.False(ok)

	_, ok = parseAll(t, arena, rn, "R3")
	assert.False(ok)

	bm, ok = parseAll(t, arena, ararp, "arp3")
	assert.True(ok)
	assert.Equal(uint32(5), bm.Bits)

	assert.Equal(uint(5), Register.Width())
	assert.Equal(uint(4), ArArpSttMod.Width())
	assert.Equal(-1, ArArp.Index(""))
}

func TestPart_Not(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	ax := arena.Add(Vocabulary(Ax, 8))
	not := arena.Add(Not(ax))

	assert.Equal(uint32(0x100), arena.Mask(not))

	bm, ok := parseAll(t, arena, not, "a0")
	assert.True(ok)
	assert.Equal(BitsMask{Bits: 0x100, Mask: 0x100}, bm)

	bm, ok = parseAll(t, arena, not, "a1")
	assert.True(ok)
	assert.Equal(BitsMask{Bits: 0, Mask: 0x100}, bm)

	_, ok = parseAll(t, arena, not, "b0")
	assert.False(ok)
}

func TestPart_Syntax(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	mov := arena.Add(Syntax("mov"))
	comma := arena.Add(Syntax(","))
	colon := arena.Add(Syntax("_"))
	parallel := arena.Add(Syntax("||"))
	zero := arena.Add(Const("Const8000h", 0x8000))

	assert.Equal(PART_LITERAL, arena.Get(mov).Kind)
	assert.Equal(PART_PUNCT, arena.Get(comma).Kind)
	assert.Equal(lexer.TOKEN_COLON, arena.Get(colon).Punct)
	assert.Equal(lexer.TOKEN_PARALLEL, arena.Get(parallel).Punct)

	for index, text := range map[Index]string{
		mov:      "mov",
		comma:    ",",
		colon:    ":",
		parallel: "||",
	} {
		bm, ok := parseAll(t, arena, index, text)
		assert.True(ok, text)
		assert.Equal(BitsMask{}, bm, text)
	}

	_, ok := parseAll(t, arena, mov, "movp")
	assert.False(ok)

	tl := line(t, "mov")
	bm, ok := arena.Parse(zero, &tl)
	assert.True(ok)
	assert.Equal(BitsMask{}, bm)
	assert.Equal(1, len(tl))
	assert.Equal(uint32(0x8000), arena.Get(zero).Value)

	assert.Nil(arena.Get(None))
	assert.Nil(arena.Get(Index(arena.Len())))
}

func TestPart_Memory(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	memRn := arena.Add(MemoryOperand(MemRn, 0))
	memSp := arena.Add(MemoryOperand(MemSp, 0))
	progAxl := arena.Add(MemoryOperand(ProgMemAxl, 2))
	memImm8 := arena.Add(MemoryOperand(MemImm8, 0))
	memImm16 := arena.Add(MemoryOperand(MemImm16, 16))
	memR7 := arena.Add(MemoryOperand(MemR7Imm7s, 0))

	table := [...]struct {
		index Index
		text  string
		ok    bool
		bm    BitsMask
	}{
		{memRn, "[r5]", true, BitsMask{Bits: 5, Mask: 7}},
		{memRn, "[r5", false, BitsMask{}},
		{memRn, "r5", false, BitsMask{}},
		{memRn, "[a0]", false, BitsMask{}},
		{memSp, "[sp]", true, BitsMask{}},
		{memSp, "[r0]", false, BitsMask{}},
		{progAxl, "[code:movpd:a1l]", true, BitsMask{Bits: 4, Mask: 4}},
		{progAxl, "[code:a1l]", false, BitsMask{}},
		{memImm8, "[page:0x12]", true, BitsMask{Bits: 0x12, Mask: 0xff}},
		{memImm8, "[page:0x123]", false, BitsMask{}},
		{memImm16, "[0x0100]", true, BitsMask{Bits: 0x0100_0000, Mask: 0xffff_0000}},
		{memR7, "[r7 -3]", true, BitsMask{Bits: 0x7d, Mask: 0x7f}},
		{memR7, "[r7+63]", true, BitsMask{Bits: 0x3f, Mask: 0x7f}},
		{memR7, "[r7+64]", false, BitsMask{}},
	}

	for _, entry := range table {
		bm, ok := parseAll(t, arena, entry.index, entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		if entry.ok {
			assert.Equal(entry.bm, bm, entry.text)
		}
	}
}

func TestPart_CombineWith(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	memRn := arena.Add(MemoryOperand(MemRn, 0))
	offs := arena.Add(StepOperand(OffsZIDZ, 3))
	assert.NoError(arena.CombineWith(memRn, offs))
	assert.Equal(uint32(0x1f), arena.Mask(memRn))

	table := [...]struct {
		text string
		ok   bool
		bits uint32
	}{
		{"[r1]", true, 0x01},
		{"[r1+0]", true, 0x01},
		{"[r1+1]", true, 0x09},
		{"[r1-1]", true, 0x11},
		{"[r1+2]", false, 0},
		{"[r1 1]", false, 0},
	}

	for _, entry := range table {
		bm, ok := parseAll(t, arena, memRn, entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		if entry.ok {
			assert.Equal(BitsMask{Bits: entry.bits, Mask: 0x1f}, bm, entry.text)
		}
	}

	again := arena.Add(StepOperand(OffsI, 0))
	assert.ErrorIs(arena.CombineWith(memRn, again), ErrCombineDuplicate)

	rn := arena.Add(Vocabulary(Rn, 0))
	assert.ErrorIs(arena.CombineWith(rn, again), ErrCombineUnsupported)

	memR0 := arena.Add(MemoryOperand(MemRn, 0))
	overlap := arena.Add(StepOperand(OffsZI, 2))
	assert.ErrorIs(arena.CombineWith(memR0, overlap), ErrCombineOverlap)

	memR45 := arena.Add(MemoryOperand(MemR45, 0))
	assert.NoError(arena.CombineWith(memR45, again))
	bm, ok := parseAll(t, arena, memR45, "[r5+1]")
	assert.True(ok)
	assert.Equal(BitsMask{Bits: 1, Mask: 1}, bm)
	_, ok = parseAll(t, arena, memR45, "[r5]")
	assert.False(ok)
}

func TestPart_Step(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		step *Step
		text string
		ok   bool
		code uint32
	}{
		{StepZIDS, "", true, 0},
		{StepZIDS, "0", true, 0},
		{StepZIDS, "+1", true, 1},
		{StepZIDS, "-1", true, 2},
		{StepZIDS, "+s", true, 3},
		{StepZIDS, "1", false, 0},
		{StepZIDS, "-s", false, 0},
		{ModrStepZIDS, "", false, 0},
		{ModrStepZIDS, "0", true, 0},
		{StepII2D2S, "+2", true, 1},
		{StepII2D2S, "-2", true, 2},
		{StepII2D2S, "+s", true, 3},
		{StepII2D2S, "", false, 0},
		{StepII2D2S0, "", true, 3},
		{StepII2D2S0, "0", true, 3},
		{ModrStepII2D2S0, "", false, 0},
		{ModrStepII2D2S0, "+1", true, 0},
		{StepD2S, "-2", true, 0},
		{StepD2S, "+s", true, 1},
		{StepD2S, "+2", false, 0},
		{StepII2, "+2", true, 1},
		{ModrStepI2, "+2", true, 0},
		{ModrStepI2, "-2", false, 0},
		{ModrStepD2, "-2", true, 0},
		{OffsZI, "+1", true, 1},
		{OffsZI, "-1", false, 0},
		{OffsI, "+1", true, 0},
		{OffsI, "", false, 0},
	}

	for _, entry := range table {
		arena := &Arena{}
		index := arena.Add(StepOperand(entry.step, 2))
		bm, ok := parseAll(t, arena, index, entry.text)
		assert.Equal(entry.ok, ok, entry.step.Name+" "+entry.text)
		if entry.ok {
			assert.Equal(entry.code<<2, bm.Bits, entry.step.Name+" "+entry.text)
			assert.Equal(uint32(((1<<entry.step.Width)-1)<<2), bm.Mask, entry.step.Name)
		}
	}

	arena := &Arena{}
	index := arena.Add(StepOperand(StepZIDS, 0))
	tl := line(t, "r0")
	_, ok := arena.Parse(index, &tl)
	assert.True(ok)
	assert.Equal(1, len(tl))
}

func TestPart_Alternative(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	swap := arena.Add(Alternative(SwapTypes4, 0))

	assert.Equal(uint(4), SwapTypes4.Width())
	assert.Equal(uint32(0xf), arena.Mask(swap))

	table := [...]struct {
		text  string
		ok    bool
		index uint32
	}{
		{"a0, b0", true, 0},
		{"a1, b1", true, 3},
		{"a0, b0, a1, b1", true, 4},
		{"a0, b1, a1", true, 7},
		{"b1, a1, b0", true, 13},
		{"a0, b0, a1, b0", false, 0},
		{"a0 b0", false, 0},
		{"b0, a0", false, 0},
		{"", false, 0},
	}

	for _, entry := range table {
		tl := line(t, entry.text)
		bm, ok := arena.Parse(swap, &tl)
		assert.Equal(entry.ok, ok, entry.text)
		if entry.ok {
			assert.True(tl.Empty(), entry.text)
			assert.Equal(entry.index, bm.Bits, entry.text)
		}
	}
}

func TestPart_Flags(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	bank := arena.Add(FlagSet(BankFlags6, 2))

	assert.Equal(uint32(0x3f<<2), arena.Mask(bank))

	table := [...]struct {
		text string
		ok   bool
		bits uint32
	}{
		{"", true, 0},
		{"r0", true, 0x01 << 2},
		{"r0, r1, r4, cfgi, r7, cfgj", true, 0x3f << 2},
		{"r1, cfgj", true, 0x22 << 2},
		{"r0, r0", false, 0},
		{"r4, r1", false, 0},
	}

	for _, entry := range table {
		bm, ok := parseAll(t, arena, bank, entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		if entry.ok {
			assert.Equal(entry.bits, bm.Bits, entry.text)
			assert.Equal(uint32(0x3f<<2), bm.Mask, entry.text)
		}
	}

	// A comma that does not lead to a flag is left for the next part.
	tl := line(t, "r0, a0")
	bm, ok := arena.Parse(bank, &tl)
	assert.True(ok)
	assert.Equal(uint32(0x01<<2), bm.Bits)
	assert.Equal(2, len(tl))
}

func TestPart_Address18(t *testing.T) {
	assert := assert.New(t)

	arena := &Arena{}
	addr := arena.Add(Address18(4))

	assert.Equal(uint32(0xffff_0030), arena.Mask(addr))

	bm, ok := parseAll(t, arena, addr, "0x2abcd")
	assert.True(ok)
	assert.Equal(uint32(0xabcd_0020), bm.Bits)

	_, ok = parseAll(t, arena, addr, "0x40000")
	assert.False(ok)

	_, ok = parseAll(t, arena, addr, "-1")
	assert.False(ok)
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	field, ok := Lookup("Imm7s")
	assert.True(ok)
	assert.True(field.Positioned)
	p := field.New(3)
	assert.Equal(PART_IMMEDIATE, p.Kind)
	assert.True(p.Signed)
	assert.Equal(uint(7), p.Width)
	assert.Equal(uint(3), p.Position)
	assert.Equal(None, p.Child)

	field, ok = Lookup("offsI")
	assert.True(ok)
	assert.True(field.Offset)
	assert.False(field.Positioned)

	field, ok = Lookup("MemSp")
	assert.True(ok)
	assert.False(field.Positioned)

	field, ok = Lookup("Const4")
	assert.True(ok)
	assert.Equal(PART_CONST, field.New(0).Kind)

	_, ok = Lookup("mov")
	assert.False(ok)
	_, ok = Lookup("Address18")
	assert.False(ok)
}
