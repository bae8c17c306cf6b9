// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package part

import (
	"github.com/ezrec/tdsp/internal"
	"github.com/ezrec/tdsp/lexer"
)

// BitsMask is an encoded contribution, and the bit positions it owns.
// Bits never has a bit set outside of Mask.
type BitsMask struct {
	Bits uint32
	Mask uint32
}

// Merge folds other into bm. Merge fails if the two disagree on any
// bit that both own.
func (bm BitsMask) Merge(other BitsMask) (merged BitsMask, ok bool) {
	overlap := bm.Mask & other.Mask
	if (bm.Bits & overlap) != (other.Bits & overlap) {
		return bm, false
	}

	merged = BitsMask{
		Bits: bm.Bits | other.Bits,
		Mask: bm.Mask | other.Mask,
	}
	return merged, true
}

// Kind is the matcher variant of a part.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	PART_LITERAL     = Kind(0)  // literal
	PART_PUNCT       = Kind(1)  // punct
	PART_VOCAB       = Kind(2)  // vocab
	PART_CONST       = Kind(3)  // const
	PART_MEMORY      = Kind(4)  // memory
	PART_IMMEDIATE   = Kind(5)  // immediate
	PART_ADDRESS18   = Kind(6)  // address18
	PART_STEP        = Kind(7)  // step
	PART_ALTERNATIVE = Kind(8)  // alternative
	PART_FLAGS       = Kind(9)  // flags
	PART_NOT         = Kind(10) // not
)

// Index addresses a part in an Arena.
type Index int

// None is the Index of no part.
const None = Index(-1)

// Part is one instruction field matcher. Kind selects which of the
// configuration fields are meaningful.
type Part struct {
	Kind     Kind
	Name     string // Keyword or literal text.
	Position uint   // Bit position of the field.

	Punct        lexer.Kind    // PART_PUNCT
	Vocab        *Vocab        // PART_VOCAB
	Invert       bool          // PART_VOCAB
	Value        uint32        // PART_CONST
	Memory       *Memory       // PART_MEMORY
	Width        uint          // PART_IMMEDIATE
	Signed       bool          // PART_IMMEDIATE
	High         uint          // PART_ADDRESS18, position of the top two bits.
	Step         *Step         // PART_STEP
	Alternatives *Alternatives // PART_ALTERNATIVE
	Flags        *Flags        // PART_FLAGS

	// Child is the combined part of a PART_MEMORY, or the wrapped part
	// of a PART_NOT.
	Child Index
}

func (p *Part) String() string {
	return p.Kind.String() + ":" + p.Name
}

// Literal matches a single fixed identifier.
func Literal(word string) Part {
	return Part{Kind: PART_LITERAL, Name: word, Child: None}
}

// Punct matches a single punctuation token.
func Punct(kind lexer.Kind) Part {
	return Part{Kind: PART_PUNCT, Name: kind.String(), Punct: kind, Child: None}
}

// Syntax returns the part for a bare syntax word: punctuation kinds
// for ',' '_' (colon) and '||', otherwise a literal.
func Syntax(word string) Part {
	switch word {
	case ",":
		return Punct(lexer.TOKEN_COMMA)
	case "_":
		return Punct(lexer.TOKEN_COLON)
	case "||":
		return Punct(lexer.TOKEN_PARALLEL)
	}
	return Literal(word)
}

// Vocabulary matches a vocabulary word, encoded as its index.
func Vocabulary(v *Vocab, position uint) Part {
	return Part{Kind: PART_VOCAB, Name: v.Name, Vocab: v, Position: position, Child: None}
}

// Const matches nothing, and contributes nothing.
func Const(name string, value uint32) Part {
	return Part{Kind: PART_CONST, Name: name, Value: value, Child: None}
}

// Immediate matches a numeric with digits that fits width bits.
func Immediate(name string, width uint, signed bool, position uint) Part {
	return Part{Kind: PART_IMMEDIATE, Name: name, Width: width, Signed: signed, Position: position, Child: None}
}

// Address18 matches an 18 bit address; the low 16 bits are the second
// instruction word, the top two land at high.
func Address18(high uint) Part {
	return Part{Kind: PART_ADDRESS18, Name: "Address18", Position: 16, High: high, Child: None}
}

// MemoryOperand matches a bracketed memory operand.
func MemoryOperand(m *Memory, position uint) Part {
	return Part{Kind: PART_MEMORY, Name: m.Name, Memory: m, Position: position, Child: None}
}

// StepOperand matches a step or offset idiom.
func StepOperand(s *Step, position uint) Part {
	return Part{Kind: PART_STEP, Name: s.Name, Step: s, Position: position, Child: None}
}

// Alternative matches one of a set of patterns, which must be the rest
// of the line.
func Alternative(alt *Alternatives, position uint) Part {
	return Part{Kind: PART_ALTERNATIVE, Name: alt.Name, Alternatives: alt, Position: position, Child: None}
}

// FlagSet matches an ordered, possibly empty, list of flags.
func FlagSet(fl *Flags, position uint) Part {
	return Part{Kind: PART_FLAGS, Name: fl.Name, Flags: fl, Position: position, Child: None}
}

// Not stores the complement of the wrapped part.
func Not(wrapped Index) Part {
	return Part{Kind: PART_NOT, Name: "Not", Child: wrapped}
}

// FieldWidth returns the number of bits the field itself occupies above its
// position, not including any child.
func (p *Part) FieldWidth() (width uint) {
	switch p.Kind {
	case PART_VOCAB:
		width = p.Vocab.Width()
	case PART_MEMORY:
		width = p.Memory.width()
	case PART_IMMEDIATE:
		width = p.Width
	case PART_ADDRESS18:
		width = 16
	case PART_STEP:
		width = p.Step.Width
	case PART_ALTERNATIVE:
		width = p.Alternatives.Width()
	case PART_FLAGS:
		for _, bit := range p.Flags.Bits {
			width = max(width, bit+1)
		}
	}
	return
}

// fieldMask is the mask of a part, not including any child.
func (p *Part) fieldMask() (mask uint32) {
	switch p.Kind {
	case PART_ADDRESS18:
		mask = 0xffff_0000 | (0b11 << p.High)
	case PART_FLAGS:
		mask = p.Flags.mask() << p.Position
	default:
		mask = internal.Ones(p.FieldWidth()) << p.Position
	}
	return
}

// parse runs the matcher of a part, not including any child.
func (p *Part) parse(tl *lexer.Line) (bits uint32, ok bool) {
	switch p.Kind {
	case PART_LITERAL:
		ok = tl.MatchIdentifier(p.Name)
	case PART_PUNCT:
		_, ok = tl.Match(p.Punct)
	case PART_CONST:
		ok = true
	case PART_VOCAB:
		var index int
		index, ok = matchVocab(tl, p.Vocab)
		bits = uint32(index) << p.Position
		if ok && p.Invert {
			bits ^= p.fieldMask()
		}
	case PART_MEMORY:
		bits, ok = p.Memory.parse(tl)
		bits <<= p.Position
	case PART_IMMEDIATE:
		bits, ok = matchNumeric(tl, p.Signed, p.Width)
		bits <<= p.Position
	case PART_ADDRESS18:
		var value uint32
		value, ok = matchNumeric(tl, false, 18)
		bits = (value&0xffff)<<16 | (value>>16)<<p.High
	case PART_STEP:
		bits, ok = p.Step.match(tl)
		bits <<= p.Position
	case PART_ALTERNATIVE:
		var index int
		index, ok = p.Alternatives.match(tl)
		bits = uint32(index) << p.Position
	case PART_FLAGS:
		bits, ok = p.Flags.match(tl)
		bits <<= p.Position
	}

	if !ok {
		bits = 0
	}
	return
}
