package part

// Field describes a field keyword of the instruction table.
type Field struct {
	Keyword    string
	Positioned bool // Requires a '@<n>' bit position.
	Offset     bool // Combines with the preceding part.
	New        func(position uint) Part
}

var catalog = map[string]*Field{}

func addField(field *Field) {
	catalog[field.Keyword] = field
}

func constField(keyword string, value uint32) {
	addField(&Field{Keyword: keyword, New: func(uint) Part {
		return Const(keyword, value)
	}})
}

func immediateField(keyword string, width uint, signed bool) {
	addField(&Field{Keyword: keyword, Positioned: true, New: func(position uint) Part {
		return Immediate(keyword, width, signed, position)
	}})
}

func vocabField(v *Vocab) {
	addField(&Field{Keyword: v.Name, Positioned: true, New: func(position uint) Part {
		return Vocabulary(v, position)
	}})
}

func memoryField(m *Memory, positioned bool) {
	addField(&Field{Keyword: m.Name, Positioned: positioned, New: func(position uint) Part {
		return MemoryOperand(m, position)
	}})
}

func stepField(s *Step, positioned bool, offset bool) {
	addField(&Field{Keyword: s.Name, Positioned: positioned, Offset: offset, New: func(position uint) Part {
		return StepOperand(s, position)
	}})
}

func init() {
	constField("ConstZero", 0)
	constField("Const1", 1)
	constField("Const4", 4)
	constField("Const8000h", 0x8000)

	immediateField("Imm2u", 2, false)
	immediateField("Imm4", 4, false)
	immediateField("Imm4u", 4, false)
	immediateField("Imm4bitno", 4, false)
	immediateField("Imm5u", 5, false)
	immediateField("Imm5s", 5, true)
	immediateField("Imm6s", 6, true)
	immediateField("Imm7s", 7, true)
	immediateField("Imm8", 8, false)
	immediateField("Imm8u", 8, false)
	immediateField("Imm8s", 8, true)
	immediateField("Imm9u", 9, false)
	immediateField("Imm16", 16, false)
	immediateField("Address16", 16, false)
	immediateField("RelAddr7", 7, true)

	for _, v := range []*Vocab{
		Rn, Ax, Axl, Axh, Bx, Bxl, Bxh, Ab, Abl, Abh, Abe, Px, Ablh, Cond,
		Register, RegisterP0, R0123457y0, R01, R04, R45, R0123, R0425, R4567,
		ArArpSttMod, ArArp, SttMod, Ar, Arp,
	} {
		vocabField(v)
	}

	memoryField(MemSp, false)
	memoryField(MemR0, false)
	for _, m := range []*Memory{
		MemR01, MemR0123, MemR04, MemR0425, MemR45, MemR4567, MemRn,
		ProgMemRn, ProgMemR45, ProgMemAxl, ProgMemAx,
		MemImm8, MemImm16, MemR7Imm7s, MemR7Imm16,
	} {
		memoryField(m, true)
	}

	for _, s := range []*Step{
		StepZIDS, ModrStepZIDS, StepII2D2S, StepII2D2S0, ModrStepII2D2S0,
		StepD2S, StepII2, ModrStepI2, ModrStepD2,
	} {
		stepField(s, true, false)
	}
	stepField(OffsZI, true, true)
	stepField(OffsI, false, true)
	stepField(OffsZIDZ, true, true)

	addField(&Field{Keyword: SwapTypes4.Name, Positioned: true, New: func(position uint) Part {
		return Alternative(SwapTypes4, position)
	}})
	addField(&Field{Keyword: BankFlags6.Name, Positioned: true, New: func(position uint) Part {
		return FlagSet(BankFlags6, position)
	}})
}

// Lookup returns the field of a table keyword.
func Lookup(keyword string) (field *Field, ok bool) {
	field, ok = catalog[keyword]
	return
}
