package part

import (
	"github.com/ezrec/tdsp/lexer"
)

// Memory is the shape of a bracketed memory operand:
//
//	'[' (Prefix ':')... [Keyword | Vocab] [numeric] [combined part] ']'
type Memory struct {
	Name    string
	Prefix  []string // Words that each precede a ':'.
	Keyword string   // Fixed register name, if any.
	Vocab   *Vocab   // Indexed register, if any.
	Width   uint     // Width of the numeric address or displacement, if any.
	Signed  bool     // Numeric is signed.
}

// width returns the number of bits a memory operand owns before any
// combined part.
func (m *Memory) width() uint {
	if m.Vocab != nil {
		return m.Vocab.Width()
	}
	return m.Width
}

// Memory operands of the TeakLite.
var (
	MemSp      = &Memory{Name: "MemSp", Keyword: "sp"}
	MemR0      = &Memory{Name: "MemR0", Keyword: "r0"}
	MemR01     = &Memory{Name: "MemR01", Vocab: R01}
	MemR0123   = &Memory{Name: "MemR0123", Vocab: R0123}
	MemR04     = &Memory{Name: "MemR04", Vocab: R04}
	MemR0425   = &Memory{Name: "MemR0425", Vocab: R0425}
	MemR45     = &Memory{Name: "MemR45", Vocab: R45}
	MemR4567   = &Memory{Name: "MemR4567", Vocab: R4567}
	MemRn      = &Memory{Name: "MemRn", Vocab: Rn}
	ProgMemRn  = &Memory{Name: "ProgMemRn", Prefix: []string{"code", "movpd"}, Vocab: Rn}
	ProgMemR45 = &Memory{Name: "ProgMemR45", Prefix: []string{"code", "movpd"}, Vocab: R45}
	ProgMemAxl = &Memory{Name: "ProgMemAxl", Prefix: []string{"code", "movpd"}, Vocab: Axl}
	ProgMemAx  = &Memory{Name: "ProgMemAx", Prefix: []string{"code"}, Vocab: Ax}
	MemImm8    = &Memory{Name: "MemImm8", Prefix: []string{"page"}, Width: 8}
	MemImm16   = &Memory{Name: "MemImm16", Width: 16}
	MemR7Imm7s = &Memory{Name: "MemR7Imm7s", Keyword: "r7", Width: 7, Signed: true}
	MemR7Imm16 = &Memory{Name: "MemR7Imm16", Keyword: "r7", Width: 16}
)

// parse matches everything up to the closing bracket, except for the
// combined part which the arena runs before the bracket closes.
func (m *Memory) parse(tl *lexer.Line) (value uint32, ok bool) {
	if _, ok = tl.Match(lexer.TOKEN_OPEN); !ok {
		return
	}

	for _, word := range m.Prefix {
		if !tl.MatchIdentifier(word) {
			return 0, false
		}
		if _, ok = tl.Match(lexer.TOKEN_COLON); !ok {
			return
		}
	}

	switch {
	case len(m.Keyword) != 0:
		if !tl.MatchIdentifier(m.Keyword) {
			return 0, false
		}
	case m.Vocab != nil:
		var index int
		index, ok = matchVocab(tl, m.Vocab)
		if !ok {
			return
		}
		value = uint32(index)
	}

	if m.Width > 0 {
		value, ok = matchNumeric(tl, m.Signed, m.Width)
		if !ok {
			return
		}
	}

	return value, true
}
