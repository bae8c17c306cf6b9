package asm

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode is one assembled source line.
type Opcode struct {
	LineNo int      // Source line number.
	Ip     int      // Word address of the first word.
	Text   string   // Source text.
	Row    int      // Index of the matching table row.
	Words  []uint16 // One or two instruction words.
}

// All iterates over the words of the opcode, with their address.
func (op *Opcode) All() iter.Seq2[uint16, uint16] {
	return func(yield func(ip uint16, word uint16) bool) {
		for n, word := range op.Words {
			if !yield(uint16(op.Ip+n), word) {
				return
			}
		}
	}
}

// Program is the assembled form of a source file.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode that contains the word at ip.
func (prog *Program) Debug(ip uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(ip) >= op.Ip && int(ip) < op.Ip+len(op.Words) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip) - op.Ip,
			}
			break
		}
	}

	return
}

// Codes iterates over every word of the program, with its address.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	return func(yield func(ip uint16, word uint16) bool) {
		for n := range prog.Opcodes {
			for ip, word := range prog.Opcodes[n].All() {
				if !yield(ip, word) {
					return
				}
			}
		}
	}
}

// Binary returns every word of the program.
func (prog *Program) Binary() (bins []uint16) {
	for _, word := range prog.Codes() {
		bins = append(bins, word)
	}

	return
}

// WriteListing writes one line per opcode: address, words, and source.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		hex := make([]string, len(op.Words))
		for n, word := range op.Words {
			hex[n] = fmt.Sprintf("%04x", word)
		}
		_, err = fmt.Fprintf(w, "%04x: %-9s %5d: %v\n", op.Ip, strings.Join(hex, " "), op.LineNo, op.Text)
		if err != nil {
			return
		}
	}

	return
}
