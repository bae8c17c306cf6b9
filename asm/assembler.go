// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/ezrec/tdsp/lexer"
	"github.com/ezrec/tdsp/table"
)

// Assembler assembles TeakLite source with an instruction table.
type Assembler struct {
	Verbose bool         // If set, verbosely logs the assembler actions.
	Table   *table.Table // Instruction table; the built-in table if nil.
}

func (asm *Assembler) table() *table.Table {
	if asm.Table == nil {
		asm.Table = table.Default()
	}
	return asm.Table
}

// assemble encodes one line of tokens.
func (asm *Assembler) assemble(lineNo int, tl lexer.Line) (words []uint16, row int, err error) {
	tb := asm.table()

	words, row, ok := tb.Lookup(tl)
	if !ok {
		if asm.Verbose {
			log.Printf("%v: no match for '%v'", lineNo, tl)
		}
		err = ErrNoMatch
		return
	}

	if asm.Verbose {
		log.Printf("%v: table line %v: %v", lineNo, tb.Rows[row].LineNo, tb.Rows[row].Source)
	}

	return
}

// AssembleLine assembles a single line of source. A blank or comment only
// line has no words.
func (asm *Assembler) AssembleLine(text string) (words []uint16, err error) {
	tl, err := lexer.New(strings.NewReader(text)).ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		return
	}

	if tl.Empty() {
		return
	}

	words, _, err = asm.assemble(1, tl)
	return
}

// Parse assembles every line of an input stream into a Program.
// A line that fails does not stop the remaining lines; all failures are
// returned together, each as an ErrSyntax.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	var errs []error
	ip := 0
	lineNo := 0

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		text := scanner.Text()
		lineNo++

		if asm.Verbose {
			log.Printf("%v: %v", lineNo, text)
		}

		tl, lexErr := lexer.New(strings.NewReader(text)).ReadLine()
		if lexErr != nil && !errors.Is(lexErr, io.EOF) {
			errs = append(errs, &ErrSyntax{LineNo: lineNo, Text: strings.TrimSpace(text), Err: lexErr})
			continue
		}
		if tl.Empty() {
			continue
		}

		words, row, lineErr := asm.assemble(lineNo, tl)
		if lineErr != nil {
			errs = append(errs, &ErrSyntax{LineNo: lineNo, Text: strings.TrimSpace(text), Err: lineErr})
			continue
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: lineNo,
			Ip:     ip,
			Text:   strings.TrimSpace(text),
			Row:    row,
			Words:  words,
		})
		ip += len(words)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		errs = append(errs, scanErr)
	}

	err = errors.Join(errs...)
	return
}
