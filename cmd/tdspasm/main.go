// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/tdsp/asm"
	"github.com/ezrec/tdsp/table"
)

func main() {
	var input string
	var output string
	var tableFile string
	var listing string
	var verbose bool

	flag.StringVar(&input, "i", "-", "TeakLite source to assemble")
	flag.StringVar(&output, "o", "-", "Hex word output")
	flag.StringVar(&tableFile, "t", "", "Instruction table to use instead of the built-in table")
	flag.StringVar(&listing, "l", "", "Listing output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	assembler := &asm.Assembler{Verbose: verbose}

	if len(tableFile) != 0 {
		inf, err := os.Open(tableFile)
		if err != nil {
			log.Fatalf("%v: %v", tableFile, err)
		}
		assembler.Table, err = table.Compile(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", tableFile, err)
		}
	}

	inf := os.Stdin
	if input != "-" {
		var err error
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
	}

	prog, asmErr := assembler.Parse(inf)
	if asmErr != nil {
		var errSyntax *asm.ErrSyntax
		if !errors.As(asmErr, &errSyntax) {
			log.Fatalf("%v: %v", input, asmErr)
		}
		log.Printf("%v: %v", input, asmErr)
	}

	ouf := os.Stdout
	if output != "-" {
		var err error
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	w := bufio.NewWriter(ouf)
	for _, word := range prog.Binary() {
		fmt.Fprintf(w, "%04x\n", word)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if len(listing) != 0 {
		lst, err := os.Create(listing)
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
		err = prog.WriteListing(lst)
		lst.Close()
		if err != nil {
			log.Fatalf("%v: %v", listing, err)
		}
	}

	if asmErr != nil {
		os.Exit(1)
	}
}
