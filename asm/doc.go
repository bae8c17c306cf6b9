// Package asm implements a line assembler for the TeakLite DSP.
//
// Every source line is assembled on its own, by the first row of an
// instruction table that matches the entire line. There are no labels,
// equates, or macros; each line becomes one or two 16-bit words.
package asm
