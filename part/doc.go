// Package part contains the instruction field matchers of the TeakLite
// table assembler.
//
// Every matcher is a Part, held in an Arena and addressed by Index. A part
// consumes tokens from the front of a lexer.Line and contributes a
// BitsMask: the encoded bits, and the positions it owns.
package part
