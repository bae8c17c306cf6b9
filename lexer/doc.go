// Package lexer tokenizes lines of TeakLite DSP assembly.
//
// A line is made of identifiers, numerics (with optional sign, '#' or '##'
// size marker, and 0x, 0b or decimal digits), '$' labels, '.' meta
// statements, and the punctuation '[', ']', ':', ',' and '||'. A ';' starts
// a comment that runs to the end of the line. A sign with no digits after
// it is kept as a numeric token of its own, as some operand forms rely on
// it (for example "+s").
package lexer
