// Package table compiles and searches TeakLite instruction tables.
//
// Table text has one row per line: a four digit uppercase hex opcode with
// an 'h' suffix, then space separated fields.
//
//	D4FBh mov MemImm16@16 , Ax@8
//
// Fields are lowercase syntax words, the separators ',' '_' (colon) and
// '||', and field keywords. A keyword is positioned with '@<n>', or with
// '@not<n>' to store the complement. The structural keywords are:
//
//	Implied           ignored
//	Not               ignored
//	NoReverse         discards the ',' that follows
//	Unused<n>@<pos>   reserved bits; discards an adjacent ','
//	Bogus             skips to the next ',' or '||'; discards an adjacent ','
//	R0stepZIDS@<n>    the word r0, then a stepZIDS field
//	Address18@16and<n> 18 bit address, top two bits at <n>
//
// The offset keywords offsZI, offsI and offsZIDZ are matched inside the
// brackets of the preceding memory operand.
package table
