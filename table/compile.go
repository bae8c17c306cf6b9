package table

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/tdsp/lexer"
	"github.com/ezrec/tdsp/part"
)

// builder assembles the parts of one table row.
type builder struct {
	arena  *part.Arena
	tokens []token
	last   token // Most recently consumed token.
	parts  []part.Index
	invert bool
}

func (b *builder) peek() (tok token, ok bool) {
	if len(b.tokens) == 0 {
		return
	}
	return b.tokens[0], true
}

func (b *builder) next() (tok token, ok bool) {
	tok, ok = b.peek()
	if ok {
		b.tokens = b.tokens[1:]
		b.last = tok
	}
	return
}

func (b *builder) peekIdent(text string) bool {
	tok, ok := b.peek()
	return ok && tok.kind == TABLE_IDENT && tok.text == text
}

// position parses '@<n>' or '@not<n>'.
func (b *builder) position() (pos uint, err error) {
	tok, ok := b.next()
	if !ok || tok.kind != TABLE_AT {
		err = ErrPosition
		return
	}

	tok, ok = b.next()
	if !ok {
		err = ErrPosition
		return
	}

	digits := tok.text
	switch tok.kind {
	case TABLE_NUMBER:
	case TABLE_IDENT:
		var found bool
		digits, found = strings.CutPrefix(tok.text, "not")
		if !found || len(digits) == 0 {
			err = ErrPosition
			return
		}
		b.invert = true
	default:
		err = ErrPosition
		return
	}

	value, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || value >= 32 {
		err = ErrPosition
		return
	}

	pos = uint(value)
	return
}

func (b *builder) add(p part.Part) part.Index {
	index := b.arena.Add(p)
	b.parts = append(b.parts, index)
	return index
}

// dropSeparator removes one ',' adjacent to a documentation-only field:
// the next one if present, otherwise a ',' part just added.
func (b *builder) dropSeparator() {
	if b.peekIdent(",") {
		b.next()
		return
	}

	if n := len(b.parts); n > 0 {
		last := b.arena.Get(b.parts[n-1])
		if last.Kind == part.PART_PUNCT && last.Punct == lexer.TOKEN_COMMA {
			b.parts = b.parts[:n-1]
		}
	}
}

// field handles one keyword or literal of a row.
func (b *builder) field(word string) (err error) {
	b.invert = false

	switch {
	case word == "Implied", word == "Not":
		return
	case word == "NoReverse":
		if !b.peekIdent(",") {
			err = ErrNoReverse
			return
		}
		b.next()
		return
	case strings.HasPrefix(word, "Unused"):
		if _, err = b.position(); err != nil {
			return
		}
		b.dropSeparator()
		return
	case word == "Bogus":
		for tok, ok := b.peek(); ok; tok, ok = b.peek() {
			if tok.kind == TABLE_IDENT && (tok.text == "," || tok.text == "||") {
				break
			}
			b.next()
		}
		b.dropSeparator()
		return
	case word == "," || word == "_" || word == "||":
		b.add(part.Syntax(word))
		return
	case word == "R0stepZIDS":
		var pos uint
		if pos, err = b.position(); err != nil {
			return
		}
		b.add(part.Literal("r0"))
		err = b.finish(part.StepOperand(part.StepZIDS, pos))
		return
	case word == "Address18":
		return b.address18()
	}

	if fd, ok := part.Lookup(word); ok {
		var pos uint
		if fd.Positioned {
			if pos, err = b.position(); err != nil {
				return
			}
		}
		p := fd.New(pos)

		if fd.Offset {
			return b.offset(p)
		}

		return b.finish(p)
	}

	if word[0] < 'a' || word[0] > 'z' {
		err = ErrKeyword
		return
	}

	b.add(part.Literal(word))
	return
}

// finish checks that a positioned part fits in 32 bits, and adds it,
// wrapped by the inverting adapter if requested.
func (b *builder) finish(p part.Part) (err error) {
	if p.Position+p.FieldWidth() > 32 {
		err = ErrFieldRange
		return
	}

	index := b.arena.Add(p)
	if b.invert {
		index = b.arena.Add(part.Not(index))
	}
	b.parts = append(b.parts, index)

	return
}

// offset combines an offset field with the preceding part.
func (b *builder) offset(p part.Part) (err error) {
	if b.invert {
		err = ErrInvertOffset
		return
	}

	if len(b.parts) == 0 {
		err = ErrOffsetMissing
		return
	}

	if p.Position+p.FieldWidth() > 32 {
		err = ErrFieldRange
		return
	}

	index := b.arena.Add(p)
	err = b.arena.CombineWith(b.parts[len(b.parts)-1], index)
	return
}

// address18 parses '@16and<n>', with no space before 'and'.
func (b *builder) address18() (err error) {
	pos, err := b.position()
	if err != nil {
		return
	}
	if pos != 16 || b.invert {
		err = ErrAddress18
		return
	}

	end := b.last.end()
	tok, ok := b.next()
	if !ok || tok.kind != TABLE_IDENT || tok.offset != end {
		err = ErrAddress18
		return
	}
	digits, found := strings.CutPrefix(tok.text, "and")
	if !found {
		err = ErrAddress18
		return
	}
	high, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || high > 14 {
		err = ErrAddress18
		return
	}

	b.add(part.Address18(uint(high)))
	return
}

// row builds a row from the tokens of one table line.
func (b *builder) row() (row Row, err error) {
	tok, _ := b.next()
	bits, err := strconv.ParseUint(tok.text, 16, 16)
	if err != nil {
		err = ErrOpcode
		return
	}

	for tok, ok := b.next(); ok; tok, ok = b.next() {
		if tok.kind != TABLE_IDENT {
			err = ErrUnexpected
			return
		}
		if err = b.field(tok.text); err != nil {
			return
		}
	}

	wide := 0
	for _, index := range b.parts {
		if b.arena.Mask(index)&0xffff_0000 != 0 {
			wide++
		}
	}
	if wide > 1 {
		err = ErrSecondWord
		return
	}

	row = Row{
		Bits:  uint16(bits),
		Parts: b.parts,
	}

	return
}

// Compile builds a table from instruction table text. Rows keep the order
// of the text, which is their match priority.
func Compile(input io.Reader) (tb *Table, err error) {
	tb = &Table{
		Arena: &part.Arena{},
	}

	scanner := bufio.NewScanner(input)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()

		tokens, lexErr := lexRow(text)
		if lexErr != nil {
			err = ErrTable{LineNo: lineNo, Line: text, Err: lexErr}
			return nil, err
		}
		if len(tokens) == 0 {
			continue
		}

		b := &builder{arena: tb.Arena, tokens: tokens}
		row, rowErr := b.row()
		if rowErr != nil {
			err = ErrTable{LineNo: lineNo, Line: text, Err: rowErr}
			return nil, err
		}

		row.LineNo = lineNo
		row.Source = strings.TrimSpace(text)
		tb.Rows = append(tb.Rows, row)
	}

	if scanErr := scanner.Err(); scanErr != nil {
		err = ErrTable{LineNo: lineNo, Err: scanErr}
		return nil, err
	}

	return
}
