// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package lexer

import (
	"bufio"
	"io"
	"math"
	"slices"
)

const eof = -1

// Position is the human readable location of a token.
type Position struct {
	Offset int // Byte offset in the input.
	Line   int // Line number, from 1.
	Column int // Column, from 1.
}

// Lexer tokenizes TeakLite assembly source, one token at a time.
type Lexer struct {
	r      *bufio.Reader
	offset int
	lines  []int // Offsets of the start of each line.
	peeked *Token
}

// New creates a lexer reading from input.
func New(input io.Reader) (lx *Lexer) {
	lx = &Lexer{
		r:     bufio.NewReader(input),
		lines: []int{0},
	}

	return
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() Token {
	if lx.peeked == nil {
		tok := lx.Next()
		lx.peeked = &tok
	}
	return *lx.peeked
}

// Next consumes and returns the next token.
func (lx *Lexer) Next() (tok Token) {
	if lx.peeked != nil {
		tok = *lx.peeked
		lx.peeked = nil
		return
	}

	lx.skipSpace()

	pos := lx.offset
	ch := lx.peek()

	switch {
	case ch == '\n':
		lx.get()
		lx.lines = append(lx.lines, lx.offset)
		return Token{Kind: TOKEN_EOL, Offset: pos}
	case ch == eof:
		return Token{Kind: TOKEN_EOF, Offset: pos}
	case isLetter(ch):
		return lx.lexWord(TOKEN_IDENTIFIER, pos)
	case ch == '#':
		lx.get()
		size := SIZE_SMALL
		if lx.peek() == '#' {
			lx.get()
			size = SIZE_BIG
		}
		switch next := lx.peek(); {
		case next == '$':
			lx.get()
			tok = lx.lexWord(TOKEN_LABEL, pos)
		case isDigit(next) || next == '+' || next == '-':
			tok = lx.lexNumeric(pos)
			if tok.Kind == TOKEN_NUMERIC && tok.Size != SIZE_NONE {
				// '#' on both sides of the sign.
				tok = Token{Kind: TOKEN_ERROR, Offset: pos}
			}
		default:
			return Token{Kind: TOKEN_ERROR, Offset: pos}
		}
		if tok.Kind != TOKEN_ERROR {
			tok.Size = size
		}
		return
	case isDigit(ch) || ch == '+' || ch == '-':
		return lx.lexNumeric(pos)
	case ch == '$':
		lx.get()
		return lx.lexWord(TOKEN_LABEL, pos)
	case ch == '.':
		lx.get()
		return lx.lexWord(TOKEN_META, pos)
	}

	lx.get()

	switch ch {
	case '[':
		tok = Token{Kind: TOKEN_OPEN, Offset: pos}
	case ']':
		tok = Token{Kind: TOKEN_CLOSE, Offset: pos}
	case ',':
		tok = Token{Kind: TOKEN_COMMA, Offset: pos}
	case ':':
		tok = Token{Kind: TOKEN_COLON, Offset: pos}
	case '_':
		tok = Token{Kind: TOKEN_IDENTIFIER, Offset: pos, Text: "_"}
	case '|':
		if lx.peek() == '|' {
			lx.get()
			tok = Token{Kind: TOKEN_PARALLEL, Offset: pos}
		} else {
			tok = Token{Kind: TOKEN_ERROR, Offset: pos}
		}
	default:
		tok = Token{Kind: TOKEN_ERROR, Offset: pos}
	}

	return
}

// Position returns the line and column of a token.
func (lx *Lexer) Position(tok Token) (pos Position) {
	n, found := slices.BinarySearch(lx.lines, tok.Offset)
	if !found {
		n--
	}

	pos = Position{
		Offset: tok.Offset,
		Line:   n + 1,
		Column: tok.Offset - lx.lines[n] + 1,
	}

	return
}

// ReadLine collects the tokens up to the end of the current line.
// An unrecognized token discards the rest of the line and returns an
// *ErrLex; the next call resumes on the following line. io.EOF is
// returned only when the input is exhausted and no tokens were read.
func (lx *Lexer) ReadLine() (line Line, err error) {
	line = Line{}

	for {
		tok := lx.Next()
		switch tok.Kind {
		case TOKEN_EOF:
			if len(line) == 0 {
				err = io.EOF
			}
			return
		case TOKEN_EOL:
			return
		case TOKEN_ERROR:
			lx.skipLine()
			pos := lx.Position(tok)
			err = &ErrLex{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
			return nil, err
		}
		line = append(line, tok)
	}
}

// skipLine discards input through the end of the current line.
func (lx *Lexer) skipLine() {
	if lx.peeked != nil {
		kind := lx.peeked.Kind
		lx.peeked = nil
		if kind == TOKEN_EOL || kind == TOKEN_EOF {
			return
		}
	}

	for {
		switch lx.get() {
		case '\n':
			lx.lines = append(lx.lines, lx.offset)
			return
		case eof:
			return
		}
	}
}

func (lx *Lexer) skipSpace() {
	for {
		ch := lx.peek()
		if ch != ' ' && ch != '\t' && ch != '\r' {
			break
		}
		lx.get()
	}

	// Comment until end of line.
	if lx.peek() == ';' {
		for ch := lx.peek(); ch != '\n' && ch != eof; ch = lx.peek() {
			lx.get()
		}
	}
}

func (lx *Lexer) lexWord(kind Kind, pos int) (tok Token) {
	var word []byte
	for ch := lx.peek(); isLetter(ch) || isDigit(ch); ch = lx.peek() {
		word = append(word, byte(lx.get()))
	}

	if len(word) == 0 {
		return Token{Kind: TOKEN_ERROR, Offset: pos}
	}

	return Token{Kind: kind, Offset: pos, Text: string(word)}
}

func (lx *Lexer) lexNumeric(pos int) (tok Token) {
	tok = Token{Kind: TOKEN_NUMERIC, Offset: pos, HasValue: true}

	switch lx.peek() {
	case '+':
		lx.get()
		tok.Signed = true
		lx.skipSpace()
	case '-':
		lx.get()
		tok.Signed = true
		tok.Negative = true
		lx.skipSpace()
	}

	if lx.peek() == '#' {
		lx.get()
		tok.Size = SIZE_SMALL
		if lx.peek() == '#' {
			lx.get()
			tok.Size = SIZE_BIG
		}
		lx.skipSpace()
	}

	if !isDigit(lx.peek()) {
		tok.HasValue = false
		return
	}

	base := int64(10)
	digits := 0
	if lx.peek() == '0' {
		lx.get()
		switch lx.peek() {
		case 'x':
			lx.get()
			base = 16
		case 'b':
			lx.get()
			base = 2
		default:
			digits++
		}
	}

	for {
		digit := digitValue(lx.peek(), base)
		if digit < 0 {
			break
		}
		lx.get()
		if tok.Value > (math.MaxInt64-digit)/base {
			return Token{Kind: TOKEN_ERROR, Offset: pos}
		}
		tok.Value = tok.Value*base + digit
		digits++
	}

	if digits == 0 {
		return Token{Kind: TOKEN_ERROR, Offset: pos}
	}

	// Digits must not run straight into a word.
	if ch := lx.peek(); isLetter(ch) || isDigit(ch) || ch == '_' {
		return Token{Kind: TOKEN_ERROR, Offset: pos}
	}

	if tok.Negative {
		tok.Value = -tok.Value
	}

	return
}

func (lx *Lexer) peek() int {
	buf, err := lx.r.Peek(1)
	if err != nil {
		return eof
	}
	return int(buf[0])
}

func (lx *Lexer) get() int {
	ch, err := lx.r.ReadByte()
	if err != nil {
		return eof
	}
	lx.offset++
	return int(ch)
}

func isLetter(ch int) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch int) bool {
	return ch >= '0' && ch <= '9'
}

func digitValue(ch int, base int64) int64 {
	var digit int64
	switch {
	case ch >= '0' && ch <= '9':
		digit = int64(ch - '0')
	case ch >= 'a' && ch <= 'f':
		digit = int64(ch-'a') + 0xa
	case ch >= 'A' && ch <= 'F':
		digit = int64(ch-'A') + 0xa
	default:
		return -1
	}
	if digit >= base {
		return -1
	}
	return digit
}
