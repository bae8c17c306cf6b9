package part

import (
	"github.com/ezrec/tdsp/lexer"
)

// StepForm is one of the source forms of an address step or offset.
type StepForm int

const (
	STEP_INVALID   = StepForm(0) // Not a step form.
	STEP_ABSENT    = StepForm(1) // No numeric follows.
	STEP_ZERO      = StepForm(2) // 0
	STEP_PLUS_ONE  = StepForm(3) // +1
	STEP_MINUS_ONE = StepForm(4) // -1
	STEP_PLUS_TWO  = StepForm(5) // +2
	STEP_MINUS_TWO = StepForm(6) // -2
	STEP_PLUS_S    = StepForm(7) // +s
)

// Step is a closed set of step or offset forms and their encodings.
type Step struct {
	Name  string
	Width uint
	Codes map[StepForm]uint32
}

// Step and offset idioms of the TeakLite.
var (
	StepZIDS = &Step{"stepZIDS", 2, map[StepForm]uint32{
		STEP_ABSENT: 0, STEP_ZERO: 0, STEP_PLUS_ONE: 1, STEP_MINUS_ONE: 2, STEP_PLUS_S: 3,
	}}
	ModrStepZIDS = &Step{"modrstepZIDS", 2, map[StepForm]uint32{
		STEP_ZERO: 0, STEP_PLUS_ONE: 1, STEP_MINUS_ONE: 2, STEP_PLUS_S: 3,
	}}
	StepII2D2S = &Step{"stepII2D2S", 2, map[StepForm]uint32{
		STEP_PLUS_ONE: 0, STEP_PLUS_TWO: 1, STEP_MINUS_TWO: 2, STEP_PLUS_S: 3,
	}}
	StepII2D2S0 = &Step{"stepII2D2S0", 2, map[StepForm]uint32{
		STEP_PLUS_ONE: 0, STEP_PLUS_TWO: 1, STEP_MINUS_TWO: 2, STEP_ABSENT: 3, STEP_ZERO: 3,
	}}
	ModrStepII2D2S0 = &Step{"modrstepII2D2S0", 2, map[StepForm]uint32{
		STEP_PLUS_ONE: 0, STEP_PLUS_TWO: 1, STEP_MINUS_TWO: 2, STEP_ZERO: 3,
	}}
	StepD2S = &Step{"stepD2S", 1, map[StepForm]uint32{
		STEP_MINUS_TWO: 0, STEP_PLUS_S: 1,
	}}
	StepII2 = &Step{"stepII2", 1, map[StepForm]uint32{
		STEP_PLUS_ONE: 0, STEP_PLUS_TWO: 1,
	}}
	ModrStepI2 = &Step{"modrstepI2", 0, map[StepForm]uint32{
		STEP_PLUS_TWO: 0,
	}}
	ModrStepD2 = &Step{"modrstepD2", 0, map[StepForm]uint32{
		STEP_MINUS_TWO: 0,
	}}

	OffsZI = &Step{"offsZI", 1, map[StepForm]uint32{
		STEP_ABSENT: 0, STEP_ZERO: 0, STEP_PLUS_ONE: 1,
	}}
	OffsI = &Step{"offsI", 0, map[StepForm]uint32{
		STEP_PLUS_ONE: 0,
	}}
	OffsZIDZ = &Step{"offsZIDZ", 2, map[StepForm]uint32{
		STEP_ABSENT: 0, STEP_ZERO: 0, STEP_PLUS_ONE: 1, STEP_MINUS_ONE: 2,
	}}
)

// classifyStep determines the step form at the front of the line, and how
// many tokens it spans.
func classifyStep(tl lexer.Line) (form StepForm, count int) {
	tok, ok := tl.Peek()
	if !ok || tok.Kind != lexer.TOKEN_NUMERIC {
		return STEP_ABSENT, 0
	}

	if !tok.HasValue {
		if !tok.Negative && len(tl) > 1 &&
			tl[1].Kind == lexer.TOKEN_IDENTIFIER && tl[1].Text == "s" {
			return STEP_PLUS_S, 2
		}
		return STEP_INVALID, 0
	}

	switch {
	case tok.Value == 0:
		form = STEP_ZERO
	case !tok.Signed:
		form = STEP_INVALID
	case tok.Value == 1:
		form = STEP_PLUS_ONE
	case tok.Value == -1:
		form = STEP_MINUS_ONE
	case tok.Value == 2:
		form = STEP_PLUS_TWO
	case tok.Value == -2:
		form = STEP_MINUS_TWO
	default:
		form = STEP_INVALID
	}

	return form, 1
}

// match consumes a step form accepted by the step.
func (s *Step) match(tl *lexer.Line) (code uint32, ok bool) {
	form, count := classifyStep(*tl)

	code, ok = s.Codes[form]
	if !ok {
		return
	}

	*tl = (*tl)[count:]
	return
}
