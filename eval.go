package gocalc

import "math"

// EvaluatePostfix runs the postfix tokens through a stack machine and
// returns the value left at the bottom of the stack, or 0 when the stack
// ends up empty. Each operator pops b then a and pushes a OP b.
//
// EvaluatePostfix does not validate its input. An operator that finds too
// few operands on the stack uses NaN for each missing one, and a stray
// parenthesis token is pushed as NaN, so malformed sequences surface as a
// non-finite result rather than a panic.
func EvaluatePostfix(tokens []Token) float64 {
	// work area is never deeper than the number of tokens
	scratch := make([]float64, len(tokens))
	var scratchHead int

	pop := func() float64 {
		if scratchHead == 0 {
			return math.NaN()
		}
		scratchHead--
		return scratch[scratchHead]
	}

	for _, token := range tokens {
		switch token.Kind {
		case Operator:
			b := pop()
			a := pop()
			scratch[scratchHead] = token.Op.Apply(a, b)
		default:
			scratch[scratchHead] = token.Value()
		}
		scratchHead++
	}

	if scratchHead == 0 {
		return 0
	}
	return scratch[0]
}
