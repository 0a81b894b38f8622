package gocalc

import (
	"math"
	"strconv"
	"testing"

	fuzz "github.com/google/gofuzz"
)

// parenExpr is a randomly generated, fully parenthesized expression tree. The zero value is the
// literal 0, so a tree cut short by the fuzzer's depth limit is still well formed.
type parenExpr struct {
	value       float64
	op          Op
	left, right *parenExpr
}

func (p *parenExpr) String() string {
	if p.left == nil {
		return strconv.FormatFloat(p.value, 'f', -1, 64)
	}
	return "(" + p.left.String() + string(p.op) + p.right.String() + ")"
}

// direct evaluates the tree by recursion, without any notion of precedence.
func (p *parenExpr) direct() float64 {
	if p.left == nil {
		return p.value
	}
	return p.op.Apply(p.left.direct(), p.right.direct())
}

func newParenFuzzer(seed int64) *fuzz.Fuzzer {
	ops := []Op{Add, Subtract, Multiply, Divide}
	return fuzz.NewWithSeed(seed).NilChance(0).MaxDepth(12).Funcs(
		func(p *parenExpr, c fuzz.Continue) {
			if c.Intn(5) < 3 {
				// quarters are exact in binary, so literals print and parse without loss
				p.value = float64(c.Intn(200)-100) + float64(c.Intn(4))/4
				return
			}
			p.op = ops[c.Intn(len(ops))]
			p.left, p.right = new(parenExpr), new(parenExpr)
			c.Fuzz(p.left)
			c.Fuzz(p.right)
		},
	)
}

func TestParenthesizedMatchesDirectEvaluation(t *testing.T) {
	f := newParenFuzzer(1)
	for i := 0; i < 500; i++ {
		var p parenExpr
		f.Fuzz(&p)
		input := p.String()
		expected := p.direct()

		exp, err := New(input)
		if err != nil {
			t.Fatalf("Case: %s; Actual: %s; Expected: %v", input, err, nil)
		}
		actual, err := exp.Evaluate()

		if math.IsNaN(expected) || math.IsInf(expected, 0) {
			if _, ok := err.(ErrInvalidResult); !ok {
				t.Errorf("Case: %s; Actual: %#v; Expected: %#v", input, err, ErrInvalidResult{})
			}
			continue
		}
		if err != nil {
			t.Errorf("Case: %s; Actual: %s; Expected: %v", input, err, nil)
		} else if actual != expected {
			t.Errorf("Case: %s; Actual: %#v; Expected: %#v", input, actual, expected)
		}
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	f := newParenFuzzer(2)
	for i := 0; i < 500; i++ {
		var p parenExpr
		f.Fuzz(&p)
		input := p.String()

		first, err := EvaluateExpression(input)
		if err != nil {
			continue // non-finite results have no display form
		}
		second, err := EvaluateExpression(first)
		if err != nil {
			t.Errorf("Case: %s -> %s; Actual: %s; Expected: %v", input, first, err, nil)
		} else if first != second {
			t.Errorf("Case: %s; Actual: %#v; Expected: %#v", input, second, first)
		}
	}
}
