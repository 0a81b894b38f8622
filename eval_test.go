package gocalc

import (
	"math"
	"testing"
)

func tokens(items ...interface{}) []Token {
	list := make([]Token, len(items))
	for idx, item := range items {
		switch v := item.(type) {
		case Op:
			list[idx] = OperatorToken(v)
		case string:
			list[idx] = NumberToken(v)
		}
	}
	return list
}

func TestEvaluatePostfixEmpty(t *testing.T) {
	if actual := EvaluatePostfix(nil); actual != 0 {
		t.Errorf("Actual: %#v; Expected: %#v", actual, 0.0)
	}
}

func TestEvaluatePostfixOperandOrder(t *testing.T) {
	list := []struct {
		tokens   []Token
		expected float64
	}{
		{tokens("7", "2", Subtract), 5},
		{tokens("2", "7", Subtract), -5},
		{tokens("8", "2", Divide), 4},
		{tokens("2", "8", Divide), 0.25},
		{tokens("3", "4", Add, "5", Multiply), 35},
		{tokens("3", "4", "5", Multiply, Add), 23},
		{tokens("-1.5", "2", Multiply), -3},
	}
	for _, item := range list {
		if actual := EvaluatePostfix(item.tokens); actual != item.expected {
			t.Errorf("Case: %v; Actual: %#v; Expected: %#v", item.tokens, actual, item.expected)
		}
	}
}

func TestEvaluatePostfixReturnsBottomOfStack(t *testing.T) {
	if actual := EvaluatePostfix(tokens("1", "2", "3")); actual != 1 {
		t.Errorf("Actual: %#v; Expected: %#v", actual, 1.0)
	}
}

func TestEvaluatePostfixUnderflow(t *testing.T) {
	for _, list := range [][]Token{
		tokens(Add),
		tokens("1", Multiply),
		tokens("1", "2", Add, Add),
	} {
		if actual := EvaluatePostfix(list); !math.IsNaN(actual) {
			t.Errorf("Case: %v; Actual: %#v; Expected: %#v", list, actual, math.NaN())
		}
	}
}

func TestEvaluatePostfixDivideByZero(t *testing.T) {
	if actual := EvaluatePostfix(tokens("1", "0", Divide)); !math.IsInf(actual, 1) {
		t.Errorf("Actual: %#v; Expected: %#v", actual, math.Inf(1))
	}
	if actual := EvaluatePostfix(tokens("-1", "0", Divide)); !math.IsInf(actual, -1) {
		t.Errorf("Actual: %#v; Expected: %#v", actual, math.Inf(-1))
	}
}

func TestEvaluatePostfixParenthesisIsNaN(t *testing.T) {
	list := []Token{NumberToken("4"), {Kind: Parenthesis, Literal: "("}, OperatorToken(Add)}
	if actual := EvaluatePostfix(list); !math.IsNaN(actual) {
		t.Errorf("Actual: %#v; Expected: %#v", actual, math.NaN())
	}
}

func TestTokenValue(t *testing.T) {
	list := map[string]float64{
		"0":     0,
		"42":    42,
		"-5":    -5,
		"1.25":  1.25,
		".5":    0.5,
		"5.":    5,
		"-.75":  -0.75,
		"007.5": 7.5,
	}
	for literal, expected := range list {
		if actual := NumberToken(literal).Value(); actual != expected {
			t.Errorf("Case: %s; Actual: %#v; Expected: %#v", literal, actual, expected)
		}
	}
	for _, literal := range []string{"-", ".", "--5", "1.2.3", ""} {
		if actual := NumberToken(literal).Value(); !math.IsNaN(actual) {
			t.Errorf("Case: %q; Actual: %#v; Expected: %#v", literal, actual, math.NaN())
		}
	}
}

func TestOpPrecedence(t *testing.T) {
	list := map[Op]int{
		Add:      1,
		Subtract: 1,
		Multiply: 2,
		Divide:   2,
		Op('('):  0,
	}
	for op, expected := range list {
		if actual := op.Precedence(); actual != expected {
			t.Errorf("Case: %c; Actual: %#v; Expected: %#v", op, actual, expected)
		}
	}
}
