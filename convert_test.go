package gocalc

import (
	"reflect"
	"testing"
)

func TestConvertEmpty(t *testing.T) {
	for _, input := range []string{"", "  ", "()", "abc"} {
		if actual := Convert(input); len(actual) != 0 {
			t.Errorf("Case: %q; Actual: %v; Expected: %v", input, actual, []Token{})
		}
	}
}

func TestConvertTokenKinds(t *testing.T) {
	actual := Convert("12.5*(3-1)")
	expected := []Token{
		NumberToken("12.5"),
		NumberToken("3"),
		NumberToken("1"),
		OperatorToken(Subtract),
		OperatorToken(Multiply),
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Actual: %v; Expected: %v", actual, expected)
	}
}

func TestConvertUnaryMinus(t *testing.T) {
	list := map[string][]Token{
		"-5":       tokens("-5"),
		"  -5":     tokens("-5"),
		"3--2":     tokens("3", "-2", Subtract),
		"3*-2":     tokens("3", "-2", Multiply),
		"3 * - 2":  tokens("3", "-2", Multiply),
		"(-2)":     tokens("-2"),
		"4/(-2+1)": tokens("4", "-2", "1", Add, Divide),
		"3-2":      tokens("3", "2", Subtract),
		"3 -2":     tokens("3", "2", Subtract),
	}
	for input, expected := range list {
		if actual := Convert(input); !reflect.DeepEqual(actual, expected) {
			t.Errorf("Case: %s; Actual: %v; Expected: %v", input, actual, expected)
		}
	}
}

func TestConvertLeftAssociative(t *testing.T) {
	list := map[string][]Token{
		"1-2+3": tokens("1", "2", Subtract, "3", Add),
		"8/2*4": tokens("8", "2", Divide, "4", Multiply),
		"1+2*3": tokens("1", "2", "3", Multiply, Add),
		"1*2+3": tokens("1", "2", Multiply, "3", Add),
	}
	for input, expected := range list {
		if actual := Convert(input); !reflect.DeepEqual(actual, expected) {
			t.Errorf("Case: %s; Actual: %v; Expected: %v", input, actual, expected)
		}
	}
}

func TestConvertUnmatchedParentheses(t *testing.T) {
	actual := Convert("(1+2")
	expected := []Token{
		NumberToken("1"),
		NumberToken("2"),
		OperatorToken(Add),
		{Kind: Parenthesis, Literal: "("},
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Actual: %v; Expected: %v", actual, expected)
	}

	actual = Convert("1+2)*3")
	expected = tokens("1", "2", Add, "3", Multiply)
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Actual: %v; Expected: %v", actual, expected)
	}
}

func TestConvertUnknownCharactersSplitNumbers(t *testing.T) {
	actual := Convert("12a34")
	expected := tokens("12", "34")
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Actual: %v; Expected: %v", actual, expected)
	}
}
