package gocalc

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// DefaultDelimiter specifies the delimiter character String places between tokens of the postfix
// form. For instance, `2+3*4` prints as `2,3,4,*,+`. A different delimiter can be chosen by
// invoking the Delimiter() function.
const DefaultDelimiter = ','

// DefaultPrecision specifies the number of decimal digits a non-integer result is rounded to before
// being displayed. It can be overridden by the Precision() function.
const DefaultPrecision = 10

// maxPrecision is the largest number of decimal digits that survives a round trip through float64.
const maxPrecision = 15

// ErrEmptyExpression error is returned when the expression is empty or contains only whitespace.
type ErrEmptyExpression struct{}

// Error returns the error string representation for ErrEmptyExpression errors.
func (ErrEmptyExpression) Error() string {
	return "empty expression"
}

// ErrInvalidResult error is returned when evaluating an expression produces a value that is not
// finite, such as the infinity of a division by zero, or the NaN of a malformed expression.
type ErrInvalidResult struct {
	Value float64
}

// Error returns the error string representation for ErrInvalidResult errors.
func (e ErrInvalidResult) Error() string {
	return fmt.Sprintf("invalid result: %v", e.Value)
}

// ExpressionConfigurator represents a function that modifies an Expression.
type ExpressionConfigurator func(*Expression) error

// Delimiter allows changing the delimiter String places between postfix tokens from the default
// delimiter, the comma. Changing the delimiter to one of the math operators is not supported.
//
//	func example() {
//		exp, err := gocalc.New("(1+2)*3", gocalc.Delimiter(' '))
//		if err != nil {
//			panic(err)
//		}
//		fmt.Println(exp) // "1 2 + 3 *"
//	}
func Delimiter(someDelimiter rune) ExpressionConfigurator {
	return func(e *Expression) error {
		if isOp(someDelimiter) {
			return errors.Errorf("cannot use %c operator for delimiter", someDelimiter)
		}
		e.delimiter = someDelimiter
		return nil
	}
}

// Precision allows changing the number of decimal digits Display rounds non-integer results to from
// the default value of 10.
//
//	func example() {
//		exp, err := gocalc.New("2/3", gocalc.Precision(4))
//		if err != nil {
//			panic(err)
//		}
//		s, _ := exp.Display() // "0.6667"
//	}
func Precision(digits int) ExpressionConfigurator {
	return func(e *Expression) error {
		if digits < 0 || digits > maxPrecision {
			return errors.Errorf("cannot use %d digits of precision; must be between 0 and %d", digits, maxPrecision)
		}
		e.precision = digits
		return nil
	}
}

// Expression represents an infix arithmetic expression already converted to postfix form.
type Expression struct {
	delimiter rune
	precision int
	tokens    []Token // postfix order
}

// New returns a new Expression after converting someExpression to postfix form. It returns
// ErrEmptyExpression when someExpression is empty or only whitespace. Any other input is accepted;
// characters that are not part of the grammar are skipped.
//
//	expression, err := gocalc.New("(2+3)*4")
//	if err != nil {
//	    panic(err)
//	}
//	result, err := expression.Evaluate()
//	if err != nil {
//	    panic(err)
//	}
func New(someExpression string, setters ...ExpressionConfigurator) (*Expression, error) {
	if strings.TrimFunc(someExpression, unicode.IsSpace) == "" {
		return nil, ErrEmptyExpression{}
	}
	e := &Expression{
		delimiter: DefaultDelimiter,
		precision: DefaultPrecision,
	}
	for _, setter := range setters {
		if err := setter(e); err != nil {
			return nil, err
		}
	}
	e.tokens = Convert(someExpression)
	return e, nil
}

// Evaluate returns the numeric value of the Expression, or ErrInvalidResult when that value is
// infinite or NaN. An Expression holds no evaluation state, so Evaluate may be called any number of
// times.
func (e *Expression) Evaluate() (float64, error) {
	result := EvaluatePostfix(e.tokens)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, ErrInvalidResult{result}
	}
	return result, nil
}

// Display evaluates the Expression and formats the result for showing to a person: integers without
// a fractional part, other values rounded to the configured precision without trailing zeros.
func (e *Expression) Display() (string, error) {
	result, err := e.Evaluate()
	if err != nil {
		return "", err
	}
	return FormatResult(result, e.precision), nil
}

// Tokens returns a copy of the postfix tokens of the Expression.
func (e *Expression) Tokens() []Token {
	tokens := make([]Token, len(e.tokens))
	copy(tokens, e.tokens)
	return tokens
}

// String returns the postfix form of the Expression, its tokens joined by the delimiter.
//
//	func example() {
//		exp, err := gocalc.New("-5+2")
//		if err != nil {
//			panic(err)
//		}
//		s := exp.String() // "-5,2,+"
//	}
func (e Expression) String() string {
	strs := make([]string, len(e.tokens))
	for idx, token := range e.tokens {
		strs[idx] = token.String()
	}
	return strings.Join(strs, string(e.delimiter))
}

// EvaluateExpression evaluates the infix expression in input and returns the result as a display
// string. It returns ErrEmptyExpression for blank input and ErrInvalidResult when the result is not
// finite.
//
//	s, err := gocalc.EvaluateExpression("1.5+2.25") // "3.75"
func EvaluateExpression(input string) (string, error) {
	e, err := New(input)
	if err != nil {
		return "", err
	}
	return e.Display()
}
