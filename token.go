package gocalc

import (
	"math"
	"strconv"
)

// Kind discriminates the values a Token may hold.
type Kind int

const (
	Number      Kind = iota // numeric literal, possibly with a leading unary minus
	Operator                // one of + - * /
	Parenthesis             // only emitted for an unmatched '(' in malformed input
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case Parenthesis:
		return "Parenthesis"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is one of the four binary arithmetic operators.
type Op rune

const (
	Add      Op = '+'
	Subtract Op = '-'
	Multiply Op = '*'
	Divide   Op = '/'
)

func isOp(r rune) bool {
	switch Op(r) {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// Precedence returns the binding strength of the operator. Addition and
// subtraction bind at 1, multiplication and division at 2, and anything
// else at 0.
func (o Op) Precedence() int {
	switch o {
	case Add, Subtract:
		return 1
	case Multiply, Divide:
		return 2
	default:
		return 0
	}
}

// Apply returns a OP b. Division is plain IEEE 754 division, so dividing by
// zero yields an infinity or NaN rather than an error.
func (o Op) Apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		return math.NaN()
	}
}

func (o Op) String() string { return string(o) }

// Token is one element of a postfix sequence.
type Token struct {
	Kind    Kind
	Literal string // set for Number and Parenthesis tokens
	Op      Op     // set for Operator tokens
}

// NumberToken returns a Number token for the literal.
func NumberToken(literal string) Token {
	return Token{Kind: Number, Literal: literal}
}

// OperatorToken returns an Operator token for op.
func OperatorToken(op Op) Token {
	return Token{Kind: Operator, Op: op}
}

// Value returns the numeric value of a Number token. Literals that do not
// parse, such as a lone "-" or "1.2.3", and tokens of any other kind, have
// the value NaN.
func (t Token) Value() float64 {
	if t.Kind != Number {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(t.Literal, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (t Token) String() string {
	if t.Kind == Operator {
		return t.Op.String()
	}
	return t.Literal
}
