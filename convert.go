package gocalc

import (
	"strings"
	"unicode"
)

// Convert scans an infix expression and returns its tokens in postfix
// order, using the shunting-yard algorithm. It never fails: characters it
// does not recognize are skipped, and unbalanced parentheses produce a best
// effort sequence that Evaluate reports as an invalid result when it cannot
// be computed.
//
// A '-' that begins the expression, or follows an operator or '(', is the
// sign of the number that follows it rather than a subtraction.
//
//	tokens := gocalc.Convert("2+3*4")
//	// tokens: 2 3 4 * +
func Convert(expression string) []Token {
	var output []Token
	var operators []rune // '(' or an operator
	var number strings.Builder

	flush := func() {
		if number.Len() > 0 {
			output = append(output, NumberToken(number.String()))
			number.Reset()
		}
	}

	var previous rune // most recent non-space rune, zero at start
	for _, r := range expression {
		if unicode.IsSpace(r) {
			continue
		}
		prior := previous
		previous = r

		switch {
		case r >= '0' && r <= '9', r == '.':
			number.WriteRune(r)

		case r == '-' && (prior == 0 || prior == '(' || isOp(prior)):
			number.WriteRune(r)

		case isOp(r):
			flush()
			op := Op(r)
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if !isOp(top) || Op(top).Precedence() < op.Precedence() {
					break
				}
				output = append(output, OperatorToken(Op(top)))
				operators = operators[:len(operators)-1]
			}
			operators = append(operators, r)

		case r == '(':
			flush()
			operators = append(operators, r)

		case r == ')':
			flush()
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top == '(' {
					break
				}
				output = append(output, OperatorToken(Op(top)))
			}

		default:
			// unknown characters still terminate the number being read
			flush()
		}
	}
	flush()

	for i := len(operators) - 1; i >= 0; i-- {
		if top := operators[i]; top == '(' {
			output = append(output, Token{Kind: Parenthesis, Literal: "("})
		} else {
			output = append(output, OperatorToken(Op(top)))
		}
	}
	return output
}
