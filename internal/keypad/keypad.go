// Package keypad holds the state of a calculator's entry line and the rules for changing it in
// response to button presses. Every operation takes a State and returns the next one; nothing is
// kept between calls.
package keypad

import (
	"strings"
	"time"

	"github.com/karrick/gocalc"
	"github.com/sirupsen/logrus"
)

// ErrorText replaces the input after a failed calculation.
const ErrorText = "Erro"

// ErrorClearDelay is how long ErrorText stays up before the front end should call Reset.
const ErrorClearDelay = 1200 * time.Millisecond

// State is the entry line of the calculator.
type State struct {
	Input  string
	Failed bool // Input holds ErrorText from the last Calculate
}

// Keys lists every key Press accepts.
const Keys = "0123456789.+-*/()"

func isOperator(key string) bool {
	return len(key) == 1 && strings.ContainsAny(key, "+-*/")
}

// Press returns the state after key is entered. Keys outside Keys are ignored. An operator cannot
// start the input unless it is a minus sign, and an operator typed right after another replaces it.
// A decimal point is refused when the number being typed already has one. Any key pressed while the
// error indicator is showing starts over from empty input.
func Press(s State, key string) State {
	if len(key) != 1 || !strings.Contains(Keys, key) {
		return s
	}
	if s.Failed {
		s = Reset(s)
	}

	switch {
	case isOperator(key):
		if s.Input == "" && key != "-" {
			return s
		}
		if last := lastChar(s.Input); isOperator(last) {
			s.Input = s.Input[:len(s.Input)-1] + key
			return s
		}
		s.Input += key
	case key == ".":
		if strings.Contains(currentNumber(s.Input), ".") {
			return s
		}
		s.Input += key
	default:
		s.Input += key
	}
	return s
}

// Delete returns the state with the last character of the input removed.
func Delete(s State) State {
	if s.Failed {
		return Reset(s)
	}
	if s.Input != "" {
		s.Input = s.Input[:len(s.Input)-1]
	}
	return s
}

// Clear returns the state with empty input.
func Clear(_ State) State {
	return State{}
}

// Reset returns the state that follows the error indicator.
func Reset(_ State) State {
	return State{}
}

// Calculate evaluates the input. On success the input becomes the formatted result. On failure the
// input becomes ErrorText, Failed is set, and the evaluation error is returned so the caller can
// log it and schedule a Reset after ErrorClearDelay.
func Calculate(s State) (State, error) {
	if s.Failed {
		return s, nil
	}
	result, err := gocalc.EvaluateExpression(s.Input)
	if err != nil {
		logrus.WithFields(logrus.Fields{"input": s.Input}).WithError(err).Debug("calculation failed")
		return State{Input: ErrorText, Failed: true}, err
	}
	logrus.WithFields(logrus.Fields{"input": s.Input, "result": result}).Debug("calculated")
	return State{Input: result}, nil
}

func lastChar(s string) string {
	if s == "" {
		return ""
	}
	return s[len(s)-1:]
}

// currentNumber returns the trailing run of digits and points of input.
func currentNumber(input string) string {
	idx := strings.LastIndexFunc(input, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '.'
	})
	return input[idx+1:]
}
