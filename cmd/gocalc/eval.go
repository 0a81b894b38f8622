package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/karrick/gocalc"
	"github.com/karrick/gocalc/internal/keypad"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	showPostfix bool
	precision   int
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions and print the results",
	Long: `Evaluate each argument as an expression and print one result per line.
With no arguments, evaluate each line of standard input.

A failed expression prints "Erro" and makes the command exit non-zero.
Put -- before expressions that start with a minus sign.`,
	Example: `  gocalc eval '2+3*4' '(2+3)*4'
  gocalc eval -- -5+2
  echo '1.5+2.25' | gocalc eval --postfix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return evaluateAll(cmd.OutOrStdout(), args)
		}
		return evaluateLines(cmd.OutOrStdout(), cmd.InOrStdin())
	},
}

func init() {
	evalCmd.Flags().BoolVar(&showPostfix, "postfix", false, "Print the postfix form before each result")
	evalCmd.Flags().IntVar(&precision, "precision", gocalc.DefaultPrecision, "Decimal digits to round results to")
	rootCmd.AddCommand(evalCmd)
}

var errFailed = errors.New("one or more expressions failed")

func evaluateAll(w io.Writer, inputs []string) error {
	var failed bool
	for _, input := range inputs {
		if !evaluateOne(w, input) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func evaluateLines(w io.Writer, r io.Reader) error {
	var failed bool
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !evaluateOne(w, line) {
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "cannot read expressions")
	}
	if failed {
		return errFailed
	}
	return nil
}

// evaluateOne prints the result of input, or the error indicator, and reports success.
func evaluateOne(w io.Writer, input string) bool {
	exp, err := gocalc.New(input, gocalc.Precision(precision))
	if err == nil {
		if showPostfix {
			fmt.Fprintf(w, "%s\t", exp)
		}
		var result string
		if result, err = exp.Display(); err == nil {
			fmt.Fprintln(w, result)
			return true
		}
	}
	logrus.WithField("input", input).WithError(err).Error("cannot evaluate")
	fmt.Fprintln(w, keypad.ErrorText)
	return false
}
