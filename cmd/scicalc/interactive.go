package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/deskutils/scicalc/pad"
)

const padHelp = `Type an expression and press Enter to evaluate it. After a result, typing
continues from it. Commands:
  :c  clear
  :b  backspace
  :h  history
  :q  quit`

// runPad drives calc one line at a time. Each line is appended to the
// expression and evaluated, unless it is a command.
func runPad(calc *pad.Calculator, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, padHelp)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", calc.State().Expr)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case ":q":
			return nil
		case ":c":
			calc.Clear()
			continue
		case ":b":
			calc.Backspace()
			continue
		case ":h":
			if _, err := calc.History().WriteTo(out); err != nil {
				return err
			}
			continue
		}
		calc.Append(line)
		s := calc.Evaluate()
		if s.Err != nil {
			fmt.Fprintf(out, "%s (%v)\n", s.Display, s.Err)
			continue
		}
		fmt.Fprintln(out, s.Display)
	}
}
