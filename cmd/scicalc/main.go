// Command scicalc evaluates calculator expressions from arguments, a file,
// or standard input, or runs an interactive calculator pad.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/deskutils/scicalc"
	"github.com/deskutils/scicalc/internal/config"
	"github.com/deskutils/scicalc/internal/logger"
	"github.com/deskutils/scicalc/pad"
)

func main() {
	log.SetFlags(0)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lg, err := logger.New("scicalc", logger.Options{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()
	if err := run(os.Args[1:], cfg, lg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

// options are the command line settings.
type options struct {
	in          string
	verb        string
	given       []string
	prec        uint
	lines       bool
	echo        bool
	interactive bool
	exprs       []string
}

func parseFlags(args []string, out io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("scicalc", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&o.in, "in", "", "input file (default stdin if no args given)")
	fs.StringVar(&o.verb, "fmt", "", "result formatting string (default calculator display)")
	fs.Func("given", "name=value variable definition (any number of times)", func(s string) error {
		if !strings.Contains(s, "=") {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		o.given = append(o.given, s)
		return nil
	})
	fs.UintVar(&o.prec, "p", 0, "precision of calculations in bits, 2 to 4096 (default from CALC_PRECISION)")
	fs.BoolVar(&o.lines, "n", false, "parse separate input lines as separate expressions")
	fs.BoolVar(&o.echo, "echo", false, "print parse trees")
	fs.BoolVar(&o.interactive, "i", false, "interactive calculator pad on stdin")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.exprs = fs.Args()
	return &o, nil
}

func run(args []string, cfg *config.Config, lg *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	o, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}
	switch {
	case o.prec == 0:
		o.prec = cfg.Precision
	case o.prec < config.MinPrecision, o.prec > config.MaxPrecision:
		return fmt.Errorf("precision (%d) must be between %d and %d bits", o.prec, config.MinPrecision, config.MaxPrecision)
	}

	if o.interactive {
		calc := pad.New(
			pad.WithPrecision(o.prec),
			pad.WithErrorText(cfg.ErrorText),
			pad.WithLogger(lg),
		)
		return runPad(calc, stdin, stdout)
	}

	ctx := scicalc.NewContext(scicalc.Prec(o.prec))
	for _, g := range o.given {
		name, val, _ := strings.Cut(g, "=")
		name = strings.TrimSpace(name)
		r, err := scicalc.EvalString(val, scicalc.Prec(o.prec))
		if err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
		ctx.Set(name, r)
	}

	ins, err := inputs(o, stdin)
	if err != nil {
		return err
	}
	exprs, err := parseAll(ins, o.lines)
	if err != nil {
		return err
	}
	for _, e := range exprs {
		if o.echo {
			fmt.Fprintf(stdout, "%v : ", e)
		}
		r := ctx.Eval(e)
		if r == nil {
			lg.Debug("evaluation failed", zap.Stringer("expr", e), zap.Stringer("kind", scicalc.KindOf(ctx.Err())))
			fmt.Fprintf(stdout, "%s: %v\n", cfg.ErrorText, ctx.Err())
			continue
		}
		if o.verb == "" {
			fmt.Fprintln(stdout, scicalc.FormatResult(r))
		} else {
			fmt.Fprintf(stdout, o.verb+"\n", r)
		}
	}
	return nil
}

// inputs lists the sources of expressions: the named file or stdin first,
// then each positional argument.
func inputs(o *options, stdin io.Reader) ([]io.RuneScanner, error) {
	var ins []io.RuneScanner
	switch {
	case o.in != "" && o.in != "-":
		b, err := os.ReadFile(o.in)
		if err != nil {
			return nil, err
		}
		ins = append(ins, strings.NewReader(string(b)))
	case o.in == "-", len(o.exprs) == 0:
		ins = append(ins, bufio.NewReader(stdin))
	}
	for _, arg := range o.exprs {
		ins = append(ins, strings.NewReader(arg))
	}
	return ins, nil
}

// parseAll parses every expression from each input, skipping blank space
// between them. With lines, each line is a separate expression.
func parseAll(ins []io.RuneScanner, lines bool) ([]*scicalc.Expr, error) {
	var opts []scicalc.ParseOption
	if lines {
		opts = append(opts, scicalc.StopOn('\n'))
	}
	var exprs []*scicalc.Expr
	for _, in := range ins {
		for {
			r, _, err := in.ReadRune()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			if unicode.IsSpace(r) {
				// Blank lines separate nothing.
				continue
			}
			in.UnreadRune()
			e, err := scicalc.Parse(in, opts...)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
		}
	}
	return exprs, nil
}
