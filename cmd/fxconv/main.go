// Command fxconv converts amounts between the built-in currencies.
//
// Each positional argument is an amount converted with the selected pair.
// The results are printed as they are computed, followed by the history.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/deskutils/scicalc/currency"
	"github.com/deskutils/scicalc/internal/config"
	"github.com/deskutils/scicalc/internal/logger"
)

func main() {
	log.SetFlags(0)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	var (
		from, to   string
		swap, list bool
	)
	flag.StringVar(&from, "from", cfg.DefaultFrom, "currency code or label to convert from")
	flag.StringVar(&to, "to", cfg.DefaultTo, "currency code or label to convert to")
	flag.BoolVar(&swap, "swap", false, "exchange -from and -to")
	flag.BoolVar(&list, "list", false, "list supported currencies")
	flag.Parse()

	lg, err := logger.New("fxconv", logger.Options{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	if list {
		listCurrencies(os.Stdout, currency.Default, os.DirFS("."), cfg.FlagsDir)
		return
	}

	conv, err := newConverter(from, to, swap, lg)
	if err != nil {
		log.Fatal(err)
	}
	if flag.NArg() == 0 {
		log.Fatal("no amounts given")
	}
	failed := convertAll(os.Stdout, conv, flag.Args(), lg)
	fmt.Println()
	fmt.Println("Conversion history:")
	if _, err := conv.History().WriteTo(os.Stdout); err != nil {
		log.Fatal(err)
	}
	if failed {
		os.Exit(1)
	}
}

// newConverter builds a converter over the default table from flag values,
// which may be codes in any case or full labels.
func newConverter(from, to string, swap bool, lg *zap.Logger) (*currency.Converter, error) {
	sel := currency.Selection{From: currency.ParseLabel(from), To: currency.ParseLabel(to)}
	if swap {
		sel = sel.Swap()
	}
	return currency.NewConverter(currency.Default, sel, currency.WithLogger(lg))
}

// convertAll converts each amount and prints the result or a notice. It
// reports whether any conversion failed.
func convertAll(w io.Writer, conv *currency.Converter, amounts []string, lg *zap.Logger) bool {
	failed := false
	for _, a := range amounts {
		r, err := conv.Convert(a)
		switch {
		case errors.Is(err, currency.ErrInvalidSelection):
			fmt.Fprintln(w, "Invalid Selection: please select different currencies.")
		case errors.Is(err, currency.ErrInvalidInput):
			fmt.Fprintf(w, "Invalid Input: %q is not a valid numeric amount.\n", a)
		case err != nil:
			lg.Error("conversion", zap.Error(err))
			fmt.Fprintln(w, err)
		default:
			fmt.Fprintln(w, r)
			continue
		}
		failed = true
	}
	return failed
}
