package main

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/deskutils/scicalc/currency"
)

// listCurrencies prints the selector label of each currency with its flag
// image, if there is one.
func listCurrencies(w io.Writer, t *currency.Table, fsys fs.FS, flagsDir string) {
	for _, c := range t.Currencies() {
		label, _ := t.Label(c.Code)
		if p, ok := currency.IconPath(fsys, flagsDir, c.Code); ok {
			fmt.Fprintf(w, "%-24s %s\n", label, p)
			continue
		}
		fmt.Fprintln(w, label)
	}
}
