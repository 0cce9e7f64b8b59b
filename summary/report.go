package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/salesagg/ledger"
	"github.com/robinvdvleuten/salesagg/output"
)

// Report writes tables as aligned columns for the terminal. Names are padded
// by display width so that full-width characters line up. styles may be nil.
func Report(w io.Writer, tables []*ledger.Table, styles *output.Styles) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		title := t.Dimension.String()
		if styles != nil {
			title = styles.Keyword(title)
		}
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}

		codeWidth, nameWidth, totalWidth := columnWidths(t)
		for _, e := range t.Entries() {
			code := e.Code + strings.Repeat(" ", codeWidth-runewidth.StringWidth(e.Code))
			name := runewidth.FillRight(e.Name, nameWidth)
			total := e.Total.String()
			total = strings.Repeat(" ", totalWidth-len(total)) + total

			if styles != nil {
				code = styles.Code(code)
				total = styles.Amount(total)
			}

			if _, err := fmt.Fprintf(w, "  %s  %s  %s\n", code, name, total); err != nil {
				return err
			}
		}
	}
	return nil
}

func columnWidths(t *ledger.Table) (code, name, total int) {
	for _, e := range t.Entries() {
		code = max(code, runewidth.StringWidth(e.Code))
		name = max(name, runewidth.StringWidth(e.Name))
		total = max(total, len(e.Total.String()))
	}
	return code, name, total
}
