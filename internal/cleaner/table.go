package cleaner

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable returns a box-drawn table writer with the given header cells.
func newTable(headers ...string) table.Writer {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	style.Options.SeparateRows = true

	t := table.NewWriter()
	t.SetStyle(style)
	t.AppendHeader(row(headers...))
	return t
}

func row(cells ...string) table.Row {
	r := make(table.Row, len(cells))
	for i, c := range cells {
		r[i] = c
	}
	return r
}
