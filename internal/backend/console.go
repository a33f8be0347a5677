package backend

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"budgetreport/internal/report"
)

// ConsoleWriter renders the report table to a writer. It backs dry
// runs where no spreadsheet is configured.
type ConsoleWriter struct {
	out io.Writer
}

func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{out: out}
}

func (w *ConsoleWriter) WriteReport(_ context.Context, rep *report.Report) error {
	fmt.Fprintf(w.out, "%s\n\n", rep.SheetTitle())

	tw := tabwriter.NewWriter(w.out, 2, 4, 2, ' ', 0)
	writeCells(tw, report.Header())
	for _, row := range rep.TableRows {
		writeCells(tw, row.Cells())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render report table: %w", err)
	}
	return nil
}

func writeCells(w io.Writer, cells []any) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}
