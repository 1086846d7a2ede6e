// Package report renders dataset tables for the console and as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/okian/pitchgen/internal/domain/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default report settings.
const (
	DefaultPreviewRows = 3
	DefaultMaxColumns  = 8
	bannerWidth        = 50
)

// Option applies a configuration option to a report.
type Option func(*settings)

type settings struct {
	previewRows int
	maxColumns  int
	lang        language.Tag
}

// WithPreviewRows sets how many leading rows are printed.
func WithPreviewRows(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.previewRows = n
		}
	}
}

// WithMaxColumns sets how many column names are listed before eliding.
func WithMaxColumns(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxColumns = n
		}
	}
}

// WithLanguage sets the locale used to format counts.
func WithLanguage(tag language.Tag) Option {
	return func(s *settings) {
		s.lang = tag
	}
}

// Write prints a banner, the table shape, the leading column names and a
// preview of the first rows.
func Write(w io.Writer, title string, t table.Table, opts ...Option) error {
	s := settings{
		previewRows: DefaultPreviewRows,
		maxColumns:  DefaultMaxColumns,
		lang:        language.English,
	}
	for _, opt := range opts {
		opt(&s)
	}

	p := message.NewPrinter(s.lang)
	rule := strings.Repeat("=", bannerWidth)
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	if _, err := p.Fprintf(w, "Rows: %d | Columns: %d\n", t.NumRows(), t.NumCols()); err != nil {
		return fmt.Errorf("write shape: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Columns: %s\n", columnList(t.Columns, s.maxColumns)); err != nil {
		return fmt.Errorf("write columns: %w", err)
	}
	return writeGrid(w, t.Head(s.previewRows))
}

func columnList(cols []string, limit int) string {
	if len(cols) <= limit {
		return strings.Join(cols, ", ")
	}
	return strings.Join(cols[:limit], ", ") + "..."
}

func writeGrid(w io.Writer, t table.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(t.Columns, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush grid: %w", err)
	}
	return nil
}

// WriteCSV writes the header and every row as CSV.
func WriteCSV(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}
