// Package ui - Terminal user interface
// Quote output with tables and colors, plus the interactive session loop.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// Out returns the underlying writer
func (w *Writer) Out() io.Writer {
	return w.out
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.color(Green, "✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.color(Yellow, "⚠ "), fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println("%s%s", w.color(Red, "✗ "), fmt.Sprintf(format, args...))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	w.Println("%s%s", w.color(Blue, "ℹ "), fmt.Sprintf(format, args...))
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	w.Println("%s", w.color(Dim, "  "+fmt.Sprintf(format, args...)))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = displayWidth(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := displayWidth(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Render prints the table
func (t *Table) Render() {
	t.w.Println("%s", t.w.color(Bold, t.line(t.headers)))

	sep := make([]string, len(t.widths))
	for i, w := range t.widths {
		sep[i] = strings.Repeat("─", w)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for _, row := range t.rows {
		t.w.Println("%s", t.line(row))
	}
}

func (t *Table) line(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = c + strings.Repeat(" ", t.widths[i]-displayWidth(c))
	}
	return strings.TrimRight(strings.Join(padded, " │ "), " ")
}

// displayWidth counts runes, so box-drawing and currency symbols pad correctly
func displayWidth(s string) int {
	return len([]rune(s))
}

// QuoteSummary renders one quote
type QuoteSummary struct {
	w        *Writer
	Title    string
	Vertical string
	Raw      string
	Final    string
	Discount string
	AreaUnit string
	Inputs   [][2]string
	Hidden   []string
}

// NewQuoteSummary creates a quote summary
func (w *Writer) NewQuoteSummary() *QuoteSummary {
	return &QuoteSummary{w: w}
}

// Render prints the quote summary
func (s *QuoteSummary) Render() {
	s.w.Header(s.Title)

	if len(s.Inputs) > 0 {
		hidden := make(map[string]bool, len(s.Hidden))
		for _, h := range s.Hidden {
			hidden[h] = true
		}

		table := s.w.NewTable("Input", "Value")
		for _, kv := range s.Inputs {
			if hidden[kv[0]] {
				continue
			}
			table.AddRow(kv[0], kv[1])
		}
		table.Render()
		s.w.Println("")
	}

	s.w.Println("%s", s.w.color(Bold, "╭─────────────────────────────────────────╮"))
	if s.Discount != "" && s.Discount != "0" {
		s.w.Println("%s%s%s", s.w.color(Bold, "│"), s.w.color(Dim, fmt.Sprintf("  Before discount: %-22s", s.Raw)), s.w.color(Bold, "│"))
		s.w.Println("%s%s%s", s.w.color(Bold, "│"), s.w.color(Dim, fmt.Sprintf("  Discount:        %-22s", s.Discount+"%")), s.w.color(Bold, "│"))
	}
	s.w.Println("%s%s%s", s.w.color(Bold, "│"), s.w.color(Green, fmt.Sprintf("  Estimate:        %-22s", s.Final)), s.w.color(Bold, "│"))
	s.w.Println("%s", s.w.color(Bold, "╰─────────────────────────────────────────╯"))

	if s.AreaUnit != "" {
		s.w.Println("%s", s.w.color(Dim, "  Areas in "+s.AreaUnit))
	}
}

// QuoteChange shows how the estimate moved after an edit
type QuoteChange struct {
	w          *Writer
	Field      string
	Before     string
	After      string
	Change     string
	IsIncrease bool
}

// NewQuoteChange creates a change line
func (w *Writer) NewQuoteChange() *QuoteChange {
	return &QuoteChange{w: w}
}

// Render prints the change
func (c *QuoteChange) Render() {
	arrow := c.w.color(Yellow, "→")
	if c.Change == "" {
		c.w.Println("  %s: %s %s %s", c.Field, c.Before, arrow, c.After)
		return
	}
	change := c.w.color(Green, c.Change)
	if c.IsIncrease {
		change = c.w.color(Red, "+"+c.Change)
	}
	c.w.Println("  %s: %s %s %s (%s)", c.Field, c.Before, arrow, c.After, change)
}
