package consoletable

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvariantViolation = errors.New("invariant violation")
	ErrConfiguration      = errors.New("configuration error")
	ErrUnsupportedFormat  = errors.New("unsupported format")
)

// Format represents an output format.
type Format string

const (
	Default     Format = "default"
	MarkDown    Format = "markdown"
	Alternative Format = "alternative"
	Minimal     Format = "minimal"
)

var formats = []Format{Default, MarkDown, Alternative, Minimal}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Alignment controls how cell text is placed within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// String returns "left" or "right".
func (a Alignment) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// ParseAlignment parses "left" or "right", ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("%w: invalid alignment %q", ErrConfiguration, s)
	}
}

// Options controls how a table is rendered.
type Options struct {
	// Columns seeds the table built by NewWithOptions.
	Columns []string `yaml:"columns"`

	// NumberAlignment applies to columns of a numeric Kind only.
	NumberAlignment Alignment `yaml:"number_alignment"`

	IncludeHeaderRow bool `yaml:"include_header_row"`

	// EnableCount appends a blank line and " Count: N".
	EnableCount bool `yaml:"enable_count"`

	// CellDivider separates cells in the Default format. The other formats
	// use fixed dividers.
	CellDivider string `yaml:"cell_divider"`

	// Output receives Write. Defaults to os.Stdout.
	Output io.Writer `yaml:"-"`
}

// DefaultOptions returns the options used by New.
func DefaultOptions() Options {
	return Options{
		NumberAlignment:  AlignLeft,
		IncludeHeaderRow: true,
		EnableCount:      true,
		CellDivider:      " | ",
		Output:           os.Stdout,
	}
}

// Table holds ordered columns and the rows added against them. A Table is not
// safe for concurrent use.
type Table struct {
	columns []*Column
	rows    []*Row
	opts    Options
}

// New returns a table with untyped columns named by columns and default
// options.
func New(columns ...string) *Table {
	t := &Table{opts: DefaultOptions()}
	for _, name := range columns {
		t.columns = append(t.columns, NewColumn(name))
	}
	return t
}

// NewWithOptions returns a table seeded with opts.Columns. Column names must
// be unique and Output must be set.
func NewWithOptions(opts Options) (*Table, error) {
	if opts.Output == nil {
		return nil, fmt.Errorf("%w: no output writer", ErrConfiguration)
	}
	t := &Table{opts: opts}
	if err := t.AddColumns(opts.Columns...); err != nil {
		return nil, err
	}
	return t, nil
}

// Options returns a copy of the table's options.
func (t *Table) Options() Options {
	return t.opts
}

// Configure applies fn to the table's options.
func (t *Table) Configure(fn func(*Options)) *Table {
	fn(&t.opts)
	return t
}

// AddColumns appends untyped columns.
func (t *Table) AddColumns(names ...string) error {
	cols := make([]*Column, len(names))
	for i, name := range names {
		cols[i] = NewColumn(name)
	}
	return t.AddColumn(cols...)
}

// AddColumn appends columns. It fails once rows exist, and when a name is
// already taken.
func (t *Table) AddColumn(cols ...*Column) error {
	if len(cols) == 0 {
		return nil
	}
	if len(t.rows) > 0 {
		return fmt.Errorf("%w: cannot add columns to a table with %d rows", ErrInvariantViolation, len(t.rows))
	}
	seen := make(map[string]bool, len(t.columns)+len(cols))
	for _, c := range t.columns {
		seen[c.Name] = true
	}
	for _, c := range cols {
		if c == nil {
			return fmt.Errorf("%w: nil column", ErrInvariantViolation)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate column %q", ErrInvariantViolation, c.Name)
		}
		seen[c.Name] = true
	}
	t.columns = append(t.columns, cols...)
	return nil
}

// AddRow appends a row holding one value per column, in column order.
func (t *Table) AddRow(values ...any) error {
	if len(t.columns) == 0 {
		return fmt.Errorf("%w: set the columns before adding rows", ErrConfiguration)
	}
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: the number of columns in the row (%d) does not match the values (%d)",
			ErrInvariantViolation, len(t.columns), len(values))
	}
	row := NewRow()
	for i, col := range t.columns {
		if err := row.Add(col, values[i]); err != nil {
			return err
		}
	}
	t.rows = append(t.rows, row)
	return nil
}

// SetFormatter assigns f to every column picked by sel and returns how many
// columns matched. A nil sel matches nothing.
func (t *Table) SetFormatter(sel Selector, f FormatFunc) int {
	if sel == nil {
		return 0
	}
	n := 0
	for _, c := range t.columns {
		if sel(c) {
			c.SetFormatter(f)
			n++
		}
	}
	return n
}

// Columns returns the table's columns in order. The slice is a copy; the
// columns are shared.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name
	}
	return out
}

// Rows returns the table's rows in insertion order.
func (t *Table) Rows() []*Row {
	out := make([]*Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Render returns the table rendered in format f.
func (t *Table) Render(f Format) (string, error) {
	var l layout
	switch f {
	case Default:
		l = defaultLayout(t.opts.CellDivider)
	case MarkDown:
		l = markdownLayout(len(t.columns))
	case Alternative:
		l = alternativeLayout()
	case Minimal:
		l = minimalLayout()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if len(t.columns) == 0 {
		return "", fmt.Errorf("%w: table has no columns", ErrConfiguration)
	}
	return t.render(l), nil
}

// Write renders the table in format f and writes it, followed by a newline,
// to the configured output. Nothing is written if rendering fails.
func (t *Table) Write(f Format) error {
	s, err := t.Render(f)
	if err != nil {
		return err
	}
	if t.opts.Output == nil {
		return fmt.Errorf("%w: no output writer", ErrConfiguration)
	}
	_, err = fmt.Fprintln(t.opts.Output, s)
	return err
}

// String renders the table in the Default format.
func (t *Table) String() string {
	s, err := t.Render(Default)
	if err != nil {
		return ""
	}
	return s
}
