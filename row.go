package consoletable

import (
	"fmt"
	"reflect"
	"strings"
)

// Cell binds a value to the column it belongs to.
type Cell struct {
	Column *Column
	Value  any
}

// Text returns the value rendered through the column's formatter.
func (c Cell) Text() string { return c.Column.Format(c.Value) }

// Raw returns the value's natural string form, ignoring any formatter.
func (c Cell) Raw() string { return naturalText(c.Value) }

// Equal reports whether both cells belong to the same column and hold equal
// values.
func (c Cell) Equal(o Cell) bool {
	return c.Column.Equal(o.Column) && reflect.DeepEqual(c.Value, o.Value)
}

// Row is an ordered set of cells, at most one per column.
type Row struct {
	header bool
	cells  []Cell
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{}
}

// headerRow builds the row whose cells render as the column names.
func headerRow(columns []*Column) *Row {
	r := &Row{header: true, cells: make([]Cell, len(columns))}
	for i, col := range columns {
		r.cells[i] = Cell{Column: col, Value: col.Name}
	}
	return r
}

// Add appends a cell for col. It fails if the row already holds a cell for a
// column of the same name.
func (r *Row) Add(col *Column, v any) error {
	if col == nil {
		return fmt.Errorf("%w: nil column", ErrInvariantViolation)
	}
	for _, c := range r.cells {
		if c.Column.Equal(col) {
			return fmt.Errorf("%w: duplicate column %q in row", ErrInvariantViolation, col.Name)
		}
	}
	r.cells = append(r.cells, Cell{Column: col, Value: v})
	return nil
}

// IsHeader reports whether the row renders column names instead of values.
func (r *Row) IsHeader() bool { return r.header }

// Len returns the number of cells.
func (r *Row) Len() int { return len(r.cells) }

// Cells returns a copy of the row's cells in column order.
func (r *Row) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Value returns the value stored under the named column.
func (r *Row) Value(name string) (any, bool) {
	for _, c := range r.cells {
		if c.Column.Name == name {
			return c.Value, true
		}
	}
	return nil, false
}

// Equal reports whether both rows hold equal cells in the same order.
func (r *Row) Equal(o *Row) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.cells) != len(o.cells) {
		return false
	}
	for i := range r.cells {
		if !r.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// Texts returns each cell's formatted text, or its raw text when raw is set.
// Header rows always yield the column names.
func (r *Row) Texts(raw bool) []string {
	out := make([]string, len(r.cells))
	for i, c := range r.cells {
		switch {
		case r.header:
			out[i] = c.Column.Name
		case raw:
			out[i] = c.Raw()
		default:
			out[i] = c.Text()
		}
	}
	return out
}

// String joins the formatted cell texts with ", ".
func (r *Row) String() string {
	return strings.Join(r.Texts(false), ", ")
}

// Join returns divider + cell1 + divider + ... + cellN + divider without any
// padding.
func (r *Row) Join(divider string, raw bool) string {
	return enclose(r.Texts(raw), divider)
}

// PaddedJoin is Join with every cell aligned within its column width. widths
// and aligns are indexed like the row's cells and measured in display
// columns, so wide runes get one pad column less each.
func (r *Row) PaddedJoin(divider string, widths []int, aligns []Alignment) string {
	texts := r.Texts(false)
	for i, s := range texts {
		width, align := 0, AlignLeft
		if i < len(widths) {
			width = widths[i]
		}
		if i < len(aligns) {
			align = aligns[i]
		}
		texts[i] = alignCell(s, width, align)
	}
	return enclose(texts, divider)
}

func enclose(fields []string, divider string) string {
	var sb strings.Builder
	sb.WriteString(divider)
	for _, f := range fields {
		sb.WriteString(f)
		sb.WriteString(divider)
	}
	return sb.String()
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - TextWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
