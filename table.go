package consoletable

import (
	"fmt"
	"strings"
)

// layout captures what differs between formats. Everything else, from width
// computation to line assembly, is shared by render.
type layout struct {
	divider string

	// raw rows are joined unpadded from unformatted values.
	raw bool

	// bordered layouts draw the rule above the header and after every row.
	bordered bool

	// rule derives the divider line from the rendered header's display width
	// and the column widths.
	rule func(lineWidth int, widths []int) string
}

const alternativeDivider = " + "

func defaultLayout(divider string) layout {
	return layout{
		divider:  divider,
		bordered: true,
		rule: func(lineWidth int, _ []int) string {
			return " " + strings.Repeat("-", max(lineWidth-2, 0)) + " "
		},
	}
}

func alternativeLayout() layout {
	joint := strings.TrimSpace(alternativeDivider)
	return layout{
		divider:  alternativeDivider,
		bordered: true,
		rule: func(_ int, widths []int) string {
			parts := make([]string, 0, len(widths)+2)
			parts = append(parts, "")
			for _, w := range widths {
				parts = append(parts, strings.Repeat("-", w+2))
			}
			parts = append(parts, "")
			return " " + strings.Join(parts, joint) + " "
		},
	}
}

func (t *Table) render(l layout) string {
	widths := t.columnWidths(l.raw)
	aligns := t.alignments()

	format := func(r *Row) string {
		if l.raw {
			return r.Join(l.divider, true)
		}
		return r.PaddedJoin(l.divider, widths, aligns)
	}

	// The header is rendered even when hidden: the rule is sized from it.
	header := format(headerRow(t.columns))
	rule := l.rule(TextWidth(header), widths)

	var sb strings.Builder
	line := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	if t.opts.IncludeHeaderRow {
		if l.bordered {
			line(rule)
		}
		line(header)
		line(rule)
	}
	for _, r := range t.rows {
		line(format(r))
		if l.bordered {
			line(rule)
		}
	}
	if t.opts.EnableCount {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, " Count: %d", len(t.rows))
	}
	return sb.String()
}

// columnWidths returns, per column, the widest display width among the
// column name and every cell's text.
func (t *Table) columnWidths(raw bool) []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = TextWidth(col.Name)
	}
	for _, r := range t.rows {
		for i, s := range r.Texts(raw) {
			if w := TextWidth(s); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// alignments right-aligns numeric columns when the options ask for it.
func (t *Table) alignments() []Alignment {
	aligns := make([]Alignment, len(t.columns))
	for i, col := range t.columns {
		if t.opts.NumberAlignment == AlignRight && col.Kind.IsNumeric() {
			aligns[i] = AlignRight
		}
	}
	return aligns
}
