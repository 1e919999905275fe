package consoletable

import "github.com/mattn/go-runewidth"

// widthCondition is fixed rather than derived from the locale so that
// ambiguous-width runes always count as narrow.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// TextWidth returns the number of terminal columns s occupies. Each rune
// contributes 0 (non-printing, combining), 1 (narrow) or 2 (wide).
func TextWidth(s string) int {
	n := 0
	for _, r := range s {
		n += widthCondition.RuneWidth(r)
	}
	return n
}
