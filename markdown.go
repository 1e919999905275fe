package consoletable

import (
	"slices"
	"strings"
)

const markdownDivider = "|"

// markdownLayout joins unformatted values without padding. The rule is one
// "---" segment per column joined by "|", with no outer pipes.
func markdownLayout(numCols int) layout {
	rule := strings.Join(slices.Repeat([]string{"---"}, numCols), markdownDivider)
	return layout{
		divider: markdownDivider,
		raw:     true,
		rule:    func(int, []int) string { return rule },
	}
}
