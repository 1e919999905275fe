package consoletable

import "strings"

const minimalDivider = "  "

// minimalLayout has no borders; a full-width rule separates the header.
func minimalLayout() layout {
	return layout{
		divider: minimalDivider,
		rule: func(lineWidth int, _ []int) string {
			return strings.Repeat("-", lineWidth)
		},
	}
}
