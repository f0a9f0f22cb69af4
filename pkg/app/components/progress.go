package components

import (
	"strings"

	"iconpack/pkg/app/styles"
)

// ProgressBar renders review progress as a fixed-width bar.
func ProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := current * width / total
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}
