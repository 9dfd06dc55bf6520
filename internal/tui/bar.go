package tui

import (
	"fmt"
	"strings"
)

// RenderBarRow renders one distribution row: label, proportional bar,
// count. maxCount scales the bar so the largest row fills barWidth.
func RenderBarRow(label string, count, maxCount, barWidth int) string {
	if barWidth < 1 {
		barWidth = 1
	}
	filled := 0
	if maxCount > 0 {
		filled = count * barWidth / maxCount
	}
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := StyleCount.Render(strings.Repeat("█", filled)) +
		StyleHelp.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %s %s",
		StyleNormal.Render(padOrTruncate(label, 22)),
		bar,
		StyleCount.Render(fmt.Sprintf("%d", count)))
}

// RenderGrowthArea renders cumulative totals as a block-character area
// chart, one column per point, height rows tall.
func RenderGrowthArea(totals []int, height int) string {
	if len(totals) == 0 || height < 1 {
		return StyleHelp.Render("(ma'lumot yo'q)")
	}
	max := 0
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	if max == 0 {
		max = 1
	}

	rows := make([]strings.Builder, height)
	for _, t := range totals {
		level := t * height / max
		if t > 0 && level == 0 {
			level = 1
		}
		for row := 0; row < height; row++ {
			// Rows render top-down; a column is filled from the bottom.
			if height-row <= level {
				rows[row].WriteString("█")
			} else {
				rows[row].WriteString(" ")
			}
		}
	}

	lines := make([]string, height)
	for i := range rows {
		lines[i] = StyleCount.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}
