package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShortcutEntry is one key hint rendered in the footer bar.
type ShortcutEntry struct {
	Key   string // display key
	Label string // display text
}

// RenderFooterBar renders a dim footer bar with shortcut labels.
func RenderFooterBar(shortcuts []ShortcutEntry) string {
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		if sc.Key != "" {
			parts[i] = dimStyle.Render(sc.Key + " " + sc.Label)
		} else {
			parts[i] = dimStyle.Render(sc.Label)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dimStyle.Render("  ")))
}
