package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	xansi "github.com/charmbracelet/x/ansi"
)

// Tile is one entry in a department or category grid: a label plus a
// book count, with an optional subtitle (most recent title, say).
type Tile struct {
	Label    string
	Count    int
	Subtitle string
}

// FilterValue implements list.Item. Grids filter on the label only so
// live search over department names behaves like the original screens.
func (t Tile) FilterValue() string {
	return t.Label
}

// RenderTile renders a grid tile with its count badge.
func RenderTile(w io.Writer, m list.Model, index int, item list.Item) {
	tile, ok := item.(Tile)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	badge := StyleCount.Render(fmt.Sprintf("%d ta", tile.Count))
	display := fmt.Sprintf("%-28s %s", xansi.Truncate(tile.Label, 28, "…"), badge)
	if tile.Subtitle != "" {
		display += StyleHelp.Render("  " + xansi.Truncate(tile.Subtitle, 30, "…"))
	}

	if isSelected {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}
