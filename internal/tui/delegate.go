package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list item. It receives the writer, the list
// model, the item index, and the item itself.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Delegate is a reusable list.ItemDelegate whose only varying part is the
// render function. Height, spacing, and update are the same for every
// list in the application.
type Delegate struct {
	height   int
	spacing  int
	renderFn RenderFunc
}

// NewDelegate creates a single-line delegate with no spacing.
func NewDelegate(renderFn RenderFunc) Delegate {
	return Delegate{height: 1, renderFn: renderFn}
}

// NewSpacedDelegate creates a delegate with blank lines between items,
// used by the tile grids.
func NewSpacedDelegate(renderFn RenderFunc, spacing int) Delegate {
	return Delegate{height: 1, spacing: spacing, renderFn: renderFn}
}

// Height implements list.ItemDelegate
func (d Delegate) Height() int { return d.height }

// Spacing implements list.ItemDelegate
func (d Delegate) Spacing() int { return d.spacing }

// Update implements list.ItemDelegate
func (d Delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
