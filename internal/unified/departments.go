package unified

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// deptsModel is the department grid with live search over names.
type deptsModel struct {
	list list.Model
}

func newDeptsModel() deptsModel {
	d := tui.NewDelegate(tui.RenderTile)
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = tui.StyleHelp

	return deptsModel{list: l}
}

// refresh rebuilds the tiles from the snapshot: one per fixed
// department, count and most recent title attached.
func (d *deptsModel) refresh(books []catalog.Book) {
	summaries := catalog.ListDepartments(books)
	items := make([]list.Item, len(summaries))
	for i, s := range summaries {
		tile := tui.Tile{Label: s.Department, Count: s.Count}
		if s.MostRecent != nil {
			tile.Subtitle = s.MostRecent.Title
		}
		items[i] = tile
	}
	d.list.SetItems(items)
}

func (d *deptsModel) resize(width, height int) {
	w := width - 16
	if w < 50 {
		w = 50
	}
	h := height - 10
	if h < 5 {
		h = 5
	}
	d.list.SetSize(w, h)
}

func (m Model) updateDepartments(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.depts.list.FilterState() != list.Filtering {
		switch key.String() {
		case "esc", "backspace":
			m.machine.Back()
			m.refreshScreen()
			return m, nil
		case "enter":
			if tile, ok := m.depts.list.SelectedItem().(tui.Tile); ok {
				m.machine.EnterDepartment(tile.Label)
				m.refreshScreen()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.depts.list, cmd = m.depts.list.Update(msg)
	return m, cmd
}

func (m Model) viewDepartments() string {
	header := tui.StyleHeader.Render("Kafedralar") + "\n" +
		tui.StyleHelp.Render("Kafedrani tanlang")

	content := lipgloss.JoinVertical(lipgloss.Left,
		header, "",
		m.depts.list.View(),
		tui.RenderFooterBar([]tui.ShortcutEntry{
			{Key: "enter", Label: "ochish"},
			{Key: "/", Label: "qidirish"},
			{Key: "esc", Label: "orqaga"},
		}))

	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}
