package unified

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/nav"
	"github.com/jizpi-library/fondctl/internal/store"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// catsModel backs both category grids: the department detail screen and
// the "other" catalog. The latter allows inline custom-category
// creation.
type catsModel struct {
	list           list.Model
	input          textinput.Model
	addingCategory bool
}

func newCatsModel() catsModel {
	d := tui.NewDelegate(tui.RenderTile)
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = tui.StyleHelp

	in := textinput.New()
	in.Placeholder = "Yangi turkum nomi"
	in.CharLimit = 60
	in.Width = 32
	in.Prompt = "│ "

	return catsModel{list: l, input: in}
}

// refresh rebuilds the category tiles for the active grid.
func (c *catsModel) refresh(snap store.Snapshot, sel nav.Selection, screen nav.Screen) {
	scoped := catalog.Filter{
		Department:  sel.Department,
		Affiliation: sel.Affiliation,
	}.Apply(snap.Books)

	var items []list.Item
	if screen == nav.ScreenOtherCategories {
		// Custom categories count their own books, so tally per exact
		// type rather than through the fixed-set catch-all.
		for _, label := range catalog.GeneralTypes(snap.Categories) {
			n := 0
			for _, b := range scoped {
				if b.LiteratureType == label {
					n++
				}
			}
			items = append(items, tui.Tile{Label: label, Count: n})
		}
	} else {
		counts := catalog.GroupCategoryCounts(scoped, sel.Department)
		for _, label := range catalog.LiteratureTypes {
			items = append(items, tui.Tile{Label: label, Count: counts[label]})
		}
		if n := counts[catalog.TypeOther]; n > 0 {
			items = append(items, tui.Tile{Label: catalog.TypeOther, Count: n})
		}
	}
	c.list.SetItems(items)
}

func (c *catsModel) resize(width, height int) {
	w := width - 16
	if w < 50 {
		w = 50
	}
	h := height - 12
	if h < 5 {
		h = 5
	}
	c.list.SetSize(w, h)
}

func (m Model) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	onOther := m.machine.Screen() == nav.ScreenOtherCategories

	// Inline creation mode captures all keys until submit or cancel.
	if m.cats.addingCategory {
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc":
				m.cats.addingCategory = false
				m.cats.input.Reset()
				return m, nil
			case "enter":
				name := strings.TrimSpace(m.cats.input.Value())
				if name == "" || m.writing {
					return m, nil
				}
				m.writing = true
				return m, createCategory(m.st, name)
			}
		}
		var cmd tea.Cmd
		m.cats.input, cmd = m.cats.input.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok && m.cats.list.FilterState() != list.Filtering {
		switch key.String() {
		case "esc", "backspace":
			m.machine.Back()
			m.refreshScreen()
			return m, nil
		case "n":
			if onOther {
				m.cats.addingCategory = true
				m.cats.input.Focus()
				return m, textinput.Blink
			}
		case "enter":
			if tile, ok := m.cats.list.SelectedItem().(tui.Tile); ok {
				m.machine.OpenCategory(tile.Label)
				m.refreshScreen()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.cats.list, cmd = m.cats.list.Update(msg)
	return m, cmd
}

func (m Model) viewCategories() string {
	sel := m.machine.Selection()
	onOther := m.machine.Screen() == nav.ScreenOtherCategories

	var title, subtitle string
	if onOther {
		title = "Boshqa adabiyotlar"
		subtitle = "Umumiy va qo'shimcha turkumlar"
	} else {
		title = sel.Department
		if sel.Affiliation == catalog.AffiliationExternal {
			subtitle = "Tashqi mualliflar"
		} else {
			subtitle = "Institut mualliflari"
		}
	}
	header := tui.StyleHeader.Render(title) + "\n" + tui.StyleHelp.Render(subtitle)

	parts := []string{header, "", m.cats.list.View()}

	if m.cats.addingCategory {
		parts = append(parts, "", tui.StyleHighlight.Render("Yangi turkum:"), m.cats.input.View())
	}
	if m.status != "" {
		parts = append(parts, tui.StyleError.Render(m.status))
	}

	shortcuts := []tui.ShortcutEntry{
		{Key: "enter", Label: "ochish"},
		{Key: "esc", Label: "orqaga"},
	}
	if onOther {
		shortcuts = append(shortcuts, tui.ShortcutEntry{Key: "n", Label: "yangi turkum"})
	}
	parts = append(parts, tui.RenderFooterBar(shortcuts))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}
