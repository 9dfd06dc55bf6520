package unified

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// authorTypeModel is the two-way institute/external choice inside a
// department.
type authorTypeModel struct {
	cursor int
}

func newAuthorTypeModel() authorTypeModel {
	return authorTypeModel{}
}

var authorTypeChoices = []struct {
	affiliation string
	label       string
	desc        string
}{
	{catalog.AffiliationStaff, "Institut mualliflari", "Kafedra xodimlari yozgan adabiyotlar"},
	{catalog.AffiliationExternal, "Tashqi mualliflar", "Boshqa muassasalardan kelgan adabiyotlar"},
}

func (m Model) updateAuthorType(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "backspace":
			m.machine.Back()
			m.refreshScreen()
		case "up", "k", "down", "j", "tab":
			m.atype.cursor = 1 - m.atype.cursor
		case "enter":
			m.machine.ChooseAffiliation(authorTypeChoices[m.atype.cursor].affiliation)
			m.refreshScreen()
		}
	}
	return m, nil
}

func (m Model) viewAuthorType() string {
	sel := m.machine.Selection()

	// Counts per choice, scoped to the selected department.
	counts := make([]int, len(authorTypeChoices))
	for i, c := range authorTypeChoices {
		f := catalog.Filter{Department: sel.Department, Affiliation: c.affiliation}
		counts[i] = len(f.Apply(m.snap.Books))
	}

	header := tui.StyleHeader.Render(sel.Department) + "\n" +
		tui.StyleHelp.Render("Muallif turini tanlang")

	var rows []string
	for i, c := range authorTypeChoices {
		line := fmt.Sprintf("%-24s %s", c.label,
			tui.StyleCount.Render(fmt.Sprintf("%d ta", counts[i])))
		if i == m.atype.cursor {
			rows = append(rows, tui.StyleHighlight.Render("› "+line))
		} else {
			rows = append(rows, "  "+tui.StyleNormal.Render(line))
		}
		rows = append(rows, "  "+tui.StyleHelp.Render(c.desc), "")
	}

	parts := append([]string{header, ""}, rows...)
	parts = append(parts, tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "enter", Label: "tanlash"},
		{Key: "esc", Label: "orqaga"},
	}))
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}
