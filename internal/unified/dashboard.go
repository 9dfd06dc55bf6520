package unified

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// dashModel holds the dashboard menu list. The stat cards above it are
// recomputed from the snapshot on every render.
type dashModel struct {
	list list.Model
}

func newDashModel() dashModel {
	menu := tui.MenuItems()
	items := make([]list.Item, len(menu))
	for i, it := range menu {
		items[i] = it
	}

	d := tui.NewSpacedDelegate(tui.RenderMenuItem, 1)
	l := list.New(items, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.HelpStyle = tui.StyleHelp

	keys := tui.NewStandardKeys()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}

	return dashModel{list: l}
}

func (d *dashModel) resize(width, height int) {
	w := width - 16
	if w < 40 {
		w = 40
	}
	h := height - 16
	if h < 5 {
		h = 5
	}
	d.list.SetSize(w, h)
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc":
			m.cancel()
			return m, tea.Quit
		case "enter":
			if item, ok := m.dash.list.SelectedItem().(tui.MenuItem); ok {
				m.goTo(item.Target)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dash.list, cmd = m.dash.list.Update(msg)
	return m, cmd
}

func (m Model) viewDashboard() string {
	stats := catalog.AggregateStats(m.snap.Books)
	today := catalog.AddedOn(m.snap.Books, time.Now().UTC())

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Jami adabiyotlar", fmt.Sprintf("%d", stats.Total)),
		statCard("Bugun qo'shilgan", fmt.Sprintf("%d", today)),
		statCard("Institut / tashqi", fmt.Sprintf("%d / %d", stats.ByAffiliation.Staff, stats.ByAffiliation.External)),
		statCard("Xodimlar", fmt.Sprintf("%d", stats.Contributors)),
	)

	header := tui.StyleHeader.Render(m.cfg.Institute.Name) + "\n" +
		tui.StyleHelp.Render(m.sess.Staff)

	parts := []string{header, "", cards}
	if top := topTypesLine(stats); top != "" {
		parts = append(parts, tui.StyleHelp.Render("Ko'p uchraydigan turlar: ")+tui.StyleCount.Render(top))
	}
	parts = append(parts, "", m.dash.list.View())
	if m.status != "" {
		parts = append(parts, tui.StyleCount.Render(m.status))
	}
	parts = append(parts, tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "enter", Label: "tanlash"},
		{Key: "q", Label: "chiqish"},
	}))
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}

// statCard renders one bordered dashboard card.
func statCard(label, value string) string {
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tui.ColorGray).
		Padding(0, 2).
		MarginRight(1)

	body := tui.StyleCount.Bold(true).Render(value) + "\n" +
		tui.StyleHelp.Render(label)
	return card.Render(body)
}

// topTypesLine summarizes the most common literature types for the
// dashboard subtitle.
func topTypesLine(stats catalog.Stats) string {
	type kv struct {
		name  string
		count int
	}
	var pairs []kv
	for _, t := range catalog.LiteratureTypes {
		if c := stats.ByLiteratureType[t]; c > 0 {
			pairs = append(pairs, kv{t, c})
		}
	}
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[j].count > pairs[i].count {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			}
		}
	}
	if len(pairs) > 3 {
		pairs = pairs[:3]
	}
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = fmt.Sprintf("%s %d", p.name, p.count)
	}
	return strings.Join(out, "  ")
}
