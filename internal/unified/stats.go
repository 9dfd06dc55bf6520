package unified

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// viewOverallStats renders the fund-wide distributions and the growth
// area chart.
func (m Model) viewOverallStats() string {
	stats := catalog.AggregateStats(m.snap.Books)
	growth := catalog.DailyGrowth(m.snap.Books)

	header := tui.StyleHeader.Render("Umumiy statistika") + "\n" +
		tui.StyleHelp.Render(fmt.Sprintf("Jami %d ta adabiyot, %d xodim",
			stats.Total, stats.Contributors))

	barWidth := m.width / 3
	if barWidth < 20 {
		barWidth = 20
	}
	if barWidth > 40 {
		barWidth = 40
	}

	var parts []string
	parts = append(parts, header, "")

	parts = append(parts, tui.StyleHeader.Render("Adabiyot turlari"))
	maxType := 0
	for _, t := range catalog.LiteratureTypes {
		if stats.ByLiteratureType[t] > maxType {
			maxType = stats.ByLiteratureType[t]
		}
	}
	for _, t := range catalog.LiteratureTypes {
		parts = append(parts, tui.RenderBarRow(t, stats.ByLiteratureType[t], maxType, barWidth))
	}
	if n := stats.ByLiteratureType[catalog.TypeOther]; n > 0 {
		parts = append(parts, tui.RenderBarRow(catalog.TypeOther, n, maxType, barWidth))
	}

	parts = append(parts, "", tui.StyleHeader.Render("Kafedralar"))
	maxDept := 0
	deptKeys := append(append([]string{}, catalog.Departments...), catalog.DepartmentOther)
	for _, d := range deptKeys {
		if stats.ByDepartment[d] > maxDept {
			maxDept = stats.ByDepartment[d]
		}
	}
	for _, d := range deptKeys {
		parts = append(parts, tui.RenderBarRow(d, stats.ByDepartment[d], maxDept, barWidth))
	}

	parts = append(parts, "", tui.StyleHeader.Render("Fond o'sishi"))
	if len(growth) == 0 {
		parts = append(parts, tui.StyleHelp.Render("(ma'lumot yo'q)"))
	} else {
		totals := make([]int, len(growth))
		for i, p := range growth {
			totals[i] = p.Total
		}
		parts = append(parts, tui.RenderGrowthArea(totals, 6))
		first := growth[0]
		last := growth[len(growth)-1]
		parts = append(parts, tui.StyleHelp.Render(
			fmt.Sprintf("%s … %s (jami %d)", first.Date, last.Date, last.Total)))
	}

	parts = append(parts, "", tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "esc", Label: "orqaga"},
	}))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}
