package unified

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// viewStaffRoom renders per-staff daily activity from the roster.
func (m Model) viewStaffRoom() string {
	now := time.Now().UTC()
	activity := catalog.StaffDailyActivity(m.snap.Books, m.cfg.Staff, now)

	header := tui.StyleHeader.Render("Xodimlar xonasi") + "\n" +
		tui.StyleHelp.Render(now.Format("02.01.2006"))

	var rows []string
	rows = append(rows, tui.StyleHelp.Render(
		fmt.Sprintf("%-26s %8s %10s", "Xodim", "Bugun", "Jami")))

	for _, a := range activity {
		line := fmt.Sprintf("%-26s %8d %10d", a.Name, a.Today, a.AllTime)
		if a.Name == m.sess.Staff {
			rows = append(rows, tui.StyleHighlight.Render(line))
		} else {
			rows = append(rows, tui.StyleNormal.Render(line))
		}
		if a.Today > 0 {
			var bits []string
			for _, t := range catalog.LiteratureTypes {
				if c := a.TodayByType[t]; c > 0 {
					bits = append(bits, fmt.Sprintf("%s %d", t, c))
				}
			}
			if c := a.TodayByType[catalog.TypeOther]; c > 0 {
				bits = append(bits, fmt.Sprintf("%s %d", catalog.TypeOther, c))
			}
			if len(bits) > 0 {
				rows = append(rows, tui.StyleHelp.Render("    "+strings.Join(bits, "  ")))
			}
		}
	}

	parts := []string{header, ""}
	parts = append(parts, rows...)
	parts = append(parts, "", tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "esc", Label: "orqaga"},
	}))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}
