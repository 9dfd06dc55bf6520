package unified

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jizpi-library/fondctl/internal/nav"
	"github.com/jizpi-library/fondctl/internal/session"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// updateLogin handles the email/password phase. A successful stub login
// persists the session and moves on to staff selection.
func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd, submitted := m.login.Update(msg)
	m.login = form
	if !submitted {
		return m, cmd
	}

	email, password := m.login.Values()
	sess, err := session.Login(email, password)
	if err != nil {
		m.login.SetError(err.Error())
		return m, cmd
	}

	if err := session.Save(m.sessPath, sess); err != nil {
		m.login.SetError(fmt.Sprintf("sessiyani saqlab bo'lmadi: %v", err))
		return m, cmd
	}

	m.sess = sess
	m.phase = phaseStaff
	m.log.Info("logged in", zap.String("email", sess.Email), zap.String("role", sess.Role))
	return m, cmd
}

// staffItem is one roster entry in the staff picker.
type staffItem string

func (s staffItem) FilterValue() string { return string(s) }

type staffModel struct {
	list list.Model
}

func newStaffModel(names []string) staffModel {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = staffItem(n)
	}

	d := tui.NewDelegate(renderStaffItem)
	l := list.New(items, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = tui.StyleHelp

	return staffModel{list: l}
}

func renderStaffItem(w io.Writer, m list.Model, index int, item list.Item) {
	name, ok := item.(staffItem)
	if !ok {
		return
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, tui.StyleHighlight.Render("› "+string(name)))
	} else {
		_, _ = fmt.Fprint(w, "  "+tui.StyleNormal.Render(string(name)))
	}
}

func (s *staffModel) resize(width, height int) {
	w := width - 16
	if w < 40 {
		w = 40
	}
	h := height - 10
	if h < 5 {
		h = 5
	}
	s.list.SetSize(w, h)
}

// updateStaff handles the staff-identity picker shown after login.
func (m Model) updateStaff(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.staff.list.FilterState() != list.Filtering {
		switch key.String() {
		case "enter":
			if item, ok := m.staff.list.SelectedItem().(staffItem); ok {
				m.sess.Staff = string(item)
				if err := session.Save(m.sessPath, m.sess); err != nil {
					m.status = err.Error()
					return m, nil
				}
				m.phase = phaseMain
				m.goTo(nav.ScreenDashboard)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.staff.list, cmd = m.staff.list.Update(msg)
	return m, cmd
}

func (m Model) viewStaff() string {
	header := tui.StyleHeader.Render("Xodimni tanlang") + "\n" +
		tui.StyleHelp.Render(m.sess.Email) + "\n"

	content := lipgloss.JoinVertical(lipgloss.Left, header, m.staff.list.View())

	outerStyle := lipgloss.NewStyle().Padding(2, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}
