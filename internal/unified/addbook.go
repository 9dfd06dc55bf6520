package unified

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// addBookModel is the add-book form: free-text fields plus enum fields
// cycled with left/right.
type addBookModel struct {
	inputs  []textinput.Model
	typeIdx int
	deptIdx int
	affIdx  int
	permIdx int
	focused int // 0..len(inputs)-1 are text fields, then the enum rows
	errMsg  string
}

const (
	addFieldTitle = iota
	addFieldAuthor
	addFieldYear
	addFieldPlace
	addFieldCondition
	addFieldLink
	addTextFieldCount
)

const (
	addEnumType = addTextFieldCount + iota
	addEnumDept
	addEnumAffiliation
	addEnumPermission
	addFieldTotal
)

var addTextLabels = [addTextFieldCount]string{
	"Nomi", "Muallif", "Yili", "Nashr joyi", "Holati", "Havola",
}

// deptChoices is the fixed set plus the unassigned sentinel.
func deptChoices() []string {
	return append(append([]string{}, catalog.Departments...), catalog.DepartmentOther)
}

func newAddBookModel() addBookModel {
	a := addBookModel{inputs: make([]textinput.Model, addTextFieldCount)}

	const fieldWidth = 42
	placeholders := [addTextFieldCount]string{
		"Kitob nomi", "Muallif F.I.Sh.", "2026", "Toshkent", "Yangi", "https://…",
	}

	for i := range a.inputs {
		a.inputs[i] = textinput.New()
		a.inputs[i].Placeholder = placeholders[i]
		a.inputs[i].CharLimit = 200
		a.inputs[i].Width = fieldWidth
		a.inputs[i].Prompt = "│ "
	}
	a.inputs[addFieldYear].CharLimit = 4
	a.inputs[addFieldYear].Width = 8
	a.inputs[addFieldTitle].Focus()

	return a
}

func (a *addBookModel) resize(width, height int) {}

// book assembles the record from the form. The store assigns the id and
// server timestamp.
func (a addBookModel) book(addedBy string) catalog.Book {
	dept := deptChoices()[a.deptIdx]
	if dept == catalog.DepartmentOther {
		dept = "" // unassigned, resolves through the sentinel
	}
	perm := catalog.PermissionNotGranted
	if a.permIdx == 0 {
		perm = catalog.PermissionGranted
	}
	aff := catalog.AffiliationStaff
	if a.affIdx == 1 {
		aff = catalog.AffiliationExternal
	}

	return catalog.Book{
		Title:            strings.TrimSpace(a.inputs[addFieldTitle].Value()),
		Author:           strings.TrimSpace(a.inputs[addFieldAuthor].Value()),
		LiteratureType:   catalog.LiteratureTypes[a.typeIdx],
		Department:       dept,
		Year:             strings.TrimSpace(a.inputs[addFieldYear].Value()),
		Place:            strings.TrimSpace(a.inputs[addFieldPlace].Value()),
		Condition:        strings.TrimSpace(a.inputs[addFieldCondition].Value()),
		AuthorPermission: perm,
		Affiliation:      aff,
		Link:             strings.TrimSpace(a.inputs[addFieldLink].Value()),
		CreatedDate:      time.Now().UTC().Format("2006-01-02"),
		AddedBy:          addedBy,
	}
}

func (m Model) updateAddBook(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.machine.Back()
			m.refreshScreen()
			return m, nil
		case "tab", "down":
			m.add.cycleFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.add.cycleFocus(-1)
			return m, nil
		case "left", "right":
			if m.add.focused >= addTextFieldCount {
				m.add.cycleEnum(key.String() == "right")
				return m, nil
			}
		case "enter":
			if m.writing {
				return m, nil
			}
			book := m.add.book(m.sess.Staff)
			if err := catalog.Validate(book); err != nil {
				m.add.errMsg = err.Error()
				return m, nil
			}
			m.add.errMsg = ""
			m.writing = true
			return m, createBook(m.st, book)
		}
	}

	if m.add.focused < addTextFieldCount {
		var cmd tea.Cmd
		m.add.inputs[m.add.focused], cmd = m.add.inputs[m.add.focused].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (a *addBookModel) cycleFocus(delta int) {
	a.focused += delta
	if a.focused < 0 {
		a.focused = addFieldTotal - 1
	} else if a.focused >= addFieldTotal {
		a.focused = 0
	}
	for i := range a.inputs {
		if i == a.focused {
			a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
}

// cycleEnum steps the focused enum row through its choices.
func (a *addBookModel) cycleEnum(forward bool) {
	step := func(idx, n int) int {
		if forward {
			return (idx + 1) % n
		}
		return (idx + n - 1) % n
	}
	switch a.focused {
	case addEnumType:
		a.typeIdx = step(a.typeIdx, len(catalog.LiteratureTypes))
	case addEnumDept:
		a.deptIdx = step(a.deptIdx, len(deptChoices()))
	case addEnumAffiliation:
		a.affIdx = step(a.affIdx, 2)
	case addEnumPermission:
		a.permIdx = step(a.permIdx, 2)
	}
}

func (m Model) viewAddBook() string {
	a := m.add

	formLabel := lipgloss.NewStyle().
		Foreground(tui.ColorGray).
		Width(14).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(tui.ColorYellow).
		Bold(true).
		Width(14).
		Align(lipgloss.Right).
		PaddingRight(1)

	renderLabel := func(idx int, label string) string {
		if idx == a.focused {
			return formLabelActive.Render("› " + label)
		}
		return formLabel.Render(label)
	}

	var b strings.Builder
	b.WriteString(tui.StyleHeader.Render("Kitob qo'shish"))
	b.WriteString("\n")
	b.WriteString(tui.StyleHelp.Render(m.sess.Staff))
	b.WriteString("\n\n")

	if a.errMsg != "" {
		b.WriteString(tui.StyleError.Render(a.errMsg))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(tui.StyleCount.Render(m.status))
		b.WriteString("\n\n")
	}

	for i, label := range addTextLabels {
		b.WriteString(renderLabel(i, label))
		b.WriteString(a.inputs[i].View())
		b.WriteString("\n\n")
	}

	affLabels := []string{"Institut xodimi", "Tashqi muallif"}
	permLabels := []string{"Ruxsat berilgan", "Ruxsat berilmagan"}
	enumRows := []struct {
		idx   int
		label string
		value string
	}{
		{addEnumType, "Turi", catalog.LiteratureTypes[a.typeIdx]},
		{addEnumDept, "Kafedra", deptChoices()[a.deptIdx]},
		{addEnumAffiliation, "Muallif turi", affLabels[a.affIdx]},
		{addEnumPermission, "Ruxsat", permLabels[a.permIdx]},
	}
	for _, row := range enumRows {
		b.WriteString(renderLabel(row.idx, row.label))
		b.WriteString(tui.StyleCount.Render("‹ " + row.value + " ›"))
		b.WriteString("\n\n")
	}

	submitLabel := "saqlash"
	if m.writing {
		submitLabel = "saqlanmoqda…"
	}
	b.WriteString(tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "tab", Label: "maydonlar"},
		{Key: "←/→", Label: "tanlash"},
		{Key: "enter", Label: submitLabel},
		{Key: "esc", Label: "orqaga"},
	}))

	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(b.String())))
}
