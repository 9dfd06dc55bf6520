package unified

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// editModel is the modal overlay for editing a book. It lives on the
// orchestrator next to the nav machine, never as a machine state.
type editModel struct {
	book    catalog.Book
	inputs  []textinput.Model
	focused int
	errMsg  string
}

const (
	editFieldTitle = iota
	editFieldAuthor
	editFieldType
	editFieldYear
	editFieldPlace
	editFieldCondition
	editFieldLink
	editFieldCount
)

var editFieldLabels = [editFieldCount]string{
	"Nomi", "Muallif", "Turi", "Yili", "Nashr joyi", "Holati", "Havola",
}

func newEditModel(book catalog.Book) editModel {
	e := editModel{book: book, inputs: make([]textinput.Model, editFieldCount)}

	const fieldWidth = 42
	values := [editFieldCount]string{
		book.Title, book.Author, book.LiteratureType, book.Year,
		book.Place, book.Condition, book.Link,
	}

	for i := range e.inputs {
		e.inputs[i] = textinput.New()
		e.inputs[i].SetValue(values[i])
		e.inputs[i].CharLimit = 200
		e.inputs[i].Width = fieldWidth
		e.inputs[i].Prompt = "│ "
	}
	e.inputs[editFieldYear].CharLimit = 4
	e.inputs[editFieldYear].Width = 8
	e.inputs[editFieldTitle].Focus()

	return e
}

func (e editModel) init() tea.Cmd {
	return textinput.Blink
}

// patch builds the partial update from the form values.
func (e editModel) patch() catalog.Patch {
	strptr := func(s string) *string { return &s }
	return catalog.Patch{
		Title:          strptr(strings.TrimSpace(e.inputs[editFieldTitle].Value())),
		Author:         strptr(strings.TrimSpace(e.inputs[editFieldAuthor].Value())),
		LiteratureType: strptr(strings.TrimSpace(e.inputs[editFieldType].Value())),
		Year:           strptr(strings.TrimSpace(e.inputs[editFieldYear].Value())),
		Place:          strptr(strings.TrimSpace(e.inputs[editFieldPlace].Value())),
		Condition:      strptr(strings.TrimSpace(e.inputs[editFieldCondition].Value())),
		Link:           strptr(strings.TrimSpace(e.inputs[editFieldLink].Value())),
	}
}

// updateEdit routes events into the modal while it is open.
func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.edit = nil
			return m, nil
		case "enter":
			if m.writing {
				return m, nil
			}
			title := strings.TrimSpace(m.edit.inputs[editFieldTitle].Value())
			if title == "" {
				m.edit.errMsg = "Nomi bo'sh bo'lishi mumkin emas"
				return m, nil
			}
			m.writing = true
			return m, updateBook(m.st, m.edit.book.ID, m.edit.patch())
		case "tab", "down":
			m.edit.cycleFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.edit.cycleFocus(-1)
			return m, nil
		}
	}

	cmds := make([]tea.Cmd, len(m.edit.inputs))
	for i := range m.edit.inputs {
		m.edit.inputs[i], cmds[i] = m.edit.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (e *editModel) cycleFocus(delta int) {
	e.focused += delta
	if e.focused < 0 {
		e.focused = len(e.inputs) - 1
	} else if e.focused >= len(e.inputs) {
		e.focused = 0
	}
	for i := range e.inputs {
		if i == e.focused {
			e.inputs[i].Focus()
		} else {
			e.inputs[i].Blur()
		}
	}
}

func (e editModel) view(width int) string {
	formLabel := lipgloss.NewStyle().
		Foreground(tui.ColorGray).
		Width(12).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(tui.ColorYellow).
		Bold(true).
		Width(12).
		Align(lipgloss.Right).
		PaddingRight(1)

	var b strings.Builder
	b.WriteString(tui.StyleHeader.Render("Kitobni tahrirlash"))
	b.WriteString("\n")
	b.WriteString(tui.StyleHelp.Render(e.book.ID))
	b.WriteString("\n\n")

	if e.errMsg != "" {
		b.WriteString(tui.StyleError.Render(e.errMsg))
		b.WriteString("\n\n")
	}

	for i, label := range editFieldLabels {
		if i == e.focused {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(e.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "tab", Label: "maydonlar"},
		{Key: "enter", Label: "saqlash"},
		{Key: "esc", Label: "bekor qilish"},
	}))

	outerStyle := lipgloss.NewStyle().Padding(2, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(b.String())))
}
