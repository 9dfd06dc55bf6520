package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginForm is an embeddable email/password form. The orchestrator owns
// the surrounding program; the form only reports what was typed.
type LoginForm struct {
	inputs  []textinput.Model
	focused int
	errMsg  string
}

const (
	loginFieldEmail = iota
	loginFieldPassword
)

// NewLoginForm creates the form with the email field focused.
func NewLoginForm() LoginForm {
	f := LoginForm{inputs: make([]textinput.Model, 2)}

	const fieldWidth = 36

	f.inputs[loginFieldEmail] = textinput.New()
	f.inputs[loginFieldEmail].Placeholder = "email@jizpi.uz"
	f.inputs[loginFieldEmail].Focus()
	f.inputs[loginFieldEmail].CharLimit = 100
	f.inputs[loginFieldEmail].Width = fieldWidth
	f.inputs[loginFieldEmail].Prompt = "│ "

	f.inputs[loginFieldPassword] = textinput.New()
	f.inputs[loginFieldPassword].Placeholder = "parol"
	f.inputs[loginFieldPassword].CharLimit = 100
	f.inputs[loginFieldPassword].Width = fieldWidth
	f.inputs[loginFieldPassword].Prompt = "│ "
	f.inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[loginFieldPassword].EchoCharacter = '•'

	return f
}

// Init returns the cursor blink command.
func (f LoginForm) Init() tea.Cmd {
	return textinput.Blink
}

// SetError shows an error line under the fields, typically a rejected
// login.
func (f *LoginForm) SetError(msg string) {
	f.errMsg = msg
}

// Values returns the current email and password.
func (f LoginForm) Values() (email, password string) {
	return strings.TrimSpace(f.inputs[loginFieldEmail].Value()),
		f.inputs[loginFieldPassword].Value()
}

// Update handles key events. submitted is true when the user pressed
// enter on the last field.
func (f LoginForm) Update(msg tea.Msg) (LoginForm, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if f.focused == loginFieldPassword {
				return f, nil, true
			}
			f.cycleFocus(1)
			return f, nil, false
		case "tab", "down":
			f.cycleFocus(1)
			return f, nil, false
		case "shift+tab", "up":
			f.cycleFocus(-1)
			return f, nil, false
		}
	}

	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return f, tea.Batch(cmds...), false
}

func (f *LoginForm) cycleFocus(delta int) {
	f.focused += delta
	if f.focused < 0 {
		f.focused = len(f.inputs) - 1
	} else if f.focused >= len(f.inputs) {
		f.focused = 0
	}
	for i := range f.inputs {
		if i == f.focused {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// View renders the form inside the standard bordered box.
func (f LoginForm) View(institute string) string {
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(8).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(8).
		Align(lipgloss.Right).
		PaddingRight(1)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(institute))
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render("Elektron kutubxona fondi"))
	b.WriteString("\n\n")

	labels := []string{"Email", "Parol"}
	for i, label := range labels {
		if i == f.focused {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}

	if f.errMsg != "" {
		b.WriteString(StyleError.Render(f.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "tab", Label: "maydonlar"},
		{Key: "enter", Label: "kirish"},
		{Key: "ctrl+c", Label: "chiqish"},
	}))

	outerStyle := lipgloss.NewStyle().Padding(2, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(b.String())))
}
