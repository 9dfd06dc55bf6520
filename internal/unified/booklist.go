package unified

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/report"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// bookListModel is the scoped book list with export, act, edit, and
// delete actions.
type bookListModel struct {
	list       list.Model
	confirming bool // pending delete confirmation
}

func newBookListModel() bookListModel {
	d := tui.NewDelegate(tui.RenderBookItem)
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = tui.StyleHelp

	keys := tui.NewStandardKeys()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Search, keys.Back}
	}

	return bookListModel{list: l}
}

// refresh rebuilds the rows from the snapshot through the machine's
// filter, collation order included.
func (b *bookListModel) refresh(books []catalog.Book, f catalog.Filter) {
	scoped := f.Apply(books)
	items := make([]list.Item, len(scoped))
	for i, bk := range scoped {
		items[i] = tui.BookItem{Book: bk}
	}
	b.list.SetItems(items)
}

func (b *bookListModel) resize(width, height int) {
	w := width - 16
	if w < 60 {
		w = 60
	}
	h := height - 10
	if h < 5 {
		h = 5
	}
	b.list.SetSize(w, h)
}

func (b bookListModel) selected() *catalog.Book {
	if item, ok := b.list.SelectedItem().(tui.BookItem); ok {
		book := item.Book
		return &book
	}
	return nil
}

func (m Model) updateBookList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.books.list.FilterState() != list.Filtering {
		if m.books.confirming {
			switch key.String() {
			case "y", "Y", "enter":
				m.books.confirming = false
				if book := m.books.selected(); book != nil && !m.writing {
					m.writing = true
					return m, deleteBook(m.st, book.ID)
				}
			default:
				m.books.confirming = false
			}
			return m, nil
		}

		switch key.String() {
		case "esc", "backspace":
			m.machine.Back()
			m.refreshScreen()
			return m, nil
		case "e":
			if book := m.books.selected(); book != nil {
				edit := newEditModel(*book)
				m.edit = &edit
				return m, m.edit.init()
			}
			return m, nil
		case "d":
			if m.books.selected() != nil {
				m.books.confirming = true
			}
			return m, nil
		case "x":
			return m.exportCSV()
		case "a":
			return m.exportAct()
		}
	}

	var cmd tea.Cmd
	m.books.list, cmd = m.books.list.Update(msg)
	return m, cmd
}

// exportCSV writes the visible scope to a BOM-prefixed CSV file in the
// working directory.
func (m Model) exportCSV() (tea.Model, tea.Cmd) {
	sel := m.machine.Selection()
	books := m.machine.Filter().Apply(m.snap.Books)

	name := report.Filename(sel.Department, sel.LiteratureType, time.Now())
	f, err := os.Create(name)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	defer f.Close()

	if err := report.WriteCSV(f, books); err != nil {
		m.status = err.Error()
		return m, nil
	}
	abs, _ := filepath.Abs(name)
	m.status = "Eksport: " + abs
	m.log.Info("csv exported", zap.String("file", name), zap.Int("books", len(books)))
	return m, nil
}

// exportAct writes the print-ready act document for the visible scope.
func (m Model) exportAct() (tea.Model, tea.Cmd) {
	sel := m.machine.Selection()
	books := m.machine.Filter().Apply(m.snap.Books)

	name := strings.TrimSuffix(report.Filename(sel.Department, sel.LiteratureType, time.Now()), ".csv") + "_akt.txt"
	f, err := os.Create(name)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	defer f.Close()

	scope := report.Scope{
		Institute:      m.cfg.Institute.Name,
		Department:     sel.Department,
		LiteratureType: sel.LiteratureType,
		Date:           time.Now(),
	}
	if err := report.WriteAct(f, books, scope); err != nil {
		m.status = err.Error()
		return m, nil
	}
	abs, _ := filepath.Abs(name)
	m.status = "Akt: " + abs
	m.log.Info("act exported", zap.String("file", name), zap.Int("books", len(books)))
	return m, nil
}

func (m Model) viewBookList() string {
	sel := m.machine.Selection()

	title := sel.LiteratureType
	if title == "" {
		title = "Adabiyotlar"
	}
	scopeBits := []string{}
	if sel.Department != "" {
		scopeBits = append(scopeBits, sel.Department)
	}
	if sel.Affiliation == catalog.AffiliationExternal {
		scopeBits = append(scopeBits, "tashqi mualliflar")
	}
	header := tui.StyleHeader.Render(title)
	if len(scopeBits) > 0 {
		header += "\n" + tui.StyleHelp.Render(strings.Join(scopeBits, " · "))
	}
	header += "\n" + tui.StyleCount.Render(fmt.Sprintf("%d ta", len(m.books.list.Items())))

	parts := []string{header, "", m.books.list.View()}

	if m.books.confirming {
		parts = append(parts, tui.StyleError.Render("O'chirilsinmi? ")+tui.StyleHelp.Render("y/n"))
	} else if m.status != "" {
		maxStatus := m.width - 12
		if maxStatus < 20 {
			maxStatus = 20
		}
		parts = append(parts, tui.StyleCount.Render(xansi.Truncate(m.status, maxStatus, "…")))
	}

	parts = append(parts, tui.RenderFooterBar([]tui.ShortcutEntry{
		{Key: "/", Label: "qidirish"},
		{Key: "e", Label: "tahrirlash"},
		{Key: "d", Label: "o'chirish"},
		{Key: "x", Label: "CSV"},
		{Key: "a", Label: "akt"},
		{Key: "esc", Label: "orqaga"},
	}))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	outerStyle := lipgloss.NewStyle().Padding(1, 4)
	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(tui.StyleBorder.Render(innerPadding.Render(content)))
}
