package unified

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jizpi-library/fondctl/internal/config"
	"github.com/jizpi-library/fondctl/internal/nav"
	"github.com/jizpi-library/fondctl/internal/session"
	"github.com/jizpi-library/fondctl/internal/store"
	"github.com/jizpi-library/fondctl/internal/tui"
)

// phase tracks the pre-navigation screens. The nav machine only takes
// over once a session with a staff identity exists.
type phase int

const (
	phaseLogin phase = iota
	phaseStaff
	phaseMain
)

// Model is the TUI orchestrator. It owns the session, the navigation
// machine, the latest store snapshot, and one sub-state per screen.
type Model struct {
	cfg      *config.Config
	st       *store.Store
	log      *zap.Logger
	sessPath string
	sess     session.Session

	machine *nav.Machine
	snap    store.Snapshot
	snapCh  <-chan store.Snapshot
	cancel  context.CancelFunc

	phase  phase
	width  int
	height int

	login tui.LoginForm
	staff staffModel
	dash  dashModel
	depts deptsModel
	atype authorTypeModel
	cats  catsModel
	books bookListModel
	add   addBookModel

	// edit is the modal overlay over the book list; nil when closed.
	edit *editModel

	// writing guards the single in-flight store write: while true every
	// submitting control is disabled.
	writing bool
	status  string
}

// New builds the orchestrator and starts the store watcher.
func New(cfg *config.Config, st *store.Store, log *zap.Logger, sessPath string) (Model, error) {
	sess, err := session.Load(sessPath)
	if err != nil {
		return Model{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := st.Watch(ctx)
	if err != nil {
		cancel()
		return Model{}, fmt.Errorf("starting store watch: %w", err)
	}

	snap, err := st.Snapshot()
	if err != nil {
		cancel()
		return Model{}, fmt.Errorf("reading initial snapshot: %w", err)
	}

	m := Model{
		cfg:      cfg,
		st:       st,
		log:      log,
		sessPath: sessPath,
		sess:     sess,
		machine:  nav.New(),
		snap:     snap,
		snapCh:   ch,
		cancel:   cancel,
		login:    tui.NewLoginForm(),
		staff:    newStaffModel(cfg.Staff),
		dash:     newDashModel(),
		depts:    newDeptsModel(),
		atype:    newAuthorTypeModel(),
		cats:     newCatsModel(),
		books:    newBookListModel(),
		add:      newAddBookModel(),
	}

	switch {
	case !sess.Active():
		m.phase = phaseLogin
	case sess.Staff == "":
		m.phase = phaseStaff
	default:
		m.phase = phaseMain
	}

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitSnapshot(m.snapCh), m.login.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case snapshotMsg:
		m.snap = store.Snapshot(msg)
		m.refreshScreen()
		return m, waitSnapshot(m.snapCh)

	case snapshotClosedMsg:
		return m, nil

	case writeDoneMsg:
		return m.handleWriteDone(msg)

	case QuitAppMsg:
		m.cancel()
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
	}

	switch m.phase {
	case phaseLogin:
		return m.updateLogin(msg)
	case phaseStaff:
		return m.updateStaff(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m Model) View() string {
	switch m.phase {
	case phaseLogin:
		return m.login.View(m.cfg.Institute.Name)
	case phaseStaff:
		return m.viewStaff()
	}

	if m.edit != nil {
		return m.edit.view(m.width)
	}

	switch m.machine.Screen() {
	case nav.ScreenDashboard:
		return m.viewDashboard()
	case nav.ScreenDepartments:
		return m.viewDepartments()
	case nav.ScreenAuthorType:
		return m.viewAuthorType()
	case nav.ScreenDepartmentDetail, nav.ScreenOtherCategories:
		return m.viewCategories()
	case nav.ScreenBookList:
		return m.viewBookList()
	case nav.ScreenAddBook:
		return m.viewAddBook()
	case nav.ScreenStaffRoom:
		return m.viewStaffRoom()
	case nav.ScreenOverallStats:
		return m.viewOverallStats()
	default:
		return ""
	}
}

// updateMain routes key events to the active screen once logged in.
func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.edit != nil {
		return m.updateEdit(msg)
	}

	switch m.machine.Screen() {
	case nav.ScreenDashboard:
		return m.updateDashboard(msg)
	case nav.ScreenDepartments:
		return m.updateDepartments(msg)
	case nav.ScreenAuthorType:
		return m.updateAuthorType(msg)
	case nav.ScreenDepartmentDetail, nav.ScreenOtherCategories:
		return m.updateCategories(msg)
	case nav.ScreenBookList:
		return m.updateBookList(msg)
	case nav.ScreenAddBook:
		return m.updateAddBook(msg)
	case nav.ScreenStaffRoom, nav.ScreenOverallStats:
		return m.updateReadOnly(msg)
	default:
		return m, nil
	}
}

// updateReadOnly handles the screens with no interactive state beyond
// back navigation.
func (m Model) updateReadOnly(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "backspace", "q":
			m.machine.Back()
			m.refreshScreen()
		}
	}
	return m, nil
}

// handleWriteDone finishes the single in-flight write: failures surface
// on the status line with state otherwise unchanged.
func (m Model) handleWriteDone(msg writeDoneMsg) (tea.Model, tea.Cmd) {
	m.writing = false
	if msg.err != nil {
		m.status = msg.err.Error()
		m.log.Warn("store write failed", zap.Error(msg.err))
		return m, nil
	}
	m.status = ""

	// A successful add-book submit returns to the dashboard; a
	// successful edit closes the modal. The snapshot itself arrives
	// through the watcher.
	if m.edit != nil {
		m.edit = nil
	}
	if m.machine.Screen() == nav.ScreenAddBook {
		m.add = newAddBookModel()
		m.add.resize(m.width, m.height)
		m.status = "Kitob qo'shildi"
	}
	if m.cats.addingCategory {
		m.cats.addingCategory = false
		m.cats.input.Reset()
	}
	return m, nil
}

// goTo drives a menu-level transition and rebuilds the target screen.
func (m *Model) goTo(s nav.Screen) {
	m.machine.GoToMenu(s)
	m.status = ""
	m.refreshScreen()
}

// refreshScreen rebuilds the active screen's list items from the
// current snapshot and selection.
func (m *Model) refreshScreen() {
	switch m.machine.Screen() {
	case nav.ScreenDepartments:
		m.depts.refresh(m.snap.Books)
	case nav.ScreenDepartmentDetail, nav.ScreenOtherCategories:
		m.cats.refresh(m.snap, m.machine.Selection(), m.machine.Screen())
	case nav.ScreenBookList:
		m.books.refresh(m.snap.Books, m.machine.Filter())
	}
}

// resize propagates the terminal size to every component.
func (m *Model) resize() {
	m.staff.resize(m.width, m.height)
	m.dash.resize(m.width, m.height)
	m.depts.resize(m.width, m.height)
	m.cats.resize(m.width, m.height)
	m.books.resize(m.width, m.height)
	m.add.resize(m.width, m.height)
}
