// Package nav holds the screen navigation state machine. It is pure
// state bookkeeping with no terminal dependency: the TUI asks the
// machine where it is and drives transitions from key events.
package nav

import "github.com/jizpi-library/fondctl/internal/catalog"

// Screen identifies one navigation state.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenDepartments
	ScreenAuthorType
	ScreenDepartmentDetail
	ScreenOtherCategories
	ScreenBookList
	ScreenAddBook
	ScreenStaffRoom
	ScreenOverallStats
)

// String returns the screen name for logs and tests.
func (s Screen) String() string {
	switch s {
	case ScreenDashboard:
		return "dashboard"
	case ScreenDepartments:
		return "departments"
	case ScreenAuthorType:
		return "author-type"
	case ScreenDepartmentDetail:
		return "department-detail"
	case ScreenOtherCategories:
		return "other-categories"
	case ScreenBookList:
		return "book-list"
	case ScreenAddBook:
		return "add-book"
	case ScreenStaffRoom:
		return "staff-room"
	case ScreenOverallStats:
		return "overall-stats"
	default:
		return "unknown"
	}
}

// Selection is the scoping chain accumulated while drilling into a
// department. Empty fields mean "no constraint".
type Selection struct {
	Department     string
	Affiliation    string
	LiteratureType string
}

// Machine tracks the active screen and the current selection. The
// invariant it protects: selections never survive a top-level menu
// transition, so stale scoping cannot leak into unrelated screens.
type Machine struct {
	screen Screen
	sel    Selection
}

// New returns a machine positioned on the dashboard.
func New() *Machine {
	return &Machine{screen: ScreenDashboard}
}

func (m *Machine) Screen() Screen       { return m.screen }
func (m *Machine) Selection() Selection { return m.sel }

// GoToMenu enters a top-level screen from the menu, clearing every
// scoping selection. Entering the "other" catalog scopes the department
// to the sentinel so that its book lists cover unassigned books.
func (m *Machine) GoToMenu(s Screen) {
	switch s {
	case ScreenDashboard, ScreenDepartments, ScreenOtherCategories,
		ScreenAddBook, ScreenStaffRoom, ScreenOverallStats:
	default:
		return // drill-down screens are not menu targets
	}
	m.sel = Selection{}
	if s == ScreenOtherCategories {
		m.sel.Department = catalog.DepartmentOther
	}
	m.screen = s
}

// EnterDepartment moves from the department grid to author-type
// selection for the chosen department.
func (m *Machine) EnterDepartment(department string) {
	if m.screen != ScreenDepartments {
		return
	}
	m.sel = Selection{Department: department}
	m.screen = ScreenAuthorType
}

// ChooseAffiliation moves from author-type selection to the department
// detail grid.
func (m *Machine) ChooseAffiliation(affiliation string) {
	if m.screen != ScreenAuthorType {
		return
	}
	m.sel.Affiliation = affiliation
	m.screen = ScreenDepartmentDetail
}

// OpenCategory moves from a category grid to the scoped book list.
func (m *Machine) OpenCategory(literatureType string) {
	if m.screen != ScreenDepartmentDetail && m.screen != ScreenOtherCategories {
		return
	}
	m.sel.LiteratureType = literatureType
	m.screen = ScreenBookList
}

// Back steps one level up the drill-down chain, unwinding the selection
// as it goes.
func (m *Machine) Back() {
	switch m.screen {
	case ScreenBookList:
		m.sel.LiteratureType = ""
		if m.sel.Department != "" && m.sel.Department != catalog.DepartmentOther {
			m.screen = ScreenDepartmentDetail
		} else {
			m.screen = ScreenOtherCategories
		}
	case ScreenDepartmentDetail:
		m.sel.Affiliation = ""
		m.screen = ScreenAuthorType
	case ScreenAuthorType:
		m.sel = Selection{}
		m.screen = ScreenDepartments
	case ScreenOtherCategories:
		m.sel = Selection{}
		m.screen = ScreenDashboard
	case ScreenDepartments, ScreenAddBook, ScreenStaffRoom, ScreenOverallStats:
		m.sel = Selection{}
		m.screen = ScreenDashboard
	}
}

// Filter translates the current selection into a catalog filter.
func (m *Machine) Filter() catalog.Filter {
	return catalog.Filter{
		Department:     m.sel.Department,
		LiteratureType: m.sel.LiteratureType,
		Affiliation:    m.sel.Affiliation,
	}
}
