package nav_test

import (
	"testing"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/nav"
)

func TestInitialState(t *testing.T) {
	m := nav.New()
	if m.Screen() != nav.ScreenDashboard {
		t.Errorf("initial screen = %v, want dashboard", m.Screen())
	}
	if m.Selection() != (nav.Selection{}) {
		t.Errorf("initial selection = %+v, want empty", m.Selection())
	}
}

func TestDrillDownChain(t *testing.T) {
	m := nav.New()
	m.GoToMenu(nav.ScreenDepartments)
	m.EnterDepartment("Mexanika")
	if m.Screen() != nav.ScreenAuthorType {
		t.Fatalf("after EnterDepartment: %v", m.Screen())
	}
	m.ChooseAffiliation(catalog.AffiliationStaff)
	if m.Screen() != nav.ScreenDepartmentDetail {
		t.Fatalf("after ChooseAffiliation: %v", m.Screen())
	}
	m.OpenCategory("Darslik")
	if m.Screen() != nav.ScreenBookList {
		t.Fatalf("after OpenCategory: %v", m.Screen())
	}

	sel := m.Selection()
	if sel.Department != "Mexanika" || sel.Affiliation != catalog.AffiliationStaff || sel.LiteratureType != "Darslik" {
		t.Errorf("selection = %+v", sel)
	}
}

func TestBack_FromDepartmentDetail(t *testing.T) {
	m := nav.New()
	m.GoToMenu(nav.ScreenDepartments)
	m.EnterDepartment("Mexanika")
	m.ChooseAffiliation(catalog.AffiliationStaff)

	m.Back()
	if m.Screen() != nav.ScreenAuthorType {
		t.Errorf("back from detail = %v, want author-type (not dashboard)", m.Screen())
	}
	if m.Selection().Affiliation != "" {
		t.Errorf("affiliation not unwound: %+v", m.Selection())
	}
	if m.Selection().Department != "Mexanika" {
		t.Errorf("department lost on back: %+v", m.Selection())
	}
}

func TestBack_FromBookList_WithDepartment(t *testing.T) {
	m := nav.New()
	m.GoToMenu(nav.ScreenDepartments)
	m.EnterDepartment("Energetika")
	m.ChooseAffiliation(catalog.AffiliationExternal)
	m.OpenCategory("Monografiya")

	m.Back()
	if m.Screen() != nav.ScreenDepartmentDetail {
		t.Errorf("back from book list = %v, want department-detail", m.Screen())
	}
	if m.Selection().LiteratureType != "" {
		t.Errorf("literature type not cleared: %+v", m.Selection())
	}
}

func TestBack_FromBookList_OtherCatalog(t *testing.T) {
	m := nav.New()
	m.GoToMenu(nav.ScreenOtherCategories)
	if m.Selection().Department != catalog.DepartmentOther {
		t.Fatalf("other catalog did not scope department: %+v", m.Selection())
	}
	m.OpenCategory("Lug'at")

	m.Back()
	if m.Screen() != nav.ScreenOtherCategories {
		t.Errorf("back from other book list = %v, want other-categories", m.Screen())
	}
}

func TestMenuTransitionClearsSelection(t *testing.T) {
	m := nav.New()
	m.GoToMenu(nav.ScreenDepartments)
	m.EnterDepartment("Mexanika")
	m.ChooseAffiliation(catalog.AffiliationStaff)
	m.OpenCategory("Darslik")

	m.GoToMenu(nav.ScreenStaffRoom)
	if m.Screen() != nav.ScreenStaffRoom {
		t.Fatalf("screen = %v", m.Screen())
	}
	if m.Selection() != (nav.Selection{}) {
		t.Errorf("stale selection leaked into menu screen: %+v", m.Selection())
	}
}

func TestMenuRejectsDrillDownTargets(t *testing.T) {
	m := nav.New()
	m.GoToMenu(nav.ScreenBookList)
	if m.Screen() != nav.ScreenDashboard {
		t.Errorf("drill-down screen reachable via menu: %v", m.Screen())
	}
}

func TestDrillDownGuards(t *testing.T) {
	m := nav.New()
	// Not on the departments grid: no-op.
	m.EnterDepartment("Mexanika")
	if m.Screen() != nav.ScreenDashboard {
		t.Errorf("EnterDepartment from dashboard moved to %v", m.Screen())
	}
	m.ChooseAffiliation(catalog.AffiliationStaff)
	if m.Screen() != nav.ScreenDashboard {
		t.Errorf("ChooseAffiliation from dashboard moved to %v", m.Screen())
	}
	m.OpenCategory("Darslik")
	if m.Screen() != nav.ScreenDashboard {
		t.Errorf("OpenCategory from dashboard moved to %v", m.Screen())
	}
}

func TestFilterFromSelection(t *testing.T) {
	m := nav.New()
	m.GoToMenu(nav.ScreenDepartments)
	m.EnterDepartment("Mexanika")
	m.ChooseAffiliation(catalog.AffiliationStaff)
	m.OpenCategory("Darslik")

	f := m.Filter()
	if f.Department != "Mexanika" || f.LiteratureType != "Darslik" || f.Affiliation != catalog.AffiliationStaff {
		t.Errorf("filter = %+v", f)
	}
	if f.Search != "" {
		t.Error("machine filter must not carry search text")
	}
}
