package catalog_test

import (
	"testing"
	"time"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func TestGroupCategoryCounts_DepartmentScope(t *testing.T) {
	books := []catalog.Book{
		{ID: "1", Title: "Aviatsiya", Author: "A.A", Department: "Mexanika", LiteratureType: "Darslik"},
		{ID: "2", Title: "Botanika", Author: "B.B", Department: "Mexanika", LiteratureType: "Risola"},
	}
	counts := catalog.GroupCategoryCounts(books, "Mexanika")
	if counts["Darslik"] != 1 || counts["Risola"] != 1 {
		t.Errorf("Darslik=%d Risola=%d, want 1 and 1", counts["Darslik"], counts["Risola"])
	}
	// Every other fixed type is retained at zero.
	for _, typ := range catalog.LiteratureTypes {
		if typ == "Darslik" || typ == "Risola" {
			continue
		}
		if n, ok := counts[typ]; !ok || n != 0 {
			t.Errorf("counts[%q] = %d (present=%v), want 0 and present", typ, n, ok)
		}
	}
}

func TestGroupCategoryCounts_SumEqualsTotal(t *testing.T) {
	books := sampleBooks() // all literature types within the fixed set
	counts := catalog.GroupCategoryCounts(books, "")
	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != len(books) {
		t.Errorf("sum of counts = %d, want %d", sum, len(books))
	}
}

func TestGroupCategoryCounts_UnknownTypeGoesToCatchAll(t *testing.T) {
	books := []catalog.Book{
		{ID: "1", LiteratureType: "Darslik"},
		{ID: "2", LiteratureType: "Qo'lyozma"}, // not in the fixed set
	}
	counts := catalog.GroupCategoryCounts(books, "")
	if counts[catalog.TypeOther] != 1 {
		t.Errorf("catch-all = %d, want 1", counts[catalog.TypeOther])
	}
	if _, ok := counts["Qo'lyozma"]; ok {
		t.Error("unknown type leaked into counts as its own key")
	}
}

func TestListDepartments_CountMatchesFilter(t *testing.T) {
	books := sampleBooks()
	for _, s := range catalog.ListDepartments(books) {
		f := catalog.Filter{Department: s.Department}
		if got := len(f.Apply(books)); got != s.Count {
			t.Errorf("%s: summary count %d, filter count %d", s.Department, s.Count, got)
		}
	}
}

func TestListDepartments_MostRecent(t *testing.T) {
	books := sampleBooks()
	for _, s := range catalog.ListDepartments(books) {
		if s.Department != "Mexanika" {
			continue
		}
		if s.MostRecent == nil || s.MostRecent.ID != "b2" {
			t.Fatalf("Mexanika most recent = %v, want b2 (2026-02-11)", s.MostRecent)
		}
	}
}

func TestListDepartments_MostRecentTieBrokenByID(t *testing.T) {
	books := []catalog.Book{
		{ID: "a", Department: "Transport", CreatedDate: "2026-03-01"},
		{ID: "b", Department: "Transport", CreatedDate: "2026-03-01"},
	}
	for _, s := range catalog.ListDepartments(books) {
		if s.Department == "Transport" && s.MostRecent.ID != "b" {
			t.Errorf("tie broken to %q, want b", s.MostRecent.ID)
		}
	}
}

func TestAggregateStats(t *testing.T) {
	books := sampleBooks()
	stats := catalog.AggregateStats(books)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.ByAffiliation.Staff != 3 || stats.ByAffiliation.External != 1 {
		t.Errorf("affiliation = %+v, want staff=3 external=1", stats.ByAffiliation)
	}
	if stats.ByDepartment["Mexanika"] != 2 {
		t.Errorf("Mexanika = %d, want 2", stats.ByDepartment["Mexanika"])
	}
	if stats.ByDepartment[catalog.DepartmentOther] != 1 {
		t.Errorf("Other department = %d, want 1", stats.ByDepartment[catalog.DepartmentOther])
	}
	// Zero-valued enumerations must still be present.
	for _, dep := range catalog.Departments {
		if _, ok := stats.ByDepartment[dep]; !ok {
			t.Errorf("department %q missing from stats", dep)
		}
	}
	for _, typ := range catalog.LiteratureTypes {
		if _, ok := stats.ByLiteratureType[typ]; !ok {
			t.Errorf("type %q missing from stats", typ)
		}
	}
	if stats.Contributors != 2 {
		t.Errorf("Contributors = %d, want 2", stats.Contributors)
	}
}

func TestDailyGrowth(t *testing.T) {
	books := sampleBooks() // b4 has no timestamp
	points := catalog.DailyGrowth(books)

	if len(points) != 3 {
		t.Fatalf("expected 3 growth points, got %d", len(points))
	}
	wantDates := []string{"2026-02-09", "2026-02-10", "2026-02-11"}
	for i, d := range wantDates {
		if points[i].Date != d {
			t.Errorf("points[%d].Date = %q, want %q", i, points[i].Date, d)
		}
	}
	// Cumulative totals are non-decreasing and end at the timestamped count.
	prev := 0
	for _, p := range points {
		if p.Total < prev {
			t.Errorf("cumulative total decreased at %s: %d < %d", p.Date, p.Total, prev)
		}
		prev = p.Total
	}
	if prev != 3 {
		t.Errorf("final total = %d, want 3 (books with timestamps)", prev)
	}
}

func TestDailyGrowth_Idempotent(t *testing.T) {
	books := sampleBooks()
	a := catalog.DailyGrowth(books)
	b := catalog.DailyGrowth(books)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("[%d] %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestAddedOn(t *testing.T) {
	books := sampleBooks()
	ref := time.Date(2026, 2, 11, 23, 59, 0, 0, time.UTC)
	if n := catalog.AddedOn(books, ref); n != 1 {
		t.Errorf("AddedOn = %d, want 1", n)
	}
}

func TestStaffDailyActivity(t *testing.T) {
	books := sampleBooks()
	ref := time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC) // Dilnoza added b1 that day

	acts := catalog.StaffDailyActivity(books, []string{"Gulbahor", "Dilnoza"}, ref)
	if len(acts) != 2 {
		t.Fatalf("expected 2 staff entries, got %d", len(acts))
	}
	// The staff member with activity today sorts first.
	if acts[0].Name != "Dilnoza" || acts[0].Today != 1 {
		t.Errorf("acts[0] = %+v, want Dilnoza with Today=1", acts[0])
	}
	if acts[1].Name != "Gulbahor" || acts[1].Today != 0 {
		t.Errorf("acts[1] = %+v, want Gulbahor with Today=0", acts[1])
	}
	if acts[0].AllTime != 2 {
		t.Errorf("Dilnoza AllTime = %d, want 2", acts[0].AllTime)
	}
	if acts[0].TodayByType["Darslik"] != 1 {
		t.Errorf("TodayByType = %v, want Darslik:1", acts[0].TodayByType)
	}
}

func TestGeneralTypes_MergesAndDedupes(t *testing.T) {
	custom := []catalog.Category{
		{ID: "c1", Name: "Badiiy adabiyot"},
		{ID: "c2", Name: "Risola"}, // duplicate of a fixed type
	}
	types := catalog.GeneralTypes(custom)

	seen := make(map[string]int)
	for _, typ := range types {
		seen[typ]++
	}
	if seen["Risola"] != 1 {
		t.Errorf("Risola appears %d times, want 1", seen["Risola"])
	}
	if seen["Badiiy adabiyot"] != 1 {
		t.Error("custom category missing from grid types")
	}
	// The two department-bound types stay out of the general grid.
	if seen["Darslik"] != 0 || seen["O'quv qo'llanma"] != 0 {
		t.Errorf("department-bound types leaked into general grid: %v", types)
	}
}
