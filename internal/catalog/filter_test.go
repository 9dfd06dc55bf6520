package catalog_test

import (
	"testing"
	"time"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func sampleBooks() []catalog.Book {
	return []catalog.Book{
		{
			ID:             "b1",
			Title:          "Aviatsiya",
			Author:         "A.A",
			Department:     "Mexanika",
			LiteratureType: "Darslik",
			CreatedDate:    "2026-02-10",
			CreatedAt:      time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
			AddedBy:        "Dilnoza",
		},
		{
			ID:             "b2",
			Title:          "Botanika",
			Author:         "B.B",
			Department:     "Mexanika",
			LiteratureType: "Risola",
			CreatedDate:    "2026-02-11",
			CreatedAt:      time.Date(2026, 2, 11, 14, 30, 0, 0, time.UTC),
			AddedBy:        "Gulbahor",
		},
		{
			ID:             "b3",
			Title:          "Elektr mashinalari",
			Author:         "C.C",
			Department:     "Energetika",
			LiteratureType: "Monografiya",
			Affiliation:    catalog.AffiliationExternal,
			CreatedDate:    "2026-02-09",
			CreatedAt:      time.Date(2026, 2, 9, 11, 0, 0, 0, time.UTC),
			AddedBy:        "Dilnoza",
		},
		{
			ID:             "b4",
			Title:          "Lotin tili lug'ati",
			Author:         "D.D",
			LiteratureType: "Lug'at",
			CreatedDate:    "2026-02-11",
		},
	}
}

func ids(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestFilter_Empty_ReturnsAllSorted(t *testing.T) {
	result := catalog.Filter{}.Apply(sampleBooks())
	if len(result) != 4 {
		t.Fatalf("expected 4 books, got %d", len(result))
	}
	// Ascending by title: Aviatsiya, Botanika, Elektr..., Lotin...
	want := []string{"b1", "b2", "b3", "b4"}
	for i, id := range want {
		if result[i].ID != id {
			t.Errorf("result[%d].ID = %q, want %q", i, result[i].ID, id)
		}
	}
}

func TestFilter_ByDepartment(t *testing.T) {
	f := catalog.Filter{Department: "Mexanika"}
	result := f.Apply(sampleBooks())
	if len(result) != 2 {
		t.Fatalf("expected 2 books, got %v", ids(result))
	}
}

func TestFilter_DepartmentOther_MatchesUnset(t *testing.T) {
	f := catalog.Filter{Department: catalog.DepartmentOther}
	result := f.Apply(sampleBooks())
	if len(result) != 1 || result[0].ID != "b4" {
		t.Errorf("Other filter: got %v, want [b4]", ids(result))
	}
}

func TestFilter_ByAffiliation(t *testing.T) {
	f := catalog.Filter{Affiliation: catalog.AffiliationExternal}
	result := f.Apply(sampleBooks())
	if len(result) != 1 || result[0].ID != "b3" {
		t.Errorf("external filter: got %v", ids(result))
	}

	// Unset affiliation counts as staff.
	f = catalog.Filter{Affiliation: catalog.AffiliationStaff}
	result = f.Apply(sampleBooks())
	if len(result) != 3 {
		t.Errorf("staff filter: expected 3, got %v", ids(result))
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	f := catalog.Filter{Search: "avia"}
	result := f.Apply(sampleBooks())
	if len(result) != 1 || result[0].Title != "Aviatsiya" {
		t.Errorf("search 'avia': got %v", ids(result))
	}
}

func TestFilter_SearchMatchesAuthor(t *testing.T) {
	f := catalog.Filter{Search: "b.b"}
	result := f.Apply(sampleBooks())
	if len(result) != 1 || result[0].ID != "b2" {
		t.Errorf("search by author: got %v", ids(result))
	}
}

func TestFilter_CombinedAND(t *testing.T) {
	f := catalog.Filter{Department: "Mexanika", LiteratureType: "Risola"}
	result := f.Apply(sampleBooks())
	if len(result) != 1 || result[0].ID != "b2" {
		t.Errorf("combined filter: got %v", ids(result))
	}

	f = catalog.Filter{Department: "Mexanika", LiteratureType: "Monografiya"}
	if result := f.Apply(sampleBooks()); len(result) != 0 {
		t.Errorf("disjoint combination: expected 0, got %v", ids(result))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	f := catalog.Filter{Department: "Mexanika", Search: "a"}
	once := f.Apply(sampleBooks())
	twice := f.Apply(once)
	if len(once) != len(twice) {
		t.Fatalf("refiltering changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("[%d] ID mismatch after refilter: %q vs %q", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilter_RoundTripAfterCreate(t *testing.T) {
	books := sampleBooks()
	created := catalog.Book{
		ID:             "b5",
		Title:          "Qurilish materiallari",
		Author:         "E.E",
		Department:     "Qurilish",
		LiteratureType: "Darslik",
	}
	books = catalog.Append(books, created)

	f := catalog.Filter{Department: "Qurilish", LiteratureType: "Darslik"}
	result := f.Apply(books)
	found := 0
	for _, b := range result {
		if b.ID == "b5" {
			found++
		}
	}
	if found != 1 {
		t.Errorf("created book matched %d times, want exactly 1", found)
	}
}

func TestByID(t *testing.T) {
	books := sampleBooks()
	if b := catalog.ByID(books, "b3"); b == nil || b.Title != "Elektr mashinalari" {
		t.Errorf("ByID(b3) = %v", b)
	}
	if b := catalog.ByID(books, "missing"); b != nil {
		t.Errorf("ByID(missing) = %v, want nil", b)
	}
}
