package catalog_test

import (
	"testing"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

func TestAppend_ReplacesExisting(t *testing.T) {
	books := sampleBooks()
	updated := catalog.Book{ID: "b1", Title: "Aviatsiya (2-nashr)", Author: "A.A", LiteratureType: "Darslik"}
	books = catalog.Append(books, updated)
	if len(books) != 4 {
		t.Errorf("expected 4 after replace, got %d", len(books))
	}
	if b := catalog.ByID(books, "b1"); b.Title != "Aviatsiya (2-nashr)" {
		t.Errorf("title not replaced: %q", b.Title)
	}
}

func TestRemove(t *testing.T) {
	books, ok := catalog.Remove(sampleBooks(), "b2")
	if !ok || len(books) != 3 {
		t.Errorf("remove existing: ok=%v len=%d", ok, len(books))
	}
	books, ok = catalog.Remove(books, "nope")
	if ok || len(books) != 3 {
		t.Errorf("remove missing: ok=%v len=%d", ok, len(books))
	}
}

func TestApplyPatch_PartialUpdate(t *testing.T) {
	b := sampleBooks()[0]
	year := "2025"
	title := "Aviatsiya nazariyasi"
	patched := catalog.ApplyPatch(b, catalog.Patch{Title: &title, Year: &year})

	if patched.Title != title || patched.Year != year {
		t.Errorf("patched fields not applied: %+v", patched)
	}
	if patched.Author != b.Author || patched.Department != b.Department {
		t.Error("untouched fields changed")
	}
	if patched.ID != b.ID {
		t.Error("patch must never change the ID")
	}
}

func TestValidate(t *testing.T) {
	valid := catalog.Book{Title: "T", Author: "A", LiteratureType: "Darslik", Link: "https://unilibrary.uz/view/1"}
	if err := catalog.Validate(valid); err != nil {
		t.Errorf("valid book rejected: %v", err)
	}

	cases := []struct {
		name string
		b    catalog.Book
	}{
		{"missing title", catalog.Book{Author: "A", LiteratureType: "Darslik", Link: "x"}},
		{"missing author", catalog.Book{Title: "T", LiteratureType: "Darslik", Link: "x"}},
		{"missing type", catalog.Book{Title: "T", Author: "A", Link: "x"}},
		{"missing link", catalog.Book{Title: "T", Author: "A", LiteratureType: "Darslik"}},
	}
	for _, tc := range cases {
		if err := catalog.Validate(tc.b); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestParse_MarshalRoundTrip(t *testing.T) {
	books := sampleBooks()
	data, err := catalog.Marshal(books)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != len(books) {
		t.Fatalf("round-trip length: %d vs %d", len(parsed), len(books))
	}
	for i := range books {
		if parsed[i].ID != books[i].ID || parsed[i].LiteratureType != books[i].LiteratureType {
			t.Errorf("[%d] mismatch: %+v vs %+v", i, parsed[i], books[i])
		}
	}
}

func TestParse_Empty(t *testing.T) {
	books, err := catalog.Parse(nil)
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected 0 books, got %d", len(books))
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := catalog.Parse([]byte(":: bad yaml [")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
