package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Filter applies all non-empty criteria and returns matching books.
// Department and affiliation are compared against the record's effective
// values, so filtering on the "Other" sentinel matches unset departments.
type Filter struct {
	Department     string
	LiteratureType string
	Affiliation    string
	Search         string // case-insensitive substring over title or author
}

// Apply returns the subset of books matching all non-empty filter fields,
// ordered by collated title (ties by ID) for stable display and export.
func (f Filter) Apply(books []Book) []Book {
	var out []Book
	for _, b := range books {
		if f.Department != "" && b.EffectiveDepartment() != f.Department {
			continue
		}
		if f.LiteratureType != "" && b.LiteratureType != f.LiteratureType {
			continue
		}
		if f.Affiliation != "" && b.EffectiveAffiliation() != f.Affiliation {
			continue
		}
		if f.Search != "" && !matchesSearch(b, f.Search) {
			continue
		}
		out = append(out, b)
	}
	SortByTitle(out)
	return out
}

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id string) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

func matchesSearch(b Book, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

// SortByTitle orders books by locale-aware title collation, ties by ID.
// Titles are Uzbek-latin, where plain byte ordering misplaces letters
// like oʻ and gʻ.
func SortByTitle(books []Book) {
	c := collate.New(language.Uzbek)
	sort.SliceStable(books, func(i, j int) bool {
		if cmp := c.CompareString(books[i].Title, books[j].Title); cmp != 0 {
			return cmp < 0
		}
		return books[i].ID < books[j].ID
	})
}

func sortStrings(values []string) {
	c := collate.New(language.Uzbek)
	sort.SliceStable(values, func(i, j int) bool {
		return c.CompareString(values[i], values[j]) < 0
	})
}
