package catalog

import (
	"fmt"
	"strings"
)

// Append adds a book to the list and returns the updated slice.
// If a book with the same ID already exists it is replaced.
func Append(books []Book, b Book) []Book {
	for i, existing := range books {
		if existing.ID == b.ID {
			books[i] = b
			return books
		}
	}
	return append(books, b)
}

// Remove removes a book by ID. Returns the updated slice and whether a
// book was actually removed.
func Remove(books []Book, id string) ([]Book, bool) {
	for i, b := range books {
		if b.ID == id {
			return append(books[:i], books[i+1:]...), true
		}
	}
	return books, false
}

// ApplyPatch copies the non-nil patch fields onto the book.
func ApplyPatch(b Book, p Patch) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.LiteratureType != nil {
		b.LiteratureType = *p.LiteratureType
	}
	if p.Department != nil {
		b.Department = *p.Department
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Place != nil {
		b.Place = *p.Place
	}
	if p.Condition != nil {
		b.Condition = *p.Condition
	}
	if p.AuthorPermission != nil {
		b.AuthorPermission = *p.AuthorPermission
	}
	if p.Affiliation != nil {
		b.Affiliation = *p.Affiliation
	}
	if p.Link != nil {
		b.Link = *p.Link
	}
	return b
}

// Validate checks the fields required at creation time. Enum fields are
// not rejected here: off-enumeration values flow into the catch-all
// buckets instead of failing the write.
func Validate(b Book) error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(b.Author) == "" {
		return fmt.Errorf("author is required")
	}
	if strings.TrimSpace(b.LiteratureType) == "" {
		return fmt.Errorf("literature type is required")
	}
	if strings.TrimSpace(b.Link) == "" {
		return fmt.Errorf("full-text link is required")
	}
	return nil
}
