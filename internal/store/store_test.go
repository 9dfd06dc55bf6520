package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func validBook() catalog.Book {
	return catalog.Book{
		Title:          "Nazariy mexanika",
		Author:         "F.F",
		Department:     "Mexanika",
		LiteratureType: "Darslik",
		Link:           "https://unilibrary.uz/view/77",
		AddedBy:        "Dilnoza",
	}
}

func TestCreateBook_AssignsIDAndTimestamp(t *testing.T) {
	s := openStore(t)
	created, err := s.CreateBook(validBook())
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	if created.ID == "" {
		t.Error("no id assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("no server timestamp assigned")
	}
	if created.CreatedDate == "" {
		t.Error("no created date assigned")
	}

	books, err := s.Books()
	if err != nil {
		t.Fatalf("Books: %v", err)
	}
	if len(books) != 1 || books[0].ID != created.ID {
		t.Errorf("persisted books = %+v", books)
	}
}

func TestCreateBook_RejectsInvalid(t *testing.T) {
	s := openStore(t)
	b := validBook()
	b.Title = ""
	if _, err := s.CreateBook(b); err == nil {
		t.Error("expected validation error")
	}
	// A rejected write leaves the collection untouched.
	books, _ := s.Books()
	if len(books) != 0 {
		t.Errorf("collection mutated by failed create: %d books", len(books))
	}
}

func TestUpdateBook_PartialPatch(t *testing.T) {
	s := openStore(t)
	created, err := s.CreateBook(validBook())
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	year := "2026"
	updated, err := s.UpdateBook(created.ID, catalog.Patch{Year: &year})
	if err != nil {
		t.Fatalf("UpdateBook: %v", err)
	}
	if updated.Year != "2026" {
		t.Errorf("Year = %q", updated.Year)
	}
	if updated.Title != created.Title || updated.CreatedAt != created.CreatedAt {
		t.Error("patch touched unrelated fields")
	}
}

func TestUpdateBook_Missing(t *testing.T) {
	s := openStore(t)
	year := "2026"
	if _, err := s.UpdateBook("nope", catalog.Patch{Year: &year}); err == nil {
		t.Error("expected error for missing book")
	}
}

func TestDeleteBook(t *testing.T) {
	s := openStore(t)
	created, _ := s.CreateBook(validBook())

	if err := s.DeleteBook(created.ID); err != nil {
		t.Fatalf("DeleteBook: %v", err)
	}
	books, _ := s.Books()
	if len(books) != 0 {
		t.Errorf("book not removed: %+v", books)
	}
	if err := s.DeleteBook(created.ID); err == nil {
		t.Error("expected error deleting twice")
	}
}

func TestCreateCategory(t *testing.T) {
	s := openStore(t)
	c, err := s.CreateCategory("Badiiy adabiyot")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if c.ID == "" {
		t.Error("no id assigned")
	}
	if _, err := s.CreateCategory("  "); err == nil {
		t.Error("expected error for blank name")
	}

	cats, err := s.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Badiiy adabiyot" {
		t.Errorf("categories = %+v", cats)
	}
}

func TestWatch_PushesSnapshotOnWrite(t *testing.T) {
	s := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snaps, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	// Initial snapshot arrives without any write.
	select {
	case snap := <-snaps:
		if len(snap.Books) != 0 {
			t.Errorf("initial snapshot has %d books", len(snap.Books))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no initial snapshot")
	}

	if _, err := s.CreateBook(validBook()); err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case snap, ok := <-snaps:
			if !ok {
				t.Fatal("snapshot channel closed early")
			}
			if len(snap.Books) == 1 {
				return // snapshot reflecting the write arrived
			}
		case <-deadline:
			t.Fatal("no snapshot after write")
		}
	}
}
