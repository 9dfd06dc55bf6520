// Package store persists the library fund as YAML documents under a data
// directory and pushes full-collection snapshots to subscribers whenever
// the files change. It plays the role of the hosted document database:
// create assigns the id and the server timestamp, update applies a
// partial patch, delete removes by id, and readers only ever see whole
// snapshots.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jizpi-library/fondctl/internal/catalog"
	"go.uber.org/zap"
)

const (
	booksFile      = "books.yml"
	categoriesFile = "categories.yml"
)

// Store is a file-backed document store. All mutations go through the
// load → modify → save path; the in-memory snapshot handed to callers is
// never mutated in place.
type Store struct {
	dir string
	log *zap.Logger

	mu sync.Mutex // serializes writers
}

// Open prepares a store rooted at dir, creating it if needed.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the data directory the store persists into.
func (s *Store) Dir() string { return s.dir }

// Books loads the current book collection.
func (s *Store) Books() ([]catalog.Book, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, booksFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []catalog.Book{}, nil
		}
		return nil, fmt.Errorf("reading books: %w", err)
	}
	return catalog.Parse(data)
}

// Categories loads the user-defined category collection.
func (s *Store) Categories() ([]catalog.Category, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, categoriesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []catalog.Category{}, nil
		}
		return nil, fmt.Errorf("reading categories: %w", err)
	}
	return catalog.ParseCategories(data)
}

// CreateBook validates the record, assigns the id and server timestamp,
// and persists it. The stored book is returned.
func (s *Store) CreateBook(b catalog.Book) (catalog.Book, error) {
	if err := catalog.Validate(b); err != nil {
		return catalog.Book{}, err
	}
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()
	if b.CreatedDate == "" {
		b.CreatedDate = b.CreatedAt.Format("2006-01-02")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	books, err := s.Books()
	if err != nil {
		return catalog.Book{}, err
	}
	if err := s.saveBooks(catalog.Append(books, b)); err != nil {
		return catalog.Book{}, err
	}
	s.log.Info("book created",
		zap.String("id", b.ID),
		zap.String("title", b.Title),
		zap.String("added_by", b.AddedBy))
	return b, nil
}

// UpdateBook applies a partial patch to an existing book.
func (s *Store) UpdateBook(id string, p catalog.Patch) (catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	books, err := s.Books()
	if err != nil {
		return catalog.Book{}, err
	}
	existing := catalog.ByID(books, id)
	if existing == nil {
		return catalog.Book{}, fmt.Errorf("book %q not found", id)
	}
	updated := catalog.ApplyPatch(*existing, p)
	if err := catalog.Validate(updated); err != nil {
		return catalog.Book{}, err
	}
	if err := s.saveBooks(catalog.Append(books, updated)); err != nil {
		return catalog.Book{}, err
	}
	s.log.Info("book updated", zap.String("id", id))
	return updated, nil
}

// DeleteBook removes a book by id.
func (s *Store) DeleteBook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	books, err := s.Books()
	if err != nil {
		return err
	}
	books, found := catalog.Remove(books, id)
	if !found {
		return fmt.Errorf("book %q not found", id)
	}
	if err := s.saveBooks(books); err != nil {
		return err
	}
	s.log.Info("book deleted", zap.String("id", id))
	return nil
}

// CreateCategory adds a user-defined category. Name-level deduplication
// is left to the grid (set semantics), matching the record store
// contract.
func (s *Store) CreateCategory(name string) (catalog.Category, error) {
	if strings.TrimSpace(name) == "" {
		return catalog.Category{}, fmt.Errorf("category name is required")
	}
	c := catalog.Category{ID: uuid.NewString(), Name: name}

	s.mu.Lock()
	defer s.mu.Unlock()
	cats, err := s.Categories()
	if err != nil {
		return catalog.Category{}, err
	}
	data, err := catalog.MarshalCategories(append(cats, c))
	if err != nil {
		return catalog.Category{}, err
	}
	if err := writeAtomic(filepath.Join(s.dir, categoriesFile), data); err != nil {
		return catalog.Category{}, fmt.Errorf("writing categories: %w", err)
	}
	s.log.Info("category created", zap.String("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (s *Store) saveBooks(books []catalog.Book) error {
	data, err := catalog.Marshal(books)
	if err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(s.dir, booksFile), data); err != nil {
		return fmt.Errorf("writing books: %w", err)
	}
	return nil
}

// writeAtomic writes via a temp file and rename so watchers never see a
// half-written document.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
