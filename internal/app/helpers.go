package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// fail prints a red error and exits 1.
func fail(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString("✗"), fmt.Sprintf(format, a...))
	os.Exit(1)
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// findBook resolves a book by full id or unique prefix.
func findBook(id string) (*catalog.Book, error) {
	books, err := st.Books()
	if err != nil {
		return nil, err
	}
	if b := catalog.ByID(books, id); b != nil {
		return b, nil
	}

	var matches []catalog.Book
	for _, b := range books {
		if strings.HasPrefix(b.ID, id) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("book %q not found", id)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("id prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

// scopedBooks loads and filters books for the scope flags shared by
// list, export, and act.
func scopedBooks(department, literatureType, affiliation, search string) ([]catalog.Book, error) {
	books, err := st.Books()
	if err != nil {
		return nil, err
	}
	f := catalog.Filter{
		Department:     department,
		LiteratureType: literatureType,
		Affiliation:    affiliation,
		Search:         search,
	}
	return f.Apply(books), nil
}
