package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

// Scope names what a printed act covers.
type Scope struct {
	Institute      string
	Department     string
	LiteratureType string
	Date           time.Time
}

func (s Scope) departmentLabel() string {
	if s.Department == "" {
		return "Umumiy"
	}
	return s.Department
}

func (s Scope) typeLabel() string {
	if s.LiteratureType == "" {
		return "Barchasi"
	}
	return s.LiteratureType
}

const actRule = "==============================================================================="

// WriteAct renders the print-ready act: institute title block, scope
// line, numbered table, and the two signature lines the paper form
// requires.
func WriteAct(w io.Writer, books []catalog.Book, scope Scope) error {
	var b strings.Builder

	b.WriteString(actRule + "\n")
	fmt.Fprintf(&b, "%s\n", center(strings.ToUpper(scope.Institute), len(actRule)))
	fmt.Fprintf(&b, "%s\n", center("Elektron kutubxona ma'lumotlar bazasi", len(actRule)))
	fmt.Fprintf(&b, "%s\n", center("ADABIYOTLAR RO'YXATI (AKT)", len(actRule)))
	b.WriteString(actRule + "\n")
	fmt.Fprintf(&b, "Kafedra: %-30s Tur: %-20s Sana: %s\n",
		scope.departmentLabel(), scope.typeLabel(), scope.Date.Format("02.01.2006"))
	b.WriteString(actRule + "\n\n")

	fmt.Fprintf(&b, "%4s  %-34s %-20s %-6s %-12s\n", "№", "Kitob nomi", "Muallifi", "Yili", "Nashr joyi")
	b.WriteString(strings.Repeat("-", len(actRule)) + "\n")
	for i, book := range books {
		fmt.Fprintf(&b, "%4d  %-34s %-20s %-6s %-12s\n",
			i+1, clip(book.Title, 34), clip(book.Author, 20), book.Year, clip(book.Place, 12))
		if book.Link != "" {
			fmt.Fprintf(&b, "      %s\n", book.Link)
		}
	}
	b.WriteString(strings.Repeat("-", len(actRule)) + "\n")
	fmt.Fprintf(&b, "Jami: %d ta\n\n\n", len(books))

	b.WriteString("Mas'ul xodim: _________________\n\n")
	b.WriteString("Bo'lim boshlig'i: _________________\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
