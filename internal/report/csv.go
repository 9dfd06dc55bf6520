// Package report turns an already-filtered book list into the two
// handout formats the library produces: a spreadsheet export and a
// print-ready act document.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jizpi-library/fondctl/internal/catalog"
)

// utf8BOM makes spreadsheet tools decode the export as UTF-8; without it
// Excel mangles the Uzbek/Cyrillic letters.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"T/R",
	"KAFEDRA",
	"ADABIYOT TURI",
	"KITOB NOMI",
	"MUALLIFLAR",
	"NASHR YILI",
	"NASHR JOYI",
	"HOLATI",
	"HAVOLA",
}

// WriteCSV writes the export: a BOM, a header row, then one row per book
// with a running ordinal. Quoting (internal quotes doubled) is handled by
// the CSV encoding.
func WriteCSV(w io.Writer, books []catalog.Book) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, b := range books {
		row := []string{
			strconv.Itoa(i + 1),
			b.EffectiveDepartment(),
			b.LiteratureType,
			b.Title,
			b.Author,
			b.Year,
			b.Place,
			b.Condition,
			b.Link,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename builds the export file name from the scope: underscored
// department and category plus the ISO date.
func Filename(department, literatureType string, date time.Time) string {
	if department == "" {
		department = "Umumiy"
	}
	if literatureType == "" {
		literatureType = "Barchasi"
	}
	clean := func(s string) string {
		return strings.Join(strings.Fields(s), "_")
	}
	return fmt.Sprintf("%s_%s_%s.csv", clean(department), clean(literatureType), date.Format("2006-01-02"))
}
