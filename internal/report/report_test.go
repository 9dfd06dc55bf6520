package report_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/jizpi-library/fondctl/internal/catalog"
	"github.com/jizpi-library/fondctl/internal/report"
)

func reportBooks() []catalog.Book {
	return []catalog.Book{
		{
			ID:             "b1",
			Title:          `Mexanika "asoslari"`, // embedded quotes must survive
			Author:         "A.A",
			Department:     "Mexanika",
			LiteratureType: "Darslik",
			Year:           "2024",
			Place:          "Toshkent",
			Condition:      "Yangi",
			Link:           "https://unilibrary.uz/view/1",
		},
		{
			ID:             "b2",
			Title:          "Botanika",
			Author:         "B.B",
			LiteratureType: "Risola",
			Year:           "2023",
			Link:           "https://unilibrary.uz/view/2",
		},
	}
}

func TestWriteCSV_StartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, reportBooks()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.Bytes()
	if len(out) < 3 || out[0] != 0xEF || out[1] != 0xBB || out[2] != 0xBF {
		t.Error("output does not start with a UTF-8 BOM")
	}
}

func TestWriteCSV_RowsDecodable(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, reportBooks()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	// Strip the BOM, then the rows must parse as standard CSV.
	r := csv.NewReader(bytes.NewReader(buf.Bytes()[3:]))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 3 { // header + 2 books
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][0] != "1" || rows[2][0] != "2" {
		t.Errorf("ordinals = %q, %q", rows[1][0], rows[2][0])
	}
	if rows[1][3] != `Mexanika "asoslari"` {
		t.Errorf("quoted title mangled: %q", rows[1][3])
	}
	// Unset department exports as the sentinel.
	if rows[2][1] != catalog.DepartmentOther {
		t.Errorf("department column = %q, want %q", rows[2][1], catalog.DepartmentOther)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	r := csv.NewReader(bytes.NewReader(buf.Bytes()[3:]))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}

func TestFilename(t *testing.T) {
	date := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	got := report.Filename("Kimyo texnologiyasi", "O'quv qo'llanma", date)
	want := "Kimyo_texnologiyasi_O'quv_qo'llanma_2026-03-05.csv"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}

	got = report.Filename("", "", date)
	if got != "Umumiy_Barchasi_2026-03-05.csv" {
		t.Errorf("default Filename = %q", got)
	}
}

func TestWriteAct(t *testing.T) {
	var buf bytes.Buffer
	scope := report.Scope{
		Institute:      "Jizzax Politexnika Instituti",
		Department:     "Mexanika",
		LiteratureType: "Darslik",
		Date:           time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	if err := report.WriteAct(&buf, reportBooks(), scope); err != nil {
		t.Fatalf("WriteAct: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"JIZZAX POLITEXNIKA INSTITUTI",
		"Kafedra: Mexanika",
		"Tur: Darslik",
		"05.03.2026",
		"Botanika",
		"Jami: 2 ta",
		"Mas'ul xodim: _________________",
		"Bo'lim boshlig'i: _________________",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("act missing %q", want)
		}
	}
	// Two signature lines, act comes last.
	if strings.Count(out, "_________________") != 2 {
		t.Errorf("expected exactly 2 signature lines")
	}
}
