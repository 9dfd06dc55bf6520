package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/jizpi-library/fondctl/internal/catalog"
)

// BookItem wraps a catalog book for display in the book list.
type BookItem struct {
	Book catalog.Book
}

// FilterValue returns a string used for filtering in the list.
func (b BookItem) FilterValue() string {
	return b.Book.Title + " " + b.Book.Author
}

// Column width constraints
const (
	minTitleWidth  = 14
	maxTitleWidth  = 50
	minAuthorWidth = 10
	maxAuthorWidth = 26
	minTypeWidth   = 8
	maxTypeWidth   = 20
	yearWidth      = 4
	affilWidth     = 8
	columnGap      = 1
)

// computeColumnWidths distributes available width across the book columns.
func computeColumnWidths(totalWidth int) (titleW, authorW, typeW int) {
	prefix := 2
	gaps := columnGap * 4
	usable := totalWidth - prefix - gaps - yearWidth - affilWidth
	if usable < minTitleWidth+minAuthorWidth+minTypeWidth {
		return minTitleWidth, minAuthorWidth, minTypeWidth
	}
	titleW = usable * 50 / 100
	if titleW > maxTitleWidth {
		titleW = maxTitleWidth
	}
	remaining := usable - titleW
	authorW = remaining * 55 / 100
	if authorW > maxAuthorWidth {
		authorW = maxAuthorWidth
	}
	typeW = remaining - authorW
	if typeW > maxTypeWidth {
		typeW = maxTypeWidth
	}
	if typeW < minTypeWidth {
		typeW = minTypeWidth
	}
	return
}

// padOrTruncate pads s to exactly width visible chars, truncating with
// "…" if necessary. Rune count, not byte length, so Uzbek diacritics
// align correctly.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	n := len(runes)
	if n > width {
		if width <= 1 {
			return "…"
		}
		return string(runes[:width-1]) + "…"
	}
	if n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// RenderBookItem renders a book row with fixed-width columns.
func RenderBookItem(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	titleW, authorW, typeW := computeColumnWidths(listWidth)

	gap := strings.Repeat(" ", columnGap)

	isCursor := index == m.Index()
	prefix := "  "
	if isCursor {
		prefix = StyleHighlight.Render("›") + " "
	}

	titleCol := padOrTruncate(bookItem.Book.Title, titleW)
	authorCol := padOrTruncate(bookItem.Book.Author, authorW)
	typeCol := padOrTruncate(bookItem.Book.LiteratureType, typeW)
	yearCol := padOrTruncate(bookItem.Book.Year, yearWidth)

	affilStr := ""
	if bookItem.Book.EffectiveAffiliation() == catalog.AffiliationExternal {
		affilStr = "tashqi"
	}
	affilCol := padOrTruncate(affilStr, affilWidth)

	var line string
	if isCursor {
		line = prefix +
			StyleHighlight.Render(titleCol) + gap +
			StyleHighlight.Render(authorCol) + gap +
			StyleCount.Render(typeCol) + gap +
			StyleHighlight.Render(yearCol) + gap +
			StyleHelp.Render(affilCol)
	} else {
		line = prefix +
			StyleNormal.Render(titleCol) + gap +
			StyleHelp.Render(authorCol) + gap +
			StyleCount.Render(typeCol) + gap +
			StyleHelp.Render(yearCol) + gap +
			StyleHelp.Render(affilCol)
	}
	_, _ = fmt.Fprint(w, line)
}
