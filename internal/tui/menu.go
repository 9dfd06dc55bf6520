package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/jizpi-library/fondctl/internal/nav"
)

// MenuItem represents one dashboard menu destination.
type MenuItem struct {
	Target      nav.Screen
	Label       string
	Description string
}

// FilterValue implements list.Item
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// MenuItems defines the dashboard menu in display order. Labels follow
// the institute's interface language.
func MenuItems() []MenuItem {
	return []MenuItem{
		{Target: nav.ScreenDepartments, Label: "Kafedralar", Description: "Kafedralar bo'yicha adabiyotlar"},
		{Target: nav.ScreenOtherCategories, Label: "Boshqa adabiyotlar", Description: "Umumiy va qo'shimcha turkumlar"},
		{Target: nav.ScreenAddBook, Label: "Kitob qo'shish", Description: "Fondga yangi adabiyot kiritish"},
		{Target: nav.ScreenStaffRoom, Label: "Xodimlar xonasi", Description: "Xodimlar faolligi"},
		{Target: nav.ScreenOverallStats, Label: "Umumiy statistika", Description: "Fond o'sishi va taqsimoti"},
	}
}

// RenderMenuItem renders a dashboard menu entry.
func RenderMenuItem(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	label := menuItem.Label
	desc := StyleHelp.Render(menuItem.Description)

	display := fmt.Sprintf("%-22s %s", label, desc)

	if isSelected {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}
