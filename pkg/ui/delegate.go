package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ItemDelegate renders outline items as single compact rows.
type ItemDelegate struct {
	ShowEdited bool // Show the edited-by column if true
}

func (d ItemDelegate) Height() int {
	return 1
}

func (d ItemDelegate) Spacing() int {
	return 0
}

func (d ItemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(OutlineItem)
	if !ok {
		return
	}

	var baseStyle lipgloss.Style
	if index == m.Index() {
		baseStyle = SelectedItemStyle
	} else {
		baseStyle = ItemStyle
	}

	iconStr, iconColor := CategoryIcon(i.Item.Category)
	icon := ColCategoryStyle.Foreground(iconColor).Render(iconStr)

	badge := ColBadgeStyle.Render(RenderVisibilityBadge(i.Item.VisibilityState))

	notes := ""
	if i.NoteCount > 0 {
		notes = ColNotesStyle.Render(fmt.Sprintf("✎%d", i.NoteCount))
	} else {
		notes = ColNotesStyle.Render("")
	}

	edited := ""
	editedWidth := 0
	if d.ShowEdited && i.Item.EditedBy != "" {
		edited = ColEditedStyle.Render("@" + i.Item.EditedBy)
		editedWidth = 10
	}

	// Fixed widths: Icon(3) + Badge(13) + Notes(5) + Edited + gaps
	fixedWidth := 3 + 13 + 5 + editedWidth + 6
	availableWidth := m.Width() - fixedWidth - 4
	if availableWidth < 10 {
		availableWidth = 10
	}

	// Indent by hierarchy level so the list reads as an outline.
	indent := i.Item.Category.Depth()
	name := runewidth.Truncate(i.Item.DisplayName, availableWidth-indent, "…")

	nameStyle := ColNameStyle.Width(availableWidth).MaxWidth(availableWidth)
	if index == m.Index() {
		nameStyle = nameStyle.Foreground(ColorPrimary).Bold(true)
	}
	title := nameStyle.Render(runewidth.FillRight("", indent) + name)

	row := lipgloss.JoinHorizontal(lipgloss.Left, icon, title, badge, notes, edited)

	fmt.Fprint(w, baseStyle.Render(row))
}
