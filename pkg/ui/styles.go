package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/casskell/outline_viewer/pkg/model"
)

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// Dracula-inspired palette with semantic aliases
var (
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")

	// Category colors, outermost level first
	ColorCourse     = lipgloss.Color("#BD93F9")
	ColorChapter    = lipgloss.Color("#FF79C6")
	ColorSequential = lipgloss.Color("#8BE9FD")
	ColorVertical   = lipgloss.Color("#50FA7B")
	ColorComponent  = lipgloss.Color("#F1FA8C")

	// Visibility colors
	ColorLive        = lipgloss.Color("#50FA7B")
	ColorReady       = lipgloss.Color("#8BE9FD")
	ColorUnscheduled = lipgloss.Color("#6272A4")
	ColorStaffOnly   = lipgloss.Color("#FFB86C")
	ColorGated       = lipgloss.Color("#FF79C6")
)

// Panel styles for the split layout
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(ColorBgHighlight)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Background(ColorBg).
			Padding(0, 1)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Faint(true)
)

// Column styles for the item list
var (
	ColCategoryStyle = lipgloss.NewStyle().Width(3)
	ColNameStyle     = lipgloss.NewStyle().Foreground(ColorText)
	ColBadgeStyle    = lipgloss.NewStyle().Width(13)
	ColNotesStyle    = lipgloss.NewStyle().Width(5).Foreground(ColorInfo)
	ColEditedStyle   = lipgloss.NewStyle().Width(10).Foreground(ColorMuted)
)

// CategoryIcon returns the glyph and color for a content category
func CategoryIcon(c model.Category) (string, lipgloss.Color) {
	switch c {
	case model.CategoryCourse:
		return "▣", ColorCourse
	case model.CategoryChapter:
		return "§", ColorChapter
	case model.CategorySequential:
		return "≡", ColorSequential
	case model.CategoryVertical:
		return "▤", ColorVertical
	case model.CategoryComponent:
		return "·", ColorComponent
	}
	return "?", ColorMuted
}

// VisibilityColor returns the color used for a visibility state badge
func VisibilityColor(v model.VisibilityState) lipgloss.Color {
	switch v {
	case model.VisibilityLive:
		return ColorLive
	case model.VisibilityReady:
		return ColorReady
	case model.VisibilityUnscheduled:
		return ColorUnscheduled
	case model.VisibilityStaffOnly:
		return ColorStaffOnly
	case model.VisibilityGated:
		return ColorGated
	}
	return ColorMuted
}

// VisibilityLabel returns the short badge text for a visibility state
func VisibilityLabel(v model.VisibilityState) string {
	switch v {
	case model.VisibilityLive:
		return "LIVE"
	case model.VisibilityReady:
		return "READY"
	case model.VisibilityUnscheduled:
		return "UNSCHEDULED"
	case model.VisibilityStaffOnly:
		return "STAFF ONLY"
	case model.VisibilityGated:
		return "GATED"
	}
	return ""
}

// RenderVisibilityBadge returns a styled visibility badge, or an empty
// string for items without a visibility state.
func RenderVisibilityBadge(v model.VisibilityState) string {
	label := VisibilityLabel(v)
	if label == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(VisibilityColor(v)).
		Bold(true).
		Render(label)
}
