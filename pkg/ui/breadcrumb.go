package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/casskell/outline_viewer/pkg/model"
	"github.com/casskell/outline_viewer/pkg/outline"
)

// BreadcrumbTemplate is the production outline.Template: one styled row
// per chain level, category icon first, visibility badge last.
type BreadcrumbTemplate struct {
	// Width constrains rendered rows; zero means no constraint.
	Width int
}

// RenderItem implements outline.Template.
func (t BreadcrumbTemplate) RenderItem(item model.Item, depth int) (string, error) {
	if item.ID == "" {
		return "", fmt.Errorf("breadcrumb item without ID")
	}

	iconStr, iconColor := CategoryIcon(item.Category)
	icon := lipgloss.NewStyle().Foreground(iconColor).Render(iconStr)

	name := item.DisplayName
	if name == "" {
		name = item.ID
	}
	nameStyle := lipgloss.NewStyle().Foreground(ColorText)
	if depth == 0 {
		nameStyle = nameStyle.Bold(true)
	}

	row := icon + " " + nameStyle.Render(name)
	if badge := RenderVisibilityBadge(item.VisibilityState); badge != "" {
		row += " " + badge
	}
	if t.Width > 0 {
		row = lipgloss.NewStyle().MaxWidth(t.Width).Render(row)
	}
	return row, nil
}

// BuildBreadcrumb renders the full ancestor chain for item and returns
// the nested text block, rebuilt from scratch on every call. Items
// without ancestors yield a single row.
func BuildBreadcrumb(item model.Item, width int) (string, error) {
	tmpl := BreadcrumbTemplate{Width: width}

	target := outline.NewNode(item, nil, tmpl)
	if err := target.Render(); err != nil {
		return "", fmt.Errorf("render item row: %w", err)
	}

	outermost, err := outline.RenderAncestors(target)
	if err != nil {
		return "", fmt.Errorf("render ancestors: %w", err)
	}
	return outermost.String(), nil
}
