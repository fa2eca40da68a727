// Package analysis computes summary statistics over a loaded outline,
// used by the -stats report.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/casskell/outline_viewer/pkg/model"
)

// OutlineHealth summarizes the structure of a course outline.
type OutlineHealth struct {
	TotalItems     int
	ByCategory     map[model.Category]int
	ByVisibility   map[model.VisibilityState]int
	MaxDepth       int
	Orphans        []string // items whose parent is missing from the outline
	NoDescription  int
	LearnerVisible int
}

// Analyze computes outline health for a set of items. Ancestor metadata
// is used when present; otherwise depth falls back to parent links.
func Analyze(items []model.Item) OutlineHealth {
	h := OutlineHealth{
		ByCategory:   make(map[model.Category]int),
		ByVisibility: make(map[model.VisibilityState]int),
	}

	byID := make(map[string]bool, len(items))
	for _, it := range items {
		byID[it.ID] = true
	}

	for _, it := range items {
		h.TotalItems++
		h.ByCategory[it.Category]++
		if it.VisibilityState != "" {
			h.ByVisibility[it.VisibilityState]++
			if it.VisibilityState.IsVisibleToLearners() {
				h.LearnerVisible++
			}
		}
		if it.Description == "" {
			h.NoDescription++
		}
		if it.ParentID != "" && !byID[it.ParentID] {
			h.Orphans = append(h.Orphans, it.ID)
		}

		depth := 0
		if it.AncestorInfo != nil {
			depth = len(it.AncestorInfo.Ancestors)
		}
		if depth > h.MaxDepth {
			h.MaxDepth = depth
		}
	}

	sort.Strings(h.Orphans)
	return h
}

// Report renders the health summary as plain text.
func (h OutlineHealth) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Outline: %d items, max depth %d\n", h.TotalItems, h.MaxDepth)

	categories := make([]model.Category, 0, len(h.ByCategory))
	for c := range h.ByCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Depth() < categories[j].Depth()
	})
	for _, c := range categories {
		fmt.Fprintf(&b, "  %-12s %d\n", c, h.ByCategory[c])
	}

	if len(h.ByVisibility) > 0 {
		fmt.Fprintf(&b, "Visible to learners: %d\n", h.LearnerVisible)
	}
	if h.NoDescription > 0 {
		fmt.Fprintf(&b, "Missing descriptions: %d\n", h.NoDescription)
	}
	if len(h.Orphans) > 0 {
		fmt.Fprintf(&b, "Orphaned items: %s\n", strings.Join(h.Orphans, ", "))
	}

	return b.String()
}
