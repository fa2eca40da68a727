package model

import (
	"fmt"
	"time"
)

// Item represents one content item in a course outline
type Item struct {
	ID              string          `json:"id"`
	DisplayName     string          `json:"display_name"`
	Category        Category        `json:"category"`
	ParentID        string          `json:"parent_id,omitempty"`
	Description     string          `json:"description,omitempty"`
	VisibilityState VisibilityState `json:"visibility_state,omitempty"`
	EditedBy        string          `json:"edited_by,omitempty"`
	EditedAt        time.Time       `json:"edited_at"`
	CreatedAt       time.Time       `json:"created_at"`
	ChildIDs        []string        `json:"child_ids,omitempty"`
	AncestorInfo    *AncestorInfo   `json:"ancestor_info,omitempty"`
}

// AncestorInfo carries an item's materialized ancestor chain, ordered
// from the furthest ancestor (index 0) down to the direct parent
// (last index). Absence means the item has no ancestors, which is the
// normal case for the outermost container of a content tree.
type AncestorInfo struct {
	Ancestors []Item `json:"ancestors"`
}

// HasAncestors reports whether the item carries a non-empty ancestor chain.
func (i Item) HasAncestors() bool {
	return i.AncestorInfo != nil && len(i.AncestorInfo.Ancestors) > 0
}

// DirectParent returns the nearest ancestor, if any.
func (i Item) DirectParent() (Item, bool) {
	if !i.HasAncestors() {
		return Item{}, false
	}
	ancestors := i.AncestorInfo.Ancestors
	return ancestors[len(ancestors)-1], true
}

// Clone creates a deep copy of the item
func (i Item) Clone() Item {
	clone := i

	if i.ChildIDs != nil {
		clone.ChildIDs = make([]string, len(i.ChildIDs))
		copy(clone.ChildIDs, i.ChildIDs)
	}

	if i.AncestorInfo != nil {
		info := AncestorInfo{}
		if i.AncestorInfo.Ancestors != nil {
			info.Ancestors = make([]Item, len(i.AncestorInfo.Ancestors))
			for idx, ancestor := range i.AncestorInfo.Ancestors {
				info.Ancestors[idx] = ancestor.Clone()
			}
		}
		clone.AncestorInfo = &info
	}

	return clone
}

// Validate checks if the item data is logically valid
func (i *Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item ID cannot be empty")
	}
	if i.DisplayName == "" {
		return fmt.Errorf("item display name cannot be empty")
	}
	if !i.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", i.Category)
	}
	if i.VisibilityState != "" && !i.VisibilityState.IsValid() {
		return fmt.Errorf("invalid visibility state: %s", i.VisibilityState)
	}
	if !i.EditedAt.IsZero() && !i.CreatedAt.IsZero() && i.EditedAt.Before(i.CreatedAt) {
		return fmt.Errorf("edited_at (%v) cannot be before created_at (%v)", i.EditedAt, i.CreatedAt)
	}
	return nil
}

// Category identifies the structural level of a content item
type Category string

const (
	CategoryCourse     Category = "course"
	CategoryChapter    Category = "chapter"
	CategorySequential Category = "sequential"
	CategoryVertical   Category = "vertical"
	CategoryComponent  Category = "component"
)

// IsValid returns true if the category is a recognized value
func (c Category) IsValid() bool {
	switch c {
	case CategoryCourse, CategoryChapter, CategorySequential, CategoryVertical, CategoryComponent:
		return true
	}
	return false
}

// Depth returns the canonical hierarchy level of the category, with the
// course outermost at 0. Unknown categories sort below components.
func (c Category) Depth() int {
	switch c {
	case CategoryCourse:
		return 0
	case CategoryChapter:
		return 1
	case CategorySequential:
		return 2
	case CategoryVertical:
		return 3
	case CategoryComponent:
		return 4
	}
	return 5
}

// IsContainer returns true if the category can hold nested children
func (c Category) IsContainer() bool {
	return c != CategoryComponent
}

// VisibilityState describes what learners can currently see of an item
type VisibilityState string

const (
	VisibilityLive        VisibilityState = "live"
	VisibilityReady       VisibilityState = "ready"
	VisibilityUnscheduled VisibilityState = "unscheduled"
	VisibilityStaffOnly   VisibilityState = "staff_only"
	VisibilityGated       VisibilityState = "gated"
)

// IsValid returns true if the visibility state is a recognized value
func (v VisibilityState) IsValid() bool {
	switch v {
	case VisibilityLive, VisibilityReady, VisibilityUnscheduled, VisibilityStaffOnly, VisibilityGated:
		return true
	}
	return false
}

// IsVisibleToLearners returns true if learners can currently reach the item
func (v VisibilityState) IsVisibleToLearners() bool {
	return v == VisibilityLive || v == VisibilityGated
}

// Note represents an authoring note attached to an item
type Note struct {
	ID        int64     `json:"id"`
	ItemID    string    `json:"item_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
