package ui

import (
	"fmt"

	"github.com/casskell/outline_viewer/pkg/model"
)

// OutlineItem wraps model.Item to implement list.Item
type OutlineItem struct {
	Item      model.Item
	NoteCount int
}

func (i OutlineItem) Title() string {
	return i.Item.DisplayName
}

func (i OutlineItem) Description() string {
	return fmt.Sprintf("%s %s • %s", i.Item.ID, i.Item.Category, i.Item.VisibilityState)
}

func (i OutlineItem) FilterValue() string {
	return i.Item.DisplayName + " " + i.Item.ID + " " + string(i.Item.Category)
}
