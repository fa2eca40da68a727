package model

import (
	"testing"
	"time"
)

func TestClone_IsDeep(t *testing.T) {
	original := Item{
		ID:          "unit-1",
		DisplayName: "Unit",
		Category:    CategoryVertical,
		ChildIDs:    []string{"c1"},
		AncestorInfo: &AncestorInfo{Ancestors: []Item{
			{ID: "course-1", DisplayName: "Course", Category: CategoryCourse},
		}},
	}

	clone := original.Clone()
	clone.ChildIDs[0] = "changed"
	clone.AncestorInfo.Ancestors[0].DisplayName = "changed"

	if original.ChildIDs[0] != "c1" {
		t.Error("Clone shares ChildIDs backing array")
	}
	if original.AncestorInfo.Ancestors[0].DisplayName != "Course" {
		t.Error("Clone shares ancestor records")
	}
}

func TestValidate(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"valid", Item{ID: "x", DisplayName: "X", Category: CategoryVertical}, false},
		{"missing id", Item{DisplayName: "X", Category: CategoryVertical}, true},
		{"missing name", Item{ID: "x", Category: CategoryVertical}, true},
		{"bad category", Item{ID: "x", DisplayName: "X", Category: "bogus"}, true},
		{"bad visibility", Item{ID: "x", DisplayName: "X", Category: CategoryVertical,
			VisibilityState: "hidden-ish"}, true},
		{"edited before created", Item{ID: "x", DisplayName: "X", Category: CategoryVertical,
			CreatedAt: now, EditedAt: now.Add(-time.Hour)}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.item.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestDirectParent(t *testing.T) {
	it := Item{ID: "unit", AncestorInfo: &AncestorInfo{Ancestors: []Item{
		{ID: "course"}, {ID: "chapter"},
	}}}

	parent, ok := it.DirectParent()
	if !ok || parent.ID != "chapter" {
		t.Errorf("Expected direct parent chapter, got %v %v", parent.ID, ok)
	}

	if _, ok := (Item{ID: "root"}).DirectParent(); ok {
		t.Error("Root item should have no direct parent")
	}
}

func TestCategoryDepthOrdering(t *testing.T) {
	order := []Category{CategoryCourse, CategoryChapter, CategorySequential, CategoryVertical, CategoryComponent}
	for i := 1; i < len(order); i++ {
		if order[i-1].Depth() >= order[i].Depth() {
			t.Errorf("%s should be shallower than %s", order[i-1], order[i])
		}
	}
}
