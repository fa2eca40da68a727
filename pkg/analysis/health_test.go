package analysis

import (
	"strings"
	"testing"

	"github.com/casskell/outline_viewer/pkg/model"
)

func TestAnalyze(t *testing.T) {
	items := []model.Item{
		{ID: "course-1", Category: model.CategoryCourse, Description: "about"},
		{ID: "chapter-1", Category: model.CategoryChapter, ParentID: "course-1",
			VisibilityState: model.VisibilityLive},
		{ID: "unit-1", Category: model.CategoryVertical, ParentID: "chapter-1",
			VisibilityState: model.VisibilityStaffOnly,
			AncestorInfo: &model.AncestorInfo{Ancestors: []model.Item{
				{ID: "course-1"}, {ID: "chapter-1"},
			}}},
		{ID: "lost", Category: model.CategoryVertical, ParentID: "gone"},
	}

	h := Analyze(items)

	if h.TotalItems != 4 {
		t.Errorf("Expected 4 items, got %d", h.TotalItems)
	}
	if h.ByCategory[model.CategoryVertical] != 2 {
		t.Errorf("Expected 2 verticals, got %d", h.ByCategory[model.CategoryVertical])
	}
	if h.MaxDepth != 2 {
		t.Errorf("Expected max depth 2, got %d", h.MaxDepth)
	}
	if len(h.Orphans) != 1 || h.Orphans[0] != "lost" {
		t.Errorf("Expected orphan [lost], got %v", h.Orphans)
	}
	if h.LearnerVisible != 1 {
		t.Errorf("Expected 1 learner-visible item, got %d", h.LearnerVisible)
	}
	if h.NoDescription != 3 {
		t.Errorf("Expected 3 items without descriptions, got %d", h.NoDescription)
	}
}

func TestReport(t *testing.T) {
	h := Analyze([]model.Item{
		{ID: "course-1", Category: model.CategoryCourse},
		{ID: "unit-1", Category: model.CategoryVertical, ParentID: "missing"},
	})

	report := h.Report()
	for _, want := range []string{"2 items", "course", "vertical", "Orphaned items: unit-1"} {
		if !strings.Contains(report, want) {
			t.Errorf("Expected report to mention %q:\n%s", want, report)
		}
	}
}

func TestAnalyze_Empty(t *testing.T) {
	h := Analyze(nil)
	if h.TotalItems != 0 || h.MaxDepth != 0 || len(h.Orphans) != 0 {
		t.Errorf("Unexpected health for empty outline: %+v", h)
	}
}
