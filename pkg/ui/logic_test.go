package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/casskell/outline_viewer/pkg/model"
	"github.com/casskell/outline_viewer/pkg/notes"
)

// White-box testing of UI model logic

func sampleItems() []model.Item {
	return []model.Item{
		{ID: "course-1", DisplayName: "Demo Course", Category: model.CategoryCourse},
		{ID: "chapter-1", DisplayName: "Week One", Category: model.CategoryChapter, ParentID: "course-1"},
		{ID: "unit-1", DisplayName: "Intro Unit", Category: model.CategoryVertical, ParentID: "chapter-1",
			AncestorInfo: &model.AncestorInfo{Ancestors: []model.Item{
				{ID: "course-1", DisplayName: "Demo Course", Category: model.CategoryCourse},
				{ID: "chapter-1", DisplayName: "Week One", Category: model.CategoryChapter},
			}}},
	}
}

func TestFilterItems_EmptyQueryReturnsAll(t *testing.T) {
	items := sampleItems()
	got := filterItems(items, "  ")
	if len(got) != len(items) {
		t.Errorf("Expected all %d items, got %d", len(items), len(got))
	}
}

func TestFilterItems_FuzzyNarrows(t *testing.T) {
	got := filterItems(sampleItems(), "intro")
	if len(got) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(got))
	}
	if got[0].ID != "unit-1" {
		t.Errorf("Expected unit-1, got %s", got[0].ID)
	}
}

func TestFilterItems_NoMatches(t *testing.T) {
	got := filterItems(sampleItems(), "zzzzz")
	if len(got) != 0 {
		t.Errorf("Expected no matches, got %d", len(got))
	}
}

func TestBuildBreadcrumb_NestsAncestors(t *testing.T) {
	items := sampleItems()
	crumb, err := BuildBreadcrumb(items[2], 0)
	if err != nil {
		t.Fatalf("BuildBreadcrumb: %v", err)
	}

	lines := strings.Split(crumb, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 chain rows, got %d: %q", len(lines), crumb)
	}

	wantNames := []string{"Demo Course", "Week One", "Intro Unit"}
	for i, name := range wantNames {
		if !strings.Contains(lines[i], name) {
			t.Errorf("Row %d: expected %q in %q", i, name, lines[i])
		}
	}

	// Each level indents two more spaces than the previous.
	for i, line := range lines {
		wantPrefix := strings.Repeat("  ", i)
		if !strings.HasPrefix(line, wantPrefix) {
			t.Errorf("Row %d: expected indent %q, got %q", i, wantPrefix, line)
		}
	}
}

func TestBuildBreadcrumb_NoAncestors(t *testing.T) {
	crumb, err := BuildBreadcrumb(sampleItems()[0], 0)
	if err != nil {
		t.Fatalf("BuildBreadcrumb: %v", err)
	}
	if lines := strings.Split(crumb, "\n"); len(lines) != 1 {
		t.Errorf("Expected a single row for an ancestor-less item, got %d", len(lines))
	}
	if !strings.Contains(crumb, "Demo Course") {
		t.Errorf("Expected course name in %q", crumb)
	}
}

func TestBuildBreadcrumb_MissingID(t *testing.T) {
	if _, err := BuildBreadcrumb(model.Item{}, 0); err == nil {
		t.Error("Expected an error for an item without an ID")
	}
}

func TestModel_ItemsReloaded(t *testing.T) {
	m := NewModel(sampleItems()[:1], nil, "")

	updated, _ := m.Update(ItemsReloadedMsg{Items: sampleItems()})
	m = updated.(Model)

	if got := len(m.list.Items()); got != 3 {
		t.Errorf("Expected 3 list items after reload, got %d", got)
	}
}

func TestModel_SelectionUpdatesBreadcrumb(t *testing.T) {
	m := NewModel(sampleItems(), nil, "")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !strings.Contains(m.breadcrumb, "Demo Course") {
		t.Fatalf("Expected initial breadcrumb for the first item, got %q", m.breadcrumb)
	}

	// Move to the last item; its chain has three levels.
	for i := 0; i < 2; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
	}

	if !strings.Contains(m.breadcrumb, "Intro Unit") {
		t.Errorf("Expected breadcrumb for the selected unit, got %q", m.breadcrumb)
	}
	if got := len(strings.Split(m.breadcrumb, "\n")); got != 3 {
		t.Errorf("Expected a 3-level breadcrumb, got %d rows", got)
	}
}

func TestModel_DetailListsStoredNotes(t *testing.T) {
	db, err := notes.OpenDB(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()
	if err := db.Add(&model.Note{ItemID: "course-1", Author: "studio", Text: "tighten the intro"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	m := NewModel(sampleItems(), db, "")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if !strings.Contains(m.detail, "Notes (1)") {
		t.Fatalf("Expected the detail panel to show a note count, got %q", m.detail)
	}
	if !strings.Contains(m.detail, "tighten the intro") {
		t.Errorf("Expected the detail panel to list the note text, got %q", m.detail)
	}
}

func TestModel_FilterKeyFlow(t *testing.T) {
	m := NewModel(sampleItems(), nil, "")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m = updated.(Model)
	if !m.searching {
		t.Fatal("Expected filter mode after '/'")
	}

	for _, r := range "intro" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	if got := len(m.list.Items()); got != 1 {
		t.Errorf("Expected 1 filtered item, got %d", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.searching {
		t.Error("Expected esc to leave filter mode")
	}
	if got := len(m.list.Items()); got != 3 {
		t.Errorf("Expected full list after clearing filter, got %d", got)
	}
}

func TestNoteInput_SubmitFlow(t *testing.T) {
	form := NewNoteInputModel("unit-1", "Intro Unit")

	for _, r := range "needs a demo" {
		form, _ = form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if !form.IsSubmitted() {
		t.Fatal("Expected form submission on ctrl+s")
	}
	if form.Text() != "needs a demo" {
		t.Errorf("Unexpected note text %q", form.Text())
	}
	if form.ItemID() != "unit-1" {
		t.Errorf("Unexpected item ID %q", form.ItemID())
	}
}

func TestNoteInput_CancelFlow(t *testing.T) {
	form := NewNoteInputModel("unit-1", "Intro Unit")
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !form.IsCancelled() {
		t.Error("Expected form cancel on esc")
	}
}

func TestCategoryIcon_CoversAllCategories(t *testing.T) {
	for _, c := range []model.Category{
		model.CategoryCourse, model.CategoryChapter, model.CategorySequential,
		model.CategoryVertical, model.CategoryComponent,
	} {
		icon, _ := CategoryIcon(c)
		if icon == "?" || icon == "" {
			t.Errorf("Category %s has no icon", c)
		}
	}
}

func TestVisibilityLabel(t *testing.T) {
	if got := VisibilityLabel(model.VisibilityStaffOnly); got != "STAFF ONLY" {
		t.Errorf("Unexpected label %q", got)
	}
	if got := VisibilityLabel(""); got != "" {
		t.Errorf("Expected empty label for unset state, got %q", got)
	}
}
