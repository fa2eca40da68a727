package notes

import (
	"path/filepath"
	"testing"

	"github.com/casskell/outline_viewer/pkg/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), ".studio", "notes.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAddAndForItem(t *testing.T) {
	db := openTestDB(t)

	n := &model.Note{ItemID: "unit-1", Author: "ana", Text: "tighten the intro"}
	if err := db.Add(n); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if n.ID == 0 {
		t.Error("Expected an assigned note ID")
	}
	if n.CreatedAt.IsZero() {
		t.Error("Expected a fill-in timestamp")
	}

	notes, err := db.ForItem("unit-1")
	if err != nil {
		t.Fatalf("ForItem: %v", err)
	}
	if len(notes) != 1 || notes[0].Text != "tighten the intro" {
		t.Errorf("Unexpected notes: %+v", notes)
	}

	notes, err = db.ForItem("other")
	if err != nil {
		t.Fatalf("ForItem(other): %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected no notes for other item, got %d", len(notes))
	}
}

func TestCountByItem(t *testing.T) {
	db := openTestDB(t)

	for _, itemID := range []string{"unit-1", "unit-1", "chapter-1"} {
		if err := db.Add(&model.Note{ItemID: itemID, Author: "ana", Text: "x"}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	counts, err := db.CountByItem()
	if err != nil {
		t.Fatalf("CountByItem: %v", err)
	}
	if counts["unit-1"] != 2 || counts["chapter-1"] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)

	n := &model.Note{ItemID: "unit-1", Author: "ana", Text: "drop me"}
	if err := db.Add(n); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := db.Delete(n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	notes, err := db.ForItem("unit-1")
	if err != nil {
		t.Fatalf("ForItem: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected note to be deleted, got %d", len(notes))
	}
}
