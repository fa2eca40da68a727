package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/casskell/outline_viewer/pkg/model"
	"github.com/casskell/outline_viewer/pkg/outline"
)

func buildChain(t *testing.T) *outline.Node {
	t.Helper()
	tmpl := outline.TemplateFunc(func(it model.Item, depth int) (string, error) {
		return it.DisplayName, nil
	})

	target := outline.NewNode(model.Item{
		ID:          "unit-1",
		DisplayName: "Intro Unit",
		Category:    model.CategoryVertical,
		AncestorInfo: &model.AncestorInfo{Ancestors: []model.Item{
			{ID: "course-1", DisplayName: "Demo Course", Category: model.CategoryCourse},
			{ID: "seq-1", DisplayName: "Lesson 1", Category: model.CategorySequential},
		}},
	}, nil, tmpl)
	if err := target.Render(); err != nil {
		t.Fatalf("base render: %v", err)
	}

	outermost, err := outline.RenderAncestors(target)
	if err != nil {
		t.Fatalf("RenderAncestors: %v", err)
	}
	return outermost
}

func TestWriteOutlineText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutlineText(&buf, buildChain(t)); err != nil {
		t.Fatalf("WriteOutlineText: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{"Demo Course", "  Lesson 1", "    Intro Unit"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestWriteOutlineJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutlineJSON(&buf, buildChain(t)); err != nil {
		t.Fatalf("WriteOutlineJSON: %v", err)
	}

	var entries []ChainEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("Unmarshal snapshot: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "course-1" || entries[0].Depth != 0 {
		t.Errorf("Unexpected outermost entry: %+v", entries[0])
	}
	if entries[2].ID != "unit-1" || entries[2].Depth != 2 {
		t.Errorf("Unexpected innermost entry: %+v", entries[2])
	}
}

func TestWriteOutlineSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutlineSVG(&buf, buildChain(t)); err != nil {
		t.Fatalf("WriteOutlineSVG: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("Expected a complete SVG document")
	}
	for _, label := range []string{"Demo Course", "Lesson 1", "Intro Unit"} {
		if !strings.Contains(out, label) {
			t.Errorf("Expected SVG to label %q", label)
		}
	}
	// One box per chain level.
	if got := strings.Count(out, "<rect"); got != 3 {
		t.Errorf("Expected 3 boxes, got %d", got)
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	if err := Snapshot(dir, buildChain(t)); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	for _, ext := range []string{"txt", "svg", "json"} {
		path := filepath.Join(dir, "unit-1."+ext)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("Expected snapshot file %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("Snapshot file %s is empty", path)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	got := sanitizeName("block-v1:Org+Course+Run+type@vertical+block@abc")
	if strings.ContainsAny(got, ":+@") {
		t.Errorf("Expected sanitized name, got %q", got)
	}
}
