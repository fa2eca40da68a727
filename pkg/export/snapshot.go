// Package export writes rendered outline chains to files for sharing
// outside the terminal: plain text, SVG, and JSON snapshots.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/casskell/outline_viewer/pkg/model"
	"github.com/casskell/outline_viewer/pkg/outline"
)

// ChainEntry is one level of a chain in a JSON snapshot.
type ChainEntry struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"display_name"`
	Category    model.Category `json:"category"`
	Depth       int            `json:"depth"`
}

// WriteOutlineText writes the chain as nested indented text.
func WriteOutlineText(w io.Writer, outermost *outline.Node) error {
	if outermost == nil {
		return fmt.Errorf("nil outline node")
	}
	_, err := io.WriteString(w, outermost.String()+"\n")
	return err
}

// WriteOutlineJSON writes the chain outermost-first as a JSON array.
func WriteOutlineJSON(w io.Writer, outermost *outline.Node) error {
	if outermost == nil {
		return fmt.Errorf("nil outline node")
	}

	var entries []ChainEntry
	outline.Walk(outermost, func(n *outline.Node, depth int) {
		entries = append(entries, ChainEntry{
			ID:          n.Item().ID,
			DisplayName: n.Item().DisplayName,
			Category:    n.Item().Category,
			Depth:       depth,
		})
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// Snapshot writes text, SVG and JSON renderings of the chain into dir,
// named after the innermost item. The three files are written
// concurrently; the first failure wins.
func Snapshot(dir string, outermost *outline.Node) error {
	if outermost == nil {
		return fmt.Errorf("nil outline node")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	nodes := outline.ChainNodes(outermost)
	base := sanitizeName(nodes[len(nodes)-1].Item().ID)

	writers := []struct {
		ext   string
		write func(io.Writer, *outline.Node) error
	}{
		{"txt", WriteOutlineText},
		{"svg", WriteOutlineSVG},
		{"json", WriteOutlineJSON},
	}

	var g errgroup.Group
	for _, w := range writers {
		g.Go(func() error {
			path := filepath.Join(dir, base+"."+w.ext)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := w.write(f, outermost); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", path, err)
			}
			return f.Close()
		})
	}
	return g.Wait()
}

// sanitizeName makes an item ID safe to use as a file name.
func sanitizeName(id string) string {
	out := make([]rune, 0, len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
