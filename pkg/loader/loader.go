package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/casskell/outline_viewer/pkg/model"
)

// LoadItems reads outline items from the .studio/outline.jsonl file in
// the given repository path.
func LoadItems(repoPath string) ([]model.Item, error) {
	if repoPath == "" {
		var err error
		repoPath, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}

	jsonlPath := filepath.Join(repoPath, ".studio", "outline.jsonl")
	return LoadItemsFromFile(jsonlPath)
}

// LoadItemsFromFile reads outline items directly from a specific JSONL file path.
func LoadItemsFromFile(path string) ([]model.Item, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no outline found at %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open outline file: %w", err)
	}
	defer file.Close()

	var items []model.Item
	scanner := bufio.NewScanner(file)
	// Increase buffer size for large lines (descriptions can be large)
	const maxCapacity = 1024 * 1024 * 10 // 10MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var it model.Item
		if err := json.Unmarshal(line, &it); err != nil {
			// Skip malformed lines but continue loading the rest
			continue
		}
		items = append(items, it)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading outline file: %w", err)
	}

	return items, nil
}

// LoadWorkspace loads outline files from several paths concurrently and
// merges the results, de-duplicated by item ID. The first occurrence of
// an ID wins, with files considered in the order given.
func LoadWorkspace(paths []string) ([]model.Item, error) {
	results := make([][]model.Item, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			items, err := LoadItemsFromFile(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []model.Item
	for _, items := range results {
		for _, it := range items {
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			merged = append(merged, it)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Category.Depth() != merged[j].Category.Depth() {
			return merged[i].Category.Depth() < merged[j].Category.Depth()
		}
		return merged[i].ID < merged[j].ID
	})

	return merged, nil
}
