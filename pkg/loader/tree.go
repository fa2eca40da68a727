package loader

import (
	"fmt"
	"sort"

	"github.com/casskell/outline_viewer/pkg/model"
)

// OutlineTree contains an item and all its descendants
type OutlineTree struct {
	Root        *model.Item            // The root item
	Descendants []*model.Item          // All children recursively via parent links
	ItemMap     map[string]*model.Item // All items by ID for O(1) lookup
	Children    map[string][]string    // Parent ID -> child IDs, in walk order
}

// LoadOutlineTree loads an item tree starting from rootID, traversing
// parent links to find all descendants.
func LoadOutlineTree(rootID string, items []model.Item) (*OutlineTree, error) {
	// Build item map for O(1) lookup
	itemMap := make(map[string]*model.Item)
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	root, exists := itemMap[rootID]
	if !exists {
		return nil, fmt.Errorf("item not found: %s", rootID)
	}

	// Build parent->children map, each sibling list in category order
	// so a chapter always sorts before a component with a smaller ID.
	childrenMap := make(map[string][]string)
	for _, it := range items {
		if it.ParentID != "" {
			childrenMap[it.ParentID] = append(childrenMap[it.ParentID], it.ID)
		}
	}
	for _, ids := range childrenMap {
		sort.Slice(ids, func(a, b int) bool {
			ia, ib := itemMap[ids[a]], itemMap[ids[b]]
			if ia.Category != ib.Category {
				return ia.Category.Depth() < ib.Category.Depth()
			}
			return ia.ID < ib.ID
		})
	}

	// BFS to find all descendants
	descendants := make([]*model.Item, 0)
	descendantIDs := make(map[string]bool)
	descendantIDs[rootID] = true

	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, childID := range childrenMap[current] {
			if !descendantIDs[childID] {
				descendantIDs[childID] = true
				if child, ok := itemMap[childID]; ok {
					descendants = append(descendants, child)
					queue = append(queue, childID)
				}
			}
		}
	}

	return &OutlineTree{
		Root:        root,
		Descendants: descendants,
		ItemMap:     itemMap,
		Children:    childrenMap,
	}, nil
}

// Walk visits the tree depth-first starting at the root, siblings in the
// order Children holds them, calling fn with each item and its depth
// below the root. A parent link cycle is visited once.
func (t *OutlineTree) Walk(fn func(it *model.Item, depth int)) {
	seen := make(map[string]bool)
	var visit func(id string, depth int)
	visit = func(id string, depth int) {
		if seen[id] {
			return
		}
		seen[id] = true
		it, ok := t.ItemMap[id]
		if !ok {
			return
		}
		fn(it, depth)
		for _, childID := range t.Children[id] {
			visit(childID, depth+1)
		}
	}
	visit(t.Root.ID, 0)
}

// AllItems returns root + all descendants as a flat slice
func (t *OutlineTree) AllItems() []*model.Item {
	result := make([]*model.Item, 0, 1+len(t.Descendants))
	result = append(result, t.Root)
	result = append(result, t.Descendants...)
	return result
}

// TotalCount returns the total number of items in the tree (root + descendants)
func (t *OutlineTree) TotalCount() int {
	return 1 + len(t.Descendants)
}

// Roots returns the IDs of items with no resolvable parent, in stable
// order, so callers can build one tree per top-level item.
func Roots(items []model.Item) []string {
	byID := make(map[string]bool, len(items))
	for _, it := range items {
		byID[it.ID] = true
	}
	var roots []string
	for _, it := range items {
		if it.ParentID == "" || !byID[it.ParentID] {
			roots = append(roots, it.ID)
		}
	}
	sort.Strings(roots)
	return roots
}
