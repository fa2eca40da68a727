package loader

import (
	"github.com/casskell/outline_viewer/pkg/model"
)

// BuildAncestorInfo materializes the ancestor chain for every item by
// walking parent links. Each item's AncestorInfo lists its ancestors
// furthest-first, ending with the direct parent; items without a parent
// keep a nil AncestorInfo. The ancestor records themselves are shallow
// in the sense that they do not carry their own AncestorInfo.
//
// The walk is cycle-safe: a parent loop terminates the chain at the
// point of repetition rather than recursing forever.
func BuildAncestorInfo(items []model.Item) []model.Item {
	byID := make(map[string]model.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	out := make([]model.Item, len(items))
	for i, it := range items {
		out[i] = it
		chain := ancestorChain(it, byID)
		if len(chain) == 0 {
			out[i].AncestorInfo = nil
			continue
		}
		out[i].AncestorInfo = &model.AncestorInfo{Ancestors: chain}
	}
	return out
}

// ancestorChain walks parent links upward from it and returns the
// ancestors ordered furthest-first.
func ancestorChain(it model.Item, byID map[string]model.Item) []model.Item {
	var nearestFirst []model.Item
	visited := map[string]bool{it.ID: true}

	parentID := it.ParentID
	for parentID != "" && !visited[parentID] {
		parent, ok := byID[parentID]
		if !ok {
			break
		}
		visited[parentID] = true
		record := parent
		record.AncestorInfo = nil
		nearestFirst = append(nearestFirst, record)
		parentID = parent.ParentID
	}

	if len(nearestFirst) == 0 {
		return nil
	}

	// Reverse so the furthest ancestor comes first.
	chain := make([]model.Item, len(nearestFirst))
	for i, a := range nearestFirst {
		chain[len(chain)-1-i] = a
	}
	return chain
}
