package outline

import (
	"fmt"
)

// RenderAncestors wraps target in a chain of newly constructed nodes,
// one per record in its item's ancestor metadata, and returns the
// outermost node.
//
// The ancestor slice is ordered furthest-first: index 0 is the top of
// the hierarchy, the last element is the direct parent. Construction
// walks it back to front, so the direct parent is the first wrapper
// placed around target and the furthest ancestor ends up outermost.
// Rendering then runs outside-in: the furthest ancestor renders first,
// each nearer ancestor after it, target already rendered by the caller.
//
// An item without ancestor metadata is the normal terminal case, not an
// error: target is returned unchanged and no container is touched.
// Re-invoking on the same target discards the previous chain and
// rebuilds it from scratch. A render failure on any ancestor aborts
// the remainder of the chain and propagates to the caller; no partial
// chain is patched up.
func RenderAncestors(target *Node) (*Node, error) {
	if target == nil {
		return nil, ErrNilNode
	}
	info := target.item.AncestorInfo
	if info == nil || len(info.Ancestors) == 0 {
		return target, nil
	}

	// Drop any chain left over from a prior pass.
	target.detach()

	// Build the wrapper chain back to front. Each ancestor wraps the
	// structure built so far, so after the walk the furthest ancestor
	// holds everything and target sits innermost.
	ancestors := info.Ancestors
	inner := target
	for i := len(ancestors) - 1; i >= 0; i-- {
		wrapper := &Node{item: ancestors[i], template: target.template}
		wrapper.children.Append(inner)
		inner.parent = wrapper
		inner = wrapper
	}
	outermost := inner

	// Render outside-in, one call per ancestor.
	for n := outermost; n != target; n = n.activeChild() {
		if err := n.Render(); err != nil {
			return nil, fmt.Errorf("render ancestor %s: %w", n.item.ID, err)
		}
	}

	return outermost, nil
}

// ChainNodes returns the chain from the outermost node down to the
// innermost, following each node's single active child link.
func ChainNodes(outermost *Node) []*Node {
	var nodes []*Node
	for n := outermost; n != nil; n = n.activeChild() {
		nodes = append(nodes, n)
	}
	return nodes
}

// ChainLen returns the number of nodes in the chain rooted at outermost.
func ChainLen(outermost *Node) int {
	return len(ChainNodes(outermost))
}

// Walk visits every node reachable from n in outermost-first order,
// passing each node and its depth relative to n.
func Walk(n *Node, fn func(*Node, int)) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int)) {
	fn(n, depth)
	for _, child := range n.children.nodes {
		walk(child, depth+1, fn)
	}
}
