// Package outline builds the nested ancestor chain shown above a
// content item: a sequence of outline views, one per ancestor, each
// wrapping the next, with the item's own view innermost.
package outline

import (
	"errors"
	"strings"

	"github.com/casskell/outline_viewer/pkg/model"
)

// ErrNilTemplate is returned when a node is rendered without a template.
var ErrNilTemplate = errors.New("outline: nil template")

// ErrNilNode is returned when RenderAncestors is called without a target.
var ErrNilNode = errors.New("outline: nil target node")

// Template renders the content of a single item at a given nesting
// depth. One template instance is shared by every node of a chain;
// there is no per-level template divergence.
type Template interface {
	RenderItem(item model.Item, depth int) (string, error)
}

// TemplateFunc adapts a plain function to the Template interface.
type TemplateFunc func(item model.Item, depth int) (string, error)

// RenderItem implements Template.
func (f TemplateFunc) RenderItem(item model.Item, depth int) (string, error) {
	return f(item, depth)
}

// ChildList is the child slot of a rendered node: an ordered list of
// nested nodes, mutated only by appending during a render pass.
type ChildList struct {
	nodes []*Node
}

// Append adds a node to the end of the list.
func (l *ChildList) Append(n *Node) {
	l.nodes = append(l.nodes, n)
}

// Remove deletes the first occurrence of n, reporting whether it was present.
func (l *ChildList) Remove(n *Node) bool {
	for i, child := range l.nodes {
		if child == n {
			l.nodes = append(l.nodes[:i], l.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of nodes in the list.
func (l *ChildList) Len() int {
	return len(l.nodes)
}

// Nodes returns a copy of the child nodes in order.
func (l *ChildList) Nodes() []*Node {
	out := make([]*Node, len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Node is one view in an ancestor chain, bound to exactly one item.
// A node is constructed with its template and rendered at most once
// per pass; its child list is populated by the chain builder.
type Node struct {
	item     model.Item
	template Template
	parent   *Node
	children ChildList
	body     string
	renders  int
}

// NewNode creates an unrendered node bound to item. parent may be nil
// for the outermost node of a chain.
func NewNode(item model.Item, parent *Node, tmpl Template) *Node {
	n := &Node{item: item, template: tmpl, parent: parent}
	if parent != nil {
		parent.children.Append(n)
	}
	return n
}

// Item returns the item the node is bound to.
func (n *Node) Item() model.Item {
	return n.item
}

// Parent returns the node's enclosing wrapper, or nil if outermost.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildList returns the node's child slot.
func (n *Node) ChildList() *ChildList {
	return &n.children
}

// Depth returns the node's distance from the outermost node of its chain.
func (n *Node) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Render materializes the node's own content through the shared
// template. It is idempotent: the template runs exactly once per node,
// and later calls return nil without re-rendering.
func (n *Node) Render() error {
	if n.renders > 0 {
		return nil
	}
	if n.template == nil {
		return ErrNilTemplate
	}
	body, err := n.template.RenderItem(n.item, n.Depth())
	if err != nil {
		return err
	}
	n.body = body
	n.renders++
	return nil
}

// Rendered reports whether the node has been rendered.
func (n *Node) Rendered() bool {
	return n.renders > 0
}

// RenderCount returns how many times the template actually ran for
// this node. It is at most 1.
func (n *Node) RenderCount() int {
	return n.renders
}

// Body returns the node's own rendered content, without children.
func (n *Node) Body() string {
	return n.body
}

// activeChild returns the single nested node established by the chain
// builder, or nil for the innermost node.
func (n *Node) activeChild() *Node {
	if len(n.children.nodes) == 0 {
		return nil
	}
	return n.children.nodes[0]
}

// detach removes the node from its current parent's child slot, if any.
func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	n.parent.children.Remove(n)
	n.parent = nil
}

// Lines returns the rendered chain as indented lines, the node's own
// body first, then each child nested beneath it.
func (n *Node) Lines() []string {
	var lines []string
	if n.body != "" {
		lines = append(lines, strings.Split(n.body, "\n")...)
	}
	for _, child := range n.children.nodes {
		for _, line := range child.Lines() {
			lines = append(lines, "  "+line)
		}
	}
	return lines
}

// String renders the chain as nested indented text.
func (n *Node) String() string {
	return strings.Join(n.Lines(), "\n")
}
