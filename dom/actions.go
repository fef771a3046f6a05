package dom

import (
	"github.com/npillmayer/rendertree/dom/rendertree"
	"github.com/npillmayer/rendertree/tree"
)

// NodeHasText is a predicate to match render nodes with text runs.
// It is intended to be used with tree searches.
func NodeHasText(n *tree.Node[*rendertree.Node], unused *tree.Node[*rendertree.Node]) (bool, error) {
	return len(n.Payload.TextRuns) > 0, nil
}

// NodeIsListOwner is a predicate to match render nodes flagged as list
// owners.
func NodeIsListOwner(n *tree.Node[*rendertree.Node], unused *tree.Node[*rendertree.Node]) (bool, error) {
	return n.Payload.Flags.Has(rendertree.IsListOwner), nil
}

// ListOwner returns the nearest list owner enclosing n, or nil.
func ListOwner(n *rendertree.Node) *rendertree.Node {
	owner, err := n.AncestorWith(NodeIsListOwner)
	if err != nil || owner == nil {
		return nil
	}
	return owner.Payload
}

// TextNodes returns all render nodes of the tree rooted at n carrying text,
// in document order. n itself is included.
func TextNodes(n *rendertree.Node) []*rendertree.Node {
	var nodes []*rendertree.Node
	if len(n.TextRuns) > 0 {
		nodes = append(nodes, n)
	}
	found, _ := n.DescendentsWith(NodeHasText)
	for _, t := range found {
		nodes = append(nodes, t.Payload)
	}
	return nodes
}
