package rendertree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/dom/style"
	"github.com/npillmayer/rendertree/tree"
	tp "github.com/xlab/treeprint"
)

// Flags classify render nodes. Flags are independent of each other.
type Flags uint8

// Node flags. The values are part of the render tree's contract with
// painters and must not change.
const (
	CreatesStackingContext     Flags = 1 << 1
	CreatesRealStackingContext Flags = 1 << 2
	IsListOwner                Flags = 1 << 3
	DebugRender                Flags = 1 << 4
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{CreatesStackingContext, "stacking-context"},
	{CreatesRealStackingContext, "real-stacking-context"},
	{IsListOwner, "list-owner"},
	{DebugRender, "debug-render"},
}

// Has is true if all flags of g are set in f.
func (f Flags) Has(g Flags) bool {
	return f&g == g
}

// Set returns f with all flags of g set.
func (f Flags) Set(g Flags) Flags {
	return f | g
}

func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}

// TextRun is a piece of text content of a render node, with the node's
// text transform already applied. Painters treat runs as opaque.
type TextRun struct {
	Text string
}

// Node is a render node, the building block of the render tree. It holds a
// snapshot of an element's style and geometry and does not reference the
// element it has been built from.
//
// Styles and Bounds are fixed after construction. Children and text runs
// are attached by tree builders.
type Node struct {
	tree.Node[*Node]                    // we build on top of general purpose tree
	Tag              string             // tag name of the source element
	Styles           *style.Declaration // decoded styles, owned by the node
	Bounds           css.Bounds         // in document coordinates
	Flags            Flags
	TextRuns         []TextRun
}

func newNode(tag string) *Node {
	n := &Node{Tag: tag}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// AddChild appends a child render node.
func (n *Node) AddChild(ch *Node) *Node {
	if ch != nil {
		n.Node.AddChild(&ch.Node)
	}
	return n
}

// Children returns the child render nodes, in order.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, n.ChildCount())
	for _, ch := range n.Node.Children() {
		children = append(children, ch.Payload)
	}
	return children
}

// Parent returns the parent render node or nil.
func (n *Node) Parent() *Node {
	if p := n.Node.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// AddText appends a text run.
func (n *Node) AddText(text string) {
	n.TextRuns = append(n.TextRuns, TextRun{Text: text})
}

func (n *Node) String() string {
	return fmt.Sprintf("<%s> %s [%s]", n.Tag, n.Bounds, n.Flags)
}

// Dump returns a printable representation of the render tree rooted at n.
func (n *Node) Dump() string {
	p := tp.New()
	p.SetValue(n.String())
	dump(p, n)
	return p.String()
}

func dump(p tp.Tree, n *Node) {
	for _, run := range n.TextRuns {
		p.AddNode(fmt.Sprintf("%q", run.Text))
	}
	for _, ch := range n.Children() {
		if ch.ChildCount() == 0 && len(ch.TextRuns) == 0 {
			p.AddNode(ch.String())
			continue
		}
		dump(p.AddBranch(ch.String()), ch)
	}
}
