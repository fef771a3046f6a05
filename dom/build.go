package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/dom/rendertree"
	"github.com/npillmayer/rendertree/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BuildTree creates the render tree for the document subtree rooted at
// root. Children of root are visited in document order:
//
//   - non-blank text nodes become text runs of their parent, with the
//     parent's `text-transform` applied
//   - elements get a render node of their own if they are visible
//
// The content of replaced elements (textarea, select, svg) is not visited.
// A host error aborts the build.
func BuildTree(b *rendertree.Builder, root w3cdom.Element) (*rendertree.Node, error) {
	n, err := b.NewNode(root)
	if err != nil {
		return nil, err
	}
	if err := buildChildren(b, root, n); err != nil {
		return nil, err
	}
	return n, nil
}

func buildChildren(b *rendertree.Builder, elem w3cdom.Element, parent *rendertree.Node) error {
	for _, ch := range elem.ChildNodes() {
		switch ch.NodeType() {
		case html.TextNode:
			text := ch.NodeValue()
			if strings.TrimSpace(text) == "" {
				continue
			}
			parent.AddText(TransformText(text, parent.Styles.TextTransform))
		case html.ElementNode:
			child, ok := ch.(w3cdom.Element)
			if !ok {
				return fmt.Errorf("element node is not a w3cdom.Element: %T", ch)
			}
			n, err := b.NewNode(child)
			if err != nil {
				return err
			}
			if !n.Styles.IsVisible() {
				tracer().Debugf("skipping invisible <%s>", n.Tag)
				continue
			}
			parent.AddChild(n)
			if isReplaced(child.TagName()) {
				continue
			}
			if err := buildChildren(b, child, n); err != nil {
				return err
			}
		}
	}
	return nil
}

func isReplaced(tag string) bool {
	switch tag {
	case "textarea", "select", "svg":
		return true
	}
	return false
}

// TransformText applies CSS property `text-transform` to a text.
func TransformText(text string, tt css.TextTransform) string {
	switch tt {
	case css.Uppercase:
		return cases.Upper(language.Und).String(text)
	case css.Lowercase:
		return cases.Lower(language.Und).String(text)
	case css.Capitalize:
		return cases.Title(language.Und, cases.NoLower).String(text)
	}
	return text
}
