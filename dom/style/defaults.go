package style

import (
	"golang.org/x/net/html"
)

// User agent defaults deviating from the initial values of properties.
// Values from the UA stylesheet of common browsers; only what matters for a
// static snapshot is covered.
var uaDefaults = map[string][]KeyValue{
	"a":          {{"color", "#0000ee"}, {"text-decoration-line", "underline"}},
	"b":          {{"font-weight", "bold"}},
	"strong":     {{"font-weight", "bold"}},
	"i":          {{"font-style", "italic"}},
	"em":         {{"font-style", "italic"}},
	"u":          {{"text-decoration-line", "underline"}},
	"s":          {{"text-decoration-line", "line-through"}},
	"h1":         {{"font-size", "2em"}, {"font-weight", "bold"}, {"margin-top", "0.67em"}, {"margin-bottom", "0.67em"}},
	"h2":         {{"font-size", "1.5em"}, {"font-weight", "bold"}, {"margin-top", "0.83em"}, {"margin-bottom", "0.83em"}},
	"h3":         {{"font-size", "1.17em"}, {"font-weight", "bold"}, {"margin-top", "1em"}, {"margin-bottom", "1em"}},
	"h4":         {{"font-weight", "bold"}, {"margin-top", "1.33em"}, {"margin-bottom", "1.33em"}},
	"p":          {{"margin-top", "1em"}, {"margin-bottom", "1em"}},
	"body":       {{"margin-top", "8px"}, {"margin-right", "8px"}, {"margin-bottom", "8px"}, {"margin-left", "8px"}},
	"ul":         {{"list-style-type", "disc"}, {"padding-left", "40px"}, {"margin-top", "1em"}, {"margin-bottom", "1em"}},
	"menu":       {{"list-style-type", "disc"}, {"padding-left", "40px"}},
	"ol":         {{"list-style-type", "decimal"}, {"padding-left", "40px"}, {"margin-top", "1em"}, {"margin-bottom", "1em"}},
	"blockquote": {{"margin-left", "40px"}, {"margin-right", "40px"}},
	"th":         {{"font-weight", "bold"}, {"text-align", "center"}},
	"center":     {{"text-align", "center"}},
	"pre":        {{"font-family", "monospace"}, {"white-space", "pre"}},
	"code":       {{"font-family", "monospace"}},
}

// Border properties default to `none` in browsers, whereas the snapshot
// initial value is `solid` (with a width of 0).
var uaBorderStyles = []string{
	"border-top-style", "border-right-style", "border-bottom-style", "border-left-style",
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if node != nil && node.Type == html.ElementNode {
		for _, kv := range uaDefaults[node.Data] {
			if kv.Key == key {
				return kv.Value
			}
		}
	}
	if p, ok := documentDefaults[key]; ok {
		return p
	}
	return NullStyle
}

// UserAgentStyles returns the user agent styles for an element which
// deviate from the initial property values, excluding `display`.
// The slice must not be modified.
func UserAgentStyles(node *html.Node) []KeyValue {
	if node == nil || node.Type != html.ElementNode {
		return nil
	}
	return uaDefaults[node.Data]
}

// Defaults applying to the document as a whole. Inherited properties set
// here propagate to every element.
var documentDefaults = map[string]Property{
	"color":            "black",
	"background-color": "transparent",
	"font-family":      "serif",
	"font-size":        "16px",
	"font-weight":      "normal",
	"border-top-style": "none", "border-right-style": "none",
	"border-bottom-style": "none", "border-left-style": "none",
	"border-top-color": "currentcolor", "border-right-color": "currentcolor",
	"border-bottom-color": "currentcolor", "border-left-color": "currentcolor",
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "title", "meta", "link", "template":
		return "none"
	case "html", "address", "article", "aside", "blockquote", "body", "center",
		"dd", "details", "dialog", "div", "dl", "dt", "fieldset", "figcaption",
		"figure", "footer", "form", "h1", "h2", "h3", "h4", "h5", "h6", "header",
		"hr", "main", "menu", "nav", "ol", "p", "pre", "section", "summary", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "thead", "tbody", "tfoot":
		return "table-row-group"
	case "img", "button", "input", "select", "textarea":
		return "inline-block"
	case "a", "abbr", "b", "br", "cite", "code", "em", "i", "label", "q", "s",
		"small", "span", "strong", "sub", "sup", "u":
		return "inline"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: inline",
		node.Data, node.Type)
	return "inline"
}

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties.
// In real-world browsers these are the user-agent CSS values.
//
// The resulting map holds one group per property group, with a common root
// group. additionalProps are put into group PGX.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	m := NewPropertyMap()
	root := NewPropertyGroup("Root")
	for _, desc := range descriptors {
		value := Property(desc.initial)
		if p, ok := documentDefaults[desc.name]; ok {
			value = p
		}
		if value.IsEmpty() {
			continue
		}
		groupname := GroupNameFromPropertyKey(desc.name)
		group := m.Group(groupname)
		if group == nil {
			group = NewPropertyGroup(groupname)
			group.Parent = root
			m.m[groupname] = group
		}
		group.Set(desc.name, value)
	}
	for _, key := range uaBorderStyles {
		m.m[PGBorder].Set(key, "none")
	}
	if len(additionalProps) > 0 {
		x := m.Group(PGX)
		if x == nil {
			x = NewPropertyGroup(PGX)
			x.Parent = root
			m.m[PGX] = x
		}
		for _, kv := range additionalProps {
			x.Set(kv.Key, kv.Value)
		}
	}
	return m
}
