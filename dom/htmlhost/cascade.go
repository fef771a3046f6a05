package htmlhost

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/rendertree/dom/style"
	"github.com/npillmayer/rendertree/dom/style/cssom"
	"github.com/npillmayer/rendertree/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// matchedRule is a compiled selector of a stylesheet rule.
type matchedRule struct {
	selector    cascadia.Sel
	specificity cascadia.Specificity
	order       int
	rule        cssom.Rule
}

// Inline styles are more specific than any selector.
var inlineSpecificity = cascadia.Specificity{1 << 12, 0, 0}

func compileRules(sheets []cssom.StyleSheet) []matchedRule {
	var rules []matchedRule
	for _, sheet := range sheets {
		for _, r := range sheet.Rules() {
			group, err := cascadia.ParseGroup(r.Selector())
			if err != nil {
				tracer().Infof("skipping rule %q: %v", r.Selector(), err)
				continue
			}
			for _, sel := range group {
				if sel.PseudoElement() != "" {
					continue
				}
				rules = append(rules, matchedRule{
					selector:    sel,
					specificity: sel.Specificity(),
					order:       len(rules),
					rule:        r,
				})
			}
		}
	}
	return rules
}

type declaration struct {
	kv          style.KeyValue
	important   bool
	specificity cascadia.Specificity
	order       int
}

// specifiedStyles collects the declarations applying to n, in cascade order:
// user agent styles, then matching rules by specificity and source order,
// then inline styles and overrides. Important declarations come last.
func (doc *Document) specifiedStyles(n *html.Node) *style.PropertyMap {
	var decls []declaration
	add := func(kvs []style.KeyValue, important bool, spec cascadia.Specificity, order int) {
		for _, kv := range kvs {
			decls = append(decls, declaration{kv, important, spec, order})
		}
	}
	for _, r := range doc.rules {
		if !r.selector.Match(n) {
			continue
		}
		normal, important := cssom.Declarations(r.rule)
		add(normal, false, r.specificity, r.order)
		add(important, true, r.specificity, r.order)
	}
	if inline := strings.TrimSpace(attr(n, "style")); inline != "" {
		r, err := douceuradapter.ParseInlineStyle(inline)
		if err != nil {
			tracer().Infof("<%s>: %v", n.Data, err)
		} else {
			normal, important := cssom.Declarations(r)
			add(normal, false, inlineSpecificity, len(doc.rules))
			add(important, true, inlineSpecificity, len(doc.rules))
		}
	}
	add(doc.overrides[n], false, inlineSpecificity, len(doc.rules)+1)
	sort.SliceStable(decls, func(i, j int) bool {
		a, b := decls[i], decls[j]
		if a.important != b.important {
			return b.important
		}
		if a.specificity != b.specificity {
			return a.specificity.Less(b.specificity)
		}
		return a.order < b.order
	})
	pmap := style.PropertyMapFrom(style.UserAgentStyles(n)...)
	for _, d := range decls {
		pmap.Add(d.kv.Key, d.kv.Value)
	}
	return pmap
}

// computeStyles returns the (cached) property map of n. The property groups
// of the map are linked to the groups of the parent's map, with the user
// agent defaults at the top, so inherited properties cascade.
func (doc *Document) computeStyles(n *html.Node) *style.PropertyMap {
	if pmap, ok := doc.computed[n]; ok {
		return pmap
	}
	parent := doc.uaStyles
	if p := n.Parent; p != nil && p.Type == html.ElementNode {
		parent = doc.computeStyles(p)
	}
	pmap := doc.specifiedStyles(n)
	for _, groupname := range parent.GroupNames() {
		if pmap.Group(groupname) == nil {
			pmap.AddAllFromGroup(style.NewPropertyGroup(groupname), false)
		}
	}
	for _, groupname := range pmap.GroupNames() {
		pmap.Group(groupname).Parent = parent.Group(groupname)
	}
	doc.computed[n] = pmap
	return pmap
}

// computedStyle implements style.Source for an element.
type computedStyle struct {
	pmap *style.PropertyMap
	node *html.Node
}

// GetPropertyValue gets the value of a property. If the property is not set
// locally and the property is inheritable, the search cascades to the parent
// property maps. Non-inherited properties fall back to user agent defaults.
func (cs *computedStyle) GetPropertyValue(key string) string {
	key = strings.ToLower(key)
	p, ok := cs.pmap.Property(key)
	if ok && !p.IsInherit() {
		return p.String()
	}
	if p.IsInherit() || style.IsCascading(key) {
		return cascade(cs.pmap.Group(style.GroupNameFromPropertyKey(key)), key, ok).String()
	}
	return style.GetUserAgentDefaultProperty(cs.node, key).String()
}

// cascade walks up the chain of property groups until it finds a value
// other than `inherit`. If skipSelf is set, group itself is not consulted.
func cascade(group *style.PropertyGroup, key string, skipSelf bool) style.Property {
	if group != nil && skipSelf {
		group = group.Parent
	}
	for group != nil {
		group = group.Cascade(key)
		if group == nil {
			break
		}
		p, _ := group.Get(key)
		if !p.IsInherit() {
			return p
		}
		group = group.Parent
	}
	return style.NullStyle
}
