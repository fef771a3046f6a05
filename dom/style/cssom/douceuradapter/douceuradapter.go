/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/rendertree/dom/style"
	"github.com/npillmayer/rendertree/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'rendertree.style'.
func tracer() tracing.Trace {
	return tracing.Select("rendertree.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses a stylesheet from its textual form.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	switch o := other.(type) {
	case *CSSStyles:
		sheet.css.Rules = append(sheet.css.Rules, o.css.Rules...)
	default:
		for _, r := range other.Rules() {
			sheet.css.Rules = append(sheet.css.Rules, asDouceurRule(r))
		}
	}
}

// Rules returns all the style rules of a stylesheet, in source order.
// Rules nested in `@media` and `@supports` blocks are included, other
// at-rules are skipped.
//
// Interface style.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	return collectRules(rules, sheet.css.Rules)
}

func collectRules(rules []cssom.Rule, list []*css.Rule) []cssom.Rule {
	for _, r := range list {
		if r == nil {
			continue
		}
		switch {
		case r.Kind == css.QualifiedRule:
			rules = append(rules, Rule(*r))
		case r.EmbedsRules():
			name := strings.ToLower(r.Name)
			if name == "@media" || name == "@supports" {
				rules = collectRules(rules, r.Rules)
			}
		default:
			tracer().Debugf("skipping at-rule %s", r.Name)
		}
	}
	return rules
}

func asDouceurRule(r cssom.Rule) *css.Rule {
	dr := css.NewRule(css.QualifiedRule)
	dr.Prelude = r.Selector()
	dr.Selectors = []string{r.Selector()}
	for _, key := range r.Properties() {
		dr.Declarations = append(dr.Declarations, &css.Declaration{
			Property:  key,
			Value:     r.Value(key).String(),
			Important: r.IsImportant(key),
		})
	}
	return dr
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, strings.ToLower(d.Property))
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if strings.EqualFold(decl[i].Property, key) {
			return style.Property(decl[i].Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if strings.EqualFold(decl[i].Property, key) {
			return decl[i].Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ParseInlineStyle parses the content of a `style` attribute into a rule
// without selector. The final declaration need not be terminated by `;`.
func ParseInlineStyle(text string) (Rule, error) {
	// douceur drops an unterminated last declaration
	if t := strings.TrimSpace(text); t != "" && !strings.HasSuffix(t, ";") {
		text = t + ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return Rule{}, fmt.Errorf("parsing inline style: %w", err)
	}
	r := css.NewRule(css.QualifiedRule)
	r.Declarations = decls
	return Rule(*r), nil
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Malformed style elements are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Infof("skipping <style>: %v", err)
			continue
		}
		css = append(css, c)
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
