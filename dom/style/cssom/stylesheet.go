package cssom

import "github.com/npillmayer/rendertree/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// Stylesheets are consumed by static hosts (see package htmlhost), which
// compute styles themselves. Hosts backed by a browser engine deliver
// computed styles directly and have no use for stylesheets.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Declarations returns the properties of a rule as key-value pairs, in
// source order, split into normal and important ones.
func Declarations(r Rule) (normal, important []style.KeyValue) {
	for _, key := range r.Properties() {
		kv := style.KeyValue{Key: key, Value: r.Value(key)}
		if r.IsImportant(key) {
			important = append(important, kv)
		} else {
			normal = append(normal, kv)
		}
	}
	return
}
