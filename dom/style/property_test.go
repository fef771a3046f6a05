package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCompoundProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.style")
	defer teardown()
	//
	kvs, err := SplitCompoundProperty("padding", "1px 2px")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{
		{"padding-top", "1px"}, {"padding-right", "2px"},
		{"padding-bottom", "1px"}, {"padding-left", "2px"},
	}, kvs)
	kvs, err = SplitCompoundProperty("border-color", "red rgb(0, 0, 255) green")
	require.NoError(t, err)
	assert.Equal(t, "border-left-color", kvs[3].Key)
	assert.Equal(t, kvs[1].Value, kvs[3].Value)
	assert.Contains(t, kvs[1].Value.String(), "rgb(", "functions are not split")
	kvs, err = SplitCompoundProperty("border-radius", "1px 2px 3px 4px")
	require.NoError(t, err)
	assert.Equal(t, KeyValue{"border-bottom-left-radius", "4px"}, kvs[3])
	kvs, err = SplitCompoundProperty("overflow", "hidden scroll")
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{{"overflow-x", "hidden"}, {"overflow-y", "scroll"}}, kvs)
	_, err = SplitCompoundProperty("margin", "1px 2px 3px 4px 5px")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("color", "red")
	assert.Error(t, err)
}

func TestPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.style")
	defer teardown()
	//
	pmap := PropertyMapFrom(
		KeyValue{"Margin", "3px"},
		KeyValue{"color", "red"},
		KeyValue{"font-family", "'Open Sans'"},
		KeyValue{"x-custom", "1"},
	)
	assert.Equal(t, "3px", pmap.GetPropertyValue("margin-left"))
	assert.Equal(t, "'Open Sans'", pmap.GetPropertyValue("font-family"), "values are kept verbatim")
	p, ok := pmap.Property("x-custom")
	assert.True(t, ok)
	assert.Equal(t, Property("1"), p)
	assert.NotNil(t, pmap.Group(PGX))
	assert.Equal(t, []string{PGColor, PGFont, PGMargins, PGX}, pmap.GroupNames())
	//
	var nilmap *PropertyMap
	assert.Equal(t, "", nilmap.GetPropertyValue("color"))
	assert.Equal(t, 0, nilmap.Size())
}

func TestPropertyGroupCascade(t *testing.T) {
	root := NewPropertyGroup(PGColor)
	root.Set("color", "black")
	child := NewPropertyGroup(PGColor)
	child.Parent = root
	assert.Same(t, root, child.Cascade("color"))
	child.Set("color", "red")
	assert.Same(t, child, child.Cascade("color"))
	assert.Nil(t, child.Cascade("-webkit-text-fill-color"))
	child.Add("color", "green")
	p, _ := child.Get("color")
	assert.Equal(t, Property("red"), p, "Add does not overwrite")
}

func TestPropertyPredicates(t *testing.T) {
	assert.True(t, Property("").IsEmpty())
	assert.True(t, Property(" None").IsNone())
	assert.True(t, Property("inherit").IsInherit())
	assert.True(t, Property("INITIAL").IsInitial())
	assert.False(t, Property("red").IsNone())
	assert.True(t, IsCascading("font-weight"))
	assert.True(t, IsCascading("list-style-type"))
	assert.False(t, IsCascading("margin-top"))
	assert.Equal(t, PGMargins, GroupNameFromPropertyKey("margin-top"))
	assert.Equal(t, PGX, GroupNameFromPropertyKey("no-such-property"))
}

func TestInitializeDefaultPropertyValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.style")
	defer teardown()
	//
	pmap := InitializeDefaultPropertyValues([]KeyValue{{"x-debug", "on"}})
	assert.Equal(t, "black", pmap.GetPropertyValue("color"))
	assert.Equal(t, "16px", pmap.GetPropertyValue("font-size"))
	assert.Equal(t, "none", pmap.GetPropertyValue("border-top-style"))
	assert.Equal(t, "on", pmap.GetPropertyValue("x-debug"))
	assert.NotNil(t, pmap.Group(PGColor).Parent, "groups share a root")
	assert.Same(t, pmap.Group(PGColor).Parent, pmap.Group(PGMargins).Parent)
}
