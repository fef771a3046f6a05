package css_test

import (
	"math"
	"testing"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/css/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageURL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.css")
	defer teardown()
	//
	images, err := css.ParseImageList(syntax.ParseValue(`url("bg.png")`), css.Black)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, css.URLImage, images[0].Type)
	assert.Equal(t, "bg.png", images[0].URL)

	images, err = css.ParseImageList(syntax.ParseValue("none"), css.Black)
	require.NoError(t, err)
	assert.Empty(t, images)

	images, err = css.ParseImageList(syntax.ParseValue("url(a.png), linear-gradient(red, blue)"), css.Black)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, css.LinearGradientImage, images[1].Type)
}

func TestParseLinearGradient(t *testing.T) {
	images, err := css.ParseImageList(syntax.ParseValue("linear-gradient(to top right, red, blue 50%)"), css.Black)
	require.NoError(t, err)
	g := images[0].Gradient
	require.NotNil(t, g)
	require.NotNil(t, g.Corner)
	assert.Equal(t, "100%", g.Corner.X.String())
	assert.Equal(t, "0%", g.Corner.Y.String())
	require.Len(t, g.Stops, 2)
	assert.True(t, g.Stops[0].Stop.IsNone())
	assert.Equal(t, "50%", g.Stops[1].Stop.String())

	images, err = css.ParseImageList(syntax.ParseValue("linear-gradient(90deg, red 0 10px, blue)"), css.Black)
	require.NoError(t, err)
	g = images[0].Gradient
	assert.InDelta(t, math.Pi/2, g.Angle, 1e-9)
	assert.Len(t, g.Stops, 3, "double-position stop should yield two stops")

	images, err = css.ParseImageList(syntax.ParseValue("linear-gradient(red, blue)"), css.Black)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, images[0].Gradient.Angle, 1e-9, "default direction is to bottom")

	_, err = css.ParseImageList(syntax.ParseValue("linear-gradient(red)"), css.Black)
	assert.ErrorIs(t, err, css.ErrInvalidValue)
}

func TestParseRadialGradient(t *testing.T) {
	v := syntax.ParseValue("repeating-radial-gradient(circle at top left, red, currentcolor)")
	images, err := css.ParseImageList(v, css.Black)
	require.NoError(t, err)
	require.Equal(t, css.RadialGradientImage, images[0].Type)
	g := images[0].Gradient
	assert.True(t, g.Repeating)
	assert.Equal(t, css.Circle, g.Shape)
	assert.Equal(t, "0%", g.Center.X.String())
	assert.Equal(t, "0%", g.Center.Y.String())
	require.Len(t, g.Stops, 2)
	assert.Equal(t, css.Black, g.Stops[1].Color)

	images, err = css.ParseImageList(syntax.ParseValue("radial-gradient(10px 20px, red, blue)"), css.Black)
	require.NoError(t, err)
	g = images[0].Gradient
	assert.Equal(t, css.ExplicitSize, g.Extent)
	assert.Len(t, g.Size, 2)
	assert.Equal(t, css.Center, g.Center)
}

func TestParseOffset2D(t *testing.T) {
	tests := map[string][2]string{
		"top":          {"50%", "0%"},
		"left":         {"0%", "50%"},
		"bottom right": {"100%", "100%"},
		"10px 20%":     {"10px", "20%"},
		"center top":   {"50%", "0%"},
	}
	for input, want := range tests {
		o, err := css.ParseOffset2D(syntax.ParseValue(input))
		if assert.NoError(t, err, input) {
			assert.Equal(t, want[0], o.X.String(), input)
			assert.Equal(t, want[1], o.Y.String(), input)
		}
	}
}
