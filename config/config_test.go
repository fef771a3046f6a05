package config

import (
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.config")
	defer teardown()
	//
	opts, err := Load(strings.NewReader(`
use_cors: true
image_timeout: 3s
origin: https://example.com
window:
  scroll_y: 120
`))
	require.NoError(t, err)
	assert.True(t, opts.UseCORS)
	assert.Equal(t, 3*time.Second, opts.ImageTimeout)
	assert.True(t, opts.CacheImages, "defaults should survive for fields not in the input")
	assert.Equal(t, css.Bounds{Top: 120, Width: 800, Height: 600}, opts.Window.Bounds())

	opts, err = Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), opts)

	_, err = Load(strings.NewReader("no_such_option: 1\n"))
	assert.Error(t, err)
}

func TestDumpOptions(t *testing.T) {
	opts := Defaults()
	opts.Proxy = "https://proxy.example.com"
	data, err := Dump(opts)
	require.NoError(t, err)
	back, err := LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, opts, back)
}

func TestContextWindow(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, Defaults().Window.Bounds(), ctx.WindowBounds())
	ctx = NewContext(WithWindowBounds(css.Bounds{Left: 5, Top: 100}))
	assert.Equal(t, css.Bounds{Left: 5, Top: 100}, ctx.WindowBounds())
	assert.NotNil(t, ctx.Trace())

	opts := Defaults()
	opts.Logging = false
	ctx = NewContext(WithOptions(opts))
	assert.NotNil(t, ctx.Trace(), "disabled logging should still yield a (no-op) trace")
}

func TestImageCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rendertree.config")
	defer teardown()
	//
	opts := Defaults()
	opts.Origin = "https://example.com"
	ctx := NewContext(WithOptions(opts))
	c := ctx.Cache()
	c.AddImage("bg.png")
	c.AddImage("https://example.com/a.png")
	c.AddImage("https://other.org/b.png")
	c.AddImage("data:image/png;base64,AAAA")
	c.AddImage("bg.png")
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"bg.png", "https://example.com/a.png", "https://other.org/b.png",
		"data:image/png;base64,AAAA"}, c.Sources())

	e, ok := c.Lookup("https://other.org/b.png")
	require.True(t, ok)
	assert.False(t, e.SameOrigin)
	assert.Equal(t, ImageSkipped, e.Mode)
	assert.Zero(t, e.Timeout, "skipped images are not loaded")
	e, _ = c.Lookup("bg.png")
	assert.Equal(t, ImageDirect, e.Mode)
	assert.Equal(t, opts.ImageTimeout, e.Timeout)
	e, _ = c.Lookup("data:image/png;base64,AAAA")
	assert.True(t, e.Inline)
	assert.Zero(t, e.Timeout)

	opts.UseCORS = true
	c = NewContext(WithOptions(opts)).Cache()
	c.AddImage("https://other.org/b.png")
	e, _ = c.Lookup("https://other.org/b.png")
	assert.Equal(t, ImageCORS, e.Mode)
	assert.Equal(t, 15*time.Second, e.Timeout)

	opts.UseCORS = false
	opts.CacheImages = false
	c = NewContext(WithOptions(opts)).Cache()
	c.AddImage("bg.png")
	assert.False(t, c.Has("bg.png"))
}
