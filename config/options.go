package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/rendertree/css"
	yaml "gopkg.in/yaml.v3"
)

// Options are the user-facing rendering options.
type Options struct {
	AllowTaint   bool          `yaml:"allow_taint"`   // allow cross-origin images to taint the canvas
	UseCORS      bool          `yaml:"use_cors"`      // load cross-origin images with CORS
	Proxy        string        `yaml:"proxy"`         // proxy URL for cross-origin images
	ImageTimeout time.Duration `yaml:"image_timeout"` // timeout for loading a single image
	CacheImages  bool          `yaml:"cache_images"`  // register decoded images with the cache
	Logging      bool          `yaml:"logging"`       // enable tracing
	Origin       string        `yaml:"origin"`        // origin of the document, e.g. https://example.com
	Window       Window        `yaml:"window"`        // window geometry
}

// Window describes the window's scroll offset and size in CSS pixels.
type Window struct {
	ScrollX float64 `yaml:"scroll_x"`
	ScrollY float64 `yaml:"scroll_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Bounds returns the window as a rectangle in document space.
func (w Window) Bounds() css.Bounds {
	return css.Bounds{Left: w.ScrollX, Top: w.ScrollY, Width: w.Width, Height: w.Height}
}

// Defaults returns the default options.
func Defaults() Options {
	return Options{
		ImageTimeout: 15 * time.Second,
		CacheImages:  true,
		Logging:      true,
		Window:       Window{Width: 800, Height: 600},
	}
}

// Load reads options in YAML format and superimposes them on the defaults.
// Unknown fields are an error. Empty input yields the defaults.
func Load(r io.Reader) (Options, error) {
	opts := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Defaults(), fmt.Errorf("failed to decode options: %w", err)
	}
	if opts.ImageTimeout < 0 {
		return Defaults(), fmt.Errorf("image timeout must not be negative: %s", opts.ImageTimeout)
	}
	tracer().Debugf("loaded options: %+v", opts)
	return opts, nil
}

// LoadBytes is Load for a byte slice.
func LoadBytes(data []byte) (Options, error) {
	return Load(bytes.NewReader(data))
}

// Dump returns opts in YAML format.
func Dump(opts Options) ([]byte, error) {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options to yaml: %w", err)
	}
	return data, nil
}
