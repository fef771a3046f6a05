package config

import (
	"net/url"
	"strings"
	"time"
)

// ImageMode tells how an image would be loaded by a rasterizer.
type ImageMode uint8

// Image loading modes.
const (
	ImageSkipped   ImageMode = iota // cross-origin image, tainting not allowed
	ImageDirect                     // same origin, inline or tainting allowed
	ImageCORS                       // cross-origin, requested with CORS
	ImageProxied                    // cross-origin, requested through the proxy
)

func (m ImageMode) String() string {
	switch m {
	case ImageDirect:
		return "direct"
	case ImageCORS:
		return "cors"
	case ImageProxied:
		return "proxied"
	}
	return "skipped"
}

// ImageEntry is a registered image source.
type ImageEntry struct {
	Src        string
	SameOrigin bool
	Inline     bool // data: URL
	Blob       bool // blob: URL
	Mode       ImageMode
	Timeout    time.Duration // load deadline for a rasterizer, 0 for inline images
}

// ImageCache registers the image sources found while decoding styles. The
// core never loads images; the cache records which images a rasterizer will
// need and how it may request them.
type ImageCache struct {
	opts    *Options
	origin  *url.URL
	entries map[string]ImageEntry
	order   []string
}

func newImageCache(opts *Options) *ImageCache {
	c := &ImageCache{opts: opts, entries: make(map[string]ImageEntry)}
	if opts.Origin != "" {
		if u, err := url.Parse(opts.Origin); err == nil {
			c.origin = u
		} else {
			tracer().Errorf("illegal document origin %q: %v", opts.Origin, err)
		}
	}
	return c
}

// AddImage registers an image source. Registering a source twice is a no-op.
// If image caching is switched off, nothing is registered.
func (c *ImageCache) AddImage(src string) {
	if c == nil || !c.opts.CacheImages || src == "" || c.Has(src) {
		return
	}
	e := c.classify(src)
	tracer().Debugf("image cache: %s (%s)", src, e.Mode)
	c.entries[src] = e
	c.order = append(c.order, src)
}

// Has checks if src has been registered.
func (c *ImageCache) Has(src string) bool {
	if c == nil {
		return false
	}
	_, ok := c.entries[src]
	return ok
}

// Lookup returns the entry for src.
func (c *ImageCache) Lookup(src string) (ImageEntry, bool) {
	if c == nil {
		return ImageEntry{}, false
	}
	e, ok := c.entries[src]
	return e, ok
}

// Sources returns all registered sources in order of registration.
func (c *ImageCache) Sources() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Len returns the number of registered images.
func (c *ImageCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

func (c *ImageCache) classify(src string) ImageEntry {
	lower := strings.ToLower(src)
	e := ImageEntry{
		Src:    src,
		Inline: strings.HasPrefix(lower, "data:"),
		Blob:   strings.HasPrefix(lower, "blob:"),
	}
	e.SameOrigin = c.isSameOrigin(src)
	switch {
	case e.Inline || e.Blob || e.SameOrigin:
		e.Mode = ImageDirect
	case c.opts.UseCORS:
		e.Mode = ImageCORS
	case c.opts.Proxy != "":
		e.Mode = ImageProxied
	case c.opts.AllowTaint:
		e.Mode = ImageDirect
	default:
		e.Mode = ImageSkipped
	}
	if !e.Inline && e.Mode != ImageSkipped {
		e.Timeout = c.opts.ImageTimeout
	}
	return e
}

// isSameOrigin compares scheme, host and port of src with the document
// origin. Relative URLs are same-origin.
func (c *ImageCache) isSameOrigin(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	if !u.IsAbs() && u.Host == "" {
		return true
	}
	if c.origin == nil {
		return false
	}
	return strings.EqualFold(u.Scheme, c.origin.Scheme) && strings.EqualFold(u.Host, c.origin.Host)
}
