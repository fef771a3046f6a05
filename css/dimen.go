package css

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// PX is the size of a CSS pixel in design units. CSS defines 96px = 1in = 72pt.
var PX = dimen.DU(math.Round(float64(dimen.PT) * 0.75))

// absolute units, in points
var absoluteUnits = map[string]float64{
	"px": 0.75,
	"pt": 1,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
}

var relativeUnits = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
	"%":    dimenPercent,
}

// DimenT is an option type for CSS dimensions (lengths and percentages).
// The zero value denotes an unset dimension.
type DimenT struct {
	d     dimen.DU // absolute value
	x     float64  // magnitude of relative values
	flags uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage x
	| FontRel unit x
	| ViewRel unit x
	| ContentRel Min N
	| ContentRel Max N
*/

// Auto creates a dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, x: float64(x) / float64(PX), flags: dimenAbsolute}
}

// Pixels creates a CSS dimension with a fixed value of n CSS pixels.
func Pixels(n float64) DimenT {
	return DimenT{d: dimen.DU(math.Round(n * float64(PX))), x: n, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{x: n, flags: dimenPercent}
}

// Relative creates a font- or viewport-relative dimension, e.g. Relative(1.5, "em").
// Unknown units produce an unset dimension.
func Relative(n float64, unit string) DimenT {
	f, ok := relativeUnits[strings.ToLower(unit)]
	if !ok {
		return DimenT{}
	}
	return DimenT{x: n, flags: f}
}

// IsNone is true for an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAuto is true for dimension `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute is true for a fixed dimension.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercentage is true for a %-relative dimension.
func (d DimenT) IsPercentage() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsRelative is true for font-, viewport- or %-relative dimensions.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask != 0
}

// Dimen returns the value of an absolute dimension, and 0 otherwise.
func (d DimenT) Dimen() dimen.DU {
	if !d.IsAbsolute() {
		return 0
	}
	return d.d
}

// Px returns the value of an absolute dimension in CSS pixels, and 0 otherwise.
func (d DimenT) Px() float64 {
	if !d.IsAbsolute() {
		return 0
	}
	return d.x
}

// Resolve computes an absolute pixel value. Percentages are taken relative to
// reference; font-relative units assume a 16px font, as the rasterizer does.
func (d DimenT) Resolve(reference float64) float64 {
	switch {
	case d.IsAbsolute():
		return d.Px()
	case d.IsPercentage():
		return reference * d.x / 100
	case d.flags&relativeMask == dimenEM, d.flags&relativeMask == dimenREM:
		return d.x * 16
	case d.IsRelative():
		return d.x
	}
	return 0
}

// Unit returns the CSS unit of a relative dimension, "px" for absolute ones and
// "" otherwise.
func (d DimenT) Unit() string {
	if d.IsAbsolute() {
		return "px"
	}
	for u, f := range relativeUnits {
		if d.flags&relativeMask == f {
			return u
		}
	}
	return ""
}

func (d DimenT) String() string {
	switch {
	case d.IsNone():
		return "none"
	case d.IsAuto():
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.IsAbsolute():
		return fmt.Sprintf("%gpx", math.Round(d.Px()*1000)/1000)
	case d.IsRelative():
		return fmt.Sprintf("%g%s", d.x, d.Unit())
	}
	return fmt.Sprintf("dimen(%#x)", d.flags)
}

// --- Decoding --------------------------------------------------------------

// ParseDimen decodes a length or percentage. Unitless numbers are taken as
// pixels, as some hosts report them this way.
func ParseDimen(cv syntax.ComponentValue) (DimenT, error) {
	t := cv.Token
	if cv.Kind != syntax.TokenValue {
		return DimenT{}, invalid("dimension", cv)
	}
	switch t.Type {
	case syntax.NumberToken:
		return Pixels(t.Number), nil
	case syntax.PercentageToken:
		return Percentage(t.Number), nil
	case syntax.DimensionToken:
		if pt, ok := absoluteUnits[t.Unit]; ok {
			return Pixels(t.Number * pt / absoluteUnits["px"]), nil
		}
		if d := Relative(t.Number, t.Unit); !d.IsNone() {
			return d, nil
		}
	case syntax.IdentToken:
		switch strings.ToLower(t.Value) {
		case "auto":
			return Auto(), nil
		case "inherit":
			return Inherit(), nil
		case "initial":
			return Initial(), nil
		}
	}
	return DimenT{}, invalid("dimension", cv)
}

// ParseDimenValue decodes a single dimension from a list of component values.
func ParseDimenValue(values []syntax.ComponentValue) (DimenT, error) {
	cv, err := single(values)
	if err != nil {
		return DimenT{}, err
	}
	return ParseDimen(cv)
}

// ParsePixels decodes an absolute length into CSS pixels. Keywords are rejected.
func ParsePixels(values []syntax.ComponentValue) (float64, error) {
	d, err := ParseDimenValue(values)
	if err != nil {
		return 0, err
	}
	if !d.IsAbsolute() {
		return 0, invalid("absolute length", syntax.Serialize(values))
	}
	return d.Px(), nil
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on d.
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is part of pattern matching for DimenT and intended to be
// instantiated using DimenT.Match() only.
type Matcher struct {
	dimen DimenT
}

// IsKind matches dimensions of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	case m.dimen.flags&relativeMask == 0 && d.flags&relativeMask == 0 &&
		(m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	}
	return nil
}

// Just matches absolute dimensions and extracts their value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and extracts their value.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.IsPercentage() {
		if p != nil {
			*p = m.dimen.x
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results of a pattern match expression.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

// DimenPattern starts a match expression on d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a match expression for DimenT.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern result for the matched dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.IsAuto():
		return patterns.Auto
	case m.dimen.IsAbsolute():
		return patterns.Just
	case m.dimen.IsPercentage():
		return patterns.Percent
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With extracts the absolute value of the matched dimension.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
