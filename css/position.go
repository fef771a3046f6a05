package css

import (
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	positionSticky            // CSS sticky
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	kind position
}

/*
type PositionT
	= Unset
	| Static
	| Relative
	| Absolute
	| Fixed
	| Sticky
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// RelativePosition creates a CSS position of value `relative`.
func RelativePosition() PositionT {
	return PositionT{kind: positionRelative}
}

// Absolute creates a CSS position of value `absolute`.
func Absolute() PositionT {
	return PositionT{kind: positionAbsolute}
}

// Fixed creates a CSS position of value `fixed`.
func Fixed() PositionT {
	return PositionT{kind: positionFixed}
}

// Sticky creates a CSS position of value `sticky`.
func Sticky() PositionT {
	return PositionT{kind: positionSticky}
}

var positionMap = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	positionSticky:   "sticky",
}

var positionStringMap = map[string]position{
	"static":   positionStatic,
	"relative": positionRelative,
	"absolute": positionAbsolute,
	"fixed":    positionFixed,
	"sticky":   positionSticky,
}

// Position returns an optional position type from a keyword.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p string) PositionT {
	return PositionT{kind: positionStringMap[strings.ToLower(p)]}
}

// ParsePosition decodes property `position`.
func ParsePosition(values []syntax.ComponentValue) (PositionT, error) {
	cv, err := single(values)
	if err != nil {
		return PositionT{}, err
	}
	if !cv.Is(syntax.IdentToken) {
		return PositionT{}, invalid("position", cv)
	}
	p := Position(cv.Token.Value)
	if p.IsUnset() {
		return p, invalid("position", cv)
	}
	return p, nil
}

func (p PositionT) String() string {
	if s, ok := positionMap[p.kind]; ok {
		return s
	}
	return "unset"
}

// ---------------------------------------------------------------------------

// Match starts pattern matching on p.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher matches position kinds in switch statements.
type PMatcher struct {
	pos PositionT
}

// IsKind matches if m's position is of the same kind as p.
func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns is an expression to match a position and result in a value of type T.
// Static positions match Default.
type PositionPatterns[T any] struct {
	Unset    T
	Absolute T
	Relative T
	Fixed    T
	Sticky   T
	Default  T
}

// PositionPattern starts an expression match on p.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

// OneOf selects the pattern value for the matched position kind.
func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	case positionSticky:
		return patterns.Sticky
	}
	return patterns.Default
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsStatic returns true if p is `static` or unset.
func (p PositionT) IsStatic() bool {
	return p.kind == positionStatic || p.kind == positionUnset
}

// IsPositioned returns true for any position other than `static`.
func (p PositionT) IsPositioned() bool {
	return !p.IsStatic()
}

// IsRelative returns true if p represents a relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents an absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// IsSticky returns true if p represents a sticky position.
func (p PositionT) IsSticky() bool {
	return p.kind == positionSticky
}
