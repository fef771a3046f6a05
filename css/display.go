package css

import (
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	RunInMode       DisplayMode = 0x0008 // CSS run-in outer display
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
	ContentsMode    DisplayMode = 0x0800 // CSS display = contents
	RubyMode        DisplayMode = 0x1000 // CSS inner display = ruby
	TablePartMode   DisplayMode = 0x2000 // CSS internal table display (row, cell, …)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, RunInMode, ListItemMode, FlowRootMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode, ContentsMode, RubyMode,
	TablePartMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:     "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	RunInMode:       "run-in",
	FlowRootMode:    "flow-root",
	ListItemMode:    "list-item",
	FlexMode:        "flex",
	GridMode:        "grid",
	TableMode:       "table",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
	ContentsMode:    "contents",
	RubyMode:        "ruby",
	TablePartMode:   "table-part",
}

// Keywords of property `display`, as single flags. Multi-keyword values are
// or-ed together.
var displayKeywords = map[string]DisplayMode{
	"none":                DisplayNone,
	"block":               BlockMode,
	"inline":              InlineMode,
	"run-in":              RunInMode,
	"flow":                NoMode,
	"flow-root":           FlowRootMode,
	"table":               TableMode,
	"flex":                FlexMode,
	"grid":                GridMode,
	"ruby":                RubyMode,
	"list-item":           ListItemMode,
	"contents":            ContentsMode,
	"inline-block":        InlineMode | InnerBlockMode,
	"inline-table":        InlineMode | TableMode,
	"inline-flex":         InlineMode | FlexMode,
	"inline-grid":         InlineMode | GridMode,
	"table-row-group":     TablePartMode,
	"table-header-group":  TablePartMode,
	"table-footer-group":  TablePartMode,
	"table-row":           TablePartMode,
	"table-cell":          TablePartMode,
	"table-column-group":  TablePartMode,
	"table-column":        TablePartMode,
	"table-caption":       TablePartMode,
	"ruby-base":           RubyMode,
	"ruby-text":           RubyMode,
	"ruby-base-container": RubyMode,
	"ruby-text-container": RubyMode,
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// A block-level element is defined as (CSS Display Module Level 3):
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// String returns all atomic modes set in a display mode.
func (disp DisplayMode) String() string {
	var names []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			names = append(names, displayModeNames[m])
		}
	}
	if len(names) == 0 {
		return "no-mode"
	}
	return strings.Join(names, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp == NoMode:
		return "–"
	case disp.Contains(DisplayNone):
		return "∅"
	case disp.Contains(ListItemMode):
		return "▣"
	case disp.Contains(BlockMode) || disp.Contains(InnerBlockMode):
		return "▩"
	case disp.Contains(FlexMode):
		return "▤"
	case disp.Contains(GridMode):
		return "◰"
	case disp.Contains(TableMode):
		return "▥"
	case disp.Contains(InlineMode) || disp.Contains(InnerInlineMode):
		return "►"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property (outer and inner).
// Multi-keyword values like `inline flow-root` or `block list-item` combine
// their flags.
func ParseDisplay(values []syntax.ComponentValue) (DisplayMode, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 0 {
		return NoMode, invalid("display", "empty")
	}
	var disp DisplayMode
	for _, cv := range vs {
		if !cv.Is(syntax.IdentToken) {
			return NoMode, invalid("display", cv)
		}
		m, ok := displayKeywords[strings.ToLower(cv.Token.Value)]
		if !ok {
			return NoMode, invalid("display", cv)
		}
		disp.Set(m)
	}
	if disp.Contains(ListItemMode) && disp.Outer() == NoMode {
		disp.Set(BlockMode)
	}
	return disp, nil
}
