package css

import (
	"errors"
	"math"
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
)

// ImageType discriminates CSS images.
type ImageType uint8

// Types of CSS images.
const (
	NoImage ImageType = iota
	URLImage
	LinearGradientImage
	RadialGradientImage
)

// Image is a CSS <image> value: either a URL reference or a gradient.
type Image struct {
	Type     ImageType
	URL      string    // for URLImage
	Gradient *Gradient // for gradient images
}

func (img Image) String() string {
	switch img.Type {
	case URLImage:
		return "url(" + img.URL + ")"
	case LinearGradientImage:
		return "linear-gradient(…)"
	case RadialGradientImage:
		return "radial-gradient(…)"
	}
	return "none"
}

// Offset2D is a 2-dimensional position, e.g. for background-position.
type Offset2D struct {
	X, Y DimenT
}

// Center is position `center center`.
var Center = Offset2D{X: Percentage(50), Y: Percentage(50)}

// ColorStop is a color stop of a gradient. Stop is unset if no position
// was given.
type ColorStop struct {
	Color Color
	Stop  DimenT
}

// RadialShape is the ending shape of a radial gradient.
type RadialShape uint8

// Radial gradient shapes.
const (
	Ellipse RadialShape = iota
	Circle
)

// RadialExtent is the size keyword of a radial gradient.
type RadialExtent uint8

// Radial gradient size keywords.
const (
	FarthestCorner RadialExtent = iota
	FarthestSide
	ClosestCorner
	ClosestSide
	ExplicitSize
)

var radialExtents = map[string]RadialExtent{
	"farthest-corner": FarthestCorner,
	"farthest-side":   FarthestSide,
	"closest-corner":  ClosestCorner,
	"closest-side":    ClosestSide,
	"cover":           FarthestCorner,
	"contain":         ClosestSide,
}

// Gradient holds the parameters of a linear or radial gradient.
type Gradient struct {
	Repeating bool
	Stops     []ColorStop
	// linear gradients
	Angle  float64   // direction in radians, 0 = to top
	Corner *Offset2D // set for "to <corner>" directions
	// radial gradients
	Shape  RadialShape
	Extent RadialExtent
	Size   []DimenT // explicit radii for ExplicitSize
	Center Offset2D
}

// --- Decoding --------------------------------------------------------------

// ParseImage decodes a CSS image. current is the value of `currentcolor`.
func ParseImage(cv syntax.ComponentValue, current Color) (Image, error) {
	if url, ok := syntax.URL(cv); ok {
		return Image{Type: URLImage, URL: url}, nil
	}
	if cv.Kind == syntax.FunctionValue {
		name := strings.ToLower(cv.Name())
		repeating := strings.HasPrefix(name, "repeating-")
		switch strings.TrimPrefix(name, "repeating-") {
		case "linear-gradient":
			g, err := parseLinearGradient(cv.Args(), current)
			if err != nil {
				return Image{}, err
			}
			g.Repeating = repeating
			return Image{Type: LinearGradientImage, Gradient: g}, nil
		case "radial-gradient":
			g, err := parseRadialGradient(cv.Args(), current)
			if err != nil {
				return Image{}, err
			}
			g.Repeating = repeating
			return Image{Type: RadialGradientImage, Gradient: g}, nil
		}
	}
	return Image{}, invalid("image", cv)
}

// ParseImageList decodes `none` or a comma-separated list of images.
// `none` yields an empty list.
func ParseImageList(values []syntax.ComponentValue, current Color) ([]Image, error) {
	if syntax.IsIdentWithValue(values, "none") {
		return nil, nil
	}
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid("image list", syntax.Serialize(values))
	}
	images := make([]Image, 0, len(groups))
	for _, g := range groups {
		if len(g) != 1 {
			return nil, invalid("image", syntax.Serialize(g))
		}
		img, err := ParseImage(g[0], current)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func parseLinearGradient(args [][]syntax.ComponentValue, current Color) (*Gradient, error) {
	if len(args) == 0 {
		return nil, invalid("linear-gradient", "without arguments")
	}
	g := &Gradient{Angle: math.Pi}
	first := args[0]
	switch {
	case first[0].IsIdent("to"):
		if err := g.setSideOrCorner(first[1:]); err != nil {
			return nil, err
		}
		args = args[1:]
	case len(first) == 1 && isAngle(first[0]):
		g.Angle, _ = angle(first[0].Token)
		args = args[1:]
	}
	stops, err := parseColorStops(args, current)
	if err != nil {
		return nil, err
	}
	g.Stops = stops
	return g, nil
}

func (g *Gradient) setSideOrCorner(values []syntax.ComponentValue) error {
	var x, y string
	for _, v := range values {
		switch {
		case v.IsIdent("left"), v.IsIdent("right"):
			x = strings.ToLower(v.Token.Value)
		case v.IsIdent("top"), v.IsIdent("bottom"):
			y = strings.ToLower(v.Token.Value)
		default:
			return invalid("gradient direction", v)
		}
	}
	switch {
	case x != "" && y != "":
		corner := Offset2D{X: Percentage(0), Y: Percentage(0)}
		if x == "right" {
			corner.X = Percentage(100)
		}
		if y == "bottom" {
			corner.Y = Percentage(100)
		}
		g.Corner = &corner
	case x == "right":
		g.Angle = math.Pi / 2
	case x == "left":
		g.Angle = 3 * math.Pi / 2
	case y == "top":
		g.Angle = 0
	case y == "bottom":
		g.Angle = math.Pi
	default:
		return invalid("gradient direction", "missing")
	}
	return nil
}

func parseRadialGradient(args [][]syntax.ComponentValue, current Color) (*Gradient, error) {
	if len(args) == 0 {
		return nil, invalid("radial-gradient", "without arguments")
	}
	g := &Gradient{Center: Center}
	if !IsColor(args[0][0]) {
		if err := g.setRadialShape(args[0]); err != nil {
			return nil, err
		}
		args = args[1:]
	}
	stops, err := parseColorStops(args, current)
	if err != nil {
		return nil, err
	}
	g.Stops = stops
	return g, nil
}

func (g *Gradient) setRadialShape(values []syntax.ComponentValue) error {
	for i, v := range values {
		switch {
		case v.IsIdent("at"):
			c, err := ParseOffset2D(values[i+1:])
			if err != nil {
				return err
			}
			g.Center = c
			return nil
		case v.IsIdent("circle"):
			g.Shape = Circle
		case v.IsIdent("ellipse"):
			g.Shape = Ellipse
		case v.Is(syntax.IdentToken):
			ext, ok := radialExtents[strings.ToLower(v.Token.Value)]
			if !ok {
				return invalid("radial-gradient shape", v)
			}
			g.Extent = ext
		default:
			d, err := ParseDimen(v)
			if err != nil {
				return err
			}
			g.Extent = ExplicitSize
			g.Size = append(g.Size, d)
		}
	}
	return nil
}

func parseColorStops(args [][]syntax.ComponentValue, current Color) ([]ColorStop, error) {
	if len(args) < 2 {
		return nil, invalid("gradient", "needs at least two color stops")
	}
	stops := make([]ColorStop, 0, len(args))
	for _, arg := range args {
		c, err := ParseColor(arg[0])
		if errors.Is(err, ErrCurrentColor) {
			c, err = current, nil
		}
		if err != nil {
			return nil, err
		}
		if len(arg) == 1 {
			stops = append(stops, ColorStop{Color: c})
			continue
		}
		if len(arg) > 3 {
			return nil, invalid("color stop", syntax.Serialize(arg))
		}
		for _, pos := range arg[1:] {
			d, err := ParseDimen(pos)
			if err != nil {
				return nil, err
			}
			stops = append(stops, ColorStop{Color: c, Stop: d})
		}
	}
	return stops, nil
}

// --- Positions -------------------------------------------------------------

var positionKeywords = map[string]DimenT{
	"left":   Percentage(0),
	"top":    Percentage(0),
	"center": Percentage(50),
	"right":  Percentage(100),
	"bottom": Percentage(100),
}

// ParseOffset2D decodes a one- or two-value CSS position, such as
// `left 10px`, `top` or `50% 25%`.
func ParseOffset2D(values []syntax.ComponentValue) (Offset2D, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 0 || len(vs) > 2 {
		return Offset2D{}, invalid("position", syntax.Serialize(values))
	}
	if len(vs) == 1 {
		if vs[0].IsIdent("top") || vs[0].IsIdent("bottom") {
			y, err := positionComponent(vs[0])
			return Offset2D{X: Percentage(50), Y: y}, err
		}
		x, err := positionComponent(vs[0])
		return Offset2D{X: x, Y: Percentage(50)}, err
	}
	a, b := vs[0], vs[1]
	if a.IsIdent("top") || a.IsIdent("bottom") || b.IsIdent("left") || b.IsIdent("right") {
		a, b = b, a
	}
	x, err := positionComponent(a)
	if err != nil {
		return Offset2D{}, err
	}
	y, err := positionComponent(b)
	return Offset2D{X: x, Y: y}, err
}

func positionComponent(cv syntax.ComponentValue) (DimenT, error) {
	if cv.Is(syntax.IdentToken) {
		if d, ok := positionKeywords[strings.ToLower(cv.Token.Value)]; ok {
			return d, nil
		}
	}
	d, err := ParseDimen(cv)
	if err == nil && d.IsAuto() {
		err = invalid("position", cv)
	}
	return d, err
}
