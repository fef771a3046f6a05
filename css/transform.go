package css

import (
	"math"
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
)

// Transform is a 2D affine transform [a b c d e f], mapping (x, y) to
// (a·x + c·y + e, b·x + d·y + f).
type Transform [6]float64

// Identity is the identity transform.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// Mul returns the transform applying n first, then t.
func (t Transform) Mul(n Transform) Transform {
	return Transform{
		t[0]*n[0] + t[2]*n[1],
		t[1]*n[0] + t[3]*n[1],
		t[0]*n[2] + t[2]*n[3],
		t[1]*n[2] + t[3]*n[3],
		t[0]*n[4] + t[2]*n[5] + t[4],
		t[1]*n[4] + t[3]*n[5] + t[5],
	}
}

// ParseTransform decodes property `transform`. `none` yields nil.
//
// Computed styles always serialize transforms as matrix() or matrix3d(), for
// which only the 2D part is kept. For hosts reporting specified values,
// transform functions with absolute lengths are composed into a matrix.
func ParseTransform(values []syntax.ComponentValue) (*Transform, error) {
	vs := syntax.NonWhitespace(values)
	if len(vs) == 0 {
		return nil, invalid("transform", "empty")
	}
	if len(vs) == 1 && vs[0].IsIdent("none") {
		return nil, nil
	}
	m := Identity
	for _, cv := range vs {
		if !cv.IsFunction() {
			return nil, invalid("transform", cv)
		}
		t, err := transformFunction(cv)
		if err != nil {
			return nil, err
		}
		m = m.Mul(t)
	}
	return &m, nil
}

func transformFunction(cv syntax.ComponentValue) (Transform, error) {
	args := cv.Args()
	arg := func(i int) syntax.ComponentValue {
		if i < len(args) && len(args[i]) == 1 {
			return args[i][0]
		}
		return syntax.ComponentValue{}
	}
	name := strings.ToLower(cv.Name())
	switch name {
	case "matrix", "matrix3d":
		n := 6
		pick := []int{0, 1, 2, 3, 4, 5}
		if name == "matrix3d" {
			n = 16
			pick = []int{0, 1, 4, 5, 12, 13}
		}
		if len(args) != n {
			return Identity, invalid(name, cv)
		}
		var t Transform
		for i, j := range pick {
			v := arg(j)
			if !v.Is(syntax.NumberToken) {
				return Identity, invalid(name, cv)
			}
			t[i] = v.Token.Number
		}
		return t, nil
	case "translate", "translatex", "translatey":
		x, y, err := transformArgs(args, pixelArg, 0)
		if name == "translatey" {
			x, y = 0, x
		} else if name == "translatex" {
			y = 0
		}
		return Transform{1, 0, 0, 1, x, y}, err
	case "scale", "scalex", "scaley":
		x, y, err := transformArgs(args, numberArg, math.NaN())
		if math.IsNaN(y) {
			y = x
		}
		if name == "scalex" {
			y = 1
		} else if name == "scaley" {
			x, y = 1, x
		}
		return Transform{x, 0, 0, y, 0, 0}, err
	case "rotate":
		if len(args) != 1 {
			return Identity, invalid(name, cv)
		}
		a, err := angle(arg(0).Token)
		sin, cos := math.Sincos(a)
		return Transform{cos, sin, -sin, cos, 0, 0}, err
	case "skew", "skewx", "skewy":
		ax, ay, err := transformArgs(args, angleArg, 0)
		if name == "skewy" {
			ax, ay = 0, ax
		} else if name == "skewx" {
			ay = 0
		}
		return Transform{1, math.Tan(ay), math.Tan(ax), 1, 0, 0}, err
	}
	return Identity, invalid("transform function", cv)
}

func transformArgs(args [][]syntax.ComponentValue, decode func(syntax.ComponentValue) (float64, error),
	dflt float64) (x, y float64, err error) {
	//
	if len(args) == 0 || len(args) > 2 || len(args[0]) != 1 {
		return 0, 0, invalid("transform arguments", args)
	}
	if x, err = decode(args[0][0]); err != nil {
		return
	}
	y = dflt
	if len(args) == 2 {
		if len(args[1]) != 1 {
			return 0, 0, invalid("transform arguments", args)
		}
		y, err = decode(args[1][0])
	}
	return
}

func pixelArg(cv syntax.ComponentValue) (float64, error) {
	d, err := ParseDimen(cv)
	if err != nil {
		return 0, err
	}
	if !d.IsAbsolute() {
		return 0, invalid("translation", cv)
	}
	return d.Px(), nil
}

func numberArg(cv syntax.ComponentValue) (float64, error) {
	switch {
	case cv.Is(syntax.NumberToken):
		return cv.Token.Number, nil
	case cv.Is(syntax.PercentageToken):
		return cv.Token.Number / 100, nil
	}
	return 0, invalid("number", cv)
}

func angleArg(cv syntax.ComponentValue) (float64, error) {
	if cv.Kind != syntax.TokenValue {
		return 0, invalid("angle", cv)
	}
	return angle(cv.Token)
}
