package css

import (
	"errors"
	"fmt"

	"github.com/npillmayer/rendertree/css/syntax"
)

// Shadow is a single layer of `box-shadow` or `text-shadow`.
type Shadow struct {
	Inset   bool
	OffsetX DimenT
	OffsetY DimenT
	Blur    DimenT
	Spread  DimenT
	Color   Color
}

func (s Shadow) String() string {
	inset := ""
	if s.Inset {
		inset = "inset "
	}
	return fmt.Sprintf("%s%s %s %s %s %s", inset, s.OffsetX, s.OffsetY, s.Blur, s.Spread, s.Color)
}

// ParseShadows decodes a comma-separated list of shadows. `none` yields an
// empty list. Shadows without a color use current. If boxShadow is false
// (text shadows), neither `inset` nor a spread distance are accepted.
func ParseShadows(values []syntax.ComponentValue, current Color, boxShadow bool) ([]Shadow, error) {
	if syntax.IsIdentWithValue(values, "none") {
		return nil, nil
	}
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid("shadow", syntax.Serialize(values))
	}
	shadows := make([]Shadow, 0, len(groups))
	for _, g := range groups {
		s, err := parseShadow(g, current, boxShadow)
		if err != nil {
			return nil, err
		}
		shadows = append(shadows, s)
	}
	return shadows, nil
}

func parseShadow(values []syntax.ComponentValue, current Color, boxShadow bool) (Shadow, error) {
	s := Shadow{
		Color:  current,
		Blur:   Pixels(0),
		Spread: Pixels(0),
	}
	var lengths []DimenT
	hasColor := false
	for _, cv := range values {
		if boxShadow && cv.IsIdent("inset") {
			s.Inset = true
			continue
		}
		if d, err := ParseDimen(cv); err == nil && !d.IsAuto() && cv.Token.Type != syntax.IdentToken {
			lengths = append(lengths, d)
			continue
		}
		c, err := ParseColor(cv)
		switch {
		case errors.Is(err, ErrCurrentColor):
			c = current
		case err != nil:
			return s, err
		}
		if hasColor {
			return s, invalid("shadow with two colors", syntax.Serialize(values))
		}
		s.Color, hasColor = c, true
	}
	max := 3
	if boxShadow {
		max = 4
	}
	if len(lengths) < 2 || len(lengths) > max {
		return s, invalid("shadow", syntax.Serialize(values))
	}
	s.OffsetX, s.OffsetY = lengths[0], lengths[1]
	if len(lengths) > 2 {
		s.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		s.Spread = lengths[3]
	}
	return s, nil
}
