package css

import (
	"math"
	"strings"

	"github.com/npillmayer/rendertree/css/syntax"
)

// ParseTime decodes a CSS time value into seconds.
func ParseTime(cv syntax.ComponentValue) (float64, error) {
	t := cv.Token
	switch {
	case cv.Is(syntax.DimensionToken):
		switch t.Unit {
		case "s":
			return t.Number, nil
		case "ms":
			return t.Number / 1000, nil
		}
	case cv.Is(syntax.NumberToken) && t.Number == 0:
		return 0, nil
	}
	return 0, invalid("time", cv)
}

// ParseTimeList decodes a comma-separated list of times (in seconds).
func ParseTimeList(values []syntax.ComponentValue) ([]float64, error) {
	groups := syntax.SplitCommas(values)
	if len(groups) == 0 {
		return nil, invalid("time list", syntax.Serialize(values))
	}
	times := make([]float64, 0, len(groups))
	for _, g := range groups {
		if len(g) != 1 {
			return nil, invalid("time", syntax.Serialize(g))
		}
		secs, err := ParseTime(g[0])
		if err != nil {
			return nil, err
		}
		times = append(times, secs)
	}
	return times, nil
}

// angle decodes a CSS angle into radians.
func angle(t syntax.Token) (float64, error) {
	if t.Type == syntax.NumberToken && t.Number == 0 {
		return 0, nil
	}
	if t.Type != syntax.DimensionToken {
		return 0, invalid("angle", t)
	}
	switch strings.ToLower(t.Unit) {
	case "deg":
		return t.Number * math.Pi / 180, nil
	case "grad":
		return t.Number * math.Pi / 200, nil
	case "rad":
		return t.Number, nil
	case "turn":
		return t.Number * 2 * math.Pi, nil
	}
	return 0, invalid("angle", t)
}

// isAngle checks if cv is an angle.
func isAngle(cv syntax.ComponentValue) bool {
	if cv.Kind != syntax.TokenValue || cv.Token.Type != syntax.DimensionToken {
		return false
	}
	_, err := angle(cv.Token)
	return err == nil
}

// ParseNumber decodes a plain number.
func ParseNumber(values []syntax.ComponentValue) (float64, error) {
	cv, err := single(values)
	if err != nil {
		return 0, err
	}
	if !cv.Is(syntax.NumberToken) {
		return 0, invalid("number", cv)
	}
	return cv.Token.Number, nil
}
