package css_test

import (
	"testing"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/css/syntax"
)

func TestPositionBasic(t *testing.T) {
	a := css.Absolute()
	switch m := a.Match(); m {
	case m.IsKind(css.Absolute()):
		t.Logf("position is absolute")
	default:
		t.Errorf("expected Absolute() to be an absolute position, isn't: %#v", a)
	}
	if !a.IsAbsolute() || !a.IsPositioned() {
		t.Errorf("expected absolute position to be positioned")
	}

	static := css.Static()
	switch m := static.Match(); m {
	case m.IsKind(css.Static()):
		t.Logf("position is static")
	default:
		t.Errorf("expected position to match kind(static), isn't: %#v", static)
	}
	if static.IsPositioned() {
		t.Errorf("expected static position not to be positioned")
	}
}

func TestPositionPattern(t *testing.T) {
	f := css.Fixed()
	m := css.PositionPattern[int](f)
	out := m.OneOf(css.PositionPatterns[int]{
		Unset:   10,
		Fixed:   99,
		Default: -1,
	})
	if out != 99 {
		t.Errorf("expected out to be 99, isn't: %#v", out)
	}
	s := css.PositionPattern[string](css.Static()).OneOf(css.PositionPatterns[string]{
		Sticky:  "sticky",
		Default: "flow",
	})
	if s != "flow" {
		t.Errorf("expected static position to match default, matched %q", s)
	}
}

func TestParsePosition(t *testing.T) {
	pos, err := css.ParsePosition(syntax.ParseValue(" Sticky "))
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsSticky() {
		t.Errorf("expected position to be sticky, is %s", pos)
	}
	if _, err = css.ParsePosition(syntax.ParseValue("floating")); err == nil {
		t.Errorf("expected unknown position keyword to be rejected")
	}
	if p := css.Position("no-such-thing"); !p.IsUnset() {
		t.Errorf("expected illegal position to be unset, is %s", p)
	}
}
