package css_test

import (
	"testing"

	"github.com/npillmayer/rendertree/css"
	"github.com/npillmayer/rendertree/css/syntax"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %s", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(80)
	var p float64
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %g", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	if p != 80 {
		t.Errorf("expected extracted percentage to be 80, is %g", p)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	e := css.DimenPattern[string](css.Percentage(50))
	kind := e.OneOf(css.DimenPatterns[string]{
		Percent: "percent",
		Default: "other",
	})
	if kind != "percent" {
		t.Errorf("expected 50%% to match percent pattern, matched %q", kind)
	}
}

func TestParseDimen(t *testing.T) {
	tests := map[string]string{
		"10px":  "10px",
		"12pt":  "16px",
		"1in":   "96px",
		"0":     "0px",
		"50%":   "50%",
		"1.5em": "1.5em",
		"2vw":   "2vw",
		"auto":  "auto",
	}
	for input, want := range tests {
		d, err := css.ParseDimenValue(syntax.ParseValue(input))
		if err != nil {
			t.Errorf("%q: unexpected error %v", input, err)
			continue
		}
		if d.String() != want {
			t.Errorf("%q: expected %s, have %s", input, want, d)
		}
	}
	if _, err := css.ParseDimenValue(syntax.ParseValue("10furlongs")); err == nil {
		t.Errorf("expected unknown unit to be rejected")
	}
	if _, err := css.ParseDimenValue(syntax.ParseValue("1px 2px")); err == nil {
		t.Errorf("expected two values to be rejected")
	}
}

func TestDimenResolve(t *testing.T) {
	if r := css.Percentage(25).Resolve(200); r != 50 {
		t.Errorf("expected 25%% of 200 to be 50, is %g", r)
	}
	if r := css.Pixels(7).Resolve(200); r != 7 {
		t.Errorf("expected 7px to resolve to 7, is %g", r)
	}
	if r := css.Relative(2, "em").Resolve(0); r != 32 {
		t.Errorf("expected 2em to resolve to 32, is %g", r)
	}
}
