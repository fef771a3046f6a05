package maybe_test

import (
	"strings"
	"testing"

	. "github.com/npillmayer/rendertree/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just("url(bg.png)") // infers type
	y := Nothing[string]()

	var v string
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%s)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != "url(bg.png)" {
		t.Errorf("expected v to be url(bg.png), is %#v", v)
	}

	var w string
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%s)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != "" {
		t.Errorf("expected w to be empty, is %#v", w)
	}
	if !y.IsNothing() {
		t.Errorf("expected Nothing to be nothing")
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just("none").Get(); !ok || v != "none" {
		t.Errorf("expected Just(none).Get() to yield none, have %q, %v", v, ok)
	}
	if _, ok := Nothing[string]().Get(); ok {
		t.Errorf("expected Nothing.Get() to yield false")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just("a.png")
	if xx := x.WithDefault("none"); xx != "a.png" {
		t.Errorf("expected Just(a.png) to have value a.png, has %q", xx)
	}
	y := Nothing[string]()
	if yy := y.WithDefault("none"); yy != "none" {
		t.Errorf("expected Nothing to default to none, is %q", yy)
	}
}

func TestMaybeMap(t *testing.T) {
	upper := Just("bg.png").Map(strings.ToUpper)
	if v, _ := upper.Get(); v != "BG.PNG" {
		t.Errorf("expected Just(bg.png).Map(upper) to be BG.PNG, is %q", v)
	}
	if !Nothing[string]().Map(strings.ToUpper).IsNothing() {
		t.Errorf("expected Nothing.Map(…) to be Nothing")
	}
}

func TestMaybeAndThenOneOf(t *testing.T) {
	nonEmpty := func(s string) Maybe[string] {
		if s != "" && s != "none" {
			return Just(s)
		}
		return Nothing[string]()
	}
	if !AndThen(nonEmpty, Just("none")).IsNothing() {
		t.Errorf("expected Just(none) |> andThen(nonEmpty) to be Nothing")
	}
	first := OneOf(Nothing[string](), AndThen(nonEmpty, Just("b.png")), Just("c.png"))
	if v := first.WithDefault(""); v != "b.png" {
		t.Errorf("expected first Just to be b.png, is %q", v)
	}
}
