package joinery

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func lineParams(start, end Point) DovetailParams {
	cfg := DefaultDovetail(start, end, Tail)
	return cfg
}

func TestSplitPathAnchors(t *testing.T) {
	// Line of length 60 along +X: tongue is 20 long, 10 deep and
	// flares 15 degrees, protruding towards -Y.
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	path, err := splitPath(cfg.Start, cfg.End, cfg, 0)
	if err != nil {
		t.Fatal(err)
	}
	flare := 10 * math.Tan(d2r(15))
	for _, tc := range []struct {
		name string
		got  Point
		want Point
	}{
		{"baseStart", path.baseStart, Point{20, 0}},
		{"baseEnd", path.baseEnd, Point{40, 0}},
		{"tipStart", path.tipStart, Point{20 - flare, -10}},
		{"tipEnd", path.tipEnd, Point{40 + flare, -10}},
	} {
		if math.Abs(tc.got.X-tc.want.X) > 1e-9 || math.Abs(tc.got.Y-tc.want.Y) > 1e-9 {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestSplitPathLinearOffset(t *testing.T) {
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	cfg.LinearOffset = 5
	path, err := splitPath(cfg.Start, cfg.End, cfg, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(path.baseStart.X-25) > 1e-9 || math.Abs(path.baseEnd.X-45) > 1e-9 {
		t.Errorf("offset tongue spans [%g,%g], want [25,45]", path.baseStart.X, path.baseEnd.X)
	}
}

func TestSplitPathPointedTongue(t *testing.T) {
	// A taper inset equal to half the tongue length pinches the base
	// to a point, which is still a valid profile.
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	cfg.FlareAngle = 0
	cfg.DepthRatio = 1.0 / 3.0 // depth 20, survives the inset
	path, err := splitPath(cfg.Start, cfg.End, cfg, 10)
	if err != nil {
		t.Fatal(err)
	}
	if d := path.baseStart.DistanceTo(path.baseEnd); math.Abs(d) > 1e-9 {
		t.Errorf("pinched base width = %g, want 0", d)
	}
}

func TestSplitPathNegativeWidth(t *testing.T) {
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	// Inset exceeds the tongue depth of 10.
	_, err := splitPath(cfg.Start, cfg.End, cfg, 11)
	if !errors.Is(err, ErrGeometry) {
		t.Fatalf("err = %v, want ErrGeometry", err)
	}
}

func TestSubpartOutlineField(t *testing.T) {
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	s, err := subpartOutline(180, cfg, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		p      r2.Vec
		inside bool
	}{
		{r2.Vec{X: 30, Y: 20}, true},   // keep side of the line
		{r2.Vec{X: 30, Y: -5}, true},   // inside the tongue
		{r2.Vec{X: 30, Y: -15}, false}, // below the tongue tip
		{r2.Vec{X: 10, Y: -5}, false},  // beside the tongue
		{r2.Vec{X: 50, Y: -5}, false},
	} {
		d := s.Evaluate(tc.p)
		if (d < 0) != tc.inside {
			t.Errorf("Evaluate(%v) = %g, want inside=%v", tc.p, d, tc.inside)
		}
	}
}

func TestSubpartOutlineZeroDepth(t *testing.T) {
	// Zero depth ratio collapses the tongue onto the cut line. The
	// outline must degenerate to the straight cut instead of smoothing
	// the collinear anchors into a NaN field.
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	cfg.DepthRatio = 0
	s, err := subpartOutline(180, cfg, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		p      r2.Vec
		inside bool
	}{
		{r2.Vec{X: 30, Y: 5}, true},   // keep side of the line
		{r2.Vec{X: 30, Y: -1}, false}, // no tongue left
		{r2.Vec{X: 30, Y: -15}, false},
	} {
		d := s.Evaluate(tc.p)
		if math.IsNaN(d) {
			t.Fatalf("Evaluate(%v) = NaN", tc.p)
		}
		if (d < 0) != tc.inside {
			t.Errorf("Evaluate(%v) = %g, want inside=%v", tc.p, d, tc.inside)
		}
	}
}

func TestSubpartOutlineStraight(t *testing.T) {
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	s, err := subpartOutline(180, cfg, 0, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if d := s.Evaluate(r2.Vec{X: 30, Y: -5}); d < 0 {
		t.Errorf("straight outline contains tongue point, Evaluate = %g", d)
	}
	if d := s.Evaluate(r2.Vec{X: 30, Y: 5}); d > 0 {
		t.Errorf("straight outline misses keep side, Evaluate = %g", d)
	}
}

func TestSubpartOutlineTilt(t *testing.T) {
	cfg := lineParams(Point{0, 0}, Point{60, 0})
	s, err := subpartOutline(180, cfg, -3, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	// Shifting by -3 along angle-90 moves the cut towards +Y.
	if d := s.Evaluate(r2.Vec{X: 30, Y: 1}); d < 0 {
		t.Errorf("tilted cut should exclude y=1, Evaluate = %g", d)
	}
	if d := s.Evaluate(r2.Vec{X: 30, Y: 4}); d > 0 {
		t.Errorf("tilted cut should include y=4, Evaluate = %g", d)
	}
}
