package joinery

import (
	"math"
	"testing"
)

func TestAngleTo(t *testing.T) {
	for _, tc := range []struct {
		p, q Point
		want float64
	}{
		{Point{0, 0}, Point{1, 0}, 0},
		{Point{0, 0}, Point{1, 1}, 45},
		{Point{0, 0}, Point{0, 1}, 90},
		{Point{0, 0}, Point{-1, 0}, 180},
		{Point{0, 0}, Point{0, -1}, 270},
		{Point{2, 3}, Point{1, 2}, 225},
	} {
		got := tc.p.AngleTo(tc.q)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("AngleTo(%v, %v) = %g, want %g", tc.p, tc.q, got, tc.want)
		}
	}
}

func TestAngleToReverse(t *testing.T) {
	// The reverse direction differs by 180 degrees, modulo 360.
	pts := []Point{{1, 2}, {-3, 0.5}, {10, -7}, {0, 1}}
	for i, p := range pts {
		for j, q := range pts {
			if i == j {
				continue
			}
			fwd := p.AngleTo(q)
			rev := q.AngleTo(p)
			diff := math.Mod(rev-fwd+720, 360)
			if math.Abs(diff-180) > 1e-9 {
				t.Errorf("angle %v->%v = %g, %v->%v = %g, want 180 apart", p, q, fwd, q, p, rev)
			}
			if fwd < 0 || fwd >= 360 {
				t.Errorf("angle %g outside [0,360)", fwd)
			}
		}
	}
}

func TestAngleToCoincidentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for coincident points")
		}
	}()
	Point{1, 1}.AngleTo(Point{1, 1})
}

func TestDistanceTo(t *testing.T) {
	a := Point{0, 10}
	b := Point{10, 10}
	if d := a.DistanceTo(b); d != 10 {
		t.Errorf("DistanceTo = %g, want 10", d)
	}
	if a.DistanceTo(b) != b.DistanceTo(a) {
		t.Error("distance is not symmetric")
	}
	if d := a.DistanceTo(a); d != 0 {
		t.Errorf("self distance = %g, want 0", d)
	}
}

func TestRelatedPointRoundtrip(t *testing.T) {
	p := Point{3, -2}
	q := p.RelatedPoint(37, 5)
	if math.Abs(p.DistanceTo(q)-5) > 1e-12 {
		t.Errorf("distance to related point = %g, want 5", p.DistanceTo(q))
	}
	if a := p.AngleTo(q); math.Abs(a-37) > 1e-9 {
		t.Errorf("angle to related point = %g, want 37", a)
	}
	back := q.RelatedPoint(37, -5)
	if math.Abs(back.X-p.X) > 1e-12 || math.Abs(back.Y-p.Y) > 1e-12 {
		t.Errorf("negative distance did not return to origin point: %v", back)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(Point{0, 0}, Point{10, 10})
	if got != (Point{5, 5}) {
		t.Errorf("Midpoint = %v, want {5 5}", got)
	}
}

func TestShiftedMidpoint(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}
	if got := ShiftedMidpoint(a, b, 0); got != Midpoint(a, b) {
		t.Errorf("zero shift = %v, want midpoint", got)
	}
	got := ShiftedMidpoint(a, b, 2)
	if math.Abs(got.X-7) > 1e-12 || math.Abs(got.Y) > 1e-12 {
		t.Errorf("ShiftedMidpoint = %v, want {7 0}", got)
	}
	// Shifted midpoint stays on the a-b line.
	a, b = Point{1, 1}, Point{4, 5}
	got = ShiftedMidpoint(a, b, 1.5)
	if math.Abs(a.AngleTo(got)-a.AngleTo(b)) > 1e-9 {
		t.Errorf("shifted midpoint %v left the line %v-%v", got, a, b)
	}
}

func TestShiftedMidpointCoincidentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for coincident endpoints")
		}
	}()
	ShiftedMidpoint(Point{2, 2}, Point{2, 2}, 1)
}
