package joinery

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position on the base (XY) plane. Points are compared
// coordinate-wise with ==, no epsilon.
type Point struct {
	X, Y float64
}

// V2 converts the point to a gonum r2 vector for kernel interop.
func (p Point) V2() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// AngleTo returns the direction from p to q in degrees, normalized
// to [0, 360). It panics if p == q since the direction is undefined.
func (p Point) AngleTo(q Point) float64 {
	if p == q {
		panic("joinery: angle between coincident points is undefined")
	}
	deg := r2d(math.Atan2(q.Y-p.Y, q.X-p.X))
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// DistanceTo returns the euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// RelatedPoint returns the point at the given distance from p along
// the given direction (degrees, counterclockwise from +X). A negative
// distance walks the opposite direction.
func (p Point) RelatedPoint(angle, distance float64) Point {
	rad := d2r(angle)
	return Point{
		X: p.X + distance*math.Cos(rad),
		Y: p.Y + distance*math.Sin(rad),
	}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// ShiftedMidpoint returns the midpoint of a and b displaced by shift
// along the a→b direction. shift is an absolute distance, negative
// shifts move towards a. Panics if a == b.
func ShiftedMidpoint(a, b Point, shift float64) Point {
	mid := Midpoint(a, b)
	if shift == 0 {
		return mid
	}
	return mid.RelatedPoint(a.AngleTo(b), shift)
}
