// Package clickfit builds snap-fit divots: truncated-cone bumps and
// their matching sockets. A cone wears slower and assembles easier
// than a plain half-sphere bump.
package clickfit

import (
	"errors"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// bumpTolerance shrinks the positive bump relative to its socket,
	// as a fraction of the radius.
	bumpTolerance = 0.05
	// bumpRatio and socketRatio set the top radius and height of the
	// truncated cone as a fraction of the base radius. The socket is
	// slightly deeper so the bump seats fully.
	bumpRatio   = 0.5
	socketRatio = 0.55
	// edgeRound rounds the cone edges as a fraction of the radius.
	// The kernel insets the cone radii by roughly the rounding before
	// dilating, so a large value narrows the divot near its base.
	edgeRound = 0.05
)

// Divot returns a snap-fit feature sitting on the XY plane, pointing
// along +Z. With positive set the bump is shrunk by a print tolerance,
// otherwise the socket is cut at full width and slightly deeper.
// extendBase unions a cylinder one radius long below the base so the
// feature cuts or bonds cleanly without exact surface placement.
func Divot(radius float64, positive, extendBase bool) (sdf.SDF3, error) {
	if radius <= 0 {
		return nil, errors.New("clickfit: radius must be positive")
	}
	tol := 0.0
	ratio := socketRatio
	if positive {
		tol = radius * bumpTolerance
		ratio = bumpRatio
	}
	height := radius * ratio
	cone := must3.Cone(height, radius-tol, radius*ratio, radius*edgeRound)
	s := sdf.Transform3D(cone, sdf.Translate3D(r3.Vec{Z: height / 2}))
	if extendBase {
		base := must3.Cylinder(radius, radius-tol, 0)
		base2 := sdf.Transform3D(base, sdf.Translate3D(r3.Vec{Z: -radius / 2}))
		s = sdf.Union3D(s, base2)
	}
	return s, nil
}
