// Package twistsnap builds twist-and-snap connector pairs: a plug
// with polar snap-fit lugs and a socket with entry channels,
// circumferential grooves and detent pins. The plug inserts through
// the channels and locks with a partial twist.
package twistsnap

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2/must2"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// arcFacets is the segment count per sector arc.
const arcFacets = 8

// Params describes a twist-snap pair. Distances are model units,
// the connector and socket must share the same values to mate.
type Params struct {
	// ConnectorRadius is the radius of the plug cylinder.
	ConnectorRadius float64
	// Tolerance is the radial and vertical print clearance between
	// plug and socket.
	Tolerance float64
	// ArcPercent is the fraction of the circumference each lug
	// covers, in percent.
	ArcPercent float64
	// SnapfitCount is the number of lugs around the plug.
	SnapfitCount int
	// RadiusExtension is how far the lugs reach beyond the plug.
	RadiusExtension float64
	// WallWidth and WallDepth size the socket shell.
	WallWidth, WallDepth float64
	// SnapfitHeight is the lug height.
	SnapfitHeight float64
}

// DefaultParams returns a pair sized for small FDM-printed fittings.
func DefaultParams() Params {
	return Params{
		ConnectorRadius: 4.5,
		Tolerance:       0.12,
		ArcPercent:      10,
		SnapfitCount:    4,
		RadiusExtension: 2 * 2.0 / 3.0,
		WallWidth:       2,
		WallDepth:       2,
		SnapfitHeight:   2,
	}
}

func (p Params) validate() error {
	switch {
	case p.ConnectorRadius <= 0:
		return errParam("connector radius %g <= 0", p.ConnectorRadius)
	case p.Tolerance < 0:
		return errParam("negative tolerance %g", p.Tolerance)
	case p.SnapfitCount < 1:
		return errParam("snapfit count %d < 1", p.SnapfitCount)
	case p.ArcPercent <= 0 || p.ArcPercent*2.2*float64(p.SnapfitCount) >= 100:
		return errParam("arc percentage %g leaves no wall between %d lug grooves", p.ArcPercent, p.SnapfitCount)
	case p.RadiusExtension <= p.Tolerance:
		return errParam("radius extension %g below tolerance", p.RadiusExtension)
	case p.WallWidth <= 0 || p.WallDepth <= 0 || p.SnapfitHeight <= 0:
		return errParam("wall width, wall depth and snapfit height must be positive")
	}
	return nil
}

// sector returns the 2D annular sector between radii rInner and
// rOuter spanning [a0, a1] degrees counterclockwise from +X.
func sector(rInner, rOuter, a0, a1 float64) sdf.SDF2 {
	verts := make([]r2.Vec, 0, 2*(arcFacets+1))
	for i := 0; i <= arcFacets; i++ {
		a := d2r(a0 + (a1-a0)*float64(i)/arcFacets)
		verts = append(verts, r2.Vec{X: rOuter * math.Cos(a), Y: rOuter * math.Sin(a)})
	}
	for i := arcFacets; i >= 0; i-- {
		a := d2r(a0 + (a1-a0)*float64(i)/arcFacets)
		verts = append(verts, r2.Vec{X: rInner * math.Cos(a), Y: rInner * math.Sin(a)})
	}
	return must2.Polygon(verts)
}

// arcDeg converts a lug arc given in percent of the circumference to
// degrees.
func arcDeg(percent float64) float64 { return percent * 360 / 100 }

// Connector returns the plug: a cylinder with SnapfitCount ramped
// lugs at the rim, each carrying a detent notch on its outer face.
// The plug stands on the XY plane pointing up, lug crests flush with
// the rim.
func Connector(p Params) (sdf.SDF3, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	r := p.ConnectorRadius
	ext := p.RadiusExtension
	h := p.SnapfitHeight
	baseH := 2 * p.WallDepth

	base := must3.Cylinder(baseH, r, 0)
	base3 := sdf.Transform3D(base, sdf.Translate3D(r3.Vec{Z: baseH / 2}))

	// Lug: full profile at the bottom ramping to the outer half at
	// the crest, so the flipped plug leads into the socket channel.
	half := arcDeg(p.ArcPercent) / 2
	root := sector(r-p.WallWidth/2, r+ext, -half, half)
	crest := sector(r+ext/2, r+ext, -half, half)
	lug := sdf.Transform3D(
		sdf.Loft3D(root, crest, h, 0),
		sdf.Translate3D(r3.Vec{Z: baseH - h/2}),
	)
	// Detent notch on the outer face where the socket pin seats.
	notch := must3.Cylinder(3*h, ext/2, 0)
	notch3 := sdf.Transform3D(notch, sdf.Translate3D(r3.Vec{X: r + ext, Z: baseH - h/2}))
	lug = sdf.Difference3D(lug, notch3)

	return sdf.Union3D(base3, sdf.RotateCopy3D(lug, p.SnapfitCount)), nil
}

// Socket returns the mating shell: a floor disc under a ring bored to
// fit the plug, with toleranced entry channels for the lugs, a
// circumferential groove the lugs twist into and detent pins that
// click into the lug notches at the end of the twist.
func Socket(p Params) (sdf.SDF3, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	r := p.ConnectorRadius
	ext := p.RadiusExtension
	h := p.SnapfitHeight
	tol := p.Tolerance
	outerR := r + p.WallWidth*4/3
	ringH := 2 * p.WallDepth

	floor := must3.Cylinder(p.WallDepth, outerR, 0)
	floor3 := sdf.Transform3D(floor, sdf.Translate3D(r3.Vec{Z: p.WallDepth / 2}))

	ring2 := sdf.Difference2D(
		must2.Circle(outerR),
		must2.Circle(r+tol),
	)
	ring := sdf.Transform3D(
		sdf.Extrude3D(ring2, ringH),
		sdf.Translate3D(r3.Vec{Z: p.WallDepth + ringH/2}),
	)

	var shell sdf.SDF3 = sdf.Union3D(floor3, ring)

	// Entry channels, full ring height.
	chHalf := arcDeg(p.ArcPercent) * 1.1 / 2
	channel := sdf.Transform3D(
		sdf.Extrude3D(sector(r-p.WallWidth, r+ext+tol, -chHalf, chHalf), ringH),
		sdf.Translate3D(r3.Vec{Z: p.WallDepth + ringH/2}),
	)
	shell = sdf.Difference3D(shell, sdf.RotateCopy3D(channel, p.SnapfitCount))

	// Twist grooves at the bottom of the ring, running clockwise
	// from each channel.
	a := arcDeg(p.ArcPercent)
	grooveH := h + tol
	groove := sdf.Transform3D(
		sdf.Extrude3D(sector(r-p.WallWidth, r+ext+tol, -a*1.65, a*0.55), grooveH),
		sdf.Translate3D(r3.Vec{Z: p.WallDepth + grooveH/2}),
	)
	shell = sdf.Difference3D(shell, sdf.RotateCopy3D(groove, p.SnapfitCount))

	// Detent pins at the end of each groove.
	pin := must3.Cylinder(2*h, ext/2-tol, 0)
	pinPos := sdf.Rotate(d2r(-4 * p.ArcPercent)).
		MulPosition(r2.Vec{X: r + ext + 2*tol})
	pin3 := sdf.Transform3D(pin, sdf.Translate3D(r3.Vec{X: pinPos.X, Y: pinPos.Y, Z: h}))
	return sdf.Union3D(shell, sdf.RotateCopy3D(pin3, p.SnapfitCount)), nil
}
