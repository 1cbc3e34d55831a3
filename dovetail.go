package joinery

import (
	"math"

	"github.com/printforge/joinery/clickfit"
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// DovetailPart selects which side of a dovetail split to generate.
type DovetailPart int

const (
	// Tail is the side carrying the tongue.
	Tail DovetailPart = iota
	// Socket is the side carrying the cavity.
	Socket
)

func (d DovetailPart) String() string {
	switch d {
	case Tail:
		return "tail"
	case Socket:
		return "socket"
	}
	return "unknown"
}

// DovetailParams describes a dovetail split of a solid along a line on
// the base (XY) plane. All angles are in degrees, all distances in the
// model's units (millimeters for 3D printing).
type DovetailParams struct {
	// Start and End are the cut line endpoints. The tail keeps the
	// material to the left of the start→end direction.
	Start, End Point
	// Section selects the subpart to generate.
	Section DovetailPart
	// LinearOffset shifts the tongue center along the cut line.
	LinearOffset float64
	// Tolerance is the print clearance. The socket cavity is grown by
	// this amount on every contact edge, so mating faces end up
	// 2×Tolerance apart across a joint.
	Tolerance float64
	// FlareAngle pitches the tongue flanks outward. 0 gives a square
	// tongue with no mechanical lock.
	FlareAngle float64
	// ScarfAngle tilts the whole cut about the line's width axis so
	// the joint prints without a vertical seam face.
	ScarfAngle float64
	// TaperAngle wedges the tongue vertically so the joint tightens
	// as it seats. Must not oppose the sign of VerticalOffset.
	TaperAngle float64
	// LengthRatio is tongue length over cut line length.
	LengthRatio float64
	// DepthRatio is tongue depth over cut line length.
	DepthRatio float64
	// VerticalOffset carves the dovetail on only part of the height,
	// leaving a straight cut on the rest as a hard stop. Positive
	// leaves the straight cut at the bottom, negative at the top.
	VerticalOffset float64
	// ClickFitRadius enables snap-fit divots on the mating faces when
	// nonzero.
	ClickFitRadius float64
}

// DefaultDovetail returns dovetail parameters with proven defaults
// for FDM printing: 0.05 clearance, 15 degree flare, tongue a third
// of the line long and a sixth of the line deep.
func DefaultDovetail(start, end Point, section DovetailPart) DovetailParams {
	return DovetailParams{
		Start:       start,
		End:         end,
		Section:     section,
		Tolerance:   0.05,
		FlareAngle:  15,
		LengthRatio: 1.0 / 3.0,
		DepthRatio:  1.0 / 6.0,
	}
}

func (cfg DovetailParams) validate(part sdf.SDF3) error {
	if part == nil {
		return errInput("nil part")
	}
	if cfg.Section != Tail && cfg.Section != Socket {
		return errInput("unknown section %d", int(cfg.Section))
	}
	if cfg.Start == cfg.End {
		return errInput("zero-length split line at (%g,%g)", cfg.Start.X, cfg.Start.Y)
	}
	if cfg.Tolerance < 0 {
		return errInput("negative tolerance %g", cfg.Tolerance)
	}
	if cfg.LengthRatio < 0 || cfg.LengthRatio > 1 {
		return errInput("length ratio %g outside [0,1]", cfg.LengthRatio)
	}
	if cfg.DepthRatio < 0 || cfg.DepthRatio > 1 {
		return errInput("depth ratio %g outside [0,1]", cfg.DepthRatio)
	}
	if cfg.ClickFitRadius < 0 {
		return errInput("negative click-fit radius %g", cfg.ClickFitRadius)
	}
	for _, a := range [...]struct {
		name string
		deg  float64
	}{
		{"flare", cfg.FlareAngle},
		{"scarf", cfg.ScarfAngle},
		{"taper", cfg.TaperAngle},
	} {
		if math.Abs(a.deg) >= 90 {
			return errInput("%s angle %g outside (-90,90)", a.name, a.deg)
		}
	}
	height := boxSize(part.Bounds()).Z
	if math.Abs(cfg.VerticalOffset) > height {
		return errInput("vertical offset %g exceeds part height %g", cfg.VerticalOffset, height)
	}
	// A wedge that opens against the assembly direction set by the
	// hard stop cannot seat.
	if cfg.VerticalOffset < 0 && cfg.TaperAngle > 0 {
		return errInput("positive taper with negative vertical offset cannot assemble")
	}
	if cfg.VerticalOffset > 0 && cfg.TaperAngle < 0 {
		return errInput("negative taper with positive vertical offset cannot assemble")
	}
	if solidEmpty(part) {
		return errInput("part has no volume")
	}
	return nil
}

// Dovetail splits part along cfg's cut line and returns the requested
// subpart. The tail is generated at nominal size, the socket cavity is
// grown by cfg.Tolerance. Returns ErrInvalidInput for bad parameters,
// ErrGeometry when the tongue profile cannot be built and ErrBooleanOp
// when the cut misses the part.
func Dovetail(part sdf.SDF3, cfg DovetailParams) (sdf.SDF3, error) {
	if err := cfg.validate(part); err != nil {
		return nil, err
	}
	grow := 0.0
	if cfg.Section == Socket {
		grow = cfg.Tolerance
	}
	tool, err := splitTool(part, cfg, grow)
	if err != nil {
		return nil, err
	}
	var sub sdf.SDF3
	if cfg.Section == Tail {
		sub = sdf.Intersect3D(part, tool)
	} else {
		sub = sdf.Difference3D(part, tool)
	}
	if solidEmpty(sub) {
		return nil, errBool("%s subpart is empty, cut line (%g,%g)-(%g,%g) misses the part",
			cfg.Section, cfg.Start.X, cfg.Start.Y, cfg.End.X, cfg.End.Y)
	}
	if cfg.ClickFitRadius > 0 {
		sub, err = stampDivots(sub, part, cfg)
		if err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// Split returns both subparts of the same cut. The two calls share
// every line and fit parameter so the results mate.
func Split(part sdf.SDF3, cfg DovetailParams) (tail, socket sdf.SDF3, err error) {
	cfg.Section = Tail
	tail, err = Dovetail(part, cfg)
	if err != nil {
		return nil, nil, err
	}
	cfg.Section = Socket
	socket, err = Dovetail(part, cfg)
	if err != nil {
		return nil, nil, err
	}
	return tail, socket, nil
}

// splitTool builds the cutting solid: one or two lofted bands spanning
// the part's full height. grow expands every tool outline, producing
// the socket clearance.
func splitTool(part sdf.SDF3, cfg DovetailParams, grow float64) (sdf.SDF3, error) {
	bb := part.Bounds()
	maxDim := maxDimension(part)
	zMid := (bb.Min.Z + bb.Max.Z) / 2
	scarf := math.Tan(d2r(cfg.ScarfAngle))
	taper := math.Tan(d2r(cfg.TaperAngle))

	face := func(z, inset float64, straight bool) (sdf.SDF2, error) {
		s, err := subpartOutline(maxDim, cfg, (z-zMid)*scarf, inset, straight)
		if err != nil {
			return nil, err
		}
		if grow != 0 {
			s = sdf.Offset2D(s, grow)
		}
		return s, nil
	}
	band := func(zLow, zHigh float64, straight bool) (sdf.SDF3, error) {
		insetLow := 0.0
		if !straight {
			insetLow = (zHigh - zLow) * taper
		}
		lo, err := face(zLow, insetLow, straight)
		if err != nil {
			return nil, err
		}
		hi, err := face(zHigh, 0, straight)
		if err != nil {
			return nil, err
		}
		s := sdf.Loft3D(lo, hi, zHigh-zLow, 0)
		return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: (zLow + zHigh) / 2})), nil
	}

	vo := cfg.VerticalOffset
	if vo == 0 {
		return band(bb.Min.Z, bb.Max.Z, false)
	}
	// The hard stop plane is shifted by half the clearance on the
	// socket so the tail bottoms out on the dovetail, not the stop.
	if vo > 0 {
		zSplit := bb.Min.Z + vo
		if cfg.Section == Socket {
			zSplit -= cfg.Tolerance / 2
		}
		lower, err := band(bb.Min.Z, zSplit, true)
		if err != nil {
			return nil, err
		}
		upper, err := band(zSplit, bb.Max.Z, false)
		if err != nil {
			return nil, err
		}
		return sdf.Union3D(lower, upper), nil
	}
	zSplit := bb.Max.Z + vo
	if cfg.Section == Socket {
		zSplit += cfg.Tolerance / 2
	}
	lower, err := band(bb.Min.Z, zSplit, false)
	if err != nil {
		return nil, err
	}
	upper, err := band(zSplit, bb.Max.Z, true)
	if err != nil {
		return nil, err
	}
	return sdf.Union3D(lower, upper), nil
}

// stampDivots adds or subtracts the click-fit features on the mating
// faces of a subpart: one divot on the tongue's outer face near the
// top of the dovetail band and one near the bottom at each end of the
// cut line. Both subparts compute identical centers and orientations
// so bumps land in dimples, only the add/cut polarity differs.
func stampDivots(sub, part sdf.SDF3, cfg DovetailParams) (sdf.SDF3, error) {
	r := cfg.ClickFitRadius
	bb := part.Bounds()
	height := boxSize(bb).Z
	angle := cfg.Start.AngleTo(cfg.End)
	length := cfg.Start.DistanceTo(cfg.End)
	scarf := math.Tan(d2r(cfg.ScarfAngle))
	taper := math.Tan(d2r(cfg.TaperAngle))
	vo := cfg.VerticalOffset

	// Height of the dovetail band's top face, relative to the part
	// bottom. The tongue ends there when the straight cut is on top.
	bandTop := height
	if vo < 0 {
		bandTop = height + vo
	}

	// Lateral shift of the cut at height z (from the part bottom),
	// along the tongue direction. Zero at mid-height.
	tiltAt := func(z float64) float64 { return (z - height/2) * scarf }

	mode := func(add bool) func(a, b sdf.SDF3) sdf.SDF3 {
		if add {
			return func(a, b sdf.SDF3) sdf.SDF3 { return sdf.Union3D(a, b) }
		}
		return func(a, b sdf.SDF3) sdf.SDF3 { return sdf.Difference3D(a, b) }
	}

	stamp := func(s sdf.SDF3, center Point, z, aboutX float64, add bool) (sdf.SDF3, error) {
		d, err := clickfit.Divot(r, add, true)
		if err != nil {
			return nil, err
		}
		m := sdf.Translate3D(r3.Vec{X: center.X, Y: center.Y, Z: bb.Min.Z + z}).
			Mul(sdf.RotateZ(d2r(angle))).
			Mul(sdf.RotateX(d2r(aboutX)))
		return mode(add)(s, sdf.Transform3D(d, m)), nil
	}

	// The tongue's outer face carries both the scarf tilt and the
	// taper wedge.
	faceAngle := cfg.ScarfAngle + cfg.TaperAngle

	topAdd := (cfg.Section == Tail) != (vo < 0)
	bottomAdd := (cfg.Section == Socket) == (vo >= 0)

	topZ := bandTop - 2*r
	topDepth := length*cfg.DepthRatio - (bandTop-topZ)*taper
	topCenter := ShiftedMidpoint(cfg.Start, cfg.End, cfg.LinearOffset).
		RelatedPoint(angle-90, tiltAt(topZ)+topDepth)
	topAboutX := 90 + faceAngle
	if vo < 0 {
		topAboutX = -90 + faceAngle
	}

	bottomZ := 2 * r
	bottomShift := tiltAt(bottomZ)
	startSide := cfg.Start.RelatedPoint(angle, 2*r).RelatedPoint(angle-90, bottomShift)
	endSide := cfg.End.RelatedPoint(angle, -2*r).RelatedPoint(angle-90, bottomShift)
	bottomAboutX := -90 + cfg.ScarfAngle
	if vo < 0 {
		bottomAboutX = 90 + cfg.ScarfAngle
	}

	var err error
	sub, err = stamp(sub, topCenter, topZ, topAboutX, topAdd)
	if err != nil {
		return nil, err
	}
	sub, err = stamp(sub, startSide, bottomZ, bottomAboutX, bottomAdd)
	if err != nil {
		return nil, err
	}
	return stamp(sub, endSide, bottomZ, bottomAboutX, bottomAdd)
}
