package joinery

import (
	"math"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2"
	"github.com/soypat/sdf/form2/must2"
)

// smoothFacets is the facet count for tongue corner smoothing.
const smoothFacets = 5

// tonguePath holds the anchor points of the dovetail tongue along a
// cut line, ordered from the line's start to its end.
type tonguePath struct {
	start     Point // line start
	baseStart Point // tongue shoulder nearest start
	tipStart  Point // tongue tip nearest start
	tipEnd    Point // tongue tip nearest end
	baseEnd   Point // tongue shoulder nearest end
	end       Point // line end
}

// splitPath computes the tongue anchors for a cut line from start to
// end. taperInset shifts the shoulders inward and shortens the tongue
// depth, implementing the vertical wedge of a tapered joint. A tongue
// pinched to zero width is accepted, a negative width is not.
func splitPath(start, end Point, cfg DovetailParams, taperInset float64) (tonguePath, error) {
	angle := start.AngleTo(end)
	length := start.DistanceTo(end)

	tongueLength := length * cfg.LengthRatio
	tongueDepth := length*cfg.DepthRatio - taperInset
	if tongueDepth < 0 {
		return tonguePath{}, errGeom("taper inset %g exceeds tongue depth %g", taperInset, length*cfg.DepthRatio)
	}
	baseWidth := tongueLength - 2*taperInset
	if baseWidth < 0 {
		return tonguePath{}, errGeom("taper inset %g exceeds tongue half-length %g", taperInset, tongueLength/2)
	}
	flareExt := tongueDepth * math.Tan(d2r(cfg.FlareAngle))
	if baseWidth+2*flareExt < 0 {
		return tonguePath{}, errGeom("flare angle %g collapses tongue tip below zero width", cfg.FlareAngle)
	}

	baseStart := start.RelatedPoint(angle, length/2-tongueLength/2+taperInset+cfg.LinearOffset)
	baseEnd := start.RelatedPoint(angle, length/2+tongueLength/2-taperInset+cfg.LinearOffset)
	return tonguePath{
		start:     start,
		baseStart: baseStart,
		tipStart:  baseStart.RelatedPoint(angle-90, tongueDepth).RelatedPoint(angle, -flareExt),
		tipEnd:    baseEnd.RelatedPoint(angle-90, tongueDepth).RelatedPoint(angle, flareExt),
		baseEnd:   baseEnd,
		end:       end,
	}, nil
}

// outlineVertex is a prospective polygon vertex with an optional
// corner smoothing radius.
type outlineVertex struct {
	p      Point
	radius float64
}

// subpartOutline returns the closed 2D profile of the cutting tool at
// one z level: a blob covering the keep side of the cut line plus the
// tongue protruding across it. tiltOffset shifts the whole outline
// perpendicular to the line (scarf tilt), taperInset pinches the
// tongue (taper wedge), straight omits the tongue entirely. maxDim
// must exceed any lateral extent of the part being split.
func subpartOutline(maxDim float64, cfg DovetailParams, tiltOffset, taperInset float64, straight bool) (sdf.SDF2, error) {
	angle := cfg.Start.AngleTo(cfg.End)
	start := cfg.Start.RelatedPoint(angle-90, tiltOffset)
	end := cfg.End.RelatedPoint(angle-90, tiltOffset)

	verts := []outlineVertex{
		{p: start},
		{p: start.RelatedPoint(angle+180, maxDim)},
		{p: start.RelatedPoint(angle+135, maxDim)},
		{p: start.RelatedPoint(angle+45, maxDim)},
		{p: start.RelatedPoint(angle, maxDim)},
		{p: end},
	}
	if !straight {
		path, err := splitPath(start, end, cfg, taperInset)
		if err != nil {
			return nil, err
		}
		// A zero-depth tongue leaves all four anchors on the cut line.
		// Smoothing collinear corners poisons the field with NaN, so
		// the outline degenerates to the straight cut instead.
		if path.tipStart == path.baseStart && path.tipEnd == path.baseEnd {
			return outlinePolygon(verts)
		}
		baseRadius := cfg.Tolerance
		tipRadius := 1.5 * cfg.Tolerance
		if path.baseStart.DistanceTo(path.baseEnd) <= 3*baseRadius {
			baseRadius = 0
		}
		if path.tipStart.DistanceTo(path.tipEnd) <= 3*tipRadius {
			tipRadius = 0
		}
		verts = append(verts,
			outlineVertex{p: path.baseEnd, radius: baseRadius},
			outlineVertex{p: path.tipEnd, radius: tipRadius},
			outlineVertex{p: path.tipStart, radius: tipRadius},
			outlineVertex{p: path.baseStart, radius: baseRadius},
		)
	}

	return outlinePolygon(verts)
}

// outlinePolygon closes verts into a winding polygon, smoothing the
// corners that carry a radius.
func outlinePolygon(verts []outlineVertex) (sdf.SDF2, error) {
	b := must2.NewPolygon()
	// Closing the builder lets the last corner smooth against the
	// first vertex.
	b.Close()
	var prev Point
	for i, v := range verts {
		if i > 0 && v.p == prev {
			// pinched tongues produce coincident anchors
			continue
		}
		pv := b.AddV2(v.p.V2())
		if v.radius > 0 {
			pv.Smooth(v.radius, smoothFacets)
		}
		prev = v.p
	}
	return form2.Polygon(b.Vertices())
}
