package joinery

import (
	"github.com/soypat/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// emptyProbeCells is the per-axis grid resolution used to detect
// solids with no volume. Features smaller than a cell can slip
// through, callers pass parts whose useful features are far larger.
const emptyProbeCells = 24

func boxSize(b r3.Box) r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// maxDimension returns a length guaranteed to exceed any lateral
// extent of s, used to size tool outlines.
func maxDimension(s sdf.SDF3) float64 {
	sz := boxSize(s.Bounds())
	d := sz.X
	if sz.Y > d {
		d = sz.Y
	}
	if sz.Z > d {
		d = sz.Z
	}
	return 3 * d
}

// solidEmpty reports whether the signed distance field of s has no
// negative samples on a fixed grid over its bounding box.
func solidEmpty(s sdf.SDF3) bool {
	bb := s.Bounds()
	sz := boxSize(bb)
	step := r3.Scale(1.0/emptyProbeCells, sz)
	for i := 0; i < emptyProbeCells; i++ {
		x := bb.Min.X + (float64(i)+0.5)*step.X
		for j := 0; j < emptyProbeCells; j++ {
			y := bb.Min.Y + (float64(j)+0.5)*step.Y
			for k := 0; k < emptyProbeCells; k++ {
				z := bb.Min.Z + (float64(k)+0.5)*step.Z
				if s.Evaluate(r3.Vec{X: x, Y: y, Z: z}) < 0 {
					return false
				}
			}
		}
	}
	return true
}
