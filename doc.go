// Package joinery splits solids into 3D-printable interlocking
// subparts. The core operation carves a dovetail joint along a line
// on the base plane of any signed-distance solid, with optional
// scarf tilt, vertical taper, hard-stop offsets and snap-fit divots.
//
// Solids are github.com/soypat/sdf values, so any SDF3 can be split
// and the results render straight to STL with that module's render
// package.
package joinery
