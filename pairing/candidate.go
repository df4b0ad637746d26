package pairing

import (
	"math"

	"github.com/TimothyStiles/basepair/frame"
	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// Candidate is a residue pair that survived C4's cheap geometric prune.
// It carries enough context for C5/C6/C7 to avoid re-deriving frames.
type Candidate struct {
	I, J           residue.ClassifiedResidue
	FrameI, FrameJ frame.Frame
	// PairBandOK is true if the pair falls in the near-coplanar band
	// permitted for hydrogen-bonded pairing (spec.md §4.3). Both frames
	// must additionally be non-Fallback for this to be set.
	PairBandOK bool
	// StackBandOK is true if the pair falls in the near-parallel,
	// separated band permitted for stacking (spec.md §4.3).
	StackBandOK bool
}

// Candidates implements C4: it enumerates every (i,j) with i<j among
// classified and, for each, evaluates the cheap distance/angle/plane
// predicates in order, discarding as soon as one fails. frames must be
// aligned 1:1 with classified (same index).
func Candidates(classified []residue.ClassifiedResidue, frames []frame.Frame) []Candidate {
	var out []Candidate
	for i := 0; i < len(classified); i++ {
		fi := frames[i]
		for j := i + 1; j < len(classified); j++ {
			fj := frames[j]

			c, ok := evaluate(classified[i], fi, classified[j], fj)
			if ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func evaluate(ci residue.ClassifiedResidue, fi frame.Frame, cj residue.ClassifiedResidue, fj frame.Frame) (Candidate, bool) {
	dOrigin := fi.Origin.Distance(fj.Origin)
	if dOrigin > CandidateOriginDistanceMax {
		return Candidate{}, false
	}

	dot := math.Abs(fi.Normal.Dot(fj.Normal))
	pairAngleOK := dot >= pairNormalAngleMinDot && !fi.Fallback && !fj.Fallback
	stackAngleOK := dot >= stackNormalAngleMinDot
	if !pairAngleOK && !stackAngleOK {
		return Candidate{}, false
	}

	planeI := geom.Plane{Point: fi.Origin, Normal: fi.Normal}
	planeJ := geom.Plane{Point: fj.Origin, Normal: fj.Normal}
	perp := (math.Abs(planeI.SignedDistance(fj.Origin)) + math.Abs(planeJ.SignedDistance(fi.Origin))) / 2

	pairBandOK := pairAngleOK && perp <= PairPlaneOffsetMax
	stackBandOK := stackAngleOK && perp >= StackPlaneSeparationMin && perp <= StackPlaneSeparationMax
	if !pairBandOK && !stackBandOK {
		return Candidate{}, false
	}

	return Candidate{
		I: ci, J: cj,
		FrameI: fi, FrameJ: fj,
		PairBandOK:  pairBandOK,
		StackBandOK: stackBandOK,
	}, true
}

// LateralOffset returns the in-plane distance between the two origins,
// as seen from i's plane — used by the stacking detector (C7) to bound
// how far the stacked ring centers may slide relative to one another.
func (c Candidate) LateralOffset() float64 {
	plane := geom.Plane{Point: c.FrameI.Origin, Normal: c.FrameI.Normal}
	return plane.InPlaneOffset(c.FrameJ.Origin)
}
