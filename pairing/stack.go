package pairing

import (
	"math"

	"github.com/TimothyStiles/basepair/residue"
)

// classifyStack implements C7: it is only ever invoked on a candidate
// that has already failed pairing — zero hydrogen bonds, or hydrogen
// bonds present but no edge resolved for either residue (spec.md §4.6)
// — and re-tests it against the stacking geometry directly, independent
// of whatever C4 banding happened to compute.
func classifyStack(c Candidate) (PairVerdict, bool) {
	dot := math.Abs(c.FrameI.Normal.Dot(c.FrameJ.Normal))
	if dot < StackNormalDotMin {
		return PairVerdict{}, false
	}

	perp := perpendicularSeparation(c)
	if perp < StackPlaneSeparationMin || perp > StackPlaneSeparationMax {
		return PairVerdict{}, false
	}

	if c.LateralOffset() > StackLateralOffsetMax {
		return PairVerdict{}, false
	}

	return PairVerdict{
		ResI: c.I,
		ResJ: c.J,
		Kind: KindStacked,
	}, true
}

// perpendicularSeparation mirrors the averaged-plane-offset computed in
// C4's evaluate, recomputed here so C7 does not depend on C4 having
// selected the stacking band (spec.md §4.6 re-tests the geometry fresh
// once pairing has failed).
func perpendicularSeparation(c Candidate) float64 {
	di := math.Abs(c.FrameJ.Origin.Sub(c.FrameI.Origin).Dot(c.FrameI.Normal))
	dj := math.Abs(c.FrameI.Origin.Sub(c.FrameJ.Origin).Dot(c.FrameJ.Normal))
	return (di + dj) / 2
}

// EvaluateCandidate runs C5, C6 and C7 in the order spec.md §4.4/§4.6
// prescribes for a single candidate: enumerate hydrogen bonds, attempt
// pairing, and fall through to the stacking detector whenever pairing
// did not produce a usable edge (zero bonds, or bonds present but
// neither residue's edge resolved). Returns ok=false only when the
// candidate is neither a pair nor a stack.
func EvaluateCandidate(s *residue.Structure, c Candidate) (PairVerdict, bool) {
	// A Fallback frame takes no part in pairing; such a candidate is
	// tested for stacking only.
	if c.FrameI.Fallback || c.FrameJ.Fallback {
		return classifyStack(c)
	}

	bonds := EnumerateHydrogenBonds(s, c)

	if v, ok := Classify(s, c, bonds); ok {
		if v.Kind == KindPair {
			return v, true
		}
		// KindUnknown: hydrogen bonds were found but neither residue's
		// edge resolved. Spec treats this the same as the zero-bond case
		// for stacking eligibility.
		if sv, ok := classifyStack(c); ok {
			return sv, true
		}
		return v, true
	}

	if sv, ok := classifyStack(c); ok {
		return sv, true
	}

	return PairVerdict{}, false
}
