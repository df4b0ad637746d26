/*
Package pairing implements C4 (candidate filter), C5 (hydrogen-bond
enumerator), C6 (pair classifier) and C7 (stacking detector): the
geometric and hydrogen-bond decision core described in spec.md §4.3-4.6.

All thresholds used across these stages live in this one file, per
spec.md §9's design note: "centralise thresholds in a named constants
table shared by tests; no magic numbers scattered across files."
*/
package pairing

import "math"

// Candidate filter (C4) thresholds.
const (
	// CandidateOriginDistanceMax is D_CAND: the origin-origin distance
	// cutoff beyond which no pair or stack interaction is considered.
	CandidateOriginDistanceMax = 15.0 // Å

	// PairNormalAngleMaxDegrees is the inter-normal angle band for in-plane
	// pairing candidates.
	PairNormalAngleMaxDegrees = 65.0
	// StackNormalAngleMaxDegrees is the (tighter) inter-normal angle band for
	// stacking candidates.
	StackNormalAngleMaxDegrees = 30.0

	// PairPlaneOffsetMax bounds the perpendicular component of the
	// origin-origin vector onto each frame's plane for in-plane pairing
	// geometry.
	PairPlaneOffsetMax = 3.0 // Å
)

// Hydrogen-bond enumerator (C5) thresholds.
const (
	// HBondDistanceMax is D_HB: the maximum donor-heavy-atom to
	// acceptor-heavy-atom distance for a reported hydrogen bond.
	HBondDistanceMax = 3.4 // Å
	// HBondAngleMinDegrees is A_HB_MIN: the minimum donor-donorNeighbour-
	// acceptor pseudo-angle for a reported hydrogen bond.
	HBondAngleMinDegrees = 90.0
)

// Stacking detector (C7) thresholds.
const (
	StackNormalDotMin       = 0.8660254037844387 // cos(30°)
	StackPlaneSeparationMin = 2.8                // Å
	StackPlaneSeparationMax = 4.2                // Å
	StackLateralOffsetMax   = 5.0                // Å
)

func cosDegrees(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

// pairNormalAngleMinDot and stackNormalAngleMinDot convert the degree
// bands above into dot-product thresholds so callers compare cosines
// directly, avoiding a repeated acos in the hot O(N²) candidate loop.
var (
	pairNormalAngleMinDot  = cosDegrees(PairNormalAngleMaxDegrees)
	stackNormalAngleMinDot = cosDegrees(StackNormalAngleMaxDegrees)
)
