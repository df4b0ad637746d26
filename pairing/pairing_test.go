package pairing

import (
	"testing"

	"github.com/TimothyStiles/basepair/frame"
	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// namedAtom is a small test helper for building an Atom at an explicit
// position, since hbond.go's donor/acceptor/neighbour geometry matters
// and residue/classify_test.go's index-derived positions aren't useful
// here.
func namedAtom(name string, pos geom.Vector3) residue.Atom {
	return residue.Atom{Name: name, Position: pos}
}

// gcWatsonCrickStructure builds a minimal two-residue structure (a
// guanine and a cytosine) whose donor/acceptor/neighbour atoms satisfy
// the canonical Watson-Crick distance and pseudo-angle gates for all
// three G-C heavy-atom pairs: N1(G)-N3(C), N2(G)-O2(C), O6(G)-N4(C).
// Atoms irrelevant to hydrogen-bond enumeration (ring carbons not used
// as a neighbour, sugar atoms) are omitted; EnumerateHydrogenBonds only
// looks up the exact names it needs.
func gcWatsonCrickStructure() (*residue.Structure, residue.ClassifiedResidue, residue.ClassifiedResidue) {
	s := &residue.Structure{}

	gAtoms := []residue.Atom{
		namedAtom("C2", geom.Vector3{X: -1, Y: 0, Z: 0}),
		namedAtom("N1", geom.Vector3{X: 0, Y: 0, Z: 0}),
		namedAtom("N2", geom.Vector3{X: -0.3, Y: 1.3, Z: 0}),
		namedAtom("N4dummy", geom.Vector3{}), // unused, keeps slice non-trivial
		namedAtom("O6", geom.Vector3{X: -4.91, Y: 0, Z: 0}),
	}
	gRes := residue.Residue{ResName: "G", AtomStart: 0, AtomEnd: len(gAtoms)}
	s.Atoms = append(s.Atoms, gAtoms...)
	s.Residues = append(s.Residues, gRes)

	cAtoms := []residue.Atom{
		namedAtom("N3", geom.Vector3{X: 2.95, Y: 0, Z: 0}),
		namedAtom("O2", geom.Vector3{X: 1.055, Y: 3.819, Z: 0}),
		namedAtom("C4", geom.Vector3{X: -1.5, Y: 0, Z: 0}),
		namedAtom("N4", geom.Vector3{X: -2, Y: 0, Z: 0}),
	}
	cRes := residue.Residue{ResName: "C", AtomStart: len(gAtoms), AtomEnd: len(gAtoms) + len(cAtoms)}
	s.Atoms = append(s.Atoms, cAtoms...)
	s.Residues = append(s.Residues, cRes)

	g := residue.ClassifiedResidue{Residue: gRes, Letter: residue.NewCanonical(residue.Guanine), Index: 1}
	c := residue.ClassifiedResidue{Residue: cRes, Letter: residue.NewCanonical(residue.Cytosine), Index: 2}
	return s, g, c
}

func cisCandidate(g, c residue.ClassifiedResidue) Candidate {
	fg := frame.Frame{Origin: geom.Vector3{X: 0, Y: 0, Z: 0}, Normal: geom.Vector3{X: 0, Y: 0, Z: 1}}
	fc := frame.Frame{Origin: geom.Vector3{X: 3, Y: 0, Z: 0}, Normal: geom.Vector3{X: 0, Y: 0, Z: 1}}
	return Candidate{I: g, J: c, FrameI: fg, FrameJ: fc, PairBandOK: true}
}

func TestEnumerateHydrogenBondsFindsAllThreeWCPairs(t *testing.T) {
	s, g, c := gcWatsonCrickStructure()
	cand := cisCandidate(g, c)

	bonds := EnumerateHydrogenBonds(s, cand)
	if bonds.TotalCount != 3 {
		t.Fatalf("TotalCount = %d, want 3 (got bonds: %+v)", bonds.TotalCount, bonds.Bonds)
	}
	if bonds.CanonicalWCCount != 3 {
		t.Fatalf("CanonicalWCCount = %d, want 3", bonds.CanonicalWCCount)
	}
}

func TestClassifyFullWatsonCrickMatch(t *testing.T) {
	s, g, c := gcWatsonCrickStructure()
	cand := cisCandidate(g, c)
	bonds := EnumerateHydrogenBonds(s, cand)

	v, ok := Classify(s, cand, bonds)
	if !ok {
		t.Fatalf("expected a verdict for a full WC match")
	}
	if v.Kind != KindPair {
		t.Fatalf("Kind = %q, want KindPair", v.Kind)
	}
	if v.Orientation != OrientationCis {
		t.Fatalf("Orientation = %q, want cis (same-direction normals)", v.Orientation)
	}
	if v.LWCode() != "+/+" {
		t.Errorf("LWCode() = %q, want \"+/+\" for a full cis WC match", v.LWCode())
	}
	if v.Saenger != "XIX" {
		t.Errorf("Saenger = %q, want \"XIX\" for canonical cis G-C", v.Saenger)
	}
}

func TestClassifyPartialWatsonCrickMatchIsNA(t *testing.T) {
	s, g, c := gcWatsonCrickStructure()
	cand := cisCandidate(g, c)
	bonds := EnumerateHydrogenBonds(s, cand)

	// Drop one of the three canonical bonds to force a partial match.
	bonds.Bonds = bonds.Bonds[:2]
	bonds.CanonicalWCCount = 2
	bonds.TotalCount = 2

	v, ok := Classify(s, cand, bonds)
	if !ok {
		t.Fatalf("expected a verdict even for a partial WC match")
	}
	if v.LWCode() != "W/W" {
		t.Errorf("LWCode() = %q, want \"W/W\" for a partial match", v.LWCode())
	}
	if v.Saenger != "n/a" {
		t.Errorf("Saenger = %q, want \"n/a\" for a partial match", v.Saenger)
	}
}

func TestClassifyZeroBondsFallsThroughToStacking(t *testing.T) {
	s, g, c := gcWatsonCrickStructure()
	cand := cisCandidate(g, c)

	_, ok := Classify(s, cand, BondSet{})
	if ok {
		t.Fatalf("Classify should report ok=false for zero bonds, leaving the decision to the stacking detector")
	}
}

func TestEvaluateCandidateStacking(t *testing.T) {
	s, g, c := gcWatsonCrickStructure()

	// No hydrogen-bond geometry at all (structure's actual donor/acceptor
	// atoms are far apart in this arrangement); frames are parallel and
	// separated by a typical stacking rise with a small lateral offset.
	fg := frame.Frame{Origin: geom.Vector3{X: 0, Y: 0, Z: 0}, Normal: geom.Vector3{X: 0, Y: 0, Z: 1}}
	fc := frame.Frame{Origin: geom.Vector3{X: 0, Y: 2, Z: 3.4}, Normal: geom.Vector3{X: 0, Y: 0, Z: 1}}
	cand := Candidate{I: g, J: c, FrameI: fg, FrameJ: fc, StackBandOK: true}

	// Move the structure's atoms far from each other so no hydrogen bond
	// is found, forcing the zero-bond stacking path.
	for i := s.Residues[1].AtomStart; i < s.Residues[1].AtomEnd; i++ {
		s.Atoms[i].Position = s.Atoms[i].Position.Add(geom.Vector3{X: 0, Y: 0, Z: 100})
	}

	v, ok := EvaluateCandidate(s, cand)
	if !ok {
		t.Fatalf("expected a stacked verdict")
	}
	if v.Kind != KindStacked {
		t.Fatalf("Kind = %q, want KindStacked", v.Kind)
	}
}

func TestEvaluateCandidateNeitherPairNorStack(t *testing.T) {
	s, g, c := gcWatsonCrickStructure()
	for i := s.Residues[1].AtomStart; i < s.Residues[1].AtomEnd; i++ {
		s.Atoms[i].Position = s.Atoms[i].Position.Add(geom.Vector3{X: 0, Y: 0, Z: 100})
	}

	fg := frame.Frame{Origin: geom.Vector3{X: 0, Y: 0, Z: 0}, Normal: geom.Vector3{X: 0, Y: 0, Z: 1}}
	fc := frame.Frame{Origin: geom.Vector3{X: 0, Y: 0, Z: 20}, Normal: geom.Vector3{X: 1, Y: 0, Z: 0}}
	cand := Candidate{I: g, J: c, FrameI: fg, FrameJ: fc}

	_, ok := EvaluateCandidate(s, cand)
	if ok {
		t.Fatalf("expected no verdict for a candidate that is neither a pair nor a stack")
	}
}

func TestSaengerLookupUnknownCombinationIsNA(t *testing.T) {
	numeral, ok := SaengerLookup('G', 'G', OrientationCis)
	if ok {
		t.Fatalf("expected ok=false for a combination absent from the closed table")
	}
	if numeral != "n/a" {
		t.Errorf("numeral = %q, want \"n/a\"", numeral)
	}
}

func TestCandidatesPruneByOriginDistance(t *testing.T) {
	g := residue.ClassifiedResidue{Letter: residue.NewCanonical(residue.Guanine), Index: 1}
	c := residue.ClassifiedResidue{Letter: residue.NewCanonical(residue.Cytosine), Index: 2}
	classified := []residue.ClassifiedResidue{g, c}
	frames := []frame.Frame{
		{Origin: geom.Vector3{X: 0, Y: 0, Z: 0}, Normal: geom.Vector3{X: 0, Y: 0, Z: 1}},
		{Origin: geom.Vector3{X: 1000, Y: 0, Z: 0}, Normal: geom.Vector3{X: 0, Y: 0, Z: 1}},
	}

	cands := Candidates(classified, frames)
	if len(cands) != 0 {
		t.Fatalf("expected residues 1000 Å apart to be pruned, got %d candidates", len(cands))
	}
}
