package pairing

import (
	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// PairVerdict is the per-candidate output of C6/C7 before C8's
// deduplication/best-pair pass. Kind mirrors spec.md §3 PairRecord.Kind;
// LW/Saenger are only meaningful when Kind == KindPair.
type PairVerdict struct {
	ResI, ResJ  residue.ClassifiedResidue
	Kind        Kind
	EdgeI       Edge
	EdgeJ       Edge
	Orientation Orientation
	SynI, SynJ  bool
	Saenger     string // "", "n/a", or a roman numeral
	BondCount   int
	Note        string
}

// Kind is spec.md §3 PairRecord.kind.
type Kind byte

const (
	KindPair    Kind = 'p'
	KindStacked Kind = 's'
	KindUnknown Kind = 'u'
)

// Classify implements C6 for a candidate with a non-empty hydrogen-bond
// set. Returns ok=false when the candidate has zero bonds, in which case
// the caller (the top-level engine) must fall through to the stacking
// detector (C7) per spec.md §4.4: "Pairs with zero bonds drop to C7."
func Classify(s *residue.Structure, c Candidate, bonds BondSet) (PairVerdict, bool) {
	if bonds.TotalCount == 0 {
		return PairVerdict{}, false
	}

	edgeI := resolveEdge(c.I, bonds.Bonds)
	edgeJ := resolveEdge(c.J, bonds.Bonds)

	orientation := OrientationTrans
	if c.FrameI.Normal.Dot(c.FrameJ.Normal) > 0 {
		orientation = OrientationCis
	}

	v := PairVerdict{
		ResI: c.I, ResJ: c.J,
		EdgeI:       edgeI,
		EdgeJ:       edgeJ,
		Orientation: orientation,
		BondCount:   bonds.TotalCount,
		SynI:        synResidue(s, c.I),
		SynJ:        synResidue(s, c.J),
	}

	if edgeI == EdgeUnknown && edgeJ == EdgeUnknown {
		v.Kind = KindUnknown
		v.Note = "ambiguous geometry, no classifiable edge"
		return v, true
	}

	v.Kind = KindPair

	if edgeI == EdgeWatson && edgeJ == EdgeWatson {
		classifyWC(&v, bonds)
	}

	return v, true
}

// resolveEdge tallies, across bonds, which LW edge of residue `res` is
// exercised most, breaking ties W > H > S, returning EdgeUnknown if
// res's atoms participate in no recognised edge at all (spec.md §4.5
// step 1).
func resolveEdge(res residue.ClassifiedResidue, bonds []HydrogenBond) Edge {
	table, ok := atomTables[res.Letter.CanonicalLetter()]
	if !ok {
		return EdgeUnknown
	}

	counts := map[Edge]int{}
	for _, b := range bonds {
		var atomName string
		switch res.Index {
		case b.DonorResIndex:
			atomName = b.DonorAtom
		case b.AcceptorResIndex:
			atomName = b.AcceptorAtom
		default:
			continue
		}
		for _, e := range table.edgeOf[atomName] {
			counts[e]++
		}
	}

	best := EdgeUnknown
	bestCount := 0
	for _, e := range edgePriority {
		if counts[e] > bestCount {
			best = e
			bestCount = counts[e]
		}
	}
	return best
}

// classifyWC implements spec.md §4.5 step 3's Watson-Crick
// sub-classification once both edges have already resolved to W.
func classifyWC(v *PairVerdict, bonds BondSet) {
	pairs, _, ok := wcMatch(v.ResI.Letter.CanonicalLetter(), v.ResJ.Letter.CanonicalLetter())
	fullMatch := ok && bonds.CanonicalWCCount == len(pairs)

	if !fullMatch {
		v.Saenger = "n/a"
		return
	}

	if v.Orientation == OrientationCis {
		v.EdgeI, v.EdgeJ = '+', '+'
	} else {
		v.EdgeI, v.EdgeJ = '-', '-'
	}
	numeral, _ := SaengerLookup(v.ResI.Letter.CanonicalLetter(), v.ResJ.Letter.CanonicalLetter(), v.Orientation)
	v.Saenger = numeral
}

// LWCode renders the two-character "<edge_i>/<edge_j>" code of spec.md
// §3/§6.1.
func (v PairVerdict) LWCode() string {
	return string(byte(v.EdgeI)) + "/" + string(byte(v.EdgeJ))
}

// chiAtomNames returns the base-specific pair of ring atoms used, along
// with the shared sugar atoms O4'/C1', to compute the glycosidic torsion
// χ (spec.md §4.5 step 4): O4'-C1'-N9/N1-C4/C2, purine vs. pyrimidine.
func chiAtomNames(letter byte) (glycosidic, ringNeighbour string) {
	switch letter {
	case 'A', 'G', 'I':
		return "N9", "C4"
	default:
		return "N1", "C2"
	}
}

// synResidue computes χ for res (when O4', C1', and the base-specific
// pair are all present) and reports whether it falls in the syn range
// (spec.md §4.5 step 4). A residue missing any of those atoms — most
// often because the upstream parser omitted sugar atoms — reports
// false; that is an upstream completeness concern, not something C6 can
// resolve on its own.
func synResidue(s *residue.Structure, res residue.ClassifiedResidue) bool {
	glycosidic, ringNeighbour := chiAtomNames(res.Letter.CanonicalLetter())

	o4, ok := s.AtomByName(res.Residue, "O4'")
	if !ok {
		return false
	}
	c1, ok := s.AtomByName(res.Residue, "C1'")
	if !ok {
		return false
	}
	n, ok := s.AtomByName(res.Residue, glycosidic)
	if !ok {
		return false
	}
	c, ok := s.AtomByName(res.Residue, ringNeighbour)
	if !ok {
		return false
	}

	chi := geom.DihedralDegrees(o4.Position, c1.Position, n.Position, c.Position)
	return geom.InSynRange(chi)
}
