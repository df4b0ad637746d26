package pairing

import (
	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// HydrogenBond is a single reported donor-acceptor interaction (spec.md
// §3 HydrogenBond).
type HydrogenBond struct {
	DonorAtom      string
	AcceptorAtom   string
	DonorResIndex  residue.BaseIndex
	AcceptorResIndex residue.BaseIndex
	Distance       float64
}

// BondSet is the full result of C5 for one candidate: every hydrogen
// bond found between the two residues, plus the two derived counts
// spec.md §4.4 calls out explicitly.
type BondSet struct {
	Bonds           []HydrogenBond
	CanonicalWCCount int // bonds matching the (i,j) letter's WC template
	TotalCount      int
}

// EnumerateHydrogenBonds implements C5: it enumerates every donor/
// acceptor combination between residue i and residue j (tried in both
// directions, since either residue may be the donor) and reports those
// passing the distance and pseudo-angle gates.
func EnumerateHydrogenBonds(s *residue.Structure, c Candidate) BondSet {
	var bonds []HydrogenBond

	bonds = append(bonds, directedBonds(s, c.I, c.J)...)
	bonds = append(bonds, directedBonds(s, c.J, c.I)...)

	wcCount := countWCMatches(c.I, c.J, bonds)

	return BondSet{Bonds: bonds, CanonicalWCCount: wcCount, TotalCount: len(bonds)}
}

// directedBonds enumerates bonds where donorRes is the donor and
// acceptorRes is the acceptor.
func directedBonds(s *residue.Structure, donorRes, acceptorRes residue.ClassifiedResidue) []HydrogenBond {
	donorTable, ok := atomTables[donorRes.Letter.CanonicalLetter()]
	if !ok {
		return nil
	}
	acceptorTable, ok := atomTables[acceptorRes.Letter.CanonicalLetter()]
	if !ok {
		return nil
	}

	var out []HydrogenBond
	for _, donor := range donorTable.donors {
		donorAtom, ok := s.AtomByName(donorRes.Residue, donor.name)
		if !ok {
			continue
		}
		neighbourAtom, ok := s.AtomByName(donorRes.Residue, donor.neighbour)
		if !ok {
			continue
		}

		for _, acceptorName := range acceptorTable.acceptors {
			acceptorAtom, ok := s.AtomByName(acceptorRes.Residue, acceptorName)
			if !ok {
				continue
			}

			dist := donorAtom.Position.Distance(acceptorAtom.Position)
			if dist > HBondDistanceMax {
				continue
			}

			pseudoAngle := pseudoAngleDegrees(neighbourAtom.Position, donorAtom.Position, acceptorAtom.Position)
			if pseudoAngle < HBondAngleMinDegrees {
				continue
			}

			out = append(out, HydrogenBond{
				DonorAtom:        donor.name,
				AcceptorAtom:     acceptorName,
				DonorResIndex:    donorRes.Index,
				AcceptorResIndex: acceptorRes.Index,
				Distance:         dist,
			})
		}
	}
	return out
}

// pseudoAngleDegrees returns the angle at vertex `at` formed by the rays
// to `from` and `to` (spec.md §4.4: "the pseudo-angle formed by (donor,
// donor-neighbour, acceptor)" — here from=neighbour, at=donor, to=acceptor).
func pseudoAngleDegrees(from, at, to geom.Vector3) float64 {
	v1 := from.Sub(at)
	v2 := to.Sub(at)
	return geom.AngleBetween(v1, v2) * 180 / 3.141592653589793
}

// countWCMatches counts how many of the reported bonds match a heavy
// atom pair in the canonical WC template for (resI, resJ)'s base
// letters, regardless of which residue served as the hydrogen-bond
// donor for that pair.
func countWCMatches(resI, resJ residue.ClassifiedResidue, bonds []HydrogenBond) int {
	pairs, swapped, ok := wcMatch(resI.Letter.CanonicalLetter(), resJ.Letter.CanonicalLetter())
	if !ok {
		return 0
	}

	idxA, idxB := resI.Index, resJ.Index
	if swapped {
		idxA, idxB = resJ.Index, resI.Index
	}

	count := 0
	for _, p := range pairs {
		matched := false
		for _, b := range bonds {
			if matchesPair(b, idxA, p.atomA, idxB, p.atomB) || matchesPair(b, idxB, p.atomB, idxA, p.atomA) {
				matched = true
				break
			}
		}
		if matched {
			count++
		}
	}
	return count
}

// matchesPair reports whether bond b connects atom `atomFrom` on residue
// `idxFrom` as donor to atom `atomTo` on residue `idxTo` as acceptor;
// callers check the other direction with the arguments swapped.
func matchesPair(b HydrogenBond, idxFrom residue.BaseIndex, atomFrom string, idxTo residue.BaseIndex, atomTo string) bool {
	if b.DonorResIndex == idxFrom && b.DonorAtom == atomFrom && b.AcceptorResIndex == idxTo && b.AcceptorAtom == atomTo {
		return true
	}
	return false
}
