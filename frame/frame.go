/*
Package frame implements C3: building a per-residue reference frame
(origin, plane normal, long axis) by least-squares superposition of
observed ring atoms onto a standard-geometry template, keyed by the
residue's BaseLetter.
*/
package frame

import (
	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// Frame is the per-recognised-residue triple of spec.md §3.
type Frame struct {
	Origin   geom.Vector3
	Normal   geom.Vector3
	LongAxis geom.Vector3
	// Fallback is true when the letter has no ring template, fewer than 3
	// template atoms were present, or the fit failed, and Origin/Normal
	// were instead derived from an atom centroid and
	// best-fit plane (spec.md §4.2). A Fallback frame cannot participate
	// in pairing but can still be used by the stacking detector (C7).
	Fallback bool
}

// minTemplateAtoms is the least-squares fit failure threshold of
// spec.md §4.2: "The fit fails if fewer than 3 template atoms are
// present."
const minTemplateAtoms = 3

// Build implements C3 for a single classified residue: it fits the
// residue's observed ring atoms against the ideal template for letter's
// canonical identity and returns the resulting Frame.
//
// ok is false only when even the centroid fallback cannot be built (the
// residue has no atoms at all); a Fallback frame is returned with ok true
// whenever the primary fit fails and the residue has at least one atom,
// matching spec.md §4.2's "stacks still attempted via origin/normal from
// an atom centroid fallback." With fewer than 3 atoms the fallback
// Normal is the zero vector.
func Build(s *residue.Structure, r residue.Residue, letter residue.BaseLetter) (Frame, bool) {
	tmpl, known := letterTemplates[letter.CanonicalLetter()]

	if known {
		var moving, reference []geom.Vector3
		for _, name := range tmpl.order {
			atom, ok := s.AtomByName(r, name)
			if !ok {
				continue
			}
			moving = append(moving, tmpl.atoms[name])
			reference = append(reference, atom.Position)
		}

		if len(moving) >= minTemplateAtoms {
			fit, ok := geom.KabschFit(moving, reference)
			if ok {
				return Frame{
					Origin:   fit.Origin(),
					Normal:   fit.RotateVector(geom.Vector3{X: 0, Y: 0, Z: 1}).Normalize(),
					LongAxis: fit.RotateVector(tmpl.longAxis).Normalize(),
				}, true
			}
		}
	}

	return buildFallback(s, r)
}

// buildFallback implements the atom-centroid fallback frame of spec.md
// §4.2 for residues whose primary template fit could not be built.
func buildFallback(s *residue.Structure, r residue.Residue) (Frame, bool) {
	atoms := s.AtomsOf(r)
	if len(atoms) == 0 {
		return Frame{}, false
	}

	positions := make([]geom.Vector3, len(atoms))
	for i, a := range atoms {
		positions[i] = a.Position
	}

	origin := geom.Centroid(positions)
	normal := geom.BestFitPlaneNormal(positions)

	return Frame{Origin: origin, Normal: normal, Fallback: true}, true
}
