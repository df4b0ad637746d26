package frame

import (
	"math"
	"testing"

	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// buildResidueFromTemplate constructs a Structure containing a single
// residue whose atoms are the template's own ring coordinates translated
// rigidly (no rotation) — so the fit recovered by Build should exactly
// invert that rigid transform.
func buildResidueFromTemplate(t *testing.T, letter byte, translate geom.Vector3) *residue.Structure {
	t.Helper()
	tmpl := letterTemplates[letter]

	atoms := make([]residue.Atom, 0, len(tmpl.order))
	for _, name := range tmpl.order {
		pos := tmpl.atoms[name].Add(translate)
		atoms = append(atoms, residue.Atom{Name: name, Position: pos})
	}

	return &residue.Structure{
		Atoms:    atoms,
		Residues: []residue.Residue{{ResName: string(letter), AtomStart: 0, AtomEnd: len(atoms)}},
	}
}

func TestBuildFrameRecoversTranslation(t *testing.T) {
	shift := geom.Vector3{X: 10, Y: -4, Z: 2}
	s := buildResidueFromTemplate(t, 'G', shift)

	f, ok := Build(s, s.Residues[0], residue.NewCanonical(residue.Guanine))
	if !ok {
		t.Fatalf("expected frame build to succeed")
	}
	if f.Fallback {
		t.Fatalf("expected primary template fit, not fallback")
	}
	if f.Origin.Distance(shift) > 1e-6 {
		t.Errorf("origin = %+v, want %+v", f.Origin, shift)
	}
	if math.Abs(f.Normal.Length()-1) > 1e-6 {
		t.Errorf("normal is not unit length: %+v", f.Normal)
	}
}

func TestBuildFrameFallsBackWithTooFewAtoms(t *testing.T) {
	s := &residue.Structure{
		Atoms: []residue.Atom{
			{Name: "N1", Position: geom.Vector3{X: 0, Y: 0, Z: 0}},
			{Name: "C2", Position: geom.Vector3{X: 1, Y: 0, Z: 0}},
		},
		Residues: []residue.Residue{{ResName: "C", AtomStart: 0, AtomEnd: 2}},
	}

	f, ok := Build(s, s.Residues[0], residue.NewCanonical(residue.Cytosine))
	if !ok {
		t.Fatalf("expected fallback frame with 2 atoms")
	}
	if !f.Fallback {
		t.Errorf("expected fallback=true with only 2 matching ring atoms")
	}
}

func TestBuildFrameFailsWithNoAtoms(t *testing.T) {
	s := &residue.Structure{Residues: []residue.Residue{{ResName: "C", AtomStart: 0, AtomEnd: 0}}}
	_, ok := Build(s, s.Residues[0], residue.NewCanonical(residue.Cytosine))
	if ok {
		t.Fatalf("expected frame build to fail with zero atoms")
	}
}
