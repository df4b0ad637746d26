package pdb

import (
	"strings"
	"testing"
)

const twoResidueSample = `ATOM      1  N1  G   A   1      11.104   6.134  -6.504  1.00 20.00           N
ATOM      2  C2  G   A   1      12.104   7.134  -6.504  1.00 20.00           C
ATOM      3  N1  C   A   2      13.104   8.134  -6.504  1.00 20.00           N
END
`

func TestReadGroupsAtomsIntoResidues(t *testing.T) {
	s, err := Read(strings.NewReader(twoResidueSample), 1)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(s.Residues) != 2 {
		t.Fatalf("expected 2 residues, got %d", len(s.Residues))
	}
	if len(s.Atoms) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(s.Atoms))
	}
	if s.Residues[0].ResName != "G" || s.Residues[1].ResName != "C" {
		t.Errorf("resnames = %q, %q, want G, C", s.Residues[0].ResName, s.Residues[1].ResName)
	}
	if got := s.AtomsOf(s.Residues[0]); len(got) != 2 {
		t.Errorf("first residue should own 2 atoms, got %d", len(got))
	}
}

const multiModelSample = `MODEL        1
ATOM      1  N1  G   A   1      11.104   6.134  -6.504  1.00 20.00           N
ENDMDL
MODEL        2
ATOM      1  N1  G   A   1      99.000   6.134  -6.504  1.00 20.00           N
ENDMDL
`

func TestReadSelectsRequestedModel(t *testing.T) {
	s, err := Read(strings.NewReader(multiModelSample), 2)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(s.Atoms) != 1 {
		t.Fatalf("expected 1 atom from model 2, got %d", len(s.Atoms))
	}
	if s.Atoms[0].Position.X != 99.000 {
		t.Errorf("X = %v, want 99.000 (model 2's atom)", s.Atoms[0].Position.X)
	}
}

func TestReadDefaultsToModelOne(t *testing.T) {
	s, err := Read(strings.NewReader(multiModelSample), 0)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(s.Atoms) != 1 || s.Atoms[0].Position.X != 11.104 {
		t.Fatalf("expected model 1's atom by default, got %+v", s.Atoms)
	}
}
