/*
Package residue models the atom and residue layer of a parsed
macromolecular structure and implements C2: mapping each residue to a
single-letter base code (or rejecting it).

Atoms are stored in a single flat table per Structure, and residues
reference their atoms through a contiguous [Start, End) range rather than
individual pointers — the same flat-array-with-index-ranges pattern the
upstream PDB/mmCIF parsers in this module use for atoms and features, and
which spec.md §9 calls out explicitly as worth carrying forward: it is
cache-friendly and keeps residues as plain indices rather than a pointer
graph, with the Structure as sole owner.
*/
package residue

import "github.com/TimothyStiles/basepair/geom"

// Atom is a single atom record as produced by an upstream PDB/mmCIF
// reader. Identity is (residue, Name, AltLoc); the core assumes altlocs
// have already been collapsed upstream (spec.md §3).
type Atom struct {
	Name      string // up to 4 characters, e.g. "N1", "C1'"
	Element   string
	Position  geom.Vector3
	AltLoc    byte
	Occupancy float64
	BFactor   float64
}

// ResidueID is the identity tuple of a Residue: (chain, resseq, icode,
// model). Invariant (spec.md §3): unique within a Structure.
type ResidueID struct {
	ChainID string
	ResSeq  int
	ICode   byte
	Model   int
}

// TruncateChainID returns a copy of id with ChainID restricted to its
// first character. This implements the "one-character chain truncation"
// compatibility mode (spec.md §6.3 chain_id_truncate, §9 design note) as
// a pre-processing step on ResidueID rather than as an invariant baked
// into the data model itself — callers opt in by applying this before
// BaseIndex numbering, they never have it forced on them.
func (id ResidueID) TruncateChainID() ResidueID {
	if len(id.ChainID) <= 1 {
		return id
	}
	truncated := id
	truncated.ChainID = id.ChainID[:1]
	return truncated
}

// Residue is a single residue (amino acid, nucleotide, water, ligand...)
// within a Structure, identified by ResidueID, with a 3-character
// resname and an owning Structure's atom range.
type Residue struct {
	ID         ResidueID
	ResName    string
	AtomStart  int // index into Structure.Atoms, inclusive
	AtomEnd    int // index into Structure.Atoms, exclusive
}

// Structure is a flattened, read-only view of a macromolecular model:
// one contiguous atom table and the residues that index into it. It is
// built once by an upstream parser (io/pdb, io/pdbx/cif) and never
// mutated by the analysis core (spec.md §5).
type Structure struct {
	Atoms    []Atom
	Residues []Residue
}

// AtomsOf returns the atom slice owned by residue r. The returned slice
// aliases Structure.Atoms; callers must not retain it past the
// Structure's lifetime if the Structure is later discarded, but the core
// never mutates it.
func (s *Structure) AtomsOf(r Residue) []Atom {
	return s.Atoms[r.AtomStart:r.AtomEnd]
}

// AtomByName returns the first atom named name (case-sensitive, as PDB
// atom names already are) within r, and whether it was found. Order
// within a residue does not affect which atom is matched when atom names
// are unique, which spec.md §8's "order independence of input atoms
// within a residue" property requires; a residue with a duplicate atom
// name is malformed input and out of scope for C2/C3's guarantees.
func (s *Structure) AtomByName(r Residue, name string) (Atom, bool) {
	for _, a := range s.AtomsOf(r) {
		if a.Name == name {
			return a, true
		}
	}
	return Atom{}, false
}

// HasAllAtoms reports whether every name in names is present in r's atom
// range. Used by the ring-presence and template tests of C2.
func (s *Structure) HasAllAtoms(r Residue, names []string) bool {
	for _, name := range names {
		if _, ok := s.AtomByName(r, name); !ok {
			return false
		}
	}
	return true
}

// HasAnyAtom reports whether at least one name in names is present.
func (s *Structure) HasAnyAtom(r Residue, names []string) bool {
	for _, name := range names {
		if _, ok := s.AtomByName(r, name); ok {
			return true
		}
	}
	return false
}
