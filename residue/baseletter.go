package residue

import "strings"

// Canonical is the set of single-letter codes a canonical, unmodified
// base can carry (spec.md §3 BaseLetter).
type Canonical byte

const (
	Adenine  Canonical = 'A'
	Guanine  Canonical = 'G'
	Cytosine Canonical = 'C'
	Uracil   Canonical = 'U'
	Thymine  Canonical = 'T'
	Inosine  Canonical = 'I'
	Purine   Canonical = 'P' // ambiguous/unspecified purine marker used by some depositors
)

// BaseLetter is the sum type spec.md §9 asks for in place of a bare
// string: a canonical assignment (uppercase in the external contract) or
// a modified/unusual one (lowercase). The case carries semantics end to
// end (spec.md §3) — Letter() is the single place that renders it.
type BaseLetter struct {
	letter   byte // always lowercase internally; case is derived from Modified
	Modified bool
}

// NewCanonical constructs a BaseLetter for an unmodified base.
func NewCanonical(c Canonical) BaseLetter {
	return BaseLetter{letter: toLower(byte(c)), Modified: false}
}

// NewModified constructs a BaseLetter for a modified or unusual base
// assigned by the atom-presence heuristic (spec.md §4.1 step 2).
func NewModified(letter byte) BaseLetter {
	return BaseLetter{letter: toLower(letter), Modified: true}
}

// Letter renders the external, case-carrying single-character form:
// uppercase for an unmodified assignment, lowercase for modified.
func (b BaseLetter) Letter() byte {
	if b.Modified {
		return b.letter
	}
	return toUpper(b.letter)
}

// CanonicalLetter returns the base identity folded to canonical case,
// for use as a lookup key into hydrogen-bond/edge/Saenger tables that are
// indexed by base identity regardless of modification (spec.md §4.4:
// "atom-name tables keyed by BaseLetter (case folded to canonical)").
func (b BaseLetter) CanonicalLetter() byte {
	return toUpper(b.letter)
}

// String implements fmt.Stringer for debug/log output.
func (b BaseLetter) String() string {
	return string(b.Letter())
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// canonicalResNames maps standard PDB/mmCIF 3-character (or 1-character,
// for some mmCIF sources) residue names to their canonical BaseLetter.
// This table, and the template priority order in templates.go, are part
// of the cross-implementation contract spec.md §4.1 requires: any
// conforming implementation must classify the same resname the same way.
var canonicalResNames = map[string]Canonical{
	"A": Adenine, "DA": Adenine, "ADE": Adenine,
	"G": Guanine, "DG": Guanine, "GUA": Guanine,
	"C": Cytosine, "DC": Cytosine, "CYT": Cytosine,
	"U": Uracil, "URA": Uracil,
	"T": Thymine, "DT": Thymine, "THY": Thymine,
	"I": Inosine, "DI": Inosine, "INO": Inosine,
}

// canonicalBaseLetter looks up resname in the canonical table, case
// normalized to upper (PDB resnames are conventionally uppercase but
// some mmCIF sources lowercase them).
func canonicalBaseLetter(resname string) (Canonical, bool) {
	c, ok := canonicalResNames[strings.ToUpper(strings.TrimSpace(resname))]
	return c, ok
}
