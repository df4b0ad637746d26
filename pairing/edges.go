package pairing

// Edge identifies one of the three Leontis-Westhof interaction edges of
// a base, plus the unresolved sentinel (spec.md Glossary).
type Edge byte

const (
	EdgeUnknown    Edge = '?'
	EdgeWatson     Edge = 'W'
	EdgeHoogsteen  Edge = 'H'
	EdgeSugar      Edge = 'S'
)

// edgePriority breaks ties when more than one edge has equal bond
// participation (spec.md §4.5 step 1: "ties break in the fixed order
// W > H > S").
var edgePriority = []Edge{EdgeWatson, EdgeHoogsteen, EdgeSugar}

// donorAtom is one donor heavy atom together with the ring neighbour
// used to approximate N-H (or N-H2) directionality without requiring
// explicit hydrogens (spec.md §4.5's "pseudo-angle").
type donorAtom struct {
	name      string
	neighbour string
}

// baseAtomTable holds, for one canonical base letter, every atom that
// participates in hydrogen bonding as a donor or acceptor, and which LW
// edge(s) each atom belongs to. A heavy atom may belong to more than one
// edge (e.g. guanine O6 is shared by the Watson-Crick and Hoogsteen
// edges), matching standard Leontis-Westhof edge definitions.
type baseAtomTable struct {
	donors    []donorAtom
	acceptors []string
	edgeOf    map[string][]Edge
}

// atomTables is keyed by canonical (uppercase) base letter and is the
// cross-implementation contract for C5's donor/acceptor enumeration and
// C6's edge tally (spec.md §4.4, §4.5).
var atomTables = map[byte]baseAtomTable{
	'A': {
		donors:    []donorAtom{{"N6", "C6"}},
		acceptors: []string{"N1", "N3", "N7"},
		edgeOf: map[string][]Edge{
			"N1": {EdgeWatson},
			"N6": {EdgeWatson, EdgeHoogsteen},
			"N7": {EdgeHoogsteen},
			"N3": {EdgeSugar},
		},
	},
	'G': {
		donors:    []donorAtom{{"N1", "C2"}, {"N2", "C2"}},
		acceptors: []string{"O6", "N3", "N7"},
		edgeOf: map[string][]Edge{
			"N1": {EdgeWatson},
			"O6": {EdgeWatson, EdgeHoogsteen},
			"N2": {EdgeWatson, EdgeSugar},
			"N7": {EdgeHoogsteen},
			"N3": {EdgeSugar},
		},
	},
	'I': {
		donors:    []donorAtom{{"N1", "C2"}},
		acceptors: []string{"O6", "N3", "N7"},
		edgeOf: map[string][]Edge{
			"N1": {EdgeWatson},
			"O6": {EdgeWatson, EdgeHoogsteen},
			"N7": {EdgeHoogsteen},
			"N3": {EdgeSugar},
		},
	},
	'C': {
		donors:    []donorAtom{{"N4", "C4"}},
		acceptors: []string{"N3", "O2"},
		edgeOf: map[string][]Edge{
			"N3": {EdgeWatson},
			"N4": {EdgeWatson, EdgeHoogsteen},
			"O2": {EdgeSugar},
		},
	},
	'U': {
		donors:    []donorAtom{{"N3", "C2"}},
		acceptors: []string{"O4", "O2"},
		edgeOf: map[string][]Edge{
			"N3": {EdgeWatson},
			"O4": {EdgeWatson, EdgeHoogsteen},
			"O2": {EdgeSugar},
		},
	},
	'T': {
		donors:    []donorAtom{{"N3", "C2"}},
		acceptors: []string{"O4", "O2"},
		edgeOf: map[string][]Edge{
			"N3": {EdgeWatson},
			"O4": {EdgeWatson, EdgeHoogsteen},
			"O2": {EdgeSugar},
		},
	},
}

// wcAtomPair is one heavy-atom pair expected of a canonical
// Watson-Crick match: atomA belongs to the map key's first base letter,
// atomB to its second, irrespective of which one is the hydrogen-bond
// donor (donor/acceptor roles are resolved separately against the
// enumerated BondSet).
type wcAtomPair struct{ atomA, atomB string }

// wcTemplates holds the canonical Watson-Crick heavy-atom pairing for
// every (base_i, base_j) combination that has one — see wcMatch, which
// also tries the swapped key order. These three combinations (A·U, A·T,
// G·C) are the canonical Saenger geometries spec.md §4.5 step 3 refers
// to as "WC canonical template."
var wcTemplates = map[[2]byte][]wcAtomPair{
	{'A', 'U'}: {{"N6", "O4"}, {"N1", "N3"}},
	{'A', 'T'}: {{"N6", "O4"}, {"N1", "N3"}},
	{'G', 'C'}: {{"N1", "N3"}, {"N2", "O2"}, {"O6", "N4"}},
}

// wcMatch returns the canonical WC atom-pair template for the (a, b)
// combination in whichever order it was defined, along with whether a
// and b must be read in the same order as the template's donor/acceptor
// convention (swapped is true if b is the template's first letter).
func wcMatch(a, b byte) ([]wcAtomPair, bool, bool) {
	if pairs, ok := wcTemplates[[2]byte{a, b}]; ok {
		return pairs, false, true
	}
	if pairs, ok := wcTemplates[[2]byte{b, a}]; ok {
		return pairs, true, true
	}
	return nil, false, false
}
