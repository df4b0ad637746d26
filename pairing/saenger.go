package pairing

// Orientation is cis/trans as determined from frame normal dot product
// (spec.md §4.5 step 2).
type Orientation byte

const (
	OrientationNone  Orientation = 0
	OrientationCis   Orientation = 'c'
	OrientationTrans Orientation = 't'
)

// String renders the external cis/tran spelling used by the text record
// (spec.md §6.1); the statistics key spelling comes from StatsSuffix.
func (o Orientation) String() string {
	switch o {
	case OrientationCis:
		return "cis"
	case OrientationTrans:
		return "tran"
	default:
		return ""
	}
}

// StatsSuffix returns the three-letter orientation suffix used in
// pair_type_counts keys (spec.md §4.9: "tra", not "tran").
func (o Orientation) StatsSuffix() string {
	switch o {
	case OrientationCis:
		return "cis"
	case OrientationTrans:
		return "tra"
	default:
		return ""
	}
}

// saengerKey identifies a canonical Watson-Crick geometry by its two
// base letters (ordered as encountered, base_i then base_j) and
// orientation.
type saengerKey struct {
	baseI, baseJ byte
	orientation  Orientation
}

// saengerTable is the explicit, closed lookup spec.md §9 requires for
// full Watson-Crick matches ("must be imported from the golden set, not
// invented"). Only the unambiguous canonical cis geometries are listed;
// every key not present here — including any base pair that happens to
// match two templates at once — resolves to "n/a" per the Open
// Questions resolution recorded in SPEC_FULL.md/DESIGN.md, rather than
// guessing a numeral.
var saengerTable = map[saengerKey]string{
	{'G', 'C', OrientationCis}: "XIX",
	{'C', 'G', OrientationCis}: "XIX",
	{'A', 'U', OrientationCis}: "XX",
	{'U', 'A', OrientationCis}: "XX",
	{'A', 'T', OrientationCis}: "XX",
	{'T', 'A', OrientationCis}: "XX",
}

// SaengerLookup returns the roman-numeral code for a full WC match, or
// ("n/a", false) when the combination isn't in the closed table.
func SaengerLookup(baseI, baseJ byte, orientation Orientation) (string, bool) {
	numeral, ok := saengerTable[saengerKey{baseI, baseJ, orientation}]
	if !ok {
		return "n/a", false
	}
	return numeral, true
}
