package emit

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/TimothyStiles/basepair/reduce"
)

// DiffMode selects the strictness of regression comparison described in
// spec.md §6.1: "set-equivalence at the field level" by default, or a
// stricter byte-exact gate.
type DiffMode int

const (
	// DiffSetEquivalent compares two record sets field-by-field,
	// ignoring order: spec.md §6.1's default regression equivalence.
	DiffSetEquivalent DiffMode = iota
	// DiffByteExact compares the rendered text byte-for-byte: spec.md
	// §6.1's "stricter gate."
	DiffByteExact
)

// Diff compares two finalized record sets under mode and returns a
// human-readable description of any mismatch, or "" if they match.
func Diff(mode DiffMode, a, b []reduce.PairRecord) string {
	switch mode {
	case DiffByteExact:
		return diffByteExact(a, b)
	default:
		return diffSetEquivalent(a, b)
	}
}

// diffSetEquivalent implements the default regression mode: two record
// sets are equivalent iff every semantic field spec.md §3 names matches,
// independent of slice order (the reducer already sorts canonically, but
// a caller passing in pre-sort data shouldn't get a false mismatch).
func diffSetEquivalent(a, b []reduce.PairRecord) string {
	if len(a) != len(b) {
		return fmt.Sprintf("record count differs: %d vs %d", len(a), len(b))
	}

	byKey := make(map[[2]int]reduce.PairRecord, len(b))
	for _, r := range b {
		byKey[[2]int{int(r.I), int(r.J)}] = r
	}

	for _, ra := range a {
		rb, ok := byKey[[2]int{int(ra.I), int(ra.J)}]
		if !ok {
			return fmt.Sprintf("record (%d,%d) present on one side only", ra.I, ra.J)
		}
		if !fieldsEqual(ra, rb) {
			return fmt.Sprintf("record (%d,%d) differs: %+v vs %+v", ra.I, ra.J, ra, rb)
		}
	}
	return ""
}

func fieldsEqual(a, b reduce.PairRecord) bool {
	idI, idJ := a.ResI.Residue.ID, a.ResJ.Residue.ID
	otherI, otherJ := b.ResI.Residue.ID, b.ResJ.Residue.ID
	return a.Kind == b.Kind &&
		idI.ChainID == otherI.ChainID && idI.ResSeq == otherI.ResSeq && idI.ICode == otherI.ICode &&
		idJ.ChainID == otherJ.ChainID && idJ.ResSeq == otherJ.ResSeq && idJ.ICode == otherJ.ICode &&
		a.ResI.Letter == b.ResI.Letter &&
		a.ResJ.Letter == b.ResJ.Letter &&
		a.EdgeI == b.EdgeI &&
		a.EdgeJ == b.EdgeJ &&
		a.Orientation == b.Orientation &&
		a.SynI == b.SynI &&
		a.SynJ == b.SynJ &&
		a.Saenger == b.Saenger &&
		a.Note == b.Note
}

// diffByteExact renders both sides to text and compares byte-for-byte,
// using go-difflib for a readable unified diff when they differ and
// go-diff's diffmatchpatch for a compact character-level summary.
func diffByteExact(a, b []reduce.PairRecord) string {
	textA := renderRecordsOnly(a)
	textB := renderRecordsOnly(b)
	if textA == textB {
		return ""
	}

	unified := difflib.UnifiedDiff{
		A:        difflib.SplitLines(textA),
		B:        difflib.SplitLines(textB),
		FromFile: "a",
		ToFile:   "b",
		Context:  2,
	}
	out, _ := difflib.GetUnifiedDiffString(unified)

	dmp := diffmatchpatch.New()
	patches := dmp.DiffMain(textA, textB, false)
	summary := dmp.DiffPrettyText(patches)

	return fmt.Sprintf("%s\n--- character diff ---\n%s", out, summary)
}

func renderRecordsOnly(records []reduce.PairRecord) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(recordLine(r))
		b.WriteString("\n")
	}
	return b.String()
}
