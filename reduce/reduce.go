/*
Package reduce implements C8: turning the raw per-candidate verdicts
produced by package pairing into the final, deduplicated, canonically
sorted PairRecord set (spec.md §4.7).
*/
package reduce

import (
	"sort"

	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/residue"
)

// PairRecord is the finalized output entity of spec.md §3: one verdict
// per unique (i,j), with tertiary annotation applied.
type PairRecord struct {
	I, J        residue.BaseIndex
	ResI, ResJ  residue.ClassifiedResidue
	Kind        pairing.Kind
	EdgeI       pairing.Edge
	EdgeJ       pairing.Edge
	Orientation pairing.Orientation
	SynI, SynJ  bool
	Saenger     string
	BondCount   int
	Note        string
}

// LW renders the two-character edge code, present only for kind=pair
// (spec.md §3 invariant).
func (r PairRecord) LW() string {
	if r.Kind != pairing.KindPair {
		return ""
	}
	return string(byte(r.EdgeI)) + "/" + string(byte(r.EdgeJ))
}

// Reduce implements C8 over the raw verdicts produced by running
// pairing.EvaluateCandidate across every candidate: deduplicate by
// (i,j) preferring hydrogen-bonded verdicts over stacking, mark
// non-best pairs tertiary, and sort canonically ascending by (i,j).
func Reduce(verdicts []pairing.PairVerdict) []PairRecord {
	dedup := dedupeByPair(verdicts)
	records := make([]PairRecord, 0, len(dedup))
	for _, v := range dedup {
		records = append(records, toRecord(v))
	}

	markTertiary(records)

	sort.Slice(records, func(a, b int) bool {
		if records[a].I != records[b].I {
			return records[a].I < records[b].I
		}
		return records[a].J < records[b].J
	})

	return records
}

// dedupeByPair collapses verdicts sharing the same (i,j) to a single
// one, preferring kind=pair over kind=stacked or kind=unknown — "the
// hydrogen-bond-preferred verdict wins over stacking" (spec.md §4.7).
func dedupeByPair(verdicts []pairing.PairVerdict) []pairing.PairVerdict {
	best := map[[2]residue.BaseIndex]pairing.PairVerdict{}
	order := make([][2]residue.BaseIndex, 0, len(verdicts))

	for _, v := range verdicts {
		key := pairKey(v)
		existing, ok := best[key]
		if !ok {
			best[key] = v
			order = append(order, key)
			continue
		}
		if rank(v.Kind) > rank(existing.Kind) {
			best[key] = v
		}
	}

	out := make([]pairing.PairVerdict, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}

func pairKey(v pairing.PairVerdict) [2]residue.BaseIndex {
	i, j := v.ResI.Index, v.ResJ.Index
	if i > j {
		i, j = j, i
	}
	return [2]residue.BaseIndex{i, j}
}

// rank orders kinds by dedup preference: pair beats stacked beats
// unknown.
func rank(k pairing.Kind) int {
	switch k {
	case pairing.KindPair:
		return 2
	case pairing.KindStacked:
		return 1
	default:
		return 0
	}
}

func toRecord(v pairing.PairVerdict) PairRecord {
	i, j := v.ResI.Index, v.ResJ.Index
	resI, resJ := v.ResI, v.ResJ
	if i > j {
		i, j = j, i
		resI, resJ = resJ, resI
	}
	return PairRecord{
		I: i, J: j,
		ResI: resI, ResJ: resJ,
		Kind:        v.Kind,
		EdgeI:       v.EdgeI,
		EdgeJ:       v.EdgeJ,
		Orientation: v.Orientation,
		SynI:        v.SynI,
		SynJ:        v.SynJ,
		Saenger:     v.Saenger,
		BondCount:   v.BondCount,
		Note:        v.Note,
	}
}

// markTertiary implements the best-pair pass (spec.md §4.7): among
// kind=pair records, greedily selects one best pair per residue
// (descending bond count, then ascending |i-j|), and appends "!" to the
// Note of every pair record not selected as a best pair for both of its
// residues.
func markTertiary(records []PairRecord) {
	var pairIdx []int
	for idx, r := range records {
		if r.Kind == pairing.KindPair {
			pairIdx = append(pairIdx, idx)
		}
	}

	sort.Slice(pairIdx, func(a, b int) bool {
		ra, rb := records[pairIdx[a]], records[pairIdx[b]]
		if ra.BondCount != rb.BondCount {
			return ra.BondCount > rb.BondCount
		}
		return seqSpan(ra) < seqSpan(rb)
	})

	claimed := map[residue.BaseIndex]bool{}
	isBest := map[int]bool{}
	for _, idx := range pairIdx {
		r := records[idx]
		if claimed[r.I] || claimed[r.J] {
			continue
		}
		claimed[r.I] = true
		claimed[r.J] = true
		isBest[idx] = true
	}

	for _, idx := range pairIdx {
		if !isBest[idx] {
			records[idx].Note = appendTertiary(records[idx].Note)
		}
	}
}

func seqSpan(r PairRecord) residue.BaseIndex {
	if r.J >= r.I {
		return r.J - r.I
	}
	return r.I - r.J
}

func appendTertiary(note string) string {
	if note == "" {
		return "!"
	}
	return note + "!"
}
