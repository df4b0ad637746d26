package reduce

import (
	"testing"

	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/residue"
)

func cr(idx residue.BaseIndex) residue.ClassifiedResidue {
	return residue.ClassifiedResidue{Index: idx, Letter: residue.NewCanonical(residue.Guanine)}
}

func TestReduceDedupesPreferringPairOverStacked(t *testing.T) {
	verdicts := []pairing.PairVerdict{
		{ResI: cr(1), ResJ: cr(2), Kind: pairing.KindStacked},
		{ResI: cr(1), ResJ: cr(2), Kind: pairing.KindPair, BondCount: 2},
	}

	records := Reduce(verdicts)
	if len(records) != 1 {
		t.Fatalf("expected 1 deduplicated record, got %d", len(records))
	}
	if records[0].Kind != pairing.KindPair {
		t.Errorf("Kind = %q, want pair (hydrogen-bonded verdict should win)", records[0].Kind)
	}
}

func TestReduceSortsAscendingByIThenJ(t *testing.T) {
	verdicts := []pairing.PairVerdict{
		{ResI: cr(3), ResJ: cr(4), Kind: pairing.KindPair, BondCount: 1},
		{ResI: cr(1), ResJ: cr(5), Kind: pairing.KindPair, BondCount: 1},
		{ResI: cr(1), ResJ: cr(2), Kind: pairing.KindPair, BondCount: 1},
	}

	records := Reduce(verdicts)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	want := [][2]residue.BaseIndex{{1, 2}, {1, 5}, {3, 4}}
	for i, w := range want {
		if records[i].I != w[0] || records[i].J != w[1] {
			t.Errorf("record %d = (%d,%d), want (%d,%d)", i, records[i].I, records[i].J, w[0], w[1])
		}
	}
}

func TestReduceMarksNonBestPairsTertiary(t *testing.T) {
	// Residue 2 participates in two candidate pairs; the stronger (more
	// bonds) wins as the best pair, the weaker is marked tertiary.
	verdicts := []pairing.PairVerdict{
		{ResI: cr(1), ResJ: cr(2), Kind: pairing.KindPair, BondCount: 3},
		{ResI: cr(2), ResJ: cr(3), Kind: pairing.KindPair, BondCount: 1},
	}

	records := Reduce(verdicts)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	var best, tertiary PairRecord
	for _, r := range records {
		if r.BondCount == 3 {
			best = r
		} else {
			tertiary = r
		}
	}

	if best.Note != "" {
		t.Errorf("best pair Note = %q, want empty", best.Note)
	}
	if tertiary.Note != "!" {
		t.Errorf("non-best pair Note = %q, want \"!\"", tertiary.Note)
	}
}

func TestReduceLeavesStackedRecordsUntouchedByBestPairPass(t *testing.T) {
	verdicts := []pairing.PairVerdict{
		{ResI: cr(1), ResJ: cr(2), Kind: pairing.KindStacked},
	}
	records := Reduce(verdicts)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Note != "" {
		t.Errorf("stacked record Note = %q, want empty (tertiary marking only applies to kind=pair)", records[0].Note)
	}
	if records[0].LW() != "" {
		t.Errorf("LW() = %q, want empty for kind=stacked", records[0].LW())
	}
}
