package multiplet

import (
	"testing"

	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/reduce"
	"github.com/TimothyStiles/basepair/residue"
)

func pairRecord(i, j residue.BaseIndex, lw string) reduce.PairRecord {
	return reduce.PairRecord{
		I: i, J: j,
		Kind:  pairing.KindPair,
		EdgeI: pairing.Edge(lw[0]),
		EdgeJ: pairing.Edge(lw[2]),
	}
}

func TestDeriveSkipsComponentsSmallerThanThree(t *testing.T) {
	records := []reduce.PairRecord{pairRecord(1, 2, "W/W")}
	multiplets := Derive(records)
	if len(multiplets) != 0 {
		t.Fatalf("expected no multiplets from an isolated pair, got %d", len(multiplets))
	}
}

func TestDeriveFindsTriangleComponent(t *testing.T) {
	records := []reduce.PairRecord{
		pairRecord(1, 2, "W/W"),
		pairRecord(2, 3, "W/H"),
		pairRecord(1, 3, "H/W"),
	}
	multiplets := Derive(records)
	if len(multiplets) != 1 {
		t.Fatalf("expected 1 multiplet, got %d", len(multiplets))
	}
	want := []residue.BaseIndex{1, 2, 3}
	if len(multiplets[0].Indices) != 3 {
		t.Fatalf("Indices = %v, want length 3", multiplets[0].Indices)
	}
	for i, idx := range want {
		if multiplets[0].Indices[i] != idx {
			t.Errorf("Indices[%d] = %d, want %d", i, multiplets[0].Indices[i], idx)
		}
	}
	if multiplets[0].Text == "" {
		t.Errorf("expected a non-empty canonical text rendering")
	}
}

func TestDeriveIgnoresStackedRecords(t *testing.T) {
	records := []reduce.PairRecord{
		pairRecord(1, 2, "W/W"),
		{I: 2, J: 3, Kind: pairing.KindStacked},
		{I: 1, J: 3, Kind: pairing.KindStacked},
	}
	multiplets := Derive(records)
	if len(multiplets) != 0 {
		t.Fatalf("expected stacked edges to never contribute to a multiplet component, got %d", len(multiplets))
	}
}

func TestDeriveSeparatesDisjointComponents(t *testing.T) {
	records := []reduce.PairRecord{
		pairRecord(1, 2, "W/W"),
		pairRecord(2, 3, "W/H"),
		pairRecord(1, 3, "H/W"),
		pairRecord(10, 11, "W/W"),
		pairRecord(11, 12, "W/H"),
		pairRecord(10, 12, "H/W"),
	}
	multiplets := Derive(records)
	if len(multiplets) != 2 {
		t.Fatalf("expected 2 disjoint multiplets, got %d", len(multiplets))
	}
}
