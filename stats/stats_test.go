package stats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/reduce"
)

func TestComputeCountsOnlyPairRecords(t *testing.T) {
	records := []reduce.PairRecord{
		{I: 1, J: 2, Kind: pairing.KindPair, EdgeI: pairing.Edge('+'), EdgeJ: pairing.Edge('+'), Orientation: pairing.OrientationCis},
		{I: 2, J: 3, Kind: pairing.KindStacked},
		{I: 3, J: 4, Kind: pairing.KindUnknown},
	}

	s := Compute(10, records)
	if s.TotalBases != 10 {
		t.Errorf("TotalBases = %d, want 10", s.TotalBases)
	}
	if s.TotalPairs != 1 {
		t.Errorf("TotalPairs = %d, want 1", s.TotalPairs)
	}
	if s.PairTypeCounts["++-cis"] != 1 {
		t.Errorf("PairTypeCounts[\"++-cis\"] = %d, want 1", s.PairTypeCounts["++-cis"])
	}
	if s.Hash == "" {
		t.Errorf("expected a non-empty content hash")
	}
}

func TestComputeHashIsDeterministic(t *testing.T) {
	records := []reduce.PairRecord{
		{I: 1, J: 2, Kind: pairing.KindPair, EdgeI: pairing.Edge('W'), EdgeJ: pairing.Edge('W'), Orientation: pairing.OrientationTrans, Saenger: "n/a"},
	}
	a := Compute(2, records)
	b := Compute(2, records)
	if a.Hash != b.Hash {
		t.Errorf("Hash should be deterministic for identical input: %q != %q", a.Hash, b.Hash)
	}
}

func TestRegisterMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := RegisterMetrics(reg)
	if err != nil {
		t.Fatalf("RegisterMetrics: %v", err)
	}
	s := Compute(3, []reduce.PairRecord{
		{I: 1, J: 2, Kind: pairing.KindPair, EdgeI: pairing.Edge('W'), EdgeJ: pairing.Edge('W'), Orientation: pairing.OrientationCis},
	})
	m.Observe(s, 0.01)

	metricFamilies, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(metricFamilies) == 0 {
		t.Errorf("expected at least one registered metric family after Observe")
	}
}
