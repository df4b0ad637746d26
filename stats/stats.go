/*
Package stats implements C10: aggregate statistics over a finalized
pair-record set, a content-hash fingerprint of the record set (for
batch-mode regression caching), and an optional Prometheus sink.
*/
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"lukechampine.com/blake3"

	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/reduce"
)

// Stats is spec.md §3's aggregate entity, plus a content Hash that is
// not part of the cross-implementation contract but is useful as a
// batch-mode regression-cache key (mirrors the teacher's root-level
// Hash(sequence) helper, reused here over the finalized record set
// instead of a raw sequence).
type Stats struct {
	TotalBases     int
	TotalPairs     int
	PairTypeCounts map[string]int
	Hash           string
}

// Compute implements C10: totalBases is the number of recognised
// residues passed to it, totalPairs counts kind=pair records, and
// pair_type_counts partitions the pair records exactly by
// "<edge_i><edge_j>-<orient>" (spec.md §4.9).
func Compute(totalBases int, records []reduce.PairRecord) Stats {
	counts := map[string]int{}
	totalPairs := 0
	for _, r := range records {
		if r.Kind != pairing.KindPair {
			continue
		}
		totalPairs++
		key := fmt.Sprintf("%c%c-%s", r.EdgeI, r.EdgeJ, r.Orientation.StatsSuffix())
		counts[key]++
	}

	return Stats{
		TotalBases:     totalBases,
		TotalPairs:     totalPairs,
		PairTypeCounts: counts,
		Hash:           contentHash(totalBases, records),
	}
}

// contentHash fingerprints the finalized record set deterministically:
// records are already canonically sorted by (i,j) coming out of
// package reduce, so a straightforward field concatenation is stable
// across runs over the same structure.
func contentHash(totalBases int, records []reduce.PairRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "bases=%d\n", totalBases)
	for _, r := range records {
		fmt.Fprintf(&b, "%d\t%d\t%c\t%s\t%c%c\t%s\t%s\t%d\t%s\n",
			r.I, r.J, r.Kind, r.Orientation, r.EdgeI, r.EdgeJ, r.Saenger, lwOrDash(r), r.BondCount, r.Note)
	}
	sum := blake3.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", sum)
}

func lwOrDash(r reduce.PairRecord) string {
	if lw := r.LW(); lw != "" {
		return lw
	}
	return "-"
}

// Keys returns the pair_type_counts keys in sorted order, useful for
// deterministic text/JSON emission.
func (s Stats) Keys() []string {
	keys := make([]string, 0, len(s.PairTypeCounts))
	for k := range s.PairTypeCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Metrics is an optional Prometheus sink additive to the plain Stats
// struct; nothing in the core requires it, it exists purely so batch/
// server-style callers can expose pair-type counts, base counts and
// analysis latency to a scrape endpoint. Stacks are not counted.
type Metrics struct {
	pairsTotal  *prometheus.CounterVec
	basesTotal  prometheus.Counter
	analyzeSecs prometheus.Histogram
}

// RegisterMetrics creates and registers the Prometheus collectors on
// reg, returning a Metrics handle. Callers who don't need metrics never
// call this; Compute works standalone.
func RegisterMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		pairsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "basepair",
			Name:      "pairs_total",
			Help:      "Count of finalized pair records by LW/orientation key.",
		}, []string{"pair_type"}),
		basesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "basepair",
			Name:      "bases_total",
			Help:      "Count of recognised bases across analysed structures.",
		}),
		analyzeSecs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "basepair",
			Name:      "analyze_duration_seconds",
			Help:      "Wall-clock duration of one structure's full analysis.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{m.pairsTotal, m.basesTotal, m.analyzeSecs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records s and the analysis wall-clock duration (in seconds)
// against the registered collectors.
func (m *Metrics) Observe(s Stats, durationSeconds float64) {
	m.basesTotal.Add(float64(s.TotalBases))
	for key, count := range s.PairTypeCounts {
		m.pairsTotal.WithLabelValues(key).Add(float64(count))
	}
	m.analyzeSecs.Observe(durationSeconds)
}
