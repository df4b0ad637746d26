package basepair

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/TimothyStiles/basepair/emit"
	"github.com/TimothyStiles/basepair/frame"
	"github.com/TimothyStiles/basepair/multiplet"
	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/reduce"
	"github.com/TimothyStiles/basepair/residue"
	"github.com/TimothyStiles/basepair/stats"
)

// Result is the immutable record set spec.md §3 describes, produced by
// one call to Analyze. Nothing mutates it after Analyze returns (§3:
// "The entire record set is immutable at the boundary with C11").
type Result struct {
	Records    []reduce.PairRecord
	Multiplets []multiplet.Multiplet
	Stats      stats.Stats
}

// Analyze runs the full C2-C10 pipeline over s (already parsed and
// model-selected by an upstream reader) and returns the finalized
// record set. It is single-threaded and deterministic per call (§5):
// Analyze owns s exclusively for its duration, keeps no state across
// calls, and is safe to invoke concurrently from separate goroutines
// provided each receives its own *residue.Structure.
//
// An empty structure (no recognised residues) is not an error: it
// yields a well-defined empty Result, per §7's MalformedStructure
// handling ("if it reaches the core... the core returns a single
// well-defined empty-structure result"). An InternalInvariantError is
// returned only if a programming error produces output violating §3's
// invariants; it is never expected in a correct build.
func Analyze(s *residue.Structure, opts Options) (Result, error) {
	if opts.ChainIDTruncate {
		s = truncateChainIDs(s)
	}

	classified := s.ClassifyAll(func(r residue.Residue) bool {
		return opts.includeChain(r.ID.ChainID)
	})

	if len(classified) == 0 {
		opts.logf("basepair: no recognised bases in structure, returning empty result")
		return Result{Stats: stats.Compute(0, nil)}, nil
	}

	pairable, frames := buildFrames(s, classified, opts)

	candidates := pairing.Candidates(pairable, frames)

	verdicts := make([]pairing.PairVerdict, 0, len(candidates))
	for _, c := range candidates {
		v, ok := pairing.EvaluateCandidate(s, c)
		if !ok {
			continue
		}
		if v.Kind == pairing.KindUnknown {
			opts.logf("basepair: ambiguous pair %d-%d: %s", v.ResI.Index, v.ResJ.Index, v.Note)
		}
		verdicts = append(verdicts, v)
	}

	records := reduce.Reduce(verdicts)
	if err := checkInvariants(records); err != nil {
		return Result{}, err
	}

	multiplets := multiplet.Derive(records)
	st := stats.Compute(len(classified), records)

	return Result{Records: records, Multiplets: multiplets, Stats: st}, nil
}

// truncateChainIDs returns a shallow copy of s with every residue's
// ChainID restricted to its first character (§6.3 chain_id_truncate,
// §9's "model it as a pre-processing step on ResidueId"). Atoms are
// shared with s; only the Residues slice and its ID fields are copied.
func truncateChainIDs(s *residue.Structure) *residue.Structure {
	out := &residue.Structure{Atoms: s.Atoms, Residues: make([]residue.Residue, len(s.Residues))}
	for i, r := range s.Residues {
		r.ID = r.ID.TruncateChainID()
		out.Residues[i] = r
	}
	return out
}

// buildFrames implements C3 over every classified residue, returning
// only those for which a frame (primary or fallback) could be built at
// all, paired 1:1 with their frames — a residue whose Build reports
// ok=false (no atoms at all) is a SkippedResidue (§7) and never
// reaches C4.
func buildFrames(s *residue.Structure, classified []residue.ClassifiedResidue, opts Options) ([]residue.ClassifiedResidue, []frame.Frame) {
	pairable := make([]residue.ClassifiedResidue, 0, len(classified))
	frames := make([]frame.Frame, 0, len(classified))
	for _, cr := range classified {
		f, ok := frame.Build(s, cr.Residue, cr.Letter)
		if !ok {
			opts.logf("basepair: residue %d (%s) has too few atoms for any frame, skipped", cr.Index, cr.Residue.ID.ChainID)
			continue
		}
		pairable = append(pairable, cr)
		frames = append(frames, f)
	}
	return pairable, frames
}

// checkInvariants re-validates every §3 invariant on the finalized
// record set before it leaves the core: (i,j) uniqueness, i<j, and a
// non-empty lw on every kind=pair record. A violation here is always an
// InternalInvariantError (§7): package reduce's own logic is supposed to
// guarantee these, so a failure here is a bug in the core, not in the
// input.
func checkInvariants(records []reduce.PairRecord) error {
	seen := map[[2]residue.BaseIndex]bool{}
	for _, r := range records {
		if r.I <= 0 || r.J <= 0 {
			return InternalInvariantError{Invariant: "positive index", Detail: fmt.Sprintf("(%d,%d)", r.I, r.J)}
		}
		if r.I >= r.J {
			return InternalInvariantError{Invariant: "i<j", Detail: fmt.Sprintf("(%d,%d)", r.I, r.J)}
		}
		key := [2]residue.BaseIndex{r.I, r.J}
		if seen[key] {
			return InternalInvariantError{Invariant: "unique (i,j)", Detail: fmt.Sprintf("(%d,%d)", r.I, r.J)}
		}
		seen[key] = true
		if r.Kind == pairing.KindPair && (r.EdgeI == 0 || r.EdgeJ == 0) {
			return InternalInvariantError{Invariant: "non-empty lw", Detail: fmt.Sprintf("(%d,%d)", r.I, r.J)}
		}
	}
	return nil
}

// Text renders r as spec.md §6.1's bracketed text record.
func (r Result) Text() string {
	return emit.Text(r.Records, r.Multiplets, r.Stats)
}

// Document assembles spec.md §6.2's structured JSON record from r,
// source, and the options that produced it.
func (r Result) Document(source emit.Source, opts Options) (emit.Document, error) {
	raw, err := json.Marshal(opts.Raw)
	if err != nil {
		return emit.Document{}, fmt.Errorf("basepair: marshaling raw options: %w", err)
	}
	emitOpts := emit.Options{
		CIFIDs:          opts.CIFIDs,
		NMRModel:        opts.NMRModel,
		ChainIDTruncate: opts.ChainIDTruncate,
		ResolutionMax:   opts.ResolutionMax,
		Raw:             json.RawMessage(raw),
	}
	for chain := range opts.ChainFilter {
		emitOpts.ChainFilter = append(emitOpts.ChainFilter, chain)
	}
	sort.Strings(emitOpts.ChainFilter)
	return emit.BuildDocument(source, emitOpts, r.Records, r.Multiplets, r.Stats)
}

// JSON renders r as spec.md §6.2's structured record.
func (r Result) JSON(source emit.Source, opts Options) ([]byte, error) {
	doc, err := r.Document(source, opts)
	if err != nil {
		return nil, err
	}
	return doc.JSON()
}
