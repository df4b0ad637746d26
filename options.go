package basepair

import (
	"encoding/json"
	"log"
)

// Options models spec.md §6.3's recognised options as a plain struct
// built up by functional-option constructors — the same shape the
// teacher's CLI layer uses to turn flags into plain structs before
// calling into library code. Unrecognised options are preserved
// verbatim in Raw rather than dropped, per §6.3: "Options unrecognised
// by the core are preserved verbatim in the JSON but do not alter
// behaviour."
type Options struct {
	// ChainFilter restricts analysis to residues whose chain ID is in
	// this set; nil means no restriction. Affects BaseIndex numbering:
	// filtered-out residues never receive an index (§6.3).
	ChainFilter map[string]bool
	// CIFIDs selects which mmCIF identifier scheme an upstream cif
	// reader used to build the Structure ("auth" or "label"); the core
	// itself is scheme-agnostic, this is recorded for §6.2's source
	// object.
	CIFIDs string
	// NMRModel is the representative model an upstream reader selected;
	// nil means the default (model 1) was used.
	NMRModel *int
	// ChainIDTruncate enables the legacy one-character chain-ID
	// compatibility mode (§6.3, §9): applied as a pre-processing step on
	// residue identities before BaseIndex numbering, never as a data
	// model invariant.
	ChainIDTruncate bool
	// ResolutionMax is recorded for provenance only; it is an upstream
	// filter, not something the core enforces (§6.3).
	ResolutionMax *float64
	// Raw carries any options keys the core does not recognise,
	// verbatim, so they round-trip through JSON untouched.
	Raw map[string]json.RawMessage
	// Logger is the optional side-channel sink for SkippedResidue and
	// AmbiguousPair notices (§7: "non-fatal... logged to a side
	// channel"). A nil Logger silently drops these notices, matching
	// §5's "no hidden caches... no shared mutable state": the core never
	// falls back to a package-level logger.
	Logger *log.Logger
}

// Option configures an Options value.
type Option func(*Options)

// WithChainFilter restricts analysis to the given chain IDs.
func WithChainFilter(chains ...string) Option {
	return func(o *Options) {
		if o.ChainFilter == nil {
			o.ChainFilter = map[string]bool{}
		}
		for _, c := range chains {
			o.ChainFilter[c] = true
		}
	}
}

// WithCIFIDs records which mmCIF identifier scheme was used upstream.
func WithCIFIDs(scheme string) Option {
	return func(o *Options) { o.CIFIDs = scheme }
}

// WithNMRModel records which NMR model was selected upstream.
func WithNMRModel(model int) Option {
	return func(o *Options) { o.NMRModel = &model }
}

// WithChainIDTruncate enables or disables the legacy one-character
// chain-ID compatibility mode.
func WithChainIDTruncate(enabled bool) Option {
	return func(o *Options) { o.ChainIDTruncate = enabled }
}

// WithResolutionMax records the upstream resolution cutoff for
// provenance.
func WithResolutionMax(max float64) Option {
	return func(o *Options) { o.ResolutionMax = &max }
}

// WithLogger sets the side-channel logger for SkippedResidue and
// AmbiguousPair notices.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRawOption preserves an option key the core does not itself model,
// so it round-trips through the JSON record unchanged (§6.3).
func WithRawOption(key string, value json.RawMessage) Option {
	return func(o *Options) {
		if o.Raw == nil {
			o.Raw = map[string]json.RawMessage{}
		}
		o.Raw[key] = value
	}
}

// NewOptions builds an Options value from functional options, all
// defaulting to "no restriction."
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// includeChain reports whether chainID passes this Options' ChainFilter
// (§6.3: "Restrict to residues whose chain ID is in the set").
func (o Options) includeChain(chainID string) bool {
	if o.ChainFilter == nil {
		return true
	}
	return o.ChainFilter[chainID]
}

// logf writes a side-channel notice if a Logger is configured (§7); a
// nil Logger makes this a no-op rather than a panic.
func (o Options) logf(format string, args ...any) {
	if o.Logger == nil {
		return
	}
	o.Logger.Printf(format, args...)
}
