/*
Package bpplot is the downstream rendering boundary spec.md §1 puts out
of scope: "2D/3D rendering are treated as ... downstream services whose
boundary contracts §6 pins down." This package is that boundary's stub
on this side — it accepts a finalized record set and forwards it to
whatever external PostScript/VRML renderer the caller wires up, without
implementing rendering itself.

It uses a structured zap.Logger rather than this module's usual stdlib
log.Logger side channel (see basepair.Options.Logger) because this
boundary is explicitly a different observability domain from the core:
the core's SkippedResidue/AmbiguousPair notices are per-structure
analysis diagnostics (§7), while this boundary's logs are about a
downstream service call that may fail, retry, or queue independently of
any single analysis — the kind of operational event zap's structured
fields are suited to, and a degree of machinery the core's own §5 "no
hidden caches... no shared mutable state" constraint deliberately avoids
taking on.
*/
package bpplot

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/TimothyStiles/basepair/reduce"
)

// Renderer is the boundary contract a downstream PostScript/VRML
// renderer implements; this package never implements one itself.
type Renderer interface {
	Render(records []reduce.PairRecord) ([]byte, error)
}

// Forwarder dispatches a finalized record set to a downstream Renderer,
// logging the handoff (and any failure) through a structured logger.
type Forwarder struct {
	renderer Renderer
	logger   *zap.Logger
}

// NewForwarder builds a Forwarder. A nil logger falls back to zap's
// no-op logger rather than a package-level global, consistent with
// this module's avoidance of hidden shared state.
func NewForwarder(renderer Renderer, logger *zap.Logger) *Forwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forwarder{renderer: renderer, logger: logger}
}

// Forward hands records to the configured Renderer. If none is
// configured, it logs and returns an error rather than silently
// dropping the request — this boundary is explicitly "out of scope,"
// not "optional and ignorable."
func (f *Forwarder) Forward(records []reduce.PairRecord) ([]byte, error) {
	if f.renderer == nil {
		f.logger.Warn("basepair: render requested but no renderer is wired; this boundary is out of scope for the core",
			zap.Int("pair_count", len(records)))
		return nil, fmt.Errorf("bpplot: no renderer configured")
	}

	f.logger.Info("basepair: forwarding finalized record set to downstream renderer", zap.Int("pair_count", len(records)))
	out, err := f.renderer.Render(records)
	if err != nil {
		f.logger.Error("basepair: downstream render failed", zap.Error(err))
		return nil, fmt.Errorf("bpplot: render: %w", err)
	}
	return out, nil
}
