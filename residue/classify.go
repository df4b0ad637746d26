package residue

// BaseIndex is the 1-based ordinal of a residue among those recognised
// as a base (spec.md §3). A BaseIndex of 0 is never valid and is used as
// a sentinel for "not assigned."
type BaseIndex int

// Classify implements C2: it determines whether r is recognised as a
// base and, if so, its BaseLetter. ok is false for residues that are
// neither a canonical/modified base nor ring-bearing — spec.md's
// SkippedResidue condition (§7) — and also for residues whose ring atoms
// are present but match none of the modified templates (the lowercase
// 'n' case in §4.1 step 3, which is itself skipped from pairing).
func (s *Structure) Classify(r Residue) (BaseLetter, bool) {
	if canonical, ok := canonicalBaseLetter(r.ResName); ok {
		return NewCanonical(canonical), true
	}

	if letter, ok := s.matchModifiedTemplate(r); ok {
		return NewModified(letter), true
	}

	if s.hasRing(r) {
		// Ring present but no atom-presence template matched: lowercase
		// 'n', explicitly excluded from pairing per spec.md §4.1 step 3.
		return BaseLetter{}, false
	}

	return BaseLetter{}, false
}

// ClassifiedResidue pairs a Residue with its assigned BaseLetter and
// BaseIndex, for every residue recognised as a base.
type ClassifiedResidue struct {
	Residue Residue
	Letter  BaseLetter
	Index   BaseIndex
}

// ClassifyAll runs Classify over every residue in s, in the order
// presented by the upstream parser, and assigns BaseIndex values
// 1..N to the accepted subset in that same order (spec.md §3 BaseIndex
// invariant). include, if non-nil, is consulted per-residue first (e.g.
// to apply a chain_filter option, spec.md §6.3) — residues it rejects
// never reach Classify and never receive an index.
func (s *Structure) ClassifyAll(include func(Residue) bool) []ClassifiedResidue {
	var out []ClassifiedResidue
	next := BaseIndex(1)
	for _, r := range s.Residues {
		if include != nil && !include(r) {
			continue
		}
		letter, ok := s.Classify(r)
		if !ok {
			continue
		}
		out = append(out, ClassifiedResidue{Residue: r, Letter: letter, Index: next})
		next++
	}
	return out
}
