package residue

// Ring atom sets used to recognise a residue as a base purely from atom
// presence, independent of resname (spec.md §4.1).
var (
	purineRingAtoms    = []string{"N1", "C2", "N3", "C4", "C5", "C6", "N7", "C8", "N9"}
	pyrimidineRingAtoms = []string{"N1", "C2", "N3", "C4", "C5", "C6"}
)

// modifiedTemplate is one entry in the fixed-priority atom-presence
// signature table used to assign a lowercase letter when resname isn't
// canonical (spec.md §4.1 step 2). Present is required; Absent atoms
// disambiguate between templates that would otherwise both match (e.g.
// guanine-like vs. inosine-like purines, both missing N2 would otherwise
// collide).
type modifiedTemplate struct {
	letter  byte
	present []string
	absent  []string
}

// modifiedTemplates is evaluated strictly in order; the first match
// wins. This ordering is part of the cross-implementation contract
// (spec.md §4.1: "must match across implementations").
var modifiedTemplates = []modifiedTemplate{
	{letter: 'a', present: append(append([]string{}, purineRingAtoms...), "N6")},
	{letter: 'g', present: append(append([]string{}, purineRingAtoms...), "O6", "N2")},
	{letter: 'i', present: append(append([]string{}, purineRingAtoms...), "O6"), absent: []string{"N2"}},
	{letter: 'c', present: append(append([]string{}, pyrimidineRingAtoms...), "N4")},
	{letter: 't', present: append(append([]string{}, pyrimidineRingAtoms...), "O2", "O4", "C7")},
	{letter: 't', present: append(append([]string{}, pyrimidineRingAtoms...), "O2", "O4", "C5M")},
	{letter: 'u', present: append(append([]string{}, pyrimidineRingAtoms...), "O2", "O4")},
	{letter: 'p', present: append([]string{}, purineRingAtoms...)},
}

// hasRing reports whether r's atom set satisfies either the purine or
// the pyrimidine ring criterion of spec.md §4.1.
func (s *Structure) hasRing(r Residue) bool {
	return s.HasAllAtoms(r, purineRingAtoms) || s.HasAllAtoms(r, pyrimidineRingAtoms)
}

// matchModifiedTemplate returns the first modifiedTemplate whose
// present/absent atom conditions are satisfied by r, in priority order.
func (s *Structure) matchModifiedTemplate(r Residue) (byte, bool) {
	for _, tmpl := range modifiedTemplates {
		if !s.HasAllAtoms(r, tmpl.present) {
			continue
		}
		excluded := false
		for _, a := range tmpl.absent {
			if _, ok := s.AtomByName(r, a); ok {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		return tmpl.letter, true
	}
	return 0, false
}
