package basepair

import "fmt"

// MalformedStructureError is spec.md §7's fatal-but-surfaced condition:
// the upstream layer is expected to reject malformed input before it
// ever reaches the core. Analyze itself does not return it: a structure
// with zero recognised residues is logged through Options.Logger and
// yields a well-defined empty Result with a nil error.
//
// Modeled after io/pdbx/cif's CIFSyntaxError: a named struct carrying
// positional/diagnostic context, with a Wrap method for chaining
// additional context without losing the original condition.
type MalformedStructureError struct {
	Reason string
}

// Wrap returns a new MalformedStructureError with additional context
// prepended to Reason.
func (e MalformedStructureError) Wrap(format string, a ...any) error {
	return MalformedStructureError{Reason: fmt.Sprintf("%s: %s", fmt.Sprintf(format, a...), e.Reason)}
}

// Error implements error.
func (e MalformedStructureError) Error() string {
	return fmt.Sprintf("malformed structure: %s", e.Reason)
}

// InternalInvariantError is spec.md §7's fatal, never-retried condition:
// any invariant from §3 failing (duplicate (i,j), a negative index, a
// kind=pair record with an empty lw) is a programming error in the core
// itself, not a property of the input. Analyze aborts and returns this
// error rather than attempting to recover or retry — spec.md §7 is
// explicit that determinism forbids retries inside the core.
type InternalInvariantError struct {
	Invariant string
	Detail    string
}

// Wrap returns a new InternalInvariantError with additional context
// prepended to Detail.
func (e InternalInvariantError) Wrap(format string, a ...any) error {
	return InternalInvariantError{Invariant: e.Invariant, Detail: fmt.Sprintf("%s: %s", fmt.Sprintf(format, a...), e.Detail)}
}

// Error implements error.
func (e InternalInvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated (%s): %s", e.Invariant, e.Detail)
}
