/*
Package basepair is the base-pair detection and classification core of
an RNA/DNA tertiary-structure annotator. Given a parsed macromolecular
structure (chain/residue/atom records with Cartesian coordinates), it
identifies nucleic-acid residues, enumerates candidate residue pairs,
determines whether each forms a hydrogen-bonded base pair or a
base-stacking interaction, classifies confirmed pairs in the
Leontis-Westhof edge/edge/orientation scheme with a Saenger
correspondence when applicable, derives higher-order multiplets from the
pair set, and aggregates statistics.

The package mirrors the layout of this module's sibling packages: each
pipeline stage lives in its own package (geom, residue, frame, pairing,
reduce, multiplet, stats, emit), and this root package is the thin
orchestration layer that wires them together into one Analyze call,
the way this codebase's other entry points (cmd/basepair) sit on top of
focused library packages rather than reimplementing them.

Structure file parsing (io/pdb, io/pdbx/cif), format sniffing (io/sniff)
and rendering are upstream/downstream collaborators; Analyze accepts an
already-built *residue.Structure and never touches a file itself.
*/
package basepair
