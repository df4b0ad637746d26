/*
Package emit implements C11: rendering the finalized record set into the
two canonical output surfaces spec.md §6 defines — the line-based legacy
text record (§6.1) and the JSON structured record (§6.2) — plus the
regression-comparison helpers §6.1 calls for (set-equivalent and
byte-exact diff modes).
*/
package emit

import (
	"fmt"
	"strings"

	"github.com/TimothyStiles/basepair/multiplet"
	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/reduce"
	"github.com/TimothyStiles/basepair/residue"
	"github.com/TimothyStiles/basepair/stats"
)

// Text renders the three bracketed sections of spec.md §6.1, in order:
// base-pair records, multiplets, and the statistics footer.
func Text(records []reduce.PairRecord, multiplets []multiplet.Multiplet, s stats.Stats) string {
	var b strings.Builder

	b.WriteString("BEGIN_base-pair\n")
	for _, r := range records {
		b.WriteString(recordLine(r))
		b.WriteString("\n")
	}
	b.WriteString("END_base-pair\n")

	b.WriteString("BEGIN_multiplets\n")
	for _, m := range multiplets {
		b.WriteString(m.Text)
		b.WriteString("\n")
	}
	b.WriteString("END_multiplets\n")

	fmt.Fprintf(&b, "The total base pairs = %d (from %d bases)\n", s.TotalPairs, s.TotalBases)
	for _, key := range s.Keys() {
		fmt.Fprintf(&b, "%s %d\n", key, s.PairTypeCounts[key])
	}

	return b.String()
}

// recordLine renders one record-line per spec.md §6.1's grammar:
//
//	<i>_<j>, <chain_i>:<resseq_i>_<icode_i> <base_i>-<base_j> <resseq_j>_<icode_j>:<chain_j>  <edge_i>/<edge_j> <cis|tran>   <syn_i><syn_j>   <saenger> <note>
//
// When kind=stacked, the edge/orientation field is replaced with
// "stacked" and Saenger is omitted; a kind=unknown record shows
// "unknown" there instead.
func recordLine(r reduce.PairRecord) string {
	idI := residueID(r.ResI)
	j := r.ResJ.Residue.ID
	idJ := fmt.Sprintf("%d:%s", j.ResSeq, j.ChainID)
	if j.ICode != 0 {
		idJ = fmt.Sprintf("%d_%c:%s", j.ResSeq, j.ICode, j.ChainID)
	}
	letterI := string(r.ResI.Letter.Letter())
	letterJ := string(r.ResJ.Letter.Letter())

	lwField := "stacked"
	if r.Kind == pairing.KindUnknown {
		lwField = "unknown"
	}
	synField := ""
	saengerField := ""
	if r.Kind == pairing.KindPair {
		lwField = fmt.Sprintf("%s %s", r.LW(), r.Orientation.String())
		synField = fmt.Sprintf("%s%s", synChar(r.SynI), synChar(r.SynJ))
		saengerField = r.Saenger
	}

	return fmt.Sprintf("%d_%d, %s %s-%s %s  %s   %s   %s %s",
		r.I, r.J, idI, letterI, letterJ, idJ, lwField, synField, saengerField, r.Note)
}

// residueID renders the i side "<chain>:<resseq>_<icode>" per spec.md
// §6.1, where icode only appears (as its underscore-prefixed form) when
// present.
func residueID(cr residue.ClassifiedResidue) string {
	id := cr.Residue.ID
	if id.ICode == 0 {
		return fmt.Sprintf("%s:%d", id.ChainID, id.ResSeq)
	}
	return fmt.Sprintf("%s:%d_%c", id.ChainID, id.ResSeq, id.ICode)
}

func synChar(syn bool) string {
	if syn {
		return "syn"
	}
	return "anti"
}
