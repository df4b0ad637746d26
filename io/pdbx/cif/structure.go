package cif

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// IDScheme selects which of mmCIF's two parallel identifier schemes
// (spec.md §6.3 cif_ids) names the chain/residue-sequence columns in
// the built Structure.
type IDScheme int

const (
	AuthIDs  IDScheme = iota // auth_asym_id / auth_seq_id (depositor-facing)
	LabelIDs                 // label_asym_id / label_seq_id (PDBx canonical)
)

// ToStructure builds a residue.Structure from the parsed atom_site loop
// of one data block of c (DataBlocks is a map: with a single block that
// block is used; with several, which one is used is not defined),
// selecting one model (nmr_model option,
// default 1) and one of the two identifier schemes. Residues are
// emitted in file order, one per contiguous run of identical
// (chain, resseq, icode, model) under the chosen scheme, matching
// spec.md §3's Residue identity invariant.
func ToStructure(c CIF, scheme IDScheme, model int) (*residue.Structure, error) {
	var block DataBlock
	for _, b := range c.DataBlocks {
		block = b
		break
	}
	if block.Name == "" {
		return nil, fmt.Errorf("cif: no data block present")
	}

	cols, rowCount, err := buildAtomSiteColumns(block, scheme)
	if err != nil {
		return nil, err
	}

	s := &residue.Structure{}
	var currentID residue.ResidueID
	haveCurrent := false

	for row := 0; row < rowCount; row++ {
		rowModel := cols.modelAt(row)
		if rowModel != model {
			continue
		}

		id := residue.ResidueID{
			ChainID: cols.chainAt(row),
			ResSeq:  cols.resSeqAt(row),
			ICode:   cols.icodeAt(row),
			Model:   rowModel,
		}

		atom := residue.Atom{
			Name:      cols.atomNameAt(row),
			Element:   cols.elementAt(row),
			Position:  geom.Vector3{X: cols.xAt(row), Y: cols.yAt(row), Z: cols.zAt(row)},
			Occupancy: cols.occupancyAt(row),
			BFactor:   cols.bfactorAt(row),
		}

		if !haveCurrent || id != currentID {
			s.Residues = append(s.Residues, residue.Residue{
				ID:        id,
				ResName:   cols.compAt(row),
				AtomStart: len(s.Atoms),
				AtomEnd:   len(s.Atoms),
			})
			currentID = id
			haveCurrent = true
		}
		s.Atoms = append(s.Atoms, atom)
		s.Residues[len(s.Residues)-1].AtomEnd = len(s.Atoms)
	}

	return s, nil
}

// atomSiteColumns holds the _atom_site rows this adapter reads, one
// tag-to-value map per row.
type atomSiteColumns struct {
	rows []map[string]any
}

func (c atomSiteColumns) get(row int, tag string) string {
	v, ok := c.rows[row][tag]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func (c atomSiteColumns) chainAt(row int) string   { return c.get(row, "chain") }
func (c atomSiteColumns) atomNameAt(row int) string { return c.get(row, "atom_name") }
func (c atomSiteColumns) elementAt(row int) string  { return c.get(row, "element") }
func (c atomSiteColumns) compAt(row int) string     { return c.get(row, "comp") }

func (c atomSiteColumns) resSeqAt(row int) int {
	n, _ := strconv.Atoi(strings.TrimSpace(c.get(row, "seq")))
	return n
}

func (c atomSiteColumns) modelAt(row int) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.get(row, "model")))
	if err != nil {
		return 1
	}
	return n
}

func (c atomSiteColumns) icodeAt(row int) byte {
	v := strings.TrimSpace(c.get(row, "icode"))
	if v == "" || v == string(Inapplicable) || v == string(Unknown) {
		return 0
	}
	return v[0]
}

func (c atomSiteColumns) xAt(row int) float64 { return c.floatAt(row, "Cartn_x") }
func (c atomSiteColumns) yAt(row int) float64 { return c.floatAt(row, "Cartn_y") }
func (c atomSiteColumns) zAt(row int) float64 { return c.floatAt(row, "Cartn_z") }
func (c atomSiteColumns) occupancyAt(row int) float64 { return c.floatAt(row, "occupancy") }
func (c atomSiteColumns) bfactorAt(row int) float64   { return c.floatAt(row, "bfactor") }

func (c atomSiteColumns) floatAt(row int, tag string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(c.get(row, tag)), 64)
	return f
}

// buildAtomSiteColumns maps the scheme-selected chain/resseq tags (plus the
// scheme-independent ones) into atomSiteColumns's normalized row view.
func buildAtomSiteColumns(block DataBlock, scheme IDScheme) (atomSiteColumns, int, error) {
	chainTag, seqTag := "_atom_site.auth_asym_id", "_atom_site.auth_seq_id"
	if scheme == LabelIDs {
		chainTag, seqTag = "_atom_site.label_asym_id", "_atom_site.label_seq_id"
	}

	tagMap := map[string]string{
		"chain":      chainTag,
		"seq":        seqTag,
		"atom_name":  "_atom_site.label_atom_id",
		"element":    "_atom_site.type_symbol",
		"comp":       "_atom_site.label_comp_id",
		"icode":      "_atom_site.pdbx_PDB_ins_code",
		"Cartn_x":    "_atom_site.Cartn_x",
		"Cartn_y":    "_atom_site.Cartn_y",
		"Cartn_z":    "_atom_site.Cartn_z",
		"occupancy":  "_atom_site.occupancy",
		"bfactor":    "_atom_site.B_iso_or_equiv",
		"model":      "_atom_site.pdbx_PDB_model_num",
	}

	columns := map[string][]any{}
	rowCount := -1
	for key, tag := range tagMap {
		raw, ok := block.DataItems[tag]
		if !ok {
			continue
		}
		col, ok := raw.([]any)
		if !ok {
			return atomSiteColumns{}, 0, fmt.Errorf("cif: %s is not a loop column", tag)
		}
		columns[key] = col
		if rowCount == -1 {
			rowCount = len(col)
		} else if len(col) != rowCount {
			return atomSiteColumns{}, 0, fmt.Errorf("cif: _atom_site loop columns have mismatched lengths")
		}
	}
	if rowCount == -1 {
		return atomSiteColumns{}, 0, fmt.Errorf("cif: no _atom_site loop present")
	}

	rows := make([]map[string]any, rowCount)
	for i := range rows {
		rows[i] = make(map[string]any, len(columns))
		for key, col := range columns {
			rows[i][key] = col[i]
		}
	}
	return atomSiteColumns{rows: rows}, rowCount, nil
}
