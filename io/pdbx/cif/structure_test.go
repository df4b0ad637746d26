package cif

import "testing"

func col(values ...any) []any { return values }

func buildTestBlock() DataBlock {
	b := NewDataBlock("TEST")
	b.DataItems["_atom_site.auth_asym_id"] = col("A", "A", "A")
	b.DataItems["_atom_site.auth_seq_id"] = col("1", "1", "2")
	b.DataItems["_atom_site.label_atom_id"] = col("N1", "C2", "N1")
	b.DataItems["_atom_site.type_symbol"] = col("N", "C", "N")
	b.DataItems["_atom_site.label_comp_id"] = col("G", "G", "C")
	b.DataItems["_atom_site.pdbx_PDB_ins_code"] = col("?", "?", "?")
	b.DataItems["_atom_site.Cartn_x"] = col("1.0", "2.0", "3.0")
	b.DataItems["_atom_site.Cartn_y"] = col("1.0", "2.0", "3.0")
	b.DataItems["_atom_site.Cartn_z"] = col("1.0", "2.0", "3.0")
	b.DataItems["_atom_site.occupancy"] = col("1.0", "1.0", "1.0")
	b.DataItems["_atom_site.B_iso_or_equiv"] = col("20.0", "20.0", "20.0")
	b.DataItems["_atom_site.pdbx_PDB_model_num"] = col("1", "1", "1")
	return b
}

func TestToStructureGroupsAtomsIntoResidues(t *testing.T) {
	c := NewCIF()
	c.DataBlocks["TEST"] = buildTestBlock()

	s, err := ToStructure(c, AuthIDs, 1)
	if err != nil {
		t.Fatalf("ToStructure: %v", err)
	}
	if len(s.Residues) != 2 {
		t.Fatalf("expected 2 residues (resseq 1 and 2), got %d", len(s.Residues))
	}
	if len(s.Atoms) != 3 {
		t.Fatalf("expected 3 atoms total, got %d", len(s.Atoms))
	}
	if s.Residues[0].ResName != "G" || s.Residues[1].ResName != "C" {
		t.Errorf("residue resnames = %q, %q, want G, C", s.Residues[0].ResName, s.Residues[1].ResName)
	}
	if got := s.AtomsOf(s.Residues[0]); len(got) != 2 {
		t.Errorf("first residue should own 2 atoms (N1, C2), got %d", len(got))
	}
}

func TestToStructureFiltersByModel(t *testing.T) {
	b := buildTestBlock()
	b.DataItems["_atom_site.pdbx_PDB_model_num"] = col("1", "2", "1")
	c := NewCIF()
	c.DataBlocks["TEST"] = b

	s, err := ToStructure(c, AuthIDs, 1)
	if err != nil {
		t.Fatalf("ToStructure: %v", err)
	}
	if len(s.Atoms) != 2 {
		t.Fatalf("expected only model-1 atoms (2), got %d", len(s.Atoms))
	}
}

func TestToStructureLabelScheme(t *testing.T) {
	b := buildTestBlock()
	b.DataItems["_atom_site.label_asym_id"] = col("X", "X", "X")
	b.DataItems["_atom_site.label_seq_id"] = col("1", "1", "1")
	c := NewCIF()
	c.DataBlocks["TEST"] = b

	s, err := ToStructure(c, LabelIDs, 1)
	if err != nil {
		t.Fatalf("ToStructure: %v", err)
	}
	if len(s.Residues) != 1 {
		t.Fatalf("label scheme groups all 3 atoms under one label_seq_id, expected 1 residue, got %d", len(s.Residues))
	}
	if s.Residues[0].ID.ChainID != "X" {
		t.Errorf("ChainID = %q, want X (label scheme)", s.Residues[0].ID.ChainID)
	}
}
