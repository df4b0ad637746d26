/*
Package pdb reads the legacy fixed-column PDB ATOM/HETATM format into a
residue.Structure. It is the upstream collaborator boundary spec.md §1
and §5 describe: the analysis core never parses file formats itself.
*/
package pdb

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TimothyStiles/basepair/geom"
	"github.com/TimothyStiles/basepair/residue"
)

// Read parses PDB-format ATOM/HETATM records from r into a
// residue.Structure, keeping only records for the given model (1 if
// model <= 0, matching spec.md §6.3's "default picks model 1 when
// absent"). Residues are grouped by contiguous (chain, resseq, icode)
// runs in file order, per spec.md §3's Residue identity invariant.
func Read(r io.Reader, model int) (*residue.Structure, error) {
	if model <= 0 {
		model = 1
	}

	s := &residue.Structure{}
	currentModel := 1
	var currentID residue.ResidueID
	haveCurrent := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "MODEL"):
			n, err := strconv.Atoi(strings.TrimSpace(fieldOrEmpty(line, 10, 14)))
			if err == nil {
				currentModel = n
			}
			continue
		case strings.HasPrefix(line, "ENDMDL"):
			currentModel = 1
			continue
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			// fall through to record handling below
		default:
			continue
		}

		if currentModel != model {
			continue
		}

		rec, err := parseAtomLine(line)
		if err != nil {
			return nil, fmt.Errorf("pdb: %w", err)
		}
		rec.id.Model = currentModel

		if !haveCurrent || rec.id != currentID {
			s.Residues = append(s.Residues, residue.Residue{
				ID:        rec.id,
				ResName:   rec.resName,
				AtomStart: len(s.Atoms),
				AtomEnd:   len(s.Atoms),
			})
			currentID = rec.id
			haveCurrent = true
		}
		s.Atoms = append(s.Atoms, rec.atom)
		s.Residues[len(s.Residues)-1].AtomEnd = len(s.Atoms)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pdb: reading records: %w", err)
	}

	return s, nil
}

type atomRecord struct {
	atom    residue.Atom
	id      residue.ResidueID
	resName string
}

// parseAtomLine parses one fixed-column ATOM/HETATM line per the
// standard PDB column layout: serial 7-11, name 13-16, altLoc 17,
// resName 18-20, chainID 22, resSeq 23-26, iCode 27, x 31-38, y 39-46,
// z 47-54, occupancy 55-60, tempFactor 61-66, element 77-78.
func parseAtomLine(line string) (atomRecord, error) {
	if len(line) < 54 {
		return atomRecord{}, fmt.Errorf("ATOM/HETATM line too short (%d chars): %q", len(line), line)
	}
	for len(line) < 80 {
		line += " "
	}

	name := strings.TrimSpace(line[12:16])
	altLoc := byte(0)
	if line[16] != ' ' {
		altLoc = line[16]
	}
	resName := strings.TrimSpace(line[17:20])
	chainID := strings.TrimSpace(line[21:22])

	resSeq, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return atomRecord{}, fmt.Errorf("parsing resSeq: %w", err)
	}
	iCode := byte(0)
	if line[26] != ' ' {
		iCode = line[26]
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	if err != nil {
		return atomRecord{}, fmt.Errorf("parsing x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	if err != nil {
		return atomRecord{}, fmt.Errorf("parsing y coordinate: %w", err)
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if err != nil {
		return atomRecord{}, fmt.Errorf("parsing z coordinate: %w", err)
	}

	occupancy, _ := strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	bfactor, _ := strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	element := strings.TrimSpace(line[76:78])

	return atomRecord{
		atom: residue.Atom{
			Name:      name,
			Element:   element,
			Position:  geom.Vector3{X: x, Y: y, Z: z},
			AltLoc:    altLoc,
			Occupancy: occupancy,
			BFactor:   bfactor,
		},
		id:      residue.ResidueID{ChainID: chainID, ResSeq: resSeq, ICode: iCode},
		resName: resName,
	}, nil
}

// fieldOrEmpty returns line[start:end], clamped to line's length, or ""
// if start is already past the end of line.
func fieldOrEmpty(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}
