/*
Package sniff implements the format-sniffing boundary spec.md §1 treats
as an upstream concern: given a structure file's bytes (and, optionally,
its name), decide whether it is PDB, mmCIF, or the legacy bracketed
`.out` text record, and transparently unwrap gzip compression.
*/
package sniff

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/crypto/blake2b"
)

// Format is the set of structure file formats this module reads.
type Format int

const (
	Unknown Format = iota
	PDB
	CIF
	LegacyOut
)

func (f Format) String() string {
	switch f {
	case PDB:
		return "pdb"
	case CIF:
		return "cif"
	case LegacyOut:
		return "out"
	default:
		return "unknown"
	}
}

// gzipMagic is the two-byte gzip header (RFC 1952 §2.3.1).
var gzipMagic = []byte{0x1f, 0x8b}

// Decompress transparently unwraps a gzip-compressed stream, returning
// r unchanged if it isn't gzipped. PDB/mmCIF files are routinely
// distributed as ".gz" on disk (wwPDB's own mirrors), so every caller
// of Detect should read through this first. Decompression uses
// klauspost/compress's gzip implementation rather than the standard
// library's, matching the rest of this codebase's preference for the
// pack's faster drop-in codecs.
func Decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniff: peeking for gzip magic: %w", err)
	}
	if len(peek) == 2 && bytes.Equal(peek, gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("sniff: opening gzip stream: %w", err)
		}
		return gz, nil
	}
	return br, nil
}

// Detect sniffs the format of a structure file from its first
// non-blank bytes: mmCIF files begin with a "data_" block header or
// contain a "loop_" tag; PDB files' first meaningful record starts with
// "ATOM"/"HETATM"/"HEADER"; the legacy text record opens with
// "BEGIN_base-pair". Falls back to the filename extension, if given,
// when content sniffing is inconclusive (e.g. an empty file).
func Detect(content []byte, filename string) Format {
	head := firstNonBlankLines(content, 8)

	for _, line := range head {
		switch {
		case strings.HasPrefix(line, "data_"), strings.HasPrefix(line, "loop_"):
			return CIF
		case strings.HasPrefix(line, "BEGIN_base-pair"):
			return LegacyOut
		case strings.HasPrefix(line, "ATOM"), strings.HasPrefix(line, "HETATM"), strings.HasPrefix(line, "HEADER"), strings.HasPrefix(line, "MODEL"):
			return PDB
		}
	}

	return byExtension(filename)
}

func byExtension(filename string) Format {
	name := strings.ToLower(strings.TrimSuffix(filename, ".gz"))
	switch {
	case strings.HasSuffix(name, ".cif"), strings.HasSuffix(name, ".mmcif"):
		return CIF
	case strings.HasSuffix(name, ".pdb"), strings.HasSuffix(name, ".ent"):
		return PDB
	case strings.HasSuffix(name, ".out"):
		return LegacyOut
	default:
		return Unknown
	}
}

func firstNonBlankLines(content []byte, max int) []string {
	var lines []string
	for _, raw := range bytes.Split(content, []byte("\n")) {
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= max {
			break
		}
	}
	return lines
}

// Fingerprint returns a cheap content hash of raw structure bytes,
// usable as a cache key for identical input; the batch command does not
// cache on it.
func Fingerprint(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return fmt.Sprintf("%x", sum)
}
