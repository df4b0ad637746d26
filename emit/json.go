package emit

import (
	"encoding/json"
	"sort"

	"github.com/TimothyStiles/basepair/multiplet"
	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/reduce"
	"github.com/TimothyStiles/basepair/stats"
)

// SchemaVersion is the current structured-record schema version
// (spec.md §6.2).
const SchemaVersion = 1

// Source describes where the analysed structure came from (spec.md
// §6.2's "source" object).
type Source struct {
	Path      string `json:"path"`
	Format    string `json:"format"` // "pdb" | "cif" | "out"
	IDScheme  string `json:"id_scheme,omitempty"`
	Model     int    `json:"model"`
}

// Options mirrors spec.md §6.3's recognised options, plus a passthrough
// bag for anything the core doesn't recognise but must still preserve
// verbatim in the JSON.
type Options struct {
	ChainFilter      []string        `json:"chain_filter,omitempty"`
	CIFIDs           string          `json:"cif_ids,omitempty"`
	NMRModel         *int            `json:"nmr_model,omitempty"`
	ChainIDTruncate  bool            `json:"chain_id_truncate,omitempty"`
	ResolutionMax    *float64        `json:"resolution_max,omitempty"`
	Raw              json.RawMessage `json:"-"`
}

// pairRecordJSON is the wire shape of one PairRecord (spec.md §3).
type pairRecordJSON struct {
	I           int    `json:"i"`
	J           int    `json:"j"`
	ChainI      string `json:"chain_i"`
	ResseqI     int    `json:"resseq_i"`
	ICodeI      string `json:"icode_i,omitempty"`
	BaseI       string `json:"base_i"`
	ChainJ      string `json:"chain_j"`
	ResseqJ     int    `json:"resseq_j"`
	ICodeJ      string `json:"icode_j,omitempty"`
	BaseJ       string `json:"base_j"`
	Kind        string `json:"kind"`
	LW          string `json:"lw,omitempty"`
	Orientation string `json:"orientation,omitempty"`
	SynI        bool   `json:"syn_i"`
	SynJ        bool   `json:"syn_j"`
	Saenger     string `json:"saenger,omitempty"`
	Note        string `json:"note,omitempty"`
}

func toPairRecordJSON(r reduce.PairRecord) pairRecordJSON {
	out := pairRecordJSON{
		I: int(r.I), J: int(r.J),
		ChainI:  r.ResI.Residue.ID.ChainID,
		ResseqI: r.ResI.Residue.ID.ResSeq,
		BaseI:   string(r.ResI.Letter.Letter()),
		ChainJ:  r.ResJ.Residue.ID.ChainID,
		ResseqJ: r.ResJ.Residue.ID.ResSeq,
		BaseJ:   string(r.ResJ.Letter.Letter()),
		Kind:    kindString(r.Kind),
		SynI:    r.SynI,
		SynJ:    r.SynJ,
		Note:    r.Note,
	}
	if r.ResI.Residue.ID.ICode != 0 {
		out.ICodeI = string(r.ResI.Residue.ID.ICode)
	}
	if r.ResJ.Residue.ID.ICode != 0 {
		out.ICodeJ = string(r.ResJ.Residue.ID.ICode)
	}
	if r.Kind == pairing.KindPair {
		out.LW = r.LW()
		out.Orientation = r.Orientation.String()
		out.Saenger = r.Saenger
	}
	return out
}

func kindString(k pairing.Kind) string {
	switch k {
	case pairing.KindPair:
		return "pair"
	case pairing.KindStacked:
		return "stacked"
	default:
		return "unknown"
	}
}

// multipletJSON is the wire shape of one Multiplet (spec.md §3).
type multipletJSON struct {
	Indices []int  `json:"indices"`
	Text    string `json:"text"`
}

func toMultipletJSON(m multiplet.Multiplet) multipletJSON {
	indices := make([]int, len(m.Indices))
	for i, idx := range m.Indices {
		indices[i] = int(idx)
	}
	return multipletJSON{Indices: indices, Text: m.Text}
}

// statsJSON is the wire shape of Stats (spec.md §3), with
// pair_type_counts keys sorted for deterministic serialization.
type statsJSON struct {
	TotalPairs     int            `json:"total_pairs"`
	TotalBases     int            `json:"total_bases"`
	PairTypeCounts map[string]int `json:"pair_type_counts"`
}

// coreJSON is spec.md §6.2's "core" object.
type coreJSON struct {
	BasePairs  []pairRecordJSON `json:"base_pairs"`
	Multiplets []multipletJSON  `json:"multiplets"`
	Stats      statsJSON        `json:"stats"`
}

// Document is the full spec.md §6.2 structured record.
type Document struct {
	SchemaVersion int             `json:"schema_version"`
	Source        Source          `json:"source"`
	Options       json.RawMessage `json:"options"`
	Core          coreJSON        `json:"core"`
}

// BuildDocument assembles the schema v1 structured record from the
// finalized analysis outputs. Records and multiplets are expected
// already canonically sorted by the reduce/multiplet packages.
func BuildDocument(source Source, options Options, records []reduce.PairRecord, multiplets []multiplet.Multiplet, s stats.Stats) (Document, error) {
	basePairs := make([]pairRecordJSON, len(records))
	for i, r := range records {
		basePairs[i] = toPairRecordJSON(r)
	}

	multipletsJSON := make([]multipletJSON, len(multiplets))
	for i, m := range multiplets {
		multipletsJSON[i] = toMultipletJSON(m)
	}
	sort.Slice(multipletsJSON, func(a, b int) bool {
		return firstIndexLess(multipletsJSON[a].Indices, multipletsJSON[b].Indices)
	})

	optionsRaw, err := marshalOptions(options)
	if err != nil {
		return Document{}, err
	}

	return Document{
		SchemaVersion: SchemaVersion,
		Source:        source,
		Options:       optionsRaw,
		Core: coreJSON{
			BasePairs:  basePairs,
			Multiplets: multipletsJSON,
			Stats: statsJSON{
				TotalPairs:     s.TotalPairs,
				TotalBases:     s.TotalBases,
				PairTypeCounts: s.PairTypeCounts,
			},
		},
	}, nil
}

func firstIndexLess(a, b []int) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) < len(b)
	}
	return a[0] < b[0]
}

// marshalOptions merges the recognised fields with any unrecognised raw
// passthrough (spec.md §6.3: "unrecognised options ... preserved
// verbatim in the JSON").
func marshalOptions(o Options) (json.RawMessage, error) {
	recognised, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	if len(o.Raw) == 0 {
		return recognised, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(recognised, &merged); err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(o.Raw, &raw); err != nil {
		return nil, err
	}
	for k, v := range raw {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// JSON renders doc with sorted keys and fixed indentation, per spec.md
// §6.2's "deterministic: keys sorted lexicographically." encoding/json
// marshals struct fields in declaration order but map keys sorted, so
// doc is marshalled once, decoded into generic maps, and marshalled
// again; MarshalIndent gives stable, readable formatting for golden
// files.
func (d Document) JSON() ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.MarshalIndent(generic, "", "  ")
}
