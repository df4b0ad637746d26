/*
Package multiplet implements C9: deriving higher-order base multiplets
from the finalized pair set by connected-component analysis over the
undirected graph whose edges are the kind=pair records (spec.md §4.8).
*/
package multiplet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TimothyStiles/basepair/pairing"
	"github.com/TimothyStiles/basepair/reduce"
	"github.com/TimothyStiles/basepair/residue"
)

// Multiplet is spec.md §3's entity: a connected component of size ≥ 3 in
// the pair graph, along with its canonical text rendering.
type Multiplet struct {
	Indices []residue.BaseIndex
	Text    string
}

// edge is one pair-graph edge, retained alongside its endpoints so Text
// can render per-edge participation rather than just membership.
type edge struct {
	i, j residue.BaseIndex
	rec  reduce.PairRecord
}

// Derive implements C9: builds the undirected graph on BaseIndex from
// every kind=pair record, enumerates connected components, and emits one
// Multiplet per component of size ≥ 3. Components of size < 3 (isolated
// pairs, not multiplets) are dropped.
func Derive(records []reduce.PairRecord) []Multiplet {
	adj := map[residue.BaseIndex][]edge{}
	for _, r := range records {
		if r.Kind != pairing.KindPair {
			continue
		}
		e := edge{i: r.I, j: r.J, rec: r}
		adj[r.I] = append(adj[r.I], e)
		adj[r.J] = append(adj[r.J], e)
	}

	visited := map[residue.BaseIndex]bool{}
	var nodes []residue.BaseIndex
	for n := range adj {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(a, b int) bool { return nodes[a] < nodes[b] })

	var out []Multiplet
	for _, n := range nodes {
		if visited[n] {
			continue
		}
		members, edges := component(n, adj, visited)
		if len(members) < 3 {
			continue
		}
		sort.Slice(members, func(a, b int) bool { return members[a] < members[b] })
		out = append(out, Multiplet{Indices: members, Text: renderText(members, edges)})
	}
	return out
}

// component runs a breadth-first traversal from start, marking every
// reached node visited, and returns its member set along with the edges
// that connect them.
func component(start residue.BaseIndex, adj map[residue.BaseIndex][]edge, visited map[residue.BaseIndex]bool) ([]residue.BaseIndex, []edge) {
	queue := []residue.BaseIndex{start}
	visited[start] = true
	var members []residue.BaseIndex
	seenEdge := map[[2]residue.BaseIndex]bool{}
	var edges []edge

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		members = append(members, n)

		for _, e := range adj[n] {
			key := [2]residue.BaseIndex{e.i, e.j}
			if !seenEdge[key] {
				seenEdge[key] = true
				edges = append(edges, e)
			}
			other := e.j
			if other == n {
				other = e.i
			}
			if !visited[other] {
				visited[other] = true
				queue = append(queue, other)
			}
		}
	}
	return members, edges
}

// renderText builds the canonical "i: X-Y (edges)" lines, one per
// member in ascending index order, joined by "+" (spec.md §4.8: "the
// text form is part of the regression contract"). For member m, X-Y
// lists the other member(s) of each edge touching m together with that
// edge's LW code, e.g. "3: 3-5 (W/W)".
func renderText(members []residue.BaseIndex, edges []edge) string {
	byMember := map[residue.BaseIndex][]edge{}
	for _, e := range edges {
		byMember[e.i] = append(byMember[e.i], e)
		byMember[e.j] = append(byMember[e.j], e)
	}

	lines := make([]string, 0, len(members))
	for _, m := range members {
		memberEdges := byMember[m]
		sort.Slice(memberEdges, func(a, b int) bool {
			return other(memberEdges[a], m) < other(memberEdges[b], m)
		})
		var parts []string
		for _, e := range memberEdges {
			o := other(e, m)
			parts = append(parts, fmt.Sprintf("%d-%d (%s)", m, o, e.rec.LW()))
		}
		lines = append(lines, fmt.Sprintf("%d: %s", m, strings.Join(parts, ", ")))
	}
	return strings.Join(lines, "+")
}

func other(e edge, m residue.BaseIndex) residue.BaseIndex {
	if e.i == m {
		return e.j
	}
	return e.i
}
