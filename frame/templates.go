package frame

import (
	"math"

	"github.com/TimothyStiles/basepair/geom"
)

// ringTemplate is the idealized, planar, origin-centered geometry for one
// base letter's ring atoms, expressed in its own canonical frame (ring
// plane = XY, normal = +Z). Fitting observed coordinates onto this
// template (via geom.KabschFit) yields the per-residue Frame of spec.md
// §4.2.
//
// The exact idealized bond lengths/angles used here are not pinned by
// spec.md (an implementation-defined detail of this file);
// what the cross-implementation contract fixes is which atoms are used
// and in what priority (templates.go's ordering mirrors
// residue/templates.go's), not their literal coordinates.
type ringTemplate struct {
	atoms     map[string]geom.Vector3
	order     []string // atoms in ring connectivity order; Build fits whichever of them are present
	longAxis  geom.Vector3
}

const pyrimidineBond = 1.39 // Å, idealized aromatic C-N/C-C ring bond

func hexagonVertices(r float64) [6]geom.Vector3 {
	var v [6]geom.Vector3
	// Angles chosen so index 0 (N1) sits at the top (+Y) and the ring
	// proceeds clockwise through C2, N3, C4, C5, C6.
	for i := 0; i < 6; i++ {
		theta := math.Pi/2 - float64(i)*math.Pi/3
		v[i] = geom.Vector3{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: 0}
	}
	return v
}

// pyrimidineTemplate returns the idealized six-membered ring shared by
// all pyrimidine-family letters (C, U, T) — same ring topology, only
// substituents differ, which don't participate in the frame fit.
func pyrimidineTemplate() ringTemplate {
	hex := hexagonVertices(pyrimidineBond)
	names := []string{"N1", "C2", "N3", "C4", "C5", "C6"}
	atoms := make(map[string]geom.Vector3, 6)
	for i, n := range names {
		atoms[n] = hex[i]
	}
	// Long axis: C4 (index 3) minus N1 (index 0) is the longest in-ring
	// span and tracks the conventional base long axis.
	longAxis := atoms["C4"].Sub(atoms["N1"]).Normalize()
	return ringTemplate{atoms: atoms, order: names, longAxis: longAxis}
}

// purineTemplate returns the idealized fused six/five-membered ring
// shared by all purine-family letters (A, G, I), built by extending the
// pyrimidine-style six-ring (N1,C2,N3,C4,C5,C6) with a five-membered
// imidazole ring fused along the C4-C5 edge.
func purineTemplate() ringTemplate {
	hex := hexagonVertices(pyrimidineBond)
	names := []string{"N1", "C2", "N3", "C4", "C5", "C6"}
	atoms := make(map[string]geom.Vector3, 9)
	for i, n := range names {
		atoms[n] = hex[i]
	}

	c4, c5 := atoms["C4"], atoms["C5"]
	edgeMid := c4.Add(c5).Scale(0.5)
	outward := edgeMid.Normalize() // hexagon is centered at origin, so this points away from the six-ring center
	perp := geom.Vector3{X: -outward.Y, Y: outward.X, Z: 0}
	edgeLen := c4.Distance(c5)

	// Five-membered ring atoms N9 (bonded to C4), C8, N7 (bonded to C5),
	// placed as a shallow pentagon extending outward from the shared edge.
	atoms["N9"] = c4.Add(outward.Scale(1.35)).Add(perp.Scale(-0.1 * edgeLen))
	atoms["N7"] = c5.Add(outward.Scale(1.35)).Add(perp.Scale(0.1 * edgeLen))
	atoms["C8"] = edgeMid.Add(outward.Scale(2.3))

	names9 := append(append([]string{}, names...), "N7", "C8", "N9")
	longAxis := atoms["C4"].Sub(atoms["N1"]).Normalize()
	return ringTemplate{atoms: atoms, order: names9, longAxis: longAxis}
}

// letterTemplates maps each canonical (uppercase) base letter to its
// ring template. Letters sharing ring topology share a template value.
var letterTemplates = map[byte]ringTemplate{
	'A': purineTemplate(),
	'G': purineTemplate(),
	'I': purineTemplate(),
	'C': pyrimidineTemplate(),
	'U': pyrimidineTemplate(),
	'T': pyrimidineTemplate(),
}
