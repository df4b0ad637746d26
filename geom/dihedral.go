package geom

import "math"

// DihedralDegrees returns the dihedral (torsion) angle a-b-c-d in
// degrees, in (-180, 180]. Used for the glycosidic torsion χ
// (O4'-C1'-N9/N1-C4/C2) that feeds syn/anti classification.
//
// Standard construction: the angle between the planes (a,b,c) and
// (b,c,d), signed by the handedness of the b→c axis.
func DihedralDegrees(a, b, c, d Vector3) float64 {
	b1 := b.Sub(a)
	b2 := c.Sub(b)
	b3 := d.Sub(c)

	n1 := b1.Cross(b2)
	n2 := b2.Cross(b3)

	m1 := n1.Cross(b2.Normalize())

	x := n1.Dot(n2)
	y := m1.Dot(n2)

	return math.Atan2(y, x) * 180 / math.Pi
}

// InSynRange reports whether a glycosidic torsion in degrees falls in
// the syn range (-90, 90), per spec.md §4.5.4.
func InSynRange(chiDegrees float64) bool {
	return chiDegrees > -90 && chiDegrees < 90
}
