package geom

// Plane is an oriented plane given by a point it passes through and a
// unit normal.
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// SignedDistance returns the signed perpendicular distance from p to pt:
// positive on the side the normal points towards.
func (p Plane) SignedDistance(pt Vector3) float64 {
	return pt.Sub(p.Point).Dot(p.Normal)
}

// Project returns pt projected onto the plane.
func (p Plane) Project(pt Vector3) Vector3 {
	d := p.SignedDistance(pt)
	return pt.Sub(p.Normal.Scale(d))
}

// InPlaneOffset returns the lateral (in-plane) distance from p.Point to
// the projection of pt onto the plane. Used by the candidate filter (C4)
// to distinguish coplanar pairing geometry from offset stacking geometry.
func (p Plane) InPlaneOffset(pt Vector3) float64 {
	projected := p.Project(pt)
	return projected.Distance(p.Point)
}

// BestFitPlaneNormal returns the unit normal of the least-squares plane
// through pts: the eigenvector of the points' covariance matrix with the
// smallest eigenvalue. Used as the atom-centroid fallback for residues
// whose frame fit failed (spec.md §4.2, "stacks still attempted via
// origin/normal from an atom centroid fallback"). Returns the zero
// vector for fewer than 3 points.
func BestFitPlaneNormal(pts []Vector3) Vector3 {
	if len(pts) < 3 {
		return Vector3{}
	}
	centroid := Centroid(pts)

	var cov mat3
	for _, p := range pts {
		d := p.Sub(centroid)
		cov[0][0] += d.X * d.X
		cov[0][1] += d.X * d.Y
		cov[0][2] += d.X * d.Z
		cov[1][0] += d.Y * d.X
		cov[1][1] += d.Y * d.Y
		cov[1][2] += d.Y * d.Z
		cov[2][0] += d.Z * d.X
		cov[2][1] += d.Z * d.Y
		cov[2][2] += d.Z * d.Z
	}

	eigvecs, eigvals := jacobiEigenSymmetric3(cov)

	minIdx := 0
	for i := 1; i < 3; i++ {
		if eigvals[i] < eigvals[minIdx] {
			minIdx = i
		}
	}
	return Vector3{eigvecs[0][minIdx], eigvecs[1][minIdx], eigvecs[2][minIdx]}.Normalize()
}
