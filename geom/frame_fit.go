package geom

import "math"

// mat3 is a 3x3 matrix in row-major order. Kept unexported: the only
// consumer is the least-squares fit below, and nothing else in this
// module needs general linear-algebra plumbing.
type mat3 [3][3]float64

func (m mat3) mulVec(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m mat3) transpose() mat3 {
	var t mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

func (m mat3) mul(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * o[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

func (m mat3) det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Fit is the result of superposing a set of moving points onto a set of
// reference points: a rotation and a translation such that, approximately,
// Rotation.mulVec(moving[i]) + Translation ≈ reference[i].
type Fit struct {
	Rotation    mat3
	Translation Vector3
	RMSD        float64
}

// RotateVector applies only the rotational part of the fit to v, with no
// translation — used to carry template axis directions (normal,
// long-axis) into the structure's coordinate frame.
func (f Fit) RotateVector(v Vector3) Vector3 {
	return f.Rotation.mulVec(v)
}

// Apply transforms a point by the fit (rotate then translate).
func (f Fit) Apply(v Vector3) Vector3 {
	return f.Rotation.mulVec(v).Add(f.Translation)
}

// Origin returns the fitted position of the template's own origin,
// i.e. Apply(Vector3{}) — the per-residue Frame origin of spec.md §4.2.
func (f Fit) Origin() Vector3 {
	return f.Translation
}

// KabschFit computes the least-squares rigid-body superposition of
// moving onto reference using the Kabsch algorithm. Both slices must be
// the same length and have at least 3 points; returns false if fewer
// than 3 points are given, mirroring the frame-fit failure mode in
// spec.md §4.2 ("fewer than 3 template atoms... frame-invalid").
func KabschFit(moving, reference []Vector3) (Fit, bool) {
	if len(moving) != len(reference) || len(moving) < 3 {
		return Fit{}, false
	}

	movingCentroid := Centroid(moving)
	refCentroid := Centroid(reference)

	// Cross-covariance matrix H = Σ (moving_i - movingCentroid) (reference_i - refCentroid)^T
	var h mat3
	for i := range moving {
		mv := moving[i].Sub(movingCentroid)
		rv := reference[i].Sub(refCentroid)
		h[0][0] += mv.X * rv.X
		h[0][1] += mv.X * rv.Y
		h[0][2] += mv.X * rv.Z
		h[1][0] += mv.Y * rv.X
		h[1][1] += mv.Y * rv.Y
		h[1][2] += mv.Y * rv.Z
		h[2][0] += mv.Z * rv.X
		h[2][1] += mv.Z * rv.Y
		h[2][2] += mv.Z * rv.Z
	}

	u, s, vt := svd3(h)

	d := 1.0
	if (u.mul(vt)).det() < 0 {
		d = -1.0
	}
	correction := mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, d}}
	rotation := vt.transpose().mul(correction).mul(u.transpose())

	translation := refCentroid.Sub(rotation.mulVec(movingCentroid))

	var sqErr float64
	for i := range moving {
		diff := rotation.mulVec(moving[i]).Add(translation).Sub(reference[i])
		sqErr += diff.Dot(diff)
	}
	rmsd := math.Sqrt(sqErr / float64(len(moving)))

	_ = s // the fit itself does not use the singular values
	return Fit{Rotation: rotation, Translation: translation, RMSD: rmsd}, true
}

// svd3 computes a singular value decomposition h = u * diag(s) * vt for a
// 3x3 matrix using the symmetric-eigendecomposition route: eigendecompose
// h^T h (via cyclic Jacobi rotations) to get V and the singular values,
// then derive U = h V S^-1 column-wise.
func svd3(h mat3) (u mat3, s [3]float64, vt mat3) {
	ata := h.transpose().mul(h)
	eigvecs, eigvals := jacobiEigenSymmetric3(ata)

	for i := 0; i < 3; i++ {
		if eigvals[i] < 0 {
			eigvals[i] = 0
		}
		s[i] = math.Sqrt(eigvals[i])
	}

	// V columns are eigvecs columns; vt is V^T.
	var v mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i][j] = eigvecs[i][j]
		}
	}
	vt = v.transpose()

	for col := 0; col < 3; col++ {
		vCol := Vector3{v[0][col], v[1][col], v[2][col]}
		hv := h.mulVec(vCol)
		if s[col] > 1e-12 {
			hv = hv.Scale(1 / s[col])
		}
		u[0][col] = hv.X
		u[1][col] = hv.Y
		u[2][col] = hv.Z
	}

	// A planar point set (every ring template is planar) leaves one
	// singular value at zero and its U column empty; complete that column
	// as the cross product of the other two, signed so det(U·V^T) = +1.
	for col := 0; col < 3; col++ {
		if s[col] > 1e-12 {
			continue
		}
		a, b := (col+1)%3, (col+2)%3
		w := Vector3{u[0][a], u[1][a], u[2][a]}.Cross(Vector3{u[0][b], u[1][b], u[2][b]}).Normalize()
		u[0][col], u[1][col], u[2][col] = w.X, w.Y, w.Z
		if u.mul(vt).det() < 0 {
			u[0][col], u[1][col], u[2][col] = -w.X, -w.Y, -w.Z
		}
		break
	}
	return u, s, vt
}

// jacobiEigenSymmetric3 diagonalizes a symmetric 3x3 matrix via the
// classic cyclic Jacobi rotation method, returning eigenvectors as the
// columns of the returned matrix and the corresponding eigenvalues.
func jacobiEigenSymmetric3(a mat3) (mat3, [3]float64) {
	v := mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	for iter := 0; iter < 50; iter++ {
		// Find largest off-diagonal element.
		p, q := 0, 1
		maxVal := math.Abs(a[0][1])
		if math.Abs(a[0][2]) > maxVal {
			p, q, maxVal = 0, 2, math.Abs(a[0][2])
		}
		if math.Abs(a[1][2]) > maxVal {
			p, q, maxVal = 1, 2, math.Abs(a[1][2])
		}
		if maxVal < 1e-14 {
			break
		}

		theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
		t := sign(theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta == 0 {
			t = 1
		}
		c := 1 / math.Sqrt(t*t+1)
		sn := t * c

		app, aqq, apq := a[p][p], a[q][q], a[p][q]
		a[p][p] = app - t*apq
		a[q][q] = aqq + t*apq
		a[p][q], a[q][p] = 0, 0

		for i := 0; i < 3; i++ {
			if i != p && i != q {
				aip, aiq := a[i][p], a[i][q]
				a[i][p] = c*aip - sn*aiq
				a[p][i] = a[i][p]
				a[i][q] = sn*aip + c*aiq
				a[q][i] = a[i][q]
			}
		}

		for i := 0; i < 3; i++ {
			vip, viq := v[i][p], v[i][q]
			v[i][p] = c*vip - sn*viq
			v[i][q] = sn*vip + c*viq
		}
	}

	eigvals := [3]float64{a[0][0], a[1][1], a[2][2]}
	return v, eigvals
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
