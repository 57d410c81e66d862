// SPDX-License-Identifier: MIT

// Package diag - dense complex helpers shared by the SVD and Takagi
// routines. Kept local: gonum's factorizations are real-only, and the
// few complex operations needed here (products, norms, Gram–Schmidt)
// are simple dense loops.
package diag

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// frobNorm returns the Frobenius norm of a.
func frobNorm(a *mat.CDense) float64 {
	r, c := a.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			sum += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return math.Sqrt(sum)
}

// asymmetryNorm returns ‖A − Aᵀ‖_F for square a.
func asymmetryNorm(a *mat.CDense) float64 {
	n, _ := a.Dims()
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := a.At(i, j) - a.At(j, i)
			sum += 2 * (real(d)*real(d) + imag(d)*imag(d))
		}
	}
	return math.Sqrt(sum)
}

// symmetrized returns (A + Aᵀ)/2.
func symmetrized(a *mat.CDense) *mat.CDense {
	n, _ := a.Dims()
	out := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}
	return out
}

// maxImag returns max |Im a_ij|.
func maxImag(a *mat.CDense) float64 {
	r, c := a.Dims()
	m := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := math.Abs(imag(a.At(i, j))); v > m {
				m = v
			}
		}
	}
	return m
}

// column extracts column j of a as a fresh slice.
func column(a *mat.CDense, j int) []complex128 {
	r, _ := a.Dims()
	v := make([]complex128, r)
	for i := 0; i < r; i++ {
		v[i] = a.At(i, j)
	}
	return v
}

// matVec returns a·v.
func matVec(a *mat.CDense, v []complex128) []complex128 {
	r, c := a.Dims()
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		var s complex128
		for j := 0; j < c; j++ {
			s += a.At(i, j) * v[j]
		}
		out[i] = s
	}
	return out
}

// matVecConj returns a·conj(v).
func matVecConj(a *mat.CDense, v []complex128) []complex128 {
	r, c := a.Dims()
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		var s complex128
		for j := 0; j < c; j++ {
			s += a.At(i, j) * cmplx.Conj(v[j])
		}
		out[i] = s
	}
	return out
}

// cdot returns the Hermitian inner product ⟨a, b⟩ = Σ conj(a_i)·b_i.
func cdot(a, b []complex128) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}
	return s
}

// cnorm returns the Euclidean norm of v.
func cnorm(v []complex128) float64 {
	sum := 0.0
	for _, x := range v {
		sum += real(x)*real(x) + imag(x)*imag(x)
	}
	return math.Sqrt(sum)
}

// orthonormalAppend projects v against basis and appends the
// normalized remainder when its norm exceeds keepTol. Candidates in
// this package are either fresh directions (norm ~1 after projection)
// or exact duplicates-up-to-phase (norm ~0), so keepTol separates the
// two regimes robustly.
func orthonormalAppend(basis [][]complex128, v []complex128, keepTol float64) ([][]complex128, bool) {
	w := make([]complex128, len(v))
	copy(w, v)
	// Two projection passes: classical Gram-Schmidt reorthogonalized
	// once, which restores orthogonality lost to cancellation.
	for pass := 0; pass < 2; pass++ {
		for _, b := range basis {
			coef := cdot(b, w)
			for i := range w {
				w[i] -= coef * b[i]
			}
		}
	}
	nrm := cnorm(w)
	if nrm <= keepTol {
		return basis, false
	}
	inv := complex(1.0/nrm, 0)
	for i := range w {
		w[i] *= inv
	}
	return append(basis, w), true
}

// completeBasis extends basis (k orthonormal m-vectors) to a full
// orthonormal set of m vectors using canonical candidates.
func completeBasis(basis [][]complex128, m int) [][]complex128 {
	for e := 0; e < m && len(basis) < m; e++ {
		cand := make([]complex128, m)
		cand[e] = 1
		basis, _ = orthonormalAppend(basis, cand, 0.5)
	}
	// Canonical vectors can all fail only if basis already spans; the
	// loop above always terminates with len(basis) == m for k ≤ m.
	return basis
}

// fromColumns packs column vectors into an r×c CDense.
func fromColumns(cols [][]complex128, r int) *mat.CDense {
	c := len(cols)
	out := mat.NewCDense(r, c, nil)
	for j, col := range cols {
		for i := 0; i < r; i++ {
			out.Set(i, j, col[i])
		}
	}
	return out
}
