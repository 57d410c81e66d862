// SPDX-License-Identifier: MIT

// Package diag - Autonne–Takagi factorization of complex symmetric
// matrices through the real symmetric embedding [[X, Y], [Y, −X]].
package diag

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Takagi factorizes a complex symmetric n×n matrix as A = U Σ Uᵀ with
// U unitary and Values the n Takagi singular values in descending
// order. The input must satisfy A = Aᵀ (ordinary transpose, no
// conjugation) within SymmetryTol relative to ‖A‖; WithSymmetrize
// projects small asymmetric noise away first. The reconstruction is
// verified against ResidualTol before returning.
func Takagi(a *mat.CDense, opts ...Option) (TakagiResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return TakagiResult{}, err
	}
	if a == nil {
		return TakagiResult{}, ErrEmptyMatrix
	}
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return TakagiResult{}, ErrEmptyMatrix
	}
	if m != n {
		return TakagiResult{}, ErrNotSquare
	}

	// Stage 1 - symmetry gate (relative), optionally after projecting
	// onto the symmetric part.
	if o.Symmetrize {
		a = symmetrized(a)
	}
	normA := frobNorm(a)
	if normA == 0 {
		return TakagiResult{
			U:      identityC(n),
			Values: make([]float64, n),
		}, nil
	}
	if asymmetryNorm(a)/normA > o.SymmetryTol {
		return TakagiResult{}, ErrSymmetryViolation
	}

	// Stage 2 - real symmetric input short-circuits to an ordinary
	// eigendecomposition: A = Q Λ Qᵀ gives Takagi columns q_i for
	// λ_i ≥ 0 and i·q_i for λ_i < 0.
	var (
		ucols [][]complex128
		err   error
	)
	if maxImag(a)/normA <= o.SymmetryTol {
		ucols, err = realTakagiColumns(a, n)
	} else {
		ucols, err = complexTakagiColumns(a, n)
	}
	if err != nil {
		return TakagiResult{}, err
	}

	// Stage 3 - phase fix. A = U Σ Uᵀ inverts to Σ = U† A Ū, so the
	// diagonal entry for column u is d = u†·A·conj(u). With exact
	// arithmetic d is real ≥ 0; a column carrying a stray phase e^{iφ}
	// shows up as d = σ·e^{−2iφ}, undone by rotating the column by
	// e^{i·arg(d)/2}. σ_i = |d_i|.
	sigmas := make([]float64, n)
	for i, u := range ucols {
		d := cdot(u, matVecConj(a, u))
		sigmas[i] = cmplx.Abs(d)
		if sigmas[i] > 0 {
			phase := cmplx.Exp(complex(0, cmplx.Phase(d)/2))
			for j := range u {
				u[j] *= phase
			}
		}
	}

	// Stage 4 - descending reorder (the embedding path already sorts;
	// the real path can interleave after taking |λ|).
	order := descendingOrder(sigmas)
	sorted := make([]float64, n)
	cols := make([][]complex128, n)
	for rank, idx := range order {
		sorted[rank] = sigmas[idx]
		cols[rank] = ucols[idx]
	}

	res := TakagiResult{U: fromColumns(cols, n), Values: sorted}

	// Stage 5 - verify ‖A − U Σ Uᵀ‖/‖A‖.
	if rel := takagiResidual(a, res) / normA; rel > o.ResidualTol {
		return TakagiResult{}, ErrFactorization
	}
	return res, nil
}

// realTakagiColumns handles the purely real symmetric fast path.
func realTakagiColumns(a *mat.CDense, n int) ([][]complex128, error) {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, real(a.At(i, j)))
		}
	}
	_, vecs, err := symEig(s)
	if err != nil {
		return nil, err
	}
	cols := make([][]complex128, n)
	for j := 0; j < n; j++ {
		u := make([]complex128, n)
		for i := 0; i < n; i++ {
			u[i] = complex(vecs.At(i, j), 0)
		}
		cols[j] = u
	}
	// Negative eigenvalues fold into i·q during the phase fix, so the
	// raw eigenvectors are returned as-is.
	return cols, nil
}

// complexTakagiColumns extracts Takagi columns from the 2n×2n real
// symmetric embedding [[X, Y], [Y, −X]] of A = X + i·Y. Its spectrum
// pairs ±σ_i (u and i·u swap branches); the descending sweep therefore
// sees every positive eigenvalue first and keeps exactly n
// independent columns.
func complexTakagiColumns(a *mat.CDense, n int) ([][]complex128, error) {
	s := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			x := real(a.At(i, j))
			y := imag(a.At(i, j))
			s.SetSym(i, j, x)
			s.SetSym(n+i, n+j, -x)
			s.SetSym(i, n+j, y)
			if i != j {
				s.SetSym(j, n+i, y)
			}
		}
	}
	vals, vecs, err := symEig(s)
	if err != nil {
		return nil, err
	}
	_, cols := extractComplexPairs(vals, vecs, n)
	return cols, nil
}

// descendingOrder returns index order sorting v descending (stable for
// ties by construction of the insertion scan).
func descendingOrder(v []float64) []int {
	order := make([]int, len(v))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && v[order[j]] > v[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

// takagiResidual returns ‖A − U Σ Uᵀ‖_F.
func takagiResidual(a *mat.CDense, res TakagiResult) float64 {
	n := len(res.Values)
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for l := 0; l < n; l++ {
				s += res.U.At(i, l) * complex(res.Values[l], 0) * res.U.At(j, l)
			}
			d := a.At(i, j) - s
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sum)
}
