// SPDX-License-Identifier: MIT

// Package diag - complex singular value decomposition through the
// Hermitian product H = A†A and its real symmetric embedding.
package diag

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SVD factorizes an m×n complex matrix as A = U Σ V† with U (m×m) and
// V (n×n) unitary and Values holding the min(m, n) singular values in
// descending order. The reconstruction is verified against
// ResidualTol; a failure returns ErrFactorization with the partial
// result discarded.
func SVD(a *mat.CDense, opts ...Option) (SVDResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return SVDResult{}, err
	}
	if a == nil {
		return SVDResult{}, ErrEmptyMatrix
	}
	m, n := a.Dims()
	if m == 0 || n == 0 {
		return SVDResult{}, ErrEmptyMatrix
	}

	normA := frobNorm(a)
	k := n
	if m < n {
		k = m
	}

	// Stage 1 - zero matrix: Σ = 0 with identity rotations.
	if normA == 0 {
		return SVDResult{
			U:      identityC(m),
			V:      identityC(n),
			Values: make([]float64, k),
		}, nil
	}

	// Stage 2 - right vectors from H = A†A via the real embedding
	// [[Re H, −Im H], [Im H, Re H]]. Each eigenvalue of H appears
	// twice (v and i·v); the descending Gram–Schmidt sweep keeps one
	// representative per pair.
	emb := embedHermitian(gram(a))
	vals, vecs, err := symEig(emb)
	if err != nil {
		return SVDResult{}, err
	}
	lams, vcols := extractComplexPairs(vals, vecs, n)

	// Stage 3 - singular values. The zero gate acts on eigenvalues of
	// A†A: their roundoff floor is ~ε·λ_max, which the square root
	// would otherwise amplify to ~√ε·σ_max worth of spurious σ.
	lamGate := o.ZeroTol * math.Abs(lams[0])
	sigmas := make([]float64, n)
	for i, lam := range lams {
		if lam > lamGate {
			sigmas[i] = math.Sqrt(lam)
		}
	}

	// Stage 4 - left vectors u_i = A·v_i/σ_i for the nonzero values,
	// then canonical-basis completion for the null directions.
	ucols := make([][]complex128, 0, m)
	for i := 0; i < k && sigmas[i] > 0; i++ {
		u := matVec(a, vcols[i])
		inv := complex(1.0/sigmas[i], 0)
		for j := range u {
			u[j] *= inv
		}
		// Reorthogonalize against prior columns; for tightly clustered
		// singular values the computed u drifts at roundoff level.
		ucols, _ = orthonormalAppend(ucols, u, 0.5)
	}
	ucols = completeBasis(ucols, m)

	res := SVDResult{
		U:      fromColumns(ucols, m),
		V:      fromColumns(vcols, n),
		Values: sigmas[:k],
	}

	// Stage 5 - verify ‖A − U Σ V†‖/‖A‖.
	if rel := svdResidual(a, res) / normA; rel > o.ResidualTol {
		return SVDResult{}, ErrFactorization
	}
	return res, nil
}

// gram returns H = A†A (n×n Hermitian).
func gram(a *mat.CDense) *mat.CDense {
	m, n := a.Dims()
	h := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for l := 0; l < m; l++ {
				ali := a.At(l, i)
				s += complex(real(ali), -imag(ali)) * a.At(l, j)
			}
			h.Set(i, j, s)
		}
	}
	return h
}

// embedHermitian maps an n×n Hermitian H = Hr + i·Hi onto the 2n×2n
// real symmetric [[Hr, −Hi], [Hi, Hr]].
func embedHermitian(h *mat.CDense) *mat.SymDense {
	n, _ := h.Dims()
	s := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			hr := real(h.At(i, j))
			hi := imag(h.At(i, j))
			s.SetSym(i, j, hr)
			s.SetSym(n+i, n+j, hr)
			// Hi is antisymmetric for Hermitian H, so only the upper
			// off-diagonal block needs explicit entries.
			if i != j {
				s.SetSym(i, n+j, -hi)
				s.SetSym(j, n+i, hi)
			}
		}
	}
	return s
}

// svdResidual returns ‖A − U Σ V†‖_F.
func svdResidual(a *mat.CDense, res SVDResult) float64 {
	m, n := a.Dims()
	sum := 0.0
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for l := range res.Values {
				vjl := res.V.At(j, l)
				s += res.U.At(i, l) * complex(res.Values[l], 0) *
					complex(real(vjl), -imag(vjl))
			}
			d := a.At(i, j) - s
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sum)
}

// identityC returns the n×n complex identity.
func identityC(n int) *mat.CDense {
	id := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return id
}
