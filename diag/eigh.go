// SPDX-License-Identifier: MIT

// Package diag - real symmetric eigendecomposition plus the complex
// extraction sweep shared by SVD and Takagi.
package diag

import (
	"gonum.org/v1/gonum/mat"
)

// symEig factorizes a real symmetric matrix and returns eigenvalues
// in descending order with matching eigenvector columns.
func symEig(s *mat.SymDense) ([]float64, *mat.Dense, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(s, true); !ok {
		return nil, nil, ErrEigenFailed
	}
	asc := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	n := len(asc)
	vals := make([]float64, n)
	flipped := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		src := n - 1 - j
		vals[j] = asc[src]
		for i := 0; i < n; i++ {
			flipped.Set(i, j, vecs.At(i, src))
		}
	}
	return vals, flipped, nil
}

// extractComplexPairs walks the 2n eigenpairs of a doubled real
// embedding in descending eigenvalue order, folds each real
// eigenvector [p; q] into the complex candidate p + i·q, and keeps the
// first n candidates that survive a complex Gram–Schmidt sweep. The
// doubling (v and i·v share an eigenvalue) guarantees exactly n
// independent survivors; keep returns the retained eigenvalues
// alongside the orthonormal complex columns.
func extractComplexPairs(vals []float64, vecs *mat.Dense, n int) ([]float64, [][]complex128) {
	kept := make([]float64, 0, n)
	basis := make([][]complex128, 0, n)
	for j := 0; j < 2*n && len(basis) < n; j++ {
		cand := make([]complex128, n)
		for i := 0; i < n; i++ {
			cand[i] = complex(vecs.At(i, j), vecs.At(n+i, j))
		}
		var ok bool
		if basis, ok = orthonormalAppend(basis, cand, 0.5); ok {
			kept = append(kept, vals[j])
		}
	}
	return kept, basis
}
