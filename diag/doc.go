// SPDX-License-Identifier: MIT

// Package diag reduces complex mass matrices to non-negative diagonal
// form: singular value decomposition for general (Dirac-type) blocks
// and Takagi factorization for complex-symmetric (Majorana-type)
// blocks.
//
// 🚀 Why two factorizations?
//
//	A Dirac mass matrix M is diagonalized biunitarily, M = U Σ V†, with
//	independent left and right rotations. A Majorana mass matrix is
//	complex symmetric (A = Aᵀ, not Hermitian) and its physical
//	diagonalization uses a single unitary on both sides through the
//	ordinary transpose: A = U Σ Uᵀ (Autonne–Takagi). No direct library
//	primitive computes the latter.
//
// ✨ Method:
//
//	gonum's dense eigensolver works over the reals, so both routines
//	map the complex problem onto a real symmetric one:
//
//	  - SVD: the Hermitian product H = A†A embeds as the 2n×2n real
//	    symmetric [[Re H, −Im H], [Im H, Re H]]; every eigenvalue of H
//	    appears twice (v and i·v), and a complex Gram–Schmidt sweep in
//	    descending eigenvalue order recovers one representative per
//	    pair. Left vectors follow as u = A·v/σ, completed to a unitary
//	    basis for the null space.
//
//	  - Takagi: for A = X + iY with X, Y real symmetric, the real
//	    symmetric embedding [[X, Y], [Y, −X]] has spectrum ±σ_i; an
//	    eigenvector [p; q] at +σ yields the Takagi column u = p + i·q
//	    satisfying A·conj(u) = σ·u. Residual phases are fixed by
//	    reading diag(U† A Ū) column by column, and the reconstruction
//	    A = U Σ Uᵀ is verified before returning.
//
// Degenerate (near-equal) singular values are handled without a
// canonical tie-break: any unitary spanning the degenerate subspace is
// acceptable, and the reconstruction invariant still holds.
//
// ⚙️ Usage:
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//	    "github.com/katalvlaran/warpkk/diag"
//	)
//
//	res, err := diag.Takagi(a)            // a *mat.CDense, A = Aᵀ
//	// res.Values descending ≥ 0; res.U unitary; A = U Σ Uᵀ
//
//	sv, err := diag.SVD(a)                // general complex, m×n
//	// A = U Σ V†
//
// Every tolerance is an explicit Options field (no package globals).
// Both routines are pure and safe for concurrent use.
//
// Errors: ErrEmptyMatrix, ErrNotSquare, ErrSymmetryViolation,
// ErrFactorization, ErrInvalidTolerance.
package diag
