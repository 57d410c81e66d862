// SPDX-License-Identifier: MIT

// Package diag - options, results and sentinel errors for the
// factorization engine.
package diag

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors.
var (
	// ErrEmptyMatrix is returned for a nil or 0×0 input.
	ErrEmptyMatrix = errors.New("diag: matrix must be non-empty")

	// ErrNotSquare is returned when Takagi receives a rectangular
	// matrix.
	ErrNotSquare = errors.New("diag: matrix must be square")

	// ErrSymmetryViolation is returned when Takagi input fails the
	// relative symmetry gate ‖A − Aᵀ‖/‖A‖ ≤ SymmetryTol (a Hermitian
	// matrix is NOT symmetric in general).
	ErrSymmetryViolation = errors.New("diag: matrix is not complex symmetric")

	// ErrFactorization is returned when the reconstruction residual
	// exceeds ResidualTol after phase correction.
	ErrFactorization = errors.New("diag: reconstruction residual above tolerance")

	// ErrInvalidTolerance is returned for non-positive or non-finite
	// tolerances.
	ErrInvalidTolerance = errors.New("diag: tolerance must be positive and finite")

	// ErrEigenFailed is returned when the underlying real symmetric
	// eigensolver does not converge (essentially unreachable for
	// finite input).
	ErrEigenFailed = errors.New("diag: real symmetric eigensolver failed")
)

// Defaults. All tolerances are relative to ‖A‖.
const (
	// DefaultSymmetryTol gates ‖A − Aᵀ‖/‖A‖ in Takagi.
	DefaultSymmetryTol = 1e-12

	// DefaultResidualTol bounds the verified reconstruction error.
	DefaultResidualTol = 1e-10

	// DefaultZeroTol classifies singular values as numerically zero
	// (relative to the largest one).
	DefaultZeroTol = 1e-13
)

// Options configures a factorization call.
type Options struct {
	// SymmetryTol is the relative symmetry gate for Takagi.
	SymmetryTol float64

	// ResidualTol is the relative reconstruction tolerance.
	ResidualTol float64

	// ZeroTol classifies singular values as numerically zero. In SVD
	// it gates the Gram eigenvalues λ/λ_max (their roundoff floor,
	// not the √-amplified one).
	ZeroTol float64

	// Symmetrize projects Takagi input onto (A + Aᵀ)/2 instead of
	// rejecting asymmetric noise. The symmetry gate still applies to
	// the projected matrix.
	Symmetrize bool
}

// DefaultOptions returns the standard engine configuration.
func DefaultOptions() Options {
	return Options{
		SymmetryTol: DefaultSymmetryTol,
		ResidualTol: DefaultResidualTol,
		ZeroTol:     DefaultZeroTol,
	}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithSymmetryTol sets the Takagi symmetry gate. Panics on
// non-positive values (programmer error).
func WithSymmetryTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("diag: WithSymmetryTol requires a positive finite tolerance")
	}
	return func(o *Options) { o.SymmetryTol = tol }
}

// WithResidualTol sets the reconstruction tolerance.
func WithResidualTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("diag: WithResidualTol requires a positive finite tolerance")
	}
	return func(o *Options) { o.ResidualTol = tol }
}

// WithZeroTol sets the zero-classification threshold.
func WithZeroTol(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("diag: WithZeroTol requires a positive finite tolerance")
	}
	return func(o *Options) { o.ZeroTol = tol }
}

// WithSymmetrize enables the (A + Aᵀ)/2 projection in Takagi.
func WithSymmetrize() Option {
	return func(o *Options) { o.Symmetrize = true }
}

func (o Options) validate() error {
	for _, tol := range []float64{o.SymmetryTol, o.ResidualTol, o.ZeroTol} {
		if !(tol > 0) || math.IsInf(tol, 0) || math.IsNaN(tol) {
			return ErrInvalidTolerance
		}
	}
	return nil
}

// SVDResult is a biunitary factorization A = U Σ V†.
type SVDResult struct {
	// U is the m×m left unitary.
	U *mat.CDense

	// V is the n×n right unitary.
	V *mat.CDense

	// Values are the min(m,n) singular values, descending, ≥ 0.
	Values []float64
}

// TakagiResult is an Autonne–Takagi factorization A = U Σ Uᵀ.
type TakagiResult struct {
	// U is the n×n Takagi unitary.
	U *mat.CDense

	// Values are the n Takagi singular values, descending, ≥ 0.
	Values []float64
}
