package lfv

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors.
var (
	// ErrInvalidParameter is returned for a non-positive KK scale,
	// coefficient, or reference scale.
	ErrInvalidParameter = errors.New("lfv: invalid parameter")

	// ErrBadMatrix is returned for a nil or non-3×3 Yukawa or PMNS
	// matrix.
	ErrBadMatrix = errors.New("lfv: matrix must be 3×3")
)

// Bound constants.
const (
	// CPaper is the naive-dimensional-analysis coefficient of the
	// dipole bound.
	CPaper = 0.028

	// CScanDefault is the slightly conservative coefficient used by
	// parameter scans.
	CScanDefault = 0.02

	// ReferenceScale is the 3 TeV KK scale the bound is normalized to
	// (GeV).
	ReferenceScale = 3000.0

	// BRPrefactor relates the branching ratio to the squared matrix
	// element: BR = BRPrefactor·|(Ȳ_N Ȳ_N†)₁₂|² at M_KK = 3 TeV.
	BRPrefactor = 4.0e-8
)

// Options configures a bound check.
type Options struct {
	// C is the bound coefficient.
	C float64

	// ReferenceScale is the KK scale (GeV) at which the bound equals
	// C.
	ReferenceScale float64
}

// DefaultOptions uses the paper coefficient at the 3 TeV reference.
func DefaultOptions() Options {
	return Options{C: CPaper, ReferenceScale: ReferenceScale}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithCoefficient overrides the bound coefficient C. Panics on
// non-positive values (programmer error).
func WithCoefficient(c float64) Option {
	if !(c > 0) || math.IsInf(c, 0) {
		panic("lfv: WithCoefficient requires a positive finite coefficient")
	}
	return func(o *Options) { o.C = c }
}

// WithReferenceScale overrides the normalization scale (GeV).
func WithReferenceScale(scale float64) Option {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic("lfv: WithReferenceScale requires a positive finite scale")
	}
	return func(o *Options) { o.ReferenceScale = scale }
}

// Result carries both sides of the μ→eγ bound.
type Result struct {
	// LHS is |(Ȳ_N Ȳ_N†)₁₂|.
	LHS float64

	// RHS is C·(M_KK/reference)².
	RHS float64

	// Ratio is LHS/RHS; values above 1 violate the bound.
	Ratio float64

	// OffDiagonal is the raw complex (1,2) element.
	OffDiagonal complex128

	// Pass reports LHS ≤ RHS.
	Pass bool
}

// Check evaluates the bound for a full 3×3 dimensionless neutrino
// Yukawa matrix Ȳ_N at the KK scale mKK (GeV).
func Check(ybarN *mat.CDense, mKK float64, opts ...Option) (Result, error) {
	if ybarN == nil {
		return Result{}, ErrBadMatrix
	}
	if r, c := ybarN.Dims(); r != 3 || c != 3 {
		return Result{}, ErrBadMatrix
	}
	o, err := buildOptions(mKK, opts)
	if err != nil {
		return Result{}, err
	}

	// (Ȳ Ȳ†)₁₂ = Σ_l Ȳ[0][l]·conj(Ȳ[1][l]).
	var off complex128
	for l := 0; l < 3; l++ {
		off += ybarN.At(0, l) * cmplx.Conj(ybarN.At(1, l))
	}
	return verdict(off, mKK, o), nil
}

// CheckRaw evaluates the bound from Yukawa eigenvalues and a PMNS
// matrix, reconstructing Ȳ_N = U·diag(Ȳ) so that
// Ȳ_N·Ȳ_N† = U·diag(Ȳ²)·U†.
func CheckRaw(eigen [3]float64, pmns *mat.CDense, mKK float64, opts ...Option) (Result, error) {
	if pmns == nil {
		return Result{}, ErrBadMatrix
	}
	if r, c := pmns.Dims(); r != 3 || c != 3 {
		return Result{}, ErrBadMatrix
	}
	o, err := buildOptions(mKK, opts)
	if err != nil {
		return Result{}, err
	}

	var off complex128
	for l := 0; l < 3; l++ {
		y2 := complex(eigen[l]*eigen[l], 0)
		off += pmns.At(0, l) * y2 * cmplx.Conj(pmns.At(1, l))
	}
	return verdict(off, mKK, o), nil
}

// CoefficientFromBRLimit converts an experimental BR(μ→eγ) upper
// limit to the bound coefficient C at the reference scale.
func CoefficientFromBRLimit(br float64) (float64, error) {
	if !(br > 0) || math.IsInf(br, 0) {
		return 0, ErrInvalidParameter
	}
	return math.Sqrt(br / BRPrefactor), nil
}

func buildOptions(mKK float64, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !(mKK > 0) || math.IsInf(mKK, 0) ||
		!(o.C > 0) || !(o.ReferenceScale > 0) {
		return Options{}, ErrInvalidParameter
	}
	return o, nil
}

func verdict(off complex128, mKK float64, o Options) Result {
	lhs := cmplx.Abs(off)
	ratio := mKK / o.ReferenceScale
	rhs := o.C * ratio * ratio
	return Result{
		LHS:         lhs,
		RHS:         rhs,
		Ratio:       lhs / rhs,
		OffDiagonal: off,
		Pass:        lhs <= rhs,
	}
}
