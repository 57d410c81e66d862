// Package kk - variants, options and sentinel errors for the KK mass
// solver.
package kk

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrInvalidBoundaryCondition is returned for an illegal
	// species/boundary-condition pairing (e.g. a gauge field with ++).
	ErrInvalidBoundaryCondition = errors.New("kk: illegal species/boundary-condition pairing")

	// ErrInvalidParameter is returned for out-of-domain numeric input:
	// ε outside (0,1), a non-positive tolerance, N < 1, or a fermion
	// without a bulk mass parameter.
	ErrInvalidParameter = errors.New("kk: invalid parameter")

	// ErrRootBracketing is returned when no sign-changing interval is
	// found for a requested root index within the retry budget.
	ErrRootBracketing = errors.New("kk: failed to bracket root")

	// ErrNoConvergence is returned when Brent iteration exhausts its
	// budget inside a verified bracket (pathological tolerance).
	ErrNoConvergence = errors.New("kk: root iteration failed to converge")
)

// Species enumerates the bulk field types with distinct boundary
// conditions.
type Species int

const (
	// Gauge is a bulk gauge boson; only Neumann–Neumann (NN) boundary
	// conditions are admissible.
	Gauge Species = iota

	// Fermion is a bulk Dirac fermion; admissible boundary conditions
	// are ++ and --, and the bulk mass parameter c is mandatory.
	Fermion
)

// String implements fmt.Stringer.
func (s Species) String() string {
	switch s {
	case Gauge:
		return "gauge"
	case Fermion:
		return "fermion"
	default:
		return fmt.Sprintf("Species(%d)", int(s))
	}
}

// BoundaryCondition enumerates the brane boundary conditions.
type BoundaryCondition int

const (
	// BCNeumannNeumann (NN): Neumann on both branes. Gauge fields only;
	// carries a massless zero mode.
	BCNeumannNeumann BoundaryCondition = iota

	// BCPlusPlus (++): even chirality on both branes. Fermions only;
	// carries a chiral zero mode.
	BCPlusPlus

	// BCMinusMinus (--): odd chirality on both branes. Fermions only;
	// no zero mode.
	BCMinusMinus
)

// String implements fmt.Stringer.
func (bc BoundaryCondition) String() string {
	switch bc {
	case BCNeumannNeumann:
		return "NN"
	case BCPlusPlus:
		return "++"
	case BCMinusMinus:
		return "--"
	default:
		return fmt.Sprintf("BoundaryCondition(%d)", int(bc))
	}
}

// OrderConvention selects the unresolved ±1/2 shift in the fermionic
// Bessel order α = |c ± 1/2|. Both branches are implemented; the
// default follows the source convention α = |c + 1/2|. Pick the other
// branch with WithOrderConvention once the sign is pinned down.
type OrderConvention int

const (
	// ShiftPlusHalf uses α = |c + 1/2| (default).
	ShiftPlusHalf OrderConvention = iota

	// ShiftMinusHalf uses α = |c − 1/2|.
	ShiftMinusHalf
)

// Field is a validated (species, boundary condition, bulk mass)
// combination. Construct through NewGauge / NewFermion so that illegal
// pairings are unrepresentable downstream.
type Field struct {
	species Species
	bc      BoundaryCondition
	c       float64 // bulk mass parameter; meaningful for fermions only
}

// NewGauge returns a gauge Field. Gauge fields admit only NN boundary
// conditions; anything else is ErrInvalidBoundaryCondition.
func NewGauge(bc BoundaryCondition) (Field, error) {
	if bc != BCNeumannNeumann {
		return Field{}, fmt.Errorf("%w: gauge requires NN, got %s", ErrInvalidBoundaryCondition, bc)
	}
	return Field{species: Gauge, bc: bc}, nil
}

// NewFermion returns a fermion Field with bulk mass parameter c.
// Fermions admit ++ or -- boundary conditions.
func NewFermion(bc BoundaryCondition, c float64) (Field, error) {
	if bc != BCPlusPlus && bc != BCMinusMinus {
		return Field{}, fmt.Errorf("%w: fermion requires ++ or --, got %s", ErrInvalidBoundaryCondition, bc)
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Field{}, fmt.Errorf("%w: bulk mass parameter c must be finite", ErrInvalidParameter)
	}
	return Field{species: Fermion, bc: bc, c: c}, nil
}

// Species returns the field species.
func (f Field) Species() Species { return f.species }

// BC returns the boundary condition.
func (f Field) BC() BoundaryCondition { return f.bc }

// BulkMass returns the bulk mass parameter c (fermions).
func (f Field) BulkMass() float64 { return f.c }

// Order returns the effective Bessel order ν for this field under the
// given shift convention:
//
//	gauge/NN    → ν = 0
//	fermion/++  → ν = α − 1   (no clamping; negative orders are valid)
//	fermion/--  → ν = α
//
// with α = |c + 1/2| (ShiftPlusHalf) or α = |c − 1/2| (ShiftMinusHalf).
func (f Field) Order(conv OrderConvention) float64 {
	if f.species == Gauge {
		return 0
	}
	var alpha float64
	if conv == ShiftMinusHalf {
		alpha = math.Abs(f.c - 0.5)
	} else {
		alpha = math.Abs(f.c + 0.5)
	}
	if f.bc == BCPlusPlus {
		return alpha - 1.0
	}
	return alpha
}

// HasZeroMode reports whether the tower carries a massless zero mode
// (gauge/NN and fermion/++). The zero mode is never counted among the
// massive roots.
func (f Field) HasZeroMode() bool {
	return f.bc == BCNeumannNeumann || f.bc == BCPlusPlus
}

// Defaults for Options. Every tolerance is explicit; there is no
// package-level mutable state.
const (
	// DefaultNumRoots is the number of massive KK roots returned.
	DefaultNumRoots = 3

	// DefaultTolerance is the Brent convergence target in x.
	DefaultTolerance = 1e-12

	// DefaultMaxBrentIter bounds Brent iterations per bracket.
	DefaultMaxBrentIter = 200

	// DefaultBracketRel is the initial relative half-width of the
	// sign-change bracket around each seed.
	DefaultBracketRel = 0.2

	// DefaultMaxExpand bounds the multiplicative bracket-widening
	// retries (a×0.8, b×1.25 per attempt).
	DefaultMaxExpand = 30

	// DefaultScanMax is the ceiling of the fallback linear scan in x.
	DefaultScanMax = 200.0

	// minX floors every Bessel argument: Y_ν must never be evaluated
	// at exactly zero.
	minX = 1e-12
)

// Options configures a Solve call. Zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// NumRoots is the number of massive roots requested (≥ 1).
	NumRoots int

	// Exact selects the exact cross-product equation; false selects
	// the IR-only approximation J_ν(x) = 0 (excellent for ε ≪ 1).
	Exact bool

	// Tolerance is the absolute/relative target for Brent in x.
	Tolerance float64

	// MaxBrentIter bounds Brent iterations per bracket.
	MaxBrentIter int

	// BracketRel is the initial relative bracket half-width.
	BracketRel float64

	// MaxExpand bounds bracket-widening attempts per seed.
	MaxExpand int

	// ScanMax caps the fallback linear bracket scan.
	ScanMax float64

	// Convention selects the ±1/2 bulk-mass shift (see
	// OrderConvention).
	Convention OrderConvention

	// WithMixing also computes the Bessel mixing coefficient b_n per
	// mode.
	WithMixing bool
}

// DefaultOptions returns the standard solver configuration: three
// exact roots at 1e-12 tolerance under the |c+1/2| convention, with
// mixing coefficients enabled.
func DefaultOptions() Options {
	return Options{
		NumRoots:     DefaultNumRoots,
		Exact:        true,
		Tolerance:    DefaultTolerance,
		MaxBrentIter: DefaultMaxBrentIter,
		BracketRel:   DefaultBracketRel,
		MaxExpand:    DefaultMaxExpand,
		ScanMax:      DefaultScanMax,
		Convention:   ShiftPlusHalf,
		WithMixing:   true,
	}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithNumRoots requests n massive roots. Panics on n < 1 (programmer
// error, consistent with option constructors elsewhere in this
// module).
func WithNumRoots(n int) Option {
	if n < 1 {
		panic("kk: WithNumRoots requires n >= 1")
	}
	return func(o *Options) { o.NumRoots = n }
}

// WithExact toggles between the exact cross-product equation and the
// IR-only approximation.
func WithExact(exact bool) Option {
	return func(o *Options) { o.Exact = exact }
}

// WithTolerance sets the Brent tolerance in x. Panics on non-positive
// or non-finite values.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("kk: WithTolerance requires a positive finite tolerance")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxExpand sets the bracket-widening retry budget.
func WithMaxExpand(n int) Option {
	if n < 1 {
		panic("kk: WithMaxExpand requires n >= 1")
	}
	return func(o *Options) { o.MaxExpand = n }
}

// WithScanMax sets the ceiling of the fallback linear scan.
func WithScanMax(x float64) Option {
	if !(x > 0) {
		panic("kk: WithScanMax requires x > 0")
	}
	return func(o *Options) { o.ScanMax = x }
}

// WithOrderConvention selects the ±1/2 shift convention.
func WithOrderConvention(conv OrderConvention) Option {
	return func(o *Options) { o.Convention = conv }
}

// WithMixing toggles the per-mode mixing coefficients b_n.
func WithMixing(enabled bool) Option {
	return func(o *Options) { o.WithMixing = enabled }
}

// validate rejects nonsensical Options at the API boundary.
func (o Options) validate() error {
	if o.NumRoots < 1 {
		return fmt.Errorf("%w: NumRoots must be >= 1, got %d", ErrInvalidParameter, o.NumRoots)
	}
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return fmt.Errorf("%w: Tolerance must be positive and finite", ErrInvalidParameter)
	}
	if o.MaxBrentIter < 1 || o.MaxExpand < 1 {
		return fmt.Errorf("%w: iteration budgets must be >= 1", ErrInvalidParameter)
	}
	if !(o.ScanMax > 0) {
		return fmt.Errorf("%w: ScanMax must be positive", ErrInvalidParameter)
	}
	if !(o.BracketRel > 0) || o.BracketRel >= 1 {
		return fmt.Errorf("%w: BracketRel must lie in (0,1)", ErrInvalidParameter)
	}
	return nil
}

// Spectrum is the outcome of one Solve call: a fresh, immutable KK
// tower.
type Spectrum struct {
	// Roots are the dimensionless massive roots x_n, strictly
	// increasing.
	Roots []float64

	// Masses are the physical masses m_n = x_n·Λ_IR (GeV), aligned
	// with Roots.
	Masses []float64

	// Mixing holds the per-mode Bessel mixing coefficients b_n (NaN
	// where Y_ν underflows); nil unless Options.WithMixing.
	Mixing []float64

	// Nu is the effective Bessel order used.
	Nu float64

	// HasZeroMode flags a massless mode excluded from Roots.
	HasZeroMode bool

	// Exact records which quantization equation produced the roots.
	Exact bool
}
