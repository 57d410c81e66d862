package qcd

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrInvalidParameter is returned for a non-positive scale or
	// reference coupling, or an out-of-range loop order.
	ErrInvalidParameter = errors.New("qcd: invalid parameter")

	// ErrIntegration is returned when the adaptive integrator cannot
	// reach the target scale within its step budget.
	ErrIntegration = errors.New("qcd: RG integration failed")
)

// PDG reference values (GeV where dimensionful).
const (
	// AlphaSMZ is the world-average strong coupling at M_Z.
	AlphaSMZ = 0.1180

	// MZ is the Z boson mass.
	MZ = 91.1876

	// MCharm and MBottom are MS-bar quark masses at their own scale.
	MCharm  = 1.27
	MBottom = 4.18

	// MTopMS is the MS-bar top mass, the preferred matching point.
	MTopMS = 163.5

	// MTopPole is the top pole mass, kept for reference.
	MTopPole = 172.69
)

// Threshold is a flavor-number crossing at a quark mass.
type Threshold struct {
	// Mass is the matching scale (GeV).
	Mass float64

	// NFBelow and NFAbove are the active flavor counts on either
	// side.
	NFBelow, NFAbove int
}

// DefaultThresholds returns the charm, bottom and top crossings.
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Mass: MCharm, NFBelow: 3, NFAbove: 4},
		{Mass: MBottom, NFBelow: 4, NFAbove: 5},
		{Mass: MTopMS, NFBelow: 5, NFAbove: 6},
	}
}

// Options configures the RG evolution.
type Options struct {
	// Loops is the β-function order, 1 to 4.
	Loops int

	// AlphaRef and MuRef fix the boundary condition
	// α_s(MuRef) = AlphaRef.
	AlphaRef float64
	MuRef    float64

	// Thresholds lists the flavor crossings; empty disables them
	// (fixed n_f = 5).
	Thresholds []Threshold

	// MatchingLoops is the decoupling order at thresholds, 0 to 3;
	// −1 selects Loops−1 capped at 3.
	MatchingLoops int

	// RTol and ATol are the adaptive integrator tolerances.
	RTol, ATol float64
}

// DefaultOptions is 4-loop running from α_s(M_Z) with automatic
// matching order.
func DefaultOptions() Options {
	return Options{
		Loops:         4,
		AlphaRef:      AlphaSMZ,
		MuRef:         MZ,
		Thresholds:    DefaultThresholds(),
		MatchingLoops: -1,
		RTol:          1e-10,
		ATol:          1e-12,
	}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithLoops sets the β-function order. Panics outside 1..4
// (programmer error).
func WithLoops(n int) Option {
	if n < 1 || n > 4 {
		panic("qcd: WithLoops requires 1..4")
	}
	return func(o *Options) { o.Loops = n }
}

// WithReference overrides the boundary condition α_s(mu) = alpha.
func WithReference(alpha, mu float64) Option {
	if !(alpha > 0) || !(mu > 0) || math.IsInf(alpha, 0) || math.IsInf(mu, 0) {
		panic("qcd: WithReference requires positive finite values")
	}
	return func(o *Options) {
		o.AlphaRef = alpha
		o.MuRef = mu
	}
}

// WithThresholds replaces the flavor crossings; pass an empty slice
// to run at fixed n_f = 5.
func WithThresholds(ts []Threshold) Option {
	return func(o *Options) { o.Thresholds = ts }
}

// WithMatchingLoops sets the decoupling order. Panics outside 0..3.
func WithMatchingLoops(n int) Option {
	if n < 0 || n > 3 {
		panic("qcd: WithMatchingLoops requires 0..3")
	}
	return func(o *Options) { o.MatchingLoops = n }
}

// WithTolerances sets the integrator tolerances.
func WithTolerances(rtol, atol float64) Option {
	if !(rtol > 0) || !(atol > 0) {
		panic("qcd: WithTolerances requires positive tolerances")
	}
	return func(o *Options) {
		o.RTol = rtol
		o.ATol = atol
	}
}

func (o Options) validate() error {
	if o.Loops < 1 || o.Loops > 4 {
		return ErrInvalidParameter
	}
	if !(o.AlphaRef > 0) || !(o.MuRef > 0) ||
		math.IsInf(o.AlphaRef, 0) || math.IsInf(o.MuRef, 0) ||
		math.IsNaN(o.AlphaRef) || math.IsNaN(o.MuRef) {
		return ErrInvalidParameter
	}
	if o.MatchingLoops < -1 || o.MatchingLoops > 3 {
		return ErrInvalidParameter
	}
	if !(o.RTol > 0) || !(o.ATol > 0) {
		return ErrInvalidParameter
	}
	return nil
}

// matchingOrder resolves the −1 sentinel to Loops−1 capped at 3.
func (o Options) matchingOrder() int {
	if o.MatchingLoops >= 0 {
		return o.MatchingLoops
	}
	m := o.Loops - 1
	if m > 3 {
		m = 3
	}
	if m < 0 {
		m = 0
	}
	return m
}
