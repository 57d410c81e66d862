package kk

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warpkk/bessel"
	"github.com/katalvlaran/warpkk/warp"
)

// Solve finds the first N massive KK roots for a validated field in
// the given warp geometry and maps them to physical masses.
//
// The returned Spectrum is freshly allocated and never cached;
// identical inputs yield bit-identical results.
//
// Errors: ErrInvalidParameter (ε ∉ (0,1), bad options),
// ErrRootBracketing (sign-change isolation exhausted its budget),
// ErrNoConvergence (Brent budget exhausted inside a verified bracket).
func Solve(field Field, geo warp.Geometry, opts ...Option) (Spectrum, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Spectrum{}, err
	}
	eps := geo.Epsilon
	if !(eps > 0) || !(eps < 1) || math.IsNaN(eps) {
		return Spectrum{}, fmt.Errorf("%w: warp factor must lie in (0,1), got %g", ErrInvalidParameter, eps)
	}

	// Stage 1 - effective Bessel order for this species/BC pair.
	nu := field.Order(o.Convention)

	// Stage 2 - quantization equation in stable cross-product form.
	var target func(float64) float64
	if o.Exact {
		target = exactEquation(nu, eps)
	} else {
		target = irOnlyEquation(nu)
	}

	// Stage 3 - seed candidate root locations from zeros of J_ν.
	nSeeds := o.NumRoots
	if nSeeds < 5 {
		nSeeds = 5
	}
	seeds, err := seedRoots(nu, nSeeds)
	if err != nil {
		return Spectrum{}, err
	}

	// Stage 4 - verified sign-change brackets around each seed.
	// ScanMax is a hard domain ceiling: seeds beyond it are out of
	// contract, not silently solved.
	brackets := make([][2]float64, 0, o.NumRoots)
	scanStart := 0.5
	for _, x0 := range seeds {
		if len(brackets) >= o.NumRoots || x0 > o.ScanMax {
			break
		}
		if br, ok := bracketAround(target, x0, o.BracketRel, o.MaxExpand); ok {
			brackets = append(brackets, br)
			scanStart = br[1]
		}
	}
	if len(brackets) < o.NumRoots {
		// Fallback: bounded linear scan past the last confirmed
		// bracket.
		extra := scanForBrackets(target, scanStart, math.Pi, o.NumRoots-len(brackets), o.ScanMax)
		brackets = append(brackets, extra...)
	}
	if len(brackets) < o.NumRoots {
		return Spectrum{}, fmt.Errorf("%w: found %d of %d sign changes up to x=%g",
			ErrRootBracketing, len(brackets), o.NumRoots, o.ScanMax)
	}

	// Stage 5 - Brent per bracket, with one deterministic nudge retry
	// if the bracket degenerated between verification and solving.
	roots := make([]float64, 0, o.NumRoots)
	for _, br := range brackets[:o.NumRoots] {
		root, err := brentq(target, br[0], br[1], o.Tolerance, o.MaxBrentIter)
		if err != nil {
			a := math.Max(br[0]*0.99, minX)
			b := br[1] * 1.01
			root, err = brentq(target, a, b, o.Tolerance, o.MaxBrentIter)
			if err != nil {
				return Spectrum{}, err
			}
		}
		roots = append(roots, root)
	}

	// Stage 6 - physical masses and optional mixing coefficients.
	masses := make([]float64, len(roots))
	for i, x := range roots {
		masses[i] = x * geo.LambdaIR
	}
	var mixing []float64
	if o.WithMixing {
		mixing = make([]float64, len(roots))
		for i, x := range roots {
			mixing[i] = mixingCoefficient(nu, eps, x, o.Exact)
		}
	}

	return Spectrum{
		Roots:       roots,
		Masses:      masses,
		Mixing:      mixing,
		Nu:          nu,
		HasZeroMode: field.HasZeroMode(),
		Exact:       o.Exact,
	}, nil
}

// exactEquation builds F(x) = J_ν(x)·Y_ν(εx) − J_ν(εx)·Y_ν(x).
//
// The cross product stays finite where the ratio J_ν/Y_ν blows up:
// Y_ν has zero crossings and diverges as its argument → 0. Arguments
// are floored at minX so Y_ν is never evaluated at zero.
func exactEquation(nu, eps float64) func(float64) float64 {
	return func(x float64) float64 {
		if x <= minX {
			return math.Copysign(1.0, x)
		}
		jx, yx, err := bessel.JY(nu, x)
		if err != nil {
			return math.NaN()
		}
		je, ye, err := bessel.JY(nu, eps*x)
		if err != nil {
			return math.NaN()
		}
		return jx*ye - je*yx
	}
}

// irOnlyEquation builds the IR-only approximation F(x) = J_ν(x).
// Valid for ε ≪ 1: Y_ν(εx) → −∞ dominates the cross term, forcing
// J_ν(x) ≈ 0.
func irOnlyEquation(nu float64) func(float64) float64 {
	return func(x float64) float64 {
		if x <= minX {
			return 1.0
		}
		j, err := bessel.J(nu, x)
		if err != nil {
			return math.NaN()
		}
		return j
	}
}

// seedRoots returns n increasing positive candidates for the zeros of
// J_ν. Near-integer orders use the polished zeros of J_|ν| (zeros of
// J_{−m} coincide with those of J_m); fractional orders fall back to
// the asymptotic spacing x_k ≈ (k + ν/2 − 1/4)π, clamped so the
// sequence stays strictly increasing and positive even for small k
// and negative ν.
func seedRoots(nu float64, n int) ([]float64, error) {
	nuInt := math.Round(nu)
	if math.Abs(nu-nuInt) < 1e-12 {
		return bessel.ZerosJ(math.Abs(nuInt), n)
	}
	seeds := make([]float64, n)
	prev := 0.0
	for k := 1; k <= n; k++ {
		x := (float64(k) + 0.5*nu - 0.25) * math.Pi
		if x <= prev+1e-6 {
			x = prev + 0.5*math.Pi
		}
		if x < 0.5 {
			x = 0.5
		}
		seeds[k-1] = x
		prev = x
	}
	return seeds, nil
}

// bracketAround attempts a verified sign-change bracket around x0 by
// symmetric expansion: start at [x0(1−rel), x0(1+rel)], then widen
// multiplicatively (a×0.8, b×1.25) up to maxExpand attempts. Bounded
// loop, never recursion - the budget is part of the contract.
func bracketAround(f func(float64) float64, x0, rel float64, maxExpand int) ([2]float64, bool) {
	a := math.Max(x0*(1.0-rel), minX)
	b := x0 * (1.0 + rel)
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return [2]float64{math.Max(a*0.9, minX), a * 1.1}, true
	}
	if fb == 0 {
		return [2]float64{math.Max(b*0.9, minX), b * 1.1}, true
	}
	if oppositeSigns(fa, fb) {
		return [2]float64{a, b}, true
	}
	for i := 0; i < maxExpand; i++ {
		a = math.Max(a*0.8, minX)
		b *= 1.25
		fa = f(a)
		fb = f(b)
		if oppositeSigns(fa, fb) {
			return [2]float64{a, b}, true
		}
	}
	return [2]float64{}, false
}

// scanForBrackets walks right from xStart in fixed steps collecting up
// to nNeeded sign-change intervals, stopping at xMax.
func scanForBrackets(f func(float64) float64, xStart, step float64, nNeeded int, xMax float64) [][2]float64 {
	brackets := make([][2]float64, 0, nNeeded)
	xPrev := math.Max(xStart, minX)
	fPrev := f(xPrev)
	x := xPrev
	for len(brackets) < nNeeded && x < xMax {
		x += step
		fx := f(x)
		if fPrev == 0 {
			brackets = append(brackets, [2]float64{math.Max(xPrev*0.9, minX), xPrev * 1.1})
		} else if oppositeSigns(fPrev, fx) {
			brackets = append(brackets, [2]float64{xPrev, x})
		}
		xPrev, fPrev = x, fx
	}
	return brackets
}

// mixingCoefficient returns the Bessel mixing coefficient of a mode:
// b_n = −J_ν(x)/Y_ν(x) in exact mode (IR ratio), or
// b_n = −J_ν(εx)/Y_ν(εx) in IR-only mode (UV ratio, since J_ν(x) = 0
// at the IR brane in that approximation). NaN when Y underflows.
func mixingCoefficient(nu, eps, x float64, exact bool) float64 {
	arg := x
	if !exact {
		arg = eps * x
	}
	j, y, err := bessel.JY(nu, arg)
	if err != nil || math.Abs(y) < 1e-300 {
		return math.NaN()
	}
	return -j / y
}

// oppositeSigns reports a strict sign change (NaN never qualifies).
func oppositeSigns(fa, fb float64) bool {
	return (fa > 0 && fb < 0) || (fa < 0 && fb > 0)
}
