// Package kk - Brent–Dekker root isolation for a verified bracket.
package kk

import (
	"fmt"
	"math"
)

// brentq finds the root of f inside [a, b] assuming f(a)·f(b) ≤ 0.
// It combines bisection, secant and inverse quadratic interpolation;
// convergence is guaranteed given the sign change. tol acts as both
// the absolute and relative target in x, matching the upstream
// contract of the solver.
//
// Complexity: superlinear near simple roots; at worst O(maxIter)
// bisection halvings.
func brentq(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	fa := f(a)
	fb := f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, fmt.Errorf("%w: no sign change on [%g, %g]", ErrRootBracketing, a, b)
	}

	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < maxIter; i++ {
		if (fb > 0) == (fc > 0) {
			// Re-anchor c on the opposite side of the root.
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			// Keep b the best estimate.
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2.0*machEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation.
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant.
				p = 2.0 * xm * s
				q = 1.0 - s
			} else {
				// Inverse quadratic.
				q = fa / fc
				r := fb / fc
				p = s * (2.0*xm*q*(q-r) - (b-a)*(r-1.0))
				q = (q - 1.0) * (r - 1.0) * (s - 1.0)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3.0*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2.0*p < math.Min(min1, min2) {
				// Interpolation accepted.
				e = d
				d = p / q
			} else {
				// Interpolation rejected; bisect.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, ErrNoConvergence
}

// machEps is the double-precision machine epsilon.
const machEps = 2.220446049250313e-16
