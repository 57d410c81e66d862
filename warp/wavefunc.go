// SPDX-License-Identifier: MIT

package warp

import "math"

// cHalfWindow is the half-width around c = 1/2 inside which the
// closed-form overlap expression degenerates to 0/0 and the analytic
// limit takes over.
const cHalfWindow = 1e-8

// FIR returns the IR-brane overlap factor f_IR(c, ε) of a bulk fermion
// zero mode,
//
//	f_IR² = (1/2 − c) / (1 − ε^{1−2c}),
//
// with the c = 1/2 limit 1/(−2 ln ε). Negative squares from floating
// noise are floored at zero before the square root.
func FIR(c, epsilon float64) float64 {
	var sq float64
	if math.Abs(c-0.5) < cHalfWindow {
		sq = 1.0 / (-2.0 * math.Log(epsilon))
	} else {
		sq = (0.5 - c) / (1.0 - math.Pow(epsilon, 1.0-2.0*c))
	}
	if sq < 0 {
		sq = 0
	}
	return math.Sqrt(sq)
}

// FUV returns the UV-brane overlap factor f_UV(c, ε),
//
//	f_UV² = (1/2 − c) / (ε^{2c−1} − 1),
//
// with the same c = 1/2 limit as FIR.
func FUV(c, epsilon float64) float64 {
	var sq float64
	if math.Abs(c-0.5) < cHalfWindow {
		sq = 1.0 / (-2.0 * math.Log(epsilon))
	} else {
		sq = (0.5 - c) / (math.Pow(epsilon, 2.0*c-1.0) - 1.0)
	}
	if sq < 0 {
		sq = 0
	}
	return math.Sqrt(sq)
}
