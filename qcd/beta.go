package qcd

import "math"

// zeta3 is Apéry's constant ζ(3).
const zeta3 = 1.2020569031595942

// Beta0 is the 1-loop coefficient 11 − 2n_f/3.
func Beta0(nf int) float64 {
	return 11.0 - 2.0*float64(nf)/3.0
}

// Beta1 is the 2-loop coefficient 102 − 38n_f/3.
func Beta1(nf int) float64 {
	return 102.0 - 38.0*float64(nf)/3.0
}

// Beta2 is the 3-loop coefficient 2857/2 − 5033n_f/18 + 325n_f²/54.
func Beta2(nf int) float64 {
	n := float64(nf)
	return 2857.0/2.0 - 5033.0*n/18.0 + 325.0*n*n/54.0
}

// Beta3 is the 4-loop coefficient of van Ritbergen, Vermaseren and
// Larin.
func Beta3(nf int) float64 {
	n := float64(nf)
	return 149753.0/6.0 + 3564.0*zeta3 -
		(1078361.0/162.0+6508.0*zeta3/27.0)*n +
		(50065.0/162.0+6472.0*zeta3/81.0)*n*n +
		1093.0*n*n*n/729.0
}

// betaRHS evaluates dα_s/dt = −(α_s²/4π)·Σ β_i·(α_s/4π)^i truncated
// at the requested loop order. Caller guarantees loops in 1..4 and
// nf in 0..6.
func betaRHS(alpha float64, nf, loops int) float64 {
	a := alpha / (4.0 * math.Pi)
	series := Beta0(nf)
	if loops >= 2 {
		series += Beta1(nf) * a
	}
	if loops >= 3 {
		series += Beta2(nf) * a * a
	}
	if loops >= 4 {
		series += Beta3(nf) * a * a * a
	}
	return -(alpha * alpha / (4.0 * math.Pi)) * series
}
