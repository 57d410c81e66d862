package bessel

import "math"

// ZerosJ returns the first n positive zeros of J_ν(x), ν ≥ 0, in
// increasing order.
//
// Each zero is seeded by McMahon's asymptotic expansion
//
//	j_{ν,k} ≈ β − (μ−1)/(8β) − 4(μ−1)(7μ−31)/(3(8β)³),
//	β = (k + ν/2 − 1/4)π,  μ = 4ν²,
//
// then polished by a few Newton steps on (J_ν, J'_ν). McMahon is
// already accurate to ~1e-3 at k = 1 and improves rapidly with k, so
// Newton converges in 3-5 iterations everywhere.
func ZerosJ(nu float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, nil
	}
	if nu < 0 || math.IsNaN(nu) || math.IsInf(nu, 0) {
		return nil, ErrDomain
	}

	zeros := make([]float64, 0, n)
	prev := 0.0
	for k := 1; k <= n; k++ {
		x := mcMahonZero(nu, k)
		// Keep seeds strictly ordered; McMahon can undershoot for
		// large ν at small k.
		if x <= prev+1e-8 {
			x = prev + math.Pi/2
		}
		x, err := newtonPolishZero(nu, x)
		if err != nil {
			return nil, err
		}
		if x <= prev+1e-8 {
			// Newton slid back onto an already-found zero; restart
			// from the midpoint of the next asymptotic slot.
			x2, err2 := newtonPolishZero(nu, prev+math.Pi)
			if err2 != nil {
				return nil, err2
			}
			x = x2
		}
		zeros = append(zeros, x)
		prev = x
	}
	return zeros, nil
}

// mcMahonZero returns the McMahon approximation to the k-th positive
// zero of J_ν.
func mcMahonZero(nu float64, k int) float64 {
	beta := (float64(k) + 0.5*nu - 0.25) * math.Pi
	mu := 4.0 * nu * nu
	b8 := 8.0 * beta
	x := beta - (mu-1.0)/b8 - 4.0*(mu-1.0)*(7.0*mu-31.0)/(3.0*b8*b8*b8)
	if x < 1e-3 {
		x = 1e-3
	}
	return x
}

// newtonPolishZero refines an approximate zero of J_ν by Newton
// iteration on J_ν/J'_ν with a conservative step clamp.
func newtonPolishZero(nu, x0 float64) (float64, error) {
	const (
		newtonIter = 50
		newtonTol  = 1e-14
		maxStep    = 1.0
	)
	x := x0
	for i := 0; i < newtonIter; i++ {
		j, _, jp, _, err := JYPrime(nu, x)
		if err != nil {
			return 0, err
		}
		if jp == 0 {
			break
		}
		step := j / jp
		if step > maxStep {
			step = maxStep
		} else if step < -maxStep {
			step = -maxStep
		}
		next := x - step
		if next <= 0 {
			next = 0.5 * x // halve instead of crossing into x ≤ 0
		}
		x = next
		if math.Abs(step) < newtonTol*(1.0+math.Abs(x)) {
			break
		}
	}
	return x, nil
}
