package qcd

import "math"

// Decoupling constants for MS-bar matching at μ = m_h, where all
// logarithmic terms vanish (Chetyrkin, Kühn, Steinhauser):
//
//	α_s^(n_l) = α_s^(n_l+1)·[1 + c2·(α/π)² + c3·(α/π)³]
//
// with c2 = 11/72 and c3 depending on the light flavor count n_l.
func decouplingCoeffs(nl int) (c2, c3 float64) {
	c2 = 11.0 / 72.0
	c3 = 564731.0/124416.0 - 82043.0*zeta3/27648.0 - 2633.0*float64(nl)/31104.0
	return c2, c3
}

// matchAlphaS crosses one flavor threshold. Orders 0 and 1 are
// continuous matching; order 2 adds c2, order 3 adds c3. The upward
// direction inverts the series to the same order. Caller guarantees
// |nfFrom − nfTo| == 1.
func matchAlphaS(alpha float64, nfFrom, nfTo, matchingLoops int) float64 {
	if matchingLoops <= 1 {
		return alpha
	}
	nl := nfFrom
	if nfTo < nl {
		nl = nfTo
	}
	c2, c3 := decouplingCoeffs(nl)
	if matchingLoops < 3 {
		c3 = 0
	}
	a := alpha / math.Pi
	if nfTo < nfFrom {
		return alpha * (1.0 + c2*a*a + c3*a*a*a)
	}
	return alpha * (1.0 - c2*a*a - c3*a*a*a)
}
