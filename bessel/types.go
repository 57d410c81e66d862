package bessel

import "errors"

// ErrDomain is returned for x ≤ 0, a non-finite argument, or a
// non-finite order.
var ErrDomain = errors.New("bessel: argument must be positive and finite")

// ErrNoConvergence is returned when a continued fraction or series
// exhausts its iteration budget before reaching machine precision.
var ErrNoConvergence = errors.New("bessel: expansion failed to converge")

// Internal tuning knobs of the Steed/Temme evaluation. These are fixed
// properties of the algorithm, not user-facing tolerances.
const (
	// eps is the relative target for CF1/CF2 and the Temme series.
	eps = 1e-16

	// fpMin guards continued-fraction denominators against underflow.
	fpMin = 1e-30

	// maxIter bounds every internal expansion loop.
	maxIter = 10000

	// xSmall is the crossover between Temme's series (x < xSmall)
	// and the complex continued fraction CF2 (x ≥ xSmall).
	xSmall = 2.0
)
