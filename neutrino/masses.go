package neutrino

import (
	"errors"
	"math"
)

// Ordering selects the neutrino mass hierarchy.
type Ordering int

const (
	// NormalOrdering is m1 < m2 < m3.
	NormalOrdering Ordering = iota

	// InvertedOrdering is m3 < m1 < m2.
	InvertedOrdering
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case NormalOrdering:
		return "NH"
	case InvertedOrdering:
		return "IH"
	default:
		return "Ordering(?)"
	}
}

// ParseOrdering maps the usual spellings to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "NH", "nh", "normal":
		return NormalOrdering, nil
	case "IH", "ih", "inverted":
		return InvertedOrdering, nil
	}
	return 0, ErrInvalidOrdering
}

// Oscillation splittings (eV²) and the cosmological sum bound (eV).
const (
	// DeltaM21Sq is the solar splitting m2² − m1².
	DeltaM21Sq = 7.53e-5

	// DeltaM32SqNH is the atmospheric splitting m3² − m2² for NH.
	DeltaM32SqNH = 2.455e-3

	// DeltaM32SqIH is |m3² − m2²| for IH.
	DeltaM32SqIH = 2.529e-3

	// SumBound is the cosmological ceiling on m1 + m2 + m3.
	SumBound = 0.082
)

// Sentinel errors.
var (
	// ErrInvalidOrdering is returned for an unknown Ordering value or
	// spelling.
	ErrInvalidOrdering = errors.New("neutrino: invalid mass ordering")

	// ErrInvalidMass is returned for a negative or non-finite lightest
	// mass.
	ErrInvalidMass = errors.New("neutrino: lightest mass must be finite and non-negative")
)

// Masses returns (m1, m2, m3) in eV for the given lightest mass and
// ordering. NH anchors m1, IH anchors m3.
func Masses(lightest float64, ord Ordering) ([3]float64, error) {
	if lightest < 0 || math.IsInf(lightest, 0) || math.IsNaN(lightest) {
		return [3]float64{}, ErrInvalidMass
	}
	switch ord {
	case NormalOrdering:
		m1 := lightest
		m2 := math.Sqrt(m1*m1 + DeltaM21Sq)
		m3 := math.Sqrt(m2*m2 + DeltaM32SqNH)
		return [3]float64{m1, m2, m3}, nil
	case InvertedOrdering:
		m3 := lightest
		m2 := math.Sqrt(m3*m3 + DeltaM32SqIH)
		m1 := math.Sqrt(m2*m2 - DeltaM21Sq)
		return [3]float64{m1, m2, m3}, nil
	}
	return [3]float64{}, ErrInvalidOrdering
}

// Sum returns m1 + m2 + m3.
func Sum(m [3]float64) float64 { return m[0] + m[1] + m[2] }

// AllowedLightest returns the largest lightest mass whose spectrum
// satisfies Σm ≤ SumBound, and whether any value is allowed at all
// (the minimal IH sum already exceeds tight bounds). The search is a
// bisection on [0, SumBound]; Σm is strictly increasing in the
// lightest mass.
func AllowedLightest(ord Ordering) (float64, bool) {
	sumAt := func(l float64) float64 {
		m, err := Masses(l, ord)
		if err != nil {
			return math.Inf(1)
		}
		return Sum(m)
	}
	if sumAt(0) > SumBound {
		return 0, false
	}
	lo, hi := 0.0, SumBound
	if sumAt(hi) <= SumBound {
		return hi, true
	}
	for i := 0; i < 200 && hi-lo > 1e-12; i++ {
		mid := 0.5 * (lo + hi)
		if sumAt(mid) <= SumBound {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, true
}
