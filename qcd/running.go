package qcd

import (
	"fmt"
	"math"
	"sort"
)

// segment is one smooth stretch of the evolution between thresholds.
type segment struct {
	tStart, tEnd float64
	nf           int
	// nfNext is the flavor count after the threshold at tEnd, or 0
	// when the segment ends at the target scale.
	nfNext int
	match  bool
}

// AlphaS evolves the strong coupling from the reference point to the
// scale mu (GeV) by integrating the β function in t = ln μ², matching
// across every flavor threshold between the two scales.
func AlphaS(mu float64, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return 0, err
	}
	if !(mu > 0) || math.IsInf(mu, 0) || math.IsNaN(mu) {
		return 0, fmt.Errorf("%w: mu must be positive, got %g", ErrInvalidParameter, mu)
	}
	if math.Abs(mu-o.MuRef) <= 1e-12*o.MuRef {
		return o.AlphaRef, nil
	}

	thresholds := append([]Threshold(nil), o.Thresholds...)
	sort.Slice(thresholds, func(i, j int) bool {
		return thresholds[i].Mass < thresholds[j].Mass
	})

	tRef := 2 * math.Log(o.MuRef)
	tTarget := 2 * math.Log(mu)
	up := tTarget > tRef

	// Thresholds strictly between the two scales, walked outward from
	// the reference.
	var crossings []Threshold
	for _, th := range thresholds {
		tc := 2 * math.Log(th.Mass)
		if (up && tRef < tc && tc < tTarget) || (!up && tTarget < tc && tc < tRef) {
			crossings = append(crossings, th)
		}
	}
	if !up {
		for i, j := 0, len(crossings)-1; i < j; i, j = i+1, j-1 {
			crossings[i], crossings[j] = crossings[j], crossings[i]
		}
	}

	segments := make([]segment, 0, len(crossings)+1)
	cursor := tRef
	nf := nfAtScale(o.MuRef, thresholds)
	for _, th := range crossings {
		next := th.NFAbove
		if !up {
			next = th.NFBelow
		}
		segments = append(segments, segment{
			tStart: cursor,
			tEnd:   2 * math.Log(th.Mass),
			nf:     nf,
			nfNext: next,
			match:  true,
		})
		cursor = 2 * math.Log(th.Mass)
		nf = next
	}
	segments = append(segments, segment{tStart: cursor, tEnd: tTarget, nf: nf})

	matching := o.matchingOrder()
	alpha := o.AlphaRef
	for _, seg := range segments {
		if math.Abs(seg.tEnd-seg.tStart) > 1e-14 {
			rhs := func(y float64) float64 { return betaRHS(y, seg.nf, o.Loops) }
			var err error
			alpha, err = integrateRK45(rhs, alpha, seg.tStart, seg.tEnd, o.RTol, o.ATol)
			if err != nil {
				return 0, fmt.Errorf("%w: segment n_f=%d [%g, %g]",
					ErrIntegration, seg.nf, math.Exp(seg.tStart/2), math.Exp(seg.tEnd/2))
			}
		}
		if seg.match && matching > 0 {
			alpha = matchAlphaS(alpha, seg.nf, seg.nfNext, matching)
		}
	}
	return alpha, nil
}

// nfAtScale returns the active flavor count at mu, 5 when thresholds
// are disabled.
func nfAtScale(mu float64, thresholds []Threshold) int {
	if len(thresholds) == 0 {
		return 5
	}
	nf := thresholds[0].NFBelow
	for _, th := range thresholds {
		if mu >= th.Mass {
			nf = th.NFAbove
		} else {
			break
		}
	}
	return nf
}
