// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"
	"math"
	"strings"
)

// ReclassifyOptions are the thresholds re-applied to existing rows.
type ReclassifyOptions struct {
	// MaxYbar is the new perturbativity bound.
	MaxYbar float64

	// NaturalnessMin and NaturalnessMax are the new window edges.
	NaturalnessMin, NaturalnessMax float64

	// RequireLFV keeps the μ→eγ verdict in the combined flag; the
	// stored LFVRatio is reused, never recomputed.
	RequireLFV bool
}

// DefaultReclassifyOptions mirrors the scan defaults.
func DefaultReclassifyOptions() ReclassifyOptions {
	return ReclassifyOptions{
		MaxYbar:        4.0,
		NaturalnessMin: 0.1,
		NaturalnessMax: 4.0,
		RequireLFV:     true,
	}
}

func (o ReclassifyOptions) validate() error {
	if !(o.MaxYbar > 0) {
		return fmt.Errorf("%w: max_y_bar must be positive", ErrInvalidConfig)
	}
	if !(o.NaturalnessMin > 0) || o.NaturalnessMax < o.NaturalnessMin {
		return fmt.Errorf("%w: naturalness window must satisfy 0 < min <= max",
			ErrInvalidConfig)
	}
	return nil
}

// ReclassifySummary reports the verdict delta.
type ReclassifySummary struct {
	// Total is the row count.
	Total int

	// AcceptedBefore and AcceptedAfter count PassesAll on input and
	// output.
	AcceptedBefore, AcceptedAfter int

	// Flipped counts rows whose combined verdict changed.
	Flipped int
}

// Reclassify re-applies the filters to rows under new thresholds
// without recomputing the physics, updating the verdict fields in
// place. Rows that failed evaluation (error reject reason, NaN
// couplings) stay rejected.
func Reclassify(rows []Row, opts ReclassifyOptions) (ReclassifySummary, error) {
	if err := opts.validate(); err != nil {
		return ReclassifySummary{}, err
	}

	sum := ReclassifySummary{Total: len(rows)}
	for i := range rows {
		r := &rows[i]
		if r.PassesAll {
			sum.AcceptedBefore++
		}
		before := r.PassesAll

		if strings.HasPrefix(r.RejectReason, "error:") || anyNaN(r.YbarE, r.YbarN) {
			r.PassesAll = false
			if r.PassesAll != before {
				sum.Flipped++
			}
			continue
		}

		all := append(append([]float64{}, r.YbarE[:]...), r.YbarN[:]...)
		maxY, minY := extrema(all)
		r.MaxYbar = maxY

		var reasons []string
		r.Perturbative = maxY < opts.MaxYbar
		if !r.Perturbative {
			reasons = append(reasons, "perturbativity")
		}
		r.Natural = minY >= opts.NaturalnessMin && maxY <= opts.NaturalnessMax
		if !r.Natural {
			reasons = append(reasons, "naturalness")
		}
		if opts.RequireLFV {
			r.LFVPasses = !math.IsNaN(r.LFVRatio) && r.LFVRatio <= 1.0
			if !r.LFVPasses {
				reasons = append(reasons, "mu_to_e_gamma")
			}
		}

		r.PassesAll = len(reasons) == 0
		r.RejectReason = strings.Join(reasons, ";")
		if r.PassesAll {
			sum.AcceptedAfter++
		}
		if r.PassesAll != before {
			sum.Flipped++
		}
	}
	return sum, nil
}

// ReclassifyCSV reads a result file, reclassifies it and writes the
// updated rows to outPath.
func ReclassifyCSV(inPath, outPath string, opts ReclassifyOptions) (ReclassifySummary, error) {
	rows, err := ReadCSV(inPath)
	if err != nil {
		return ReclassifySummary{}, err
	}
	sum, err := Reclassify(rows, opts)
	if err != nil {
		return ReclassifySummary{}, err
	}
	if err := WriteCSV(outPath, rows); err != nil {
		return ReclassifySummary{}, err
	}
	return sum, nil
}

func anyNaN(vecs ...[3]float64) bool {
	for _, v := range vecs {
		for _, x := range v {
			if math.IsNaN(x) {
				return true
			}
		}
	}
	return false
}
