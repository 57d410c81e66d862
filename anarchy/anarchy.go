package anarchy

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/warpkk/diag"
)

// ErrInvalidParameter is returned for an empty band, inverted ranges
// or a non-positive sample count.
var ErrInvalidParameter = errors.New("anarchy: invalid parameter")

// Options configures the anarchic prior and the score weights.
type Options struct {
	// MagnitudeMin and MagnitudeMax bound the log-uniform entry
	// magnitudes.
	MagnitudeMin, MagnitudeMax float64

	// PhaseMin and PhaseMax bound the uniform phases (radians).
	PhaseMin, PhaseMax float64

	// OverallMin and OverallMax bound the log-uniform global neutrino
	// Yukawa normalization.
	OverallMin, OverallMax float64

	// WBand, WCond and WFit weight the score terms.
	WBand, WCond, WFit float64
}

// DefaultOptions is the v1 anarchic prior.
func DefaultOptions() Options {
	return Options{
		MagnitudeMin: 1.0 / 3.0,
		MagnitudeMax: 3.0,
		PhaseMin:     0,
		PhaseMax:     2 * math.Pi,
		OverallMin:   0.01,
		OverallMax:   0.2,
		WBand:        1,
		WCond:        1,
		WFit:         0,
	}
}

// Option mutates Options in the functional style.
type Option func(*Options)

// WithMagnitudeBand sets the magnitude band. Panics on an empty band
// (programmer error).
func WithMagnitudeBand(min, max float64) Option {
	if !(min > 0) || !(max > min) {
		panic("anarchy: WithMagnitudeBand requires 0 < min < max")
	}
	return func(o *Options) {
		o.MagnitudeMin = min
		o.MagnitudeMax = max
	}
}

// WithOverallRange sets the global normalization band.
func WithOverallRange(min, max float64) Option {
	if !(min > 0) || !(max > min) {
		panic("anarchy: WithOverallRange requires 0 < min < max")
	}
	return func(o *Options) {
		o.OverallMin = min
		o.OverallMax = max
	}
}

// WithWeights sets the score weights.
func WithWeights(band, cond, fit float64) Option {
	if band < 0 || cond < 0 || fit < 0 {
		panic("anarchy: WithWeights requires non-negative weights")
	}
	return func(o *Options) {
		o.WBand = band
		o.WCond = cond
		o.WFit = fit
	}
}

func (o Options) validate() error {
	if !(o.MagnitudeMin > 0) || !(o.MagnitudeMax > o.MagnitudeMin) ||
		!(o.PhaseMax > o.PhaseMin) ||
		!(o.OverallMin > 0) || !(o.OverallMax > o.OverallMin) {
		return ErrInvalidParameter
	}
	return nil
}

// State is one sampled anarchic candidate.
type State struct {
	// YtildeE and YtildeN are the charged-lepton and neutrino
	// textures.
	YtildeE, YtildeN *mat.CDense

	// OverallYN is the global neutrino Yukawa normalization.
	OverallYN float64

	// BandPenalty, CondPenalty and Score are the ranking metadata,
	// computed from YtildeN.
	BandPenalty float64
	CondPenalty float64
	Score       float64
}

// Sample draws n candidates from the anarchic prior, deterministic
// for a fixed seed. Candidates are scored with χ² = 0; rescore with
// Score after an external fit.
func Sample(n int, seed int64, opts ...Option) ([]State, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, ErrInvalidParameter
	}

	rng := rand.New(rand.NewSource(seed))
	states := make([]State, n)
	for i := range states {
		s := State{
			YtildeE:   sampleMatrix(rng, o),
			YtildeN:   sampleMatrix(rng, o),
			OverallYN: logUniform(rng, o.OverallMin, o.OverallMax),
		}
		s.BandPenalty = BandPenalty(s.YtildeN, o.MagnitudeMin, o.MagnitudeMax)
		s.CondPenalty = CondPenalty(s.YtildeN)
		s.Score = Score(s.BandPenalty, s.CondPenalty, 0, o)
		states[i] = s
	}
	return states, nil
}

// BandPenalty sums squared log-distances of entry magnitudes outside
// [min, max]; zero when every entry sits inside the band.
func BandPenalty(m *mat.CDense, min, max float64) float64 {
	r, c := m.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			la := math.Log(cmplx.Abs(m.At(i, j)))
			if up := la - math.Log(max); up > 0 {
				sum += up * up
			}
			if lo := math.Log(min) - la; lo > 0 {
				sum += lo * lo
			}
		}
	}
	return sum
}

// CondPenalty is ln²(σ_max/σ_min) of the texture; +Inf for a singular
// or unfactorizable matrix.
func CondPenalty(m *mat.CDense) float64 {
	res, err := diag.SVD(m)
	if err != nil {
		return math.Inf(1)
	}
	smin := res.Values[len(res.Values)-1]
	if !(smin > 0) {
		return math.Inf(1)
	}
	l := math.Log(res.Values[0] / smin)
	return l * l
}

// Score combines the penalties under the configured weights.
func Score(bandPenalty, condPenalty, chi2 float64, o Options) float64 {
	return -o.WBand*bandPenalty - o.WCond*condPenalty - o.WFit*chi2
}

// sampleMatrix draws a 3×3 texture from the prior.
func sampleMatrix(rng *rand.Rand, o Options) *mat.CDense {
	m := mat.NewCDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mag := logUniform(rng, o.MagnitudeMin, o.MagnitudeMax)
			phase := o.PhaseMin + rng.Float64()*(o.PhaseMax-o.PhaseMin)
			m.Set(i, j, cmplx.Rect(mag, phase))
		}
	}
	return m
}

// logUniform draws exp(U(ln low, ln high)).
func logUniform(rng *rand.Rand, low, high float64) float64 {
	return math.Exp(math.Log(low) + rng.Float64()*(math.Log(high)-math.Log(low)))
}
