package qcd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpkk/qcd"
)

// TestBetaCoefficients pins the closed-form values.
func TestBetaCoefficients(t *testing.T) {
	assert.InDelta(t, 11.0, qcd.Beta0(0), 1e-12)
	assert.InDelta(t, 23.0/3.0, qcd.Beta0(5), 1e-12)
	assert.InDelta(t, 7.0, qcd.Beta0(6), 1e-12)
	assert.InDelta(t, 116.0/3.0, qcd.Beta1(5), 1e-12)
	assert.InDelta(t, 2857.0/2.0, qcd.Beta2(0), 1e-9)
}

// TestAlphaS_Identity returns the boundary value at the reference
// scale without integrating.
func TestAlphaS_Identity(t *testing.T) {
	a, err := qcd.AlphaS(qcd.MZ)
	require.NoError(t, err)
	assert.InDelta(t, qcd.AlphaSMZ, a, 1e-12)
}

// TestAlphaS_AsymptoticFreedom checks monotone decrease toward the
// ultraviolet.
func TestAlphaS_AsymptoticFreedom(t *testing.T) {
	aMZ, err := qcd.AlphaS(qcd.MZ)
	require.NoError(t, err)
	a1, err := qcd.AlphaS(1000.0)
	require.NoError(t, err)
	a10, err := qcd.AlphaS(10000.0)
	require.NoError(t, err)

	assert.Less(t, a1, aMZ)
	assert.Less(t, a10, a1)
}

// TestAlphaS_ReferencePoints3Loop pins the 3-loop values against
// RunDec-class references.
func TestAlphaS_ReferencePoints3Loop(t *testing.T) {
	cases := []struct {
		mu   float64
		want float64
	}{
		{qcd.MTopPole, 0.1078},
		{1000.0, 0.0884},
		{3000.0, 0.0810},
		{10000.0, 0.0718},
	}
	for _, tc := range cases {
		a, err := qcd.AlphaS(tc.mu, qcd.WithLoops(3))
		require.NoError(t, err)
		assert.InDelta(t, tc.want, a, 0.002, "mu=%g", tc.mu)
	}
}

// TestAlphaS_LoopConvergence checks the loop expansion settles.
func TestAlphaS_LoopConvergence(t *testing.T) {
	a1, err := qcd.AlphaS(1000.0, qcd.WithLoops(1))
	require.NoError(t, err)
	a2, err := qcd.AlphaS(1000.0, qcd.WithLoops(2))
	require.NoError(t, err)
	a3, err := qcd.AlphaS(1000.0, qcd.WithLoops(3))
	require.NoError(t, err)

	assert.Less(t, math.Abs(a1-a3)/a3, 0.02)
	assert.Less(t, math.Abs(a2-a3)/a3, 0.005)
}

// TestAlphaS_OneLoopAnalytic compares the integrator against the
// closed 1-loop solution at fixed n_f = 5 (thresholds disabled):
// α(μ) = α₀ / (1 + α₀·β₀/(4π)·ln(μ²/μ₀²)).
func TestAlphaS_OneLoopAnalytic(t *testing.T) {
	mu := 500.0
	logRatio := 2 * math.Log(mu/qcd.MZ)
	want := qcd.AlphaSMZ / (1 + qcd.AlphaSMZ*qcd.Beta0(5)/(4*math.Pi)*logRatio)

	got, err := qcd.AlphaS(mu, qcd.WithLoops(1), qcd.WithThresholds(nil))
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-6)
}

// TestAlphaS_ThresholdContinuity checks the coupling is continuous
// to a few 1e-4 across the top threshold (the decoupling correction
// is per-mille level).
func TestAlphaS_ThresholdContinuity(t *testing.T) {
	below, err := qcd.AlphaS(qcd.MTopMS - 0.01)
	require.NoError(t, err)
	above, err := qcd.AlphaS(qcd.MTopMS + 0.01)
	require.NoError(t, err)

	assert.InEpsilon(t, below, above, 5e-4)
}

// TestAlphaS_DownwardRunning evolves below all thresholds; the
// coupling grows toward the infrared.
func TestAlphaS_DownwardRunning(t *testing.T) {
	a, err := qcd.AlphaS(2.0, qcd.WithLoops(3))
	require.NoError(t, err)
	assert.Greater(t, a, 0.25)
	assert.Less(t, a, 0.5)
}

// TestAlphaS_CustomReference pins an alternative boundary condition.
func TestAlphaS_CustomReference(t *testing.T) {
	a, err := qcd.AlphaS(qcd.MZ, qcd.WithReference(0.118, 1000.0), qcd.WithLoops(2))
	require.NoError(t, err)
	// Running down from a 1 TeV boundary must increase the coupling.
	assert.Greater(t, a, 0.118)
}

// TestAlphaS_InvalidInputs covers the error and panic gates.
func TestAlphaS_InvalidInputs(t *testing.T) {
	_, err := qcd.AlphaS(-1.0)
	assert.ErrorIs(t, err, qcd.ErrInvalidParameter)
	_, err = qcd.AlphaS(0)
	assert.ErrorIs(t, err, qcd.ErrInvalidParameter)
	_, err = qcd.AlphaS(math.NaN())
	assert.ErrorIs(t, err, qcd.ErrInvalidParameter)

	assert.Panics(t, func() { qcd.WithLoops(5) })
	assert.Panics(t, func() { qcd.WithMatchingLoops(4) })
	assert.Panics(t, func() { qcd.WithReference(-0.1, 91.0) })
	assert.Panics(t, func() { qcd.WithTolerances(0, 1e-12) })
}
