package warp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpkk/warp"
)

// TestNewGeometry_Benchmark checks the Planck-to-3-TeV point.
func TestNewGeometry_Benchmark(t *testing.T) {
	g, err := warp.NewGeometry(warp.MPlanck, 3000.0)
	require.NoError(t, err)

	assert.InEpsilon(t, 3000.0/warp.MPlanck, g.Epsilon, 1e-14)
	assert.InEpsilon(t, -math.Log(g.Epsilon), g.WarpLog, 1e-14)
	assert.InEpsilon(t, 1.0/warp.MPlanck, g.ZUV, 1e-14)
	assert.InEpsilon(t, 1.0/3000.0, g.ZIR, 1e-14)
	assert.Greater(t, g.ZIR, g.ZUV, "z_IR > z_UV in a warped hierarchy")
	assert.True(t, g.Epsilon > 0 && g.Epsilon < 1)
	// warp_log = ln(1.2209e19/3000) ≈ 35.94.
	assert.InDelta(t, 35.94, g.WarpLog, 0.05)
}

// TestNewGeometry_InvalidScales rejects degenerate hierarchies.
func TestNewGeometry_InvalidScales(t *testing.T) {
	cases := []struct{ k, lam float64 }{
		{0, 3000},
		{-1, 3000},
		{1e19, 0},
		{1e19, -5},
		{3000, 3000},  // epsilon == 1
		{3000, 1e19},  // epsilon > 1
		{math.NaN(), 3000},
		{1e19, math.NaN()},
	}
	for _, tc := range cases {
		_, err := warp.NewGeometry(tc.k, tc.lam)
		assert.ErrorIs(t, err, warp.ErrInvalidScales, "k=%g Λ=%g", tc.k, tc.lam)
	}
}

// TestFIR_BenchmarkValues reproduces the Perez–Randall overlap factors
// at Λ_IR = 3 TeV.
func TestFIR_BenchmarkValues(t *testing.T) {
	g := warp.DefaultGeometry()

	assert.InDelta(t, 0.01598, warp.FIR(0.58, g.Epsilon), 2e-5, "f_L at c=0.58")
	assert.InDelta(t, 0.4796, warp.FIR(0.27, g.Epsilon), 2e-4, "f_N at c=0.27")
	assert.InDelta(t, 1.232e-4, warp.FUV(0.27, g.Epsilon), 2e-7, "f_N^UV at c=0.27")
}

// TestFIR_HalfLimit verifies the continuous c → 1/2 switchover.
func TestFIR_HalfLimit(t *testing.T) {
	g := warp.DefaultGeometry()
	limit := math.Sqrt(1.0 / (2.0 * g.WarpLog))

	assert.InEpsilon(t, limit, warp.FIR(0.5, g.Epsilon), 1e-12)
	assert.InEpsilon(t, limit, warp.FUV(0.5, g.Epsilon), 1e-12)
	// Approaching from both sides stays close to the limit.
	assert.InEpsilon(t, limit, warp.FIR(0.5+1e-7, g.Epsilon), 1e-4)
	assert.InEpsilon(t, limit, warp.FIR(0.5-1e-7, g.Epsilon), 1e-4)
}

// TestFIR_Monotonicity: IR localization grows as c drops below 1/2.
func TestFIR_Monotonicity(t *testing.T) {
	g := warp.DefaultGeometry()
	prev := warp.FIR(0.9, g.Epsilon)
	for c := 0.8; c >= 0.1; c -= 0.1 {
		cur := warp.FIR(c, g.Epsilon)
		assert.Greater(t, cur, prev, "f_IR must grow toward the IR at c=%g", c)
		prev = cur
	}
}
