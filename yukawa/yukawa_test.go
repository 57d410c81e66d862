package yukawa_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpkk/warp"
	"github.com/katalvlaran/warpkk/yukawa"
)

// benchmarkPoint matches the published warped-seesaw benchmark:
// c_L = 0.58, c_E = (0.75, 0.60, 0.50), c_N = 0.27, M_N = 1.22e18 GeV.
const (
	benchCL = 0.58
	benchCN = 0.27
	benchMN = 1.22e18
)

var benchCE = [3]float64{0.75, 0.60, 0.50}

// TestCharged_Benchmark pins the charged-lepton inversion to the
// published overlaps and couplings.
func TestCharged_Benchmark(t *testing.T) {
	geo := warp.DefaultGeometry()

	res, err := yukawa.Charged(geo, benchCL, benchCE, yukawa.ChargedLeptonMasses())
	require.NoError(t, err)

	assert.InDelta(t, 0.01598, res.FL, 1e-4)
	assert.InDelta(t, 2.94, res.Ybar[0], 0.02)
	assert.InDelta(t, 4.37, res.Ybar[1], 0.02)
	assert.InDelta(t, 5.42, res.Ybar[2], 0.02)
}

// TestCharged_MassScaling verifies the inversion is linear in the
// target mass at fixed localization.
func TestCharged_MassScaling(t *testing.T) {
	geo := warp.DefaultGeometry()
	masses := yukawa.ChargedLeptonMasses()

	base, err := yukawa.Charged(geo, benchCL, benchCE, masses)
	require.NoError(t, err)

	for i := range masses {
		masses[i] *= 2
	}
	doubled, err := yukawa.Charged(geo, benchCL, benchCE, masses)
	require.NoError(t, err)

	for i := range base.Ybar {
		assert.InEpsilon(t, 2*base.Ybar[i], doubled.Ybar[i], 1e-12)
	}
}

// TestCharged_InvalidInputs covers the parameter gate.
func TestCharged_InvalidInputs(t *testing.T) {
	geo := warp.DefaultGeometry()

	cases := map[string]struct {
		cL     float64
		masses [3]float64
	}{
		"zero mass":     {benchCL, [3]float64{0, 1, 1}},
		"negative mass": {benchCL, [3]float64{1, -1, 1}},
		"NaN c":         {math.NaN(), [3]float64{1, 1, 1}},
	}
	for name, tc := range cases {
		_, err := yukawa.Charged(geo, tc.cL, benchCE, tc.masses)
		assert.ErrorIs(t, err, yukawa.ErrInvalidParameter, name)
	}
}

// TestCharged_UVLocalized rejects a doublet pushed so far to the UV
// brane that its IR overlap underflows to zero.
func TestCharged_UVLocalized(t *testing.T) {
	geo := warp.DefaultGeometry()

	// f_IR² = (1/2 − c)/(1 − ε^{1−2c}) < 0 for c > 1/2, floored to 0.
	_, err := yukawa.Charged(geo, 30.0, benchCE, yukawa.ChargedLeptonMasses())
	assert.ErrorIs(t, err, yukawa.ErrVanishingOverlap)
}

// TestNeutrinoDirac_Benchmark pins the seesaw inversion, lightest
// mass 0.002 eV with normal-ordering partners.
func TestNeutrinoDirac_Benchmark(t *testing.T) {
	geo := warp.DefaultGeometry()
	masses := [3]float64{0.002, 0.008905, 0.050342} // eV, NH

	res, err := yukawa.NeutrinoDirac(geo, benchCL, benchCN, masses, benchMN)
	require.NoError(t, err)

	assert.InDelta(t, 0.4796, res.FN, 1e-3)
	assert.InDelta(t, 1.233e-4, res.FNUV, 1e-6)
	assert.InDelta(t, 0.204, res.Ybar[0], 2e-3)
	assert.InDelta(t, 0.431, res.Ybar[1], 2e-3)
	assert.InDelta(t, 1.024, res.Ybar[2], 2e-3)
}

// TestNeutrinoDirac_SeesawScaling checks Ȳ ∝ sqrt(m_ν·M_N).
func TestNeutrinoDirac_SeesawScaling(t *testing.T) {
	geo := warp.DefaultGeometry()
	masses := [3]float64{0.002, 0.009, 0.05}

	base, err := yukawa.NeutrinoDirac(geo, benchCL, benchCN, masses, benchMN)
	require.NoError(t, err)
	quadMass, err := yukawa.NeutrinoDirac(geo, benchCL, benchCN,
		[3]float64{4 * masses[0], 4 * masses[1], 4 * masses[2]}, benchMN)
	require.NoError(t, err)
	quadScale, err := yukawa.NeutrinoDirac(geo, benchCL, benchCN, masses, 4*benchMN)
	require.NoError(t, err)

	for i := range base.Ybar {
		assert.InEpsilon(t, 2*base.Ybar[i], quadMass.Ybar[i], 1e-12)
		assert.InEpsilon(t, 2*base.Ybar[i], quadScale.Ybar[i], 1e-12)
	}
}

// TestNeutrinoDirac_ZeroLightestAllowed accepts a massless lightest
// state (Ȳ_1 = 0 is physical, not an error).
func TestNeutrinoDirac_ZeroLightestAllowed(t *testing.T) {
	geo := warp.DefaultGeometry()

	res, err := yukawa.NeutrinoDirac(geo, benchCL, benchCN,
		[3]float64{0, 0.0087, 0.0502}, benchMN)
	require.NoError(t, err)
	assert.Zero(t, res.Ybar[0])
	assert.Greater(t, res.Ybar[1], 0.0)
}

// TestNeutrinoDirac_InvalidInputs covers the parameter gate.
func TestNeutrinoDirac_InvalidInputs(t *testing.T) {
	geo := warp.DefaultGeometry()
	masses := [3]float64{0.002, 0.009, 0.05}

	_, err := yukawa.NeutrinoDirac(geo, benchCL, benchCN, masses, 0)
	assert.ErrorIs(t, err, yukawa.ErrInvalidParameter)
	_, err = yukawa.NeutrinoDirac(geo, benchCL, benchCN, [3]float64{-1, 0.009, 0.05}, benchMN)
	assert.ErrorIs(t, err, yukawa.ErrInvalidParameter)
	_, err = yukawa.NeutrinoDirac(geo, math.Inf(1), benchCN, masses, benchMN)
	assert.ErrorIs(t, err, yukawa.ErrInvalidParameter)
}

// TestPerturbativity exercises the window classifiers.
func TestPerturbativity(t *testing.T) {
	assert.True(t, yukawa.IsPerturbative([]float64{0.2, -3.9, 1.0}))
	assert.False(t, yukawa.IsPerturbative([]float64{0.2, 4.0, 1.0}))

	assert.True(t, yukawa.IsNatural([]float64{0.1, 3.99, -1}))
	assert.False(t, yukawa.IsNatural([]float64{0.09, 1, 1}))
	assert.False(t, yukawa.IsNatural([]float64{1, 1, 4}))
	assert.False(t, yukawa.IsNatural(nil))

	assert.InDelta(t, 3.9, yukawa.MaxAbs([]float64{0.2, -3.9, 1.0}), 1e-15)
	assert.Zero(t, yukawa.MaxAbs(nil))
}
