package yukawa

import (
	"errors"
	"math"

	"github.com/katalvlaran/warpkk/warp"
)

// Sentinel errors.
var (
	// ErrInvalidParameter is returned for non-positive masses or
	// Majorana scale, or non-finite localization parameters.
	ErrInvalidParameter = errors.New("yukawa: invalid parameter")

	// ErrVanishingOverlap is returned when a brane overlap factor is
	// zero and the inversion would divide by it (c on the wrong side
	// of 1/2 for the requested brane).
	ErrVanishingOverlap = errors.New("yukawa: zero-mode overlap vanishes")
)

// PDG charged-lepton masses (GeV).
const (
	MElectron = 0.51099895e-3
	MMuon     = 105.6583755e-3
	MTau      = 1.77686
)

// eVToGeV converts neutrino masses quoted in eV.
const eVToGeV = 1e-9

// Perturbativity limits on the dimensionless coupling Ȳ.
const (
	// PerturbativityBound is the loss-of-control ceiling |Ȳ| < 4.
	PerturbativityBound = 4.0

	// NaturalnessFloor is the lower edge of the anarchic window.
	NaturalnessFloor = 0.1
)

// ChargedLeptonMasses returns (m_e, m_μ, m_τ) in GeV.
func ChargedLeptonMasses() [3]float64 {
	return [3]float64{MElectron, MMuon, MTau}
}

// ChargedResult is the charged-lepton inversion output.
type ChargedResult struct {
	// FL is the lepton-doublet IR overlap f_L(c_L, ε).
	FL float64

	// FE are the singlet IR overlaps f_E(c_Ei, ε) per generation.
	FE [3]float64

	// Ybar are the dimensionless couplings Ȳ_i = m_i/(v·f_L·f_Ei).
	Ybar [3]float64
}

// Charged inverts the charged-lepton masses (GeV) to dimensionless 5D
// Yukawa couplings for doublet localization cL and singlet
// localizations cE.
func Charged(geo warp.Geometry, cL float64, cE [3]float64, masses [3]float64) (ChargedResult, error) {
	if !isFinite(cL) || !allFinite(cE[:]) {
		return ChargedResult{}, ErrInvalidParameter
	}
	for _, m := range masses {
		if !(m > 0) || math.IsInf(m, 0) {
			return ChargedResult{}, ErrInvalidParameter
		}
	}

	res := ChargedResult{FL: warp.FIR(cL, geo.Epsilon)}
	if res.FL == 0 {
		return ChargedResult{}, ErrVanishingOverlap
	}
	for i, c := range cE {
		res.FE[i] = warp.FIR(c, geo.Epsilon)
		if res.FE[i] == 0 {
			return ChargedResult{}, ErrVanishingOverlap
		}
		res.Ybar[i] = masses[i] / (warp.VEWSB * res.FL * res.FE[i])
	}
	return res, nil
}

// NeutrinoResult is the seesaw inversion output.
type NeutrinoResult struct {
	// FL is the lepton-doublet IR overlap.
	FL float64

	// FN is the right-handed neutrino IR overlap f_N(c_N, ε).
	FN float64

	// FNUV is the right-handed neutrino UV overlap entering the
	// Majorana term.
	FNUV float64

	// Ybar are the dimensionless Dirac couplings Ȳ_N per generation.
	Ybar [3]float64
}

// NeutrinoDirac inverts light neutrino masses (eV) to dimensionless
// Dirac couplings, assuming a UV-brane Majorana mass mMajorana (GeV)
// common to all generations. The seesaw relation
//
//	m_ν = (Ȳ_N·v·f_L·f_N)² / (2·f_UV²·M_N)
//
// is solved for Ȳ_N per generation:
//
//	Ȳ_N = f_UV·sqrt(2·m_ν·M_N) / (v·f_L·f_N).
func NeutrinoDirac(geo warp.Geometry, cL, cN float64, massesEV [3]float64, mMajorana float64) (NeutrinoResult, error) {
	if !isFinite(cL) || !isFinite(cN) || !(mMajorana > 0) || math.IsInf(mMajorana, 0) {
		return NeutrinoResult{}, ErrInvalidParameter
	}
	for _, m := range massesEV {
		if m < 0 || math.IsInf(m, 0) || math.IsNaN(m) {
			return NeutrinoResult{}, ErrInvalidParameter
		}
	}

	res := NeutrinoResult{
		FL:   warp.FIR(cL, geo.Epsilon),
		FN:   warp.FIR(cN, geo.Epsilon),
		FNUV: warp.FUV(cN, geo.Epsilon),
	}
	if res.FL == 0 || res.FN == 0 {
		return NeutrinoResult{}, ErrVanishingOverlap
	}
	denom := warp.VEWSB * res.FL * res.FN
	for i, mEV := range massesEV {
		mGeV := mEV * eVToGeV
		res.Ybar[i] = res.FNUV * math.Sqrt(2*mGeV*mMajorana) / denom
	}
	return res, nil
}

// MaxAbs returns max |y_i| (0 for an empty slice).
func MaxAbs(ybar []float64) float64 {
	m := 0.0
	for _, y := range ybar {
		if a := math.Abs(y); a > m {
			m = a
		}
	}
	return m
}

// IsPerturbative reports whether every coupling sits below the
// perturbativity ceiling.
func IsPerturbative(ybar []float64) bool {
	return MaxAbs(ybar) < PerturbativityBound
}

// IsNatural reports whether every coupling sits inside the anarchic
// window [0.1, 4].
func IsNatural(ybar []float64) bool {
	for _, y := range ybar {
		a := math.Abs(y)
		if a < NaturalnessFloor || a >= PerturbativityBound {
			return false
		}
	}
	return len(ybar) > 0
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if !isFinite(x) {
			return false
		}
	}
	return true
}
