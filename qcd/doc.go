// Package qcd evolves the strong coupling α_s(μ) by integrating the
// MS-bar renormalization group equation.
//
// 🚀 The RG equation in t = ln μ² reads
//
//	dα_s/dt = β(α_s) = −(α_s²/4π)·Σ_i β_i·(α_s/4π)^i
//
// with β coefficients known through four loops (van Ritbergen,
// Vermaseren, Larin). The number of active flavors n_f changes at the
// quark mass thresholds (1.27, 4.18, 163.5 GeV); the coupling is
// matched across each with the Chetyrkin–Kühn–Steinhauser decoupling
// constants at μ = m_h, where the logarithmic terms vanish.
//
// ✨ The integrator is an adaptive Dormand–Prince RK45 written here:
// the evolution is a scalar ODE over a handful of smooth segments, no
// general-purpose ODE library is carried for it.
//
// ⚙️ Usage:
//
//	a, err := qcd.AlphaS(1000.0)                    // 4-loop default
//	a3, err := qcd.AlphaS(1000.0, qcd.WithLoops(3)) // ≈ 0.0884
//
// The boundary condition is α_s(M_Z) = 0.1180 (PDG world average),
// overridable via WithReference. All functions are pure.
package qcd
