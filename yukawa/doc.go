// Package yukawa inverts the observed lepton spectrum to 5D Yukawa
// couplings in the warped geometry.
//
// 🚀 What it does:
//
//	The 4D mass of a bulk fermion zero mode factorizes into a
//	dimensionless 5D coupling and the brane overlaps of its
//	wavefunctions. Given target masses and localization parameters c,
//	the package runs that relation backwards:
//
//	  - Charged leptons: m_i = v·Ȳ_i·f_L·f_Ei, so Ȳ_i follows
//	    directly per generation.
//	  - Neutrinos: with a UV-localized Majorana scale M_N the light
//	    masses arise from a seesaw, m_ν ∝ (Ȳ_N v f_L f_N)²/(f_UV² M_N);
//	    inversion gives Ȳ_N per generation from a target mass.
//
// ✨ The dimensionless Ȳ = 2k·Y₅ is what perturbativity bounds speak
// about: |Ȳ| < 4 keeps the 5D theory under control, and anarchic
// models prefer the window [0.1, 4].
//
// ⚙️ Usage:
//
//	geo := warp.DefaultGeometry()
//	ch, err := yukawa.Charged(geo, 0.58, [3]float64{0.75, 0.60, 0.50},
//	    yukawa.ChargedLeptonMasses())
//	// ch.Ybar holds (Ȳ_e, Ȳ_μ, Ȳ_τ)
//
// All functions are pure. Masses are GeV for charged leptons and eV
// for neutrinos (the scales the inputs are quoted in).
package yukawa
