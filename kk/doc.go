// Package kk solves the transcendental Bessel boundary-condition
// equations that quantize Kaluza–Klein (KK) towers in a slice of AdS₅
// bounded by a UV and an IR brane.
//
// 🚀 What does it solve?
//
//	A bulk field with boundary conditions on both branes has a discrete
//	spectrum m_n = x_n·Λ_IR, where the dimensionless x_n are roots of
//
//	    F(x) = J_ν(x)·Y_ν(ε·x) − J_ν(ε·x)·Y_ν(x) = 0     (exact)
//	    F(x) = J_ν(x) = 0                                 (IR-only)
//
//	with warp factor ε = z_UV/z_IR as small as ~1e-16. The cross-product
//	form is essential: the naive ratio J_ν/Y_ν blows up at the zero
//	crossings of Y_ν and as its argument → 0.
//
// ✨ Key features:
//   - closed species × boundary-condition variants (gauge/NN,
//     fermion/++, fermion/--) validated at construction — illegal pairs
//     never reach the root finder
//   - seeds from exact J_ν zeros (integer ν) or McMahon asymptotics
//     (fractional ν), verified sign-change brackets with a bounded
//     widening budget, Brent–Dekker per bracket
//   - both ±1/2 bulk-mass shift conventions (OrderConvention) — the
//     physics literature has not settled the sign, so neither does this
//     package
//   - per-mode Bessel mixing coefficients b_n
//   - zero modes flagged (Spectrum.HasZeroMode), never mixed into the
//     massive tower
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/warpkk/kk"
//	    "github.com/katalvlaran/warpkk/warp"
//	)
//
//	geo := warp.DefaultGeometry()
//	field, err := kk.NewFermion(kk.BCPlusPlus, 0.45)
//	spec, err := kk.Solve(field, geo, kk.WithNumRoots(5))
//	fmt.Println(spec.Masses) // GeV, strictly increasing
//
// Determinism: identical inputs produce bit-identical spectra; there is
// no randomness, caching, or global state. Safe for concurrent use.
//
// Errors: ErrInvalidBoundaryCondition, ErrInvalidParameter,
// ErrRootBracketing (see types.go for the full taxonomy).
package kk
