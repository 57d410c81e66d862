// Package lfv checks the μ→eγ dipole-operator constraint on the
// neutrino Yukawa couplings.
//
// In the charged-lepton mass basis the neutrino Yukawa matrix is
// Ȳ_N = U·diag(Ȳ_{N_i}) with U the PMNS matrix, and the Hermitian
// product Ȳ_N·Ȳ_N† = U·diag(Ȳ²)·U† carries off-diagonal entries that
// mediate lepton flavor violation. The μ→eγ rate is controlled by the
// (1,2) element, bounded by
//
//	|(Ȳ_N Ȳ_N†)₁₂| ≤ C · (M_KK / 3 TeV)²
//
// with C = 0.028 from naive dimensional analysis of the dipole
// operator. Tighter experimental branching-ratio limits translate to
// smaller C through BR = 4e-8·|(Ȳ_N Ȳ_N†)₁₂|² at the reference scale
// (CoefficientFromBRLimit).
//
// Check takes the full complex Yukawa matrix; CheckRaw rebuilds it
// from eigenvalues and a PMNS matrix. Both return the two sides of
// the bound plus the verdict.
package lfv
