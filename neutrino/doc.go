// Package neutrino provides the observed neutrino mass spectrum and
// the PMNS mixing matrix in the PDG parameterization.
//
// Oscillation data fix the two squared splittings but not the
// absolute scale, so the spectrum is parameterized by the lightest
// mass and the ordering:
//
//   - Normal (NH):   m1 < m2 < m3, m2² = m1² + Δm²₂₁,
//     m3² = m2² + Δm²₃₂.
//   - Inverted (IH): m3 < m1 < m2, m2² = m3² + Δm²₃₂,
//     m1² = m2² − Δm²₂₁.
//
// Cosmology bounds the sum Σm_i; AllowedLightest finds the largest
// lightest mass compatible with it. All masses are in eV.
//
// PMNS builds U = R23·U13(δ)·R12·diag(1, e^{iα/2}, e^{iβ/2}) from the
// PDG best-fit angles, with the CP phase δ depending on the ordering.
package neutrino
