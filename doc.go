// Package warpkk is a numerical toolkit for a warped five-dimensional
// seesaw model: Kaluza-Klein spectra, zero-mode overlaps, Yukawa
// inversion and the parameter scans built on top of them.
//
// 🚀 What is warpkk?
//
//	A slice of AdS5 between a UV and an IR brane, explored end to end:
//		• Warped geometry: warp factor, brane scales, zero-mode overlaps
//		• Bessel machinery: real-order J/Y pairs and their zeros
//		• KK towers: gauge and fermion quantization conditions, Brent roots
//		• Diagonalization: complex SVD and Takagi factorization
//		• Yukawa inversion: charged leptons and the UV-brane seesaw
//		• Oscillation data: mass orderings, splittings, the PMNS matrix
//		• Constraints: mu -> e gamma dipole bound, alpha_s running
//		• Scans: concurrent bulk-mass sweeps with CSV/SQLite persistence
//
// ✨ Why choose warpkk?
//
//   - Closed-form where possible – overlaps and couplings are inverted
//     analytically, root finding only where quantization demands it
//   - Deterministic – scans and anarchy sampling reproduce bit-for-bit
//     from a seed and a grid
//   - Validated – every solver carries residual checks against its own
//     defining equation
//
// Under the hood, everything is organized per concern:
//
//	warp/     — geometry, warp factor and zero-mode overlap functions
//	bessel/   — real-order Bessel J/Y evaluation and zero location
//	kk/       — KK tower boundary-value solver
//	diag/     — complex SVD and Takagi diagonalization
//	yukawa/   — mass-to-coupling inversion (charged and neutrino)
//	neutrino/ — orderings, mass splittings and the PMNS matrix
//	lfv/      — the mu -> e gamma dipole bound
//	qcd/      — multi-loop alpha_s running with flavor thresholds
//	anarchy/  — seeded random Yukawa textures and their scoring
//	scan/     — grid sweeps, filters and result persistence
//	cmd/      — the warpkk workbench CLI
//
//	go get github.com/katalvlaran/warpkk
package warpkk
