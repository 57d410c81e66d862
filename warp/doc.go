// SPDX-License-Identifier: MIT

// Package warp derives the fixed geometry of a Randall–Sundrum slice
// from the two input scales (AdS curvature k, IR scale Λ_IR) and
// evaluates fermion zero-mode overlap factors on the branes.
//
// The geometry is immutable once built:
//
//	ε        = Λ_IR / k                   (warp factor, 0 < ε < 1)
//	warp_log = −ln ε  = π k r_c
//	r_c      = warp_log / (π k)           (orbifold radius)
//	z_UV     = 1/k                        (UV brane, conformal coord)
//	z_IR     = 1/Λ_IR                     (IR brane, conformal coord)
//
// Overlap factors for a bulk fermion with mass parameter c:
//
//	f_IR(c, ε)² = (1/2 − c) / (1 − ε^{1−2c})
//	f_UV(c, ε)² = (1/2 − c) / (ε^{2c−1} − 1)
//
// both with the c → 1/2 limit 1/(−2 ln ε).
//
// All functions are pure; Geometry values are safe to share.
package warp
