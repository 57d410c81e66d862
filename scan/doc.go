// SPDX-License-Identifier: MIT

// Package scan sweeps the lepton-sector parameter space of the warped
// model.
//
// 🚀 A campaign fixes the geometry (Λ_IR), the Majorana scale and the
// neutrino spectrum, then walks the grid product of bulk mass
// parameters (c_L × c_N × c_E-triples). Every point is inverted to
// dimensionless Yukawa couplings and filtered:
//
//  1. perturbativity: max |Ȳ| < bound,
//  2. naturalness: every |Ȳ| inside the anarchic window,
//  3. μ→eγ: the lfv dipole bound.
//
// A numerical failure at a point marks that row rejected with the
// error recorded; it never aborts the sweep.
//
// ⚙️ Points are evaluated in parallel by a bounded errgroup; rows are
// written back by grid index, so output order is deterministic
// regardless of worker count. Each campaign carries a UUID run
// identifier stamped into every row. Results go to CSV and optionally
// to a SQLite file (pure-Go driver).
//
// Campaign configuration is YAML (see Config); Reclassify re-applies
// the filters to an existing result set under new thresholds without
// recomputing the physics.
package scan
