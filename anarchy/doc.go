// Package anarchy samples and scores anarchic Yukawa textures.
//
// The anarchic prior treats every entry of a 3×3 Yukawa matrix as
// i.i.d.: log-uniform magnitude in a band (default [1/3, 3]) and
// uniform phase. Candidate textures are ranked by a score
//
//	score = −w_band·p_band − w_cond·ln²(cond) − w_fit·χ²
//
// where p_band sums squared log-distances of entries outside the
// band, cond is the singular value ratio σ_max/σ_min of the neutrino
// texture, and χ² is an optional external fit. Sampling is
// deterministic given a seed.
package anarchy
