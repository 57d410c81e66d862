// Package bessel evaluates cylindrical Bessel functions J_ν and Y_ν of
// real (fractional, possibly negative) order, their first derivatives,
// and the positive zeros of J_ν.
//
// 🚀 Why a dedicated kernel?
//
//	The Go standard library only ships integer-order J and Y (math.Jn,
//	math.Yn), and gonum carries no real-order cylinder functions at all.
//	Warped-geometry boundary conditions need J_ν and Y_ν at orders like
//	ν = |c + 1/2| − 1 for arbitrary real bulk mass c, evaluated stably for
//	arguments spanning fifteen decades (down to ε·x ~ 1e-16).
//
// ✨ Method (Steed/Temme):
//   - CF1 (continued fraction, modified Lentz) for J'_ν/J_ν, followed by
//     downward recurrence to an order μ with |μ| ≤ 1/2;
//   - Temme's series for x < 2, complex CF2 for x ≥ 2;
//   - the Wronskian W{J,Y} = 2/(πx) to normalize;
//   - upward recurrence back to order ν;
//   - reflection formulas for ν < 0:
//     J_{−ν} = J_ν·cos(νπ) − Y_ν·sin(νπ),
//     Y_{−ν} = J_ν·sin(νπ) + Y_ν·cos(νπ).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/warpkk/bessel"
//
//	j, y, err := bessel.JY(0.75, x)      // J_0.75(x), Y_0.75(x)
//	zs, err := bessel.ZerosJ(0.75, 5)    // first five positive zeros of J_0.75
//
// Accuracy: relative error ~1e-14 over the tested domain (see
// bessel_test.go for the reference grid). Errors: ErrDomain for x ≤ 0 or
// non-finite inputs, ErrNoConvergence if an internal expansion exhausts
// its iteration budget (never observed for x ≤ 1e4, ν ≤ 50).
//
// All functions are pure and safe for concurrent use.
package bessel
