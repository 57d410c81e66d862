package diag_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/warpkk/diag"
)

// cdense builds an r×c complex matrix from row-major data.
func cdense(r, c int, data []complex128) *mat.CDense {
	m := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, data[i*c+j])
		}
	}
	return m
}

// unitarityDefect returns ‖U†U − I‖_F.
func unitarityDefect(u *mat.CDense) float64 {
	r, c := u.Dims()
	sum := 0.0
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			var s complex128
			for l := 0; l < r; l++ {
				s += cmplx.Conj(u.At(l, i)) * u.At(l, j)
			}
			if i == j {
				s -= 1
			}
			sum += real(s)*real(s) + imag(s)*imag(s)
		}
	}
	return math.Sqrt(sum)
}

// svdDefect returns ‖A − U Σ V†‖_F.
func svdDefect(a *mat.CDense, res diag.SVDResult) float64 {
	r, c := a.Dims()
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var s complex128
			for l := range res.Values {
				s += res.U.At(i, l) * complex(res.Values[l], 0) *
					cmplx.Conj(res.V.At(j, l))
			}
			d := a.At(i, j) - s
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sum)
}

// takagiDefect returns ‖A − U Σ Uᵀ‖_F.
func takagiDefect(a *mat.CDense, res diag.TakagiResult) float64 {
	n := len(res.Values)
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for l := 0; l < n; l++ {
				s += res.U.At(i, l) * complex(res.Values[l], 0) * res.U.At(j, l)
			}
			d := a.At(i, j) - s
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sum)
}

// requireDescendingNonNegative asserts the singular value ordering
// contract shared by both factorizations.
func requireDescendingNonNegative(t *testing.T, vals []float64) {
	t.Helper()
	for i, v := range vals {
		require.GreaterOrEqual(t, v, 0.0, "value %d must be non-negative", i)
		if i > 0 {
			require.LessOrEqual(t, v, vals[i-1], "values must descend")
		}
	}
}

// TestSVD_DiagonalReal recovers a plain real diagonal exactly.
func TestSVD_DiagonalReal(t *testing.T) {
	a := cdense(3, 3, []complex128{
		2, 0, 0,
		0, 5, 0,
		0, 0, 3,
	})

	res, err := diag.SVD(a)
	require.NoError(t, err)
	require.Len(t, res.Values, 3)
	requireDescendingNonNegative(t, res.Values)
	assert.InDelta(t, 5.0, res.Values[0], 1e-12)
	assert.InDelta(t, 3.0, res.Values[1], 1e-12)
	assert.InDelta(t, 2.0, res.Values[2], 1e-12)
	assert.Less(t, svdDefect(a, res), 1e-10)
}

// TestSVD_ComplexSquare reconstructs a generic complex 3×3 and checks
// both unitarity defects.
func TestSVD_ComplexSquare(t *testing.T) {
	a := cdense(3, 3, []complex128{
		1 + 2i, 0.3 - 0.1i, -0.7i,
		2 - 1i, 0.5 + 0.5i, 1.1,
		-0.2, 1.5 + 0.4i, 0.9 - 2.2i,
	})

	res, err := diag.SVD(a)
	require.NoError(t, err)
	require.Len(t, res.Values, 3)
	requireDescendingNonNegative(t, res.Values)
	assert.Less(t, svdDefect(a, res), 1e-10)
	assert.Less(t, unitarityDefect(res.U), 1e-10)
	assert.Less(t, unitarityDefect(res.V), 1e-10)
}

// TestSVD_Rectangular covers both orientations; a wide matrix must
// still return full square rotations and min(m, n) values.
func TestSVD_Rectangular(t *testing.T) {
	wide := cdense(2, 3, []complex128{
		1 + 1i, 2, 0.5 - 0.5i,
		0, 1 - 1i, 3 + 0.2i,
	})
	tall := cdense(3, 2, []complex128{
		1 + 1i, 0,
		2, 1 - 1i,
		0.5 - 0.5i, 3 + 0.2i,
	})

	for name, a := range map[string]*mat.CDense{"wide": wide, "tall": tall} {
		res, err := diag.SVD(a)
		require.NoError(t, err, name)
		m, n := a.Dims()
		um, uc := res.U.Dims()
		vm, vc := res.V.Dims()
		assert.Equal(t, m, um, name)
		assert.Equal(t, m, uc, name)
		assert.Equal(t, n, vm, name)
		assert.Equal(t, n, vc, name)
		require.Len(t, res.Values, 2, name)
		requireDescendingNonNegative(t, res.Values)
		assert.Less(t, svdDefect(a, res), 1e-10, name)
		assert.Less(t, unitarityDefect(res.U), 1e-10, name)
		assert.Less(t, unitarityDefect(res.V), 1e-10, name)
	}
}

// TestSVD_RankDeficient exercises the null-space completion: a rank-1
// 3×3 yields exactly one nonzero value and still-unitary rotations.
func TestSVD_RankDeficient(t *testing.T) {
	// Outer product (1, 2i, −1)ᵀ·(1, 1) padded with a zero column.
	a := cdense(3, 3, []complex128{
		1, 1, 0,
		2i, 2i, 0,
		-1, -1, 0,
	})

	res, err := diag.SVD(a)
	require.NoError(t, err)
	requireDescendingNonNegative(t, res.Values)
	assert.Greater(t, res.Values[0], 1.0)
	assert.InDelta(t, 0.0, res.Values[1], 1e-10)
	assert.InDelta(t, 0.0, res.Values[2], 1e-10)
	assert.Less(t, svdDefect(a, res), 1e-10)
	assert.Less(t, unitarityDefect(res.U), 1e-10)
	assert.Less(t, unitarityDefect(res.V), 1e-10)
}

// TestSVD_ZeroMatrix returns identity rotations and all-zero values.
func TestSVD_ZeroMatrix(t *testing.T) {
	a := mat.NewCDense(2, 2, nil)

	res, err := diag.SVD(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, res.Values)
	assert.Less(t, unitarityDefect(res.U), 1e-14)
	assert.Less(t, unitarityDefect(res.V), 1e-14)
}

// TestSVD_EmptyInput rejects nil and 0×0 matrices.
func TestSVD_EmptyInput(t *testing.T) {
	_, err := diag.SVD(nil)
	assert.ErrorIs(t, err, diag.ErrEmptyMatrix)
}

// TestTakagi_RealSymmetric uses the real fast path; a negative
// eigenvalue must fold into a positive Takagi value via an i·q column.
func TestTakagi_RealSymmetric(t *testing.T) {
	// Eigenvalues of [[0, 2], [2, 0]] are ±2.
	a := cdense(2, 2, []complex128{
		0, 2,
		2, 0,
	})

	res, err := diag.Takagi(a)
	require.NoError(t, err)
	require.Len(t, res.Values, 2)
	assert.InDelta(t, 2.0, res.Values[0], 1e-12)
	assert.InDelta(t, 2.0, res.Values[1], 1e-12)
	assert.Less(t, takagiDefect(a, res), 1e-10)
	assert.Less(t, unitarityDefect(res.U), 1e-10)
}

// TestTakagi_ComplexSymmetric reconstructs a generic complex symmetric
// matrix through the embedding path.
func TestTakagi_ComplexSymmetric(t *testing.T) {
	a := cdense(3, 3, []complex128{
		1 + 1i, 2 - 0.5i, 0.3i,
		2 - 0.5i, -0.7 + 0.2i, 1.1 + 1.4i,
		0.3i, 1.1 + 1.4i, 0.9 - 2i,
	})

	res, err := diag.Takagi(a)
	require.NoError(t, err)
	require.Len(t, res.Values, 3)
	requireDescendingNonNegative(t, res.Values)
	assert.Less(t, takagiDefect(a, res), 1e-10)
	assert.Less(t, unitarityDefect(res.U), 1e-10)
}

// TestTakagi_Diagonal recovers complex diagonal entries as their
// moduli, descending regardless of input order.
func TestTakagi_Diagonal(t *testing.T) {
	a := cdense(3, 3, []complex128{
		1i, 0, 0,
		0, -3, 0,
		0, 0, 2 * cmplx.Exp(0.4i),
	})

	res, err := diag.Takagi(a)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.Values[0], 1e-12)
	assert.InDelta(t, 2.0, res.Values[1], 1e-12)
	assert.InDelta(t, 1.0, res.Values[2], 1e-12)
	assert.Less(t, takagiDefect(a, res), 1e-10)
}

// TestTakagi_NearDegenerate keeps the reconstruction invariant when
// two Takagi values are separated by 1e-9.
func TestTakagi_NearDegenerate(t *testing.T) {
	a := cdense(4, 4, []complex128{
		1 + 1e-9, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0.5i, 0,
		0, 0, 0, 0.2,
	})

	res, err := diag.Takagi(a)
	require.NoError(t, err)
	requireDescendingNonNegative(t, res.Values)
	assert.InDelta(t, 1.0, res.Values[0], 1e-6)
	assert.InDelta(t, 1.0, res.Values[1], 1e-6)
	assert.Less(t, takagiDefect(a, res), 1e-10)
	assert.Less(t, unitarityDefect(res.U), 1e-10)
}

// TestTakagi_HermitianRejected draws the line between Hermitian and
// complex symmetric: A = A† with nonzero imaginary part is NOT A = Aᵀ.
func TestTakagi_HermitianRejected(t *testing.T) {
	a := cdense(2, 2, []complex128{
		1, 2 + 1i,
		2 - 1i, 3,
	})

	_, err := diag.Takagi(a)
	assert.ErrorIs(t, err, diag.ErrSymmetryViolation)
}

// TestTakagi_Symmetrize accepts mildly asymmetric noise once the
// projection option is set.
func TestTakagi_Symmetrize(t *testing.T) {
	a := cdense(2, 2, []complex128{
		1, 2 + 1e-6i,
		2 - 1e-6i, 3,
	})

	_, err := diag.Takagi(a)
	require.ErrorIs(t, err, diag.ErrSymmetryViolation)

	res, err := diag.Takagi(a, diag.WithSymmetrize())
	require.NoError(t, err)
	requireDescendingNonNegative(t, res.Values)
	// Reconstruction targets the projected (A + Aᵀ)/2.
	sym := cdense(2, 2, []complex128{
		1, 2,
		2, 3,
	})
	assert.Less(t, takagiDefect(sym, res), 1e-10)
}

// TestTakagi_ShapeErrors covers the input gates.
func TestTakagi_ShapeErrors(t *testing.T) {
	_, err := diag.Takagi(nil)
	assert.ErrorIs(t, err, diag.ErrEmptyMatrix)

	rect := mat.NewCDense(2, 3, nil)
	_, err = diag.Takagi(rect)
	assert.ErrorIs(t, err, diag.ErrNotSquare)
}

// TestTakagi_ZeroMatrix short-circuits to identity.
func TestTakagi_ZeroMatrix(t *testing.T) {
	a := mat.NewCDense(3, 3, nil)

	res, err := diag.Takagi(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, res.Values)
	assert.Less(t, unitarityDefect(res.U), 1e-14)
}

// TestOptions_InvalidTolerance verifies the runtime validation path
// for options mutated outside the constructors.
func TestOptions_InvalidTolerance(t *testing.T) {
	bad := func(o *diag.Options) { o.ResidualTol = -1 }

	a := cdense(1, 1, []complex128{1})
	_, err := diag.SVD(a, bad)
	assert.ErrorIs(t, err, diag.ErrInvalidTolerance)
	_, err = diag.Takagi(a, bad)
	assert.ErrorIs(t, err, diag.ErrInvalidTolerance)
}

// TestOptions_ConstructorPanics documents that the option helpers
// reject nonsense eagerly.
func TestOptions_ConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { diag.WithSymmetryTol(0) })
	assert.Panics(t, func() { diag.WithResidualTol(-1e-3) })
	assert.Panics(t, func() { diag.WithZeroTol(math.Inf(1)) })
}
