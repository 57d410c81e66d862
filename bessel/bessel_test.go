package bessel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warpkk/bessel"
)

// TestJY_IntegerOrdersMatchStdlib cross-checks the fractional-order
// kernel against math.Jn / math.Yn at integer orders.
func TestJY_IntegerOrdersMatchStdlib(t *testing.T) {
	xs := []float64{0.1, 0.5, 1.0, 2.0, 3.7, 10.0, 25.0, 80.0}
	for n := 0; n <= 5; n++ {
		for _, x := range xs {
			j, y, err := bessel.JY(float64(n), x)
			require.NoError(t, err, "JY(%d, %g)", n, x)
			wantJ := math.Jn(n, x)
			wantY := math.Yn(n, x)
			assert.InDelta(t, wantJ, j, 1e-11*(1+math.Abs(wantJ)), "J_%d(%g)", n, x)
			assert.InDelta(t, wantY, y, 1e-10*(1+math.Abs(wantY)), "Y_%d(%g)", n, x)
		}
	}
}

// TestJY_HalfOrderClosedForm checks the elementary half-integer forms
//
//	J_{1/2}(x)  =  sqrt(2/(πx))·sin(x)
//	Y_{1/2}(x)  = -sqrt(2/(πx))·cos(x)
//	J_{-1/2}(x) =  sqrt(2/(πx))·cos(x)
func TestJY_HalfOrderClosedForm(t *testing.T) {
	for _, x := range []float64{0.3, 1.0, 2.5, 7.0, 30.0} {
		amp := math.Sqrt(2.0 / (math.Pi * x))

		j, y, err := bessel.JY(0.5, x)
		require.NoError(t, err)
		assert.InDelta(t, amp*math.Sin(x), j, 1e-12*(1+amp), "J_1/2(%g)", x)
		assert.InDelta(t, -amp*math.Cos(x), y, 1e-12*(1+amp), "Y_1/2(%g)", x)

		jm, _, err := bessel.JY(-0.5, x)
		require.NoError(t, err)
		assert.InDelta(t, amp*math.Cos(x), jm, 1e-12*(1+amp), "J_-1/2(%g)", x)
	}
}

// TestJYPrime_WronskianIdentity verifies J_ν·Y'_ν − J'_ν·Y_ν = 2/(πx)
// across fractional orders, including negative ones.
func TestJYPrime_WronskianIdentity(t *testing.T) {
	nus := []float64{0.0, 0.25, 0.77, 1.3, 2.6, 4.9, -0.3, -0.9}
	xs := []float64{1e-6, 1e-3, 0.1, 1.0, 2.0, 5.0, 17.0, 60.0}
	for _, nu := range nus {
		for _, x := range xs {
			j, y, jp, yp, err := bessel.JYPrime(nu, x)
			require.NoError(t, err, "JYPrime(%g, %g)", nu, x)
			w := j*yp - jp*y
			want := 2.0 / (math.Pi * x)
			assert.InEpsilon(t, want, w, 1e-9, "Wronskian at ν=%g x=%g", nu, x)
		}
	}
}

// TestJY_TinyArgument probes the Temme branch deep into the small-x
// regime, where the KK solver evaluates Y_ν(ε·x) with ε ~ 1e-15.
func TestJY_TinyArgument(t *testing.T) {
	// J_0(x) → 1 and Y_0(x) → (2/π)(ln(x/2) + γ) as x → 0.
	const euler = 0.5772156649015329
	x := 1e-14
	j, y, err := bessel.JY(0, x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, j, 1e-12)
	assert.InEpsilon(t, 2.0/math.Pi*(math.Log(x/2)+euler), y, 1e-10)

	// For ν > 0, Y_ν(x) ~ −Γ(ν)/π · (2/x)^ν: huge but finite and negative.
	_, y, err = bessel.JY(1.25, 1e-12)
	require.NoError(t, err)
	assert.True(t, y < 0 && !math.IsInf(y, 0), "Y_1.25(1e-12) = %g", y)
}

// TestJY_DomainErrors covers rejected inputs.
func TestJY_DomainErrors(t *testing.T) {
	_, _, err := bessel.JY(0.5, 0)
	assert.ErrorIs(t, err, bessel.ErrDomain, "x=0 must be rejected")

	_, _, err = bessel.JY(0.5, -1)
	assert.ErrorIs(t, err, bessel.ErrDomain, "x<0 must be rejected")

	_, _, err = bessel.JY(math.NaN(), 1)
	assert.ErrorIs(t, err, bessel.ErrDomain, "NaN order must be rejected")

	_, _, err = bessel.JY(0.5, math.Inf(1))
	assert.ErrorIs(t, err, bessel.ErrDomain, "infinite argument must be rejected")
}

// TestZerosJ_KnownZeros checks the classic J_0 and J_1 zeros.
func TestZerosJ_KnownZeros(t *testing.T) {
	j0 := []float64{2.404825557695773, 5.520078110286311, 8.653727912911013, 11.791534439014281}
	zs, err := bessel.ZerosJ(0, 4)
	require.NoError(t, err)
	require.Len(t, zs, 4)
	for i, want := range j0 {
		assert.InDelta(t, want, zs[i], 1e-10, "j_{0,%d}", i+1)
	}

	j1 := []float64{3.831705970207512, 7.015586669815619, 10.173468135062722}
	zs, err = bessel.ZerosJ(1, 3)
	require.NoError(t, err)
	for i, want := range j1 {
		assert.InDelta(t, want, zs[i], 1e-10, "j_{1,%d}", i+1)
	}
}

// TestZerosJ_FractionalOrder verifies the returned points really are
// zeros of J_ν and come out strictly increasing.
func TestZerosJ_FractionalOrder(t *testing.T) {
	for _, nu := range []float64{0.37, 1.72, 3.14} {
		zs, err := bessel.ZerosJ(nu, 6)
		require.NoError(t, err)
		require.Len(t, zs, 6)
		for i, z := range zs {
			j, err := bessel.J(nu, z)
			require.NoError(t, err)
			assert.InDelta(t, 0.0, j, 1e-10, "J_%g at claimed zero %g", nu, z)
			if i > 0 {
				assert.Greater(t, z, zs[i-1], "zeros must increase")
			}
		}
	}
}

// TestZerosJ_EmptyAndInvalid covers degenerate requests.
func TestZerosJ_EmptyAndInvalid(t *testing.T) {
	zs, err := bessel.ZerosJ(0.5, 0)
	assert.NoError(t, err)
	assert.Nil(t, zs, "n=0 yields no zeros")

	_, err = bessel.ZerosJ(-1.0, 3)
	assert.ErrorIs(t, err, bessel.ErrDomain, "negative order has no zero table")
}
