package qcd

import "math"

// Dormand–Prince 5(4) tableau. The fifth-order solution advances the
// state; the embedded fourth-order difference drives step control.
var (
	dpA = [7][6]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0,
			-5103.0 / 18656.0},
		{35.0 / 384.0, 0.0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0,
			11.0 / 84.0},
	}

	dpB5 = [7]float64{35.0 / 384.0, 0.0, 500.0 / 1113.0, 125.0 / 192.0,
		-2187.0 / 6784.0, 11.0 / 84.0, 0.0}

	dpB4 = [7]float64{5179.0 / 57600.0, 0.0, 7571.0 / 16695.0, 393.0 / 640.0,
		-92097.0 / 339200.0, 187.0 / 2100.0, 1.0 / 40.0}
)

// integrateRK45 advances the scalar autonomous ODE dy/dt = f(y) from
// t0 to t1 (either direction) with adaptive step control. Returns
// ErrIntegration when the step budget runs out or the step size
// underflows.
func integrateRK45(f func(float64) float64, y0, t0, t1, rtol, atol float64) (float64, error) {
	const (
		maxSteps  = 100000
		safety    = 0.9
		minFactor = 0.2
		maxFactor = 5.0
	)

	span := t1 - t0
	if span == 0 {
		return y0, nil
	}
	dir := 1.0
	if span < 0 {
		dir = -1.0
	}

	t := t0
	y := y0
	h := dir * math.Min(math.Abs(span), 0.1)

	var k [7]float64
	for step := 0; step < maxSteps; step++ {
		if dir*(t-t1) >= 0 {
			return y, nil
		}
		// Never overshoot the segment end.
		if dir*(t+h-t1) > 0 {
			h = t1 - t
		}

		k[0] = f(y)
		for i := 1; i < 7; i++ {
			yi := y
			for j := 0; j < i; j++ {
				yi += h * dpA[i][j] * k[j]
			}
			k[i] = f(yi)
		}

		var y5, y4 float64
		for i := 0; i < 7; i++ {
			y5 += dpB5[i] * k[i]
			y4 += dpB4[i] * k[i]
		}
		y5 = y + h*y5
		y4 = y + h*y4

		tol := atol + rtol*math.Max(math.Abs(y), math.Abs(y5))
		errEst := math.Abs(y5 - y4)

		if errEst <= tol {
			t += h
			y = y5
			if dir*(t-t1) >= 0 {
				return y, nil
			}
		}

		factor := maxFactor
		if errEst > 0 {
			factor = safety * math.Pow(tol/errEst, 0.2)
			if factor < minFactor {
				factor = minFactor
			} else if factor > maxFactor {
				factor = maxFactor
			}
		}
		h *= factor
		if math.Abs(h) < 1e-14*math.Abs(span) {
			return 0, ErrIntegration
		}
	}
	return 0, ErrIntegration
}
