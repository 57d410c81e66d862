package bessel

import "math"

// JY returns J_ν(x) and Y_ν(x) for real order ν (any sign) and x > 0.
//
// Negative orders are reduced to positive ones via the reflection
// formulas; positive orders go through the Steed/Temme machinery in
// jyCore. Complexity: O(ν + iterations), effectively O(1) for the
// orders used in KK towers.
func JY(nu, x float64) (j, y float64, err error) {
	j, y, _, _, err = JYPrime(nu, x)
	return j, y, err
}

// J returns J_ν(x) for real order ν and x > 0.
func J(nu, x float64) (float64, error) {
	j, _, err := JY(nu, x)
	return j, err
}

// Y returns Y_ν(x) for real order ν and x > 0.
func Y(nu, x float64) (float64, error) {
	_, y, err := JY(nu, x)
	return y, err
}

// JYPrime returns J_ν(x), Y_ν(x) and the derivatives J'_ν(x), Y'_ν(x).
func JYPrime(nu, x float64) (j, y, jp, yp float64, err error) {
	if x <= 0 || math.IsInf(x, 0) || math.IsNaN(x) || math.IsNaN(nu) || math.IsInf(nu, 0) {
		return 0, 0, 0, 0, ErrDomain
	}
	if nu >= 0 {
		return jyCore(nu, x)
	}

	// Reflection to positive order:
	//   J_{−ν} = J_ν cos(νπ) − Y_ν sin(νπ)
	//   Y_{−ν} = J_ν sin(νπ) + Y_ν cos(νπ)
	// The same linear combination carries over to the derivatives.
	pnu := -nu
	jPos, yPos, jpPos, ypPos, err := jyCore(pnu, x)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	s, c := math.Sincos(pnu * math.Pi)
	j = jPos*c - yPos*s
	y = jPos*s + yPos*c
	jp = jpPos*c - ypPos*s
	yp = jpPos*s + ypPos*c
	return j, y, jp, yp, nil
}

// jyCore evaluates J_ν, Y_ν, J'_ν, Y'_ν for ν ≥ 0 and x > 0 using
// Steed's method with Temme's series for small arguments.
//
// Stages:
//  1. CF1 (modified Lentz) for f = J'_ν/J_ν at order ν.
//  2. Downward recurrence of (J, J') to order μ = ν − nl, |μ| ≤ 1/2.
//  3. Either Temme's series (x < xSmall) or the complex continued
//     fraction CF2 (x ≥ xSmall) to pin down J_μ, Y_μ, Y'_μ via the
//     Wronskian W = 2/(πx).
//  4. Upward recurrence of Y back to order ν; rescale J by J_μ/J_μ^raw.
func jyCore(nu, x float64) (rj, ry, rjp, ryp float64, err error) {
	var nl int
	if x < xSmall {
		nl = int(nu + 0.5)
	} else {
		nl = int(nu - x + 1.5)
		if nl < 0 {
			nl = 0
		}
	}
	xmu := nu - float64(nl)
	xmu2 := xmu * xmu
	xi := 1.0 / x
	xi2 := 2.0 * xi
	w := xi2 / math.Pi // Wronskian J_ν Y'_ν − J'_ν Y_ν

	// Stage 1 - CF1 by the modified Lentz method.
	isign := 1.0
	h := nu * xi
	if h < fpMin {
		h = fpMin
	}
	b := xi2 * nu
	d := 0.0
	c := h
	converged := false
	for i := 1; i <= maxIter; i++ {
		b += xi2
		d = b - d
		if math.Abs(d) < fpMin {
			d = fpMin
		}
		c = b - 1.0/c
		if math.Abs(c) < fpMin {
			c = fpMin
		}
		d = 1.0 / d
		del := c * d
		h = del * h
		if d < 0 {
			isign = -isign
		}
		if math.Abs(del-1.0) < eps {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, 0, 0, ErrNoConvergence
	}

	// Stage 2 - downward recurrence from ν to μ on an unnormalized J.
	rjl := isign * fpMin
	rjpl := h * rjl
	rjl1 := rjl
	rjp1 := rjpl
	fact := nu * xi
	for l := nl; l >= 1; l-- {
		rjtemp := fact*rjl + rjpl
		fact -= xi
		rjpl = fact*rjtemp - rjl
		rjl = rjtemp
	}
	if rjl == 0 {
		rjl = eps
	}
	f := rjpl / rjl

	var rjmu, rymu, rymup, ry1 float64
	if x < xSmall {
		// Stage 3a - Temme's series.
		x2 := 0.5 * x
		pimu := math.Pi * xmu
		fct := 1.0
		if math.Abs(pimu) >= eps {
			fct = pimu / math.Sin(pimu)
		}
		dd := -math.Log(x2)
		e := xmu * dd
		fact2 := 1.0
		if math.Abs(e) >= eps {
			fact2 = math.Sinh(e) / e
		}
		gam1, gam2, gampl, gammi := temmeGammas(xmu)
		ff := 2.0 / math.Pi * fct * (gam1*math.Cosh(e) + gam2*fact2*dd)
		e = math.Exp(e)
		p := e / (gampl * math.Pi)
		q := 1.0 / (e * math.Pi * gammi)
		pimu2 := 0.5 * pimu
		fact3 := 1.0
		if math.Abs(pimu2) >= eps {
			fact3 = math.Sin(pimu2) / pimu2
		}
		r := math.Pi * pimu2 * fact3 * fact3
		cc := 1.0
		dd = -x2 * x2
		sum := ff + r*q
		sum1 := p
		converged = false
		for i := 1; i <= maxIter; i++ {
			fi := float64(i)
			ff = (fi*ff + p + q) / (fi*fi - xmu2)
			cc *= dd / fi
			p /= fi - xmu
			q /= fi + xmu
			del := cc * (ff + r*q)
			sum += del
			del1 := cc*p - fi*del
			sum1 += del1
			if math.Abs(del) < (1.0+math.Abs(sum))*eps {
				converged = true
				break
			}
		}
		if !converged {
			return 0, 0, 0, 0, ErrNoConvergence
		}
		rymu = -sum
		ry1 = -sum1 * xi2
		rymup = xmu*xi*rymu - ry1
		rjmu = w / (rymup - f*rymu)
	} else {
		// Stage 3b - CF2, evaluated in complex arithmetic.
		a := 0.25 - xmu2
		p := -0.5 * xi
		q := 1.0
		br := 2.0 * x
		bi := 2.0
		fct := a * xi / (p*p + q*q)
		cr := br + q*fct
		ci := bi + p*fct
		den := br*br + bi*bi
		dr := br / den
		di := -bi / den
		dlr := cr*dr - ci*di
		dli := cr*di + ci*dr
		temp := p*dlr - q*dli
		q = p*dli + q*dlr
		p = temp
		converged = false
		for i := 2; i <= maxIter; i++ {
			a += 2.0 * float64(i-1)
			bi += 2.0
			dr = a*dr + br
			di = a*di + bi
			if math.Abs(dr)+math.Abs(di) < fpMin {
				dr = fpMin
			}
			fct = a / (cr*cr + ci*ci)
			cr = br + cr*fct
			ci = bi - ci*fct
			if math.Abs(cr)+math.Abs(ci) < fpMin {
				cr = fpMin
			}
			den = dr*dr + di*di
			dr /= den
			di /= -den
			dlr = cr*dr - ci*di
			dli = cr*di + ci*dr
			temp = dlr*p - dli*q
			q = dlr*q + dli*p
			p = temp
			if math.Abs(dlr-1.0)+math.Abs(dli) < eps {
				converged = true
				break
			}
		}
		if !converged {
			return 0, 0, 0, 0, ErrNoConvergence
		}
		gam := (p - f) / q
		rjmu = math.Sqrt(w / ((p-f)*gam + q))
		rjmu = math.Copysign(rjmu, rjl)
		rymu = rjmu * gam
		rymup = rymu * (p + q/gam)
		ry1 = xmu*xi*rymu - rymup
	}

	// Stage 4 - rescale J and recur Y upward from μ to ν.
	fct := rjmu / rjl
	rj = rjl1 * fct
	rjp = rjp1 * fct
	for i := 1; i <= nl; i++ {
		rytemp := (xmu+float64(i))*xi2*ry1 - rymu
		rymu = ry1
		ry1 = rytemp
	}
	ry = rymu
	ryp = nu*xi*rymu - ry1
	return rj, ry, rjp, ryp, nil
}

// temmeGammas returns the four Γ-related auxiliaries of Temme's series,
//
//	gam1  = (1/Γ(1−μ) − 1/Γ(1+μ)) / (2μ)
//	gam2  = (1/Γ(1−μ) + 1/Γ(1+μ)) / 2
//	gampl = gam2 − μ·gam1 = 1/Γ(1+μ)
//	gammi = gam2 + μ·gam1 = 1/Γ(1−μ)
//
// for |μ| ≤ 1/2. Near μ = 0 the gam1 quotient cancels catastrophically,
// so the Taylor coefficients of 1/Γ(1+z) take over.
func temmeGammas(mu float64) (gam1, gam2, gampl, gammi float64) {
	const (
		euler = 0.5772156649015329  // z¹ coefficient of 1/Γ(1+z)
		g2    = -0.6558780715202538 // z² coefficient
		g3    = -0.0420026350340952 // z³ coefficient
	)
	if math.Abs(mu) < 1e-4 {
		mu2 := mu * mu
		gam1 = -(euler + g3*mu2)
		gam2 = 1.0 + g2*mu2
	} else {
		rgp := 1.0 / math.Gamma(1.0+mu)
		rgm := 1.0 / math.Gamma(1.0-mu)
		gam1 = (rgm - rgp) / (2.0 * mu)
		gam2 = (rgm + rgp) / 2.0
	}
	gampl = gam2 - mu*gam1
	gammi = gam2 + mu*gam1
	return gam1, gam2, gampl, gammi
}
