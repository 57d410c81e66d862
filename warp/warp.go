// SPDX-License-Identifier: MIT

package warp

import (
	"errors"
	"math"
)

// Physical constants (GeV).
const (
	// MPlanck is the Planck mass.
	MPlanck = 1.2209e19

	// MPlanckBar is the reduced Planck mass.
	MPlanckBar = 2.435e18

	// VEWSB is the electroweak vacuum expectation value.
	VEWSB = 174.0

	// DefaultK is the default AdS curvature (Planck-scale brane).
	DefaultK = MPlanck

	// DefaultLambdaIR is the default IR (KK) scale: 3 TeV.
	DefaultLambdaIR = 3000.0
)

// ErrInvalidScales is returned when k and Λ_IR do not define a warped
// hierarchy (both must be positive with Λ_IR < k).
var ErrInvalidScales = errors.New("warp: scales must satisfy 0 < Lambda_IR < k")

// Geometry holds the derived warp parameters. Values are fixed at
// construction; treat Geometry as read-only.
type Geometry struct {
	// K is the AdS curvature (GeV).
	K float64

	// LambdaIR is the IR scale Λ_IR = k·ε (GeV). KK masses are
	// quantized in units of Λ_IR.
	LambdaIR float64

	// Epsilon is the warp factor ε = Λ_IR/k, 0 < ε < 1.
	Epsilon float64

	// WarpLog is −ln ε = π k r_c.
	WarpLog float64

	// Rc is the orbifold radius (GeV⁻¹).
	Rc float64

	// ZUV is the UV brane position 1/k in conformal coordinates.
	ZUV float64

	// ZIR is the IR brane position 1/Λ_IR in conformal coordinates.
	ZIR float64
}

// NewGeometry derives the warp geometry from the curvature k and the
// IR scale Λ_IR (both GeV). Invariants on success: 0 < ε < 1 and
// z_IR > z_UV > 0.
func NewGeometry(k, lambdaIR float64) (Geometry, error) {
	if !(k > 0) || !(lambdaIR > 0) || lambdaIR >= k ||
		math.IsInf(k, 0) || math.IsNaN(k) || math.IsNaN(lambdaIR) {
		return Geometry{}, ErrInvalidScales
	}
	eps := lambdaIR / k
	warpLog := -math.Log(eps)
	return Geometry{
		K:        k,
		LambdaIR: lambdaIR,
		Epsilon:  eps,
		WarpLog:  warpLog,
		Rc:       warpLog / (math.Pi * k),
		ZUV:      1.0 / k,
		ZIR:      1.0 / lambdaIR,
	}, nil
}

// DefaultGeometry returns the Planck-to-3-TeV benchmark geometry.
func DefaultGeometry() Geometry {
	g, err := NewGeometry(DefaultK, DefaultLambdaIR)
	if err != nil {
		panic("warp: default scales rejected: " + err.Error())
	}
	return g
}
