package neutrino

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// PDG best-fit mixing angles (sin² values) and CP phases.
const (
	Sin2Theta12 = 0.307
	Sin2Theta23 = 0.534
	Sin2Theta13 = 0.0216

	// DeltaCPNH and DeltaCPIH are the Dirac CP phases in units of π.
	DeltaCPNH = 1.21
	DeltaCPIH = 1.58
)

// PMNS returns the 3×3 lepton mixing matrix
//
//	U = R23(θ23) · U13(θ13, δ) · R12(θ12) · diag(1, e^{iα/2}, e^{iβ/2})
//
// in the PDG convention, with the Dirac phase δ picked by the
// ordering and Majorana phases α, β in radians.
func PMNS(ord Ordering, alpha, beta float64) (*mat.CDense, error) {
	var deltaOverPi float64
	switch ord {
	case NormalOrdering:
		deltaOverPi = DeltaCPNH
	case InvertedOrdering:
		deltaOverPi = DeltaCPIH
	default:
		return nil, ErrInvalidOrdering
	}
	delta := deltaOverPi * math.Pi

	s12 := math.Sqrt(Sin2Theta12)
	c12 := math.Sqrt(1 - Sin2Theta12)
	s23 := math.Sqrt(Sin2Theta23)
	c23 := math.Sqrt(1 - Sin2Theta23)
	s13 := math.Sqrt(Sin2Theta13)
	c13 := math.Sqrt(1 - Sin2Theta13)

	eid := cmplx.Exp(complex(0, delta))
	emid := cmplx.Exp(complex(0, -delta))

	u := mat.NewCDense(3, 3, nil)
	u.Set(0, 0, complex(c12*c13, 0))
	u.Set(0, 1, complex(s12*c13, 0))
	u.Set(0, 2, complex(s13, 0)*emid)
	u.Set(1, 0, complex(-s12*c23, 0)-complex(c12*s23*s13, 0)*eid)
	u.Set(1, 1, complex(c12*c23, 0)-complex(s12*s23*s13, 0)*eid)
	u.Set(1, 2, complex(s23*c13, 0))
	u.Set(2, 0, complex(s12*s23, 0)-complex(c12*c23*s13, 0)*eid)
	u.Set(2, 1, complex(-c12*s23, 0)-complex(s12*c23*s13, 0)*eid)
	u.Set(2, 2, complex(c23*c13, 0))

	// Majorana phases rescale columns 2 and 3.
	for i, ph := range []float64{alpha, beta} {
		p := cmplx.Exp(complex(0, ph/2))
		for r := 0; r < 3; r++ {
			u.Set(r, i+1, u.At(r, i+1)*p)
		}
	}
	return u, nil
}
