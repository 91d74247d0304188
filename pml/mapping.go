/*
Package pml holds the coordinate stretching functions used inside perfectly
matched absorbing layers. A Mapping returns gamma = d(xtilde)/dx as a function
of nu = x - h, where h is the distance from the origin to the start of the
layer. The mappings are stateless formulas; composing them with the domain
geometry happens downstream.
*/
package pml

import "math"

// Mapping is the PML coordinate stretching capability.
type Mapping interface {
	// Gamma evaluates the stretching at local coordinate nu within a layer of
	// the given width, for the given squared wavenumber. alphaShift is the
	// complex frequency shift parameter; the classical mappings ignore it.
	Gamma(nu, width, kSquared, alphaShift float64) complex128
}

// Bermudez is the unbounded absorbing function of Bermudez et al,
// gamma = 1 + (i/k) * 1/|width - nu|. A good default for Helmholtz problems.
type Bermudez struct{}

func (Bermudez) Gamma(nu, width, kSquared, alphaShift float64) complex128 {
	return 1 + complex(0, 1/math.Sqrt(kSquared))*complex(1/math.Abs(width-nu), 0)
}

// ContinuousBermudez is the variant that is continuous across the inner layer
// boundary, gamma = 1 + (i/k) * (1/|width - nu| - 1/|width|).
type ContinuousBermudez struct{}

func (ContinuousBermudez) Gamma(nu, width, kSquared, alphaShift float64) complex128 {
	return 1 + complex(0, 1/math.Sqrt(kSquared))*
		complex(1/math.Abs(width-nu)-1/math.Abs(width), 0)
}
