package geometry

import (
	"fmt"
	"math"
)

// WarpFunc maps a reference coordinate vector in [-1,1]^dim (and a continuous
// time for moving geometries) to a physical position of the same length.
type WarpFunc func(t float64, s []float64) []float64

// WarpedBoxDomain is a domain parametrized by a single macro element: a
// reference square or cube pushed through a warp callback. It is the simplest
// useful Domain and the workhorse for tests and demos.
type WarpedBoxDomain struct {
	dim  int
	warp WarpFunc
}

// NewWarpedBoxDomain builds a single-macro-element domain of the given
// dimension (2 or 3) from a warp callback.
func NewWarpedBoxDomain(dim int, warp WarpFunc) (*WarpedBoxDomain, error) {
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("no face convention defined for dimension %d", dim)
	}
	if warp == nil {
		return nil, fmt.Errorf("warp function must not be nil")
	}
	return &WarpedBoxDomain{dim: dim, warp: warp}, nil
}

func (wb *WarpedBoxDomain) Dim() int { return wb.dim }

func (wb *WarpedBoxDomain) NMacroElement() int { return 1 }

func (wb *WarpedBoxDomain) MacroElementBoundary(t float64, iMacro, iDirect int, sFace []float64) (x []float64, err error) {
	var s []float64
	if iMacro != 0 {
		err = fmt.Errorf("macro element index %d out of range [0,1)", iMacro)
		return
	}
	if s, err = FaceCoords(wb.dim, iDirect, sFace); err != nil {
		return
	}
	x = wb.warp(t, s)
	return
}

func (wb *WarpedBoxDomain) MacroElementInterior(t float64, iMacro int, s []float64) (x []float64, err error) {
	if iMacro != 0 {
		err = fmt.Errorf("macro element index %d out of range [0,1)", iMacro)
		return
	}
	if len(s) != wb.dim {
		err = fmt.Errorf("interior coordinates have %d entries, need %d", len(s), wb.dim)
		return
	}
	x = wb.warp(t, s)
	return
}

// NewUnitSquareDomain is the identity mapping of the reference square, a
// single quad macro element covering [-1,1]^2.
func NewUnitSquareDomain() *WarpedBoxDomain {
	wb, _ := NewWarpedBoxDomain(2, func(t float64, s []float64) []float64 {
		return []float64{s[0], s[1]}
	})
	return wb
}

// NewAnnularSectorDomain maps the reference square onto an annular sector:
// s[0] spans the radius [rMin,rMax], s[1] the angle [-phi,phi]. A genuinely
// curvilinear quad macro element.
func NewAnnularSectorDomain(rMin, rMax, phi float64) *WarpedBoxDomain {
	wb, _ := NewWarpedBoxDomain(2, func(t float64, s []float64) []float64 {
		r := 0.5*(rMin+rMax) + 0.5*s[0]*(rMax-rMin)
		theta := s[1] * phi
		return []float64{r * math.Cos(theta), r * math.Sin(theta)}
	})
	return wb
}

// NewWarpedCubeDomain is a mildly warped unit cube, a single hex macro
// element. The warp perturbs each coordinate with a smooth bump so that no
// face is planar.
func NewWarpedCubeDomain(amplitude float64) *WarpedBoxDomain {
	wb, _ := NewWarpedBoxDomain(3, func(t float64, s []float64) []float64 {
		x := make([]float64, 3)
		for i := 0; i < 3; i++ {
			j, k := (i+1)%3, (i+2)%3
			x[i] = s[i] + amplitude*math.Sin(0.5*math.Pi*s[j])*math.Sin(0.5*math.Pi*s[k])
		}
		return x
	})
	return wb
}
