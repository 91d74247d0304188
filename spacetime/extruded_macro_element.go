package spacetime

import (
	"fmt"
	"io"
)

// ExtrudedMacroElement is one element of the extruded decomposition. It holds
// nothing but its flat index and a back reference to the owning domain, which
// it uses only to request boundary evaluations - the geometry itself lives in
// the domain's delegation chain. Elements are created by NewExtrudedDomain
// and live exactly as long as it does; they are only ever handed out by
// pointer.
type ExtrudedMacroElement struct {
	domain *ExtrudedDomain
	index  int
}

// Index is the element's flat index within the owning domain.
func (el *ExtrudedMacroElement) Index() int { return el.index }

// Domain is the owning ExtrudedDomain.
func (el *ExtrudedMacroElement) Domain() *ExtrudedDomain { return el.domain }

// Slab returns the time slab this element covers.
func (el *ExtrudedMacroElement) Slab() int {
	return el.index / el.domain.spatial.NMacroElement()
}

// MacroMap returns the global space-time position of the local coordinate
// vector s (time axis last, entries in [-1,1]) at continuous time t.
func (el *ExtrudedMacroElement) MacroMap(t float64, s []float64) ([]float64, error) {
	return el.domain.MacroElementInterior(t, el.index, s)
}

// Boundary evaluates a point on face iDirect of this element.
func (el *ExtrudedMacroElement) Boundary(t float64, iDirect int, s []float64) ([]float64, error) {
	return el.domain.MacroElementBoundary(t, el.index, iDirect, s)
}

// Output writes an nplot^Dim tecplot zone of the element's macro map, the
// x-direction varying fastest and time slowest.
func (el *ExtrudedMacroElement) Output(w io.Writer, nplot int) error {
	var (
		dim = el.domain.Dim()
		s   = make([]float64, dim)
	)
	if nplot < 2 {
		return fmt.Errorf("%w: need at least 2 plot points per direction, got %d",
			ErrConfiguration, nplot)
	}
	switch dim {
	case 3:
		fmt.Fprintf(w, "ZONE I=%d, J=%d, K=%d\n", nplot, nplot, nplot)
	default:
		fmt.Fprintf(w, "ZONE I=%d\n", pow(nplot, dim))
	}
	total := pow(nplot, dim)
	for p := 0; p < total; p++ {
		rem := p
		for i := 0; i < dim; i++ {
			s[i] = -1 + 2*float64(rem%nplot)/float64(nplot-1)
			rem /= nplot
		}
		x, err := el.MacroMap(0, s)
		if err != nil {
			return err
		}
		for i, v := range x {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%v", v)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// OutputBoundaries writes one tecplot zone per face of the element, each an
// nplot^(Dim-1) sample of the face parametrization.
func (el *ExtrudedMacroElement) OutputBoundaries(w io.Writer, nplot int) error {
	var (
		dim   = el.domain.Dim()
		fdim  = dim - 1
		s     = make([]float64, fdim)
		total = pow(nplot, fdim)
	)
	if nplot < 2 {
		return fmt.Errorf("%w: need at least 2 plot points per direction, got %d",
			ErrConfiguration, nplot)
	}
	for iDirect := 0; iDirect < NumExtrudedFaces(dim-1); iDirect++ {
		switch fdim {
		case 2:
			fmt.Fprintf(w, "ZONE I=%d, J=%d\n", nplot, nplot)
		default:
			fmt.Fprintf(w, "ZONE I=%d\n", total)
		}
		for p := 0; p < total; p++ {
			rem := p
			for i := 0; i < fdim; i++ {
				s[i] = -1 + 2*float64(rem%nplot)/float64(nplot-1)
				rem /= nplot
			}
			x, err := el.Boundary(0, iDirect, s)
			if err != nil {
				return err
			}
			for i, v := range x {
				if i > 0 {
					fmt.Fprint(w, " ")
				}
				fmt.Fprintf(w, "%v", v)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}

func pow(base, exp int) (r int) {
	r = 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return
}
