package spacetime

import (
	"fmt"

	"github.com/notargets/goextrude/geometry"
)

/*
ExtrudedDomain lifts a spatial Domain by one dimension: it stacks NSlabs
uniform time slabs between TMin and TMax and exposes the same domain contract
one dimension higher. Extruded macro element i covers time slab i/nSpatial
for spatial macro element i%nSpatial.

The spatial domain is borrowed, never owned: the caller must keep it alive
for as long as the ExtrudedDomain is in use, and the ExtrudedDomain never
mutates it. The extruded macro elements, by contrast, are created once during
construction and owned exclusively by the domain.

After construction the domain is immutable, so every query is safe to issue
concurrently without synchronization.
*/
type ExtrudedDomain struct {
	spatial  geometry.Domain
	slabs    TimeSlabs
	elements []*ExtrudedMacroElement
}

// NewExtrudedDomain extrudes the spatial domain into nSlabs uniform time
// slabs spanning [tMin,tMax].
func NewExtrudedDomain(spatial geometry.Domain, nSlabs int, tMin, tMax float64) (ed *ExtrudedDomain, err error) {
	var ts TimeSlabs
	if spatial == nil {
		err = fmt.Errorf("%w: spatial domain must not be nil", ErrConfiguration)
		return
	}
	if !SupportedSpatialDim(spatial.Dim()) {
		err = fmt.Errorf("%w: no face translation table for spatial dimension %d",
			ErrConfiguration, spatial.Dim())
		return
	}
	if ts, err = NewTimeSlabs(tMin, tMax, nSlabs); err != nil {
		return
	}
	ed = &ExtrudedDomain{
		spatial:  spatial,
		slabs:    ts,
		elements: make([]*ExtrudedMacroElement, nSlabs*spatial.NMacroElement()),
	}
	for i := range ed.elements {
		ed.elements[i] = &ExtrudedMacroElement{domain: ed, index: i}
	}
	return
}

// NewExtrudedDomainLength extrudes over [0,length].
func NewExtrudedDomainLength(spatial geometry.Domain, nSlabs int, length float64) (*ExtrudedDomain, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: extrusion length must be positive, got %g",
			ErrConfiguration, length)
	}
	return NewExtrudedDomain(spatial, nSlabs, 0, length)
}

// Dim of the extruded domain is one higher than the spatial one; the extra
// (last) reference axis is time.
func (ed *ExtrudedDomain) Dim() int { return ed.spatial.Dim() + 1 }

func (ed *ExtrudedDomain) NMacroElement() int { return len(ed.elements) }

// Slabs exposes the time slab geometry of the extrusion.
func (ed *ExtrudedDomain) Slabs() TimeSlabs { return ed.slabs }

// MacroElement gives bounds-checked access to the i-th extruded macro
// element.
func (ed *ExtrudedDomain) MacroElement(i int) (el *ExtrudedMacroElement, err error) {
	if i < 0 || i >= len(ed.elements) {
		err = fmt.Errorf("%w: macro element index %d outside [0,%d)",
			ErrIndexOutOfRange, i, len(ed.elements))
		return
	}
	el = ed.elements[i]
	return
}

/*
MacroElementBoundary evaluates a point on face iDirect of extruded macro
element iMacro at the face-local coordinates s (length Dim()-1, time axis
last, all entries in [-1,1]).

Lateral faces delegate to the spatial domain: the face selector is translated
into the spatial convention, the trailing time coordinate is sliced off and
the remaining entries passed through unchanged, and the returned spatial
point is extended with the time value interpolated across the element's slab.
Temporal caps evaluate the spatial interior at the full coordinate vector
(only time is pinned on those faces) at the slab's fixed lower or upper
bound.
*/
func (ed *ExtrudedDomain) MacroElementBoundary(t float64, iMacro, iDirect int, s []float64) (x []float64, err error) {
	var (
		slab, iSpatial int
		d              Direction
		xs             []float64
		tVal           float64
	)
	if slab, iSpatial, err = decodeMacro(iMacro, ed.spatial.NMacroElement(), ed.slabs.NSlabs); err != nil {
		return
	}
	if d, err = DecodeDirection(ed.spatial.Dim(), iDirect); err != nil {
		return
	}
	if len(s) != ed.Dim()-1 {
		err = fmt.Errorf("%w: face coordinates have %d entries, need %d",
			ErrIndexOutOfRange, len(s), ed.Dim()-1)
		return
	}
	switch d.Kind {
	case Lateral:
		if xs, err = ed.spatial.MacroElementBoundary(t, iSpatial, d.Spatial, s[:len(s)-1]); err != nil {
			return // spatial domain errors pass through unchanged
		}
		if tVal, err = ed.slabs.InterpolateTime(slab, s[len(s)-1]); err != nil {
			return
		}
	case TemporalMin, TemporalMax:
		if xs, err = ed.spatial.MacroElementInterior(t, iSpatial, s); err != nil {
			return
		}
		var tLo, tHi float64
		if tLo, tHi, err = ed.slabs.Bounds(slab); err != nil {
			return
		}
		tVal = tLo
		if d.Kind == TemporalMax {
			tVal = tHi
		}
	}
	x = append(append(make([]float64, 0, len(xs)+1), xs...), tVal)
	return
}

// MacroElementInterior evaluates an interior point of extruded macro element
// iMacro: the spatial interior at the leading coordinates, at the time
// interpolated from the trailing coordinate. This is exactly what the
// temporal cap faces degenerate to when time is pinned.
func (ed *ExtrudedDomain) MacroElementInterior(t float64, iMacro int, s []float64) (x []float64, err error) {
	var (
		slab, iSpatial int
		xs             []float64
		tVal           float64
	)
	if slab, iSpatial, err = decodeMacro(iMacro, ed.spatial.NMacroElement(), ed.slabs.NSlabs); err != nil {
		return
	}
	if len(s) != ed.Dim() {
		err = fmt.Errorf("%w: interior coordinates have %d entries, need %d",
			ErrIndexOutOfRange, len(s), ed.Dim())
		return
	}
	if xs, err = ed.spatial.MacroElementInterior(t, iSpatial, s[:len(s)-1]); err != nil {
		return
	}
	if tVal, err = ed.slabs.InterpolateTime(slab, s[len(s)-1]); err != nil {
		return
	}
	x = append(append(make([]float64, 0, len(xs)+1), xs...), tVal)
	return
}
