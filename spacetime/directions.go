package spacetime

import (
	"fmt"

	"github.com/notargets/goextrude/geometry"
)

// DirectionKind classifies an extruded face direction: either a lateral face
// inherited from the spatial boundary, or one of the two temporal caps
// introduced by the extrusion.
type DirectionKind int

const (
	Lateral DirectionKind = iota
	TemporalMin
	TemporalMax
)

func (dk DirectionKind) String() string {
	switch dk {
	case Lateral:
		return "Lateral"
	case TemporalMin:
		return "TemporalMin"
	case TemporalMax:
		return "TemporalMax"
	}
	return "Unknown"
}

// Direction is the decoded form of an extruded face selector. Spatial holds
// the face direction in the spatial domain's own convention and is only
// meaningful when Kind == Lateral.
type Direction struct {
	Kind    DirectionKind
	Spatial int
}

/*
Face selector translation tables.

The extruded domain is one dimension higher than the spatial domain it was
built from, and its faces are numbered in the convention of that higher
dimension - the two conventions do not line up axis by axis, so the mapping
is pinned down here explicitly, once per supported dimensionality pair. Time
is always the LAST reference axis of the extruded element, so the two faces
pinning the last axis become the temporal caps and every other face maps to
the spatial face that pins the same spatial axis to the same end.

2D spatial (quad: N/E/S/W) -> 3D extruded (hex: L/R/D/U/B/F):

	Left  -> West     Right -> East
	Down  -> South    Up    -> North
	Back  -> temporal min cap
	Front -> temporal max cap

3D spatial (hex: L/R/D/U/B/F) -> 4D extruded (selectors 0..7): the six
lateral selectors 0..5 keep the hex numbering unchanged, selector 6 is the
temporal min cap and selector 7 the temporal max cap.
*/
var faceTables = map[int][]Direction{
	2: {
		geometry.Left:  {Kind: Lateral, Spatial: geometry.West},
		geometry.Right: {Kind: Lateral, Spatial: geometry.East},
		geometry.Down:  {Kind: Lateral, Spatial: geometry.South},
		geometry.Up:    {Kind: Lateral, Spatial: geometry.North},
		geometry.Back:  {Kind: TemporalMin},
		geometry.Front: {Kind: TemporalMax},
	},
	3: {
		{Kind: Lateral, Spatial: geometry.Left},
		{Kind: Lateral, Spatial: geometry.Right},
		{Kind: Lateral, Spatial: geometry.Down},
		{Kind: Lateral, Spatial: geometry.Up},
		{Kind: Lateral, Spatial: geometry.Back},
		{Kind: Lateral, Spatial: geometry.Front},
		{Kind: TemporalMin},
		{Kind: TemporalMax},
	},
}

// SupportedSpatialDim reports whether a face translation table exists for
// spatial dimension dim.
func SupportedSpatialDim(dim int) bool {
	_, ok := faceTables[dim]
	return ok
}

// NumExtrudedFaces is the face count of an extruded macro element built from
// a dim-dimensional spatial one: the 2*dim lateral faces plus two caps.
func NumExtrudedFaces(dim int) int {
	return geometry.NumFaces(dim) + 2
}

// DecodeDirection translates an extruded face selector into the spatial
// domain's convention. The table is total: every selector in
// [0,NumExtrudedFaces(spatialDim)) decodes to exactly one Direction.
func DecodeDirection(spatialDim, iDirect int) (d Direction, err error) {
	table, ok := faceTables[spatialDim]
	if !ok {
		err = fmt.Errorf("%w: no face translation table for spatial dimension %d",
			ErrConfiguration, spatialDim)
		return
	}
	if iDirect < 0 || iDirect >= len(table) {
		err = fmt.Errorf("%w: face direction %d outside [0,%d)",
			ErrIndexOutOfRange, iDirect, len(table))
		return
	}
	d = table[iDirect]
	return
}

// decodeMacro splits a flat extruded macro element index into its time slab
// index and the index of the spatial macro element it was extruded from. The
// flat index is the bijection slab*nSpatial + iSpatial.
func decodeMacro(flat, nSpatial, nSlabs int) (slab, iSpatial int, err error) {
	if flat < 0 || flat >= nSlabs*nSpatial {
		err = fmt.Errorf("%w: macro element index %d outside [0,%d)",
			ErrIndexOutOfRange, flat, nSlabs*nSpatial)
		return
	}
	slab = flat / nSpatial
	iSpatial = flat % nSpatial
	return
}
