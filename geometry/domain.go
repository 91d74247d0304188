package geometry

import "fmt"

/*
A Domain is a solution domain decomposed into a small number of curvilinear
macro elements. The domain does not store its geometry explicitly - instead it
evaluates boundary positions on demand, parametrized by the local coordinate(s)
along each boundary. Local coordinates live on the reference interval [-1,1]
on every axis.

MacroElementBoundary returns the physical position of a point on face iDirect
of macro element iMacro, given the face-local coordinates s (one fewer entry
than Dim). MacroElementInterior returns the physical position of a point in
the interior of macro element iMacro, given the full Dim-length coordinate
vector. The continuous time t is passed through so that domains with moving
boundaries can be represented; static domains ignore it.
*/
type Domain interface {
	Dim() int
	NMacroElement() int
	MacroElementBoundary(t float64, iMacro, iDirect int, s []float64) (x []float64, err error)
	MacroElementInterior(t float64, iMacro int, s []float64) (x []float64, err error)
}

// Face directions for quadrilateral (2D) macro elements. The relative order
// N,E,S,W follows the quadtree convention.
const (
	North = iota
	East
	South
	West
	NumQuadFaces
)

// Face directions for hexahedral (3D) macro elements. L/R pin the first
// reference axis, D/U the second, B/F the third.
const (
	Left = iota
	Right
	Down
	Up
	Back
	Front
	NumHexFaces
)

// NumFaces returns the number of lateral faces of a dim-dimensional macro
// element (2 per reference axis).
func NumFaces(dim int) int {
	return 2 * dim
}

// FaceAxis reports which reference axis the face iDirect pins, and the end of
// the reference interval it pins it to (-1 or +1). Only the quad and hex
// conventions are defined.
func FaceAxis(dim, iDirect int) (axis int, sign float64, err error) {
	switch dim {
	case 2:
		switch iDirect {
		case North:
			return 1, 1, nil
		case East:
			return 0, 1, nil
		case South:
			return 1, -1, nil
		case West:
			return 0, -1, nil
		}
	case 3:
		switch iDirect {
		case Left:
			return 0, -1, nil
		case Right:
			return 0, 1, nil
		case Down:
			return 1, -1, nil
		case Up:
			return 1, 1, nil
		case Back:
			return 2, -1, nil
		case Front:
			return 2, 1, nil
		}
	default:
		err = fmt.Errorf("no face convention defined for dimension %d", dim)
		return
	}
	err = fmt.Errorf("face direction %d out of range for dimension %d", iDirect, dim)
	return
}

// FaceCoords embeds the face-local coordinates sFace into a full dim-length
// reference coordinate vector by pinning the face axis. The free axes keep
// their original order.
func FaceCoords(dim, iDirect int, sFace []float64) (s []float64, err error) {
	var (
		axis int
		sign float64
	)
	if axis, sign, err = FaceAxis(dim, iDirect); err != nil {
		return
	}
	if len(sFace) != dim-1 {
		err = fmt.Errorf("face coordinates have %d entries, need %d for dimension %d",
			len(sFace), dim-1, dim)
		return
	}
	s = make([]float64, dim)
	var iFree int
	for i := 0; i < dim; i++ {
		if i == axis {
			s[i] = sign
		} else {
			s[i] = sFace[iFree]
			iFree++
		}
	}
	return
}
