/*
Package facets assembles raw polyhedral surface descriptions - vertex and
facet lists - used to seed a volumetric mesh generator. The surfaces carry no
parametrization; they are static data plus consistency checks.
*/
package facets

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
)

// Surface is a triangulated surface: Facets index into Vertices.
type Surface struct {
	Vertices [][3]float64
	Facets   [][3]int
}

// NewSphericalSurface builds the 12-vertex, 20-facet icosahedral surface with
// all vertices projected onto the sphere of the given radius. This is the
// standard coarse seed for tetrahedral meshing of a spherical cavity.
func NewSphericalSurface(radius float64) (fs *Surface) {
	phi := 0.5 * (1 + math.Sqrt(5))
	fs = &Surface{
		Vertices: [][3]float64{
			{0, 1, phi},
			{0, -1, phi},
			{0, 1, -phi},
			{0, -1, -phi},
			{1, phi, 0},
			{-1, phi, 0},
			{1, -phi, 0},
			{-1, -phi, 0},
			{phi, 0, 1},
			{phi, 0, -1},
			{-phi, 0, 1},
			{-phi, 0, -1},
		},
		Facets: [][3]int{
			{0, 1, 8},
			{0, 10, 1},
			{0, 5, 10},
			{0, 4, 5},
			{0, 8, 4},
			{1, 6, 8},
			{1, 7, 6},
			{1, 10, 7},
			{2, 9, 3},
			{2, 3, 11},
			{2, 11, 5},
			{2, 5, 4},
			{2, 4, 9},
			{3, 9, 6},
			{3, 6, 7},
			{3, 7, 11},
			{4, 8, 9},
			{5, 11, 10},
			{6, 9, 8},
			{7, 10, 11},
		},
	}
	for i := range fs.Vertices {
		v := fs.Vertices[i][:]
		floats.Scale(radius/floats.Norm(v, 2), v)
	}
	return
}

// NVertex is the number of vertices on the surface.
func (fs *Surface) NVertex() int { return len(fs.Vertices) }

// NFacet is the number of facets on the surface.
func (fs *Surface) NFacet() int { return len(fs.Facets) }

// IsClosed reports whether every facet edge is shared by exactly two facets,
// i.e. the surface is watertight and can bound a meshing region. Each facet
// contributes three directed edges; two edges coincide exactly when their
// edge-to-vertex incidence rows have a dot product of 2, so the check is a
// single sparse product of the incidence matrix with its transpose.
func (fs *Surface) IsClosed() bool {
	var (
		nEdge = 3 * len(fs.Facets)
		eToV  = sparse.NewDOK(nEdge, len(fs.Vertices))
	)
	for f, facet := range fs.Facets {
		for i := 0; i < 3; i++ {
			eToV.Set(3*f+i, facet[i], 1)
			eToV.Set(3*f+i, facet[(i+1)%3], 1)
		}
	}
	csr := eToV.ToCSR()
	eToE := sparse.NewCSR(nEdge, nEdge, nil, nil, nil)
	eToE.Mul(csr, csr.T())
	for i := 0; i < nEdge; i++ {
		var nShared int
		for j := 0; j < nEdge; j++ {
			if j != i && eToE.At(i, j) == 2 {
				nShared++
			}
		}
		if nShared != 1 {
			return false
		}
	}
	return true
}
