package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceAxis(t *testing.T) {
	{ // Quad: N/S pin the second axis, E/W the first
		cases := []struct {
			iDirect int
			axis    int
			sign    float64
		}{
			{North, 1, 1},
			{East, 0, 1},
			{South, 1, -1},
			{West, 0, -1},
		}
		for _, c := range cases {
			axis, sign, err := FaceAxis(2, c.iDirect)
			require.NoError(t, err)
			assert.Equal(t, c.axis, axis)
			assert.Equal(t, c.sign, sign)
		}
	}
	{ // Hex: L/R, D/U, B/F pin axes 0, 1, 2 in order
		for iDirect := 0; iDirect < NumHexFaces; iDirect++ {
			axis, sign, err := FaceAxis(3, iDirect)
			require.NoError(t, err)
			assert.Equal(t, iDirect/2, axis)
			if iDirect%2 == 0 {
				assert.Equal(t, -1., sign)
			} else {
				assert.Equal(t, 1., sign)
			}
		}
	}
	{
		_, _, err := FaceAxis(2, NumQuadFaces)
		assert.Error(t, err)
		_, _, err = FaceAxis(4, 0)
		assert.Error(t, err)
	}
}

func TestFaceCoords(t *testing.T) {
	s, err := FaceCoords(2, West, []float64{0.3})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0.3}, s)

	s, err = FaceCoords(2, North, []float64{-0.7})
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.7, 1}, s)

	s, err = FaceCoords(3, Back, []float64{0.1, 0.2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, -1}, s)

	s, err = FaceCoords(3, Up, []float64{0.1, 0.2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 1, 0.2}, s)

	_, err = FaceCoords(2, West, []float64{0.3, 0.4})
	assert.Error(t, err)
}

func TestWarpedBoxDomain(t *testing.T) {
	{
		_, err := NewWarpedBoxDomain(4, func(t float64, s []float64) []float64 { return s })
		assert.Error(t, err)
		_, err = NewWarpedBoxDomain(2, nil)
		assert.Error(t, err)
	}
	{ // Boundary evaluation is interior evaluation with the face axis pinned
		wb := NewAnnularSectorDomain(0.5, 1, 0.25*math.Pi)
		xb, err := wb.MacroElementBoundary(0, 0, East, []float64{0.2})
		require.NoError(t, err)
		xi, err := wb.MacroElementInterior(0, 0, []float64{1, 0.2})
		require.NoError(t, err)
		assert.Equal(t, xi, xb)
	}
	{ // The annular sector spans the requested radii
		wb := NewAnnularSectorDomain(0.5, 1, 0.25*math.Pi)
		x, err := wb.MacroElementInterior(0, 0, []float64{-1, 0})
		require.NoError(t, err)
		assert.InDelta(t, 0.5, math.Hypot(x[0], x[1]), 1e-14)
		x, err = wb.MacroElementInterior(0, 0, []float64{1, 0})
		require.NoError(t, err)
		assert.InDelta(t, 1, math.Hypot(x[0], x[1]), 1e-14)
		// and its western face sits at the minimum radius everywhere
		for _, sv := range []float64{-1, -0.5, 0, 0.5, 1} {
			x, err = wb.MacroElementBoundary(0, 0, West, []float64{sv})
			require.NoError(t, err)
			assert.InDelta(t, 0.5, math.Hypot(x[0], x[1]), 1e-14)
		}
	}
	{ // Index and argument checking
		wb := NewUnitSquareDomain()
		assert.Equal(t, 2, wb.Dim())
		assert.Equal(t, 1, wb.NMacroElement())
		_, err := wb.MacroElementBoundary(0, 1, West, []float64{0})
		assert.Error(t, err)
		_, err = wb.MacroElementInterior(0, 0, []float64{0})
		assert.Error(t, err)
	}
	{ // The warped cube reduces to the identity at zero amplitude
		wb := NewWarpedCubeDomain(0)
		x, err := wb.MacroElementInterior(0, 0, []float64{0.3, -0.2, 0.9})
		require.NoError(t, err)
		assert.Equal(t, []float64{0.3, -0.2, 0.9}, x)
	}
}
