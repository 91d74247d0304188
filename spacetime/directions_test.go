package spacetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/goextrude/geometry"
)

func TestDecodeDirectionTotality(t *testing.T) {
	// Every extruded selector must decode to exactly one of lateral,
	// temporal-min or temporal-max, the laterals must cover the spatial face
	// range exactly once, and there must be exactly one cap at each end.
	for _, dim := range []int{2, 3} {
		var (
			nFaces      = NumExtrudedFaces(dim)
			nMin, nMax  int
			lateralSeen = make(map[int]int)
		)
		require.True(t, SupportedSpatialDim(dim))
		assert.Equal(t, 2*dim+2, nFaces)
		for iDirect := 0; iDirect < nFaces; iDirect++ {
			d, err := DecodeDirection(dim, iDirect)
			require.NoError(t, err)
			switch d.Kind {
			case Lateral:
				assert.GreaterOrEqual(t, d.Spatial, 0)
				assert.Less(t, d.Spatial, geometry.NumFaces(dim))
				lateralSeen[d.Spatial]++
			case TemporalMin:
				nMin++
			case TemporalMax:
				nMax++
			default:
				t.Fatalf("selector %d decoded to unknown kind %v", iDirect, d.Kind)
			}
		}
		assert.Equal(t, 1, nMin)
		assert.Equal(t, 1, nMax)
		assert.Equal(t, geometry.NumFaces(dim), len(lateralSeen))
		for spatial, n := range lateralSeen {
			assert.Equal(t, 1, n, "spatial face %d", spatial)
		}
	}
}

func TestDecodeDirectionTable(t *testing.T) {
	{ // 2D spatial -> 3D extruded: the hex L/R/D/U faces are the quad
		// W/E/S/N faces, B/F are the caps
		cases := map[int]Direction{
			geometry.Left:  {Kind: Lateral, Spatial: geometry.West},
			geometry.Right: {Kind: Lateral, Spatial: geometry.East},
			geometry.Down:  {Kind: Lateral, Spatial: geometry.South},
			geometry.Up:    {Kind: Lateral, Spatial: geometry.North},
			geometry.Back:  {Kind: TemporalMin},
			geometry.Front: {Kind: TemporalMax},
		}
		for iDirect, want := range cases {
			d, err := DecodeDirection(2, iDirect)
			require.NoError(t, err)
			assert.Equal(t, want, d)
		}
	}
	{ // 3D spatial -> 4D extruded: lateral numbering is unchanged
		for iDirect := 0; iDirect < 6; iDirect++ {
			d, err := DecodeDirection(3, iDirect)
			require.NoError(t, err)
			assert.Equal(t, Direction{Kind: Lateral, Spatial: iDirect}, d)
		}
		d, err := DecodeDirection(3, 6)
		require.NoError(t, err)
		assert.Equal(t, TemporalMin, d.Kind)
		d, err = DecodeDirection(3, 7)
		require.NoError(t, err)
		assert.Equal(t, TemporalMax, d.Kind)
	}
	{ // Errors
		_, err := DecodeDirection(2, -1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = DecodeDirection(2, NumExtrudedFaces(2))
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = DecodeDirection(4, 0)
		assert.ErrorIs(t, err, ErrConfiguration)
	}
}

func TestDecodeMacroBijection(t *testing.T) {
	for _, nSlabs := range []int{1, 2, 5} {
		for _, nSpatial := range []int{1, 3, 8} {
			seen := make(map[[2]int]bool)
			for flat := 0; flat < nSlabs*nSpatial; flat++ {
				slab, iSpatial, err := decodeMacro(flat, nSpatial, nSlabs)
				require.NoError(t, err)
				assert.Equal(t, flat, slab*nSpatial+iSpatial)
				assert.False(t, seen[[2]int{slab, iSpatial}])
				seen[[2]int{slab, iSpatial}] = true
			}
			assert.Equal(t, nSlabs*nSpatial, len(seen))
			_, _, err := decodeMacro(nSlabs*nSpatial, nSpatial, nSlabs)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			_, _, err = decodeMacro(-1, nSpatial, nSlabs)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		}
	}
}
