package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtrusionParameters(t *testing.T) {
	{ // YAML form with an explicit time range
		data := []byte(`
Title: "Test Case"
NSlabs: 4
TMin: -1.
TMax: 2.
NPlot: 7
OutputFile: "out.dat"
`)
		ep := &ExtrusionParameters{}
		require.NoError(t, ep.Parse(data))
		assert.Equal(t, "Test Case", ep.Title)
		assert.Equal(t, 4, ep.NSlabs)
		assert.Equal(t, 7, ep.NPlot)
		tMin, tMax, err := ep.TimeRange()
		require.NoError(t, err)
		assert.Equal(t, -1., tMin)
		assert.Equal(t, 2., tMax)
	}
	{ // Length shorthand
		ep := &ExtrusionParameters{NSlabs: 2, Length: 3}
		tMin, tMax, err := ep.TimeRange()
		require.NoError(t, err)
		assert.Equal(t, 0., tMin)
		assert.Equal(t, 3., tMax)
	}
	{ // Exactly one form must be supplied
		ep := &ExtrusionParameters{NSlabs: 2}
		_, _, err := ep.TimeRange()
		assert.Error(t, err)
		ep = &ExtrusionParameters{NSlabs: 2, TMax: 1, Length: 1}
		_, _, err = ep.TimeRange()
		assert.Error(t, err)
		ep = &ExtrusionParameters{NSlabs: 2, TMin: 1, TMax: 0}
		_, _, err = ep.TimeRange()
		assert.Error(t, err)
		ep = &ExtrusionParameters{NSlabs: 2, Length: -1}
		_, _, err = ep.TimeRange()
		assert.Error(t, err)
	}
}
