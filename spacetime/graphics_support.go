package spacetime

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goextrude/geometry"
)

// PlotLateralBoundaries renders the lateral boundary curves of a space-time
// extrusion of a 2D spatial domain, each macro element traced at the bottom
// of its slab and colored by slab index. The returned chart is plotting in a
// goroutine; keep it alive for as long as the window should stay up.
func (ed *ExtrudedDomain) PlotLateralBoundaries(nplot int) (chart *chart2d.Chart2D, err error) {
	var (
		curves [][2][]float64
		names  []string
		slabs  []int
		allX   []float64
		allY   []float64
	)
	if ed.spatial.Dim() != 2 {
		err = fmt.Errorf("%w: lateral boundary plot needs a 2D spatial domain, have %dD",
			ErrConfiguration, ed.spatial.Dim())
		return
	}
	if nplot < 2 {
		err = fmt.Errorf("%w: need at least 2 plot points per direction, got %d",
			ErrConfiguration, nplot)
		return
	}
	for _, el := range ed.elements {
		for iDirect := 0; iDirect < geometry.NumFaces(2); iDirect++ {
			xs := make([]float64, nplot)
			ys := make([]float64, nplot)
			for p := 0; p < nplot; p++ {
				sFace := -1 + 2*float64(p)/float64(nplot-1)
				var x []float64
				// Trace at the bottom of the slab (time coordinate -1)
				if x, err = el.Boundary(0, iDirect, []float64{sFace, -1}); err != nil {
					return
				}
				xs[p], ys[p] = x[0], x[1]
			}
			curves = append(curves, [2][]float64{xs, ys})
			names = append(names, fmt.Sprintf("macro%d-face%d", el.Index(), iDirect))
			slabs = append(slabs, el.Slab())
			allX = append(allX, xs...)
			allY = append(allY, ys...)
		}
	}
	xmin, xmax := floats.Min(allX), floats.Max(allX)
	ymin, ymax := floats.Min(allY), floats.Max(allY)
	chart = chart2d.NewChart2D(1024, 1024,
		float32(xmin), float32(xmax), float32(ymin), float32(ymax))
	colorMap := utils2.NewColorMap(0, float32(ed.slabs.NSlabs), 1)
	chart.AddColorMap(colorMap)
	go chart.Plot()
	for i, c := range curves {
		if err = chart.AddSeries(names[i], c[0], c[1],
			chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(float32(slabs[i]))); err != nil {
			return
		}
	}
	return
}
