package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. Exactly one of
// {TMin,TMax} or Length may be supplied to fix the extrusion range.
type ExtrusionParameters struct {
	Title      string  `yaml:"Title"`
	NSlabs     int     `yaml:"NSlabs"`
	TMin       float64 `yaml:"TMin"`
	TMax       float64 `yaml:"TMax"`
	Length     float64 `yaml:"Length"`
	NPlot      int     `yaml:"NPlot"`
	OutputFile string  `yaml:"OutputFile"`
}

func (ep *ExtrusionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ep)
}

func (ep *ExtrusionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ep.Title)
	fmt.Printf("[%d]\t\t\t= NSlabs\n", ep.NSlabs)
	if ep.Length != 0 {
		fmt.Printf("%8.5f\t\t= Length\n", ep.Length)
	} else {
		fmt.Printf("%8.5f\t\t= TMin\n", ep.TMin)
		fmt.Printf("%8.5f\t\t= TMax\n", ep.TMax)
	}
	fmt.Printf("[%d]\t\t\t= NPlot\n", ep.NPlot)
}

// TimeRange resolves the two accepted forms of the extrusion range. A Length
// is shorthand for [0,Length]; supplying both forms, or neither, is an error.
func (ep *ExtrusionParameters) TimeRange() (tMin, tMax float64, err error) {
	var (
		haveRange  = ep.TMin != 0 || ep.TMax != 0
		haveLength = ep.Length != 0
	)
	switch {
	case haveRange && haveLength:
		err = fmt.Errorf("supply either TMin/TMax or Length, not both")
	case haveLength:
		if ep.Length < 0 {
			err = fmt.Errorf("Length must be positive, got %g", ep.Length)
			return
		}
		tMax = ep.Length
	case haveRange:
		tMin, tMax = ep.TMin, ep.TMax
		if tMax <= tMin {
			err = fmt.Errorf("need TMax > TMin, got [%g,%g]", tMin, tMax)
		}
	default:
		err = fmt.Errorf("supply either TMin/TMax or Length")
	}
	return
}
