/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/goextrude/InputParameters"
	"github.com/notargets/goextrude/geometry"
	"github.com/notargets/goextrude/spacetime"
)

type ModelExtrude struct {
	ICFile  string
	Graph   bool
	Profile bool
	Delay   time.Duration
}

// ExtrudeCmd represents the extrude command
var ExtrudeCmd = &cobra.Command{
	Use:   "extrude",
	Short: "Extrude a demo spatial domain into space-time and output its macro element boundaries",
	Long: `Reads extrusion parameters from a YAML file, lifts an annular sector
domain into space-time by stacking uniform time slabs and writes the
extruded macro element boundaries in tecplot format`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		me := &ModelExtrude{}
		if me.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		me.Graph, _ = cmd.Flags().GetBool("graph")
		me.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		me.Delay = time.Duration(dr) * time.Millisecond
		ep := processInput(me)
		RunExtrude(me, ep)
	},
}

func init() {
	ExtrudeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the extrusion parameters")
	ExtrudeCmd.Flags().BoolP("graph", "g", false, "display the extruded lateral boundaries while running")
	ExtrudeCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
	ExtrudeCmd.Flags().IntP("delay", "d", 0, "milliseconds to keep the plot up")
}

func processInput(me *ModelExtrude) (ep *InputParameters.ExtrusionParameters) {
	var (
		err error
	)
	if len(me.ICFile) == 0 {
		fmt.Printf("error: must supply an input parameters file (-I, --inputConditionsFile)\n")
		exampleFile := `
########################################
Title: "Annular Sector"
NSlabs: 4
Length: 1.
NPlot: 5
OutputFile: "extruded.dat"
########################################
`
		fmt.Printf("Example parameters file:%s\n", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(me.ICFile)
	if err != nil {
		fmt.Printf("error: unable to read parameters file %s: %s\n", me.ICFile, err.Error())
		os.Exit(1)
	}
	ep = &InputParameters.ExtrusionParameters{NPlot: 5}
	if err = ep.Parse(data); err != nil {
		fmt.Printf("error: unable to parse parameters file %s: %s\n", me.ICFile, err.Error())
		os.Exit(1)
	}
	ep.Print()
	return
}

func RunExtrude(me *ModelExtrude, ep *InputParameters.ExtrusionParameters) {
	var (
		err error
	)
	if me.Profile {
		defer profile.Start().Stop()
	}
	tMin, tMax, err := ep.TimeRange()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	spatial := geometry.NewAnnularSectorDomain(0.5, 1, 0.25*3.141592653589793)
	ed, err := spacetime.NewExtrudedDomain(spatial, ep.NSlabs, tMin, tMax)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Extruded %d spatial macro element(s) into %d space-time macro element(s) over [%g,%g]\n",
		spatial.NMacroElement(), ed.NMacroElement(), tMin, tMax)
	outFile := ep.OutputFile
	if len(outFile) == 0 {
		outFile = "extruded.dat"
	}
	f, err := os.Create(outFile)
	if err != nil {
		fmt.Printf("error: unable to create output file %s: %s\n", outFile, err.Error())
		os.Exit(1)
	}
	defer f.Close()
	if err = ed.OutputMacroElementBoundaries(f, ep.NPlot); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Wrote macro element boundaries to %s\n", outFile)
	if me.Graph {
		if _, err = ed.PlotLateralBoundaries(ep.NPlot); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		time.Sleep(me.Delay)
	}
}
