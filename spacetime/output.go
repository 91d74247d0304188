package spacetime

import "io"

// Output writes the macro map of every extruded macro element as a tecplot
// zone.
func (ed *ExtrudedDomain) Output(w io.Writer, nplot int) error {
	for _, el := range ed.elements {
		if err := el.Output(w, nplot); err != nil {
			return err
		}
	}
	return nil
}

// OutputMacroElementBoundaries writes every boundary face of every extruded
// macro element as a tecplot zone.
func (ed *ExtrudedDomain) OutputMacroElementBoundaries(w io.Writer, nplot int) error {
	for _, el := range ed.elements {
		if err := el.OutputBoundaries(w, nplot); err != nil {
			return err
		}
	}
	return nil
}
