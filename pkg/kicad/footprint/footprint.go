// Package footprint holds the structured model of a KiCad footprint
// (.kicad_mod) together with its writer and reader.
package footprint

// Footprint represents a single library footprint
type Footprint struct {
	Name  string // Footprint name (also the file name in a .pretty library)
	Layer string // Placement layer, F.Cu for generated footprints
	Tedit int64  // Last edit timestamp (unix seconds, written as hex)
	Texts []Text // Reference/value labels
	Lines []Line // Graphic lines (silkscreen, fab)
	Pads  []Pad  // Pads in file order
}

// Text represents an fp_text label
type Text struct {
	Kind     string   // reference, value or user
	Text     string   // Text content
	Position Position // Position relative to footprint origin
	Layer    string   // Layer name
	Font     Font     // Stroke font
}

// Line represents an fp_line graphic
type Line struct {
	Start Position // Start point
	End   Position // End point
	Layer string   // Layer name
	Width float64  // Stroke width in mm
}

// Length returns the length of the line
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Primitive represents a gr_line inside a custom pad shape.
// Coordinates are relative to the pad center.
type Primitive struct {
	Start Position
	End   Position
	Width float64
}

// Length returns the length of the primitive
func (p Primitive) Length() float64 {
	return p.Start.Distance(p.End)
}

// PadOptions holds the (options ...) of a custom pad
type PadOptions struct {
	Clearance string // outline or convexhull
	Anchor    string // circle or rect
}

// Pad represents a footprint pad
type Pad struct {
	Number      string      // Pad number/name
	Type        string      // Pad type (thru_hole, smd)
	Shape       string      // Pad shape (circle, custom)
	Position    Position    // Center relative to footprint origin
	Size        Size        // Pad size
	Drill       float64     // Drill diameter (0 for SMD)
	Layers      LayerSet    // Layers the pad appears on
	ZoneConnect *int        // Zone connection mode, nil when unset
	Options     *PadOptions // Custom pad options, nil for basic shapes
	Primitives  []Primitive // Custom shape primitives
}

// IsCustom reports whether the pad uses a custom shape
func (p *Pad) IsCustom() bool {
	return p.Shape == ShapeCustom
}

// AbsolutePrimitives returns the pad primitives translated to footprint
// coordinates, as lines on the pad's first layer.
func (p *Pad) AbsolutePrimitives() []Line {
	layer := ""
	if len(p.Layers) > 0 {
		layer = p.Layers[0]
	}

	lines := make([]Line, len(p.Primitives))
	for i, prim := range p.Primitives {
		lines[i] = Line{
			Start: p.Position.Add(prim.Start),
			End:   p.Position.Add(prim.End),
			Layer: layer,
			Width: prim.Width,
		}
	}
	return lines
}

// PadsByNumber returns all pads with the given number, in file order
func (fp *Footprint) PadsByNumber(number string) []*Pad {
	var pads []*Pad
	for i := range fp.Pads {
		if fp.Pads[i].Number == number {
			pads = append(pads, &fp.Pads[i])
		}
	}
	return pads
}

// CustomPad returns the custom-shaped pad with the given number, or nil
func (fp *Footprint) CustomPad(number string) *Pad {
	for _, pad := range fp.PadsByNumber(number) {
		if pad.IsCustom() {
			return pad
		}
	}
	return nil
}

// LinesOnLayer returns the graphic lines drawn on the named layer
func (fp *Footprint) LinesOnLayer(layer string) []Line {
	var lines []Line
	for _, l := range fp.Lines {
		if l.Layer == layer {
			lines = append(lines, l)
		}
	}
	return lines
}

// PrimitiveCount returns the total number of custom pad primitives
func (fp *Footprint) PrimitiveCount() int {
	n := 0
	for _, pad := range fp.Pads {
		n += len(pad.Primitives)
	}
	return n
}
