package antenna

import "fmt"

// Style selects the routing strategy of the spiral
type Style int

const (
	// StyleCorners routes without slopes; pads sit in the lower left corner
	StyleCorners Style = 1
	// StyleFixedSlope crosses to the next winding at a fixed x location
	StyleFixedSlope Style = 2
	// StyleConstantSlope45 crosses with a constant 45 degree slope
	StyleConstantSlope45 Style = 3
)

func (s Style) String() string {
	switch s {
	case StyleCorners:
		return "corners"
	case StyleFixedSlope:
		return "fixed-slope"
	case StyleConstantSlope45:
		return "constant-slope-45"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Valid reports whether s names a known style
func (s Style) Valid() bool {
	return s >= StyleCorners && s <= StyleConstantSlope45
}

// Spec describes one antenna. Lengths are in millimeters.
type Spec struct {
	Name           string  // Footprint name, also the output file name
	Turns          int     // Number of windings
	Length         float64 // Outer copper length (x)
	Width          float64 // Outer copper width (y)
	ConductorWidth float64 // Trace width
	ConductorSpace float64 // Gap between adjacent windings
	DrillSize      float64 // Pad drill; < 0 auto, 0 SMD only
	MinSlopeSpace  float64 // Gap on the slope (style 2 only); < 0 auto
	SilkMargin     float64 // Outline offset from the copper; < 0 no outline
	Style          Style   // Routing style
}

// DefaultSpec returns the parameter set used when antgen runs without
// arguments.
func DefaultSpec() Spec {
	return Spec{
		Name:           "nfc_ant",
		Turns:          3,
		Length:         75.4,
		Width:          33.5,
		ConductorWidth: 2.7,
		ConductorSpace: 1.7,
		DrillSize:      -1,
		MinSlopeSpace:  -1,
		SilkMargin:     1.0,
		Style:          StyleConstantSlope45,
	}
}

// Pitch returns the distance between the centerlines of adjacent windings
func (s Spec) Pitch() float64 {
	return s.ConductorWidth + s.ConductorSpace
}

// WindingDepth returns the depth of the winding stack measured from the
// outer copper edge: Turns*Pitch - ConductorSpace.
func (s Spec) WindingDepth() float64 {
	return float64(s.Turns)*s.Pitch() - s.ConductorSpace
}
