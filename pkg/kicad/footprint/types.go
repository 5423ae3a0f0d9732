package footprint

import (
	"github.com/OpenTraceLab/nfcant/pkg/kicad/sexp"
)

// Shared types (aliases to sexp package)
type Position = sexp.Position
type Size = sexp.Size
type Font = sexp.Font
type BoundingBox = sexp.BoundingBox

// Re-export BoundingBox constructor
var NewBoundingBox = sexp.NewBoundingBox

// Layer names used by generated footprints
const (
	LayerFrontCopper = "F.Cu"
	LayerFrontSilk   = "F.SilkS"
	LayerBackSilk    = "B.SilkS"
	LayerFrontFab    = "F.Fab"
	LayerAllCopper   = "*.Cu"
	LayerAllMask     = "*.Mask"
)

// Pad types
const (
	PadThroughHole = "thru_hole"
	PadSMD         = "smd"
)

// Pad shapes
const (
	ShapeCircle = "circle"
	ShapeCustom = "custom"
)

// Text kinds
const (
	TextReference = "reference"
	TextValue     = "value"
)

// LayerSet represents a set of layers
type LayerSet []string

// Contains reports whether the set includes the named layer
func (ls LayerSet) Contains(name string) bool {
	for _, l := range ls {
		if l == name {
			return true
		}
	}
	return false
}
