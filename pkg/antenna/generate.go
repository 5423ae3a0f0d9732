package antenna

import (
	"fmt"
	"time"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
)

// Pad numbers of the spiral ends
const (
	PadStart = "1"
	PadEnd   = "2"
)

// Result is the generated antenna
type Result struct {
	Spec      Spec                 // Input with DrillSize and MinSlopeSpace resolved
	Routing   Routing              // Trace geometry
	Footprint *footprint.Footprint // Footprint model ready for a writer
	Warnings  []Warning            // Non-fatal input remarks
}

// Option configures Generate
type Option func(*generator)

// WithClock sets the clock used for the footprint edit timestamp
func WithClock(now func() time.Time) Option {
	return func(g *generator) {
		g.now = now
	}
}

// WithStyle overrides the routing strategy selected by Spec.Style
func WithStyle(style RoutingStyle) Option {
	return func(g *generator) {
		g.style = style
	}
}

type generator struct {
	now   func() time.Time
	style RoutingStyle
}

// Generate lays out the antenna described by spec. Apart from the edit
// timestamp the result depends only on spec. It fails on an unknown style
// and on a fixed slope that cannot be built; other geometry is not
// validated.
func Generate(spec Spec, opts ...Option) (*Result, error) {
	g := &generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}

	if g.style == nil {
		style, err := StyleFor(spec.Style)
		if err != nil {
			return nil, err
		}
		g.style = style
	}

	resolved := spec
	var warnings []Warning
	resolved.DrillSize, warnings = ResolveDrill(spec.ConductorWidth, spec.DrillSize)
	if g.style.Style() == StyleFixedSlope {
		resolved.MinSlopeSpace = ResolveMinSlopeSpace(spec)
		if err := checkSlope(resolved); err != nil {
			return nil, err
		}
	}

	routing := g.style.Route(resolved)

	fp := &footprint.Footprint{
		Name:  spec.Name,
		Layer: footprint.LayerFrontCopper,
		Tedit: g.now().Unix(),
		Texts: Labels(spec),
		Lines: Outline(spec),
	}
	fp.Pads = append(fp.Pads, spiralPads(PadStart, routing.Pad1, routing.Trace, resolved)...)
	fp.Pads = append(fp.Pads, spiralPads(PadEnd, routing.Pad2, []Segment{routing.Closing}, resolved)...)

	return &Result{
		Spec:      resolved,
		Routing:   routing,
		Footprint: fp,
		Warnings:  warnings,
	}, nil
}

// spiralPads returns the pads of one spiral end: an optional through-hole
// circle and the custom pad carrying the trace primitives.
func spiralPads(number string, center footprint.Position, prims []Segment, s Spec) []footprint.Pad {
	size := footprint.Size{Width: s.ConductorWidth, Height: s.ConductorWidth}
	var pads []footprint.Pad

	if s.DrillSize > 0 {
		pads = append(pads, footprint.Pad{
			Number:   number,
			Type:     footprint.PadThroughHole,
			Shape:    footprint.ShapeCircle,
			Position: center,
			Size:     size,
			Drill:    s.DrillSize,
			Layers:   footprint.LayerSet{footprint.LayerAllCopper, footprint.LayerAllMask},
		})
	}

	zone := 0
	pads = append(pads, footprint.Pad{
		Number:      number,
		Type:        footprint.PadSMD,
		Shape:       footprint.ShapeCustom,
		Position:    center,
		Size:        size,
		Layers:      footprint.LayerSet{footprint.LayerFrontCopper},
		ZoneConnect: &zone,
		Options:     &footprint.PadOptions{Clearance: "outline", Anchor: "circle"},
		Primitives:  append([]Segment(nil), prims...),
	})

	return pads
}

// Summary returns a one-line description of the result
func (r *Result) Summary() string {
	return fmt.Sprintf("%s: %d turns, %s, %d trace segments, drill %.1f mm",
		r.Spec.Name, r.Spec.Turns, r.Spec.Style, len(r.Routing.Trace), r.Spec.DrillSize)
}
