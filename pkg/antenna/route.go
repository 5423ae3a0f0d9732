package antenna

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
)

// ErrUnknownStyle is returned for style values outside 1..3
var ErrUnknownStyle = errors.New("unknown routing style")

// Segment is one straight piece of the trace, relative to its pad center
type Segment = footprint.Primitive

// Routing is the outcome of a RoutingStyle.
// Pad positions are footprint coordinates; Trace is relative to Pad1 and
// Closing is relative to Pad2.
type Routing struct {
	Pad1    footprint.Position
	Pad2    footprint.Position
	Trace   []Segment
	Closing Segment
}

// End returns the end of the trace relative to Pad1
func (r Routing) End() footprint.Position {
	if len(r.Trace) == 0 {
		return footprint.Position{}
	}
	return r.Trace[len(r.Trace)-1].End
}

// RoutingStyle lays out the spiral trace for a spec
type RoutingStyle interface {
	Style() Style
	Route(s Spec) Routing
}

// StyleFor returns the strategy implementing style
func StyleFor(style Style) (RoutingStyle, error) {
	switch style {
	case StyleCorners:
		return Corners{}, nil
	case StyleFixedSlope:
		return FixedSlope{}, nil
	case StyleConstantSlope45:
		return ConstantSlope45{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, int(style))
	}
}

// tracer appends contiguous segments starting at the pad center
type tracer struct {
	cur   footprint.Position
	width float64
	segs  []Segment
}

func newTracer(count int, width float64) *tracer {
	if count < 0 {
		count = 0
	}
	return &tracer{width: width, segs: make([]Segment, 0, count)}
}

func (t *tracer) to(next footprint.Position) {
	t.segs = append(t.segs, Segment{Start: t.cur, End: next, Width: t.width})
	t.cur = next
}
