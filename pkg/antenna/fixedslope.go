package antenna

import (
	"errors"
	"fmt"
	"math"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
)

// FixedSlope routes six segments per turn and crosses to the next winding
// with a slope whose offset (xg, yg) is the same on every turn, so the
// crossings line up at one x location left of the center.
type FixedSlope struct{}

func (FixedSlope) Style() Style { return StyleFixedSlope }

// ResolveMinSlopeSpace returns the conductor gap on the slope. Negative
// values default to ConductorSpace/sqrt(2).
func ResolveMinSlopeSpace(s Spec) float64 {
	if s.MinSlopeSpace < 0 {
		return s.ConductorSpace / math.Sqrt2
	}
	return s.MinSlopeSpace
}

// ErrSlopeTooSteep is returned when conductorWidth plus the slope gap is
// wider than the pitch, so no slope angle exists
var ErrSlopeTooSteep = errors.New("slope does not fit between windings")

// checkSlope reports whether the fixed slope of s can be constructed
func checkSlope(s Spec) error {
	ms := ResolveMinSlopeSpace(s)
	if s.ConductorWidth+ms > s.Pitch() {
		return fmt.Errorf("%w: conductorWidth %g + minimalConductorSpace %g > pitch %g",
			ErrSlopeTooSteep, s.ConductorWidth, ms, s.Pitch())
	}
	return nil
}

// SlopeAngle returns the inclination of the slope segment in radians,
// asin((cw+minSlopeSpace)/pitch).
func SlopeAngle(s Spec) float64 {
	return math.Asin((s.ConductorWidth + ResolveMinSlopeSpace(s)) / s.Pitch())
}

// SlopeOffset returns the x and y travel of one slope segment
func SlopeOffset(s Spec) (xg, yg float64) {
	yg = s.Pitch()
	xg = math.Tan(SlopeAngle(s)) * yg
	return xg, yg
}

func (FixedSlope) Route(s Spec) Routing {
	cw, p := s.ConductorWidth, s.Pitch()
	xg, yg := SlopeOffset(s)

	d := 0.0 // inset of the current winding
	run := func() float64 { return s.Length/2 - xg/2 - cw/2 - d }

	count := s.Turns*6 - 2
	t := newTracer(count, cw)
	for seg := 0; seg < count; seg++ {
		next := t.cur
		switch seg % 6 {
		case 0: // left from the middle
			next.X = t.cur.X - run()
		case 1: // up
			next.Y = t.cur.Y - (s.Width - cw - 2*d)
		case 2: // right
			next.X = t.cur.X + (s.Length - cw - 2*d)
		case 3: // down
			next.Y = t.cur.Y + (s.Width - cw - 2*d)
		case 4: // left back to the middle
			next.X = t.cur.X - run()
		case 5: // slope to the next winding
			next.X = t.cur.X - xg
			next.Y = t.cur.Y - yg
			d += p
		}
		t.to(next)
	}

	return Routing{
		Pad1:  footprint.Position{X: s.Length/2 - xg/2, Y: s.Width - cw/2},
		Pad2:  footprint.Position{X: s.Length/2 - xg/2 + xg, Y: s.Width - cw/2 + t.cur.Y},
		Trace: t.segs,
		Closing: Segment{
			End:   footprint.Position{X: s.Length/2 - xg/2 - cw/2 - float64(s.Turns-1)*p},
			Width: cw,
		},
	}
}
