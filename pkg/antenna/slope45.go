package antenna

import (
	"math"

	"github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"
)

// ConstantSlope45 uses the six-segment topology of FixedSlope with every
// slope at 45 degrees. The horizontal runs into and out of the middle are
// stretched by dx1 per turn so the slopes of successive windings stay
// parallel.
type ConstantSlope45 struct{}

func (ConstantSlope45) Style() Style { return StyleConstantSlope45 }

// Slope45Offset returns the pad spread of a 45 degree antenna:
// xg = ((sqrt2-1)*turns+1)*pitch and yg = (turns-1)*pitch.
func Slope45Offset(s Spec) (xg, yg float64) {
	p := s.Pitch()
	xg = ((math.Sqrt2-1)*float64(s.Turns) + 1) * p
	yg = float64(s.Turns-1) * p
	return xg, yg
}

func (ConstantSlope45) Route(s Spec) Routing {
	cw, p := s.ConductorWidth, s.Pitch()
	xg, yg := Slope45Offset(s)
	dx1 := (math.Sqrt2 - 1) * p
	dx2 := p * math.Sqrt2

	d := 0.0
	run := func() float64 { return s.Length/2 - xg/2 - cw/2 - d }

	count := s.Turns*6 - 2
	lastTurn := 0
	t := newTracer(count, cw)
	for seg := 0; seg < count; seg++ {
		turn := seg / 6
		lastTurn = turn
		next := t.cur
		switch seg % 6 {
		case 0: // left from the middle
			next.X = t.cur.X - run() - float64(turn)*dx1
		case 1: // up
			next.Y = t.cur.Y - (s.Width - cw - 2*d)
		case 2: // right
			next.X = t.cur.X + (s.Length - cw - 2*d)
		case 3: // down
			next.Y = t.cur.Y + (s.Width - cw - 2*d)
		case 4: // left back to the middle
			next.X = t.cur.X - run() - float64(s.Turns-1-turn)*dx1
		case 5: // 45 degree slope to the next winding
			next.X = t.cur.X - dx2 + dx1
			next.Y = t.cur.Y - p
			d += p
		}
		t.to(next)
	}

	return Routing{
		Pad1:  footprint.Position{X: s.Length/2 - xg/2, Y: s.Width - cw/2},
		Pad2:  footprint.Position{X: s.Length/2 + xg/2, Y: s.Width - cw/2 - yg},
		Trace: t.segs,
		Closing: Segment{
			End:   footprint.Position{X: run() + float64(s.Turns-1-lastTurn)*dx1},
			Width: cw,
		},
	}
}
