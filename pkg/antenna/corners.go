package antenna

import "github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"

// Corners routes a plain rectangular spiral without slopes. The trace
// starts in the lower left corner going up and shrinks the right and
// bottom runs by one pitch per turn; both pads end up on the left side.
type Corners struct{}

func (Corners) Style() Style { return StyleCorners }

func (Corners) Route(s Spec) Routing {
	cw, p := s.ConductorWidth, s.Pitch()
	dx := s.Length - cw
	dy := s.Width - cw

	count := s.Turns*4 - 1
	t := newTracer(count, cw)
	for seg := 0; seg < count; seg++ {
		turn := seg / 4
		next := t.cur
		switch seg % 4 {
		case 0: // up
			next.Y -= dy
		case 1: // right, full length on the first turn
			if turn > 0 {
				dx -= p
			}
			next.X += dx
		case 2: // down, full length on the first turn
			if turn > 0 {
				dy -= p
			}
			next.Y += dy
		case 3: // left
			dx -= p
			next.X -= dx
			dy -= p
		}
		t.to(next)
	}

	return Routing{
		Pad1:  footprint.Position{X: cw / 2, Y: s.Width - cw/2},
		Pad2:  footprint.Position{X: cw/2 + float64(s.Turns)*p, Y: s.Width - cw/2 + t.cur.Y},
		Trace: t.segs,
		Closing: Segment{
			End:   footprint.Position{X: s.Length + s.ConductorSpace - 2*float64(s.Turns)*p},
			Width: cw,
		},
	}
}
