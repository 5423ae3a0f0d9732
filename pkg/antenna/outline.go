package antenna

import "github.com/OpenTraceLab/nfcant/pkg/kicad/footprint"

// Silkscreen and label dimensions
const (
	SilkLineWidth = 0.15
	TextSize      = 1.0
	TextThickness = 0.15
	ValueOffset   = 2.0 // value label distance below the reference
)

// Outline returns the silkscreen marking of the antenna: the full outline
// on F.SilkS and corner marks on B.SilkS. It returns nil when SilkMargin
// is negative.
func Outline(s Spec) []footprint.Line {
	m := s.SilkMargin
	if m < 0 {
		return nil
	}

	l, w := s.Length, s.Width
	k := s.WindingDepth() + m

	front := func(x0, y0, x1, y1 float64) footprint.Line {
		return silkLine(footprint.LayerFrontSilk, x0, y0, x1, y1)
	}
	back := func(x0, y0, x1, y1 float64) footprint.Line {
		return silkLine(footprint.LayerBackSilk, x0, y0, x1, y1)
	}

	return []footprint.Line{
		front(-m, -m, l+m, -m),   // top
		front(l+m, -m, l+m, w+m), // right
		front(l+m, w+m, -m, w+m), // bottom
		front(-m, w+m, -m, -m),   // left
		back(-m, -m, k, -m),      // top left, right
		back(-m, -m, -m, k),      // top left, down
		back(l+m, -m, l-k, -m),   // top right, left
		back(l+m, -m, l+m, k),    // top right, down
		back(l+m, w+m, l-k, w+m), // bottom right, left
		back(l+m, w+m, l+m, w-k), // bottom right, up
		back(-m, w+m, k, w+m),    // bottom left, right
		back(-m, w+m, -m, w-k),   // bottom left, up
	}
}

func silkLine(layer string, x0, y0, x1, y1 float64) footprint.Line {
	return footprint.Line{
		Start: footprint.Position{X: x0, Y: y0},
		End:   footprint.Position{X: x1, Y: y1},
		Layer: layer,
		Width: SilkLineWidth,
	}
}

// Labels returns the reference and value texts centered on the antenna
func Labels(s Spec) []footprint.Text {
	font := footprint.Font{
		Size:      footprint.Size{Width: TextSize, Height: TextSize},
		Thickness: TextThickness,
	}

	return []footprint.Text{
		{
			Kind:     footprint.TextReference,
			Text:     "REF**",
			Position: footprint.Position{X: s.Length / 2, Y: s.Width / 2},
			Layer:    footprint.LayerFrontSilk,
			Font:     font,
		},
		{
			Kind:     footprint.TextValue,
			Text:     s.Name,
			Position: footprint.Position{X: s.Length / 2, Y: s.Width/2 + ValueOffset},
			Layer:    footprint.LayerFrontFab,
			Font:     font,
		},
	}
}
