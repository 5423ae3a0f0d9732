package footprint

// BoundingBox calculates the bounding box of the footprint.
// Includes graphic lines, pads and custom pad primitives; text labels are
// ignored.
func (fp *Footprint) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()

	for _, line := range fp.Lines {
		expandLine(&bbox, line)
	}

	for i := range fp.Pads {
		pad := &fp.Pads[i]

		halfWidth := pad.Size.Width / 2.0
		halfHeight := pad.Size.Height / 2.0
		bbox.Expand(Position{X: pad.Position.X - halfWidth, Y: pad.Position.Y - halfHeight})
		bbox.Expand(Position{X: pad.Position.X + halfWidth, Y: pad.Position.Y + halfHeight})

		for _, line := range pad.AbsolutePrimitives() {
			expandLine(&bbox, line)
		}
	}

	return bbox
}

// CopperBoundingBox calculates the bounding box of the copper only (pads
// and their primitives).
func (fp *Footprint) CopperBoundingBox() BoundingBox {
	copper := Footprint{Pads: fp.Pads}
	return copper.BoundingBox()
}

// expandLine grows bbox by a stroked line, approximating round caps by
// the half width on both axes
func expandLine(bbox *BoundingBox, line Line) {
	r := line.Width / 2.0
	for _, p := range []Position{line.Start, line.End} {
		bbox.Expand(Position{X: p.X - r, Y: p.Y - r})
		bbox.Expand(Position{X: p.X + r, Y: p.Y + r})
	}
}
