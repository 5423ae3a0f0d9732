// Package antenna computes the copper layout of rectangular spiral NFC loop
// antennas and turns it into a KiCad footprint model.
//
// # Overview
//
// The package provides:
//   - Spec: the antenna parameters (turns, outer size, conductor width and
//     space, drill, slope spacing, silk margin, routing style, name)
//   - RoutingStyle: the strategy that lays out the spiral trace. Three
//     variants exist: Corners, FixedSlope and ConstantSlope45
//   - Generate: resolves automatic parameters, routes the trace and emits a
//     footprint.Footprint with pads, silkscreen outline and labels
//
// # Usage
//
//	spec := antenna.DefaultSpec()
//	spec.Turns = 4
//	res, err := antenna.Generate(spec)
//	if err != nil {
//		return err
//	}
//	for _, w := range res.Warnings {
//		fmt.Println(w)
//	}
//	err = footprint.NewWriter(footprint.Legacy).Write(os.Stdout, res.Footprint)
//
// # Geometry
//
// All dimensions are millimeters in KiCad footprint coordinates: the outer
// copper rectangle spans (0,0) to (Length,Width) and Y grows downwards.
// The spiral is drawn as gr_line primitives of pad 1's custom shape,
// relative to the pad center, so the whole winding belongs to the pad's
// net. Pad 2 owns a single closing primitive. When a drill is requested
// each custom pad sits on top of a through-hole circle pad with the same
// number.
//
// The trace is one contiguous chain: the end of every segment is the start
// of the next one. Corners needs 4*Turns-1 segments, the two slope styles
// 6*Turns-2.
//
// # Limitations
//
//   - The fixed slope style requires conductorWidth + minimalConductorSpace
//     <= conductorWidth + conductorSpace, otherwise Generate fails
//   - Other geometry is not validated; turns < 1 or an outer size smaller than
//     the winding stack yields overlapping or negative-length segments
//   - Only rectangular spirals are supported
package antenna
