package antenna

import "math"

// ResolveDrill returns the drill diameter used for the pads.
// A negative size is replaced by half the conductor width floored to one
// decimal; the result 0 means SMD pads only.
func ResolveDrill(conductorWidth, drillSize float64) (float64, []Warning) {
	var warnings []Warning

	if drillSize < 0 {
		drillSize = math.Floor(conductorWidth/2*10) / 10
		if drillSize == 0 {
			warnings = append(warnings, Warning{
				Code: WarnDrillAutoZero,
				Message: "drillSize was < 0 and is therefore autocalculated. the resulted drillSize is 0! " +
					"tht pad is replaced by smd pad. select drillSize manually!",
			})
		}
	}

	if drillSize > conductorWidth {
		warnings = append(warnings, Warning{
			Code:    WarnDrillExceedsTrace,
			Message: "drillSize > conductorWidth!",
		})
	}

	return drillSize, warnings
}
