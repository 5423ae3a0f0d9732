package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/OpenTraceLab/nfcant/internal/config"
	"github.com/OpenTraceLab/nfcant/pkg/antenna"
	"github.com/OpenTraceLab/nfcant/pkg/antenna/header"
)

// specFlags holds the antenna parameters of one command
type specFlags struct {
	name           string
	turns          int
	length         float64
	width          float64
	conductorWidth float64
	conductorSpace float64
	drillSize      float64
	minSlopeSpace  float64
	silkMargin     float64
	style          int
}

// requiredFlags must all be set once any antenna flag is given
var requiredFlags = []string{
	header.KeyModuleName,
	header.KeyTurns,
	header.KeyAntennaLength,
	header.KeyAntennaWidth,
	header.KeyConductorWidth,
	header.KeyConductorSpace,
}

func addSpecFlags(fs *pflag.FlagSet, f *specFlags) {
	fs.StringVarP(&f.name, header.KeyModuleName, "f", "",
		"footprint name, saved as <output-dir>/<modulename>.kicad_mod")
	fs.IntVarP(&f.turns, header.KeyTurns, "n", 0,
		"number of windings")
	fs.Float64VarP(&f.length, header.KeyAntennaLength, "l", 0,
		"antenna length in mm (outer copper dimension)")
	fs.Float64VarP(&f.width, header.KeyAntennaWidth, "w", 0,
		"antenna width in mm (outer copper dimension)")
	fs.Float64VarP(&f.conductorWidth, header.KeyConductorWidth, "c", 0,
		"conductor width in mm")
	fs.Float64VarP(&f.conductorSpace, header.KeyConductorSpace, "s", 0,
		"space between conductors in mm")
	fs.Float64VarP(&f.drillSize, header.KeyDrillSize, "d", -1,
		"pad drill diameter in mm; 0 for smd pads, < 0 for floor(conductorWidth/2*10)/10")
	fs.Float64VarP(&f.minSlopeSpace, header.KeyMinSlopeSpace, "e", -1,
		"style 2 only: space between conductors on the slope in mm; < 0 for conductorSpace/sqrt(2)")
	fs.Float64VarP(&f.silkMargin, header.KeySilkMargin, "m", 0,
		"margin of the silkscreen outline to the outer copper in mm; < 0 for no outline")
	fs.IntVarP(&f.style, header.KeyStyle, "t", int(antenna.StyleCorners),
		"routing style: 1 corners, 2 fixed slope, 3 constant 45 degree slope")
}

func (f *specFlags) spec() antenna.Spec {
	return antenna.Spec{
		Name:           f.name,
		Turns:          f.turns,
		Length:         f.length,
		Width:          f.width,
		ConductorWidth: f.conductorWidth,
		ConductorSpace: f.conductorSpace,
		DrillSize:      f.drillSize,
		MinSlopeSpace:  f.minSlopeSpace,
		SilkMargin:     f.silkMargin,
		Style:          antenna.Style(f.style),
	}
}

// apply copies the flags set on the command line over s
func (f *specFlags) apply(fs *pflag.FlagSet, s *antenna.Spec) {
	given := f.spec()
	set := map[string]func(){
		header.KeyModuleName:     func() { s.Name = given.Name },
		header.KeyTurns:          func() { s.Turns = given.Turns },
		header.KeyAntennaLength:  func() { s.Length = given.Length },
		header.KeyAntennaWidth:   func() { s.Width = given.Width },
		header.KeyConductorWidth: func() { s.ConductorWidth = given.ConductorWidth },
		header.KeyConductorSpace: func() { s.ConductorSpace = given.ConductorSpace },
		header.KeyDrillSize:      func() { s.DrillSize = given.DrillSize },
		header.KeyMinSlopeSpace:  func() { s.MinSlopeSpace = given.MinSlopeSpace },
		header.KeySilkMargin:     func() { s.SilkMargin = given.SilkMargin },
		header.KeyStyle:          func() { s.Style = given.Style },
	}
	for _, key := range header.Keys {
		if fs.Changed(key) {
			set[key]()
		}
	}
}

// resolveSpec returns the antenna to build: a preset overlaid with the
// given flags, the flags alone, or antenna.DefaultSpec when neither is
// given.
func resolveSpec(cmd *cobra.Command, f *specFlags) (antenna.Spec, error) {
	fs := cmd.Flags()

	anySet := false
	for _, key := range header.Keys {
		if fs.Changed(key) {
			anySet = true
			break
		}
	}

	var spec antenna.Spec
	switch {
	case configPath != "":
		preset, err := config.Load(configPath)
		if err != nil {
			return antenna.Spec{}, err
		}
		logger.Debug("loaded preset", "path", configPath, "name", preset.Name)
		f.apply(fs, &preset)
		spec = preset
	case !anySet:
		logger.Debug("no antenna flags given, using built-in parameters")
		return antenna.DefaultSpec(), nil
	default:
		var missing []string
		for _, key := range requiredFlags {
			if !fs.Changed(key) {
				missing = append(missing, `"`+key+`"`)
			}
		}
		if len(missing) > 0 {
			return antenna.Spec{}, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
		}
		spec = f.spec()
	}

	if !spec.Style.Valid() {
		return antenna.Spec{}, fmt.Errorf("invalid argument %d for \"-t, --style\" flag: must be 1, 2 or 3", int(spec.Style))
	}
	return spec, nil
}
