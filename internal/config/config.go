// Package config loads antenna presets from YAML, TOML or JSON files.
// Preset keys are the long flag names of the antgen command; keys that
// are absent keep their antenna.DefaultSpec value.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/OpenTraceLab/nfcant/pkg/antenna"
	"github.com/OpenTraceLab/nfcant/pkg/antenna/header"
)

// Load reads the preset at path
func Load(path string) (antenna.Spec, error) {
	v := viper.New()
	setDefaults(v, antenna.DefaultSpec())

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return antenna.Spec{}, fmt.Errorf("failed to read preset %s: %w", path, err)
	}

	s := antenna.Spec{
		Name:           v.GetString(header.KeyModuleName),
		Turns:          v.GetInt(header.KeyTurns),
		Length:         v.GetFloat64(header.KeyAntennaLength),
		Width:          v.GetFloat64(header.KeyAntennaWidth),
		ConductorWidth: v.GetFloat64(header.KeyConductorWidth),
		ConductorSpace: v.GetFloat64(header.KeyConductorSpace),
		DrillSize:      v.GetFloat64(header.KeyDrillSize),
		MinSlopeSpace:  v.GetFloat64(header.KeyMinSlopeSpace),
		SilkMargin:     v.GetFloat64(header.KeySilkMargin),
		Style:          antenna.Style(v.GetInt(header.KeyStyle)),
	}
	if !s.Style.Valid() {
		return antenna.Spec{}, fmt.Errorf("preset %s: invalid style %d", path, int(s.Style))
	}
	if s.Name == "" {
		return antenna.Spec{}, fmt.Errorf("preset %s: empty %s", path, header.KeyModuleName)
	}

	return s, nil
}

func setDefaults(v *viper.Viper, s antenna.Spec) {
	v.SetDefault(header.KeyModuleName, s.Name)
	v.SetDefault(header.KeyTurns, s.Turns)
	v.SetDefault(header.KeyAntennaLength, s.Length)
	v.SetDefault(header.KeyAntennaWidth, s.Width)
	v.SetDefault(header.KeyConductorWidth, s.ConductorWidth)
	v.SetDefault(header.KeyConductorSpace, s.ConductorSpace)
	v.SetDefault(header.KeyDrillSize, s.DrillSize)
	v.SetDefault(header.KeyMinSlopeSpace, s.MinSlopeSpace)
	v.SetDefault(header.KeySilkMargin, s.SilkMargin)
	v.SetDefault(header.KeyStyle, int(s.Style))
}
