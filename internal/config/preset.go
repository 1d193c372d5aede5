package config

import (
	"fmt"
	"strings"
)

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the accepted presets in display order.
var Presets = []Preset{PresetEasy, PresetNormal, PresetHard}

// ParsePreset parses a preset name. An empty name selects normal.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return PresetNormal, nil
	case PresetEasy, PresetNormal, PresetHard:
		return p, nil
	default:
		return PresetNormal, fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", name)
	}
}

// SpeedMultiplier returns the factor applied to the configured ball speed.
func (p Preset) SpeedMultiplier() float64 {
	switch p {
	case PresetEasy:
		return 0.75
	case PresetHard:
		return 1.4
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *MatchConfig, preset Preset) {
	cfg.Ball.Speed *= preset.SpeedMultiplier()
}
