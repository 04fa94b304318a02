// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package device

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownPreset is returned for preset names outside the table.
var ErrUnknownPreset = errors.New("unknown device preset")

const (
	PresetGeneric       = "generic"
	PresetFireTVStick   = "fire_tv_stick"
	PresetFireTVStick4K = "fire_tv_stick_4k"
	PresetShieldTV      = "shield_tv"
	DefaultPresetName   = PresetGeneric
)

var presets = map[string]Info{
	PresetGeneric: {
		SDKVersion:       28,
		MaxAudioChannels: DefaultAudioChannels,
	},
	PresetFireTVStick: {
		Manufacturer:     "Amazon",
		Model:            "AFTM",
		SDKVersion:       22,
		MaxAudioChannels: 6,
	},
	PresetFireTVStick4K: {
		Manufacturer:       "Amazon",
		Model:              "AFTMM",
		SDKVersion:         25,
		SupportsHEVC:       true,
		SupportsHEVCMain10: true,
		MaxAudioChannels:   8,
	},
	PresetShieldTV: {
		Manufacturer:       "NVIDIA",
		Model:              "SHIELD Android TV",
		SDKVersion:         30,
		SupportsHEVC:       true,
		SupportsHEVCMain10: true,
		MaxAudioChannels:   8,
	},
}

// Preset returns the named device. An empty name selects the generic device.
func Preset(name string) (Info, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultPresetName
	}
	info, ok := presets[key]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return info, nil
}

// PresetNames returns every preset name, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
