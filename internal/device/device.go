// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package device describes the playback hardware a profile is built for.
package device

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultAudioChannels = 2
	MaxAudioChannels     = 8
)

// Info carries the traits profile builders branch on.
type Info struct {
	Manufacturer       string
	Model              string
	SDKVersion         int
	SupportsHEVC       bool
	SupportsHEVCMain10 bool
	// MaxAudioChannels <= 0 means unknown.
	MaxAudioChannels int
}

// IsFireTV reports any Amazon Fire TV device (model prefix AFT).
func (d Info) IsFireTV() bool {
	return fold(d.Manufacturer) == "amazon" && strings.HasPrefix(fold(d.Model), "aft")
}

// IsFireTVStickGen1 is the first generation stick, limited to H.264 level 4.1.
func (d Info) IsFireTVStickGen1() bool {
	return d.IsFireTV() && fold(d.Model) == "aftm"
}

func (d Info) IsFireTVStick4K() bool {
	return d.IsFireTV() && fold(d.Model) == "aftmm"
}

func (d Info) IsShieldTV() bool {
	return fold(d.Manufacturer) == "nvidia" && fold(d.Model) == "shield android tv"
}

// fireTV1080pModels are Fire TV models that never decode UHD, whatever codecs they report.
var fireTV1080pModels = map[string]struct{}{
	"aftm":   {}, // Fire TV Stick (1st gen)
	"aftt":   {}, // Fire TV Stick (2nd gen)
	"aftb":   {}, // Fire TV (1st gen)
	"aftsss": {}, // Fire TV Stick (3rd gen)
	"aftss":  {}, // Fire TV Stick Lite
}

// IsFireTV1080p reports a Fire TV model known to be limited to 1080p.
func (d Info) IsFireTV1080p() bool {
	if !d.IsFireTV() {
		return false
	}
	_, ok := fireTV1080pModels[fold(d.Model)]
	return ok
}

// Has4KVideoSupport reports whether the device decodes UHD video.
// Known 1080p Fire TV models are false; otherwise HEVC Main10 decides.
func (d Info) Has4KVideoSupport() bool {
	switch {
	case d.IsFireTVStick4K(), d.IsShieldTV():
		return true
	case d.IsFireTV1080p():
		return false
	default:
		return d.SupportsHEVCMain10
	}
}

// AudioChannels clamps the configured channel count to 1..8, defaulting to stereo.
func (d Info) AudioChannels() int {
	switch {
	case d.MaxAudioChannels < 1:
		return DefaultAudioChannels
	case d.MaxAudioChannels > MaxAudioChannels:
		return MaxAudioChannels
	default:
		return d.MaxAudioChannels
	}
}

// String is the human label used in logs.
func (d Info) String() string {
	label := strings.TrimSpace(strings.TrimSpace(d.Manufacturer) + " " + strings.TrimSpace(d.Model))
	if label == "" {
		return "generic"
	}
	return label
}

// fold normalizes vendor strings so "SHIELD Android TV" and "shield android tv" compare equal.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
