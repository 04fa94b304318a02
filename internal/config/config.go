// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads playprofile settings with precedence ENV > file > defaults.
package config

import (
	"github.com/ManuGH/playprofile/internal/device"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the root of the YAML file.
type Config struct {
	LogLevel string         `yaml:"logLevel"`
	Profile  string         `yaml:"profile"`
	Device   DeviceConfig   `yaml:"device"`
	Output   OutputConfig   `yaml:"output"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DeviceConfig selects a preset and optionally overrides single traits of it.
type DeviceConfig struct {
	Preset             string `yaml:"preset"`
	Manufacturer       string `yaml:"manufacturer,omitempty"`
	Model              string `yaml:"model,omitempty"`
	SDKVersion         *int   `yaml:"sdkVersion,omitempty"`
	SupportsHEVC       *bool  `yaml:"supportsHevc,omitempty"`
	SupportsHEVCMain10 *bool  `yaml:"supportsHevcMain10,omitempty"`
	MaxAudioChannels   *int   `yaml:"maxAudioChannels,omitempty"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type FixturesConfig struct {
	Dir      string `yaml:"dir"`
	Manifest string `yaml:"manifest,omitempty"`
}

type MetricsConfig struct {
	// Textfile, when set, receives a Prometheus text dump after each command.
	Textfile string `yaml:"textfile,omitempty"`
}

// DeviceInfo resolves the preset and applies the per-field overrides.
func (c Config) DeviceInfo() (device.Info, error) {
	info, err := device.Preset(c.Device.Preset)
	if err != nil {
		return device.Info{}, err
	}
	d := c.Device
	if d.Manufacturer != "" {
		info.Manufacturer = d.Manufacturer
	}
	if d.Model != "" {
		info.Model = d.Model
	}
	if d.SDKVersion != nil {
		info.SDKVersion = *d.SDKVersion
	}
	if d.SupportsHEVC != nil {
		info.SupportsHEVC = *d.SupportsHEVC
	}
	if d.SupportsHEVCMain10 != nil {
		info.SupportsHEVCMain10 = *d.SupportsHEVCMain10
	}
	if d.MaxAudioChannels != nil {
		info.MaxAudioChannels = *d.MaxAudioChannels
	}
	return info, nil
}
