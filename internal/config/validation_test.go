// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, Validate(Defaults()))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		target error
		msg    string
	}{
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }, msg: "logLevel"},
		{name: "profile", mutate: func(c *Config) { c.Profile = "libvlc" }, target: profile.ErrUnknownProfile},
		{name: "preset", mutate: func(c *Config) { c.Device.Preset = "toaster" }, target: device.ErrUnknownPreset},
		{name: "channels high", mutate: func(c *Config) { c.Device.MaxAudioChannels = intPtr(12) }, msg: "maxAudioChannels"},
		{name: "channels negative", mutate: func(c *Config) { c.Device.MaxAudioChannels = intPtr(-1) }, msg: "maxAudioChannels"},
		{name: "sdk negative", mutate: func(c *Config) { c.Device.SDKVersion = intPtr(-4) }, msg: "sdkVersion"},
		{name: "format", mutate: func(c *Config) { c.Output.Format = "xml" }, msg: "output.format"},
		{name: "fixtures dir", mutate: func(c *Config) { c.Fixtures.Dir = " " }, msg: "fixtures.dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Profile = "libvlc"
	cfg.Output.Format = "xml"

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrUnknownProfile)
	assert.Contains(t, err.Error(), "output.format")
}

func TestValidateAcceptsUpperCaseFormat(t *testing.T) {
	cfg := Defaults()
	cfg.Output.Format = "YAML"
	assert.NoError(t, Validate(cfg))
}
