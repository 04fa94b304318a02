// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"testing"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memLoader(t *testing.T, content string) *Loader {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/playprofile/config.yaml", []byte(content), 0o600))
	return NewLoader(fs, "/etc/playprofile/config.yaml")
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := NewLoader(afero.NewMemMapFs(), "").Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	l := memLoader(t, `
logLevel: debug
profile: exo
device:
  preset: fire_tv_stick
  maxAudioChannels: 2
output:
  format: yaml
fixtures:
  dir: testdata/profiles
metrics:
  textfile: /var/lib/node_exporter/playprofile.prom
`)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "exo", cfg.Profile)
	assert.Equal(t, "fire_tv_stick", cfg.Device.Preset)
	require.NotNil(t, cfg.Device.MaxAudioChannels)
	assert.Equal(t, 2, *cfg.Device.MaxAudioChannels)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, "testdata/profiles", cfg.Fixtures.Dir)
	assert.Equal(t, "/var/lib/node_exporter/playprofile.prom", cfg.Metrics.Textfile)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := memLoader(t, "device:\n  model: AFTMM\n").Load()
	require.NoError(t, err)

	def := Defaults()
	assert.Equal(t, def.Device.Preset, cfg.Device.Preset)
	assert.Equal(t, "AFTMM", cfg.Device.Model)
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.Profile, cfg.Profile)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := memLoader(t, "").Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvProfile, "base")
	t.Setenv(EnvDevicePreset, "shield_tv")
	t.Setenv(EnvOutputFormat, "yaml")
	t.Setenv(EnvFixturesDir, "")

	l := memLoader(t, "profile: exoplayer\ndevice:\n  preset: generic\n")
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "base", cfg.Profile)
	assert.Equal(t, "shield_tv", cfg.Device.Preset)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.Equal(t, Defaults().Fixtures.Dir, cfg.Fixtures.Dir, "empty env falls back")
	assert.Contains(t, l.ConsumedEnvKeys, EnvProfile)
	assert.Contains(t, l.ConsumedEnvKeys, EnvMetricsTextfile)
}

func TestLoadUnknownFieldIsStrict(t *testing.T) {
	_, err := memLoader(t, "profile: exoplayer\nsubtitles: [srt]\n").Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownConfigField), err)
	assert.Contains(t, err.Error(), "subtitles")
}

func TestLoadRejectsMultipleDocuments(t *testing.T) {
	_, err := memLoader(t, "profile: exoplayer\n---\nprofile: base\n").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestLoadRejectsNonYAMLExtension(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/config.json", []byte(`{}`), 0o600))

	_, err := NewLoader(fs, "/config.json").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only YAML supported")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(afero.NewMemMapFs(), "/nope.yaml").Load()
	require.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := memLoader(t, "profile: libvlc\n").Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDeviceInfoOverrides(t *testing.T) {
	hevc := true
	channels := 6
	sdk := 33
	cfg := Defaults()
	cfg.Device = DeviceConfig{
		Preset:           device.PresetFireTVStick,
		Model:            "AFTMM",
		SupportsHEVC:     &hevc,
		MaxAudioChannels: &channels,
		SDKVersion:       &sdk,
	}

	info, err := cfg.DeviceInfo()
	require.NoError(t, err)
	assert.Equal(t, "Amazon", info.Manufacturer)
	assert.Equal(t, "AFTMM", info.Model)
	assert.True(t, info.IsFireTVStick4K())
	assert.True(t, info.SupportsHEVC)
	assert.False(t, info.SupportsHEVCMain10)
	assert.Equal(t, 6, info.MaxAudioChannels)
	assert.Equal(t, 33, info.SDKVersion)
}

func TestDeviceInfoUnknownPreset(t *testing.T) {
	cfg := Defaults()
	cfg.Device.Preset = "toaster"
	_, err := cfg.DeviceInfo()
	assert.ErrorIs(t, err, device.ErrUnknownPreset)
}
