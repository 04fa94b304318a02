// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/fixtures"
	"github.com/ManuGH/playprofile/internal/profile"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment keys.
const (
	EnvLogLevel        = "PLAYPROFILE_LOG_LEVEL"
	EnvProfile         = "PLAYPROFILE_PROFILE"
	EnvDevicePreset    = "PLAYPROFILE_DEVICE_PRESET"
	EnvDeviceModel     = "PLAYPROFILE_DEVICE_MODEL"
	EnvOutputFormat    = "PLAYPROFILE_OUTPUT_FORMAT"
	EnvFixturesDir     = "PLAYPROFILE_FIXTURES_DIR"
	EnvMetricsTextfile = "PLAYPROFILE_METRICS_TEXTFILE"
)

// Loader handles configuration loading with precedence.
type Loader struct {
	fs              afero.Fs
	configPath      string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a loader reading configPath from fs. An empty path
// means defaults and ENV only.
func NewLoader(fs afero.Fs, configPath string) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{
		fs:              fs,
		configPath:      configPath,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// Path returns the config file path, possibly empty.
func (l *Loader) Path() string {
	return l.configPath
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Defaults.
// Order: defaults -> strict file parse -> env -> validate.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if l.configPath != "" {
		if err := l.mergeFile(&cfg); err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
	}

	l.mergeEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		Profile:  profile.DefaultName,
		Device:   DeviceConfig{Preset: device.DefaultPresetName},
		Output:   OutputConfig{Format: FormatJSON},
		Fixtures: FixturesConfig{Dir: fixtures.DefaultDir},
	}
}

// mergeFile decodes the YAML file over cfg with STRICT parsing.
// Keys absent from the file keep their current values.
func (l *Loader) mergeFile(cfg *Config) error {
	path := filepath.Clean(l.configPath)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("config file contains multiple documents or trailing content")
	}
	return nil
}

func (l *Loader) mergeEnv(cfg *Config) {
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
	cfg.Profile = l.envString(EnvProfile, cfg.Profile)
	cfg.Device.Preset = l.envString(EnvDevicePreset, cfg.Device.Preset)
	cfg.Device.Model = l.envString(EnvDeviceModel, cfg.Device.Model)
	cfg.Output.Format = l.envString(EnvOutputFormat, cfg.Output.Format)
	cfg.Fixtures.Dir = l.envString(EnvFixturesDir, cfg.Fixtures.Dir)
	cfg.Metrics.Textfile = l.envString(EnvMetricsTextfile, cfg.Metrics.Textfile)
}
