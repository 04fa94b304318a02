// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/profile"
	"github.com/rs/zerolog"
)

// Validate reports every problem in cfg at once, each wrapped in ErrInvalidConfig.
func Validate(cfg Config) error {
	var errs []error

	if cfg.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("logLevel %q: %w", cfg.LogLevel, err))
		}
	}
	if _, err := profile.Canonical(cfg.Profile); err != nil {
		errs = append(errs, fmt.Errorf("profile: %w", err))
	}
	if _, err := device.Preset(cfg.Device.Preset); err != nil {
		errs = append(errs, fmt.Errorf("device.preset: %w", err))
	}
	if ch := cfg.Device.MaxAudioChannels; ch != nil && (*ch < 0 || *ch > device.MaxAudioChannels) {
		errs = append(errs, fmt.Errorf("device.maxAudioChannels %d outside 0..%d", *ch, device.MaxAudioChannels))
	}
	if v := cfg.Device.SDKVersion; v != nil && *v < 0 {
		errs = append(errs, fmt.Errorf("device.sdkVersion %d is negative", *v))
	}
	switch strings.ToLower(cfg.Output.Format) {
	case FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format %q (want json or yaml)", cfg.Output.Format))
	}
	if strings.TrimSpace(cfg.Fixtures.Dir) == "" {
		errs = append(errs, errors.New("fixtures.dir is empty"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
