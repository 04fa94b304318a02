// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/dlna"
	xglog "github.com/ManuGH/playprofile/internal/log"
	"github.com/ManuGH/playprofile/internal/metrics"
)

// ErrUnknownProfile is returned when a profile name resolves to nothing.
var ErrUnknownProfile = errors.New("unknown profile")

// Builder produces a fresh profile for a device. Builders never fail.
type Builder func(device.Info) dlna.DeviceProfile

const (
	NameExoPlayer = "exoplayer"
	NameBase      = "base"

	DefaultName = NameExoPlayer
)

var builders = map[string]Builder{
	NameExoPlayer: ExoPlayer,
	NameBase:      func(device.Info) dlna.DeviceProfile { return Base() },
}

var aliasMap = map[string]string{
	"":                    DefaultName,
	"default":             DefaultName,
	"exo":                 NameExoPlayer,
	"exoplayer":           NameExoPlayer,
	"androidtv-exoplayer": NameExoPlayer,
	"base":                NameBase,
	"androidtv":           NameBase,
}

// Canonical maps a requested name or alias to its registry name.
func Canonical(requested string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(requested))
	name, ok := aliasMap[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, requested)
	}
	return name, nil
}

func Lookup(requested string) (Builder, error) {
	name, err := Canonical(requested)
	if err != nil {
		return nil, err
	}
	return builders[name], nil
}

// Names lists the canonical profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build resolves requested and builds it for dev.
func Build(ctx context.Context, requested string, dev device.Info) (dlna.DeviceProfile, error) {
	name, err := Canonical(requested)
	if err != nil {
		return dlna.DeviceProfile{}, err
	}

	p := builders[name](dev)
	metrics.RecordProfileBuild(name)

	logger := xglog.WithComponentFromContext(ctx, "profile")
	logger.Debug().
		Str(xglog.FieldEvent, "profile.built").
		Str(xglog.FieldProfile, name).
		Str(xglog.FieldProfileName, p.Name).
		Str(xglog.FieldDevice, dev.String()).
		Int(xglog.FieldDirectPlay, len(p.DirectPlayProfiles)).
		Int(xglog.FieldTranscoding, len(p.TranscodingProfiles)).
		Int(xglog.FieldCodecs, len(p.CodecProfiles)).
		Int(xglog.FieldSubtitles, len(p.SubtitleProfiles)).
		Msg("built device profile")

	return p, nil
}
