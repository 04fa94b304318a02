// SPDX-License-Identifier: MIT

package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := map[string]string{
		"":                    NameExoPlayer,
		"default":             NameExoPlayer,
		" EXO ":               NameExoPlayer,
		"exoplayer":           NameExoPlayer,
		"AndroidTV-ExoPlayer": NameExoPlayer,
		"base":                NameBase,
		"androidtv":           NameBase,
	}
	for in, want := range tests {
		got, err := Canonical(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Canonical("libvlc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProfile))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"base", "exoplayer"}, Names())
}

func TestLookup(t *testing.T) {
	b, err := Lookup("exo")
	require.NoError(t, err)
	assert.Equal(t, ExoPlayerName, b(device.Info{}).Name)

	b, err = Lookup("base")
	require.NoError(t, err)
	assert.Equal(t, Base(), b(device.Info{}))

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownProfile)
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	dev, err := device.Preset(device.PresetShieldTV)
	require.NoError(t, err)

	p, err := Build(ctx, "", dev)
	require.NoError(t, err)
	assert.Equal(t, ExoPlayer(dev), p)

	_, err = Build(ctx, "unknown", dev)
	assert.ErrorIs(t, err, ErrUnknownProfile)
}
