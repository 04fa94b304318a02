// SPDX-License-Identifier: MIT

package schema

import (
	"context"
	"testing"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/dlna"
	"github.com/ManuGH/playprofile/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator(context.Background())
	require.NoError(t, err)
	return v
}

func TestBuiltProfilesMatchSchema(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	for _, name := range profile.Names() {
		for _, preset := range device.PresetNames() {
			t.Run(name+"/"+preset, func(t *testing.T) {
				dev, err := device.Preset(preset)
				require.NoError(t, err)
				p, err := profile.Build(ctx, name, dev)
				require.NoError(t, err)
				assert.NoError(t, v.Validate(ctx, p))
			})
		}
	}
}

func TestRejectsViolations(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(p *dlna.DeviceProfile)
	}{
		{
			name:   "unknown delivery method",
			mutate: func(p *dlna.DeviceProfile) { p.SubtitleProfiles[0].Method = "Burn" },
		},
		{
			name:   "empty subtitle format",
			mutate: func(p *dlna.DeviceProfile) { p.SubtitleProfiles[3].Format = "" },
		},
		{
			name:   "empty profile name",
			mutate: func(p *dlna.DeviceProfile) { p.Name = "" },
		},
		{
			name:   "unknown transcoding context",
			mutate: func(p *dlna.DeviceProfile) { p.TranscodingProfiles[1].Context = "Live" },
		},
		{
			name:   "unknown protocol",
			mutate: func(p *dlna.DeviceProfile) { p.TranscodingProfiles[0].Protocol = "dash" },
		},
		{
			name:   "negative min segments",
			mutate: func(p *dlna.DeviceProfile) { p.TranscodingProfiles[0].MinSegments = -1 },
		},
		{
			name: "unknown condition property",
			mutate: func(p *dlna.DeviceProfile) {
				p.CodecProfiles[0].Conditions[0].Property = "Color"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile.ExoPlayer(device.Info{})
			tt.mutate(&p)
			err := v.Validate(ctx, p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestDefaultIsShared(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}
