// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		info      Info
		fireTV    bool
		stickGen1 bool
		stick4K   bool
		fhd       bool
		shield    bool
		has4K     bool
	}{
		{name: "generic", info: Info{}, has4K: false},
		{name: "generic main10", info: Info{SupportsHEVC: true, SupportsHEVCMain10: true}, has4K: true},
		{name: "fire tv stick gen1", info: Info{Manufacturer: "Amazon", Model: "AFTM"}, fireTV: true, stickGen1: true, fhd: true},
		{name: "fire tv stick gen1 claims main10", info: Info{Manufacturer: "Amazon", Model: "AFTM", SupportsHEVCMain10: true}, fireTV: true, stickGen1: true, fhd: true},
		{name: "fire tv stick gen2 main10", info: Info{Manufacturer: "Amazon", Model: "AFTT", SupportsHEVCMain10: true}, fireTV: true, fhd: true},
		{name: "fire tv stick 4k", info: Info{Manufacturer: "Amazon", Model: "AFTMM", SupportsHEVCMain10: true}, fireTV: true, stick4K: true, has4K: true},
		{name: "fire tv cube main10", info: Info{Manufacturer: "Amazon", Model: "AFTR", SupportsHEVC: true, SupportsHEVCMain10: true}, fireTV: true, has4K: true},
		{name: "fire tv cube without main10", info: Info{Manufacturer: "Amazon", Model: "AFTR", SupportsHEVC: true}, fireTV: true},
		{name: "shield mixed case", info: Info{Manufacturer: "nvidia", Model: "Shield Android TV"}, shield: true, has4K: true},
		{name: "amazon non tv", info: Info{Manufacturer: "Amazon", Model: "KFTRWI"}},
		{name: "whitespace", info: Info{Manufacturer: "  Amazon ", Model: " aftm "}, fireTV: true, stickGen1: true, fhd: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fireTV, tt.info.IsFireTV(), "IsFireTV")
			assert.Equal(t, tt.stickGen1, tt.info.IsFireTVStickGen1(), "IsFireTVStickGen1")
			assert.Equal(t, tt.stick4K, tt.info.IsFireTVStick4K(), "IsFireTVStick4K")
			assert.Equal(t, tt.fhd, tt.info.IsFireTV1080p(), "IsFireTV1080p")
			assert.Equal(t, tt.shield, tt.info.IsShieldTV(), "IsShieldTV")
			assert.Equal(t, tt.has4K, tt.info.Has4KVideoSupport(), "Has4KVideoSupport")
		})
	}
}

func TestAudioChannels(t *testing.T) {
	assert.Equal(t, 2, Info{}.AudioChannels())
	assert.Equal(t, 2, Info{MaxAudioChannels: -3}.AudioChannels())
	assert.Equal(t, 6, Info{MaxAudioChannels: 6}.AudioChannels())
	assert.Equal(t, 8, Info{MaxAudioChannels: 12}.AudioChannels())
}

func TestString(t *testing.T) {
	assert.Equal(t, "generic", Info{}.String())
	assert.Equal(t, "Amazon AFTMM", Info{Manufacturer: "Amazon", Model: "AFTMM"}.String())
	assert.Equal(t, "AFTMM", Info{Model: "AFTMM"}.String())
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"fire_tv_stick", "fire_tv_stick_4k", "generic", "shield_tv"}, PresetNames())

	generic, err := Preset("")
	require.NoError(t, err)
	assert.Equal(t, presets[PresetGeneric], generic)

	stick, err := Preset(" Fire_TV_Stick ")
	require.NoError(t, err)
	assert.True(t, stick.IsFireTVStickGen1())

	shield, err := Preset(PresetShieldTV)
	require.NoError(t, err)
	assert.True(t, shield.IsShieldTV())

	_, err = Preset("toaster")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}
