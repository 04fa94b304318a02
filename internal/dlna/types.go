// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package dlna holds the device profile record a client sends to a
// Jellyfin-compatible server during PlaybackInfo negotiation.
// Field names and enum values mirror the server's wire schema.
package dlna

import "encoding/json"

// TranscodingProfile names a target the server may transcode to.
// Audio entries leave VideoCodec empty and reuse Container for the audio format.
type TranscodingProfile struct {
	Type           ProfileType     `json:"Type" yaml:"Type"`
	Context        EncodingContext `json:"Context" yaml:"Context"`
	Container      string          `json:"Container" yaml:"Container"`
	VideoCodec     string          `json:"VideoCodec,omitempty" yaml:"VideoCodec,omitempty"`
	AudioCodec     string          `json:"AudioCodec,omitempty" yaml:"AudioCodec,omitempty"`
	Protocol       string          `json:"Protocol,omitempty" yaml:"Protocol,omitempty"`
	MinSegments    int             `json:"MinSegments" yaml:"MinSegments"`
	CopyTimestamps bool            `json:"CopyTimestamps" yaml:"CopyTimestamps"`
}

// SubtitleProfile pairs a subtitle format with one delivery method.
type SubtitleProfile struct {
	Format string                 `json:"Format" yaml:"Format"`
	Method SubtitleDeliveryMethod `json:"Method" yaml:"Method"`
}

// DirectPlayProfile lists what plays without server-side conversion.
// Container and codec fields are comma-separated token lists.
type DirectPlayProfile struct {
	Type       ProfileType `json:"Type" yaml:"Type"`
	Container  string      `json:"Container,omitempty" yaml:"Container,omitempty"`
	VideoCodec string      `json:"VideoCodec,omitempty" yaml:"VideoCodec,omitempty"`
	AudioCodec string      `json:"AudioCodec,omitempty" yaml:"AudioCodec,omitempty"`
}

type ProfileCondition struct {
	Condition  ConditionType     `json:"Condition" yaml:"Condition"`
	Property   ConditionProperty `json:"Property" yaml:"Property"`
	Value      string            `json:"Value" yaml:"Value"`
	IsRequired bool              `json:"IsRequired" yaml:"IsRequired"`
}

// CodecProfile restricts streams of Codec (or of every codec when empty).
type CodecProfile struct {
	Type       CodecType          `json:"Type" yaml:"Type"`
	Codec      string             `json:"Codec,omitempty" yaml:"Codec,omitempty"`
	Conditions []ProfileCondition `json:"Conditions" yaml:"Conditions"`
}

type ContainerProfile struct {
	Type       ProfileType        `json:"Type" yaml:"Type"`
	Container  string             `json:"Container,omitempty" yaml:"Container,omitempty"`
	Conditions []ProfileCondition `json:"Conditions" yaml:"Conditions"`
}

type ResponseProfile struct {
	Type      ProfileType `json:"Type" yaml:"Type"`
	Container string      `json:"Container" yaml:"Container"`
	MimeType  string      `json:"MimeType" yaml:"MimeType"`
}

// DeviceProfile is the complete capability record.
type DeviceProfile struct {
	Name                             string               `json:"Name" yaml:"Name"`
	MaxStreamingBitrate              int                  `json:"MaxStreamingBitrate" yaml:"MaxStreamingBitrate"`
	MaxStaticBitrate                 int                  `json:"MaxStaticBitrate" yaml:"MaxStaticBitrate"`
	MusicStreamingTranscodingBitrate int                  `json:"MusicStreamingTranscodingBitrate" yaml:"MusicStreamingTranscodingBitrate"`
	DirectPlayProfiles               []DirectPlayProfile  `json:"DirectPlayProfiles" yaml:"DirectPlayProfiles"`
	TranscodingProfiles              []TranscodingProfile `json:"TranscodingProfiles" yaml:"TranscodingProfiles"`
	ContainerProfiles                []ContainerProfile   `json:"ContainerProfiles" yaml:"ContainerProfiles"`
	CodecProfiles                    []CodecProfile       `json:"CodecProfiles" yaml:"CodecProfiles"`
	ResponseProfiles                 []ResponseProfile    `json:"ResponseProfiles" yaml:"ResponseProfiles"`
	SubtitleProfiles                 []SubtitleProfile    `json:"SubtitleProfiles" yaml:"SubtitleProfiles"`
}

// MarshalJSON emits empty lists as [] so the server never sees null.
func (p DeviceProfile) MarshalJSON() ([]byte, error) {
	type wire DeviceProfile
	return json.Marshal(wire(p.Clone()))
}

func (c CodecProfile) MarshalJSON() ([]byte, error) {
	type wire CodecProfile
	if c.Conditions == nil {
		c.Conditions = []ProfileCondition{}
	}
	return json.Marshal(wire(c))
}

func (c ContainerProfile) MarshalJSON() ([]byte, error) {
	type wire ContainerProfile
	if c.Conditions == nil {
		c.Conditions = []ProfileCondition{}
	}
	return json.Marshal(wire(c))
}

// Clone returns a deep copy whose slices are never nil and never shared with p.
func (p DeviceProfile) Clone() DeviceProfile {
	out := p
	out.DirectPlayProfiles = cloneSlice(p.DirectPlayProfiles)
	out.TranscodingProfiles = cloneSlice(p.TranscodingProfiles)
	out.ResponseProfiles = cloneSlice(p.ResponseProfiles)
	out.SubtitleProfiles = cloneSlice(p.SubtitleProfiles)

	out.ContainerProfiles = make([]ContainerProfile, len(p.ContainerProfiles))
	for i, cp := range p.ContainerProfiles {
		cp.Conditions = cloneSlice(cp.Conditions)
		out.ContainerProfiles[i] = cp
	}
	out.CodecProfiles = make([]CodecProfile, len(p.CodecProfiles))
	for i, cp := range p.CodecProfiles {
		cp.Conditions = cloneSlice(cp.Conditions)
		out.CodecProfiles[i] = cp
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
