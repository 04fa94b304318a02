// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService       = "service"
	FieldVersion       = "version"
	FieldCorrelationID = "correlation_id"
	FieldComponent     = "component"
	FieldEvent         = "event"

	// Profile fields
	FieldProfile      = "profile"
	FieldProfileName  = "profile_name"
	FieldDevice       = "device"
	FieldModel        = "model"
	FieldTranscoding  = "transcoding_profiles"
	FieldSubtitles    = "subtitle_profiles"
	FieldDirectPlay   = "direct_play_profiles"
	FieldCodecs       = "codec_profiles"
	FieldAudioChannel = "audio_channels"

	// Path fields
	FieldPath     = "path"
	FieldFile     = "file"
	FieldManifest = "manifest"
)
