// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package profile

import (
	"strconv"

	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/dlna"
	"github.com/ManuGH/playprofile/internal/mediatype"
)

// H.264 level caps, encoded the way the server compares them (level * 10).
const (
	h264LevelDefault    = "51"
	h264LevelFireTVGen1 = "41"
)

// SubtitleRule pairs a subtitle format with a delivery method.
func SubtitleRule(format string, method dlna.SubtitleDeliveryMethod) dlna.SubtitleProfile {
	return dlna.SubtitleProfile{Format: format, Method: method}
}

// AudioDirectPlay allows direct play of the given audio containers.
func AudioDirectPlay(containers ...string) dlna.DirectPlayProfile {
	return dlna.DirectPlayProfile{
		Type:      dlna.ProfileTypeAudio,
		Container: mediatype.Join(containers...),
	}
}

// PhotoDirectPlay allows the common still image formats.
func PhotoDirectPlay() dlna.DirectPlayProfile {
	return dlna.DirectPlayProfile{
		Type: dlna.ProfileTypePhoto,
		Container: mediatype.Join(
			mediatype.PhotoJPG,
			mediatype.PhotoJPEG,
			mediatype.PhotoPNG,
			mediatype.PhotoGIF,
			mediatype.PhotoWEBP,
		),
	}
}

func H264ProfileCondition() dlna.ProfileCondition {
	return dlna.ProfileCondition{
		Condition: dlna.ConditionEqualsAny,
		Property:  dlna.PropertyVideoProfile,
		Value:     "high|main|baseline|constrained baseline",
	}
}

func H264LevelCondition(dev device.Info) dlna.ProfileCondition {
	level := h264LevelDefault
	if dev.IsFireTVStickGen1() {
		level = h264LevelFireTVGen1
	}
	return dlna.ProfileCondition{
		Condition: dlna.ConditionLessThanEqual,
		Property:  dlna.PropertyVideoLevel,
		Value:     level,
	}
}

func Max1080pConditions() []dlna.ProfileCondition {
	return []dlna.ProfileCondition{
		{Condition: dlna.ConditionLessThanEqual, Property: dlna.PropertyWidth, Value: "1920"},
		{Condition: dlna.ConditionLessThanEqual, Property: dlna.PropertyHeight, Value: "1080"},
	}
}

// HEVCCodecProfile limits HEVC to the profiles the decoder handles.
// "none" matches no real stream, which rules HEVC out entirely.
func HEVCCodecProfile(dev device.Info) dlna.CodecProfile {
	value := "main|main 10"
	switch {
	case !dev.SupportsHEVC:
		value = "none"
	case !dev.SupportsHEVCMain10:
		value = "main"
	}
	return dlna.CodecProfile{
		Type:  dlna.CodecTypeVideo,
		Codec: mediatype.CodecHEVC,
		Conditions: []dlna.ProfileCondition{{
			Condition: dlna.ConditionEqualsAny,
			Property:  dlna.PropertyVideoProfile,
			Value:     value,
		}},
	}
}

func MaxAudioChannelsCodecProfile(channels int) dlna.CodecProfile {
	return dlna.CodecProfile{
		Type: dlna.CodecTypeVideoAudio,
		Conditions: []dlna.ProfileCondition{{
			Condition: dlna.ConditionLessThanEqual,
			Property:  dlna.PropertyAudioChannels,
			Value:     strconv.Itoa(channels),
		}},
	}
}
