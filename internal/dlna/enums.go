// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package dlna

// ProfileType is the media kind a profile entry applies to.
type ProfileType string

const (
	ProfileTypeAudio ProfileType = "Audio"
	ProfileTypeVideo ProfileType = "Video"
	ProfileTypePhoto ProfileType = "Photo"
)

func (t ProfileType) Valid() bool {
	switch t {
	case ProfileTypeAudio, ProfileTypeVideo, ProfileTypePhoto:
		return true
	}
	return false
}

// EncodingContext tells the server whether a transcode feeds a live stream
// or a static download.
type EncodingContext string

const (
	ContextStreaming EncodingContext = "Streaming"
	ContextStatic    EncodingContext = "Static"
)

func (c EncodingContext) Valid() bool {
	return c == ContextStreaming || c == ContextStatic
}

// SubtitleDeliveryMethod is how subtitle data reaches the client.
type SubtitleDeliveryMethod string

const (
	// SubtitleEncode burns subtitles into the video on the server.
	SubtitleEncode SubtitleDeliveryMethod = "Encode"
	// SubtitleEmbed keeps subtitles muxed in the container.
	SubtitleEmbed SubtitleDeliveryMethod = "Embed"
	// SubtitleExternal delivers subtitles as a separate file.
	SubtitleExternal SubtitleDeliveryMethod = "External"
	// SubtitleHLS delivers subtitles as an HLS rendition.
	SubtitleHLS SubtitleDeliveryMethod = "Hls"
)

func (m SubtitleDeliveryMethod) Valid() bool {
	switch m {
	case SubtitleEncode, SubtitleEmbed, SubtitleExternal, SubtitleHLS:
		return true
	}
	return false
}

// CodecType scopes a codec profile.
type CodecType string

const (
	CodecTypeVideo      CodecType = "Video"
	CodecTypeVideoAudio CodecType = "VideoAudio"
	CodecTypeAudio      CodecType = "Audio"
)

func (t CodecType) Valid() bool {
	switch t {
	case CodecTypeVideo, CodecTypeVideoAudio, CodecTypeAudio:
		return true
	}
	return false
}

// ConditionType is the comparison a ProfileCondition applies.
type ConditionType string

const (
	ConditionEquals           ConditionType = "Equals"
	ConditionNotEquals        ConditionType = "NotEquals"
	ConditionLessThanEqual    ConditionType = "LessThanEqual"
	ConditionGreaterThanEqual ConditionType = "GreaterThanEqual"
	ConditionEqualsAny        ConditionType = "EqualsAny"
)

func (c ConditionType) Valid() bool {
	switch c {
	case ConditionEquals, ConditionNotEquals, ConditionLessThanEqual, ConditionGreaterThanEqual, ConditionEqualsAny:
		return true
	}
	return false
}

// ConditionProperty is the media attribute a ProfileCondition inspects.
type ConditionProperty string

const (
	PropertyAudioChannels ConditionProperty = "AudioChannels"
	PropertyWidth         ConditionProperty = "Width"
	PropertyHeight        ConditionProperty = "Height"
	PropertyVideoProfile  ConditionProperty = "VideoProfile"
	PropertyVideoLevel    ConditionProperty = "VideoLevel"
	PropertyVideoBitDepth ConditionProperty = "VideoBitDepth"
	PropertyRefFrames     ConditionProperty = "RefFrames"
)

func (p ConditionProperty) Valid() bool {
	switch p {
	case PropertyAudioChannels, PropertyWidth, PropertyHeight, PropertyVideoProfile,
		PropertyVideoLevel, PropertyVideoBitDepth, PropertyRefFrames:
		return true
	}
	return false
}
