// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package mediatype lists the container and codec identifiers used in
// device profiles. Values are the lower-case tokens the server matches on.
package mediatype

import "strings"

// Containers
const (
	ContainerM4V   = "m4v"
	ContainerMOV   = "mov"
	ContainerXVID  = "xvid"
	ContainerVOB   = "vob"
	ContainerMKV   = "mkv"
	ContainerWMV   = "wmv"
	ContainerASF   = "asf"
	ContainerOGM   = "ogm"
	ContainerOGV   = "ogv"
	ContainerMP4   = "mp4"
	ContainerWEBM  = "webm"
	ContainerTS    = "ts"
	ContainerMP3   = "mp3"
	ContainerMPA   = "mpa"
	ContainerWAV   = "wav"
	ContainerWMA   = "wma"
	ContainerMP2   = "mp2"
	ContainerOGG   = "ogg"
	ContainerOGA   = "oga"
	ContainerWEBMA = "webma"
	ContainerAPE   = "ape"
	ContainerOPUS  = "opus"
	ContainerFLAC  = "flac"
	ContainerAAC   = "aac"
)

// Video codecs
const (
	CodecH264       = "h264"
	CodecHEVC       = "hevc"
	CodecVP8        = "vp8"
	CodecVP9        = "vp9"
	CodecMPEG       = "mpeg"
	CodecMPEG2Video = "mpeg2video"
)

// Audio codecs
const (
	CodecAAC    = "aac"
	CodecMP3    = "mp3"
	CodecMP2    = "mp2"
	CodecAC3    = "ac3"
	CodecEAC3   = "eac3"
	CodecFLAC   = "flac"
	CodecVorbis = "vorbis"
	CodecOpus   = "opus"
)

// Photo formats
const (
	PhotoJPG  = "jpg"
	PhotoJPEG = "jpeg"
	PhotoPNG  = "png"
	PhotoGIF  = "gif"
	PhotoWEBP = "webp"
)

// MimeMP4 is the response mime type for m4v containers.
const MimeMP4 = "video/mp4"

// Join renders tokens as the comma-separated list the wire format expects.
func Join(tokens ...string) string {
	return strings.Join(tokens, ",")
}
