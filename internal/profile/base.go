// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package profile builds the device profiles the client reports to the server.
package profile

import (
	"github.com/ManuGH/playprofile/internal/dlna"
	"github.com/ManuGH/playprofile/internal/mediatype"
)

const (
	BaseName = "AndroidTV"

	maxStreamingBitrate     = 20_000_000
	maxStaticBitrate        = 100_000_000
	musicTranscodingBitrate = 128_000
)

// Base is the device-independent starting point every client profile extends.
func Base() dlna.DeviceProfile {
	return dlna.DeviceProfile{
		Name:                             BaseName,
		MaxStreamingBitrate:              maxStreamingBitrate,
		MaxStaticBitrate:                 maxStaticBitrate,
		MusicStreamingTranscodingBitrate: musicTranscodingBitrate,
		DirectPlayProfiles:               []dlna.DirectPlayProfile{},
		TranscodingProfiles:              []dlna.TranscodingProfile{},
		ContainerProfiles:                []dlna.ContainerProfile{},
		CodecProfiles:                    []dlna.CodecProfile{},
		ResponseProfiles: []dlna.ResponseProfile{{
			Type:      dlna.ProfileTypeVideo,
			Container: mediatype.ContainerM4V,
			MimeType:  mediatype.MimeMP4,
		}},
		SubtitleProfiles: []dlna.SubtitleProfile{},
	}
}
