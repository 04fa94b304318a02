// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package profile

import (
	"github.com/ManuGH/playprofile/internal/device"
	"github.com/ManuGH/playprofile/internal/dlna"
	mt "github.com/ManuGH/playprofile/internal/mediatype"
)

const ExoPlayerName = "AndroidTV-ExoPlayer"

// ExoPlayer builds the profile for the ExoPlayer based Android TV client.
// Transcoding and subtitle rules are fixed; direct play and codec limits
// follow the device.
func ExoPlayer(dev device.Info) dlna.DeviceProfile {
	p := Base()
	p.Name = ExoPlayerName

	p.DirectPlayProfiles = []dlna.DirectPlayProfile{
		{
			Type: dlna.ProfileTypeVideo,
			Container: mt.Join(
				mt.ContainerM4V, mt.ContainerMOV, mt.ContainerXVID, mt.ContainerVOB,
				mt.ContainerMKV, mt.ContainerWMV, mt.ContainerASF, mt.ContainerOGM,
				mt.ContainerOGV, mt.ContainerMP4, mt.ContainerWEBM, mt.ContainerTS,
			),
			VideoCodec: mt.Join(exoVideoCodecs(dev)...),
			AudioCodec: mt.Join(
				mt.CodecAAC, mt.CodecMP3, mt.CodecMP2, mt.CodecAC3,
				mt.CodecEAC3, mt.CodecFLAC, mt.CodecVorbis, mt.CodecOpus,
			),
		},
		AudioDirectPlay(
			mt.ContainerAAC, mt.ContainerMP3, mt.ContainerMPA, mt.ContainerWAV,
			mt.ContainerWMA, mt.ContainerMP2, mt.ContainerOGG, mt.ContainerOGA,
			mt.ContainerWEBMA, mt.ContainerAPE, mt.ContainerOPUS, mt.ContainerFLAC,
		),
		PhotoDirectPlay(),
	}

	p.TranscodingProfiles = []dlna.TranscodingProfile{
		// MP4 video over HLS
		{
			Type:           dlna.ProfileTypeVideo,
			Context:        dlna.ContextStreaming,
			Container:      mt.ContainerMP4,
			VideoCodec:     mt.CodecH264,
			AudioCodec:     mt.CodecAAC,
			Protocol:       "hls",
			MinSegments:    1,
			CopyTimestamps: false,
		},
		// AAC audio
		{
			Type:       dlna.ProfileTypeAudio,
			Context:    dlna.ContextStreaming,
			Container:  mt.CodecAAC,
			AudioCodec: mt.CodecAAC,
		},
	}

	p.CodecProfiles = []dlna.CodecProfile{{
		Type:  dlna.CodecTypeVideo,
		Codec: mt.CodecH264,
		Conditions: []dlna.ProfileCondition{
			H264ProfileCondition(),
			H264LevelCondition(dev),
		},
	}}
	if !dev.Has4KVideoSupport() {
		p.CodecProfiles = append(p.CodecProfiles, dlna.CodecProfile{
			Type:       dlna.CodecTypeVideo,
			Conditions: Max1080pConditions(),
		})
	}
	p.CodecProfiles = append(p.CodecProfiles,
		HEVCCodecProfile(dev),
		MaxAudioChannelsCodecProfile(dev.AudioChannels()),
	)

	p.SubtitleProfiles = []dlna.SubtitleProfile{
		SubtitleRule("srt", dlna.SubtitleExternal),
		SubtitleRule("srt", dlna.SubtitleEmbed),
		SubtitleRule("subrip", dlna.SubtitleEmbed),
		SubtitleRule("ass", dlna.SubtitleEncode),
		SubtitleRule("ssa", dlna.SubtitleEncode),
		SubtitleRule("pgs", dlna.SubtitleEncode),
		SubtitleRule("pgssub", dlna.SubtitleEncode),
		SubtitleRule("dvdsub", dlna.SubtitleEncode),
		SubtitleRule("vtt", dlna.SubtitleEmbed),
		SubtitleRule("sub", dlna.SubtitleEmbed),
		SubtitleRule("idx", dlna.SubtitleEmbed),
	}

	return p
}

func exoVideoCodecs(dev device.Info) []string {
	codecs := []string{mt.CodecH264}
	if dev.SupportsHEVC {
		codecs = append(codecs, mt.CodecHEVC)
	}
	return append(codecs, mt.CodecVP8, mt.CodecVP9, mt.CodecMPEG, mt.CodecMPEG2Video)
}
