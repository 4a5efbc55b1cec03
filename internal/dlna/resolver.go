package dlna

import "strings"

// normalize folds a container or codec token for table lookup
func normalize(token string) string {
	return strings.ToLower(token)
}

// Int returns a pointer to v, for filling optional numeric inputs
func Int(v int) *int {
	return &v
}

type videoInput struct {
	videoCodec string
	audioCodec string
	width      *int
	height     *int
	timestamp  TransportStreamTimestamp
}

type videoResolver func(in videoInput) []MediaFormatProfile

// videoContainers is the container dispatch table for ResolveVideoFormat
var videoContainers = map[string]videoResolver{
	"asf":        single(resolveVideoASF),
	"mp4":        single(resolveVideoMP4),
	"avi":        fixed(AVI),
	"mkv":        fixed(MATROSKA),
	"mpeg2ps":    fixed(MPEG_PS_NTSC, MPEG_PS_PAL),
	"ts":         fixed(MPEG_PS_NTSC, MPEG_PS_PAL),
	"mpeg1video": fixed(MPEG1),
	"mpeg2ts":    resolveVideoMPEG2TS,
	"mpegts":     resolveVideoMPEG2TS,
	"m2ts":       resolveVideoMPEG2TS,
	"flv":        fixed(FLV),
	"wtv":        fixed(WTV),
	"3gp":        single(resolveVideo3GP),
	"ogv":        fixed(OGV),
	"ogg":        fixed(OGV),
}

func fixed(profiles ...MediaFormatProfile) videoResolver {
	return func(videoInput) []MediaFormatProfile {
		out := make([]MediaFormatProfile, len(profiles))
		copy(out, profiles)
		return out
	}
}

func single(fn func(in videoInput) (MediaFormatProfile, bool)) videoResolver {
	return func(in videoInput) []MediaFormatProfile {
		if p, ok := fn(in); ok {
			return []MediaFormatProfile{p}
		}
		return nil
	}
}

// ResolveVideoFormat returns the format profiles matching a video stream,
// most preferred first. An empty result means no profile applies.
func ResolveVideoFormat(container, videoCodec, audioCodec string, width, height *int, timestamp TransportStreamTimestamp) []MediaFormatProfile {
	resolve, ok := videoContainers[normalize(container)]
	if !ok {
		return nil
	}
	return resolve(videoInput{
		videoCodec: normalize(videoCodec),
		audioCodec: normalize(audioCodec),
		width:      width,
		height:     height,
		timestamp:  timestamp,
	})
}

// ResolveAudioFormat returns the format profile matching an audio stream.
// Bitrate is in kbps, frequency in Hz.
func ResolveAudioFormat(container string, bitrate, frequency, channels *int) (MediaFormatProfile, bool) {
	resolve, ok := audioContainers[normalize(container)]
	if !ok {
		return "", false
	}
	return resolve(bitrate, frequency, channels)
}

// ResolveImageFormat returns the format profile matching an image
func ResolveImageFormat(container string, width, height *int) (MediaFormatProfile, bool) {
	resolve, ok := imageContainers[normalize(container)]
	if !ok {
		return "", false
	}
	return resolve(width, height), true
}
