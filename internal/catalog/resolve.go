package catalog

import (
	"github.com/tvoe/dlnaprofile/internal/dlna"
	"github.com/tvoe/dlnaprofile/internal/domain"
)

// Resolve returns the candidate profiles for probed media, most preferred
// first. Audio and image media yield at most one profile. The result is
// never nil.
func Resolve(info domain.MediaInfo) []dlna.MediaFormatProfile {
	switch info.Kind {
	case domain.MediaKindVideo:
		profiles := dlna.ResolveVideoFormat(info.Container, info.VideoCodec, info.AudioCodec, info.Width, info.Height, info.Timestamp)
		if profiles == nil {
			return []dlna.MediaFormatProfile{}
		}
		return profiles
	case domain.MediaKindAudio:
		if p, ok := dlna.ResolveAudioFormat(info.Container, info.Bitrate, info.Frequency, info.Channels); ok {
			return []dlna.MediaFormatProfile{p}
		}
	case domain.MediaKindImage:
		if p, ok := dlna.ResolveImageFormat(info.Container, info.Width, info.Height); ok {
			return []dlna.MediaFormatProfile{p}
		}
	}
	return []dlna.MediaFormatProfile{}
}
