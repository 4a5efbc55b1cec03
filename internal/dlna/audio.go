package dlna

type audioResolver func(bitrate, frequency, channels *int) (MediaFormatProfile, bool)

var audioContainers = map[string]audioResolver{
	"asf":  byBitrate(193, WMA_BASE, WMA_FULL),
	"mp3":  always(MP3),
	"lpcm": resolveAudioLPCM,
	"mp4":  byBitrate(320, AAC_ISO_320, AAC_ISO),
	"aac":  byBitrate(320, AAC_ISO_320, AAC_ISO),
	"adts": byBitrate(320, AAC_ADTS_320, AAC_ADTS),
	"flac": always(FLAC),
	"oga":  always(OGG),
	"ogg":  always(OGG),
}

func always(p MediaFormatProfile) audioResolver {
	return func(_, _, _ *int) (MediaFormatProfile, bool) {
		return p, true
	}
}

// byBitrate selects low when the bitrate is known and at most limit kbps.
// An absent bitrate selects high.
func byBitrate(limit int, low, high MediaFormatProfile) audioResolver {
	return func(bitrate, _, _ *int) (MediaFormatProfile, bool) {
		if bitrate != nil && *bitrate <= limit {
			return low, true
		}
		return high, true
	}
}

type lpcmKey struct {
	frequency int
	channels  int
}

// 48 kHz stereo is missing: the deployed rule tests (48000, 1) twice.
var lpcmProfiles = map[lpcmKey]MediaFormatProfile{
	{44100, 1}: LPCM16_44_MONO,
	{44100, 2}: LPCM16_44_STEREO,
	{48000, 1}: LPCM16_48_MONO,
}

func resolveAudioLPCM(_, frequency, channels *int) (MediaFormatProfile, bool) {
	if frequency == nil || channels == nil {
		return LPCM16_48_STEREO, true
	}
	p, ok := lpcmProfiles[lpcmKey{*frequency, *channels}]
	return p, ok
}
