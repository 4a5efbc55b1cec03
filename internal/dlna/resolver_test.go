package dlna

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVideoFormatExamples(t *testing.T) {
	require.Equal(t,
		[]MediaFormatProfile{AVC_MP4_MP_HD_720p_AAC},
		ResolveVideoFormat("mp4", "h264", "aac", Int(1280), Int(720), TimestampUnspecified))

	require.Equal(t,
		[]MediaFormatProfile{MPEG_TS_SD_NA_T, MPEG_TS_SD_EU_T, MPEG_TS_SD_KO_T, MPEG_TS_JP_T},
		ResolveVideoFormat("mpegts", "mpeg2video", "aac", Int(640), Int(480), TimestampValid))

	for _, vc := range []string{"", "h264", "whatever"} {
		require.Equal(t, []MediaFormatProfile{AVI},
			ResolveVideoFormat("avi", vc, "dts", nil, Int(9999), TimestampNone))
	}
}

func TestResolveVideoFormatFixedContainers(t *testing.T) {
	for _, ca := range []struct {
		container string
		want      []MediaFormatProfile
	}{
		{"avi", []MediaFormatProfile{AVI}},
		{"mkv", []MediaFormatProfile{MATROSKA}},
		{"mpeg2ps", []MediaFormatProfile{MPEG_PS_NTSC, MPEG_PS_PAL}},
		{"ts", []MediaFormatProfile{MPEG_PS_NTSC, MPEG_PS_PAL}},
		{"mpeg1video", []MediaFormatProfile{MPEG1}},
		{"flv", []MediaFormatProfile{FLV}},
		{"wtv", []MediaFormatProfile{WTV}},
		{"ogv", []MediaFormatProfile{OGV}},
		{"ogg", []MediaFormatProfile{OGV}},
	} {
		t.Run(ca.container, func(t *testing.T) {
			got := ResolveVideoFormat(ca.container, "h264", "aac", nil, nil, TimestampUnspecified)
			require.Equal(t, ca.want, got)
		})
	}

	require.Empty(t, ResolveVideoFormat("webm", "vp9", "opus", nil, nil, TimestampUnspecified))
	require.Empty(t, ResolveVideoFormat("", "h264", "aac", nil, nil, TimestampUnspecified))
}

func TestResolveVideoFormatFixedResultNotShared(t *testing.T) {
	first := ResolveVideoFormat("mpeg2ps", "", "", nil, nil, TimestampUnspecified)
	first[0] = RAW
	second := ResolveVideoFormat("mpeg2ps", "", "", nil, nil, TimestampUnspecified)
	require.Equal(t, []MediaFormatProfile{MPEG_PS_NTSC, MPEG_PS_PAL}, second)
}

func TestResolveVideoMPEG2TSMPEG2Video(t *testing.T) {
	for _, ca := range []struct {
		name      string
		audio     string
		timestamp TransportStreamTimestamp
		want      []MediaFormatProfile
	}{
		{"unspecified", "aac", TimestampUnspecified,
			[]MediaFormatProfile{MPEG_TS_SD_NA, MPEG_TS_SD_EU, MPEG_TS_SD_KO}},
		{"none", "aac", TimestampNone,
			[]MediaFormatProfile{MPEG_TS_SD_NA_ISO, MPEG_TS_SD_EU_ISO, MPEG_TS_SD_KO_ISO}},
		{"valid ac3", "ac3", TimestampValid,
			[]MediaFormatProfile{MPEG_TS_SD_NA_T, MPEG_TS_SD_EU_T, MPEG_TS_SD_KO_T}},
		{"valid aac", "AAC", TimestampValid,
			[]MediaFormatProfile{MPEG_TS_SD_NA_T, MPEG_TS_SD_EU_T, MPEG_TS_SD_KO_T, MPEG_TS_JP_T}},
	} {
		t.Run(ca.name, func(t *testing.T) {
			for _, container := range []string{"mpeg2ts", "mpegts", "m2ts"} {
				got := ResolveVideoFormat(container, "mpeg2video", ca.audio, Int(1920), Int(1080), ca.timestamp)
				require.Equal(t, ca.want, got)
			}
		})
	}
}

func TestResolveVideoMPEG2TSH264(t *testing.T) {
	sd := [2]*int{Int(720), Int(576)}
	hdWidth := [2]*int{Int(721), Int(576)}
	hdHeight := [2]*int{nil, Int(577)}

	for _, ca := range []struct {
		name      string
		audio     string
		dims      [2]*int
		timestamp TransportStreamTimestamp
		want      MediaFormatProfile
	}{
		{"lpcm", "lpcm", sd, TimestampNone, AVC_TS_HD_50_LPCM_T},
		{"dts none", "dts", sd, TimestampNone, AVC_TS_HD_DTS_ISO},
		{"dts valid", "dts", sd, TimestampValid, AVC_TS_HD_DTS_T},
		{"dts unspecified", "dts", sd, TimestampUnspecified, AVC_TS_HD_DTS_T},
		{"mp3 sd none", "mp3", sd, TimestampNone, AVC_TS_HP_SD_MPEG1_L2_ISO},
		{"mp3 sd unspecified", "mp3", sd, TimestampUnspecified, AVC_TS_HP_SD_MPEG1_L2_T},
		{"mp3 hd valid", "mp3", hdWidth, TimestampValid, AVC_TS_HP_HD_MPEG1_L2_T},
		{"aac sd", "aac", sd, TimestampUnspecified, AVC_TS_MP_SD_AAC_MULT5},
		{"aac hd none", "aac", hdHeight, TimestampNone, AVC_TS_MP_HD_AAC_MULT5_ISO},
		{"aac hd valid", "aac", hdWidth, TimestampValid, AVC_TS_MP_HD_AAC_MULT5_T},
		{"ac3 sd valid", "ac3", sd, TimestampValid, AVC_TS_MP_SD_AC3_T},
		{"no audio hd", "", hdWidth, TimestampUnspecified, AVC_TS_MP_HD_AC3},
		{"no audio no dims", "", [2]*int{}, TimestampNone, AVC_TS_MP_SD_AC3_ISO},
	} {
		t.Run(ca.name, func(t *testing.T) {
			got := ResolveVideoFormat("mpegts", "h264", ca.audio, ca.dims[0], ca.dims[1], ca.timestamp)
			require.Equal(t, []MediaFormatProfile{ca.want}, got)
		})
	}

	require.Empty(t, ResolveVideoFormat("mpegts", "h264", "opus", nil, nil, TimestampValid))
}

func TestResolveVideoMPEG2TSVC1(t *testing.T) {
	require.Equal(t, []MediaFormatProfile{VC1_TS_AP_L1_AC3_ISO},
		ResolveVideoFormat("m2ts", "vc1", "", Int(720), Int(576), TimestampValid))
	require.Equal(t, []MediaFormatProfile{VC1_TS_AP_L2_AC3_ISO},
		ResolveVideoFormat("m2ts", "vc1", "ac3", Int(1280), Int(720), TimestampUnspecified))

	require.Equal(t, []MediaFormatProfile{VC1_TS_HD_DTS_ISO},
		ResolveVideoFormat("m2ts", "vc1", "dts", nil, nil, TimestampNone))
	require.Equal(t, []MediaFormatProfile{VC1_TS_HD_DTS_T},
		ResolveVideoFormat("m2ts", "vc1", "dts", nil, nil, TimestampValid))
	require.Equal(t, []MediaFormatProfile{VC1_TS_HD_DTS_T},
		ResolveVideoFormat("m2ts", "vc1", "dts", nil, nil, TimestampUnspecified))

	require.Empty(t, ResolveVideoFormat("m2ts", "vc1", "aac", nil, nil, TimestampNone))
}

func TestResolveVideoMPEG2TSDisabledAndUnknown(t *testing.T) {
	for _, vc := range []string{"mpeg4", "msmpeg4"} {
		for _, ac := range []string{"", "aac", "mp3", "ac3"} {
			require.Empty(t, ResolveVideoFormat("mpegts", vc, ac, Int(640), Int(480), TimestampValid))
		}
	}
	require.Empty(t, ResolveVideoFormat("mpegts", "hevc", "aac", nil, nil, TimestampValid))
}

func TestResolveVideoMP4(t *testing.T) {
	for _, ca := range []struct {
		name   string
		video  string
		audio  string
		width  *int
		height *int
		want   MediaFormatProfile
	}{
		{"h264 lpcm", "h264", "lpcm", nil, nil, AVC_MP4_LPCM},
		{"h264 no audio", "h264", "", nil, nil, AVC_MP4_MP_SD_AC3},
		{"h264 ac3", "h264", "ac3", Int(1920), Int(1080), AVC_MP4_MP_SD_AC3},
		{"h264 mp3", "h264", "mp3", nil, nil, AVC_MP4_MP_SD_MPEG1_L3},
		{"h264 aac sd edge", "h264", "aac", Int(720), Int(576), AVC_MP4_MP_SD_AAC_MULT5},
		{"h264 aac width above sd", "h264", "aac", Int(721), Int(576), AVC_MP4_MP_HD_720p_AAC},
		{"h264 aac 720p edge", "h264", "aac", Int(1280), Int(720), AVC_MP4_MP_HD_720p_AAC},
		{"h264 aac height above 720p", "h264", "aac", Int(1280), Int(721), AVC_MP4_MP_HD_1080i_AAC},
		{"h264 aac 1080 edge", "h264", "aac", Int(1920), Int(1080), AVC_MP4_MP_HD_1080i_AAC},
		{"mpeg4 sd aac", "mpeg4", "aac", Int(720), Int(576), MPEG4_P2_MP4_ASP_AAC},
		{"msmpeg4 sd no audio", "msmpeg4", "", Int(320), Int(240), MPEG4_P2_MP4_ASP_AAC},
		{"mpeg4 sd ac3", "mpeg4", "ac3", Int(640), Int(480), MPEG4_P2_MP4_NDSD},
		{"mpeg4 sd mp3", "mpeg4", "mp3", Int(640), Int(480), MPEG4_P2_MP4_NDSD},
		{"mpeg4 hd aac", "mpeg4", "aac", Int(721), Int(576), MPEG4_P2_MP4_SP_L6_AAC},
		{"mpeg4 no dims", "mpeg4", "", nil, Int(480), MPEG4_P2_MP4_SP_L6_AAC},
		{"h263 aac", "h263", "aac", nil, nil, MPEG4_H263_MP4_P0_L10_AAC},
	} {
		t.Run(ca.name, func(t *testing.T) {
			got := ResolveVideoFormat("mp4", ca.video, ca.audio, ca.width, ca.height, TimestampUnspecified)
			require.Equal(t, []MediaFormatProfile{ca.want}, got)
		})
	}

	for _, ca := range []struct {
		name   string
		video  string
		audio  string
		width  *int
		height *int
	}{
		{"h264 aac above 1080", "h264", "aac", Int(1921), Int(1080)},
		{"h264 aac missing height", "h264", "aac", Int(640), nil},
		{"h264 dts", "h264", "dts", Int(640), Int(480)},
		{"mpeg4 sd dts", "mpeg4", "dts", Int(640), Int(480)},
		{"mpeg4 hd mp3", "mpeg4", "mp3", Int(1280), Int(720)},
		{"h263 amrnb", "h263", "amrnb", nil, nil},
		{"hevc", "hevc", "aac", Int(640), Int(480)},
	} {
		t.Run(ca.name, func(t *testing.T) {
			require.Empty(t, ResolveVideoFormat("mp4", ca.video, ca.audio, ca.width, ca.height, TimestampUnspecified))
		})
	}
}

func TestResolveVideoASF(t *testing.T) {
	for _, ca := range []struct {
		name   string
		video  string
		audio  string
		width  *int
		height *int
		want   MediaFormatProfile
	}{
		{"wmv sd wma", "wmv", "wma", Int(720), Int(576), WMVMED_FULL},
		{"wmv sd no audio", "wmv", "", Int(640), Int(480), WMVMED_FULL},
		{"wmv hd wma", "wmv", "wma", Int(721), Int(576), WMVHIGH_FULL},
		{"wmv no dims", "wmv", "", nil, nil, WMVHIGH_FULL},
		{"vc1 l1", "vc1", "wma", Int(720), Int(576), VC1_ASF_AP_L1_WMA},
		{"vc1 l2", "vc1", "wmapro", Int(1280), Int(720), VC1_ASF_AP_L2_WMA},
		{"vc1 l3", "vc1", "", Int(1920), Int(1080), VC1_ASF_AP_L3_WMA},
		{"mpeg2video", "mpeg2video", "ac3", nil, nil, DVR_MS},
	} {
		t.Run(ca.name, func(t *testing.T) {
			got := ResolveVideoFormat("asf", ca.video, ca.audio, ca.width, ca.height, TimestampUnspecified)
			require.Equal(t, []MediaFormatProfile{ca.want}, got)
		})
	}

	// wma pro audio never enters the wmv rule
	require.Empty(t, ResolveVideoFormat("asf", "wmv", "wmapro", Int(640), Int(480), TimestampUnspecified))
	require.Empty(t, ResolveVideoFormat("asf", "vc1", "wma", Int(1921), Int(1080), TimestampUnspecified))
	require.Empty(t, ResolveVideoFormat("asf", "vc1", "wma", nil, nil, TimestampUnspecified))
	require.Empty(t, ResolveVideoFormat("asf", "h264", "aac", nil, nil, TimestampUnspecified))
}

func TestResolveVideo3GP(t *testing.T) {
	for _, ca := range []struct {
		video string
		audio string
		want  MediaFormatProfile
	}{
		{"h264", "", AVC_3GPP_BL_QCIF15_AAC},
		{"h264", "aac", AVC_3GPP_BL_QCIF15_AAC},
		{"mpeg4", "", MPEG4_P2_3GPP_SP_L0B_AAC},
		{"msmpeg4", "wma", MPEG4_P2_3GPP_SP_L0B_AAC},
		{"mpeg4", "amrnb", MPEG4_P2_3GPP_SP_L0B_AMR},
		{"h263", "amrnb", MPEG4_H263_3GPP_P0_L10_AMR},
	} {
		got := ResolveVideoFormat("3gp", ca.video, ca.audio, nil, nil, TimestampUnspecified)
		require.Equal(t, []MediaFormatProfile{ca.want}, got, "%s/%s", ca.video, ca.audio)
	}

	require.Empty(t, ResolveVideoFormat("3gp", "h264", "amrnb", nil, nil, TimestampUnspecified))
	require.Empty(t, ResolveVideoFormat("3gp", "mpeg4", "aac", nil, nil, TimestampUnspecified))
	require.Empty(t, ResolveVideoFormat("3gp", "h263", "aac", nil, nil, TimestampUnspecified))
}

func TestResolveAudioFormat(t *testing.T) {
	for _, ca := range []struct {
		name      string
		container string
		bitrate   *int
		frequency *int
		channels  *int
		want      MediaFormatProfile
	}{
		{"asf low", "asf", Int(128), nil, nil, WMA_BASE},
		{"asf edge", "asf", Int(193), nil, nil, WMA_BASE},
		{"asf above edge", "asf", Int(194), nil, nil, WMA_FULL},
		{"asf high", "asf", Int(256), nil, nil, WMA_FULL},
		{"asf no bitrate", "asf", nil, nil, nil, WMA_FULL},
		{"mp3", "mp3", nil, nil, nil, MP3},
		{"lpcm 44 mono", "lpcm", nil, Int(44100), Int(1), LPCM16_44_MONO},
		{"lpcm 44 stereo", "lpcm", nil, Int(44100), Int(2), LPCM16_44_STEREO},
		{"lpcm 48 mono", "lpcm", nil, Int(48000), Int(1), LPCM16_48_MONO},
		{"lpcm no frequency", "lpcm", nil, nil, Int(2), LPCM16_48_STEREO},
		{"lpcm no channels", "lpcm", nil, Int(44100), nil, LPCM16_48_STEREO},
		{"mp4 edge", "mp4", Int(320), nil, nil, AAC_ISO_320},
		{"mp4 above edge", "mp4", Int(321), nil, nil, AAC_ISO},
		{"aac low", "aac", Int(128), nil, nil, AAC_ISO_320},
		{"aac no bitrate", "aac", nil, nil, nil, AAC_ISO},
		{"adts edge", "adts", Int(320), nil, nil, AAC_ADTS_320},
		{"adts above edge", "adts", Int(321), nil, nil, AAC_ADTS},
		{"flac", "flac", nil, nil, nil, FLAC},
		{"oga", "oga", nil, nil, nil, OGG},
		{"ogg", "ogg", nil, nil, nil, OGG},
	} {
		t.Run(ca.name, func(t *testing.T) {
			got, ok := ResolveAudioFormat(ca.container, ca.bitrate, ca.frequency, ca.channels)
			require.True(t, ok)
			require.Equal(t, ca.want, got)
		})
	}
}

func TestResolveAudioFormatNoMatch(t *testing.T) {
	// 48 kHz stereo is never matched when both values are known
	_, ok := ResolveAudioFormat("lpcm", nil, Int(48000), Int(2))
	require.False(t, ok)

	_, ok = ResolveAudioFormat("lpcm", nil, Int(96000), Int(2))
	require.False(t, ok)

	_, ok = ResolveAudioFormat("opus", Int(128), nil, nil)
	require.False(t, ok)

	_, ok = ResolveAudioFormat("", nil, nil, nil)
	require.False(t, ok)
}

func TestResolveImageFormat(t *testing.T) {
	for _, ca := range []struct {
		name      string
		container string
		width     *int
		height    *int
		want      MediaFormatProfile
	}{
		{"jpeg small edge", "jpeg", Int(640), Int(480), JPEG_SM},
		{"jpg above small", "jpg", Int(641), Int(480), JPEG_MED},
		{"jpg medium edge", "jpg", Int(1024), Int(768), JPEG_MED},
		{"jpg above medium", "jpg", Int(1025), Int(768), JPEG_LRG},
		{"jpg above medium height", "jpg", Int(1024), Int(769), JPEG_LRG},
		{"jpg missing height", "jpg", Int(100), nil, JPEG_LRG},
		{"jpg no dims", "jpg", nil, nil, JPEG_LRG},
		{"png", "png", Int(10), Int(10), PNG_LRG},
		{"gif", "gif", nil, nil, GIF_LRG},
		{"raw", "raw", nil, nil, RAW},
	} {
		t.Run(ca.name, func(t *testing.T) {
			got, ok := ResolveImageFormat(ca.container, ca.width, ca.height)
			require.True(t, ok)
			require.Equal(t, ca.want, got)
		})
	}

	_, ok := ResolveImageFormat("bmp", Int(10), Int(10))
	require.False(t, ok)
}

func TestResolveCaseInsensitive(t *testing.T) {
	canonical := ResolveVideoFormat("mpegts", "h264", "aac", Int(1920), Int(1080), TimestampValid)
	for _, spelling := range [][3]string{
		{"MPEGTS", "H264", "AAC"},
		{"MpegTs", "h264", "Aac"},
		{"mpegTS", "H264", "aAc"},
	} {
		got := ResolveVideoFormat(spelling[0], spelling[1], spelling[2], Int(1920), Int(1080), TimestampValid)
		require.Equal(t, canonical, got)
	}

	for _, container := range []string{"asf", "mp4", "avi", "mkv", "mpeg2ps", "ts", "mpeg1video",
		"mpeg2ts", "mpegts", "m2ts", "flv", "wtv", "3gp", "ogv", "ogg"} {
		for _, codecs := range [][2]string{
			{"h264", "aac"}, {"wmv", "wma"}, {"vc1", "dts"}, {"mpeg4", "amrnb"}, {"mpeg2video", ""},
		} {
			want := ResolveVideoFormat(container, codecs[0], codecs[1], Int(640), Int(480), TimestampNone)
			got := ResolveVideoFormat(strings.ToUpper(container), strings.ToUpper(codecs[0]),
				strings.ToUpper(codecs[1]), Int(640), Int(480), TimestampNone)
			assert.Equal(t, want, got, "%s %v", container, codecs)
		}
	}

	for _, container := range []string{"asf", "mp3", "lpcm", "mp4", "aac", "adts", "flac", "oga", "ogg"} {
		want, wantOK := ResolveAudioFormat(container, Int(128), Int(44100), Int(2))
		got, gotOK := ResolveAudioFormat(strings.ToUpper(container), Int(128), Int(44100), Int(2))
		assert.Equal(t, wantOK, gotOK, container)
		assert.Equal(t, want, got, container)
		assert.True(t, gotOK, container)
	}

	for _, container := range []string{"jpeg", "jpg", "png", "gif", "raw"} {
		want, _ := ResolveImageFormat(container, Int(800), Int(600))
		got, ok := ResolveImageFormat(strings.ToUpper(container), Int(800), Int(600))
		assert.True(t, ok, container)
		assert.Equal(t, want, got, container)
	}
}

func TestResolveDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		require.Equal(t,
			[]MediaFormatProfile{MPEG_TS_SD_NA_ISO, MPEG_TS_SD_EU_ISO, MPEG_TS_SD_KO_ISO},
			ResolveVideoFormat("m2ts", "mpeg2video", "ac3", nil, nil, TimestampNone))
	}
}

func TestResolveOutputsAreKnown(t *testing.T) {
	widths := []*int{nil, Int(640), Int(720), Int(721), Int(1280), Int(1281), Int(1920), Int(1921)}
	heights := []*int{nil, Int(480), Int(576), Int(577), Int(720), Int(721), Int(1080), Int(1081)}
	timestamps := []TransportStreamTimestamp{TimestampUnspecified, TimestampNone, TimestampValid}
	videoCodecs := []string{"", "h264", "mpeg2video", "vc1", "mpeg4", "msmpeg4", "h263", "wmv", "hevc"}
	audioCodecs := []string{"", "aac", "ac3", "mp3", "dts", "lpcm", "wma", "wmapro", "amrnb", "opus"}

	for container := range videoContainers {
		for _, vc := range videoCodecs {
			for _, ac := range audioCodecs {
				for _, w := range widths {
					for _, h := range heights {
						for _, ts := range timestamps {
							for _, p := range ResolveVideoFormat(container, vc, ac, w, h, ts) {
								require.True(t, p.IsKnown(), "%s from %s/%s/%s", p, container, vc, ac)
							}
						}
					}
				}
			}
		}
	}

	for container := range audioContainers {
		for _, b := range []*int{nil, Int(193), Int(320), Int(321)} {
			if p, ok := ResolveAudioFormat(container, b, Int(44100), Int(2)); ok {
				require.True(t, p.IsKnown())
			}
		}
	}

	for container := range imageContainers {
		p, ok := ResolveImageFormat(container, Int(800), Int(600))
		require.True(t, ok)
		require.True(t, p.IsKnown())
	}
}
