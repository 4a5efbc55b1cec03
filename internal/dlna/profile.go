package dlna

import "strings"

// MediaFormatProfile is a DLNA format profile identifier, the value carried
// verbatim in a DLNA.ORG_PN content-features token.
type MediaFormatProfile string

// Audio profiles
const (
	MP3              MediaFormatProfile = "MP3"
	WMA_BASE         MediaFormatProfile = "WMA_BASE"
	WMA_FULL         MediaFormatProfile = "WMA_FULL"
	LPCM16_44_MONO   MediaFormatProfile = "LPCM16_44_MONO"
	LPCM16_44_STEREO MediaFormatProfile = "LPCM16_44_STEREO"
	LPCM16_48_MONO   MediaFormatProfile = "LPCM16_48_MONO"
	LPCM16_48_STEREO MediaFormatProfile = "LPCM16_48_STEREO"
	AAC_ISO          MediaFormatProfile = "AAC_ISO"
	AAC_ISO_320      MediaFormatProfile = "AAC_ISO_320"
	AAC_ADTS         MediaFormatProfile = "AAC_ADTS"
	AAC_ADTS_320     MediaFormatProfile = "AAC_ADTS_320"
	FLAC             MediaFormatProfile = "FLAC"
	OGG              MediaFormatProfile = "OGG"
)

// Image profiles
const (
	JPEG_SM  MediaFormatProfile = "JPEG_SM"
	JPEG_MED MediaFormatProfile = "JPEG_MED"
	JPEG_LRG MediaFormatProfile = "JPEG_LRG"
	JPEG_TN  MediaFormatProfile = "JPEG_TN"
	PNG_LRG  MediaFormatProfile = "PNG_LRG"
	PNG_TN   MediaFormatProfile = "PNG_TN"
	GIF_LRG  MediaFormatProfile = "GIF_LRG"
	RAW      MediaFormatProfile = "RAW"
)

// Video profiles
const (
	MPEG1        MediaFormatProfile = "MPEG1"
	MPEG_PS_PAL  MediaFormatProfile = "MPEG_PS_PAL"
	MPEG_PS_NTSC MediaFormatProfile = "MPEG_PS_NTSC"

	MPEG_TS_SD_EU     MediaFormatProfile = "MPEG_TS_SD_EU"
	MPEG_TS_SD_EU_ISO MediaFormatProfile = "MPEG_TS_SD_EU_ISO"
	MPEG_TS_SD_EU_T   MediaFormatProfile = "MPEG_TS_SD_EU_T"
	MPEG_TS_SD_NA     MediaFormatProfile = "MPEG_TS_SD_NA"
	MPEG_TS_SD_NA_ISO MediaFormatProfile = "MPEG_TS_SD_NA_ISO"
	MPEG_TS_SD_NA_T   MediaFormatProfile = "MPEG_TS_SD_NA_T"
	MPEG_TS_SD_KO     MediaFormatProfile = "MPEG_TS_SD_KO"
	MPEG_TS_SD_KO_ISO MediaFormatProfile = "MPEG_TS_SD_KO_ISO"
	MPEG_TS_SD_KO_T   MediaFormatProfile = "MPEG_TS_SD_KO_T"
	MPEG_TS_JP_T      MediaFormatProfile = "MPEG_TS_JP_T"

	AVI      MediaFormatProfile = "AVI"
	MATROSKA MediaFormatProfile = "MATROSKA"
	FLV      MediaFormatProfile = "FLV"
	DVR_MS   MediaFormatProfile = "DVR_MS"
	WTV      MediaFormatProfile = "WTV"
	OGV      MediaFormatProfile = "OGV"

	AVC_MP4_MP_SD_AAC_MULT5 MediaFormatProfile = "AVC_MP4_MP_SD_AAC_MULT5"
	AVC_MP4_MP_SD_MPEG1_L3  MediaFormatProfile = "AVC_MP4_MP_SD_MPEG1_L3"
	AVC_MP4_MP_SD_AC3       MediaFormatProfile = "AVC_MP4_MP_SD_AC3"
	AVC_MP4_MP_HD_720p_AAC  MediaFormatProfile = "AVC_MP4_MP_HD_720p_AAC"
	AVC_MP4_MP_HD_1080i_AAC MediaFormatProfile = "AVC_MP4_MP_HD_1080i_AAC"
	AVC_MP4_HP_HD_AAC       MediaFormatProfile = "AVC_MP4_HP_HD_AAC"
	AVC_MP4_LPCM            MediaFormatProfile = "AVC_MP4_LPCM"
	AVC_3GPP_BL_QCIF15_AAC  MediaFormatProfile = "AVC_3GPP_BL_QCIF15_AAC"

	AVC_TS_HD_24_AC3_ISO      MediaFormatProfile = "AVC_TS_HD_24_AC3_ISO"
	AVC_TS_HD_24_AC3_T        MediaFormatProfile = "AVC_TS_HD_24_AC3_T"
	AVC_TS_HD_50_AC3_ISO      MediaFormatProfile = "AVC_TS_HD_50_AC3_ISO"
	AVC_TS_HD_50_AC3_T        MediaFormatProfile = "AVC_TS_HD_50_AC3_T"
	AVC_TS_HD_60_AC3_ISO      MediaFormatProfile = "AVC_TS_HD_60_AC3_ISO"
	AVC_TS_HD_60_AC3_T        MediaFormatProfile = "AVC_TS_HD_60_AC3_T"
	AVC_TS_HD_50_LPCM_T       MediaFormatProfile = "AVC_TS_HD_50_LPCM_T"
	AVC_TS_HD_DTS_ISO         MediaFormatProfile = "AVC_TS_HD_DTS_ISO"
	AVC_TS_HD_DTS_T           MediaFormatProfile = "AVC_TS_HD_DTS_T"
	AVC_TS_HP_HD_MPEG1_L2_ISO MediaFormatProfile = "AVC_TS_HP_HD_MPEG1_L2_ISO"
	AVC_TS_HP_HD_MPEG1_L2_T   MediaFormatProfile = "AVC_TS_HP_HD_MPEG1_L2_T"
	AVC_TS_HP_SD_MPEG1_L2_ISO MediaFormatProfile = "AVC_TS_HP_SD_MPEG1_L2_ISO"
	AVC_TS_HP_SD_MPEG1_L2_T   MediaFormatProfile = "AVC_TS_HP_SD_MPEG1_L2_T"

	AVC_TS_MP_HD_AAC_MULT5     MediaFormatProfile = "AVC_TS_MP_HD_AAC_MULT5"
	AVC_TS_MP_HD_AAC_MULT5_ISO MediaFormatProfile = "AVC_TS_MP_HD_AAC_MULT5_ISO"
	AVC_TS_MP_HD_AAC_MULT5_T   MediaFormatProfile = "AVC_TS_MP_HD_AAC_MULT5_T"
	AVC_TS_MP_HD_MPEG1_L3      MediaFormatProfile = "AVC_TS_MP_HD_MPEG1_L3"
	AVC_TS_MP_HD_MPEG1_L3_ISO  MediaFormatProfile = "AVC_TS_MP_HD_MPEG1_L3_ISO"
	AVC_TS_MP_HD_MPEG1_L3_T    MediaFormatProfile = "AVC_TS_MP_HD_MPEG1_L3_T"
	AVC_TS_MP_HD_AC3           MediaFormatProfile = "AVC_TS_MP_HD_AC3"
	AVC_TS_MP_HD_AC3_ISO       MediaFormatProfile = "AVC_TS_MP_HD_AC3_ISO"
	AVC_TS_MP_HD_AC3_T         MediaFormatProfile = "AVC_TS_MP_HD_AC3_T"
	AVC_TS_MP_SD_AAC_MULT5     MediaFormatProfile = "AVC_TS_MP_SD_AAC_MULT5"
	AVC_TS_MP_SD_AAC_MULT5_ISO MediaFormatProfile = "AVC_TS_MP_SD_AAC_MULT5_ISO"
	AVC_TS_MP_SD_AAC_MULT5_T   MediaFormatProfile = "AVC_TS_MP_SD_AAC_MULT5_T"
	AVC_TS_MP_SD_MPEG1_L3      MediaFormatProfile = "AVC_TS_MP_SD_MPEG1_L3"
	AVC_TS_MP_SD_MPEG1_L3_ISO  MediaFormatProfile = "AVC_TS_MP_SD_MPEG1_L3_ISO"
	AVC_TS_MP_SD_MPEG1_L3_T    MediaFormatProfile = "AVC_TS_MP_SD_MPEG1_L3_T"
	AVC_TS_MP_SD_AC3           MediaFormatProfile = "AVC_TS_MP_SD_AC3"
	AVC_TS_MP_SD_AC3_ISO       MediaFormatProfile = "AVC_TS_MP_SD_AC3_ISO"
	AVC_TS_MP_SD_AC3_T         MediaFormatProfile = "AVC_TS_MP_SD_AC3_T"

	MPEG4_P2_MP4_SP_L6_AAC       MediaFormatProfile = "MPEG4_P2_MP4_SP_L6_AAC"
	MPEG4_P2_MP4_ASP_AAC         MediaFormatProfile = "MPEG4_P2_MP4_ASP_AAC"
	MPEG4_P2_MP4_NDSD            MediaFormatProfile = "MPEG4_P2_MP4_NDSD"
	MPEG4_P2_TS_ASP_AAC          MediaFormatProfile = "MPEG4_P2_TS_ASP_AAC"
	MPEG4_P2_TS_ASP_AAC_ISO      MediaFormatProfile = "MPEG4_P2_TS_ASP_AAC_ISO"
	MPEG4_P2_TS_ASP_AAC_T        MediaFormatProfile = "MPEG4_P2_TS_ASP_AAC_T"
	MPEG4_P2_TS_ASP_AC3          MediaFormatProfile = "MPEG4_P2_TS_ASP_AC3"
	MPEG4_P2_TS_ASP_AC3_ISO      MediaFormatProfile = "MPEG4_P2_TS_ASP_AC3_ISO"
	MPEG4_P2_TS_ASP_AC3_T        MediaFormatProfile = "MPEG4_P2_TS_ASP_AC3_T"
	MPEG4_P2_TS_ASP_MPEG1_L3     MediaFormatProfile = "MPEG4_P2_TS_ASP_MPEG1_L3"
	MPEG4_P2_TS_ASP_MPEG1_L3_ISO MediaFormatProfile = "MPEG4_P2_TS_ASP_MPEG1_L3_ISO"
	MPEG4_P2_TS_ASP_MPEG1_L3_T   MediaFormatProfile = "MPEG4_P2_TS_ASP_MPEG1_L3_T"
	MPEG4_P2_TS_ASP_MPEG2_L2     MediaFormatProfile = "MPEG4_P2_TS_ASP_MPEG2_L2"
	MPEG4_P2_TS_ASP_MPEG2_L2_ISO MediaFormatProfile = "MPEG4_P2_TS_ASP_MPEG2_L2_ISO"
	MPEG4_P2_TS_ASP_MPEG2_L2_T   MediaFormatProfile = "MPEG4_P2_TS_ASP_MPEG2_L2_T"
	MPEG4_P2_3GPP_SP_L0B_AAC     MediaFormatProfile = "MPEG4_P2_3GPP_SP_L0B_AAC"
	MPEG4_P2_3GPP_SP_L0B_AMR     MediaFormatProfile = "MPEG4_P2_3GPP_SP_L0B_AMR"
	MPEG4_H263_3GPP_P0_L10_AMR   MediaFormatProfile = "MPEG4_H263_3GPP_P0_L10_AMR"
	MPEG4_H263_MP4_P0_L10_AAC    MediaFormatProfile = "MPEG4_H263_MP4_P0_L10_AAC"

	VC1_ASF_AP_L1_WMA    MediaFormatProfile = "VC1_ASF_AP_L1_WMA"
	VC1_ASF_AP_L2_WMA    MediaFormatProfile = "VC1_ASF_AP_L2_WMA"
	VC1_ASF_AP_L3_WMA    MediaFormatProfile = "VC1_ASF_AP_L3_WMA"
	VC1_TS_AP_L1_AC3_ISO MediaFormatProfile = "VC1_TS_AP_L1_AC3_ISO"
	VC1_TS_AP_L2_AC3_ISO MediaFormatProfile = "VC1_TS_AP_L2_AC3_ISO"
	VC1_TS_HD_DTS_ISO    MediaFormatProfile = "VC1_TS_HD_DTS_ISO"
	VC1_TS_HD_DTS_T      MediaFormatProfile = "VC1_TS_HD_DTS_T"

	WMVMED_BASE  MediaFormatProfile = "WMVMED_BASE"
	WMVMED_FULL  MediaFormatProfile = "WMVMED_FULL"
	WMVMED_PRO   MediaFormatProfile = "WMVMED_PRO"
	WMVHIGH_FULL MediaFormatProfile = "WMVHIGH_FULL"
	WMVHIGH_PRO  MediaFormatProfile = "WMVHIGH_PRO"
	WMVSPLL_BASE MediaFormatProfile = "WMVSPLL_BASE"
	WMVSPML_BASE MediaFormatProfile = "WMVSPML_BASE"
	WMVSPML_MP3  MediaFormatProfile = "WMVSPML_MP3"
)

var vocabulary = []MediaFormatProfile{
	MP3, WMA_BASE, WMA_FULL,
	LPCM16_44_MONO, LPCM16_44_STEREO, LPCM16_48_MONO, LPCM16_48_STEREO,
	AAC_ISO, AAC_ISO_320, AAC_ADTS, AAC_ADTS_320, FLAC, OGG,

	JPEG_SM, JPEG_MED, JPEG_LRG, JPEG_TN, PNG_LRG, PNG_TN, GIF_LRG, RAW,

	MPEG1, MPEG_PS_PAL, MPEG_PS_NTSC,
	MPEG_TS_SD_EU, MPEG_TS_SD_EU_ISO, MPEG_TS_SD_EU_T,
	MPEG_TS_SD_NA, MPEG_TS_SD_NA_ISO, MPEG_TS_SD_NA_T,
	MPEG_TS_SD_KO, MPEG_TS_SD_KO_ISO, MPEG_TS_SD_KO_T,
	MPEG_TS_JP_T,
	AVI, MATROSKA, FLV, DVR_MS, WTV, OGV,

	AVC_MP4_MP_SD_AAC_MULT5, AVC_MP4_MP_SD_MPEG1_L3, AVC_MP4_MP_SD_AC3,
	AVC_MP4_MP_HD_720p_AAC, AVC_MP4_MP_HD_1080i_AAC, AVC_MP4_HP_HD_AAC,
	AVC_MP4_LPCM, AVC_3GPP_BL_QCIF15_AAC,

	AVC_TS_HD_24_AC3_ISO, AVC_TS_HD_24_AC3_T,
	AVC_TS_HD_50_AC3_ISO, AVC_TS_HD_50_AC3_T,
	AVC_TS_HD_60_AC3_ISO, AVC_TS_HD_60_AC3_T,
	AVC_TS_HD_50_LPCM_T, AVC_TS_HD_DTS_ISO, AVC_TS_HD_DTS_T,
	AVC_TS_HP_HD_MPEG1_L2_ISO, AVC_TS_HP_HD_MPEG1_L2_T,
	AVC_TS_HP_SD_MPEG1_L2_ISO, AVC_TS_HP_SD_MPEG1_L2_T,

	AVC_TS_MP_HD_AAC_MULT5, AVC_TS_MP_HD_AAC_MULT5_ISO, AVC_TS_MP_HD_AAC_MULT5_T,
	AVC_TS_MP_HD_MPEG1_L3, AVC_TS_MP_HD_MPEG1_L3_ISO, AVC_TS_MP_HD_MPEG1_L3_T,
	AVC_TS_MP_HD_AC3, AVC_TS_MP_HD_AC3_ISO, AVC_TS_MP_HD_AC3_T,
	AVC_TS_MP_SD_AAC_MULT5, AVC_TS_MP_SD_AAC_MULT5_ISO, AVC_TS_MP_SD_AAC_MULT5_T,
	AVC_TS_MP_SD_MPEG1_L3, AVC_TS_MP_SD_MPEG1_L3_ISO, AVC_TS_MP_SD_MPEG1_L3_T,
	AVC_TS_MP_SD_AC3, AVC_TS_MP_SD_AC3_ISO, AVC_TS_MP_SD_AC3_T,

	MPEG4_P2_MP4_SP_L6_AAC, MPEG4_P2_MP4_ASP_AAC, MPEG4_P2_MP4_NDSD,
	MPEG4_P2_TS_ASP_AAC, MPEG4_P2_TS_ASP_AAC_ISO, MPEG4_P2_TS_ASP_AAC_T,
	MPEG4_P2_TS_ASP_AC3, MPEG4_P2_TS_ASP_AC3_ISO, MPEG4_P2_TS_ASP_AC3_T,
	MPEG4_P2_TS_ASP_MPEG1_L3, MPEG4_P2_TS_ASP_MPEG1_L3_ISO, MPEG4_P2_TS_ASP_MPEG1_L3_T,
	MPEG4_P2_TS_ASP_MPEG2_L2, MPEG4_P2_TS_ASP_MPEG2_L2_ISO, MPEG4_P2_TS_ASP_MPEG2_L2_T,
	MPEG4_P2_3GPP_SP_L0B_AAC, MPEG4_P2_3GPP_SP_L0B_AMR,
	MPEG4_H263_3GPP_P0_L10_AMR, MPEG4_H263_MP4_P0_L10_AAC,

	VC1_ASF_AP_L1_WMA, VC1_ASF_AP_L2_WMA, VC1_ASF_AP_L3_WMA,
	VC1_TS_AP_L1_AC3_ISO, VC1_TS_AP_L2_AC3_ISO, VC1_TS_HD_DTS_ISO, VC1_TS_HD_DTS_T,

	WMVMED_BASE, WMVMED_FULL, WMVMED_PRO, WMVHIGH_FULL, WMVHIGH_PRO,
	WMVSPLL_BASE, WMVSPML_BASE, WMVSPML_MP3,
}

var known = func() map[string]MediaFormatProfile {
	m := make(map[string]MediaFormatProfile, len(vocabulary))
	for _, p := range vocabulary {
		m[strings.ToUpper(string(p))] = p
	}
	return m
}()

// Vocabulary returns every known format profile.
func Vocabulary() []MediaFormatProfile {
	out := make([]MediaFormatProfile, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// ParseMediaFormatProfile looks up a profile by name, ignoring case
func ParseMediaFormatProfile(name string) (MediaFormatProfile, bool) {
	p, ok := known[strings.ToUpper(name)]
	return p, ok
}

// IsKnown reports whether p is a member of the vocabulary
func (p MediaFormatProfile) IsKnown() bool {
	_, ok := known[strings.ToUpper(string(p))]
	return ok
}

// String returns the identifier as it appears in DLNA.ORG_PN
func (p MediaFormatProfile) String() string {
	return string(p)
}
