package dlna

import (
	"errors"
	"fmt"
)

// ErrVocabularyGap is raised when a rule composes a profile name that has no
// entry in the vocabulary. It means the rule table and the vocabulary drifted.
var ErrVocabularyGap = errors.New("dlna: composed profile missing from vocabulary")

// tier is the coarse resolution class used by MPEG2-TS H.264 profiles
type tier byte

const (
	tierNone     tier = 0
	tierStandard tier = 'S'
	tierHigh     tier = 'H'
)

func (t tier) String() string {
	if t == tierNone {
		return "-"
	}
	return string(rune(t))
}

// resolutionTier returns H when either present dimension exceeds 720x576
func resolutionTier(width, height *int) tier {
	if exceeds(width, 720) || exceeds(height, 576) {
		return tierHigh
	}
	return tierStandard
}

func exceeds(v *int, limit int) bool {
	return v != nil && *v > limit
}

// fitsWithin reports whether both dimensions are present and within the box
func fitsWithin(width, height *int, maxWidth, maxHeight int) bool {
	return width != nil && height != nil && *width <= maxWidth && *height <= maxHeight
}

type family string

const (
	familyMPEGTSSDNA     family = "MPEG_TS_SD_NA"
	familyMPEGTSSDEU     family = "MPEG_TS_SD_EU"
	familyMPEGTSSDKO     family = "MPEG_TS_SD_KO"
	familyAVCTSHPMPEG1L2 family = "AVC_TS_HP_xD_MPEG1_L2"
	familyAVCTSMPAAC     family = "AVC_TS_MP_xD_AAC_MULT5"
	familyAVCTSMPAC3     family = "AVC_TS_MP_xD_AC3"
	familyVC1TSHDDTS     family = "VC1_TS_HD_DTS"
)

type nameKey struct {
	family family
	tier   tier
	suffix string
}

// composed enumerates every name the MPEG2-TS rules can build from a
// resolution tier and timestamp suffix.
var composed = map[nameKey]MediaFormatProfile{
	{familyMPEGTSSDNA, tierNone, ""}:     MPEG_TS_SD_NA,
	{familyMPEGTSSDNA, tierNone, "_ISO"}: MPEG_TS_SD_NA_ISO,
	{familyMPEGTSSDNA, tierNone, "_T"}:   MPEG_TS_SD_NA_T,
	{familyMPEGTSSDEU, tierNone, ""}:     MPEG_TS_SD_EU,
	{familyMPEGTSSDEU, tierNone, "_ISO"}: MPEG_TS_SD_EU_ISO,
	{familyMPEGTSSDEU, tierNone, "_T"}:   MPEG_TS_SD_EU_T,
	{familyMPEGTSSDKO, tierNone, ""}:     MPEG_TS_SD_KO,
	{familyMPEGTSSDKO, tierNone, "_ISO"}: MPEG_TS_SD_KO_ISO,
	{familyMPEGTSSDKO, tierNone, "_T"}:   MPEG_TS_SD_KO_T,

	{familyAVCTSHPMPEG1L2, tierHigh, "_ISO"}:     AVC_TS_HP_HD_MPEG1_L2_ISO,
	{familyAVCTSHPMPEG1L2, tierHigh, "_T"}:       AVC_TS_HP_HD_MPEG1_L2_T,
	{familyAVCTSHPMPEG1L2, tierStandard, "_ISO"}: AVC_TS_HP_SD_MPEG1_L2_ISO,
	{familyAVCTSHPMPEG1L2, tierStandard, "_T"}:   AVC_TS_HP_SD_MPEG1_L2_T,

	{familyAVCTSMPAAC, tierHigh, ""}:         AVC_TS_MP_HD_AAC_MULT5,
	{familyAVCTSMPAAC, tierHigh, "_ISO"}:     AVC_TS_MP_HD_AAC_MULT5_ISO,
	{familyAVCTSMPAAC, tierHigh, "_T"}:       AVC_TS_MP_HD_AAC_MULT5_T,
	{familyAVCTSMPAAC, tierStandard, ""}:     AVC_TS_MP_SD_AAC_MULT5,
	{familyAVCTSMPAAC, tierStandard, "_ISO"}: AVC_TS_MP_SD_AAC_MULT5_ISO,
	{familyAVCTSMPAAC, tierStandard, "_T"}:   AVC_TS_MP_SD_AAC_MULT5_T,

	{familyAVCTSMPAC3, tierHigh, ""}:         AVC_TS_MP_HD_AC3,
	{familyAVCTSMPAC3, tierHigh, "_ISO"}:     AVC_TS_MP_HD_AC3_ISO,
	{familyAVCTSMPAC3, tierHigh, "_T"}:       AVC_TS_MP_HD_AC3_T,
	{familyAVCTSMPAC3, tierStandard, ""}:     AVC_TS_MP_SD_AC3,
	{familyAVCTSMPAC3, tierStandard, "_ISO"}: AVC_TS_MP_SD_AC3_ISO,
	{familyAVCTSMPAC3, tierStandard, "_T"}:   AVC_TS_MP_SD_AC3_T,

	{familyVC1TSHDDTS, tierNone, "_ISO"}: VC1_TS_HD_DTS_ISO,
	{familyVC1TSHDDTS, tierNone, "_T"}:   VC1_TS_HD_DTS_T,
}

// mustCompose returns the profile for a composed name. A missing entry is a
// programming error and panics with ErrVocabularyGap.
func mustCompose(f family, t tier, suffix string) MediaFormatProfile {
	p, ok := composed[nameKey{family: f, tier: t, suffix: suffix}]
	if !ok || !p.IsKnown() {
		panic(fmt.Errorf("%w: family=%s tier=%s suffix=%q", ErrVocabularyGap, f, t, suffix))
	}
	return p
}
