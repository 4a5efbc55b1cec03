package dlna

func resolveVideoMPEG2TS(in videoInput) []MediaFormatProfile {
	suffix := in.timestamp.suffix()
	t := resolutionTier(in.width, in.height)

	switch in.videoCodec {
	case "mpeg2video":
		out := []MediaFormatProfile{
			mustCompose(familyMPEGTSSDNA, tierNone, suffix),
			mustCompose(familyMPEGTSSDEU, tierNone, suffix),
			mustCompose(familyMPEGTSSDKO, tierNone, suffix),
		}
		if in.timestamp == TimestampValid && in.audioCodec == "aac" {
			out = append(out, MPEG_TS_JP_T)
		}
		return out

	case "h264":
		switch in.audioCodec {
		case "lpcm":
			return []MediaFormatProfile{AVC_TS_HD_50_LPCM_T}
		case "dts":
			if in.timestamp == TimestampNone {
				return []MediaFormatProfile{AVC_TS_HD_DTS_ISO}
			}
			return []MediaFormatProfile{AVC_TS_HD_DTS_T}
		case "mp3":
			s := "_T"
			if in.timestamp == TimestampNone {
				s = "_ISO"
			}
			return []MediaFormatProfile{mustCompose(familyAVCTSHPMPEG1L2, t, s)}
		case "aac":
			return []MediaFormatProfile{mustCompose(familyAVCTSMPAAC, t, suffix)}
		// AVC_TS_MP_xD_MPEG1_L3 is ordered after the mp3 rule above and
		// can never be selected.
		case "", "ac3":
			return []MediaFormatProfile{mustCompose(familyAVCTSMPAC3, t, suffix)}
		}

	case "vc1":
		switch in.audioCodec {
		case "", "ac3":
			// always _ISO, whatever the timestamp kind
			if t == tierHigh {
				return []MediaFormatProfile{VC1_TS_AP_L2_AC3_ISO}
			}
			return []MediaFormatProfile{VC1_TS_AP_L1_AC3_ISO}
		case "dts":
			if suffix != "_ISO" {
				suffix = "_T"
			}
			return []MediaFormatProfile{mustCompose(familyVC1TSHDDTS, tierNone, suffix)}
		}

	case "mpeg4", "msmpeg4":
		// MPEG4_P2_TS_ASP_* rules are disabled.
	}

	return nil
}

func resolveVideoMP4(in videoInput) (MediaFormatProfile, bool) {
	switch in.videoCodec {
	case "h264":
		switch in.audioCodec {
		case "lpcm":
			return AVC_MP4_LPCM, true
		case "", "ac3":
			return AVC_MP4_MP_SD_AC3, true
		case "mp3":
			return AVC_MP4_MP_SD_MPEG1_L3, true
		case "aac":
			switch {
			case fitsWithin(in.width, in.height, 720, 576):
				return AVC_MP4_MP_SD_AAC_MULT5, true
			case fitsWithin(in.width, in.height, 1280, 720):
				return AVC_MP4_MP_HD_720p_AAC, true
			case fitsWithin(in.width, in.height, 1920, 1080):
				return AVC_MP4_MP_HD_1080i_AAC, true
			}
		}

	case "mpeg4", "msmpeg4":
		if fitsWithin(in.width, in.height, 720, 576) {
			switch in.audioCodec {
			case "", "aac":
				return MPEG4_P2_MP4_ASP_AAC, true
			case "ac3", "mp3":
				return MPEG4_P2_MP4_NDSD, true
			}
			return "", false
		}
		if in.audioCodec == "" || in.audioCodec == "aac" {
			return MPEG4_P2_MP4_SP_L6_AAC, true
		}

	case "h263":
		if in.audioCodec == "aac" {
			return MPEG4_H263_MP4_P0_L10_AAC, true
		}
	}

	return "", false
}

func resolveVideoASF(in videoInput) (MediaFormatProfile, bool) {
	wma := in.audioCodec == "" || in.audioCodec == "wma"

	// The wmapro alternative compares the video codec, not the audio codec,
	// so it never holds once the codec is wmv.
	if in.videoCodec == "wmv" && (wma || in.videoCodec == "wmapro") {
		if fitsWithin(in.width, in.height, 720, 576) {
			if wma {
				return WMVMED_FULL, true
			}
			return WMVMED_PRO, true
		}
		if wma {
			return WMVHIGH_FULL, true
		}
		return WMVHIGH_PRO, true
	}

	switch in.videoCodec {
	case "vc1":
		switch {
		case fitsWithin(in.width, in.height, 720, 576):
			return VC1_ASF_AP_L1_WMA, true
		case fitsWithin(in.width, in.height, 1280, 720):
			return VC1_ASF_AP_L2_WMA, true
		case fitsWithin(in.width, in.height, 1920, 1080):
			return VC1_ASF_AP_L3_WMA, true
		}
	case "mpeg2video":
		return DVR_MS, true
	}

	return "", false
}

func resolveVideo3GP(in videoInput) (MediaFormatProfile, bool) {
	switch in.videoCodec {
	case "h264":
		if in.audioCodec == "" || in.audioCodec == "aac" {
			return AVC_3GPP_BL_QCIF15_AAC, true
		}
	case "mpeg4", "msmpeg4":
		switch in.audioCodec {
		case "", "wma":
			return MPEG4_P2_3GPP_SP_L0B_AAC, true
		case "amrnb":
			return MPEG4_P2_3GPP_SP_L0B_AMR, true
		}
	case "h263":
		if in.audioCodec == "amrnb" {
			return MPEG4_H263_3GPP_P0_L10_AMR, true
		}
	}
	return "", false
}
