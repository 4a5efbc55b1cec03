// Package dlna maps media descriptors to DLNA format profile identifiers.
//
// Three entry points cover the three media classes: ResolveVideoFormat,
// ResolveAudioFormat and ResolveImageFormat. Each is a pure decision table
// keyed on container, codec names and optional numeric properties. Container
// and codec tokens are compared case-insensitively; an unrecognised token is
// a normal "no match" and never an error.
//
// Optional numeric inputs are *int, nil meaning absent.
//
// Several rules are kept exactly as deployed even though they look wrong:
//
//   - H.264 in MPEG2-TS with MP3 audio always yields AVC_TS_HP_*_MPEG1_L2;
//     the AVC_TS_MP_*_MPEG1_L3 rule is ordered after AAC and never fires.
//   - LPCM at 48 kHz stereo yields nothing when both values are known.
//   - The WMA Pro alternative of the ASF/WMV rule tests the video codec,
//     so WMV with WMA Pro audio resolves to nothing.
//   - MPEG-4 Part 2 in MPEG2-TS resolves to nothing.
package dlna
