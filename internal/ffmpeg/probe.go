package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os/exec"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/tvoe/dlnaprofile/internal/dlna"
	"github.com/tvoe/dlnaprofile/internal/domain"
)

// Prober extracts resolver inputs from media files with ffprobe
type Prober struct {
	ffprobePath string
	timeout     time.Duration
}

// NewProber creates a new prober
func NewProber(ffprobePath string, timeout time.Duration) *Prober {
	return &Prober{ffprobePath: ffprobePath, timeout: timeout}
}

// Probe extracts media info from a local path or an http(s) URL
func (p *Prober) Probe(ctx context.Context, input string) (*domain.MediaInfo, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		input,
	}

	cmd := exec.CommandContext(ctx, p.ffprobePath, args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ffprobe timed out: %w", ctx.Err())
		}
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbeOutput(output, extensionOf(input))
}

type probeOutput struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
}

type probeStream struct {
	Index       int            `json:"index"`
	CodecName   string         `json:"codec_name"`
	CodecType   string         `json:"codec_type"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	BitRate     string         `json:"bit_rate"`
	Channels    int            `json:"channels"`
	SampleRate  string         `json:"sample_rate"`
	Disposition map[string]int `json:"disposition"`
}

func parseProbeOutput(raw []byte, ext string) (*domain.MediaInfo, error) {
	var data probeOutput
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &domain.MediaInfo{}

	if duration, err := strconv.ParseFloat(data.Format.Duration, 64); err == nil {
		info.Duration = time.Duration(duration * float64(time.Second))
	}
	if size, err := strconv.ParseInt(data.Format.Size, 10, 64); err == nil {
		info.FileSize = size
	}

	var video, audio *probeStream
	for i := range data.Streams {
		stream := &data.Streams[i]
		switch stream.CodecType {
		case "video":
			if video == nil && stream.Disposition["attached_pic"] == 0 {
				video = stream
			}
		case "audio":
			if audio == nil {
				audio = stream
			}
		}
	}

	format := firstFormat(data.Format.FormatName)
	switch {
	case video != nil && isImageFormat(format):
		info.Kind = domain.MediaKindImage
		info.VideoCodec = normalizeVideoCodec(video.CodecName)
		info.Width = positive(video.Width)
		info.Height = positive(video.Height)
	case video != nil:
		info.Kind = domain.MediaKindVideo
		info.VideoCodec = normalizeVideoCodec(video.CodecName)
		info.Width = positive(video.Width)
		info.Height = positive(video.Height)
		info.Bitrate = kbps(data.Format.BitRate)
	case audio != nil:
		info.Kind = domain.MediaKindAudio
		info.Bitrate = kbps(audio.BitRate)
		if info.Bitrate == nil {
			info.Bitrate = kbps(data.Format.BitRate)
		}
	default:
		return info, nil
	}

	if audio != nil {
		info.AudioCodec = normalizeAudioCodec(audio.CodecName)
		info.Channels = positive(audio.Channels)
		if sr, err := strconv.Atoi(audio.SampleRate); err == nil {
			info.Frequency = positive(sr)
		}
	}

	info.Container = normalizeContainer(format, ext, info.Kind, info.VideoCodec)
	info.Timestamp = transportTimestamp(info.Container)

	return info, nil
}

func firstFormat(formatName string) string {
	formats := strings.Split(formatName, ",")
	return formats[0]
}

func isImageFormat(format string) bool {
	return format == "image2" || format == "gif" || strings.HasSuffix(format, "_pipe")
}

// normalizeContainer maps an ffprobe demuxer name to a resolver container token
func normalizeContainer(format, ext string, kind domain.MediaKind, videoCodec string) string {
	switch format {
	case "mov":
		if ext == ".3gp" || ext == ".3g2" {
			return "3gp"
		}
		return "mp4"
	case "matroska", "webm":
		return "mkv"
	case "mpegts":
		if ext == ".m2ts" || ext == ".mts" {
			return "m2ts"
		}
		return "mpegts"
	case "mpeg":
		if videoCodec == "mpeg1video" {
			return "mpeg1video"
		}
		return "mpeg2ps"
	case "mpegvideo":
		return "mpeg1video"
	case "ogg":
		if kind == domain.MediaKindVideo {
			return "ogv"
		}
		return "ogg"
	case "aac":
		return "adts"
	case "wav":
		return "lpcm"
	}

	if kind == domain.MediaKindImage {
		switch videoCodec {
		case "mjpeg":
			return "jpeg"
		case "png":
			return "png"
		case "gif":
			return "gif"
		}
	}

	return format
}

func normalizeVideoCodec(codec string) string {
	switch {
	case codec == "wmv1", codec == "wmv2", codec == "wmv3":
		return "wmv"
	case strings.HasPrefix(codec, "msmpeg4"):
		return "msmpeg4"
	default:
		return codec
	}
}

func normalizeAudioCodec(codec string) string {
	switch {
	case codec == "wmav1", codec == "wmav2":
		return "wma"
	case codec == "amr_nb":
		return "amrnb"
	case strings.HasPrefix(codec, "pcm_"):
		return "lpcm"
	default:
		return codec
	}
}

// transportTimestamp infers packet timestamps from the container: m2ts uses
// 192-byte packets with a timestamp prefix, plain mpegts does not
func transportTimestamp(container string) dlna.TransportStreamTimestamp {
	switch container {
	case "m2ts":
		return dlna.TimestampValid
	case "mpegts":
		return dlna.TimestampNone
	default:
		return dlna.TimestampUnspecified
	}
}

func extensionOf(input string) string {
	if u, err := url.Parse(input); err == nil && u.Scheme != "" && u.Path != "" {
		input = u.Path
	}
	return strings.ToLower(path.Ext(input))
}

func kbps(bitrate string) *int {
	bps, err := strconv.Atoi(bitrate)
	if err != nil || bps <= 0 {
		return nil
	}
	v := bps / 1000
	return &v
}

func positive(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
