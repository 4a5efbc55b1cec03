package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/tvoe/dlnaprofile/internal/dlna"
)

// MediaKind is the resolver category a media file belongs to
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
	MediaKindImage MediaKind = "image"
)

// MediaInfo holds the probed properties the profile resolver consumes.
// Numeric fields are nil when the prober could not determine them.
type MediaInfo struct {
	Kind       MediaKind                     `json:"kind"`
	Container  string                        `json:"container"`
	VideoCodec string                        `json:"videoCodec,omitempty"`
	AudioCodec string                        `json:"audioCodec,omitempty"`
	Width      *int                          `json:"width,omitempty"`
	Height     *int                          `json:"height,omitempty"`
	Bitrate    *int                          `json:"bitrate,omitempty"` // kbps
	Frequency  *int                          `json:"frequency,omitempty"`
	Channels   *int                          `json:"channels,omitempty"`
	Timestamp  dlna.TransportStreamTimestamp `json:"timestamp"`
	Duration   time.Duration                 `json:"duration"`
	FileSize   int64                         `json:"fileSize"`
}

// MediaItem is a catalogued object together with its resolved profiles
type MediaItem struct {
	ID        uuid.UUID                 `json:"id" db:"id"`
	Bucket    string                    `json:"bucket" db:"bucket"`
	Key       string                    `json:"key" db:"key"`
	Info      MediaInfo                 `json:"info" db:"info"`
	Profiles  []dlna.MediaFormatProfile `json:"profiles" db:"profiles"`
	ScanID    *uuid.UUID                `json:"scanId,omitempty" db:"scan_id"`
	CreatedAt time.Time                 `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time                 `json:"updatedAt" db:"updated_at"`
}

// NewMediaItem creates a catalog entry for a probed object
func NewMediaItem(bucket, key string, info MediaInfo, profiles []dlna.MediaFormatProfile) *MediaItem {
	now := time.Now().UTC()
	if profiles == nil {
		profiles = []dlna.MediaFormatProfile{}
	}
	return &MediaItem{
		ID:        uuid.New(),
		Bucket:    bucket,
		Key:       key,
		Info:      info,
		Profiles:  profiles,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Resolved returns true if at least one profile matched
func (m *MediaItem) Resolved() bool {
	return len(m.Profiles) > 0
}

// PrimaryProfile returns the preferred profile, or "" when nothing matched
func (m *MediaItem) PrimaryProfile() dlna.MediaFormatProfile {
	if len(m.Profiles) == 0 {
		return ""
	}
	return m.Profiles[0]
}

// SupportedExtensions lists object extensions picked up by catalog scans
var SupportedExtensions = map[string]bool{
	".mp4":  true,
	".m4v":  true,
	".m4a":  true,
	".mkv":  true,
	".avi":  true,
	".asf":  true,
	".wmv":  true,
	".wma":  true,
	".ts":   true,
	".m2ts": true,
	".mts":  true,
	".mpg":  true,
	".mpeg": true,
	".vob":  true,
	".flv":  true,
	".wtv":  true,
	".3gp":  true,
	".ogv":  true,
	".ogg":  true,
	".oga":  true,
	".mp3":  true,
	".aac":  true,
	".flac": true,
	".wav":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// IsExtensionSupported checks if an object extension is worth probing
func IsExtensionSupported(ext string) bool {
	return SupportedExtensions[ext]
}
