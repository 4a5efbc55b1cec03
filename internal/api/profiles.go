package api

import (
	"encoding/json"
	"net/http"

	"github.com/tvoe/dlnaprofile/internal/dlna"
	"github.com/tvoe/dlnaprofile/internal/domain"
)

// VideoProfileRequest holds the properties of a video stream
type VideoProfileRequest struct {
	Container  string `json:"container"`
	VideoCodec string `json:"videoCodec"`
	AudioCodec string `json:"audioCodec"`
	Width      *int   `json:"width,omitempty"`
	Height     *int   `json:"height,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// AudioProfileRequest holds the properties of an audio stream
type AudioProfileRequest struct {
	Container string `json:"container"`
	Bitrate   *int   `json:"bitrate,omitempty"` // kbps
	Frequency *int   `json:"frequency,omitempty"`
	Channels  *int   `json:"channels,omitempty"`
}

// ImageProfileRequest holds the properties of an image
type ImageProfileRequest struct {
	Container string `json:"container"`
	Width     *int   `json:"width,omitempty"`
	Height    *int   `json:"height,omitempty"`
}

// ProfilesResponse lists candidate profiles, most preferred first
type ProfilesResponse struct {
	Profiles []dlna.MediaFormatProfile `json:"profiles"`
}

// ProfileResponse holds a single resolved profile
type ProfileResponse struct {
	Profile dlna.MediaFormatProfile `json:"profile"`
}

// ResolveVideo returns every profile matching a video stream
func (h *Handler) ResolveVideo(w http.ResponseWriter, r *http.Request) {
	var req VideoProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Container == "" {
		h.writeError(w, http.StatusBadRequest, "container is required")
		return
	}

	timestamp, err := dlna.ParseTransportStreamTimestamp(req.Timestamp)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profiles := dlna.ResolveVideoFormat(req.Container, req.VideoCodec, req.AudioCodec, req.Width, req.Height, timestamp)
	if profiles == nil {
		profiles = []dlna.MediaFormatProfile{}
	}

	var primary string
	if len(profiles) > 0 {
		primary = profiles[0].String()
	}
	h.metrics.RecordResolution(string(domain.MediaKindVideo), primary)

	h.writeJSON(w, http.StatusOK, ProfilesResponse{Profiles: profiles})
}

// ResolveAudio returns the profile matching an audio stream
func (h *Handler) ResolveAudio(w http.ResponseWriter, r *http.Request) {
	var req AudioProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Container == "" {
		h.writeError(w, http.StatusBadRequest, "container is required")
		return
	}

	profile, ok := dlna.ResolveAudioFormat(req.Container, req.Bitrate, req.Frequency, req.Channels)
	h.writeSingle(w, domain.MediaKindAudio, profile, ok)
}

// ResolveImage returns the profile matching an image
func (h *Handler) ResolveImage(w http.ResponseWriter, r *http.Request) {
	var req ImageProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Container == "" {
		h.writeError(w, http.StatusBadRequest, "container is required")
		return
	}

	profile, ok := dlna.ResolveImageFormat(req.Container, req.Width, req.Height)
	h.writeSingle(w, domain.MediaKindImage, profile, ok)
}

// ListProfiles returns every profile the resolver can produce
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, ProfilesResponse{Profiles: dlna.Vocabulary()})
}

func (h *Handler) writeSingle(w http.ResponseWriter, kind domain.MediaKind, profile dlna.MediaFormatProfile, ok bool) {
	if !ok {
		h.metrics.RecordResolution(string(kind), "")
		h.writeError(w, http.StatusNotFound, "no matching profile")
		return
	}
	h.metrics.RecordResolution(string(kind), profile.String())
	h.writeJSON(w, http.StatusOK, ProfileResponse{Profile: profile})
}
