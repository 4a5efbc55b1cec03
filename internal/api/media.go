package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/catalog"
	"github.com/tvoe/dlnaprofile/internal/db"
	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/storage/s3"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ProbeMediaRequest identifies a stored object to catalogue
type ProbeMediaRequest struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// MediaListResponse holds a page of catalog entries
type MediaListResponse struct {
	Items  []*domain.MediaItem `json:"items"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// ProbeMedia probes an object, resolves its profiles and stores the result
func (h *Handler) ProbeMedia(w http.ResponseWriter, r *http.Request) {
	var req ProbeMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		h.writeError(w, http.StatusBadRequest, "key is required")
		return
	}
	if req.Bucket == "" {
		req.Bucket = h.config.S3.DefaultBucket
	}

	item, err := h.catalog.ProbeObject(r.Context(), req.Bucket, req.Key)
	if err != nil {
		switch {
		case errors.Is(err, s3.ErrObjectNotFound):
			h.writeError(w, http.StatusNotFound, "object not found")
		case errors.Is(err, catalog.ErrUnsupportedMedia):
			h.writeError(w, http.StatusUnprocessableEntity, "unsupported media")
		default:
			h.logger.Error("failed to probe media",
				zap.String("bucket", req.Bucket),
				zap.String("key", req.Key),
				zap.Error(err),
			)
			h.writeError(w, http.StatusBadGateway, "failed to probe media")
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, item)
}

// GetMedia returns a catalog entry
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := uuid.Parse(chi.URLParam(r, "mediaId"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid media ID")
		return
	}

	item, err := h.catalog.Get(r.Context(), mediaID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "media not found")
			return
		}
		h.logger.Error("failed to get media", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to get media")
		return
	}

	h.writeJSON(w, http.StatusOK, item)
}

// ListMedia returns a page of catalog entries
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", defaultListLimit)
	if !ok || limit == 0 || limit > maxListLimit {
		h.writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	items, err := h.catalog.List(r.Context(), r.URL.Query().Get("bucket"), limit, offset)
	if err != nil {
		h.logger.Error("failed to list media", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list media")
		return
	}

	h.writeJSON(w, http.StatusOK, MediaListResponse{Items: items, Limit: limit, Offset: offset})
}
