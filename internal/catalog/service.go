package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/metrics"
	"github.com/tvoe/dlnaprofile/internal/storage/s3"
)

// ErrUnsupportedMedia is returned when a probed object has no audio,
// video or image stream
var ErrUnsupportedMedia = errors.New("unsupported media")

// ObjectStore gives the prober read access to stored objects
type ObjectStore interface {
	Stat(ctx context.Context, bucket, key string) (*s3.ObjectInfo, error)
	PresignGet(ctx context.Context, bucket, key string) (string, error)
}

// Prober extracts media info from a readable URL
type Prober interface {
	Probe(ctx context.Context, input string) (*domain.MediaInfo, error)
}

// MediaStore persists catalog items
type MediaStore interface {
	Upsert(ctx context.Context, item *domain.MediaItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error)
	List(ctx context.Context, bucket string, limit, offset int) ([]*domain.MediaItem, error)
}

// Service probes stored objects, resolves their profiles and keeps the catalog
type Service struct {
	objects ObjectStore
	prober  Prober
	media   MediaStore
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new catalog service
func NewService(objects ObjectStore, prober Prober, media MediaStore, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		objects: objects,
		prober:  prober,
		media:   media,
		metrics: m,
		logger:  logger,
	}
}

// ProbeObject probes a stored object, resolves its profiles and stores the
// result in the catalog
func (s *Service) ProbeObject(ctx context.Context, bucket, key string) (*domain.MediaItem, error) {
	return s.probe(ctx, bucket, key, nil)
}

// ProbeForScan is ProbeObject for objects discovered by a catalog scan
func (s *Service) ProbeForScan(ctx context.Context, scanID uuid.UUID, bucket, key string) (*domain.MediaItem, error) {
	return s.probe(ctx, bucket, key, &scanID)
}

func (s *Service) probe(ctx context.Context, bucket, key string, scanID *uuid.UUID) (*domain.MediaItem, error) {
	logger := s.logger.With(zap.String("bucket", bucket), zap.String("key", key))

	obj, err := s.objects.Stat(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	url, err := s.objects.PresignGet(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementProbesActive()
	start := time.Now()
	info, err := s.prober.Probe(ctx, url)
	s.metrics.DecrementProbesActive()
	s.metrics.RecordProbeDuration(time.Since(start).Seconds())
	if err != nil {
		s.metrics.RecordProbeFailure("unknown")
		logger.Warn("probe failed", zap.Error(err))
		return nil, fmt.Errorf("failed to probe %s/%s: %w", bucket, key, err)
	}

	if info.Kind == "" {
		s.metrics.RecordProbeFailure("unknown")
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedMedia, bucket, key)
	}
	if info.FileSize == 0 {
		info.FileSize = obj.Size
	}

	profiles := Resolve(*info)
	item := domain.NewMediaItem(bucket, key, *info, profiles)
	item.ScanID = scanID
	s.metrics.RecordResolution(string(info.Kind), item.PrimaryProfile().String())

	if err := s.media.Upsert(ctx, item); err != nil {
		return nil, err
	}

	logger.Info("media resolved",
		zap.String("kind", string(info.Kind)),
		zap.String("container", info.Container),
		zap.Stringer("profile", item.PrimaryProfile()),
		zap.Int("candidates", len(item.Profiles)),
	)

	return item, nil
}

// Get returns a catalog item
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	return s.media.GetByID(ctx, id)
}

// List returns catalog items, optionally restricted to a bucket
func (s *Service) List(ctx context.Context, bucket string, limit, offset int) ([]*domain.MediaItem, error) {
	return s.media.List(ctx, bucket, limit, offset)
}
