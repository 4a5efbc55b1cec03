package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tvoe/dlnaprofile/internal/dlna"
	"github.com/tvoe/dlnaprofile/internal/domain"
	"github.com/tvoe/dlnaprofile/internal/metrics"
	"github.com/tvoe/dlnaprofile/internal/storage/s3"
)

type mockObjects struct{ mock.Mock }

func (m *mockObjects) Stat(ctx context.Context, bucket, key string) (*s3.ObjectInfo, error) {
	args := m.Called(ctx, bucket, key)
	obj, _ := args.Get(0).(*s3.ObjectInfo)
	return obj, args.Error(1)
}

func (m *mockObjects) PresignGet(ctx context.Context, bucket, key string) (string, error) {
	args := m.Called(ctx, bucket, key)
	return args.String(0), args.Error(1)
}

type mockProber struct{ mock.Mock }

func (m *mockProber) Probe(ctx context.Context, input string) (*domain.MediaInfo, error) {
	args := m.Called(ctx, input)
	info, _ := args.Get(0).(*domain.MediaInfo)
	return info, args.Error(1)
}

type mockMedia struct{ mock.Mock }

func (m *mockMedia) Upsert(ctx context.Context, item *domain.MediaItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockMedia) GetByID(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.MediaItem)
	return item, args.Error(1)
}

func (m *mockMedia) List(ctx context.Context, bucket string, limit, offset int) ([]*domain.MediaItem, error) {
	args := m.Called(ctx, bucket, limit, offset)
	items, _ := args.Get(0).([]*domain.MediaItem)
	return items, args.Error(1)
}

func newTestService() (*Service, *mockObjects, *mockProber, *mockMedia) {
	objects := &mockObjects{}
	prober := &mockProber{}
	media := &mockMedia{}
	svc := NewService(objects, prober, media, metrics.New(prometheus.NewRegistry()), zap.NewNop())
	return svc, objects, prober, media
}

const presigned = "http://minio.local:9000/media/a.mp4?X-Amz-Signature=abc"

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		info domain.MediaInfo
		want []dlna.MediaFormatProfile
	}{
		{
			name: "video",
			info: domain.MediaInfo{
				Kind: domain.MediaKindVideo, Container: "mp4", VideoCodec: "h264", AudioCodec: "ac3",
				Width: dlna.Int(720), Height: dlna.Int(576),
			},
			want: []dlna.MediaFormatProfile{dlna.AVC_MP4_MP_SD_AC3},
		},
		{
			name: "audio",
			info: domain.MediaInfo{Kind: domain.MediaKindAudio, Container: "mp3"},
			want: []dlna.MediaFormatProfile{dlna.MP3},
		},
		{
			name: "image",
			info: domain.MediaInfo{Kind: domain.MediaKindImage, Container: "jpeg", Width: dlna.Int(640), Height: dlna.Int(480)},
			want: []dlna.MediaFormatProfile{dlna.JPEG_SM},
		},
		{
			name: "video without match",
			info: domain.MediaInfo{Kind: domain.MediaKindVideo, Container: "rm", VideoCodec: "rv40"},
			want: []dlna.MediaFormatProfile{},
		},
		{
			name: "audio without match",
			info: domain.MediaInfo{Kind: domain.MediaKindAudio, Container: "lpcm", Frequency: dlna.Int(48000), Channels: dlna.Int(2)},
			want: []dlna.MediaFormatProfile{},
		},
		{
			name: "no kind",
			info: domain.MediaInfo{Container: "mp4"},
			want: []dlna.MediaFormatProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.info)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProbeObject(t *testing.T) {
	svc, objects, prober, media := newTestService()
	ctx := context.Background()

	objects.On("Stat", ctx, "media", "a.mp4").Return(&s3.ObjectInfo{Key: "a.mp4", Size: 4096}, nil)
	objects.On("PresignGet", ctx, "media", "a.mp4").Return(presigned, nil)
	prober.On("Probe", ctx, presigned).Return(&domain.MediaInfo{
		Kind:       domain.MediaKindVideo,
		Container:  "mp4",
		VideoCodec: "h264",
		AudioCodec: "aac",
		Width:      dlna.Int(1280),
		Height:     dlna.Int(720),
	}, nil)
	media.On("Upsert", ctx, mock.MatchedBy(func(item *domain.MediaItem) bool {
		return item.Bucket == "media" && item.Key == "a.mp4" && item.ScanID == nil
	})).Return(nil)

	item, err := svc.ProbeObject(ctx, "media", "a.mp4")
	require.NoError(t, err)
	assert.Equal(t, []dlna.MediaFormatProfile{dlna.AVC_MP4_MP_HD_720p_AAC}, item.Profiles)
	assert.Equal(t, int64(4096), item.Info.FileSize)
	assert.True(t, item.Resolved())

	objects.AssertExpectations(t)
	prober.AssertExpectations(t)
	media.AssertExpectations(t)
}

func TestProbeForScanStoresUnresolved(t *testing.T) {
	svc, objects, prober, media := newTestService()
	ctx := context.Background()
	scanID := uuid.New()

	objects.On("Stat", ctx, "media", "b.mp4").Return(&s3.ObjectInfo{Key: "b.mp4"}, nil)
	objects.On("PresignGet", ctx, "media", "b.mp4").Return(presigned, nil)
	prober.On("Probe", ctx, presigned).Return(&domain.MediaInfo{
		Kind: domain.MediaKindVideo, Container: "mp4", VideoCodec: "hevc",
	}, nil)
	media.On("Upsert", ctx, mock.Anything).Return(nil)

	item, err := svc.ProbeForScan(ctx, scanID, "media", "b.mp4")
	require.NoError(t, err)
	require.NotNil(t, item.ScanID)
	assert.Equal(t, scanID, *item.ScanID)
	assert.Empty(t, item.Profiles)
	assert.False(t, item.Resolved())
}

func TestProbeObjectUnsupported(t *testing.T) {
	svc, objects, prober, media := newTestService()
	ctx := context.Background()

	objects.On("Stat", ctx, "media", "c.bin").Return(&s3.ObjectInfo{Key: "c.bin"}, nil)
	objects.On("PresignGet", ctx, "media", "c.bin").Return(presigned, nil)
	prober.On("Probe", ctx, presigned).Return(&domain.MediaInfo{}, nil)

	_, err := svc.ProbeObject(ctx, "media", "c.bin")
	require.ErrorIs(t, err, ErrUnsupportedMedia)
	media.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProbeObjectNotFound(t *testing.T) {
	svc, objects, prober, _ := newTestService()
	ctx := context.Background()

	objects.On("Stat", ctx, "media", "missing.mp4").Return(nil, s3.ErrObjectNotFound)

	_, err := svc.ProbeObject(ctx, "media", "missing.mp4")
	require.ErrorIs(t, err, s3.ErrObjectNotFound)
	prober.AssertNotCalled(t, "Probe", mock.Anything, mock.Anything)
}

func TestProbeObjectProbeFailure(t *testing.T) {
	svc, objects, prober, _ := newTestService()
	ctx := context.Background()
	probeErr := errors.New("exit status 1")

	objects.On("Stat", ctx, "media", "d.ts").Return(&s3.ObjectInfo{Key: "d.ts"}, nil)
	objects.On("PresignGet", ctx, "media", "d.ts").Return(presigned, nil)
	prober.On("Probe", ctx, presigned).Return(nil, probeErr)

	_, err := svc.ProbeObject(ctx, "media", "d.ts")
	require.ErrorIs(t, err, probeErr)
}
