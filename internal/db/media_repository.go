package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tvoe/dlnaprofile/internal/dlna"
	"github.com/tvoe/dlnaprofile/internal/domain"
)

// ErrNotFound is returned when a resource is not found
var ErrNotFound = errors.New("not found")

// MediaRepository handles catalog item persistence
type MediaRepository struct {
	db *DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *DB) *MediaRepository {
	return &MediaRepository{db: db}
}

const mediaColumns = `id, bucket, key, info, profiles, scan_id, created_at, updated_at`

// Upsert stores an item, replacing the info and profiles of an existing
// entry for the same bucket and key. The stored id and creation time are
// written back to item.
func (r *MediaRepository) Upsert(ctx context.Context, item *domain.MediaItem) error {
	infoJSON, err := json.Marshal(item.Info)
	if err != nil {
		return fmt.Errorf("failed to marshal media info: %w", err)
	}

	query := `
		INSERT INTO media_items (` + mediaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (bucket, key) DO UPDATE SET
			info = EXCLUDED.info,
			profiles = EXCLUDED.profiles,
			scan_id = EXCLUDED.scan_id,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err = r.db.Pool.QueryRow(ctx, query,
		item.ID,
		item.Bucket,
		item.Key,
		infoJSON,
		profileNames(item.Profiles),
		item.ScanID,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert media item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by ID
func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_items WHERE id = $1`

	item, err := scanMediaItem(r.db.Pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return item, err
}

// List lists items, optionally restricted to a bucket, newest first
func (r *MediaRepository) List(ctx context.Context, bucket string, limit, offset int) ([]*domain.MediaItem, error) {
	query := `
		SELECT ` + mediaColumns + `
		FROM media_items
		WHERE $1 = '' OR bucket = $1
		ORDER BY updated_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Pool.Query(ctx, query, bucket, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.MediaItem, 0)
	for rows.Next() {
		item, err := scanMediaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate media items: %w", err)
	}

	return items, nil
}

func scanMediaItem(row pgx.Row) (*domain.MediaItem, error) {
	var item domain.MediaItem
	var infoJSON []byte
	var profiles []string

	err := row.Scan(
		&item.ID,
		&item.Bucket,
		&item.Key,
		&infoJSON,
		&profiles,
		&item.ScanID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan media item: %w", err)
	}

	if err := json.Unmarshal(infoJSON, &item.Info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal media info: %w", err)
	}

	item.Profiles = make([]dlna.MediaFormatProfile, 0, len(profiles))
	for _, name := range profiles {
		item.Profiles = append(item.Profiles, dlna.MediaFormatProfile(name))
	}

	return &item, nil
}

func profileNames(profiles []dlna.MediaFormatProfile) []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.String())
	}
	return names
}
