package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
)

type pgMediaRepository struct {
	db *sqlx.DB
}

func NewPgMediaRepository(db *sqlx.DB) repository.MediaRepository {
	return &pgMediaRepository{db: db}
}

// Create appends media after the listing's current last item.
func (r *pgMediaRepository) Create(ctx context.Context, media *entity.Media) error {
	if media.ID == "" {
		media.ID = uuid.New().String()
	}
	if media.MediaType == "" {
		media.MediaType = entity.MediaImage
	}

	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO listing_media (id, listing_id, url, media_type, caption, display_order)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM listing_media WHERE listing_id = $2))
		RETURNING display_order
	`, media.ID, media.ListingID, media.URL, media.MediaType, media.Caption).Scan(&media.DisplayOrder)
	return classify("Media", "create media", err)
}

func (r *pgMediaRepository) ListByListing(ctx context.Context, listingID string) ([]*entity.Media, error) {
	media := []*entity.Media{}
	err := r.db.SelectContext(ctx, &media, `
		SELECT id::text AS id, listing_id::text AS listing_id, url, media_type, caption, display_order
		FROM listing_media
		WHERE listing_id = $1
		ORDER BY display_order
	`, listingID)
	if err != nil {
		return nil, classify("Media", "list media", err)
	}
	return media, nil
}
