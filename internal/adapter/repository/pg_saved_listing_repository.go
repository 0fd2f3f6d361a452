package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
)

type pgSavedListingRepository struct {
	db *sqlx.DB
}

func NewPgSavedListingRepository(db *sqlx.DB) repository.SavedListingRepository {
	return &pgSavedListingRepository{db: db}
}

func (r *pgSavedListingRepository) Upsert(ctx context.Context, saved *entity.SavedListing) error {
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	now := time.Now().UTC()

	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO saved_listings (id, user_id, listing_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id, listing_id)
		DO UPDATE SET notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at
		RETURNING id::text, created_at, updated_at
	`, saved.ID, saved.UserID, saved.ListingID, saved.Notes, now).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	return classify("Saved listing", "save listing", err)
}

func (r *pgSavedListingRepository) IsSaved(ctx context.Context, userID, listingID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM saved_listings WHERE user_id = $1 AND listing_id = $2)", userID, listingID)
	if err != nil {
		return false, classify("Saved listing", "check saved listing", err)
	}
	return exists, nil
}

func (r *pgSavedListingRepository) ListByUser(ctx context.Context, userID string) ([]entity.SavedListingWithListing, error) {
	saved := []entity.SavedListingWithListing{}
	err := r.db.SelectContext(ctx, &saved, `
		SELECT s.id::text AS id, s.user_id::text AS user_id, s.listing_id::text AS listing_id, s.notes,
			s.created_at, s.updated_at, l.title, l.price, l.property_type
		FROM saved_listings s
		JOIN listings l ON l.id = s.listing_id
		WHERE s.user_id = $1
		ORDER BY s.updated_at DESC
	`, userID)
	if err != nil {
		return nil, classify("Saved listing", "list saved listings", err)
	}
	return saved, nil
}
