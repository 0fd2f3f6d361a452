package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
)

const reviewWithNamesColumns = `r.id::text AS id, r.listing_id::text AS listing_id, r.user_id::text AS user_id,
	r.rating, r.comment, r.media_urls, r.created_at, l.title AS listing_title, u.username`

type pgReviewRepository struct {
	db *sqlx.DB
}

func NewPgReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &pgReviewRepository{db: db}
}

func (r *pgReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO reviews (id, listing_id, user_id, rating, comment, media_urls, created_at)
		VALUES (:id, :listing_id, :user_id, :rating, :comment, :media_urls, :created_at)
	`, review)
	return classify("Review", "create review", err)
}

func (r *pgReviewRepository) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND listing_id = $2)", userID, listingID)
	if err != nil {
		return false, classify("Review", "check review", err)
	}
	return exists, nil
}

func (r *pgReviewRepository) ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithNames, error) {
	reviews := []entity.ReviewWithNames{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT `+reviewWithNamesColumns+`
		FROM reviews r
		JOIN listings l ON l.id = r.listing_id
		JOIN users u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, classify("Review", "list user reviews", err)
	}
	return reviews, nil
}

func (r *pgReviewRepository) ListByListing(ctx context.Context, listingID string) ([]entity.ReviewWithNames, error) {
	reviews := []entity.ReviewWithNames{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT `+reviewWithNamesColumns+`
		FROM reviews r
		JOIN listings l ON l.id = r.listing_id
		JOIN users u ON u.id = r.user_id
		WHERE r.listing_id = $1
		ORDER BY r.created_at DESC
	`, listingID)
	if err != nil {
		return nil, classify("Review", "list listing reviews", err)
	}
	return reviews, nil
}

// RatingSummary averages every review of the listing. No reviews gives 0/0.
func (r *pgReviewRepository) RatingSummary(ctx context.Context, listingID string) (entity.RatingSummary, error) {
	var summary entity.RatingSummary
	err := r.db.GetContext(ctx, &summary, `
		SELECT COALESCE(AVG(rating), 0)::float8 AS average, COUNT(*) AS count
		FROM reviews
		WHERE listing_id = $1
	`, listingID)
	if err != nil {
		return entity.RatingSummary{}, classify("Review", "summarise ratings", err)
	}
	return summary, nil
}
