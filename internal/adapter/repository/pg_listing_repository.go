package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/query"
)

const listingColumns = `id::text AS id, user_id::text AS user_id, title, description, price, property_type,
	bedrooms, bathrooms, square_feet, address, location, status, created_at, updated_at`

// listingFilterColumns is the whitelist of fields a browse query may filter on.
var listingFilterColumns = map[string]string{
	"status":        "status",
	"price":         "price",
	"property_type": "property_type",
	"bedrooms":      "bedrooms",
	"bathrooms":     "bathrooms",
}

type pgListingRepository struct {
	db *sqlx.DB
}

func NewPgListingRepository(db *sqlx.DB) repository.ListingRepository {
	return &pgListingRepository{db: db}
}

func (r *pgListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.Status == "" {
		listing.Status = entity.ListingActive
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO listings (id, user_id, title, description, price, property_type, bedrooms, bathrooms,
			square_feet, address, location, status, created_at, updated_at)
		VALUES (:id, :user_id, :title, :description, :price, :property_type, :bedrooms, :bathrooms,
			:square_feet, :address, :location, :status, :created_at, :updated_at)
	`, listing)
	return classify("Listing", "create listing", err)
}

func (r *pgListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	var listing entity.Listing
	if err := r.db.GetContext(ctx, &listing, "SELECT "+listingColumns+" FROM listings WHERE id = $1", id); err != nil {
		return nil, classify("Listing", "get listing", err)
	}
	return &listing, nil
}

// GetByTitle returns the newest listing with the given title.
func (r *pgListingRepository) GetByTitle(ctx context.Context, title string) (*entity.Listing, error) {
	var listing entity.Listing
	err := r.db.GetContext(ctx, &listing,
		"SELECT "+listingColumns+" FROM listings WHERE title = $1 ORDER BY created_at DESC LIMIT 1", title)
	if err != nil {
		return nil, classify("Listing", "get listing by title", err)
	}
	return &listing, nil
}

func (r *pgListingRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error) {
	listings := []*entity.Listing{}
	err := r.db.SelectContext(ctx, &listings,
		"SELECT "+listingColumns+" FROM listings WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, classify("Listing", "list listings", err)
	}
	return listings, nil
}

func (r *pgListingRepository) Search(ctx context.Context, status string, filter entity.ListingFilter, limit, offset int) ([]*entity.Listing, error) {
	b := query.NewBuilder(listingFilterColumns)
	if status != "" {
		b.Where("status", query.Eq, status)
	}
	if filter.PriceMin != nil {
		b.Where("price", query.Gte, *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		b.Where("price", query.Lte, *filter.PriceMax)
	}
	if filter.PropertyType != "" {
		b.Where("property_type", query.Eq, filter.PropertyType)
	}
	if filter.MinBedrooms != nil {
		b.Where("bedrooms", query.Gte, *filter.MinBedrooms)
	}
	if filter.MinBathrooms != nil {
		b.Where("bathrooms", query.Gte, *filter.MinBathrooms)
	}

	where, args, err := b.Build(1)
	if err != nil {
		return nil, errors.Internal("Failed to build listing filter", err)
	}
	q := fmt.Sprintf("SELECT %s FROM listings %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		listingColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	listings := []*entity.Listing{}
	if err := r.db.SelectContext(ctx, &listings, q, args...); err != nil {
		return nil, classify("Listing", "search listings", err)
	}
	return listings, nil
}

func (r *pgListingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE listings SET status = $1, updated_at = $2 WHERE id = $3", status, time.Now().UTC(), id)
	if err != nil {
		return classify("Listing", "update listing status", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound("Listing", nil)
	}
	return nil
}
