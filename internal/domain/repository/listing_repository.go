package repository

import (
	"context"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	GetByTitle(ctx context.Context, title string) (*entity.Listing, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Listing, error)
	// Search returns listings matching filter, newest first.
	Search(ctx context.Context, status string, filter entity.ListingFilter, limit, offset int) ([]*entity.Listing, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type MediaRepository interface {
	Create(ctx context.Context, media *entity.Media) error
	ListByListing(ctx context.Context, listingID string) ([]*entity.Media, error)
}
