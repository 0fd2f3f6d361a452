package repository

import (
	"context"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Exists(ctx context.Context, userID, listingID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithNames, error)
	ListByListing(ctx context.Context, listingID string) ([]entity.ReviewWithNames, error)
	RatingSummary(ctx context.Context, listingID string) (entity.RatingSummary, error)
}
