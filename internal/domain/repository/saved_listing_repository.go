package repository

import (
	"context"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

type SavedListingRepository interface {
	// Upsert inserts the saved listing or, when the user already saved the
	// listing, replaces its notes.
	Upsert(ctx context.Context, saved *entity.SavedListing) error
	IsSaved(ctx context.Context, userID, listingID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]entity.SavedListingWithListing, error)
}
