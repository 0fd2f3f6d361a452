package usecase

import (
	"context"
	"strings"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
)

type SavedListingUseCase struct {
	savedRepo   repository.SavedListingRepository
	listingRepo repository.ListingRepository
}

func NewSavedListingUseCase(savedRepo repository.SavedListingRepository, listingRepo repository.ListingRepository) *SavedListingUseCase {
	return &SavedListingUseCase{
		savedRepo:   savedRepo,
		listingRepo: listingRepo,
	}
}

// Save bookmarks a listing for userID. Saving it again replaces the notes.
func (uc *SavedListingUseCase) Save(ctx context.Context, userID, listingID, notes string) (*entity.SavedListing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != entity.ListingActive {
		return nil, errors.Validation("Only active listings can be saved", nil)
	}

	saved := &entity.SavedListing{
		UserID:    userID,
		ListingID: listingID,
		Notes:     strings.TrimSpace(notes),
	}
	if err := uc.savedRepo.Upsert(ctx, saved); err != nil {
		logger.Error("SaveListing Error: user %s listing %s: %v", userID, listingID, err)
		return nil, err
	}

	return saved, nil
}

func (uc *SavedListingUseCase) SaveByTitle(ctx context.Context, userID, title, notes string) (*entity.SavedListing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.Validation("title is required", nil)
	}

	listing, err := uc.listingRepo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return uc.Save(ctx, userID, listing.ID, notes)
}

func (uc *SavedListingUseCase) IsSaved(ctx context.Context, userID, listingID string) (bool, error) {
	return uc.savedRepo.IsSaved(ctx, userID, listingID)
}

func (uc *SavedListingUseCase) List(ctx context.Context, userID string) ([]entity.SavedListingWithListing, error) {
	return uc.savedRepo.ListByUser(ctx, userID)
}
