package usecase

import (
	"context"
	"strings"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
	"github.com/Kipkoech854/Real-estate-management/pkg/validation"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	savedRepo   repository.SavedListingRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	savedRepo repository.SavedListingRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		savedRepo:   savedRepo,
	}
}

type CreateReviewInput struct {
	ListingID string   `label:"listing" validate:"required"`
	Rating    int      `label:"rating" validate:"min=1,max=5"`
	Comment   string   `label:"comment" validate:"max=2000"`
	MediaURLs []string `label:"media URL" validate:"max=10,dive,url"`
}

// Create records the reviewer's single review of a saved listing and
// returns the listing's updated rating.
func (uc *ReviewUseCase) Create(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, entity.RatingSummary, error) {
	input.Comment = strings.TrimSpace(input.Comment)
	if err := validation.Struct(input); err != nil {
		return nil, entity.RatingSummary{}, err
	}

	if _, err := uc.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return nil, entity.RatingSummary{}, err
	}

	saved, err := uc.savedRepo.IsSaved(ctx, reviewerID, input.ListingID)
	if err != nil {
		return nil, entity.RatingSummary{}, err
	}
	if !saved {
		return nil, entity.RatingSummary{}, errors.Forbidden("You can only review listings you have saved", nil)
	}

	exists, err := uc.reviewRepo.Exists(ctx, reviewerID, input.ListingID)
	if err != nil {
		return nil, entity.RatingSummary{}, err
	}
	if exists {
		return nil, entity.RatingSummary{}, errors.Conflict("You have already reviewed this listing", nil)
	}

	review := &entity.Review{
		ListingID: input.ListingID,
		UserID:    reviewerID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		MediaURLs: entity.StringList(input.MediaURLs),
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("CreateReview Error: user %s listing %s: %v", reviewerID, input.ListingID, err)
		return nil, entity.RatingSummary{}, err
	}

	summary, err := uc.reviewRepo.RatingSummary(ctx, input.ListingID)
	if err != nil {
		// The review is stored; only the summary is missing.
		logger.LogStorageError("listing", input.ListingID, "rating summary", err)
		return review, entity.RatingSummary{}, nil
	}

	return review, summary, nil
}

func (uc *ReviewUseCase) ListingRating(ctx context.Context, listingID string) (entity.RatingSummary, error) {
	return uc.reviewRepo.RatingSummary(ctx, listingID)
}

func (uc *ReviewUseCase) ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithNames, error) {
	return uc.reviewRepo.ListByUser(ctx, userID)
}

func (uc *ReviewUseCase) ListByListing(ctx context.Context, listingID string) ([]entity.ReviewWithNames, entity.RatingSummary, error) {
	reviews, err := uc.reviewRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, entity.RatingSummary{}, err
	}

	summary, err := uc.reviewRepo.RatingSummary(ctx, listingID)
	if err != nil {
		return nil, entity.RatingSummary{}, err
	}

	return reviews, summary, nil
}
