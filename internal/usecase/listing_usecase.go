package usecase

import (
	"context"
	"strings"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
	"github.com/Kipkoech854/Real-estate-management/pkg/utils"
	"github.com/Kipkoech854/Real-estate-management/pkg/validation"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	mediaRepo   repository.MediaRepository
	agencyRepo  repository.AgencyRepository
	pageSize    int
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	mediaRepo repository.MediaRepository,
	agencyRepo repository.AgencyRepository,
	pageSize int,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		mediaRepo:   mediaRepo,
		agencyRepo:  agencyRepo,
		pageSize:    pageSize,
	}
}

type CreateListingInput struct {
	Title        string   `label:"title" validate:"required,max=200"`
	Description  string   `label:"description" validate:"max=5000"`
	Price        *float64 `label:"price" validate:"omitempty,gte=0"`
	PropertyType string   `label:"property type" validate:"required,oneof=house apartment land commercial"`
	Bedrooms     *int     `label:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms    *float64 `label:"bathrooms" validate:"omitempty,gte=0"`
	SquareFeet   *int     `label:"square feet" validate:"omitempty,gte=0"`
	Address      entity.Address
	Latitude     float64 `label:"latitude" validate:"latitude"`
	Longitude    float64 `label:"longitude" validate:"longitude"`
}

type AddMediaInput struct {
	ListingID string `label:"listing" validate:"required"`
	URL       string `label:"URL" validate:"required,url"`
	MediaType string `label:"media type" validate:"omitempty,oneof=image video virtual_tour"`
	Caption   string `label:"caption" validate:"max=300"`
}

// Create publishes a new active listing. Only users with an agency may list.
func (uc *ListingUseCase) Create(ctx context.Context, ownerID string, input CreateListingInput) (*entity.Listing, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.PropertyType = strings.ToLower(strings.TrimSpace(input.PropertyType))
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	has, err := uc.agencyRepo.ExistsByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, errors.Forbidden("Register an agency before creating listings", nil)
	}

	listing := &entity.Listing{
		UserID:       ownerID,
		Title:        input.Title,
		Description:  strings.TrimSpace(input.Description),
		Price:        input.Price,
		PropertyType: input.PropertyType,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		SquareFeet:   input.SquareFeet,
		Address:      input.Address,
		Location:     entity.Location{Lat: input.Latitude, Lng: input.Longitude},
		Status:       entity.ListingActive,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		logger.Error("CreateListing Error: owner %s: %v", ownerID, err)
		return nil, err
	}

	logger.Info("listing %s created by %s", listing.ID, ownerID)
	return listing, nil
}

func (uc *ListingUseCase) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByUser(ctx, ownerID)
}

// ListActive returns one page of active listings, newest first.
func (uc *ListingUseCase) ListActive(ctx context.Context, page int) ([]*entity.Listing, error) {
	return uc.Browse(ctx, entity.ListingFilter{}, page)
}

// Browse returns one page of active listings matching filter, newest first.
func (uc *ListingUseCase) Browse(ctx context.Context, filter entity.ListingFilter, page int) ([]*entity.Listing, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	p := utils.NewPaginationParams(page, uc.pageSize)
	listings, err := uc.listingRepo.Search(ctx, entity.ListingActive, filter, p.PageSize, p.Offset)
	if err != nil {
		logger.Error("BrowseListings Error: %v", err)
		return nil, err
	}
	return listings, nil
}

func (uc *ListingUseCase) Details(ctx context.Context, listingID string) (*entity.ListingDetails, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	media, err := uc.mediaRepo.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	return &entity.ListingDetails{Listing: listing, Media: media}, nil
}

func (uc *ListingUseCase) FindByTitle(ctx context.Context, title string) (*entity.Listing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.Validation("title is required", nil)
	}
	return uc.listingRepo.GetByTitle(ctx, title)
}

func (uc *ListingUseCase) SetStatus(ctx context.Context, ownerID, listingID, status string) error {
	if err := validation.Var("status", status, "oneof=active pending sold archived"); err != nil {
		return err
	}
	if _, err := uc.ownedListing(ctx, ownerID, listingID); err != nil {
		return err
	}
	return uc.listingRepo.UpdateStatus(ctx, listingID, status)
}

func (uc *ListingUseCase) AddMedia(ctx context.Context, ownerID string, input AddMediaInput) (*entity.Media, error) {
	input.URL = strings.TrimSpace(input.URL)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if _, err := uc.ownedListing(ctx, ownerID, input.ListingID); err != nil {
		return nil, err
	}

	media := &entity.Media{
		ListingID: input.ListingID,
		URL:       input.URL,
		MediaType: input.MediaType,
		Caption:   strings.TrimSpace(input.Caption),
	}
	if err := uc.mediaRepo.Create(ctx, media); err != nil {
		logger.Error("AddMedia Error: listing %s: %v", input.ListingID, err)
		return nil, err
	}
	return media, nil
}

func (uc *ListingUseCase) ownedListing(ctx context.Context, ownerID, listingID string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID != ownerID {
		return nil, errors.Forbidden("You can only change your own listings", nil)
	}
	return listing, nil
}

func validateFilter(f entity.ListingFilter) error {
	if f.PriceMin != nil && *f.PriceMin < 0 {
		return errors.Validation("minimum price must be at least 0", nil)
	}
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		return errors.Validation("minimum price cannot exceed maximum price", nil)
	}
	if f.PropertyType != "" {
		if err := validation.Var("property type", f.PropertyType, "oneof=house apartment land commercial"); err != nil {
			return err
		}
	}
	if f.MinBedrooms != nil && *f.MinBedrooms < 0 {
		return errors.Validation("bedrooms must be at least 0", nil)
	}
	if f.MinBathrooms != nil && *f.MinBathrooms < 0 {
		return errors.Validation("bathrooms must be at least 0", nil)
	}
	return nil
}
