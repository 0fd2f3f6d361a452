package cli

import (
	"context"
	"iter"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/usecase"
)

type AuthService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, error)
}

type UserService interface {
	Profile(ctx context.Context, userID string) (*entity.User, error)
}

type AgencyService interface {
	Register(ctx context.Context, userID string, input usecase.RegisterAgencyInput) (*entity.Agency, error)
	HasAgency(ctx context.Context, userID string) (bool, error)
	Details(ctx context.Context, userID string) (*entity.Agency, error)
}

type ListingService interface {
	Create(ctx context.Context, ownerID string, input usecase.CreateListingInput) (*entity.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error)
	ListActive(ctx context.Context, page int) ([]*entity.Listing, error)
	Browse(ctx context.Context, filter entity.ListingFilter, page int) ([]*entity.Listing, error)
	Details(ctx context.Context, listingID string) (*entity.ListingDetails, error)
	FindByTitle(ctx context.Context, title string) (*entity.Listing, error)
	SetStatus(ctx context.Context, ownerID, listingID, status string) error
	AddMedia(ctx context.Context, ownerID string, input usecase.AddMediaInput) (*entity.Media, error)
}

type SavedListingService interface {
	Save(ctx context.Context, userID, listingID, notes string) (*entity.SavedListing, error)
	SaveByTitle(ctx context.Context, userID, title, notes string) (*entity.SavedListing, error)
	List(ctx context.Context, userID string) ([]entity.SavedListingWithListing, error)
}

type ReviewService interface {
	Create(ctx context.Context, reviewerID string, input usecase.CreateReviewInput) (*entity.Review, entity.RatingSummary, error)
	ListByUser(ctx context.Context, userID string) ([]entity.ReviewWithNames, error)
	ListByListing(ctx context.Context, listingID string) ([]entity.ReviewWithNames, entity.RatingSummary, error)
}

type ConversationService interface {
	ListConversations(ctx context.Context, userID string) ([]entity.ConversationSummary, error)
	GetOrCreateConversation(ctx context.Context, userID, username string) (string, error)
	SendMessage(ctx context.Context, input usecase.SendMessageInput) (string, error)
	Messages(ctx context.Context, conversationID string) iter.Seq2[entity.ChatLine, error]
}

// Services bundles the use cases the shell drives.
type Services struct {
	Auth     AuthService
	Users    UserService
	Agencies AgencyService
	Listings ListingService
	Saved    SavedListingService
	Reviews  ReviewService
	Chat     ConversationService
}
