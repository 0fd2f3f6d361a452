package cli

import (
	"context"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/usecase"
)

var listingStatuses = []string{entity.ListingActive, entity.ListingPending, entity.ListingSold, entity.ListingArchived}

var mediaTypes = []string{entity.MediaImage, entity.MediaVideo, entity.MediaTour}

func (s *Shell) registerAgency(ctx context.Context) error {
	s.p.Println("You don't have an agency yet. Let's register one.")

	var input usecase.RegisterAgencyInput
	var err error
	if input.Name, err = s.p.AskRequired("Agency name"); err != nil {
		return err
	}
	if input.Bio, err = s.p.Ask("Bio (optional)"); err != nil {
		return err
	}
	if input.ProfileImageURL, err = s.p.Ask("Profile image URL (optional)"); err != nil {
		return err
	}

	agency, err := s.svc.Agencies.Register(ctx, s.session.UserID, input)
	if err != nil {
		return err
	}
	s.session.HasAgency = true
	s.p.Printf("Agency %q registered. License number: %s\n", agency.Name, agency.LicenseNumber)
	return nil
}

func (s *Shell) createListing(ctx context.Context) error {
	var input usecase.CreateListingInput
	var err error

	if input.Title, err = s.p.AskRequired("Title"); err != nil {
		return err
	}
	if input.Description, err = s.p.Ask("Description"); err != nil {
		return err
	}
	if input.Price, err = s.p.AskFloat("Price", true); err != nil {
		return err
	}
	if input.PropertyType, err = s.p.AskChoice("Property type", entity.PropertyTypes, ""); err != nil {
		return err
	}
	if input.Bedrooms, err = s.p.AskInt("Bedrooms (optional)", false); err != nil {
		return err
	}
	if input.Bathrooms, err = s.p.AskFloat("Bathrooms (optional)", false); err != nil {
		return err
	}
	if input.SquareFeet, err = s.p.AskInt("Square feet (optional)", false); err != nil {
		return err
	}
	if input.Address.Street, err = s.p.AskRequired("Street"); err != nil {
		return err
	}
	if input.Address.City, err = s.p.AskRequired("City"); err != nil {
		return err
	}
	if input.Address.County, err = s.p.AskRequired("County"); err != nil {
		return err
	}

	loc, err := s.askLocation()
	if err != nil {
		return err
	}
	input.Latitude, input.Longitude = loc.Lat, loc.Lng

	listing, err := s.svc.Listings.Create(ctx, s.session.UserID, input)
	if err != nil {
		return err
	}
	s.p.Printf("Listing %q created.\n", listing.Title)
	return nil
}

func (s *Shell) askLocation() (entity.Location, error) {
	for {
		answer, err := s.p.AskRequired("Location (lat,lng)")
		if err != nil {
			return entity.Location{}, err
		}
		loc, perr := entity.ParseLocation(answer)
		if perr == nil {
			return loc, nil
		}
		s.p.Printf("Invalid location: %v\n", perr)
	}
}

func (s *Shell) myListings(ctx context.Context) error {
	listings, err := s.svc.Listings.ListByOwner(ctx, s.session.UserID)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		s.p.Println("You have no listings yet.")
		return nil
	}
	s.p.printListings(listings)
	return nil
}

// pickOwnListing lists the user's listings and asks for one by number.
func (s *Shell) pickOwnListing(ctx context.Context) (*entity.Listing, error) {
	listings, err := s.svc.Listings.ListByOwner(ctx, s.session.UserID)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		s.p.Println("You have no listings yet.")
		return nil, errStay
	}
	s.p.printListings(listings)

	n, err := s.p.AskIntInRange("Listing number", 1, len(listings))
	if err != nil {
		return nil, err
	}
	return listings[n-1], nil
}

func (s *Shell) addMedia(ctx context.Context) error {
	listing, err := s.pickOwnListing(ctx)
	if err != nil {
		return err
	}

	input := usecase.AddMediaInput{ListingID: listing.ID}
	if input.URL, err = s.p.AskRequired("Media URL"); err != nil {
		return err
	}
	if input.MediaType, err = s.p.AskChoice("Media type", mediaTypes, entity.MediaImage); err != nil {
		return err
	}
	if input.Caption, err = s.p.Ask("Caption (optional)"); err != nil {
		return err
	}

	if _, err := s.svc.Listings.AddMedia(ctx, s.session.UserID, input); err != nil {
		return err
	}
	s.p.Printf("Media added to %q.\n", listing.Title)
	return nil
}

func (s *Shell) setListingStatus(ctx context.Context) error {
	listing, err := s.pickOwnListing(ctx)
	if err != nil {
		return err
	}
	status, err := s.p.AskChoice("New status", listingStatuses, "")
	if err != nil {
		return err
	}
	if err := s.svc.Listings.SetStatus(ctx, s.session.UserID, listing.ID, status); err != nil {
		return err
	}
	s.p.Printf("%q is now %s.\n", listing.Title, status)
	return nil
}

func (s *Shell) agencyReviews(ctx context.Context) error {
	listings, err := s.svc.Listings.ListByOwner(ctx, s.session.UserID)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		s.p.Println("You have no listings yet.")
		return nil
	}

	for _, l := range listings {
		reviews, summary, err := s.svc.Reviews.ListByListing(ctx, l.ID)
		if err != nil {
			return err
		}
		s.p.Printf("\n%s\n", l.Title)
		s.p.printRating(summary)
		s.p.printReviews(reviews)
	}
	return nil
}

func (s *Shell) agencyDetails(ctx context.Context) error {
	agency, err := s.svc.Agencies.Details(ctx, s.session.UserID)
	if err != nil {
		return err
	}

	verified := "no"
	if agency.Verified {
		verified = "yes"
	}
	s.p.Printf("Name:           %s\n", agency.Name)
	s.p.Printf("License number: %s\n", agency.LicenseNumber)
	if agency.Bio != "" {
		s.p.Printf("Bio:            %s\n", agency.Bio)
	}
	if agency.ProfileImageURL != "" {
		s.p.Printf("Profile image:  %s\n", agency.ProfileImageURL)
	}
	s.p.Printf("Verified:       %s\n", verified)
	s.p.Printf("Registered:     %s\n", agency.CreatedAt.Format(dateLayout))
	return nil
}
