package cli

import (
	"context"
	"strconv"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

const anyType = "any"

// browse fetches one page for filter. The session keeps the filter only
// when the query succeeds.
func (s *Shell) browse(ctx context.Context, filter entity.ListingFilter, page int) error {
	listings, err := s.svc.Listings.Browse(ctx, filter, page)
	if err != nil {
		return err
	}

	s.session.Filter = filter
	s.session.Page = page
	s.session.Results = listings

	if len(listings) == 0 {
		s.p.Println("No listings match your filters.")
		return nil
	}
	s.p.Printf("Page %d\n", page)
	s.p.printListings(listings)
	return nil
}

func (s *Shell) nextPage(ctx context.Context) error {
	if s.session.Page == 0 {
		return s.browse(ctx, s.session.Filter, 1)
	}

	listings, err := s.svc.Listings.Browse(ctx, s.session.Filter, s.session.Page+1)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		s.p.Println("No more listings.")
		return nil
	}

	s.session.Page++
	s.session.Results = listings
	s.p.Printf("Page %d\n", s.session.Page)
	s.p.printListings(listings)
	return nil
}

func (s *Shell) setFilters(ctx context.Context) error {
	var f entity.ListingFilter
	var err error

	s.p.Println("Leave a field blank to skip it.")
	if f.PriceMin, err = s.p.AskFloat("Minimum price", false); err != nil {
		return err
	}
	if f.PriceMax, err = s.p.AskFloat("Maximum price", false); err != nil {
		return err
	}
	types := append([]string{anyType}, entity.PropertyTypes...)
	if f.PropertyType, err = s.p.AskChoice("Property type", types, anyType); err != nil {
		return err
	}
	if f.PropertyType == anyType {
		f.PropertyType = ""
	}
	if f.MinBedrooms, err = s.p.AskInt("Minimum bedrooms", false); err != nil {
		return err
	}
	if f.MinBathrooms, err = s.p.AskFloat("Minimum bathrooms", false); err != nil {
		return err
	}

	return s.browse(ctx, f, 1)
}

func (s *Shell) clearFilters() error {
	s.session.Filter = entity.ListingFilter{}
	s.session.Page = 0
	s.session.Results = nil
	s.p.Println("Filters cleared.")
	return nil
}

func (s *Shell) listingDetails(ctx context.Context) error {
	if len(s.session.Results) == 0 {
		s.p.Println("Browse listings first.")
		return errStay
	}

	n, err := s.p.AskIntInRange("Listing number", 1, len(s.session.Results))
	if err != nil {
		return err
	}
	details, err := s.svc.Listings.Details(ctx, s.session.Results[n-1].ID)
	if err != nil {
		return err
	}
	s.p.printListingDetails(details)
	return nil
}

// saveListing accepts a number from the current page or a title.
func (s *Shell) saveListing(ctx context.Context) error {
	answer, err := s.p.AskRequired("Listing number or title")
	if err != nil {
		return err
	}
	notes, err := s.p.Ask("Notes (optional)")
	if err != nil {
		return err
	}

	title := answer
	if n, perr := strconv.Atoi(answer); perr == nil && n >= 1 && n <= len(s.session.Results) {
		listing := s.session.Results[n-1]
		title = listing.Title
		_, err = s.svc.Saved.Save(ctx, s.session.UserID, listing.ID, notes)
	} else {
		_, err = s.svc.Saved.SaveByTitle(ctx, s.session.UserID, answer, notes)
	}
	if err != nil {
		return err
	}
	s.p.Printf("Saved %q.\n", title)
	return nil
}

func (s *Shell) savedListings(ctx context.Context) error {
	saved, err := s.svc.Saved.List(ctx, s.session.UserID)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		s.p.Println("You have no saved listings.")
		return nil
	}
	s.p.printSaved(saved)
	return nil
}
