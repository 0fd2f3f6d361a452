package cli

import (
	"context"
	"strings"

	"github.com/Kipkoech854/Real-estate-management/internal/usecase"
)

// leaveReview reviews one of the user's saved listings.
func (s *Shell) leaveReview(ctx context.Context) error {
	saved, err := s.svc.Saved.List(ctx, s.session.UserID)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		s.p.Println("Save a listing before reviewing it.")
		return errStay
	}
	s.p.printSaved(saved)

	n, err := s.p.AskIntInRange("Listing number", 1, len(saved))
	if err != nil {
		return err
	}
	chosen := saved[n-1]

	input := usecase.CreateReviewInput{ListingID: chosen.ListingID}
	if input.Rating, err = s.p.AskIntInRange("Rating (1-5)", 1, 5); err != nil {
		return err
	}
	if input.Comment, err = s.p.Ask("Comment (optional)"); err != nil {
		return err
	}
	if input.MediaURLs, err = s.p.AskList("Media URLs, comma separated (optional)"); err != nil {
		return err
	}

	s.p.Printf("\n%s %s\n", stars(input.Rating), chosen.Title)
	if input.Comment != "" {
		s.p.Println(input.Comment)
	}
	if len(input.MediaURLs) > 0 {
		s.p.Printf("Media: %s\n", strings.Join(input.MediaURLs, ", "))
	}
	ok, err := s.p.Confirm("Submit this review?")
	if err != nil {
		return err
	}
	if !ok {
		s.p.Println("Review discarded.")
		return errStay
	}

	_, summary, err := s.svc.Reviews.Create(ctx, s.session.UserID, input)
	if err != nil {
		return err
	}
	s.p.Printf("Thanks! %q is now rated %.1f from %d review(s).\n", chosen.Title, summary.Average, summary.Count)
	return nil
}

func (s *Shell) myReviews(ctx context.Context) error {
	reviews, err := s.svc.Reviews.ListByUser(ctx, s.session.UserID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		s.p.Println("You haven't reviewed anything yet.")
		return nil
	}
	s.p.printReviews(reviews)
	return nil
}

func (s *Shell) listingReviews(ctx context.Context) error {
	title, err := s.p.AskRequired("Listing title")
	if err != nil {
		return err
	}
	listing, err := s.svc.Listings.FindByTitle(ctx, title)
	if err != nil {
		return err
	}
	reviews, summary, err := s.svc.Reviews.ListByListing(ctx, listing.ID)
	if err != nil {
		return err
	}

	s.p.Printf("\n%s\n", listing.Title)
	s.p.printRating(summary)
	s.p.printReviews(reviews)
	return nil
}
