package cli

import (
	"context"

	"github.com/Kipkoech854/Real-estate-management/internal/usecase"
)

func (s *Shell) register(ctx context.Context) error {
	var input usecase.RegisterInput
	var err error

	if input.Username, err = s.p.AskRequired("Username"); err != nil {
		return err
	}
	if input.Email, err = s.p.Ask("Email (optional)"); err != nil {
		return err
	}
	if input.Phone, err = s.p.Ask("Phone (optional)"); err != nil {
		return err
	}
	if input.Password, err = s.p.AskPassword("Password"); err != nil {
		return err
	}
	if input.ConfirmPassword, err = s.p.AskPassword("Confirm password"); err != nil {
		return err
	}
	if input.IsAgent, err = s.p.Confirm("Are you a real estate agent?"); err != nil {
		return err
	}

	user, err := s.svc.Auth.Register(ctx, input)
	if err != nil {
		return err
	}
	s.p.Printf("Registration successful. You can now log in as %s.\n", user.Username)
	return nil
}

func (s *Shell) login(ctx context.Context) error {
	username, err := s.p.AskRequired("Username")
	if err != nil {
		return err
	}
	password, err := s.p.AskPassword("Password")
	if err != nil {
		return err
	}

	user, err := s.svc.Auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	hasAgency, err := s.svc.Agencies.HasAgency(ctx, user.ID)
	if err != nil {
		return err
	}

	s.session = Session{
		UserID:    user.ID,
		Username:  user.Username,
		IsAgent:   user.IsAgent,
		HasAgency: hasAgency,
	}
	s.p.Printf("Welcome, %s!\n", user.Username)
	return nil
}

func (s *Shell) logout() error {
	ok, err := s.p.Confirm("Log out?")
	if err != nil {
		return err
	}
	if !ok {
		return errStay
	}
	s.session = Session{}
	s.p.Println("Logged out.")
	return nil
}

func (s *Shell) showProfile(ctx context.Context) error {
	user, err := s.svc.Users.Profile(ctx, s.session.UserID)
	if err != nil {
		return err
	}

	role := "buyer"
	if user.IsAgent {
		role = "agent"
	}
	s.p.Printf("Username:     %s\n", user.Username)
	s.p.Printf("Email:        %s\n", formatOptional(user.Email))
	s.p.Printf("Phone:        %s\n", formatOptional(user.Phone))
	s.p.Printf("Role:         %s\n", role)
	s.p.Printf("Member since: %s\n", user.CreatedAt.Format(dateLayout))
	s.p.Printf("Last active:  %s\n", formatTime(user.LastActive, messageLayout))
	return nil
}

// seeListings shows the first page of active listings and offers to save
// one by title.
func (s *Shell) seeListings(ctx context.Context) error {
	listings, err := s.svc.Listings.ListActive(ctx, 1)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		s.p.Println("No active listings.")
		return nil
	}
	s.p.printListings(listings)

	title, err := s.p.Ask("Save a listing by title (blank to skip)")
	if err != nil || title == "" {
		return err
	}
	notes, err := s.p.Ask("Notes (optional)")
	if err != nil {
		return err
	}
	if _, err := s.svc.Saved.SaveByTitle(ctx, s.session.UserID, title, notes); err != nil {
		return err
	}
	s.p.Printf("Saved %q.\n", title)
	return nil
}
