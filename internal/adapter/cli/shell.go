package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
)

// errStay ends an action without a message and keeps the current screen.
var errStay = errors.New("stay on screen")

// Shell runs the interactive menus until the user exits or input ends.
type Shell struct {
	p       *Prompter
	svc     Services
	screen  Screen
	session Session
}

func NewShell(p *Prompter, svc Services) *Shell {
	return &Shell{
		p:      p,
		svc:    svc,
		screen: ScreenMain,
	}
}

func (s *Shell) Session() Session {
	return s.session
}

func (s *Shell) Screen() Screen {
	return s.screen
}

// Run returns ctx.Err() once ctx is cancelled, checked between menu choices.
func (s *Shell) Run(ctx context.Context) error {
	s.p.Println("Welcome to the real estate app.")

	for s.screen != ScreenExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.render(ctx); err != nil {
			s.report(err)
			s.screen = s.chatOrigin()
			continue
		}

		choice, err := s.p.Ask("Choose an option")
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		t := Next(s.screen, s.session, choice)
		if t.Invalid {
			s.p.Println("Invalid choice, please try again.")
			continue
		}

		if err := s.perform(ctx, t); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			continue
		}
		s.enter(t.Next)
	}

	s.p.Println("Goodbye!")
	return nil
}

func (s *Shell) enter(next Screen) {
	if next == ScreenChat && s.screen != ScreenChat {
		s.session.ChatOrigin = s.screen
	}
	s.screen = next
}

func (s *Shell) chatOrigin() Screen {
	if s.session.ChatOrigin == ScreenAgency {
		return ScreenAgency
	}
	return ScreenHome
}

// perform runs t.Action. Validation errors offer a retry; any other error
// is reported and the screen stays put.
func (s *Shell) perform(ctx context.Context, t Transition) error {
	for {
		err := s.dispatch(ctx, t)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, errStay), errors.Is(err, io.EOF):
			return err
		case apperrors.Is(err, apperrors.CodeValidation):
			s.p.Println(apperrors.Message(err))
			again, cerr := s.p.Confirm("Try again?")
			if cerr != nil {
				return cerr
			}
			if again {
				continue
			}
			return err
		default:
			s.report(err)
			return err
		}
	}
}

func (s *Shell) report(err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error("Unexpected CLI error on %s: %v", s.screen, err)
		s.p.Println("Error: something went wrong, please try again.")
		return
	}

	switch appErr.Code {
	case apperrors.CodeStorageUnavailable, apperrors.CodeInternal:
		logger.Error("%s action failed: %v", s.screen, err)
	}
	s.p.Printf("Error: %s\n", appErr.Message)
}

func (s *Shell) dispatch(ctx context.Context, t Transition) error {
	switch t.Action {
	case ActNone:
		return nil

	case ActRegister:
		return s.register(ctx)
	case ActLogin:
		return s.login(ctx)
	case ActLogout:
		return s.logout()
	case ActShowProfile:
		return s.showProfile(ctx)
	case ActSeeListings:
		return s.seeListings(ctx)

	case ActRegisterAgency:
		return s.registerAgency(ctx)
	case ActCreateListing:
		return s.createListing(ctx)
	case ActMyListings:
		return s.myListings(ctx)
	case ActAddMedia:
		return s.addMedia(ctx)
	case ActSetListingStatus:
		return s.setListingStatus(ctx)
	case ActAgencyReviews:
		return s.agencyReviews(ctx)
	case ActAgencyDetails:
		return s.agencyDetails(ctx)

	case ActBrowse:
		return s.browse(ctx, s.session.Filter, 1)
	case ActNextPage:
		return s.nextPage(ctx)
	case ActSetFilters:
		return s.setFilters(ctx)
	case ActClearFilters:
		return s.clearFilters()
	case ActListingDetails:
		return s.listingDetails(ctx)
	case ActSaveListing:
		return s.saveListing(ctx)
	case ActSavedListings:
		return s.savedListings(ctx)

	case ActNewConversation:
		return s.newConversation(ctx)
	case ActOpenConversation:
		return s.openConversation(ctx, t.Index)

	case ActLeaveReview:
		return s.leaveReview(ctx)
	case ActMyReviews:
		return s.myReviews(ctx)
	case ActListingReviews:
		return s.listingReviews(ctx)
	}
	return fmt.Errorf("cli: unhandled action %d", t.Action)
}

func (s *Shell) render(ctx context.Context) error {
	if s.screen == ScreenChat {
		return s.renderChat(ctx)
	}

	s.p.Println()
	if s.session.LoggedIn() {
		s.p.Printf("=== %s (%s) ===\n", s.screen, s.session.Username)
	} else {
		s.p.Printf("=== %s ===\n", s.screen)
	}
	for _, item := range Menu(s.screen, s.session) {
		s.p.Printf("%s. %s\n", item.Key, item.Label)
	}
	return nil
}
