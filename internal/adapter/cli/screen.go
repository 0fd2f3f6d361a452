package cli

import (
	"strconv"
	"strings"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

type Screen int

const (
	ScreenMain Screen = iota
	ScreenHome
	ScreenAgency
	ScreenExplorer
	ScreenChat
	ScreenReviews
	ScreenExit
)

var screenNames = map[Screen]string{
	ScreenMain:     "Main",
	ScreenHome:     "Home",
	ScreenAgency:   "Agency",
	ScreenExplorer: "Explorer",
	ScreenChat:     "Chat",
	ScreenReviews:  "Reviews",
	ScreenExit:     "Exit",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "Screen(" + strconv.Itoa(int(s)) + ")"
}

type Action int

const (
	ActNone Action = iota

	ActRegister
	ActLogin
	ActLogout
	ActShowProfile
	ActSeeListings

	ActRegisterAgency
	ActCreateListing
	ActMyListings
	ActAddMedia
	ActSetListingStatus
	ActAgencyReviews
	ActAgencyDetails

	ActBrowse
	ActNextPage
	ActSetFilters
	ActClearFilters
	ActListingDetails
	ActSaveListing
	ActSavedListings

	ActNewConversation
	ActOpenConversation

	ActLeaveReview
	ActMyReviews
	ActListingReviews
)

// Session is everything the shell remembers between screens.
type Session struct {
	UserID    string
	Username  string
	IsAgent   bool
	HasAgency bool

	Filter  entity.ListingFilter
	Page    int
	Results []*entity.Listing

	Conversations []entity.ConversationSummary
	ChatOrigin    Screen
}

func (s Session) LoggedIn() bool {
	return s.UserID != ""
}

// Transition is the outcome of one menu choice. Action runs first; Next
// is entered only if it succeeds.
type Transition struct {
	Next    Screen
	Action  Action
	Index   int
	Invalid bool
}

type menuItem struct {
	Key    string
	Label  string
	Action Action
	Next   Screen
}

var menus = map[Screen][]menuItem{
	ScreenMain: {
		{"1", "Register", ActRegister, ScreenMain},
		{"2", "Login", ActLogin, ScreenHome},
		{"3", "Exit", ActNone, ScreenExit},
	},
	ScreenHome: {
		{"1", "Agency", ActNone, ScreenAgency},
		{"2", "See listings", ActSeeListings, ScreenHome},
		{"3", "Ratings and reviews", ActNone, ScreenReviews},
		{"4", "Explorer", ActNone, ScreenExplorer},
		{"5", "Chat", ActNone, ScreenChat},
		{"6", "My details", ActShowProfile, ScreenHome},
		{"7", "Logout", ActLogout, ScreenMain},
	},
	ScreenAgency: {
		{"1", "New listing", ActCreateListing, ScreenAgency},
		{"2", "My listings", ActMyListings, ScreenAgency},
		{"3", "Add media to a listing", ActAddMedia, ScreenAgency},
		{"4", "Change listing status", ActSetListingStatus, ScreenAgency},
		{"5", "Chat", ActNone, ScreenChat},
		{"6", "Reviews of my listings", ActAgencyReviews, ScreenAgency},
		{"7", "Agency details", ActAgencyDetails, ScreenAgency},
		{"8", "Back", ActNone, ScreenHome},
	},
	ScreenExplorer: {
		{"1", "Browse listings", ActBrowse, ScreenExplorer},
		{"2", "Next page", ActNextPage, ScreenExplorer},
		{"3", "Set filters", ActSetFilters, ScreenExplorer},
		{"4", "Clear filters", ActClearFilters, ScreenExplorer},
		{"5", "Listing details", ActListingDetails, ScreenExplorer},
		{"6", "Save a listing", ActSaveListing, ScreenExplorer},
		{"7", "Saved listings", ActSavedListings, ScreenExplorer},
		{"8", "Back", ActNone, ScreenHome},
	},
	ScreenReviews: {
		{"1", "Leave a review", ActLeaveReview, ScreenReviews},
		{"2", "My reviews", ActMyReviews, ScreenReviews},
		{"3", "Reviews for a listing", ActListingReviews, ScreenReviews},
		{"4", "Back", ActNone, ScreenHome},
	},
}

// Menu returns the options shown on screen for this session.
func Menu(screen Screen, s Session) []menuItem {
	items := menus[screen]
	if screen == ScreenHome {
		items = append([]menuItem(nil), items...)
		if s.HasAgency {
			items[0].Label = "Go to my agency"
		} else {
			items[0].Label = "Register an agency"
			items[0].Action = ActRegisterAgency
		}
	}
	return items
}

// Next maps a choice on screen to a transition. It has no side effects.
func Next(screen Screen, s Session, choice string) Transition {
	choice = strings.ToLower(strings.TrimSpace(choice))

	if screen == ScreenChat {
		return nextChat(s, choice)
	}

	for _, item := range Menu(screen, s) {
		if item.Key == choice {
			return Transition{Next: item.Next, Action: item.Action}
		}
	}
	return Transition{Next: screen, Invalid: true}
}

func nextChat(s Session, choice string) Transition {
	switch choice {
	case "n":
		return Transition{Next: ScreenChat, Action: ActNewConversation}
	case "q":
		origin := s.ChatOrigin
		if origin != ScreenAgency {
			origin = ScreenHome
		}
		return Transition{Next: origin}
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(s.Conversations) {
		return Transition{Next: ScreenChat, Invalid: true}
	}
	return Transition{Next: ScreenChat, Action: ActOpenConversation, Index: n - 1}
}
