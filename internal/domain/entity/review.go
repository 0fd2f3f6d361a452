package entity

import (
	"time"
)

// Review is a 1-5 rating a user leaves on a listing, at most one per listing.
type Review struct {
	ID        string     `json:"id" db:"id"`
	ListingID string     `json:"listing_id" db:"listing_id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Rating    int        `json:"rating" db:"rating"`
	Comment   string     `json:"comment" db:"comment"`
	MediaURLs StringList `json:"media_urls" db:"media_urls"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// ReviewWithNames carries the listing title and reviewer name for display.
type ReviewWithNames struct {
	Review
	ListingTitle string `json:"listing_title" db:"listing_title"`
	Username     string `json:"username" db:"username"`
}

type RatingSummary struct {
	Average float64 `json:"average" db:"average"`
	Count   int     `json:"count" db:"count"`
}
