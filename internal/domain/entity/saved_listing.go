package entity

import (
	"time"
)

type SavedListing struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	ListingID string    `json:"listing_id" db:"listing_id"`
	Notes     string    `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type SavedListingWithListing struct {
	SavedListing
	Title        string   `json:"title" db:"title"`
	Price        *float64 `json:"price,omitempty" db:"price"`
	PropertyType string   `json:"property_type" db:"property_type"`
}
