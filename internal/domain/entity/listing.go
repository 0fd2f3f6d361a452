package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	PropertyHouse      = "house"
	PropertyApartment  = "apartment"
	PropertyLand       = "land"
	PropertyCommercial = "commercial"

	ListingActive   = "active"
	ListingPending  = "pending"
	ListingSold     = "sold"
	ListingArchived = "archived"
)

var PropertyTypes = []string{PropertyHouse, PropertyApartment, PropertyLand, PropertyCommercial}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	County string `json:"county"`
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(src interface{}) error {
	return scanJSON(src, a)
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s", a.Street, a.City, a.County)
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func (l Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", l.Lat, l.Lng)
}

// ParseLocation reads a "lat,lng" pair. Range checks are left to callers.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("location must look like \"lat,lng\"")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("longitude: %w", err)
	}
	return Location{Lat: lat, Lng: lng}, nil
}

type Listing struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Price        *float64  `json:"price,omitempty" db:"price"`
	PropertyType string    `json:"property_type" db:"property_type"`
	Bedrooms     *int      `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms    *float64  `json:"bathrooms,omitempty" db:"bathrooms"`
	SquareFeet   *int      `json:"square_feet,omitempty" db:"square_feet"`
	Address      Address   `json:"address" db:"address"`
	Location     Location  `json:"location" db:"location"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ListingFilter narrows a browse query. Nil fields are ignored.
type ListingFilter struct {
	PriceMin     *float64
	PriceMax     *float64
	PropertyType string
	MinBedrooms  *int
	MinBathrooms *float64
}

type ListingDetails struct {
	Listing *Listing `json:"listing"`
	Media   []*Media `json:"media"`
}
