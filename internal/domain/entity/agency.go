package entity

import "time"

// Agency is the business profile of an agent. A user owns at most one.
type Agency struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	Name            string    `json:"name" db:"name"`
	LicenseNumber   string    `json:"license_number" db:"license_number"`
	Bio             string    `json:"bio" db:"bio"`
	ProfileImageURL string    `json:"profile_image_url" db:"profile_image_url"`
	Verified        bool      `json:"verified" db:"verified"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
