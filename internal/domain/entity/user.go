package entity

import (
	"time"
)

type User struct {
	ID           string     `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        *string    `json:"email,omitempty" db:"email"`
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	PasswordHash string     `json:"-" db:"password_hash"`
	IsAgent      bool       `json:"is_agent" db:"is_agent"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastActive   *time.Time `json:"last_active,omitempty" db:"last_active"`
}
