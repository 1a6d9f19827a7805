package entity

import (
	"time"
)

// Account represents a registered user account in the system
type Account struct {
	ID           int64     `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Surname      string    `bson:"surname" json:"surname"`
	Email        string    `bson:"email" json:"email"`
	Username     string    `bson:"username" json:"username"`
	Locale       string    `bson:"locale,omitempty" json:"locale,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ProfileFields is the full mutable field set persisted by a profile update.
// PasswordHash holds the resolved credential, either the fresh hash or the
// one already stored.
type ProfileFields struct {
	Name         string
	Surname      string
	Email        string
	Username     string
	Locale       string
	PasswordHash string
}
