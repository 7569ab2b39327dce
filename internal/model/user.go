package model

import (
	"time"
)

// User mirrors an account in the external identity provider. Records are
// created from "user.created" webhook events and keyed by the provider's id.
type User struct {
	ID          string    `db:"id" json:"id"`
	ClerkUserID string    `db:"clerk_user_id" json:"clerkUserId"`
	FirstName   *string   `db:"first_name" json:"firstName"` // Nullable: provider may omit
	LastName    *string   `db:"last_name" json:"lastName"`
	Email       string    `db:"email" json:"email"`
	ProfileURL  *string   `db:"profile_url" json:"profileUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
