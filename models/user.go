package models

import "time"

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User represents an admin-panel user. Invitation state is embedded: a
// pending user carries a token and expiry and stays inactive until the
// invitation is completed.
type User struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Password     string `bson:"-" json:"password,omitempty"` // plain input only, never persisted
	PasswordHash string `bson:"passwordHash" json:"-"`
	Role         string `bson:"role" json:"role"`
	IsActive     bool   `bson:"isActive" json:"isActive"`

	// Invitation lifecycle. Both fields are cleared when the invitation is
	// completed; an expired-but-unconsumed token is simply inert.
	InvitationToken   string     `bson:"invitationToken,omitempty" json:"-"`
	InvitationExpires *time.Time `bson:"invitationExpires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
