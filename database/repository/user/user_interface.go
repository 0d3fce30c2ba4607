package userRepo

import (
	"time"

	"amonarq/models"
)

// UserRepository defines methods for admin user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users sorted by creation time, newest first.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// Count returns the total number of user records.
	Count() (int64, error)
	// GetByInvitationToken retrieves the user holding a still-valid
	// invitation token, or mongo.ErrNoDocuments if none matches.
	GetByInvitationToken(token string, now time.Time) (*models.User, error)
	// ClaimInvitation atomically completes an invitation: it matches the
	// token only while it is still set and unexpired, writes name and
	// password hash, activates the user and clears the token in one step.
	// Only one of two racing calls can match.
	ClaimInvitation(token, name, passwordHash string, now time.Time) (*models.User, error)
}
