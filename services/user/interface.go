package user

import (
	userRepo "amonarq/database/repository/user"
	"amonarq/models"
)

// UserService defines business logic for admin user management and auth.
type UserService interface {
	// Authenticate verifies credentials and returns a signed bearer token.
	Authenticate(email, password string) (string, error)
	// NeedsSetup reports whether no user exists yet.
	NeedsSetup() (bool, error)
	// SetupSuperAdmin creates the first superadmin account. Fails once any
	// user exists.
	SetupSuperAdmin(name, email, password string) (*models.User, error)
	// GetUserByID retrieves a user by id.
	GetUserByID(id string) (*models.User, error)
	// GetAllUsers retrieves all users, newest first.
	GetAllUsers() ([]models.User, error)
	// CreateUser creates an active user with the given role (default admin).
	CreateUser(name, email, password, role string) (*models.User, error)
	// UpdateUser applies the non-empty fields to an existing user.
	UpdateUser(id string, update UpdateUserRequest) (*models.User, error)
	// DeleteUser removes a user. A caller can never delete their own account.
	DeleteUser(id, callerID string) error
	// CountUsers returns the number of user records.
	CountUsers() (int64, error)
}

// UpdateUserRequest carries the optional fields of a user update; empty
// fields are left untouched. A non-empty password is re-hashed.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
