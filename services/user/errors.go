package user

import "errors"

var (
	// ErrInvalidCredentials signals a failed login; the reason (unknown
	// email vs wrong password) is deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken signals a duplicate email on create or update.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrSetupComplete signals a setup attempt after the first user exists.
	ErrSetupComplete = errors.New("setup already completed")
	// ErrSelfDelete signals an attempt to delete one's own account.
	ErrSelfDelete = errors.New("you cannot delete your own account")
	// ErrUserNotFound signals a lookup miss.
	ErrUserNotFound = errors.New("user not found")
)
