package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"amonarq/models"
	"amonarq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Authenticate verifies credentials and returns a signed bearer token
// carrying the user's id and role.
func (s *DefaultUserService) Authenticate(email, password string) (string, error) {
	rec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(rec.ID, rec.Role, tokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// NeedsSetup reports whether no user exists yet.
func (s *DefaultUserService) NeedsSetup() (bool, error) {
	count, err := s.Repo.Count()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// SetupSuperAdmin creates the first superadmin account.
func (s *DefaultUserService) SetupSuperAdmin(name, email, password string) (*models.User, error) {
	count, err := s.Repo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSetupComplete
	}
	return s.createUser(name, email, password, models.RoleSuperAdmin)
}

// GetUserByID retrieves a user by id.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return rec, nil
}

// GetAllUsers retrieves all users, newest first.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// CountUsers returns the number of user records.
func (s *DefaultUserService) CountUsers() (int64, error) {
	return s.Repo.Count()
}

// CreateUser creates an active user with the given role.
func (s *DefaultUserService) CreateUser(name, email, password, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.Repo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if role == "" {
		role = models.RoleAdmin
	}
	return s.createUser(name, email, password, role)
}

func (s *DefaultUserService) createUser(name, email, password, role string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	rec := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateUser applies the non-empty fields to an existing user.
func (s *DefaultUserService) UpdateUser(id string, update UpdateUserRequest) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != "" {
		rec.Name = update.Name
	}
	if update.Email != "" {
		email := strings.ToLower(strings.TrimSpace(update.Email))
		if email != rec.Email {
			if _, err := s.Repo.GetByEmail(email); err == nil {
				return nil, ErrEmailTaken
			} else if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			rec.Email = email
		}
	}
	if update.Role != "" {
		rec.Role = update.Role
	}
	if update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		rec.PasswordHash = string(hash)
	}

	if err := s.Repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteUser removes a user. Deleting your own account is rejected.
func (s *DefaultUserService) DeleteUser(id, callerID string) error {
	if id == callerID {
		return ErrSelfDelete
	}
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}
	return s.Repo.Delete(rec.ID)
}
