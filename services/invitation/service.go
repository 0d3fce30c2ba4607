package invitation

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "amonarq/database/repository/user"
	"amonarq/models"
	"amonarq/services/mailer"
	"amonarq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Invitations expire 48 hours after issue.
const invitationTTL = 48 * time.Hour

var (
	// ErrUserExists signals an invitation for an email that already belongs
	// to an active user.
	ErrUserExists = errors.New("user with this email already exists")
	// ErrInvalidOrExpired signals a token that is unknown, consumed or past
	// its expiry. The three cases are deliberately indistinguishable.
	ErrInvalidOrExpired = errors.New("invalid or expired invitation token")
)

// InvitationService drives the invitation lifecycle:
// pending (token set) -> completed (token consumed) with expiry checked at
// verify/complete time. Re-issuing overwrites the previous token, revoking it.
type InvitationService interface {
	// Send issues a fresh token for the email and delivers it by mail.
	Send(email, role string) (*models.User, error)
	// Verify is a read-only validity check; it never mutates state.
	Verify(token string) (*models.User, error)
	// Complete consumes the token exactly once, setting name and password
	// and activating the account.
	Complete(token, name, password string) (*models.User, error)
}

// DefaultInvitationService is the production implementation.
type DefaultInvitationService struct {
	Repo   userRepo.UserRepository
	Mailer mailer.Mailer
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Send issues a fresh token. An existing inactive user for the email is
// reused with its token and expiry overwritten; the previous token becomes
// permanently unverifiable.
func (s *DefaultInvitationService) Send(email, role string) (*models.User, error) {
	logger := utils.GetLogger()
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = models.RoleAdmin
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil && existing.IsActive {
		return nil, ErrUserExists
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(invitationTTL)

	var rec *models.User
	if existing != nil {
		existing.InvitationToken = token
		existing.InvitationExpires = &expires
		existing.Role = role
		if err := s.Repo.Update(existing); err != nil {
			return nil, err
		}
		rec = existing
	} else {
		// Placeholder credentials until the invitation is completed; the
		// random password hash makes the pending account unusable for login.
		tempPassword, err := newToken()
		if err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
		}
		rec = &models.User{
			ID:                uuid.NewString(),
			Name:              "Pending",
			Email:             email,
			PasswordHash:      string(hash),
			Role:              role,
			IsActive:          false,
			InvitationToken:   token,
			InvitationExpires: &expires,
		}
		if err := s.Repo.Create(rec); err != nil {
			return nil, err
		}
	}

	if err := s.Mailer.SendInvitation(email, token); err != nil {
		// The token is already persisted; a resend recovers from this.
		logger.Error("Failed to send invitation email", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("invitation saved but email delivery failed: %w", err)
	}
	return rec, nil
}

// Verify checks token validity without mutating state. It may be called any
// number of times before completion.
func (s *DefaultInvitationService) Verify(token string) (*models.User, error) {
	rec, err := s.Repo.GetByInvitationToken(token, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidOrExpired
		}
		return nil, err
	}
	return rec, nil
}

// Complete consumes the token. The claim is a single conditional update that
// only matches while the token is still set and unexpired, so of two racing
// calls exactly one succeeds and the replay observes ErrInvalidOrExpired.
func (s *DefaultInvitationService) Complete(token, name, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	rec, err := s.Repo.ClaimInvitation(token, name, string(hash), time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidOrExpired
		}
		return nil, err
	}
	return rec, nil
}
