package invitation

import (
	"fmt"
	"testing"
	"time"

	"amonarq/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory stand-in that mirrors the conditional-update
// semantics of the Mongo repository, including the single-winner claim.
type fakeUserRepo struct {
	users map[string]*models.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, fmt.Errorf("user with id %s: %w", id, mongo.ErrNoDocuments)
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, mongo.ErrNoDocuments)
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user with id %s: %w", user.ID, mongo.ErrNoDocuments)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user with id %s: %w", id, mongo.ErrNoDocuments)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) GetByInvitationToken(token string, now time.Time) (*models.User, error) {
	for _, u := range r.users {
		if u.InvitationToken == token && u.InvitationExpires != nil && u.InvitationExpires.After(now) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("invitation token: %w", mongo.ErrNoDocuments)
}

func (r *fakeUserRepo) ClaimInvitation(token, name, passwordHash string, now time.Time) (*models.User, error) {
	for _, u := range r.users {
		if u.InvitationToken != token || u.InvitationExpires == nil || !u.InvitationExpires.After(now) {
			continue
		}
		u.Name = name
		u.PasswordHash = passwordHash
		u.IsActive = true
		u.InvitationToken = ""
		u.InvitationExpires = nil
		clone := *u
		return &clone, nil
	}
	return nil, fmt.Errorf("invitation token: %w", mongo.ErrNoDocuments)
}

// fakeMailer records deliveries and can be told to fail.
type fakeMailer struct {
	invitations []string // tokens handed to SendInvitation
	fail        bool
}

func (m *fakeMailer) SendInvitation(email, token string) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.invitations = append(m.invitations, token)
	return nil
}

func (m *fakeMailer) SendContactNotification(to []string, name, email, subject, message string) error {
	return nil
}

func (m *fakeMailer) SendReply(to, subject, message string) error { return nil }
func (m *fakeMailer) SendTest(to string) error                    { return nil }

func TestSendCreatesPendingUser(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	svc := &DefaultInvitationService{Repo: repo, Mailer: mail}

	rec, err := svc.Send("New.Admin@Example.com ", "")
	require.NoError(t, err)

	// Email normalized, role defaulted, account pending and unusable.
	assert.Equal(t, "new.admin@example.com", rec.Email)
	assert.Equal(t, models.RoleAdmin, rec.Role)
	assert.False(t, rec.IsActive)
	assert.NotEmpty(t, rec.InvitationToken)
	require.NotNil(t, rec.InvitationExpires)
	assert.True(t, rec.InvitationExpires.After(time.Now().Add(47*time.Hour)))

	require.Len(t, mail.invitations, 1)
	assert.Equal(t, rec.InvitationToken, mail.invitations[0])
}

func TestSendRejectsActiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	require.NoError(t, repo.Create(&models.User{
		ID: "u1", Email: "admin@example.com", IsActive: true,
	}))
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{}}

	_, err := svc.Send("admin@example.com", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestSendReissueRevokesOldToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{}}

	first, err := svc.Send("pending@example.com", models.RoleAdmin)
	require.NoError(t, err)
	oldToken := first.InvitationToken

	second, err := svc.Send("pending@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, second.InvitationToken)
	// Same account, not a duplicate.
	assert.Equal(t, first.ID, second.ID)

	// The revoked token no longer verifies; the fresh one does.
	_, err = svc.Verify(oldToken)
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
	_, err = svc.Verify(second.InvitationToken)
	assert.NoError(t, err)
}

func TestSendReportsMailFailureAfterPersisting(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{fail: true}}

	_, err := svc.Send("pending@example.com", models.RoleAdmin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email delivery failed")

	// Token persisted anyway, so a resend can recover.
	stored, err := repo.GetByEmail("pending@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.InvitationToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	past := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(&models.User{
		ID: "u1", Email: "pending@example.com",
		InvitationToken: "tok", InvitationExpires: &past,
	}))
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{}}

	_, err := svc.Verify("tok")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)
}

func TestVerifyDoesNotConsumeToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{}}

	rec, err := svc.Send("pending@example.com", models.RoleAdmin)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.Verify(rec.InvitationToken)
		require.NoError(t, err)
	}
}

func TestCompleteActivatesAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{}}

	rec, err := svc.Send("pending@example.com", models.RoleAdmin)
	require.NoError(t, err)

	done, err := svc.Complete(rec.InvitationToken, "Ada", "s3cret-pass")
	require.NoError(t, err)

	assert.Equal(t, "Ada", done.Name)
	assert.True(t, done.IsActive)
	assert.Empty(t, done.InvitationToken)
	assert.Nil(t, done.InvitationExpires)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(done.PasswordHash), []byte("s3cret-pass")))
}

func TestCompleteConsumesTokenExactlyOnce(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{}}

	rec, err := svc.Send("pending@example.com", models.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Complete(rec.InvitationToken, "Ada", "s3cret-pass")
	require.NoError(t, err)

	// The replay observes the same error as an unknown token.
	_, err = svc.Complete(rec.InvitationToken, "Eve", "other-pass")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	// And the first completion's credentials stand.
	stored, err := repo.GetByEmail("pending@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)
}

func TestCompleteExpiredTokenDoesNotMutate(t *testing.T) {
	repo := newFakeUserRepo()
	past := time.Now().Add(-time.Minute)
	require.NoError(t, repo.Create(&models.User{
		ID: "u1", Name: "Pending", Email: "pending@example.com",
		InvitationToken: "tok", InvitationExpires: &past,
	}))
	svc := &DefaultInvitationService{Repo: repo, Mailer: &fakeMailer{}}

	_, err := svc.Complete("tok", "Ada", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidOrExpired)

	stored, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Pending", stored.Name)
	assert.False(t, stored.IsActive)
}
