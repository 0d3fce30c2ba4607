package user

import (
	"fmt"
	"testing"
	"time"

	"amonarq/models"
	"amonarq/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*models.User
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
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) ClaimInvitation(token, name, passwordHash string, now time.Time) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func seedUser(t *testing.T, repo *fakeUserRepo, id, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.User{
		ID: id, Email: email, PasswordHash: string(hash), Role: role, IsActive: true,
	}))
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "admin@example.com", "correct-horse", models.RoleAdmin)
	svc := &DefaultUserService{Repo: repo}

	token, err := svc.Authenticate("  Admin@Example.com ", "correct-horse")
	require.NoError(t, err)

	userID, role, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "admin@example.com", "correct-horse", models.RoleAdmin)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Authenticate("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	// Unknown email and wrong password are indistinguishable.
	_, err := svc.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetupSuperAdminOnce(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	needs, err := svc.NeedsSetup()
	require.NoError(t, err)
	assert.True(t, needs)

	first, err := svc.SetupSuperAdmin("Root", "root@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, first.Role)
	assert.True(t, first.IsActive)

	needs, err = svc.NeedsSetup()
	require.NoError(t, err)
	assert.False(t, needs)

	_, err = svc.SetupSuperAdmin("Mallory", "mallory@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrSetupComplete)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "admin@example.com", "pw", models.RoleAdmin)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.CreateUser("Dup", "ADMIN@example.com", "pw2", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateUserDefaultsRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	rec, err := svc.CreateUser("Alice", "Alice@Example.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, rec.Role)
	assert.Equal(t, "alice@example.com", rec.Email)
	assert.NotEmpty(t, rec.ID)
}

func TestUpdateUserPartialFields(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "admin@example.com", "old-pw", models.RoleAdmin)
	svc := &DefaultUserService{Repo: repo}

	rec, err := svc.UpdateUser("u1", UpdateUserRequest{Name: "Renamed", Password: "new-pw"})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", rec.Name)
	// Untouched fields survive.
	assert.Equal(t, "admin@example.com", rec.Email)
	assert.Equal(t, models.RoleAdmin, rec.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte("new-pw")))
}

func TestUpdateUserEmailConflict(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "one@example.com", "pw", models.RoleAdmin)
	seedUser(t, repo, "u2", "two@example.com", "pw", models.RoleAdmin)
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.UpdateUser("u1", UpdateUserRequest{Email: "two@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Re-submitting your own email is not a conflict.
	_, err = svc.UpdateUser("u1", UpdateUserRequest{Email: "one@example.com"})
	assert.NoError(t, err)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.UpdateUser("missing", UpdateUserRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "admin@example.com", "pw", models.RoleSuperAdmin)
	svc := &DefaultUserService{Repo: repo}

	assert.ErrorIs(t, svc.DeleteUser("u1", "u1"), ErrSelfDelete)

	// Still present.
	_, err := svc.GetUserByID("u1")
	assert.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "one@example.com", "pw", models.RoleSuperAdmin)
	seedUser(t, repo, "u2", "two@example.com", "pw", models.RoleAdmin)
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.DeleteUser("u2", "u1"))

	_, err := svc.GetUserByID("u2")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser("u2", "u1"), ErrUserNotFound)
}
