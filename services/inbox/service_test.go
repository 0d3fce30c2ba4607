package inbox

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"amonarq/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeInboxRepo struct {
	messages map[string]*models.ContactMessage
}

func newFakeInboxRepo() *fakeInboxRepo {
	return &fakeInboxRepo{messages: make(map[string]*models.ContactMessage)}
}

func (r *fakeInboxRepo) Create(msg *models.ContactMessage) error {
	msg.CreatedAt = time.Now()
	clone := *msg
	r.messages[msg.ID] = &clone
	return nil
}

func (r *fakeInboxRepo) GetAll() ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeInboxRepo) GetByID(id string) (*models.ContactMessage, error) {
	if m, ok := r.messages[id]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, fmt.Errorf("message with id %s: %w", id, mongo.ErrNoDocuments)
}

func (r *fakeInboxRepo) MarkRead(id string) (*models.ContactMessage, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("message with id %s: %w", id, mongo.ErrNoDocuments)
	}
	m.IsRead = true
	clone := *m
	return &clone, nil
}

func (r *fakeInboxRepo) MarkReplied(id string) error {
	m, ok := r.messages[id]
	if !ok {
		return fmt.Errorf("message with id %s: %w", id, mongo.ErrNoDocuments)
	}
	m.IsReplied = true
	return nil
}

func (r *fakeInboxRepo) Delete(id string) error {
	if _, ok := r.messages[id]; !ok {
		return fmt.Errorf("message with id %s: %w", id, mongo.ErrNoDocuments)
	}
	delete(r.messages, id)
	return nil
}

func (r *fakeInboxRepo) Count() (int64, error) {
	return int64(len(r.messages)), nil
}

func (r *fakeInboxRepo) CountUnread() (int64, error) {
	var n int64
	for _, m := range r.messages {
		if !m.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeSettingsRepo struct {
	settings *models.Settings
}

func (r *fakeSettingsRepo) Get() (*models.Settings, error) {
	if r.settings == nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(settings *models.Settings) error {
	r.settings = settings
	return nil
}

type fakeMailer struct {
	notifications [][]string // recipient lists per notification
	replies       []string   // recipient per reply
	fail          bool
}

func (m *fakeMailer) SendInvitation(email, token string) error { return nil }

func (m *fakeMailer) SendContactNotification(to []string, name, email, subject, message string) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.notifications = append(m.notifications, to)
	return nil
}

func (m *fakeMailer) SendReply(to, subject, message string) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.replies = append(m.replies, to)
	return nil
}

func (m *fakeMailer) SendTest(to string) error { return nil }

func newService(settings *models.Settings, mail *fakeMailer) (*DefaultInboxService, *fakeInboxRepo) {
	repo := newFakeInboxRepo()
	svc := &DefaultInboxService{
		Repo:     repo,
		Settings: &fakeSettingsRepo{settings: settings},
		Mailer:   mail,
	}
	return svc, repo
}

func TestSubmitValidation(t *testing.T) {
	svc, repo := newService(nil, &fakeMailer{})

	cases := []struct {
		label                         string
		name, email, subject, message string
	}{
		{"short name", "A", "a@b.com", "Hello", "A question"},
		{"whitespace name", "  x ", "a@b.com", "Hello", "A question"},
		{"bad email", "Alice", "not-an-email", "Hello", "A question"},
		{"email without tld", "Alice", "a@b", "Hello", "A question"},
		{"short subject", "Alice", "a@b.com", "H", "A question"},
		{"short message", "Alice", "a@b.com", "Hello", "x"},
	}
	for _, tc := range cases {
		_, err := svc.Submit(tc.name, tc.email, tc.subject, tc.message)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, tc.label)
	}

	// Nothing stored, nothing mailed.
	total, _, err := svc.Stats()
	require.NoError(t, err)
	assert.Zero(t, total)
	_ = repo
}

func TestSubmitStoresTrimmedMessage(t *testing.T) {
	mail := &fakeMailer{}
	settings := &models.Settings{}
	settings.ContactForm.RecipientEmail = "staff@example.com"
	svc, _ := newService(settings, mail)

	msg, err := svc.Submit("  Alice  ", "alice@example.com", " Hello ", "  A question  ")
	require.NoError(t, err)

	assert.Equal(t, "Alice", msg.Name)
	assert.Equal(t, "Hello", msg.Subject)
	assert.Equal(t, "A question", msg.Message)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.IsRead)

	require.Len(t, mail.notifications, 1)
	assert.Equal(t, []string{"staff@example.com"}, mail.notifications[0])
}

func TestSubmitSurvivesMailFailure(t *testing.T) {
	settings := &models.Settings{}
	settings.ContactForm.RecipientEmail = "staff@example.com"
	svc, repo := newService(settings, &fakeMailer{fail: true})

	msg, err := svc.Submit("Alice", "alice@example.com", "Hello", "A question")
	require.NoError(t, err)

	// The stored message is never rolled back on delivery failure.
	stored, err := repo.GetByID(msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)
}

func TestSubmitRecipientListFromSettings(t *testing.T) {
	mail := &fakeMailer{}
	settings := &models.Settings{}
	settings.ContactForm.RecipientEmail = "a@example.com, b@example.com\nc@example.com"
	svc, _ := newService(settings, mail)

	_, err := svc.Submit("Alice", "alice@example.com", "Hello", "A question")
	require.NoError(t, err)

	require.Len(t, mail.notifications, 1)
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, mail.notifications[0])
}

func TestReplyMailsSenderAndFlagsMessage(t *testing.T) {
	mail := &fakeMailer{}
	svc, repo := newService(nil, mail)

	require.NoError(t, repo.Create(&models.ContactMessage{
		ID: "m1", Email: "alice@example.com", Subject: "Hello",
	}))

	require.NoError(t, svc.Reply("m1", "Thanks for reaching out."))

	require.Len(t, mail.replies, 1)
	assert.Equal(t, "alice@example.com", mail.replies[0])

	stored, err := repo.GetByID("m1")
	require.NoError(t, err)
	assert.True(t, stored.IsReplied)
}

func TestReplyMailFailureLeavesFlagUnset(t *testing.T) {
	svc, repo := newService(nil, &fakeMailer{fail: true})

	require.NoError(t, repo.Create(&models.ContactMessage{
		ID: "m1", Email: "alice@example.com", Subject: "Hello",
	}))

	err := svc.Reply("m1", "Thanks.")
	require.Error(t, err)

	stored, err := repo.GetByID("m1")
	require.NoError(t, err)
	assert.False(t, stored.IsReplied)
}

func TestReplyUnknownMessage(t *testing.T) {
	svc, _ := newService(nil, &fakeMailer{})
	assert.ErrorIs(t, svc.Reply("missing", "hi"), ErrMessageNotFound)
}

func TestMarkReadUnknownMessage(t *testing.T) {
	svc, _ := newService(nil, &fakeMailer{})
	_, err := svc.MarkRead("missing")
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestDeleteUnknownMessage(t *testing.T) {
	svc, _ := newService(nil, &fakeMailer{})
	assert.ErrorIs(t, svc.DeleteMessage("missing"), ErrMessageNotFound)
}

func TestStats(t *testing.T) {
	svc, repo := newService(nil, &fakeMailer{})

	require.NoError(t, repo.Create(&models.ContactMessage{ID: "m1"}))
	require.NoError(t, repo.Create(&models.ContactMessage{ID: "m2"}))
	_, err := svc.MarkRead("m1")
	require.NoError(t, err)

	total, unread, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), unread)
}
