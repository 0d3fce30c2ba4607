package inbox

import (
	"errors"
	"regexp"
	"strings"

	"amonarq/config"
	inboxRepo "amonarq/database/repository/inbox"
	settingsRepo "amonarq/database/repository/settings"
	"amonarq/models"
	"amonarq/services/mailer"
	"amonarq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrMessageNotFound signals a lookup miss.
var ErrMessageNotFound = errors.New("message not found")

// ValidationError describes a rejected contact-form field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InboxService defines business logic for contact-form submissions and
// inbox management.
type InboxService interface {
	// Submit validates and stores a contact-form submission, then notifies
	// the configured recipients best-effort.
	Submit(name, email, subject, message string) (*models.ContactMessage, error)
	// ListMessages returns all messages, newest first.
	ListMessages() ([]models.ContactMessage, error)
	// MarkRead flags a message as read.
	MarkRead(id string) (*models.ContactMessage, error)
	// Reply mails a staff reply to the sender and flags the message replied.
	Reply(id, replyMessage string) error
	// DeleteMessage removes a message permanently.
	DeleteMessage(id string) error
	// Stats returns total and unread message counts.
	Stats() (total int64, unread int64, err error)
}

// DefaultInboxService is the production implementation.
type DefaultInboxService struct {
	Repo     inboxRepo.InboxRepository
	Settings settingsRepo.SettingsRepository
	Mailer   mailer.Mailer
}

func validateSubmission(name, email, subject, message string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return &ValidationError{"Name must be at least 2 characters"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{"Please provide a valid email address"}
	}
	if len(strings.TrimSpace(subject)) < 2 {
		return &ValidationError{"Subject must be at least 2 characters"}
	}
	if len(strings.TrimSpace(message)) < 2 {
		return &ValidationError{"Message must be at least 2 characters"}
	}
	return nil
}

// recipientEmails resolves the contact-form notification recipients:
// settings record first, then configuration fallbacks.
func (s *DefaultInboxService) recipientEmails() []string {
	logger := utils.GetLogger()
	if settings, err := s.Settings.Get(); err == nil {
		if emails := mailer.ParseRecipientList(settings.ContactForm.RecipientEmail); len(emails) > 0 {
			return emails
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		logger.Error("Failed to load contact recipients from settings", zap.Error(err))
	}
	if emails := mailer.ParseRecipientList(config.AppConfig.ContactReceiverEmail); len(emails) > 0 {
		return emails
	}
	return mailer.ParseRecipientList(config.AppConfig.EmailUser)
}

// Submit validates and stores a contact-form submission. The notification
// mail is best-effort: a delivery failure is logged and swallowed, the
// stored message is never rolled back.
func (s *DefaultInboxService) Submit(name, email, subject, message string) (*models.ContactMessage, error) {
	logger := utils.GetLogger()
	if err := validateSubmission(name, email, subject, message); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Subject: strings.TrimSpace(subject),
		Message: strings.TrimSpace(message),
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}

	if recipients := s.recipientEmails(); len(recipients) > 0 {
		if err := s.Mailer.SendContactNotification(recipients, msg.Name, msg.Email, msg.Subject, msg.Message); err != nil {
			logger.Error("Failed to send contact notification email", zap.Error(err))
		}
	}
	return msg, nil
}

// ListMessages returns all messages, newest first.
func (s *DefaultInboxService) ListMessages() ([]models.ContactMessage, error) {
	return s.Repo.GetAll()
}

// MarkRead flags a message as read.
func (s *DefaultInboxService) MarkRead(id string) (*models.ContactMessage, error) {
	msg, err := s.Repo.MarkRead(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return msg, nil
}

// Reply mails a staff reply to the sender and flags the message replied.
// Unlike Submit, the mail here is the primary effect: a delivery failure
// fails the operation and the replied flag stays unset.
func (s *DefaultInboxService) Reply(id, replyMessage string) error {
	msg, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrMessageNotFound
		}
		return err
	}

	subject := msg.Subject
	if subject == "" {
		subject = "Your inquiry"
	}
	if err := s.Mailer.SendReply(msg.Email, "Re: "+subject, replyMessage); err != nil {
		return err
	}
	return s.Repo.MarkReplied(id)
}

// DeleteMessage removes a message permanently.
func (s *DefaultInboxService) DeleteMessage(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}

// Stats returns total and unread message counts.
func (s *DefaultInboxService) Stats() (int64, int64, error) {
	total, err := s.Repo.Count()
	if err != nil {
		return 0, 0, err
	}
	unread, err := s.Repo.CountUnread()
	if err != nil {
		return 0, 0, err
	}
	return total, unread, nil
}
