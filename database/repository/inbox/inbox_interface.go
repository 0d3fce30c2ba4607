package inboxRepo

import (
	"amonarq/models"
)

// InboxRepository defines methods for contact-message data access.
type InboxRepository interface {
	// Create inserts a new contact message.
	Create(msg *models.ContactMessage) error
	// GetAll retrieves all messages, newest first.
	GetAll() ([]models.ContactMessage, error)
	// GetByID retrieves a message by its ID.
	GetByID(id string) (*models.ContactMessage, error)
	// MarkRead flags a message as read and returns the updated document.
	MarkRead(id string) (*models.ContactMessage, error)
	// MarkReplied flags a message as replied.
	MarkReplied(id string) error
	// Delete removes a message permanently.
	Delete(id string) error
	// Count returns the total number of messages.
	Count() (int64, error)
	// CountUnread returns the number of unread messages.
	CountUnread() (int64, error)
}
