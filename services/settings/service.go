package settings

import (
	"errors"

	settingsRepo "amonarq/database/repository/settings"
	"amonarq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsService manages the singleton site settings record.
type SettingsService interface {
	// Get returns the settings, lazily creating the default record on the
	// first read.
	Get() (*models.Settings, error)
	// Update applies the provided top-level sections onto the stored record;
	// sections absent from the request stay untouched.
	Update(update UpdateSettingsRequest) (*models.Settings, error)
}

// UpdateSettingsRequest carries the optional settings sections; nil sections
// are left as stored.
type UpdateSettingsRequest struct {
	Logos       *models.Logos        `json:"logos"`
	ContactInfo *models.ContactInfo  `json:"contactInfo"`
	ContactForm *models.ContactForm  `json:"contactForm"`
	Footer      *models.Footer       `json:"footer"`
	SocialMedia *[]models.SocialLink `json:"socialMedia"`
}

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
}

// Get returns the settings, creating the default record if absent.
func (s *DefaultSettingsService) Get() (*models.Settings, error) {
	stored, err := s.Repo.Get()
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	defaults := &models.Settings{SocialMedia: []models.SocialLink{}}
	if err := s.Repo.Save(defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// Update applies the provided sections onto the stored record.
func (s *DefaultSettingsService) Update(update UpdateSettingsRequest) (*models.Settings, error) {
	stored, err := s.Get()
	if err != nil {
		return nil, err
	}

	if update.Logos != nil {
		stored.Logos = *update.Logos
	}
	if update.ContactInfo != nil {
		stored.ContactInfo = *update.ContactInfo
	}
	if update.ContactForm != nil {
		stored.ContactForm = *update.ContactForm
	}
	if update.Footer != nil {
		stored.Footer = *update.Footer
	}
	if update.SocialMedia != nil {
		stored.SocialMedia = *update.SocialMedia
	}

	if err := s.Repo.Save(stored); err != nil {
		return nil, err
	}
	return stored, nil
}
