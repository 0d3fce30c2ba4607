package content

import "amonarq/models"

// ContentService defines business logic for content section operations.
type ContentService interface {
	// ListSections returns all non-deleted sections sorted by (order, sectionId).
	ListSections() ([]models.ContentSection, error)
	// EffectiveSections returns the rendering-ready list: built-in defaults
	// overlaid with the persisted sections, tombstones applied.
	EffectiveSections() ([]models.ContentSection, error)
	// UpsertSection creates or fully overwrites one section.
	UpsertSection(input models.SectionInput) (*models.ContentSection, error)
	// BulkUpsert applies create-or-replace for each valid entry and returns
	// the full current non-deleted set.
	BulkUpsert(inputs []models.SectionInput) ([]models.ContentSection, error)
	// DeleteSection tombstones one section.
	DeleteSection(sectionID string) error
	// CreateSection generates a new section id from group and name, computes
	// its insertion order, shifts the siblings at or after that order right
	// by one and persists the whole batch as one bulk upsert. It returns the
	// new section together with the full refreshed set.
	CreateSection(req CreateSectionRequest) (*models.ContentSection, []models.ContentSection, error)
}

// CreateSectionRequest carries the inputs for CreateSection.
type CreateSectionRequest struct {
	Group       GroupKey `json:"group"`
	Name        string   `json:"name"`
	InsertAfter string   `json:"insertAfter"` // sibling sectionId, or "end"
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Body        string   `json:"body"`
	Image       string   `json:"image"`
	IsActive    *bool    `json:"isActive"`
}
