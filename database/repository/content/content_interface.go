package contentRepo

import (
	"amonarq/models"
)

// ContentRepository defines methods for content section data access.
type ContentRepository interface {
	// GetAll retrieves all non-deleted sections sorted by (order, sectionId).
	GetAll() ([]models.ContentSection, error)
	// GetAllRaw retrieves every section row, tombstones included, in the
	// same sort order. Needed by the merge engine, where a tombstone must
	// suppress the matching built-in default.
	GetAllRaw() ([]models.ContentSection, error)
	// GetBySectionID retrieves a section by its id, tombstoned rows included.
	GetBySectionID(sectionID string) (*models.ContentSection, error)
	// Upsert creates or fully overwrites a section keyed by sectionId and
	// returns the persisted document.
	Upsert(section models.ContentSection) (*models.ContentSection, error)
	// BulkUpsert applies create-or-replace for each section in one unordered
	// bulk write. Each entry's upsert is atomic; the batch is not.
	BulkUpsert(sections []models.ContentSection) error
	// SoftDelete tombstones a section by id, creating the tombstone row if
	// the section was never persisted.
	SoftDelete(sectionID string) error
}
