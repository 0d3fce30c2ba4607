package content

import (
	"errors"
	"fmt"
	"strings"

	contentRepo "amonarq/database/repository/content"
	"amonarq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}

// normalizeImages keeps the trimmed non-empty entries of the incoming list;
// if the list is empty it synthesizes a one-element list from the legacy
// single image field, else stays empty.
func normalizeImages(images []string, fallbackImage string) []string {
	normalized := make([]string, 0, len(images))
	for _, img := range images {
		if trimmed := strings.TrimSpace(img); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	if len(normalized) > 0 {
		return normalized
	}
	if trimmed := strings.TrimSpace(fallbackImage); trimmed != "" {
		return []string{trimmed}
	}
	return []string{}
}

// toSection converts an input payload into the full persisted shape. Every
// editable field is written; omitted order defaults to 0 and omitted
// isActive to true. isDeleted is always forced to false: upserts cannot
// tombstone, only the delete operation does.
func toSection(input models.SectionInput) models.ContentSection {
	order := 0
	if input.Order != nil {
		order = *input.Order
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	return models.ContentSection{
		SectionID: strings.TrimSpace(input.SectionID),
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		Body:      input.Body,
		Image:     input.Image,
		Images:    normalizeImages(input.Images, input.Image),
		Order:     order,
		IsActive:  isActive,
		IsDeleted: false,
	}
}

// ListSections returns all non-deleted sections.
func (s *DefaultContentService) ListSections() ([]models.ContentSection, error) {
	return s.Repo.GetAll()
}

// EffectiveSections overlays the persisted sections on the built-in defaults.
func (s *DefaultContentService) EffectiveSections() ([]models.ContentSection, error) {
	remote, err := s.Repo.GetAllRaw()
	if err != nil {
		return nil, err
	}
	return Merge(DefaultSections(), remote), nil
}

// UpsertSection creates or fully overwrites one section.
func (s *DefaultContentService) UpsertSection(input models.SectionInput) (*models.ContentSection, error) {
	section := toSection(input)
	if section.SectionID == "" {
		return nil, ErrMissingSectionID
	}
	return s.Repo.Upsert(section)
}

// BulkUpsert drops entries without a usable sectionId, persists the rest in
// one unordered bulk write and returns the full refreshed set.
func (s *DefaultContentService) BulkUpsert(inputs []models.SectionInput) ([]models.ContentSection, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}
	sections := make([]models.ContentSection, 0, len(inputs))
	for _, input := range inputs {
		section := toSection(input)
		if section.SectionID == "" {
			continue
		}
		sections = append(sections, section)
	}
	if len(sections) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := s.Repo.BulkUpsert(sections); err != nil {
		return nil, err
	}
	return s.Repo.GetAll()
}

// DeleteSection tombstones one section.
func (s *DefaultContentService) DeleteSection(sectionID string) error {
	sectionID = strings.TrimSpace(sectionID)
	if sectionID == "" {
		return ErrMissingSectionID
	}
	return s.Repo.SoftDelete(sectionID)
}

// CreateSection generates the id, computes the insertion order, shifts the
// group's siblings right and submits everything as one bulk upsert.
func (s *DefaultContentService) CreateSection(req CreateSectionRequest) (*models.ContentSection, []models.ContentSection, error) {
	if !KnownGroup(req.Group) {
		return nil, nil, ErrUnknownGroup
	}
	sectionID := SectionIDFor(req.Group, req.Name)
	if sectionID == "" {
		return nil, nil, ErrInvalidName
	}

	// Collision check against every row, tombstones included: a sectionId is
	// never reused after deletion.
	if existing, err := s.Repo.GetBySectionID(sectionID); err == nil && existing != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrSectionExists, sectionID)
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil, err
	}

	existing, err := s.Repo.GetAll()
	if err != nil {
		return nil, nil, err
	}

	insertOrder := InsertionOrder(req.Group, req.InsertAfter, existing)

	// Shift every sibling at or after the insertion point right by one, so
	// the new section slots in without order collisions inside the group.
	batch := make([]models.ContentSection, 0, len(existing)+1)
	for _, sibling := range existing {
		if GroupOf(sibling.SectionID) != req.Group || sibling.Order < insertOrder {
			continue
		}
		sibling.Order++
		batch = append(batch, sibling)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	newSection := models.ContentSection{
		SectionID: sectionID,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Body:      req.Body,
		Image:     req.Image,
		Images:    normalizeImages(nil, req.Image),
		Order:     insertOrder,
		IsActive:  isActive,
	}
	batch = append(batch, newSection)

	if err := s.Repo.BulkUpsert(batch); err != nil {
		return nil, nil, err
	}
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	return &newSection, all, nil
}
