package models

import "time"

// ContentSection is one named, ordered block of editable page content.
// The sectionId encodes the page group and slug (e.g. "home-hero").
type ContentSection struct {
	SectionID string   `bson:"sectionId" json:"sectionId"`
	Title     string   `bson:"title" json:"title"`
	Subtitle  string   `bson:"subtitle" json:"subtitle"`
	Body      string   `bson:"body" json:"body"`
	Image     string   `bson:"image" json:"image"` // legacy single image, mirrors Images[0]
	Images    []string `bson:"images" json:"images"`
	Order     int      `bson:"order" json:"order"`
	IsActive  bool     `bson:"isActive" json:"isActive"`
	// IsDeleted is a tombstone: the row is retained but excluded from reads,
	// so stale bulk saves cannot resurrect a removed section id.
	IsDeleted bool      `bson:"isDeleted" json:"isDeleted"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// SectionInput is the editable payload accepted by the upsert endpoints.
// Every field is written on upsert; omitted fields fall back to their zero
// defaults (empty strings, order 0, isActive true).
type SectionInput struct {
	SectionID string   `json:"sectionId"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	Body      string   `json:"body"`
	Image     string   `json:"image"`
	Images    []string `json:"images"`
	Order     *int     `json:"order"`
	IsActive  *bool    `json:"isActive"`
}
