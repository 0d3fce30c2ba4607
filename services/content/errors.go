package content

import "errors"

var (
	// ErrMissingSectionID signals an upsert without a usable section id.
	ErrMissingSectionID = errors.New("sectionId is required")
	// ErrEmptyBatch signals a bulk upsert with no valid entries.
	ErrEmptyBatch = errors.New("no valid sections provided")
	// ErrInvalidName signals a section name that slugifies to nothing.
	ErrInvalidName = errors.New("section name is required")
	// ErrUnknownGroup signals a create request against a group that does not exist.
	ErrUnknownGroup = errors.New("unknown section group")
	// ErrSectionExists signals an id collision with an existing section.
	// Tombstoned ids collide too: a sectionId is never reused after deletion.
	ErrSectionExists = errors.New("a section with this id already exists")
)
