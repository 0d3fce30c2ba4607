package content

import (
	"sort"

	"amonarq/models"
)

// Merge combines the built-in default sections with the persisted remote set
// into one rendering-ready list. Pure function, no I/O.
//
// Remote data overrides defaults section-for-section. A remote tombstone
// removes the section even when a default exists for it, regardless of where
// it appears in the slice. Remote entries with ids unknown to the defaults
// are kept (admin-created custom sections). The result is sorted ascending
// by order; tie order is stable but carries no meaning.
func Merge(defaults, remote []models.ContentSection) []models.ContentSection {
	merged := make(map[string]models.ContentSection, len(defaults)+len(remote))
	keys := make([]string, 0, len(defaults)+len(remote))

	for _, d := range defaults {
		d.Images = normalizeImages(d.Images, d.Image)
		if _, seen := merged[d.SectionID]; !seen {
			keys = append(keys, d.SectionID)
		}
		merged[d.SectionID] = d
	}

	for _, s := range remote {
		if s.SectionID == "" {
			continue
		}
		if s.IsDeleted {
			delete(merged, s.SectionID)
			continue
		}
		existing, known := merged[s.SectionID]
		if len(s.Images) == 0 {
			if s.Image != "" {
				s.Images = []string{s.Image}
			} else if known {
				s.Images = existing.Images
			}
		}
		if !known {
			keys = append(keys, s.SectionID)
		}
		merged[s.SectionID] = s
	}

	// keys may repeat if an id was tombstoned and later re-added in the
	// same remote slice; emit each surviving id once.
	result := make([]models.ContentSection, 0, len(merged))
	emitted := make(map[string]bool, len(merged))
	for _, key := range keys {
		if emitted[key] {
			continue
		}
		if s, ok := merged[key]; ok {
			result = append(result, s)
			emitted[key] = true
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}
