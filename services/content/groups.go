package content

import (
	"regexp"
	"strings"

	"amonarq/models"
)

// GroupKey identifies the page-scoped category a section belongs to,
// inferred from its sectionId prefix.
type GroupKey string

const (
	GroupHome            GroupKey = "home"
	GroupAbout           GroupKey = "about"
	GroupProduct         GroupKey = "product"
	GroupContinuity      GroupKey = "continuity"
	GroupLifeEvents      GroupKey = "life-events"
	GroupConsent         GroupKey = "consent"
	GroupConsentApproval GroupKey = "consent-approval"
	GroupSecurity        GroupKey = "security"
	GroupHowItWorks      GroupKey = "how-it-works"
	GroupContact         GroupKey = "contact"
	GroupLegal           GroupKey = "legal"
	GroupOther           GroupKey = "other"
)

// groupPrefixes maps each group to the prefix new section ids are generated
// with. The "how-it-works" group abbreviates to "how" and custom sections to
// "custom", matching the existing id namespace.
var groupPrefixes = map[GroupKey]string{
	GroupHome:            "home",
	GroupAbout:           "about",
	GroupProduct:         "product",
	GroupContinuity:      "continuity",
	GroupLifeEvents:      "life-events",
	GroupConsent:         "consent",
	GroupConsentApproval: "consent-approval",
	GroupSecurity:        "security",
	GroupHowItWorks:      "how",
	GroupContact:         "contact",
	GroupLegal:           "legal",
	GroupOther:           "custom",
}

// KnownGroup reports whether the key names a creatable group.
func KnownGroup(key GroupKey) bool {
	_, ok := groupPrefixes[key]
	return ok
}

// GroupOf classifies a sectionId into its page group. More specific prefixes
// are checked before general ones: "consent-approval-" must win over
// "consent-".
func GroupOf(sectionID string) GroupKey {
	switch {
	case strings.HasPrefix(sectionID, "home-"):
		return GroupHome
	case strings.HasPrefix(sectionID, "about-"):
		return GroupAbout
	case strings.HasPrefix(sectionID, "product-"):
		return GroupProduct
	case strings.HasPrefix(sectionID, "continuity-"):
		return GroupContinuity
	case strings.HasPrefix(sectionID, "life-events-"), strings.HasPrefix(sectionID, "life-event-"):
		return GroupLifeEvents
	case strings.HasPrefix(sectionID, "consent-approval-"):
		return GroupConsentApproval
	case strings.HasPrefix(sectionID, "consent-"):
		return GroupConsent
	case strings.HasPrefix(sectionID, "security-"):
		return GroupSecurity
	case strings.HasPrefix(sectionID, "how-"):
		return GroupHowItWorks
	case strings.HasPrefix(sectionID, "contact-"):
		return GroupContact
	case sectionID == "privacy-policy", sectionID == "terms-of-service":
		return GroupLegal
	default:
		return GroupOther
	}
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a section name and collapses every run of non-alphanumeric
// characters into a single hyphen. Returns "" if nothing survives.
func Slugify(value string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "-")
	return strings.Trim(slug, "-")
}

// SectionIDFor generates the id for a new section in the given group.
func SectionIDFor(group GroupKey, name string) string {
	slug := Slugify(name)
	if slug == "" {
		return ""
	}
	prefix, ok := groupPrefixes[group]
	if !ok {
		prefix = groupPrefixes[GroupOther]
	}
	return prefix + "-" + slug
}

// NextOrder returns max(order) + 1 among the group's sections, or 1 if the
// group is empty.
func NextOrder(group GroupKey, sections []models.ContentSection) int {
	max := 0
	found := false
	for _, s := range sections {
		if GroupOf(s.SectionID) != group {
			continue
		}
		found = true
		if s.Order > max {
			max = s.Order
		}
	}
	if !found {
		return 1
	}
	return max + 1
}

// InsertionOrder computes the order value for a section inserted after the
// named sibling, or at the end of the group. A stale afterSectionID that no
// longer exists or belongs to a different group falls back to the end.
func InsertionOrder(group GroupKey, afterSectionID string, sections []models.ContentSection) int {
	if afterSectionID == "" || afterSectionID == "end" {
		return NextOrder(group, sections)
	}
	for _, s := range sections {
		if s.SectionID != afterSectionID {
			continue
		}
		if GroupOf(s.SectionID) != group {
			break
		}
		return s.Order + 1
	}
	return NextOrder(group, sections)
}
