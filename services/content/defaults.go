package content

import "amonarq/models"

// DefaultSections returns the built-in seed content the public site falls
// back to before any section has been edited. These are not persisted; the
// merge engine overlays the stored sections on top of them.
func DefaultSections() []models.ContentSection {
	return []models.ContentSection{
		{SectionID: "home-hero", Title: "Plan for what comes next", Subtitle: "Your legacy, organized", Body: "A single place to prepare, protect and pass on what matters.", Order: 1, IsActive: true},
		{SectionID: "home-intro", Title: "Why Amonarq", Body: "We help families keep important decisions, documents and wishes in order.", Order: 2, IsActive: true},
		{SectionID: "about-story", Title: "Our story", Body: "Amonarq was founded to take the uncertainty out of life's hardest transitions.", Order: 1, IsActive: true},
		{SectionID: "about-team", Title: "The team", Order: 2, IsActive: true},
		{SectionID: "product-overview", Title: "MyNxt", Subtitle: "One product, every eventuality", Body: "MyNxt keeps your plans current and your people informed.", Order: 1, IsActive: true},
		{SectionID: "continuity-overview", Title: "Continuity", Body: "Make sure nothing important stops when you do.", Order: 1, IsActive: true},
		{SectionID: "life-events-overview", Title: "Life events", Body: "From marriage to relocation, keep your plans in step with your life.", Order: 1, IsActive: true},
		{SectionID: "consent-overview", Title: "Consent", Body: "Decide in advance who may act for you, and how.", Order: 1, IsActive: true},
		{SectionID: "consent-approval-flow", Title: "Approval flow", Body: "Every consent request is reviewed and approved before it takes effect.", Order: 1, IsActive: true},
		{SectionID: "security-overview", Title: "Security", Body: "Your data is encrypted at rest and in transit.", Order: 1, IsActive: true},
		{SectionID: "how-steps", Title: "How it works", Body: "Three steps: record, review, relax.", Order: 1, IsActive: true},
		{SectionID: "contact-form", Title: "Get in touch", Subtitle: "We usually answer within one business day", Order: 1, IsActive: true},
		{SectionID: "privacy-policy", Title: "Privacy Policy", Order: 1, IsActive: true},
		{SectionID: "terms-of-service", Title: "Terms of Service", Order: 2, IsActive: true},
	}
}
