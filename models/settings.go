package models

import "time"

// Settings is the singleton site settings record, lazily created on first read.
type Settings struct {
	Logos       Logos        `bson:"logos" json:"logos"`
	ContactInfo ContactInfo  `bson:"contactInfo" json:"contactInfo"`
	ContactForm ContactForm  `bson:"contactForm" json:"contactForm"`
	Footer      Footer       `bson:"footer" json:"footer"`
	SocialMedia []SocialLink `bson:"socialMedia" json:"socialMedia"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

type Logos struct {
	Main    string `bson:"main" json:"main"`
	Footer  string `bson:"footer" json:"footer"`
	Favicon string `bson:"favicon" json:"favicon"`
}

type ContactInfo struct {
	Address string `bson:"address" json:"address"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	MapsURL string `bson:"mapsUrl" json:"mapsUrl"`
}

type ContactForm struct {
	// RecipientEmail may hold several addresses separated by commas,
	// semicolons or newlines.
	RecipientEmail string `bson:"recipientEmail" json:"recipientEmail"`
}

type Footer struct {
	BadgeText     string `bson:"badgeText" json:"badgeText"`
	CopyrightText string `bson:"copyrightText" json:"copyrightText"`
}

type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
	Icon     string `bson:"icon" json:"icon"`
}
