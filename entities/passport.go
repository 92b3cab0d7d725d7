package entities

import "time"

// Passport holds the eco-passport credentials shown on /verify pages and
// shared via QR code.
type Passport struct {
	UserID         string   `gorm:"primaryKey" json:"user_id"`
	Achievements   []string `gorm:"serializer:json" json:"achievements"`
	Certifications []string `gorm:"serializer:json" json:"certifications"`
	CarbonNote     string   `json:"carbon_note"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
