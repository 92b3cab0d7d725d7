package service

import (
	"agritrust/entities"
)

// View is the public eco-passport page behind the QR code.
type View struct {
	Name     string             `json:"name"`
	Role     string             `json:"role"`
	Image    string             `json:"image"`
	Passport *entities.Passport `json:"passport"`
}

type PassportService interface {
	// Own returns the caller's passport, creating the default one on first
	// access.
	Own(userID string) (*entities.Passport, error)
	Update(userID string, p *entities.Passport) (*entities.Passport, error)
	// Verify resolves the public view for a QR scan.
	Verify(userID string) (*View, error)
	// QRPNG encodes the verify link for userID as a PNG.
	QRPNG(userID string, size int) ([]byte, error)
}
