package entities

import "time"

type Product struct {
	ProductID   string  `gorm:"primaryKey" json:"id"`
	FarmerID    string  `gorm:"index" json:"farmer_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `gorm:"index" json:"category"`
	IsOrganic   bool    `json:"is_organic"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FarmerRef is the denormalized owner snapshot attached to product
// responses. It is rebuilt on every read, never stored.
type FarmerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type ProductView struct {
	Product
	Farmer FarmerRef `json:"farmer"`
}
