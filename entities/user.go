package entities

import "time"

const (
	RoleFarmer   = "farmer"
	RoleConsumer = "consumer"
)

type User struct {
	UserID       string    `gorm:"primaryKey" json:"user_id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `gorm:"index" json:"role"` // farmer|consumer
	Image        string    `json:"image"`
	Location     string    `json:"location"`
	Bio          string    `json:"bio"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PasswordReset struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    string    `gorm:"index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time
}
