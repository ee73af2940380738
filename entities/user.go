package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	FirstName  string    `json:"firstname"`
	LastName   string    `json:"lastname"`
	Country    string    `json:"country"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profilePic,omitempty"`

	Timestamp
}
