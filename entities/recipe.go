package entities

import (
	"github.com/google/uuid"
)

// FamilyRecipe and UserRecipe live in separate tables even though both are
// author-submitted; family recipes win over user recipes during resolution.
type FamilyRecipe struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Title           string    `gorm:"not null" json:"title"`
	CreatedBy       string    `json:"created_by"`
	TraditionalDate string    `json:"traditional_date"`
	Ingredients     string    `gorm:"type:text" json:"ingredients"`
	Instructions    string    `gorm:"type:text" json:"instructions"`
	Photos          string    `gorm:"type:text" json:"photos"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type UserRecipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	Ingredients  string    `gorm:"type:text" json:"ingredients"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	Photos       string    `gorm:"type:text" json:"photos"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
