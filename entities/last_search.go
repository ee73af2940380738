package entities

import (
	"github.com/google/uuid"
)

// LastSearch keeps only the parameters of a user's most recent search; the
// read path replays them live against the external API.
type LastSearch struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Query        string    `json:"query"`
	Cuisines     string    `json:"cuisines"`
	Diets        string    `json:"diets"`
	Intolerances string    `json:"intolerances"`
	Limit        int       `json:"limit"`
	Sort         string    `json:"sort"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
