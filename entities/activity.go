package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecipeID columns are plain strings: locally authored recipes use uuids,
// externally sourced recipes use the opaque ids the upstream API assigns.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID  string    `gorm:"uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}

type UserHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	RecipeID string    `json:"recipe_id"`
	ViewedAt time.Time `gorm:"type:timestamp" json:"viewed_at"`

	User *User `gorm:"foreignKey:UserID"`
}

type RecipeProgress struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"uniqueIndex:idx_progress_user_recipe" json:"user_id"`
	RecipeID       string    `gorm:"uniqueIndex:idx_progress_user_recipe" json:"recipe_id"`
	CompletedSteps string    `gorm:"type:text" json:"completed_steps"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
