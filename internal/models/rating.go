package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is one star rating a visitor left on a recipe. A visitor is identified only by
// UserHash, a SHA-256 digest of their client address and the recipe slug.
type Rating struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeSlug string    `gorm:"size:255;not null;uniqueIndex:idx_ratings_slug_user" json:"recipeSlug"`
	Value      int       `gorm:"not null" json:"rating"`
	UserHash   string    `gorm:"size:64;not null;uniqueIndex:idx_ratings_slug_user" json:"userHash"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

// TableName returns the table name for the Rating model
func (Rating) TableName() string {
	return "ratings"
}

// BeforeCreate assigns an ID when none is set.
func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
