package models

import "time"

// RecipeView holds the view counter of one recipe.
type RecipeView struct {
	Slug      string    `gorm:"size:255;primarykey" json:"slug"`
	Views     int64     `gorm:"not null;default:0;index" json:"views"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the table name for the RecipeView model
func (RecipeView) TableName() string {
	return "recipe_views"
}
