package models

import (
	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration    string    `gorm:"size:100" json:"duration"`
	// Hex color used by the frontend for theming, no business meaning.
	Color string `gorm:"size:20" json:"color"`
}
