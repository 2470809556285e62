package models

import (
	"github.com/google/uuid"
)

type Teacher struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName   string    `gorm:"size:255;not null" json:"fullName"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Phone      string    `gorm:"size:50" json:"phone"`
	Specialty  string    `gorm:"size:255" json:"specialty"`
	Experience string    `gorm:"size:100" json:"experience"`
	AvatarURL  string    `gorm:"size:255" json:"avatarUrl"`
}
