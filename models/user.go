package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff account for the admin console. Regular students and
// teachers are plain records and never log in.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"fullName"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'admin'" json:"role"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
