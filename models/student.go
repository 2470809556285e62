package models

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName         string    `gorm:"size:255;not null" json:"fullName"`
	Email            string    `gorm:"size:255;not null" json:"email"`
	Phone            string    `gorm:"size:50" json:"phone"`
	Status           string    `gorm:"size:20;not null;default:'active'" json:"status"`
	RegistrationDate time.Time `gorm:"not null" json:"registrationDate"`
	AvatarURL        string    `gorm:"size:255" json:"avatarUrl"`

	Enrollments []Enrollment `gorm:"foreignKey:StudentID" json:"-"`

	// Name of the first group the student is enrolled in, filled from
	// Enrollments on read. Not a column.
	Group string `gorm:"-" json:"group"`
}
