package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"studentId"`
	Amount    float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Date      time.Time `gorm:"not null" json:"date"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	Method    string    `gorm:"size:50" json:"method"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`

	// Full name of the paying student, filled from Student on read.
	StudentName string `gorm:"-" json:"studentName"`
}
