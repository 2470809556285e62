package models

import (
	"github.com/google/uuid"
)

// Enrollment links one group to one student. The composite primary key makes
// the pair unique; the RESTRICT constraint makes the store itself refuse to
// drop a group that still has enrollments.
type Enrollment struct {
	GroupID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"groupId"`
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"studentId"`

	// No constraint on the student side: student deletion is unconditional
	// and may leave enrollment rows behind.
	Group   Group   `gorm:"foreignKey:GroupID;constraint:OnDelete:RESTRICT" json:"-"`
	Student Student `gorm:"foreignKey:StudentID;constraint:-" json:"-"`
}
