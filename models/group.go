package models

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null" json:"courseId"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null" json:"teacherId"`
	Schedule  string    `gorm:"size:255" json:"schedule"`
	CreatedAt time.Time `json:"createdAt"`

	Enrollments []Enrollment `gorm:"foreignKey:GroupID" json:"-"`

	// IDs of enrolled students, filled from Enrollments on read. Not a column.
	StudentIDs []uuid.UUID `gorm:"-" json:"studentIds"`
}
