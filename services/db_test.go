package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"educrm/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Course{},
		&models.Group{},
		&models.Enrollment{},
		&models.Payment{},
	)
	require.NoError(t, err)

	return db
}

func seedStudent(t *testing.T, db *gorm.DB, fullName string) *models.Student {
	t.Helper()
	student, err := NewStudentService(db).Create(CreateStudentInput{
		FullName: fullName,
		Email:    "student@example.com",
		Phone:    "+7 900 000-00-00",
		Status:   "active",
	})
	require.NoError(t, err)
	return student
}

func seedTeacher(t *testing.T, db *gorm.DB, fullName string) *models.Teacher {
	t.Helper()
	teacher, err := NewTeacherService(db).Create(CreateTeacherInput{
		FullName:   fullName,
		Email:      "teacher@example.com",
		Specialty:  "Python",
		Experience: "5 лет",
	})
	require.NoError(t, err)
	return teacher
}

func seedCourse(t *testing.T, db *gorm.DB, name string) *models.Course {
	t.Helper()
	course, err := NewCourseService(db).Create(CreateCourseInput{
		Name:     name,
		Price:    40000,
		Duration: "6 месяцев",
		Color:    "#6366f1",
	})
	require.NoError(t, err)
	return course
}

func seedGroup(t *testing.T, db *gorm.DB, name string) *models.Group {
	t.Helper()
	group, err := NewGroupService(db).Create(CreateGroupInput{
		Name:      name,
		CourseID:  uuid.New(),
		TeacherID: uuid.New(),
		Schedule:  "Сб 10:00",
	})
	require.NoError(t, err)
	return group
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func timeAgo(d time.Duration) time.Time { return time.Now().Add(-d) }
