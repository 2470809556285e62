package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCourseCreateThenGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	created, err := svc.Create(CreateCourseInput{
		Name:        "Python",
		Description: "Базовый курс",
		Price:       40000,
		Duration:    "6 месяцев",
		Color:       "#6366f1",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Python", got.Name)
	assert.Equal(t, "Базовый курс", got.Description)
	assert.Equal(t, 40000.0, got.Price)
	assert.Equal(t, "6 месяцев", got.Duration)
	assert.Equal(t, "#6366f1", got.Color)
}

func TestCourseGetAllOrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)

	for _, name := range []string{"Python", "Go", "Java"} {
		_, err := svc.Create(CreateCourseInput{Name: name, Price: 1})
		require.NoError(t, err)
	}

	courses, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "Go", courses[0].Name)
	assert.Equal(t, "Java", courses[1].Name)
	assert.Equal(t, "Python", courses[2].Name)
}

func TestCourseEmptyUpdateIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	created := seedCourse(t, db, "Python")

	got, err := svc.Update(created.ID, UpdateCourseInput{})
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Price, got.Price)
}

func TestCoursePartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	created := seedCourse(t, db, "Python")

	got, err := svc.Update(created.ID, UpdateCourseInput{Price: floatPtr(45000)})
	require.NoError(t, err)
	assert.Equal(t, 45000.0, got.Price)
	assert.Equal(t, "Python", got.Name)
}

func TestCourseDeleteHasNoGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewCourseService(db)
	course := seedCourse(t, db, "Python")

	// A group may still reference the course; the delete goes through anyway.
	_ = seedGroup(t, db, "PY-1")

	require.NoError(t, svc.Delete(course.ID))

	_, err := svc.GetByID(course.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
