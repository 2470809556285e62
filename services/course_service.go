package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/models"
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

type CreateCourseInput struct {
	Name        string
	Description string
	Price       float64
	Duration    string
	Color       string
}

type UpdateCourseInput struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *string
	Color       *string
}

func (s *CourseService) GetAll() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("name asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) GetByID(id uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Create(input CreateCourseInput) (*models.Course, error) {
	course := models.Course{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Color:       input.Color,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) Update(id uuid.UUID, input UpdateCourseInput) (*models.Course, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}
	if len(updates) > 0 {
		res := s.db.Model(&models.Course{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return s.GetByID(id)
}

func (s *CourseService) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.Course{}, "id = ?", id).Error
}
