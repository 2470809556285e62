package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/models"
)

type TeacherService struct {
	db *gorm.DB
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{db: db}
}

type CreateTeacherInput struct {
	FullName   string
	Email      string
	Phone      string
	Specialty  string
	Experience string
	AvatarURL  string
}

type UpdateTeacherInput struct {
	FullName   *string
	Email      *string
	Phone      *string
	Specialty  *string
	Experience *string
	AvatarURL  *string
}

func (s *TeacherService) GetAll() ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := s.db.Order("full_name asc").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (s *TeacherService) GetByID(id uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := s.db.First(&teacher, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *TeacherService) Create(input CreateTeacherInput) (*models.Teacher, error) {
	teacher := models.Teacher{
		ID:         uuid.New(),
		FullName:   input.FullName,
		Email:      input.Email,
		Phone:      input.Phone,
		Specialty:  input.Specialty,
		Experience: input.Experience,
		AvatarURL:  input.AvatarURL,
	}
	if err := s.db.Create(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *TeacherService) Update(id uuid.UUID, input UpdateTeacherInput) (*models.Teacher, error) {
	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Specialty != nil {
		updates["specialty"] = *input.Specialty
	}
	if input.Experience != nil {
		updates["experience"] = *input.Experience
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}
	if len(updates) > 0 {
		res := s.db.Model(&models.Teacher{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return s.GetByID(id)
}

func (s *TeacherService) Delete(id uuid.UUID) error {
	// No guard: a teacher referenced by a group can still be removed,
	// leaving the group pointing at a gone teacher.
	return s.db.Delete(&models.Teacher{}, "id = ?", id).Error
}
