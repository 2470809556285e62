package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/models"
)

type StudentService struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

type CreateStudentInput struct {
	FullName  string
	Email     string
	Phone     string
	Status    string
	AvatarURL string
}

// UpdateStudentInput carries a partial payload: nil means "leave unchanged",
// a pointer to the zero value means "set to empty".
type UpdateStudentInput struct {
	FullName  *string
	Email     *string
	Phone     *string
	Status    *string
	AvatarURL *string
}

func (s *StudentService) GetAll() ([]models.Student, error) {
	var students []models.Student
	err := s.db.Preload("Enrollments.Group").Order("full_name asc").Find(&students).Error
	if err != nil {
		return nil, err
	}
	for i := range students {
		students[i].Group = firstGroupName(students[i].Enrollments)
	}
	return students, nil
}

func (s *StudentService) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	if err := s.db.Preload("Enrollments.Group").First(&student, "id = ?", id).Error; err != nil {
		return nil, err
	}
	student.Group = firstGroupName(student.Enrollments)
	return &student, nil
}

func (s *StudentService) Create(input CreateStudentInput) (*models.Student, error) {
	student := models.Student{
		ID:               uuid.New(),
		FullName:         input.FullName,
		Email:            input.Email,
		Phone:            input.Phone,
		Status:           input.Status,
		RegistrationDate: time.Now(),
		AvatarURL:        input.AvatarURL,
	}
	if err := s.db.Create(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *StudentService) Update(id uuid.UUID, input UpdateStudentInput) (*models.Student, error) {
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
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}
	if len(updates) > 0 {
		res := s.db.Model(&models.Student{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return s.GetByID(id)
}

func (s *StudentService) Delete(id uuid.UUID) error {
	// Unconditional: enrollments referencing the student are left behind.
	return s.db.Delete(&models.Student{}, "id = ?", id).Error
}

func firstGroupName(enrollments []models.Enrollment) string {
	if len(enrollments) == 0 {
		return ""
	}
	return enrollments[0].Group.Name
}
