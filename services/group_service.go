package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/models"
)

// GroupService owns the groups table and the enrollments join table. Students
// referenced by enrollments are not owned here: enrolling and unenrolling
// never touches the students table.
type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

type CreateGroupInput struct {
	Name      string
	CourseID  uuid.UUID
	TeacherID uuid.UUID
	Schedule  string
}

type UpdateGroupInput struct {
	Name      *string
	CourseID  *uuid.UUID
	TeacherID *uuid.UUID
	Schedule  *string
}

func (s *GroupService) GetAll() ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.Preload("Enrollments").Order("name asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	for i := range groups {
		groups[i].StudentIDs = studentIDs(groups[i].Enrollments)
	}
	return groups, nil
}

func (s *GroupService) GetByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	if err := s.db.Preload("Enrollments").First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	group.StudentIDs = studentIDs(group.Enrollments)
	return &group, nil
}

func (s *GroupService) Create(input CreateGroupInput) (*models.Group, error) {
	group := models.Group{
		ID:        uuid.New(),
		Name:      input.Name,
		CourseID:  input.CourseID,
		TeacherID: input.TeacherID,
		Schedule:  input.Schedule,
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}
	group.StudentIDs = []uuid.UUID{}
	return &group, nil
}

// Update changes the group row only; enrollments are managed separately via
// EnrollStudent and UnenrollStudent.
func (s *GroupService) Update(id uuid.UUID, input UpdateGroupInput) (*models.Group, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.CourseID != nil {
		updates["course_id"] = *input.CourseID
	}
	if input.TeacherID != nil {
		updates["teacher_id"] = *input.TeacherID
	}
	if input.Schedule != nil {
		updates["schedule"] = *input.Schedule
	}
	if len(updates) > 0 {
		res := s.db.Model(&models.Group{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return s.GetByID(id)
}

// Delete refuses to remove a group that still has enrolled students. The
// count and the delete run in one transaction, and the enrollments foreign
// key is declared ON DELETE RESTRICT, so a concurrent enrollment cannot slip
// a delete past the check.
func (s *GroupService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Enrollment{}).Where("group_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrGroupHasStudents
		}
		res := tx.Delete(&models.Group{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (s *GroupService) EnrollStudent(groupID, studentID uuid.UUID) error {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("group_id = ? AND student_id = ?", groupID, studentID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyEnrolled
	}
	err = s.db.Create(&models.Enrollment{GroupID: groupID, StudentID: studentID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyEnrolled
	}
	return err
}

// UnenrollStudent removes the exact pair. Removing a pair that does not
// exist is a no-op, not an error.
func (s *GroupService) UnenrollStudent(groupID, studentID uuid.UUID) error {
	return s.db.
		Where("group_id = ? AND student_id = ?", groupID, studentID).
		Delete(&models.Enrollment{}).Error
}

func studentIDs(enrollments []models.Enrollment) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.StudentID)
	}
	return ids
}
