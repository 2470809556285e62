package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"educrm/models"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

type CreatePaymentInput struct {
	StudentID uuid.UUID
	Amount    float64
	Status    string
	Method    string
}

type UpdatePaymentInput struct {
	StudentID *uuid.UUID
	Amount    *float64
	Status    *string
	Method    *string
}

func (s *PaymentService) GetAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Preload("Student").Order("date desc").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	for i := range payments {
		payments[i].StudentName = payments[i].Student.FullName
	}
	return payments, nil
}

func (s *PaymentService) GetByID(id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Preload("Student").First(&payment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	payment.StudentName = payment.Student.FullName
	return &payment, nil
}

// Create validates the amount before touching the store: nothing is inserted
// for a non-positive payment. The date is assigned here and never updated.
func (s *PaymentService) Create(input CreatePaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	payment := models.Payment{
		ID:        uuid.New(),
		StudentID: input.StudentID,
		Amount:    input.Amount,
		Date:      time.Now(),
		Status:    input.Status,
		Method:    input.Method,
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return s.GetByID(payment.ID)
}

// Update exists for completeness; the console never calls it.
func (s *PaymentService) Update(id uuid.UUID, input UpdatePaymentInput) (*models.Payment, error) {
	updates := map[string]interface{}{}
	if input.StudentID != nil {
		updates["student_id"] = *input.StudentID
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		updates["amount"] = *input.Amount
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Method != nil {
		updates["method"] = *input.Method
	}
	if len(updates) > 0 {
		res := s.db.Model(&models.Payment{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return s.GetByID(id)
}

func (s *PaymentService) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.Payment{}, "id = ?", id).Error
}
