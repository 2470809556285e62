package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"educrm/models"
)

const (
	recentPerSource = 5
	activityFeedCap = 8
)

// DashboardService assembles read-only snapshots for the landing page. It
// owns no table of its own.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	Students int64   `json:"students"`
	Teachers int64   `json:"teachers"`
	Courses  int64   `json:"courses"`
	Groups   int64   `json:"groups"`
	Revenue  float64 `json:"revenue"`
}

// Activity is one row of the recent-activity feed. Icon and Color are hints
// for the frontend and carry no business meaning.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Date        time.Time `json:"date"`
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.db.Model(&models.Student{}).Count(&stats.Students).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Teacher{}).Count(&stats.Teachers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Course{}).Count(&stats.Courses).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Group{}).Count(&stats.Groups).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&stats.Revenue)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentActivity merges the latest registrations, payments and group
// creations into one feed, newest first, capped at eight entries. Ordering
// between entries with identical timestamps is arbitrary.
func (s *DashboardService) RecentActivity() ([]Activity, error) {
	var students []models.Student
	err := s.db.Order("registration_date desc").Limit(recentPerSource).Find(&students).Error
	if err != nil {
		return nil, err
	}

	var payments []models.Payment
	err = s.db.Preload("Student").Order("date desc").Limit(recentPerSource).Find(&payments).Error
	if err != nil {
		return nil, err
	}

	var groups []models.Group
	err = s.db.Order("created_at desc").Limit(recentPerSource).Find(&groups).Error
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(students)+len(payments)+len(groups))
	for _, st := range students {
		activities = append(activities, Activity{
			ID:          "s-" + st.ID.String(),
			Type:        "student",
			Title:       "Новый студент",
			Description: fmt.Sprintf("Зарегистрирован студент: %s", st.FullName),
			Icon:        "user-plus",
			Color:       "#6366f1",
			Date:        st.RegistrationDate,
		})
	}
	for _, p := range payments {
		activities = append(activities, Activity{
			ID:          "p-" + p.ID.String(),
			Type:        "payment",
			Title:       "Новый платеж",
			Description: fmt.Sprintf("Получена оплата %.0f₽", p.Amount),
			Icon:        "money-bill",
			Color:       "#10b981",
			Date:        p.Date,
		})
	}
	for _, g := range groups {
		activities = append(activities, Activity{
			ID:          "g-" + g.ID.String(),
			Type:        "group",
			Title:       "Новая группа",
			Description: fmt.Sprintf("Создана группа: %s", g.Name),
			Icon:        "layer-group",
			Color:       "#f59e0b",
			Date:        g.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})
	if len(activities) > activityFeedCap {
		activities = activities[:activityFeedCap]
	}
	return activities, nil
}
