package database

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "educrm/configs"
	"educrm/models"
)

// Connect opens the Postgres handle every service receives at construction.
// There is deliberately no package-level DB variable.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Teacher{},
		&models.Course{},
		&models.Group{},
		&models.Enrollment{},
		&models.Payment{},
	)
}

// SeedAdmin creates the staff account from the environment if it does not
// exist yet, so a fresh deployment can be logged into.
func SeedAdmin(db *gorm.DB) error {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       uuid.New(),
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	return nil
}
