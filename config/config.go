package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

// InitDB loads the environment, connects to Postgres and migrates the schema.
// The handle is returned (not stored in a package global) so callers wire it
// into the services explicitly.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// Migrate creates or updates all tables. Shared with tests and the seeder.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.Exercise{},
		&models.CardioSession{},
		&models.ProgressPhoto{},
		&models.WorkoutTemplate{},
		&models.TemplateExercise{},
		&models.LibraryExercise{},
		&models.UserCustomExercise{},
	)
}
