package services

import (
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

// LibraryService serves the shared read-only exercise catalog.
// No user scoping: global entries are visible to everyone.
type LibraryService struct{ db *gorm.DB }

func NewLibraryService(db *gorm.DB) *LibraryService { return &LibraryService{db: db} }

func (s *LibraryService) ListGlobal() ([]models.LibraryExercise, error) {
	var exercises []models.LibraryExercise
	err := s.db.
		Where("is_global = ?", true).
		Order("muscle_group ASC, name ASC").
		Find(&exercises).Error
	return exercises, err
}

func (s *LibraryService) ListByMuscleGroup(muscleGroup string) ([]models.LibraryExercise, error) {
	var exercises []models.LibraryExercise
	err := s.db.
		Where("is_global = ? AND muscle_group = ?", true, muscleGroup).
		Order("name ASC").
		Find(&exercises).Error
	return exercises, err
}
