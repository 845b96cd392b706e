package services

import (
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

type CardioService struct{ db *gorm.DB }

func NewCardioService(db *gorm.DB) *CardioService { return &CardioService{db: db} }

func (s *CardioService) List(userID uint) ([]models.CardioSession, error) {
	var sessions []models.CardioSession
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&sessions).Error
	return sessions, err
}

func (s *CardioService) ListByWorkout(userID, workoutID uint) ([]models.CardioSession, error) {
	var sessions []models.CardioSession
	err := s.db.
		Where("workout_id = ? AND user_id = ?", workoutID, userID).
		Find(&sessions).Error
	return sessions, err
}
