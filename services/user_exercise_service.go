package services

import (
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

type UserExerciseService struct{ db *gorm.DB }

func NewUserExerciseService(db *gorm.DB) *UserExerciseService {
	return &UserExerciseService{db: db}
}

type UserExerciseInput struct {
	Name        string             `json:"name" binding:"required"`
	MuscleGroup string             `json:"muscleGroup" binding:"required"`
	Equipment   *string            `json:"equipment"`
	Difficulty  *models.Difficulty `json:"difficulty"`
	Description *string            `json:"description"`
	// ImageData is a base64 data URL; decoded and uploaded by the controller,
	// never persisted in the row.
	ImageData *string `json:"imageData"`
}

func (s *UserExerciseService) List(userID uint) ([]models.UserCustomExercise, error) {
	var exercises []models.UserCustomExercise
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&exercises).Error
	return exercises, err
}

func (s *UserExerciseService) Create(exercise *models.UserCustomExercise) (uint, error) {
	if err := s.db.Create(exercise).Error; err != nil {
		return 0, err
	}
	return exercise.ID, nil
}

// Update replaces the provided fields on an owner-scoped row. Media fields are
// only touched when a new upload happened.
func (s *UserExerciseService) Update(
	userID, exerciseID uint,
	in UserExerciseInput,
	mediaURL *string, mediaType *models.MediaType,
) error {
	var exercise models.UserCustomExercise
	if err := s.db.
		Where("id = ? AND user_id = ?", exerciseID, userID).
		First(&exercise).Error; err != nil {
		return err
	}

	fields := map[string]interface{}{
		"name":         in.Name,
		"muscle_group": in.MuscleGroup,
	}
	if in.Equipment != nil {
		fields["equipment"] = *in.Equipment
	}
	if in.Difficulty != nil {
		fields["difficulty"] = *in.Difficulty
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if mediaURL != nil {
		fields["media_url"] = *mediaURL
	}
	if mediaType != nil {
		fields["media_type"] = *mediaType
	}
	return s.db.Model(&exercise).Updates(fields).Error
}

func (s *UserExerciseService) Delete(userID, exerciseID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", exerciseID, userID).
		Delete(&models.UserCustomExercise{}).Error
}
