package services

import (
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

type PhotoService struct{ db *gorm.DB }

func NewPhotoService(db *gorm.DB) *PhotoService { return &PhotoService{db: db} }

// Create persists the metadata row. The caller must have already written the
// binary payload to object storage; the row only references it.
func (s *PhotoService) Create(photo *models.ProgressPhoto) error {
	return s.db.Create(photo).Error
}

func (s *PhotoService) List(userID uint) ([]models.ProgressPhoto, error) {
	var photos []models.ProgressPhoto
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&photos).Error
	return photos, err
}

func (s *PhotoService) GetByID(userID, photoID uint) (*models.ProgressPhoto, error) {
	var photo models.ProgressPhoto
	err := s.db.
		Where("id = ? AND user_id = ?", photoID, userID).
		First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (s *PhotoService) Delete(userID, photoID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", photoID, userID).
		Delete(&models.ProgressPhoto{}).Error
}
