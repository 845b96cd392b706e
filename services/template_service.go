package services

import (
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

type TemplateService struct{ db *gorm.DB }

func NewTemplateService(db *gorm.DB) *TemplateService { return &TemplateService{db: db} }

type TemplateExerciseInput struct {
	Name   string  `json:"name" binding:"required"`
	Sets   int     `json:"sets" binding:"min=0"`
	Reps   int     `json:"reps" binding:"min=0"`
	Weight int     `json:"weight" binding:"min=0"`
	Notes  *string `json:"notes"`
}

type CreateTemplateInput struct {
	Name        string                  `json:"name" binding:"required"`
	Description *string                 `json:"description"`
	Exercises   []TemplateExerciseInput `json:"exercises" binding:"dive"`
}

type UpdateTemplateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func preloadOrdered(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}

// Create inserts the template and its exercises transactionally. Order is
// assigned from the request sequence, zero-based.
func (s *TemplateService) Create(userID uint, in CreateTemplateInput) (uint, error) {
	template := &models.WorkoutTemplate{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(template).Error; err != nil {
			return err
		}
		for i, ex := range in.Exercises {
			exercise := &models.TemplateExercise{
				TemplateID: template.ID,
				Name:       ex.Name,
				Sets:       ex.Sets,
				Reps:       ex.Reps,
				Weight:     ex.Weight,
				Notes:      ex.Notes,
				Order:      i,
			}
			if err := tx.Create(exercise).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return template.ID, nil
}

// List returns the user's templates newest-first, exercises in display order.
func (s *TemplateService) List(userID uint) ([]models.WorkoutTemplate, error) {
	var templates []models.WorkoutTemplate
	err := s.db.
		Preload("Exercises", preloadOrdered).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

func (s *TemplateService) GetByID(userID, templateID uint) (*models.WorkoutTemplate, error) {
	var template models.WorkoutTemplate
	err := s.db.
		Preload("Exercises", preloadOrdered).
		Where("id = ? AND user_id = ?", templateID, userID).
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (s *TemplateService) Update(userID, templateID uint, in UpdateTemplateInput) error {
	var template models.WorkoutTemplate
	if err := s.db.
		Where("id = ? AND user_id = ?", templateID, userID).
		First(&template).Error; err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&template).Updates(fields).Error
}

// Delete removes the template's exercises first, then the template row.
func (s *TemplateService) Delete(userID, templateID uint) error {
	var template models.WorkoutTemplate
	if err := s.db.
		Where("id = ? AND user_id = ?", templateID, userID).
		First(&template).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", template.ID).
			Delete(&models.TemplateExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&template).Error
	})
}
