package models

import "time"

// WorkoutTemplate is a reusable named list of exercises with defaults,
// used to pre-fill a new workout.
type WorkoutTemplate struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	UserID      uint               `gorm:"index;not null" json:"userId"`
	Name        string             `gorm:"size:255;not null" json:"name"`
	Description *string            `gorm:"type:text" json:"description"`
	Exercises   []TemplateExercise `gorm:"foreignKey:TemplateID" json:"exercises"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// TemplateExercise carries an explicit zero-based Order assigned at creation.
// Order is never recomputed when a sibling is deleted; gaps are fine.
type TemplateExercise struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TemplateID uint      `gorm:"index;not null" json:"templateId"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Sets       int       `gorm:"not null" json:"sets"`
	Reps       int       `gorm:"not null" json:"reps"`
	Weight     int       `gorm:"not null" json:"weight"` // default weight in kg
	Notes      *string   `gorm:"type:text" json:"notes"`
	Order      int       `gorm:"column:order;not null" json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
}
