package models

import "time"

type Difficulty string

const (
	DifficultyIniciante     Difficulty = "iniciante"
	DifficultyIntermediario Difficulty = "intermediario"
	DifficultyAvancado      Difficulty = "avancado"
)

func (d Difficulty) IsValid() bool {
	return d == DifficultyIniciante || d == DifficultyIntermediario || d == DifficultyAvancado
}

type MediaType string

const (
	MediaTypeGif   MediaType = "gif"
	MediaTypeImage MediaType = "image"
)

func (m MediaType) IsValid() bool {
	return m == MediaTypeGif || m == MediaTypeImage
}

// LibraryExercise is a pre-defined exercise shared across all users.
// Rows come from the seeder, not from user input.
type LibraryExercise struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	MuscleGroup string     `gorm:"size:100;index;not null" json:"muscleGroup"` // e.g. "Peito", "Costas"
	Equipment   *string    `gorm:"size:100" json:"equipment"`
	Difficulty  Difficulty `gorm:"size:20;default:intermediario" json:"difficulty"`
	MediaURL    string     `gorm:"type:text;not null" json:"mediaUrl"`
	MediaType   MediaType  `gorm:"size:10;default:gif" json:"mediaType"`
	Description *string    `gorm:"type:text" json:"description"`
	IsGlobal    bool       `gorm:"default:true;not null" json:"isGlobal"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (LibraryExercise) TableName() string { return "exercise_library" }

// UserCustomExercise is always owned by one user and never shared.
type UserCustomExercise struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"userId"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	MuscleGroup string     `gorm:"size:100;not null" json:"muscleGroup"`
	Equipment   *string    `gorm:"size:100" json:"equipment"`
	Difficulty  Difficulty `gorm:"size:20;default:intermediario" json:"difficulty"`
	MediaURL    *string    `gorm:"type:text" json:"mediaUrl"`
	MediaType   *MediaType `gorm:"size:10" json:"mediaType"`
	Description *string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}
