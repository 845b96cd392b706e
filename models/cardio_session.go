package models

import "time"

// CardioSession is created alongside a workout when cardio data is supplied.
// WorkoutID is optional so standalone sessions stay representable.
type CardioSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	WorkoutID      *uint     `gorm:"index" json:"workoutId"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Type           string    `gorm:"size:100;not null" json:"type"` // e.g. "Corrida", "Bicicleta"
	Duration       int       `gorm:"not null" json:"duration"`      // minutes
	Distance       *int      `json:"distance"`                      // meters
	AvgHeartRate   *int      `json:"avgHeartRate"`
	Pace           *int      `json:"pace"` // seconds per km
	CaloriesBurned *int      `json:"caloriesBurned"`
	Date           time.Time `gorm:"index;not null" json:"date"`
	Notes          *string   `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
}
