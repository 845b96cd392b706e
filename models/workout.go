package models

import "time"

// Workout is one training session. Date is when it was performed,
// not when the row was created.
type Workout struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	UserID         uint       `gorm:"index;not null" json:"userId"`
	Name           string     `gorm:"size:255;not null" json:"name"`
	Date           time.Time  `gorm:"index;not null" json:"date"`
	Notes          *string    `gorm:"type:text" json:"notes"`
	Duration       *int       `json:"duration"`       // minutes
	SleepHours     *int       `json:"sleepHours"`     // hours of sleep before the workout
	AvgHeartRate   *int       `json:"avgHeartRate"`   // bpm
	CaloriesBurned *int       `json:"caloriesBurned"` // kcal
	Exercises      []Exercise `gorm:"foreignKey:WorkoutID" json:"exercises"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Exercise belongs to exactly one workout. Weight is whole kilograms so
// volume sums stay integer arithmetic.
type Exercise struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WorkoutID uint      `gorm:"index;not null" json:"workoutId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Sets      int       `gorm:"not null" json:"sets"`
	Reps      int       `gorm:"not null" json:"reps"`
	Weight    int       `gorm:"not null" json:"weight"`
	Completed bool      `gorm:"default:false;not null" json:"completed"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}
