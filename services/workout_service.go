package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

type ExerciseInput struct {
	Name   string  `json:"name" binding:"required"`
	Sets   int     `json:"sets" binding:"min=0"`
	Reps   int     `json:"reps" binding:"min=0"`
	Weight int     `json:"weight" binding:"min=0"`
	Notes  *string `json:"notes"`
}

type CardioInput struct {
	Type           string  `json:"type" binding:"required"`
	Duration       int     `json:"duration" binding:"required,min=1"`
	Distance       *int    `json:"distance"`
	AvgHeartRate   *int    `json:"avgHeartRate"`
	Pace           *int    `json:"pace"`
	CaloriesBurned *int    `json:"caloriesBurned"`
	Notes          *string `json:"notes"`
}

type CreateWorkoutInput struct {
	Name           string          `json:"name" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	Notes          *string         `json:"notes"`
	Duration       *int            `json:"duration"`
	SleepHours     *int            `json:"sleepHours"`
	AvgHeartRate   *int            `json:"avgHeartRate"`
	CaloriesBurned *int            `json:"caloriesBurned"`
	Exercises      []ExerciseInput `json:"exercises" binding:"required,min=1,dive"`
	Cardio         *CardioInput    `json:"cardio"`
}

type UpdateWorkoutInput struct {
	Name  *string    `json:"name"`
	Date  *time.Time `json:"date"`
	Notes *string    `json:"notes"`
}

type UpdateExerciseInput struct {
	Completed *bool   `json:"completed"`
	Weight    *int    `json:"weight"`
	Notes     *string `json:"notes"`
}

// Create inserts the workout, its exercises and the optional cardio session
// in a single transaction, so a failed child insert never leaves an orphaned
// parent behind. Returns the new workout ID.
func (s *WorkoutService) Create(userID uint, in CreateWorkoutInput) (uint, error) {
	workout := &models.Workout{
		UserID:         userID,
		Name:           in.Name,
		Date:           in.Date,
		Notes:          in.Notes,
		Duration:       in.Duration,
		SleepHours:     in.SleepHours,
		AvgHeartRate:   in.AvgHeartRate,
		CaloriesBurned: in.CaloriesBurned,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workout).Error; err != nil {
			return err
		}
		for _, ex := range in.Exercises {
			exercise := &models.Exercise{
				WorkoutID: workout.ID,
				Name:      ex.Name,
				Sets:      ex.Sets,
				Reps:      ex.Reps,
				Weight:    ex.Weight,
				Completed: true,
				Notes:     ex.Notes,
			}
			if err := tx.Create(exercise).Error; err != nil {
				return err
			}
		}
		if in.Cardio != nil {
			session := &models.CardioSession{
				WorkoutID:      &workout.ID,
				UserID:         userID,
				Type:           in.Cardio.Type,
				Duration:       in.Cardio.Duration,
				Distance:       in.Cardio.Distance,
				AvgHeartRate:   in.Cardio.AvgHeartRate,
				Pace:           in.Cardio.Pace,
				CaloriesBurned: in.Cardio.CaloriesBurned,
				Date:           in.Date,
				Notes:          in.Cardio.Notes,
			}
			if err := tx.Create(session).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return workout.ID, nil
}

// List returns the user's workouts newest-first, exercises attached.
func (s *WorkoutService) List(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Preload("Exercises").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) GetByID(userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.
		Preload("Exercises").
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		return nil, err // gorm.ErrRecordNotFound for missing or foreign rows
	}
	return &workout, nil
}

func (s *WorkoutService) Update(userID, workoutID uint, in UpdateWorkoutInput) error {
	var workout models.Workout
	if err := s.db.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error; err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&workout).Updates(fields).Error
}

// Delete removes the workout's exercises and any linked cardio session
// before the workout row itself. The delete is explicit two-step rather
// than relying on database-level cascade.
func (s *WorkoutService) Delete(userID, workoutID uint) error {
	var workout models.Workout
	if err := s.db.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workout.ID).
			Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_id = ?", workout.ID).
			Delete(&models.CardioSession{}).Error; err != nil {
			return err
		}
		return tx.Delete(&workout).Error
	})
}

// ExercisesByWorkout lists the child exercises of one of the user's workouts.
func (s *WorkoutService) ExercisesByWorkout(userID, workoutID uint) ([]models.Exercise, error) {
	if _, err := s.GetByID(userID, workoutID); err != nil {
		return nil, err
	}
	var exercises []models.Exercise
	err := s.db.Where("workout_id = ?", workoutID).Find(&exercises).Error
	return exercises, err
}

// UpdateExercise mutates a single exercise (toggling completed, adjusting
// weight, notes). Ownership is checked through the parent workout.
func (s *WorkoutService) UpdateExercise(userID, exerciseID uint, in UpdateExerciseInput) error {
	var exercise models.Exercise
	err := s.db.
		Joins("JOIN workouts ON workouts.id = exercises.workout_id").
		Where("exercises.id = ? AND workouts.user_id = ?", exerciseID, userID).
		First(&exercise).Error
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if in.Completed != nil {
		fields["completed"] = *in.Completed
	}
	if in.Weight != nil {
		fields["weight"] = *in.Weight
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&exercise).Updates(fields).Error
}
