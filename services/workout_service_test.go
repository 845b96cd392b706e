package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
)

func createWorkoutInput(name string, date time.Time) CreateWorkoutInput {
	return CreateWorkoutInput{
		Name: name,
		Date: date,
		Exercises: []ExerciseInput{
			{Name: "Supino Reto", Sets: 4, Reps: 10, Weight: 80},
			{Name: "Crucifixo", Sets: 3, Reps: 12, Weight: 20},
		},
	}
}

func TestWorkoutCreate_AttachesExercisesAndCardio(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	date := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	input := createWorkoutInput("Treino A", date)
	input.Cardio = &CardioInput{Type: "corrida", Duration: 20, Distance: intPtr(3000)}

	id, err := svc.Create(1, input)
	require.NoError(t, err)
	require.NotZero(t, id)

	workout, err := svc.GetByID(1, id)
	require.NoError(t, err)
	assert.Equal(t, "Treino A", workout.Name)
	require.Len(t, workout.Exercises, 2)
	for _, ex := range workout.Exercises {
		assert.True(t, ex.Completed, "exercises are logged as completed on creation")
	}

	sessions, err := NewCardioService(db).ListByWorkout(1, id)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "corrida", sessions[0].Type)
	assert.True(t, sessions[0].Date.Equal(date), "cardio inherits the workout date")
}

func TestWorkoutList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		_, err := svc.Create(1, createWorkoutInput(name, base.AddDate(0, 0, i*3)))
		require.NoError(t, err)
	}

	workouts, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	assert.Equal(t, "newest", workouts[0].Name)
	assert.Equal(t, "oldest", workouts[2].Name)
	assert.Len(t, workouts[0].Exercises, 2)
}

func TestWorkoutGetByID_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	id, err := svc.Create(1, createWorkoutInput("mine", time.Now()))
	require.NoError(t, err)

	_, err = svc.GetByID(2, id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	list, err := svc.List(2)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkoutUpdate_PartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	id, err := svc.Create(1, createWorkoutInput("before", time.Now()))
	require.NoError(t, err)

	require.NoError(t, svc.Update(1, id, UpdateWorkoutInput{Name: strPtr("after")}))

	workout, err := svc.GetByID(1, id)
	require.NoError(t, err)
	assert.Equal(t, "after", workout.Name)

	err = svc.Update(2, id, UpdateWorkoutInput{Name: strPtr("stolen")})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWorkoutDelete_RemovesChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	input := createWorkoutInput("doomed", time.Now())
	input.Exercises = append(input.Exercises, ExerciseInput{Name: "Remada", Sets: 3, Reps: 12, Weight: 40})
	input.Cardio = &CardioInput{Type: "bike", Duration: 15}
	id, err := svc.Create(1, input)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, id))

	_, err = svc.GetByID(1, id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var exerciseCount, cardioCount int64
	db.Model(&models.Exercise{}).Where("workout_id = ?", id).Count(&exerciseCount)
	db.Model(&models.CardioSession{}).Where("workout_id = ?", id).Count(&cardioCount)
	assert.Zero(t, exerciseCount)
	assert.Zero(t, cardioCount)
}

func TestWorkoutDelete_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	id, err := svc.Create(1, createWorkoutInput("mine", time.Now()))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(2, id), gorm.ErrRecordNotFound)

	_, err = svc.GetByID(1, id)
	assert.NoError(t, err)
}

func TestExercisesByWorkout(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	id, err := svc.Create(1, createWorkoutInput("w", time.Now()))
	require.NoError(t, err)

	exercises, err := svc.ExercisesByWorkout(1, id)
	require.NoError(t, err)
	assert.Len(t, exercises, 2)

	_, err = svc.ExercisesByWorkout(2, id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateExercise_OwnershipThroughParentWorkout(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutService(db)

	id, err := svc.Create(1, createWorkoutInput("w", time.Now()))
	require.NoError(t, err)

	exercises, err := svc.ExercisesByWorkout(1, id)
	require.NoError(t, err)
	target := exercises[0]

	err = svc.UpdateExercise(1, target.ID, UpdateExerciseInput{
		Completed: boolPtr(false),
		Weight:    intPtr(85),
	})
	require.NoError(t, err)

	updated, err := svc.ExercisesByWorkout(1, id)
	require.NoError(t, err)
	for _, ex := range updated {
		if ex.ID == target.ID {
			assert.False(t, ex.Completed)
			assert.Equal(t, 85, ex.Weight)
		}
	}

	err = svc.UpdateExercise(2, target.ID, UpdateExerciseInput{Weight: intPtr(999)})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func boolPtr(b bool) *bool { return &b }
