package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanRossato/treino-app/models"
)

func TestComputeProgress_FiltersByWindow(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workout("recent", now.AddDate(0, 0, -5), exercise("Supino Reto", 4, 10, 80)),
		workout("too old", now.AddDate(0, 0, -40), exercise("Supino Reto", 4, 10, 100)),
	}

	p := ComputeProgress(workouts, 30, AllExercises, now)
	assert.Equal(t, 1, p.Stats.TotalWorkouts)
	assert.Equal(t, []string{"Supino Reto"}, p.Exercises)
	require.Len(t, p.WeightSeries, 1)
	require.Len(t, p.WeightSeries[0].Points, 1)
	assert.Equal(t, 80, p.WeightSeries[0].Points[0].Weight)
}

func TestComputeProgress_PerDayMaxWeight(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workout("morning", time.Date(2024, 6, 20, 7, 0, 0, 0, time.UTC),
			exercise("Supino Reto", 4, 10, 80)),
		workout("evening", time.Date(2024, 6, 20, 19, 0, 0, 0, time.UTC),
			exercise("Supino Reto", 3, 8, 85)),
	}

	p := ComputeProgress(workouts, 30, "Supino Reto", now)
	require.Len(t, p.WeightSeries, 1)
	require.Len(t, p.WeightSeries[0].Points, 1)
	assert.Equal(t, 85, p.WeightSeries[0].Points[0].Weight)
}

func TestComputeProgress_VolumePointsAscendEvenFromNewestFirstInput(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workout("newest", now.AddDate(0, 0, -1), exercise("Supino Reto", 4, 10, 80)),
		workout("middle", now.AddDate(0, 0, -5), exercise("Supino Reto", 4, 10, 75)),
		workout("oldest", now.AddDate(0, 0, -10), exercise("Supino Reto", 4, 10, 70)),
	}

	p := ComputeProgress(workouts, 30, AllExercises, now)
	require.Len(t, p.VolumePoints, 3)
	assert.Equal(t, "oldest", p.VolumePoints[0].WorkoutName)
	assert.Equal(t, "middle", p.VolumePoints[1].WorkoutName)
	assert.Equal(t, "newest", p.VolumePoints[2].WorkoutName)
	for i := 1; i < len(p.VolumePoints); i++ {
		assert.False(t, p.VolumePoints[i].Date.Before(p.VolumePoints[i-1].Date))
	}
}

func TestComputeProgress_SeriesCappedAtSix(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	var exercises []models.Exercise
	for i := 0; i < 9; i++ {
		exercises = append(exercises, exercise(fmt.Sprintf("Exercicio %d", i), 3, 10, 50))
	}
	workouts := []models.Workout{workout("full body", now.AddDate(0, 0, -2), exercises...)}

	p := ComputeProgress(workouts, 30, AllExercises, now)
	assert.Len(t, p.WeightSeries, 6)
	assert.Len(t, p.Exercises, 9)
}

func TestComputeProgress_SingleExerciseSelection(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workout("w", now.AddDate(0, 0, -2),
			exercise("Supino Reto", 4, 10, 80),
			exercise("Agachamento", 5, 5, 100)),
	}

	p := ComputeProgress(workouts, 30, "Agachamento", now)
	require.Len(t, p.WeightSeries, 1)
	assert.Equal(t, "Agachamento", p.WeightSeries[0].ExerciseName)
	// Exercises still lists everything in the window for the selector.
	assert.ElementsMatch(t, []string{"Supino Reto", "Agachamento"}, p.Exercises)
}

func TestComputeProgress_Stats(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workout("A", now.AddDate(0, 0, -1), exercise("Supino Reto", 4, 10, 80)),  // 3200
		workout("B", now.AddDate(0, 0, -3), exercise("Agachamento", 5, 5, 100)),  // 2500
		workout("C", now.AddDate(0, 0, -3), exercise("Agachamento", 3, 10, 60)),  // same day as B
	}

	p := ComputeProgress(workouts, 10, AllExercises, now)
	assert.Equal(t, 3, p.Stats.TotalWorkouts)
	assert.Equal(t, 3200+2500+1800, p.Stats.TotalVolume)
	assert.Equal(t, 2500, p.Stats.AvgVolume) // 7500/3
	assert.Equal(t, 20, p.Stats.Consistency) // 2 distinct days over 10
}

func TestComputeProgress_EmptyWindow(t *testing.T) {
	p := ComputeProgress(nil, 30, AllExercises, time.Now())
	assert.Empty(t, p.WeightSeries)
	assert.Empty(t, p.VolumePoints)
	assert.Empty(t, p.Exercises)
	assert.Equal(t, ProgressStats{}, p.Stats)
}

func TestComputeProgress_NonPositiveDaysDefaultsTo30(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	workouts := []models.Workout{
		workout("inside 30", now.AddDate(0, 0, -20), exercise("Supino Reto", 4, 10, 80)),
	}

	p := ComputeProgress(workouts, 0, AllExercises, now)
	assert.Equal(t, 1, p.Stats.TotalWorkouts)
}
