// Package stats computes derived training metrics from workout lists.
// Everything here is pure: no I/O, no errors, defined zero-values on
// empty or partially filled input.
package stats

import "github.com/jonathanRossato/treino-app/models"

// WorkoutVolume is the training load of a single workout:
// the sum of sets*reps*weight over its exercises.
func WorkoutVolume(w models.Workout) int {
	volume := 0
	for _, ex := range w.Exercises {
		volume += ex.Sets * ex.Reps * ex.Weight
	}
	return volume
}

// TotalVolume sums WorkoutVolume over a list of workouts.
func TotalVolume(workouts []models.Workout) int {
	total := 0
	for _, w := range workouts {
		total += WorkoutVolume(w)
	}
	return total
}
