package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathanRossato/treino-app/models"
)

// WeekStats aggregates one 7-day window.
type WeekStats struct {
	Workouts  int `json:"workouts"`
	Volume    int `json:"volume"`
	Exercises int `json:"exercises"` // distinct exercise names, exact match
}

type WeeklyComparison struct {
	ThisWeek        WeekStats `json:"thisWeek"`
	LastWeek        WeekStats `json:"lastWeek"`
	WorkoutsChange  string    `json:"workoutsChange"`
	VolumeChange    string    `json:"volumeChange"`
	ExercisesChange string    `json:"exercisesChange"`
}

// startOfWeek returns the most recent Sunday at local midnight, relative to t.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func weekStats(workouts []models.Workout) WeekStats {
	names := make(map[string]struct{})
	volume := 0
	for _, w := range workouts {
		volume += WorkoutVolume(w)
		for _, ex := range w.Exercises {
			names[ex.Name] = struct{}{}
		}
	}
	return WeekStats{
		Workouts:  len(workouts),
		Volume:    volume,
		Exercises: len(names),
	}
}

// ComputeWeekly splits workouts into the current Sunday-anchored week and the
// preceding one, and compares them. "now" is a parameter so the split is
// deterministic under test.
func ComputeWeekly(workouts []models.Workout, now time.Time) WeeklyComparison {
	thisWeekStart := startOfWeek(now)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)

	var thisWeek, lastWeek []models.Workout
	for _, w := range workouts {
		switch {
		case !w.Date.Before(thisWeekStart):
			thisWeek = append(thisWeek, w)
		case !w.Date.Before(lastWeekStart):
			lastWeek = append(lastWeek, w)
		}
	}

	cur := weekStats(thisWeek)
	prev := weekStats(lastWeek)
	return WeeklyComparison{
		ThisWeek:        cur,
		LastWeek:        prev,
		WorkoutsChange:  ChangeIndicator(cur.Workouts, prev.Workouts),
		VolumeChange:    ChangeIndicator(cur.Volume, prev.Volume),
		ExercisesChange: ChangeIndicator(cur.Exercises, prev.Exercises),
	}
}

// ChangeIndicator renders the percent change between two window values.
// A zero previous value has no defined percentage and renders as a dash,
// never a division by zero or an infinity.
func ChangeIndicator(current, previous int) string {
	if previous == 0 {
		return "—"
	}
	change := float64(current-previous) / float64(previous) * 100
	switch {
	case change > 0:
		return fmt.Sprintf("+%.0f%%", math.Round(change))
	case change < 0:
		return fmt.Sprintf("%.0f%%", math.Round(change))
	default:
		return "0%"
	}
}
