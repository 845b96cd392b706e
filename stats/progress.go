package stats

import (
	"math"
	"sort"
	"time"

	"github.com/jonathanRossato/treino-app/models"
)

// AllExercises selects every exercise in the window, capped to maxSeries
// lines so the chart legend stays readable.
const AllExercises = "all"

const maxSeries = 6

// WeightPoint is the max weight logged for one exercise on one calendar day.
type WeightPoint struct {
	Day    time.Time `json:"day"`
	Weight int       `json:"weight"`
}

// WeightSeries is the per-day weight progression of one exercise.
type WeightSeries struct {
	ExerciseName string        `json:"exerciseName"`
	Points       []WeightPoint `json:"points"`
}

// VolumePoint is one workout's own volume; one point per workout, not per day.
type VolumePoint struct {
	Date        time.Time `json:"date"`
	WorkoutName string    `json:"workoutName"`
	Volume      int       `json:"volume"`
}

type ProgressStats struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalVolume   int `json:"totalVolume"`
	AvgVolume     int `json:"avgVolume"`
	Consistency   int `json:"consistency"` // % of window days with at least one workout
}

type Progress struct {
	WeightSeries []WeightSeries `json:"weightSeries"`
	VolumePoints []VolumePoint  `json:"volumePoints"`
	Exercises    []string       `json:"exercises"` // distinct names in the window
	Stats        ProgressStats  `json:"stats"`
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeProgress shapes chart data for a trailing window of the given number
// of days. exercise selects a single series, or AllExercises for the capped
// multi-series view.
func ComputeProgress(workouts []models.Workout, days int, exercise string, now time.Time) Progress {
	if days <= 0 {
		days = 30
	}
	cutoff := now.AddDate(0, 0, -days)

	var filtered []models.Workout
	for _, w := range workouts {
		if !w.Date.Before(cutoff) {
			filtered = append(filtered, w)
		}
	}

	// Distinct exercise names, in first-seen order.
	var names []string
	seen := make(map[string]struct{})
	for _, w := range filtered {
		for _, ex := range w.Exercises {
			if _, ok := seen[ex.Name]; !ok {
				seen[ex.Name] = struct{}{}
				names = append(names, ex.Name)
			}
		}
	}

	selected := names
	if exercise != "" && exercise != AllExercises {
		selected = []string{exercise}
	} else if len(selected) > maxSeries {
		selected = selected[:maxSeries]
	}

	// Per-day max weight for each selected exercise.
	maxByDay := make(map[string]map[time.Time]int)
	for _, name := range selected {
		maxByDay[name] = make(map[time.Time]int)
	}
	for _, w := range filtered {
		day := truncateDay(w.Date)
		for _, ex := range w.Exercises {
			dayMap, ok := maxByDay[ex.Name]
			if !ok {
				continue
			}
			if ex.Weight > dayMap[day] {
				dayMap[day] = ex.Weight
			}
		}
	}

	series := make([]WeightSeries, 0, len(selected))
	for _, name := range selected {
		points := make([]WeightPoint, 0, len(maxByDay[name]))
		for day, weight := range maxByDay[name] {
			points = append(points, WeightPoint{Day: day, Weight: weight})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })
		if len(points) > 0 {
			series = append(series, WeightSeries{ExerciseName: name, Points: points})
		}
	}

	// Volume per workout, chronologically ascending for the chart even though
	// the source list is newest-first.
	volumePoints := make([]VolumePoint, 0, len(filtered))
	distinctDays := make(map[time.Time]struct{})
	for _, w := range filtered {
		volumePoints = append(volumePoints, VolumePoint{
			Date:        w.Date,
			WorkoutName: w.Name,
			Volume:      WorkoutVolume(w),
		})
		distinctDays[truncateDay(w.Date)] = struct{}{}
	}
	sort.SliceStable(volumePoints, func(i, j int) bool {
		return volumePoints[i].Date.Before(volumePoints[j].Date)
	})

	totalVolume := 0
	for _, p := range volumePoints {
		totalVolume += p.Volume
	}
	avgVolume := 0
	if len(filtered) > 0 {
		avgVolume = int(math.Round(float64(totalVolume) / float64(len(filtered))))
	}
	consistency := int(math.Round(float64(len(distinctDays)) / float64(days) * 100))

	return Progress{
		WeightSeries: series,
		VolumePoints: volumePoints,
		Exercises:    names,
		Stats: ProgressStats{
			TotalWorkouts: len(filtered),
			TotalVolume:   totalVolume,
			AvgVolume:     avgVolume,
			Consistency:   consistency,
		},
	}
}
