package stats

import (
	"time"

	"github.com/jonathanRossato/treino-app/models"
)

type Intensity string

const (
	IntensityNone   Intensity = "none"
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Volume bands for day coloring on the calendar.
const (
	mediumVolumeThreshold = 3000
	highVolumeThreshold   = 5000
)

// CalendarDay is one cell of the month grid. Padding cells from the
// neighboring months carry real dates but never collect workouts.
type CalendarDay struct {
	Date           time.Time        `json:"date"`
	IsCurrentMonth bool             `json:"isCurrentMonth"`
	Workouts       []models.Workout `json:"workouts"`
	WorkoutCount   int              `json:"workoutCount"`
	TotalVolume    int              `json:"totalVolume"`
	Intensity      Intensity        `json:"intensity"`
}

// SameDay reports whether two instants fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func intensityFor(count, volume int) Intensity {
	switch {
	case count == 0:
		return IntensityNone
	case volume > highVolumeThreshold:
		return IntensityHigh
	case volume > mediumVolumeThreshold:
		return IntensityMedium
	default:
		return IntensityLow
	}
}

// MonthGrid builds the fixed 6x7 calendar for a month: always 42 cells,
// first cell on a Sunday, padded with trailing days of the previous month
// and leading days of the next.
func MonthGrid(year int, month time.Month, workouts []models.Workout, loc *time.Location) []CalendarDay {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	firstWeekday := int(firstDay.Weekday()) // 0 = Sunday
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, 0, 42)

	// Trailing days of the previous month.
	for i := firstWeekday; i > 0; i-- {
		days = append(days, CalendarDay{
			Date:      firstDay.AddDate(0, 0, -i),
			Intensity: IntensityNone,
		})
	}

	// Current month.
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, loc)
		dayWorkouts := WorkoutsOnDay(workouts, date)
		volume := TotalVolume(dayWorkouts)
		days = append(days, CalendarDay{
			Date:           date,
			IsCurrentMonth: true,
			Workouts:       dayWorkouts,
			WorkoutCount:   len(dayWorkouts),
			TotalVolume:    volume,
			Intensity:      intensityFor(len(dayWorkouts), volume),
		})
	}

	// Leading days of the next month until the grid is full.
	nextMonth := firstDay.AddDate(0, 1, 0)
	for day := 1; len(days) < 42; day++ {
		days = append(days, CalendarDay{
			Date:      nextMonth.AddDate(0, 0, day-1),
			Intensity: IntensityNone,
		})
	}

	return days
}

// WorkoutsOnDay filters workouts by exact calendar-day match.
func WorkoutsOnDay(workouts []models.Workout, day time.Time) []models.Workout {
	matched := make([]models.Workout, 0)
	for _, w := range workouts {
		if SameDay(w.Date.In(day.Location()), day) {
			matched = append(matched, w)
		}
	}
	return matched
}
