package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanRossato/treino-app/models"
)

func TestMonthGrid_Always42CellsSundayToSaturday(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := MonthGrid(year, month, nil, time.UTC)
			require.Len(t, grid, 42)
			assert.Equal(t, time.Sunday, grid[0].Date.Weekday())
			assert.Equal(t, time.Saturday, grid[41].Date.Weekday())
		}
	}
}

func TestMonthGrid_PaddingCellsHaveRealDates(t *testing.T) {
	// June 2024 starts on a Saturday, so the grid opens with six May days.
	grid := MonthGrid(2024, time.June, nil, time.UTC)

	assert.False(t, grid[0].IsCurrentMonth)
	assert.Equal(t, time.Date(2024, 5, 26, 0, 0, 0, 0, time.UTC), grid[0].Date)
	assert.True(t, grid[6].IsCurrentMonth)
	assert.Equal(t, 1, grid[6].Date.Day())

	last := grid[41]
	assert.False(t, last.IsCurrentMonth)
	assert.Equal(t, time.July, last.Date.Month())
}

func TestMonthGrid_CollectsWorkoutsByCalendarDay(t *testing.T) {
	workouts := []models.Workout{
		workout("morning", time.Date(2024, 6, 10, 7, 30, 0, 0, time.UTC),
			exercise("Supino Reto", 4, 10, 80)),
		workout("evening", time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC),
			exercise("Agachamento", 5, 5, 100)),
		workout("other day", time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC),
			exercise("Remada", 3, 12, 40)),
	}

	grid := MonthGrid(2024, time.June, workouts, time.UTC)

	var day10 *CalendarDay
	for i := range grid {
		if grid[i].IsCurrentMonth && grid[i].Date.Day() == 10 {
			day10 = &grid[i]
			break
		}
	}
	require.NotNil(t, day10)
	assert.Equal(t, 2, day10.WorkoutCount)
	assert.Equal(t, 4*10*80+5*5*100, day10.TotalVolume)
}

func TestIntensityBands(t *testing.T) {
	tests := []struct {
		count  int
		volume int
		want   Intensity
	}{
		{0, 0, IntensityNone},
		{1, 1000, IntensityLow},
		{1, 3000, IntensityLow},
		{1, 3001, IntensityMedium},
		{1, 5000, IntensityMedium},
		{2, 5001, IntensityHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, intensityFor(tt.count, tt.volume))
	}
}

func TestWorkoutsOnDay_IgnoresTimeOfDay(t *testing.T) {
	workouts := []models.Workout{
		workout("late", time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)),
		workout("next day", time.Date(2024, 6, 11, 0, 0, 1, 0, time.UTC)),
	}

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	matched := WorkoutsOnDay(workouts, day)
	require.Len(t, matched, 1)
	assert.Equal(t, "late", matched[0].Name)
}
