package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jonathanRossato/treino-app/models"
	"github.com/jonathanRossato/treino-app/services"
	"github.com/jonathanRossato/treino-app/stats"
)

// StatsController exposes the derived metrics. It only reads: the workout
// list is fetched once per request and everything else is computed in memory
// by the stats package.
type StatsController struct {
	Workouts *services.WorkoutService
}

func NewStatsController(workouts *services.WorkoutService) *StatsController {
	return &StatsController{Workouts: workouts}
}

// workoutsOrEmpty fetches the caller's workouts, degrading to an empty list
// when storage is unreachable. The stats functions all have defined
// zero-states, so the dashboards still render.
func (h *StatsController) workoutsOrEmpty(c *gin.Context) ([]models.Workout, bool) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil, false
	}

	workouts, err := h.Workouts.List(userID)
	if err != nil {
		log.WithError(err).Warn("listing workouts for stats failed, computing over empty set")
		return []models.Workout{}, true
	}
	return workouts, true
}

func (h *StatsController) Weekly(c *gin.Context) {
	workouts, ok := h.workoutsOrEmpty(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stats.ComputeWeekly(workouts, time.Now()))
}

func (h *StatsController) Records(c *gin.Context) {
	workouts, ok := h.workoutsOrEmpty(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stats.SummarizeRecords(stats.PersonalRecords(workouts)))
}

func (h *StatsController) Calendar(c *gin.Context) {
	workouts, ok := h.workoutsOrEmpty(c)
	if !ok {
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  stats.MonthGrid(year, time.Month(month), workouts, now.Location()),
	})
}

// CalendarDay returns the workouts of one calendar day, exact y/m/d match.
func (h *StatsController) CalendarDay(c *gin.Context) {
	workouts, ok := h.workoutsOrEmpty(c)
	if !ok {
		return
	}

	day, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Now().Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	c.JSON(http.StatusOK, stats.WorkoutsOnDay(workouts, day))
}

func (h *StatsController) Progress(c *gin.Context) {
	workouts, ok := h.workoutsOrEmpty(c)
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}
	exercise := c.DefaultQuery("exercise", stats.AllExercises)

	c.JSON(http.StatusOK, stats.ComputeProgress(workouts, days, exercise, time.Now()))
}
