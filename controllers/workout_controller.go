package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
	"github.com/jonathanRossato/treino-app/services"
)

type WorkoutController struct {
	Svc *services.WorkoutService
}

func NewWorkoutController(svc *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Svc: svc}
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// List degrades to an empty array when storage is unreachable so the client
// can render an empty state; only writes fail loudly.
func (h *WorkoutController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	workouts, err := h.Svc.List(userID)
	if err != nil {
		log.WithError(err).Warn("listing workouts failed, returning empty result")
		c.JSON(http.StatusOK, []models.Workout{})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutController) GetByID(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	workout, err := h.Svc.GetByID(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.CreateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, ex := range input.Exercises {
		if strings.TrimSpace(ex.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "every exercise needs a name"})
			return
		}
	}

	id, err := h.Svc.Create(userID, input)
	if err != nil {
		log.WithError(err).Error("creating workout failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save workout, please try again"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "success": true})
}

func (h *WorkoutController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Svc.Update(userID, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not update workout, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WorkoutController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	err := h.Svc.Delete(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not delete workout, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WorkoutController) ExercisesByWorkout(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	workoutID, ok := idParam(c, "id")
	if !ok {
		return
	}

	exercises, err := h.Svc.ExercisesByWorkout(userID, workoutID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}
	if err != nil {
		log.WithError(err).Warn("listing exercises failed, returning empty result")
		c.JSON(http.StatusOK, []models.Exercise{})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *WorkoutController) UpdateExercise(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Weight != nil && *input.Weight < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight must not be negative"})
		return
	}

	err := h.Svc.UpdateExercise(userID, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exercise not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not update exercise, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
