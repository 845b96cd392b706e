package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jonathanRossato/treino-app/models"
	"github.com/jonathanRossato/treino-app/services"
)

// LibraryController serves the shared exercise catalog. These routes are
// public: the data is global and read-only.
type LibraryController struct {
	Svc *services.LibraryService
}

func NewLibraryController(svc *services.LibraryService) *LibraryController {
	return &LibraryController{Svc: svc}
}

func (h *LibraryController) List(c *gin.Context) {
	exercises, err := h.Svc.ListGlobal()
	if err != nil {
		log.WithError(err).Warn("listing exercise library failed, returning empty result")
		c.JSON(http.StatusOK, []models.LibraryExercise{})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *LibraryController) ListByMuscleGroup(c *gin.Context) {
	muscleGroup := c.Param("muscleGroup")
	if muscleGroup == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "muscle group required"})
		return
	}

	exercises, err := h.Svc.ListByMuscleGroup(muscleGroup)
	if err != nil {
		log.WithError(err).Warn("listing exercise library failed, returning empty result")
		c.JSON(http.StatusOK, []models.LibraryExercise{})
		return
	}
	c.JSON(http.StatusOK, exercises)
}
