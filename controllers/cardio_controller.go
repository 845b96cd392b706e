package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/jonathanRossato/treino-app/models"
	"github.com/jonathanRossato/treino-app/services"
)

type CardioController struct {
	Svc *services.CardioService
}

func NewCardioController(svc *services.CardioService) *CardioController {
	return &CardioController{Svc: svc}
}

func (h *CardioController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sessions, err := h.Svc.List(userID)
	if err != nil {
		log.WithError(err).Warn("listing cardio sessions failed, returning empty result")
		c.JSON(http.StatusOK, []models.CardioSession{})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *CardioController) ListByWorkout(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	workoutID, ok := idParam(c, "workoutId")
	if !ok {
		return
	}

	sessions, err := h.Svc.ListByWorkout(userID, workoutID)
	if err != nil {
		log.WithError(err).Warn("listing cardio sessions failed, returning empty result")
		c.JSON(http.StatusOK, []models.CardioSession{})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
