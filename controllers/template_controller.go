package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
	"github.com/jonathanRossato/treino-app/services"
)

type TemplateController struct {
	Svc *services.TemplateService
}

func NewTemplateController(svc *services.TemplateService) *TemplateController {
	return &TemplateController{Svc: svc}
}

func (h *TemplateController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	templates, err := h.Svc.List(userID)
	if err != nil {
		log.WithError(err).Warn("listing templates failed, returning empty result")
		c.JSON(http.StatusOK, []models.WorkoutTemplate{})
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateController) GetByID(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	template, err := h.Svc.GetByID(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *TemplateController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Svc.Create(userID, input)
	if err != nil {
		log.WithError(err).Error("creating template failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save template, please try again"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "success": true})
}

func (h *TemplateController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Svc.Update(userID, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not update template, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *TemplateController) Delete(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not delete template, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
