package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jonathanRossato/treino-app/models"
	"github.com/jonathanRossato/treino-app/services"
	"github.com/jonathanRossato/treino-app/utils"
)

type UserExerciseController struct {
	Svc *services.UserExerciseService
}

func NewUserExerciseController(svc *services.UserExerciseService) *UserExerciseController {
	return &UserExerciseController{Svc: svc}
}

// uploadMedia pushes the data-URL image to S3 keyed under the owner and
// returns the resulting URL and media type. Nil input means no change.
func uploadMedia(c *gin.Context, userID uint, imageData *string) (*string, *models.MediaType, error) {
	if imageData == nil || *imageData == "" {
		return nil, nil, nil
	}

	data, ext, contentType, err := utils.DecodeImageDataURL(*imageData)
	if err != nil {
		return nil, nil, err
	}

	key := fmt.Sprintf("exercises/%d/%d.%s", userID, time.Now().UnixMilli(), ext)
	url, err := utils.UploadToS3(c.Request.Context(), key, data, contentType)
	if err != nil {
		return nil, nil, err
	}

	mediaType := models.MediaTypeImage
	if ext == "gif" {
		mediaType = models.MediaTypeGif
	}
	return &url, &mediaType, nil
}

func (h *UserExerciseController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	exercises, err := h.Svc.List(userID)
	if err != nil {
		log.WithError(err).Warn("listing custom exercises failed, returning empty result")
		c.JSON(http.StatusOK, []models.UserCustomExercise{})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *UserExerciseController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.UserExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Difficulty != nil && !input.Difficulty.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be iniciante, intermediario or avancado"})
		return
	}

	mediaURL, mediaType, err := uploadMedia(c, userID, input.ImageData)
	if err != nil {
		log.WithError(err).Error("exercise image upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed, please try again"})
		return
	}

	exercise := &models.UserCustomExercise{
		UserID:      userID,
		Name:        input.Name,
		MuscleGroup: input.MuscleGroup,
		Equipment:   input.Equipment,
		MediaURL:    mediaURL,
		MediaType:   mediaType,
		Description: input.Description,
	}
	if input.Difficulty != nil {
		exercise.Difficulty = *input.Difficulty
	}

	id, err := h.Svc.Create(exercise)
	if err != nil {
		log.WithError(err).Error("creating custom exercise failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save exercise, please try again"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "success": true})
}

func (h *UserExerciseController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.UserExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Difficulty != nil && !input.Difficulty.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be iniciante, intermediario or avancado"})
		return
	}

	mediaURL, mediaType, err := uploadMedia(c, userID, input.ImageData)
	if err != nil {
		log.WithError(err).Error("exercise image upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed, please try again"})
		return
	}

	err = h.Svc.Update(userID, id, input, mediaURL, mediaType)
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

func (h *UserExerciseController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(userID, id); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not delete exercise, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
