package controllers

import (
	"encoding/base64"
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

type PhotoController struct {
	Svc *services.PhotoService
}

func NewPhotoController(svc *services.PhotoService) *PhotoController {
	return &PhotoController{Svc: svc}
}

type uploadPhotoInput struct {
	FileData    string      `json:"fileData" binding:"required"` // base64 payload
	FileName    string      `json:"fileName" binding:"required"`
	ContentType string      `json:"contentType" binding:"required"`
	Pose        models.Pose `json:"pose" binding:"required"`
	Week        int         `json:"week" binding:"required,min=1"`
	Date        time.Time   `json:"date" binding:"required"`
	Notes       *string     `json:"notes"`

	Weight     *int `json:"weight"`
	Chest      *int `json:"chest"`
	Waist      *int `json:"waist"`
	Hips       *int `json:"hips"`
	LeftArm    *int `json:"leftArm"`
	RightArm   *int `json:"rightArm"`
	LeftThigh  *int `json:"leftThigh"`
	RightThigh *int `json:"rightThigh"`
	LeftCalf   *int `json:"leftCalf"`
	RightCalf  *int `json:"rightCalf"`
}

func (h *PhotoController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	photos, err := h.Svc.List(userID)
	if err != nil {
		log.WithError(err).Warn("listing photos failed, returning empty result")
		c.JSON(http.StatusOK, []models.ProgressPhoto{})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// Upload decodes the payload, writes it to object storage and only then
// creates the metadata row. A storage failure aborts before any row exists.
func (h *PhotoController) Upload(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input uploadPhotoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Pose.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pose must be front, back or side"})
		return
	}

	data, err := base64.StdEncoding.DecodeString(input.FileData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileData is not valid base64"})
		return
	}

	fileKey := fmt.Sprintf("photos/%d/%d-%s", userID, time.Now().UnixMilli(), input.FileName)
	url, err := utils.UploadToS3(c.Request.Context(), fileKey, data, input.ContentType)
	if err != nil {
		log.WithError(err).Error("photo upload to S3 failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed, please try again"})
		return
	}

	photo := &models.ProgressPhoto{
		UserID:     userID,
		FileKey:    fileKey,
		URL:        url,
		Pose:       input.Pose,
		Week:       input.Week,
		Date:       input.Date,
		Notes:      input.Notes,
		Weight:     input.Weight,
		Chest:      input.Chest,
		Waist:      input.Waist,
		Hips:       input.Hips,
		LeftArm:    input.LeftArm,
		RightArm:   input.RightArm,
		LeftThigh:  input.LeftThigh,
		RightThigh: input.RightThigh,
		LeftCalf:   input.LeftCalf,
		RightCalf:  input.RightCalf,
	}
	if err := h.Svc.Create(photo); err != nil {
		log.WithError(err).Error("saving photo metadata failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save photo, please try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
}

// Delete removes the stored object along with the row.
func (h *PhotoController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	photo, err := h.Svc.GetByID(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not delete photo, please try again"})
		return
	}

	if err := utils.DeleteFromS3(c.Request.Context(), photo.FileKey); err != nil {
		// The row stays so the object is not orphaned silently.
		log.WithError(err).WithField("fileKey", photo.FileKey).Error("deleting photo object failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not delete photo, please try again"})
		return
	}
	if err := h.Svc.Delete(userID, id); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not delete photo, please try again"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
