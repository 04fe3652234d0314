package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"surfshop-backend/internal/model"
)

// GetSettings handles the GET /api/settings request, lazily seeding the
// singleton row on first read.
func (h *Handler) GetSettings(c *gin.Context) {
	var settings model.Settings
	err := h.store.DB().First(&settings, "id = ?", model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.Settings{ID: model.SettingsID, UpdatedAt: time.Now().UTC()}
		if err := h.store.DB().Create(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

type settingsRequest struct {
	LogoURL         string `json:"logo_url"`
	PixQRURL        string `json:"pix_qr_url"`
	InstagramHandle string `json:"instagram_handle"`
}

// UpdateSettings handles the PUT /api/settings request as an upsert.
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := model.Settings{
		ID:              model.SettingsID,
		LogoURL:         req.LogoURL,
		PixQRURL:        req.PixQRURL,
		InstagramHandle: req.InstagramHandle,
		UpdatedAt:       time.Now().UTC(),
	}

	err := h.store.DB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"logo_url", "pix_qr_url", "instagram_handle", "updated_at"}),
	}).Create(&settings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
