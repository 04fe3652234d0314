package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"surfshop-backend/internal/model"
)

type boardRequest struct {
	Name       string  `json:"name" binding:"required"`
	HourlyRate float64 `json:"hourly_rate" binding:"min=0"`
	ImageURL   string  `json:"image_url"`
}

// GetSurfboards handles the GET /api/surfboards request.
func GetSurfboards(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var boards []model.Surfboard
		if err := db.Order("created_at").Find(&boards).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve surfboards"})
			return
		}
		c.JSON(http.StatusOK, boards)
	}
}

// CreateSurfboard handles the POST /api/surfboards request.
func CreateSurfboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req boardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		board := model.Surfboard{
			ID:         uuid.NewString(),
			Name:       req.Name,
			HourlyRate: req.HourlyRate,
			ImageURL:   req.ImageURL,
			Status:     model.BoardAvailable,
			CreatedAt:  time.Now().UTC(),
		}
		if err := db.Create(&board).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, board)
	}
}

// UpdateSurfboard handles the PUT /api/surfboards/:id request. Catalog edits
// never touch the status column; only the rental engine transitions it.
func UpdateSurfboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req boardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res := db.Model(&model.Surfboard{}).
			Where("id = ?", c.Param("id")).
			Updates(map[string]any{
				"name":        req.Name,
				"hourly_rate": req.HourlyRate,
				"image_url":   req.ImageURL,
			})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Surfboard not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DeleteSurfboard handles the DELETE /api/surfboards/:id request. A board
// referenced by an open rental cannot be removed.
func DeleteSurfboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var openCount int64
		err := db.Model(&model.Rental{}).
			Where("surfboard_id = ? AND status IN ?", id,
				[]model.RentalStatus{model.RentalActive, model.RentalPaused}).
			Count(&openCount).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if openCount > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Surfboard has an open rental"})
			return
		}

		res := db.Delete(&model.Surfboard{}, "id = ?", id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Surfboard not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
