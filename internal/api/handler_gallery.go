package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"surfshop-backend/internal/model"
)

type galleryImageRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
}

// GetGallery handles the GET /api/gallery request.
func (h *Handler) GetGallery(c *gin.Context) {
	var images []model.GalleryImage
	if err := h.store.DB().Order("position").Find(&images).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve gallery"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// CreateGalleryImage handles the POST /api/gallery request.
func (h *Handler) CreateGalleryImage(c *gin.Context) {
	var req galleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := model.GalleryImage{
		ID:        uuid.NewString(),
		ImageURL:  req.ImageURL,
		Title:     req.Title,
		Position:  req.Order,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.DB().Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, image)
}

// UpdateGalleryImage handles the PUT /api/gallery/:id request.
func (h *Handler) UpdateGalleryImage(c *gin.Context) {
	var req galleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.store.DB().Model(&model.GalleryImage{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{
			"image_url": req.ImageURL,
			"title":     req.Title,
			"position":  req.Order,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteGalleryImage handles the DELETE /api/gallery/:id request.
func (h *Handler) DeleteGalleryImage(c *gin.Context) {
	res := h.store.DB().Delete(&model.GalleryImage{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
