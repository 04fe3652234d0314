package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetWeather handles GET /api/weather.
func (h *Handler) GetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.forecast.Weather(c.Request.Context()))
}

// GetWaves handles GET /api/waves.
func (h *Handler) GetWaves(c *gin.Context) {
	c.JSON(http.StatusOK, h.forecast.Waves())
}

// GetTides handles GET /api/tides.
func (h *Handler) GetTides(c *gin.Context) {
	c.JSON(http.StatusOK, h.forecast.Tides(c.Request.Context()))
}

// GetNews handles GET /api/news.
func (h *Handler) GetNews(c *gin.Context) {
	news, err := h.forecast.News(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, news)
}
