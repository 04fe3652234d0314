package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"surfshop-backend/config"
	"surfshop-backend/internal/forecast"
	"surfshop-backend/internal/payments"
	"surfshop-backend/internal/rental"
	"surfshop-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	engine   *rental.Engine
	forecast *forecast.Service
	payments *payments.Service
	webpush  *webpush.Options
	cfg      *config.Config
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, engine *rental.Engine, fc *forecast.Service, pay *payments.Service, webpushOptions *webpush.Options, cfg *config.Config) *Handler {
	return &Handler{
		store:    s,
		engine:   engine,
		forecast: fc,
		payments: pay,
		webpush:  webpushOptions,
		cfg:      cfg,
	}
}

// rentalError translates engine errors into distinct machine-readable HTTP
// responses. Nothing is downgraded to a generic failure.
func rentalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rental.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "not_found"})
	case errors.Is(err, rental.ErrNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "conflict"})
	case errors.Is(err, rental.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "invalid_transition"})
	case errors.Is(err, rental.ErrInvalidEstimate), errors.Is(err, rental.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "bad_request"})
	case errors.Is(err, rental.ErrInconsistentState):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": "state_inconsistent"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": "internal"})
	}
}
