package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"surfshop-backend/internal/rental"
)

type startRentalRequest struct {
	SurfboardID   string `json:"surfboard_id" binding:"required"`
	RenterName    string `json:"renter_name" binding:"required"`
	EstimatedTime int    `json:"estimated_time" binding:"required"`
}

// StartRental handles POST /api/rentals/start.
func (h *Handler) StartRental(c *gin.Context) {
	var req startRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := h.engine.Start(c.Request.Context(), req.SurfboardID, req.RenterName, req.EstimatedTime)
	if err != nil {
		rentalError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

type updateRentalRequest struct {
	Action      string   `json:"action" binding:"required,oneof=pause resume complete"`
	FinalAmount *float64 `json:"final_amount"`
}

// UpdateRental handles PUT /api/rentals/:id with an action of pause, resume
// or complete.
func (h *Handler) UpdateRental(c *gin.Context) {
	var req updateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()

	switch req.Action {
	case "pause":
		if err := h.engine.Pause(ctx, id); err != nil {
			rentalError(c, err)
			return
		}
	case "resume":
		if err := h.engine.Resume(ctx, id); err != nil {
			rentalError(c, err)
			return
		}
	case "complete":
		if req.FinalAmount == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "final_amount is required to complete a rental"})
			return
		}
		r, err := h.engine.Complete(ctx, id, *req.FinalAmount)
		if err != nil {
			rentalError(c, err)
			return
		}
		// The full record comes back so the client can render a receipt.
		c.JSON(http.StatusOK, gin.H{"success": true, "rental": r})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetActiveRentals handles GET /api/rentals/active.
func (h *Handler) GetActiveRentals(c *gin.Context) {
	rentals, err := h.engine.Active(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// GetRentalHistory handles GET /api/rentals/history with an optional
// ?date=YYYY-MM-DD filter on the start day.
func (h *Handler) GetRentalHistory(c *gin.Context) {
	var day *time.Time
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateParam, time.UTC)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day = &parsed
	}

	rentals, err := h.engine.History(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// GetRental handles GET /api/rentals/:id.
func (h *Handler) GetRental(c *gin.Context) {
	r, err := h.engine.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		rentalError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// CheckRentalAlerts handles GET /api/rentals/check-alerts, running the same
// sweep as the background poller and returning the freshly fired alerts.
func (h *Handler) CheckRentalAlerts(c *gin.Context) {
	alerts, err := h.engine.CheckAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if alerts == nil {
		alerts = []rental.Alert{}
	}
	c.JSON(http.StatusOK, alerts)
}
