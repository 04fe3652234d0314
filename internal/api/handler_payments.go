package api

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"surfshop-backend/internal/model"
)

type checkoutRequest struct {
	Amount    float64           `json:"amount" binding:"required,gt=0"`
	OriginURL string            `json:"origin_url"`
	Metadata  map[string]string `json:"metadata"`
}

// CreateCheckout handles POST /api/payments/checkout.
func (h *Handler) CreateCheckout(c *gin.Context) {
	if !h.payments.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not configured"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	origin := req.OriginURL
	if origin == "" {
		origin = h.cfg.Server.BaseURL
	}
	successURL := origin + "/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := origin + "/carrinho"

	session, err := h.payments.CreateCheckout(req.Amount, successURL, cancelURL, req.Metadata)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	txn := model.PaymentTransaction{
		ID:            uuid.NewString(),
		SessionID:     session.SessionID,
		Amount:        req.Amount,
		Currency:      h.cfg.Payments.Currency,
		PaymentStatus: "pending",
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.store.DB().Create(&txn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": session.URL, "session_id": session.SessionID})
}

// GetPaymentStatus handles GET /api/payments/status/:session_id, refreshing
// the stored transaction from Stripe.
func (h *Handler) GetPaymentStatus(c *gin.Context) {
	if !h.payments.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "payments are not configured"})
		return
	}

	sessionID := c.Param("session_id")
	status, err := h.payments.GetStatus(sessionID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	err = h.store.DB().Model(&model.PaymentTransaction{}).
		Where("session_id = ? AND payment_status <> ?", sessionID, status.PaymentStatus).
		Update("payment_status", status.PaymentStatus).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// StripeWebhook handles POST /api/webhook/stripe.
func (h *Handler) StripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	event, err := h.payments.ParseWebhook(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.store.DB().Model(&model.PaymentTransaction{}).
		Where("session_id = ?", event.SessionID).
		Updates(map[string]any{
			"payment_status": event.PaymentStatus,
			"event_type":     event.EventType,
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
