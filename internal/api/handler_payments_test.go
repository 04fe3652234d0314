package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Without a Stripe key the payment endpoints answer 503 instead of failing
// deep inside a Stripe call.
func TestPayments_DisabledWithoutAPIKey(t *testing.T) {
	router, _, _ := newTestAPI(t)

	w := doJSON(t, router, http.MethodPost, "/api/payments/checkout", gin.H{
		"amount": 150.0,
	}, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/payments/status/cs_test_123", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
