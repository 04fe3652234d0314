package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v82"

	"surfshop-backend/config"
)

const testWebhookSecret = "whsec_test"

// signPayload builds a Stripe-Signature header the way Stripe does: a
// timestamp and an HMAC-SHA256 of "<timestamp>.<payload>".
func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestNewService_DisabledWithoutKey(t *testing.T) {
	s := NewService(config.PaymentsConfig{Currency: "brl"})
	assert.False(t, s.Enabled())

	_, err := s.CreateCheckout(100, "http://localhost/success", "http://localhost/cancel", nil)
	assert.Error(t, err)

	_, err = s.GetStatus("cs_test_1")
	assert.Error(t, err)
}

func TestParseWebhook(t *testing.T) {
	s := NewService(config.PaymentsConfig{Currency: "brl", WebhookSecret: testWebhookSecret})

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_1", "payment_status": "paid"}}
	}`, stripe.APIVersion))

	event, err := s.ParseWebhook(payload, signPayload(payload, testWebhookSecret))
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", event.SessionID)
	assert.Equal(t, "paid", event.PaymentStatus)
	assert.Equal(t, "checkout.session.completed", event.EventType)
}

func TestParseWebhook_BadSignature(t *testing.T) {
	s := NewService(config.PaymentsConfig{Currency: "brl", WebhookSecret: testWebhookSecret})

	payload := []byte(fmt.Sprintf(`{"id": "evt_1", "api_version": %q, "type": "checkout.session.completed", "data": {"object": {"id": "cs_test_1"}}}`, stripe.APIVersion))

	_, err := s.ParseWebhook(payload, signPayload(payload, "whsec_other"))
	assert.Error(t, err)
}

func TestParseWebhook_NoSessionInEvent(t *testing.T) {
	s := NewService(config.PaymentsConfig{Currency: "brl", WebhookSecret: testWebhookSecret})

	payload := []byte(fmt.Sprintf(`{"id": "evt_2", "api_version": %q, "type": "payment_intent.created", "data": {"object": {}}}`, stripe.APIVersion))

	_, err := s.ParseWebhook(payload, signPayload(payload, testWebhookSecret))
	assert.Error(t, err)
}
