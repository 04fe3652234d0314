package payments

import (
	"encoding/json"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"surfshop-backend/config"
)

// Service wraps the Stripe Checkout flows used by the storefront cart.
type Service struct {
	api           *client.API
	currency      string
	webhookSecret string
}

// NewService creates a payments service. With no API key configured the
// service is disabled and the handlers answer 503.
func NewService(cfg config.PaymentsConfig) *Service {
	s := &Service{
		currency:      cfg.Currency,
		webhookSecret: cfg.WebhookSecret,
	}
	if cfg.StripeAPIKey != "" {
		s.api = &client.API{}
		s.api.Init(cfg.StripeAPIKey, nil)
	}
	return s
}

// Enabled reports whether a Stripe API key is configured.
func (s *Service) Enabled() bool {
	return s.api != nil
}

// CheckoutSession is the result of creating a hosted checkout page.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CheckoutStatus is the current state of a checkout session.
type CheckoutStatus struct {
	SessionID     string `json:"session_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// CreateCheckout opens a hosted Stripe Checkout session for the given cart
// total. The amount arrives in whole currency units and is converted to the
// minor unit Stripe expects.
func (s *Service) CreateCheckout(amount float64, successURL, cancelURL string, metadata map[string]string) (*CheckoutSession, error) {
	if s.api == nil {
		return nil, fmt.Errorf("stripe is not configured")
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(s.currency),
				UnitAmount: stripe.Int64(int64(math.Round(amount * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Compra na loja"),
				},
			},
		}},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}

// GetStatus fetches the current state of a checkout session from Stripe.
func (s *Service) GetStatus(sessionID string) (*CheckoutStatus, error) {
	if s.api == nil {
		return nil, fmt.Errorf("stripe is not configured")
	}

	sess, err := s.api.CheckoutSessions.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	return &CheckoutStatus{
		SessionID:     sess.ID,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
	}, nil
}

// WebhookEvent is the subset of a Stripe webhook event the backend records.
type WebhookEvent struct {
	SessionID     string
	PaymentStatus string
	EventType     string
}

// ParseWebhook verifies the webhook signature and extracts the checkout
// session update, if the event carries one.
func (s *Service) ParseWebhook(payload []byte, sigHeader string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}
	if sess.ID == "" {
		return nil, fmt.Errorf("webhook event %s carries no checkout session", event.Type)
	}

	return &WebhookEvent{
		SessionID:     sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
		EventType:     string(event.Type),
	}, nil
}
