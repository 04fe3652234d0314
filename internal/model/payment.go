package model

import "time"

// PaymentTransaction records one Stripe checkout session and its last known
// payment status, updated from status polls and webhook events.
type PaymentTransaction struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID     string    `gorm:"uniqueIndex;size:256;not null" json:"session_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Currency      string    `gorm:"size:8;not null" json:"currency"`
	PaymentStatus string    `gorm:"size:32;not null" json:"payment_status"`
	EventType     string    `gorm:"size:64" json:"event_type"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"-"`
}
