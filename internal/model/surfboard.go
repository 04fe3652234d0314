package model

import "time"

// BoardStatus is the lifecycle status of a surfboard. It shadows the state
// of the rental that currently holds the board: "available" means no open
// rental references it.
type BoardStatus string

const (
	BoardAvailable BoardStatus = "available"
	BoardRented    BoardStatus = "rented"
	BoardPaused    BoardStatus = "paused"
)

// Surfboard represents a rentable board in the shop catalog.
type Surfboard struct {
	ID         string      `gorm:"primaryKey;size:36" json:"id"`
	Name       string      `gorm:"size:256;not null" json:"name"`
	ImageURL   string      `gorm:"size:512" json:"image_url"`
	HourlyRate float64     `gorm:"not null" json:"hourly_rate"`
	Status     BoardStatus `gorm:"size:16;not null;default:'available'" json:"status"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"-"`
}
