package model

import "time"

// RentalStatus is the lifecycle status of a rental session.
type RentalStatus string

const (
	RentalActive    RentalStatus = "active"
	RentalPaused    RentalStatus = "paused"
	RentalCompleted RentalStatus = "completed"
)

// Rental represents one checkout-to-return session for a single board and
// renter. SurfboardName and HourlyRate are snapshots captured at start time;
// later catalog edits never change a running rental's billing basis.
//
// Invariants: PauseTime is set iff Status is paused. TotalPausedDuration is
// cumulative minutes and only grows, by one completed pause interval at a
// time, applied at resume. FinalAmount is written once, at completion.
type Rental struct {
	ID                  string       `gorm:"primaryKey;size:36" json:"id"`
	SurfboardID         string       `gorm:"size:36;index;not null" json:"surfboard_id"`
	SurfboardName       string       `gorm:"size:256;not null" json:"surfboard_name"`
	RenterName          string       `gorm:"size:256;not null" json:"renter_name"`
	EstimatedTime       int          `gorm:"not null" json:"estimated_time"` // minutes
	HourlyRate          float64      `gorm:"not null" json:"hourly_rate"`
	StartTime           time.Time    `gorm:"index;not null" json:"start_time"`
	EndTime             *time.Time   `json:"end_time"`
	PauseTime           *time.Time   `json:"pause_time"`
	TotalPausedDuration float64      `gorm:"not null;default:0" json:"total_paused_duration"` // minutes
	Status              RentalStatus `gorm:"size:16;index;not null" json:"status"`
	FinalAmount         *float64     `json:"final_amount"`
	NotificationSent    bool         `gorm:"not null;default:false" json:"notification_sent"`
}
