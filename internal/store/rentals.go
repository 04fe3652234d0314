package store

import (
	"context"
	"fmt"
	"time"

	"surfshop-backend/internal/model"
)

// historyPageSize caps the unfiltered history listing.
const historyPageSize = 100

// CreateRental inserts a new rental session record.
func (s *gormStore) CreateRental(ctx context.Context, r *model.Rental) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create rental: %w", err)
	}
	return nil
}

// GetRental fetches a rental by id. Missing ids surface as
// gorm.ErrRecordNotFound.
func (s *gormStore) GetRental(ctx context.Context, id string) (*model.Rental, error) {
	var r model.Rental
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// PauseRental moves an active rental to paused, recording the pause instant.
// The current status is the write precondition: the update matches zero rows
// if the session is not active anymore, and the caller decides what that
// means after re-reading.
func (s *gormStore) PauseRental(ctx context.Context, id string, at time.Time) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Rental{}).
		Where("id = ? AND status = ?", id, model.RentalActive).
		Updates(map[string]any{
			"status":     model.RentalPaused,
			"pause_time": at,
		})
	if res.Error != nil {
		return false, fmt.Errorf("pause rental %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ResumeRental moves a paused rental back to active, storing the new
// cumulative paused duration, clearing the pause timestamp and re-arming the
// alert flag.
func (s *gormStore) ResumeRental(ctx context.Context, id string, totalPaused float64) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Rental{}).
		Where("id = ? AND status = ?", id, model.RentalPaused).
		Updates(map[string]any{
			"status":                model.RentalActive,
			"pause_time":            nil,
			"total_paused_duration": totalPaused,
			"notification_sent":     false,
		})
	if res.Error != nil {
		return false, fmt.Errorf("resume rental %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// CompleteRental finishes a rental from the given source status. The source
// status is re-checked in the WHERE clause so a concurrent transition since
// the caller's read loses cleanly.
func (s *gormStore) CompleteRental(ctx context.Context, id string, from model.RentalStatus, at time.Time, amount float64) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Rental{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":       model.RentalCompleted,
			"end_time":     at,
			"final_amount": amount,
		})
	if res.Error != nil {
		return false, fmt.Errorf("complete rental %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListOpenRentals returns all sessions that are active or paused.
func (s *gormStore) ListOpenRentals(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	err := s.db.WithContext(ctx).
		Where("status IN ?", []model.RentalStatus{model.RentalActive, model.RentalPaused}).
		Find(&rentals).Error
	if err != nil {
		return nil, fmt.Errorf("list open rentals: %w", err)
	}
	return rentals, nil
}

// ListCompletedRentals returns completed sessions. With a day filter it
// returns the sessions started on that calendar day (UTC); without one it
// returns the most recent page by start time.
func (s *gormStore) ListCompletedRentals(ctx context.Context, day *time.Time) ([]model.Rental, error) {
	q := s.db.WithContext(ctx).
		Where("status = ?", model.RentalCompleted).
		Order("start_time DESC")

	if day != nil {
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("start_time >= ? AND start_time < ?", dayStart, dayStart.Add(24*time.Hour))
	} else {
		q = q.Limit(historyPageSize)
	}

	var rentals []model.Rental
	if err := q.Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("list completed rentals: %w", err)
	}
	return rentals, nil
}

// ListAlertCandidates returns the active sessions whose alert has not fired.
func (s *gormStore) ListAlertCandidates(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	err := s.db.WithContext(ctx).
		Where("status = ? AND notification_sent = ?", model.RentalActive, false).
		Find(&rentals).Error
	if err != nil {
		return nil, fmt.Errorf("list alert candidates: %w", err)
	}
	return rentals, nil
}

// MarkNotified sets the alert flag on an active, not-yet-notified session.
// The conditional write makes concurrent sweeps idempotent: only one of two
// racing sweeps claims the alert.
func (s *gormStore) MarkNotified(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Rental{}).
		Where("id = ? AND status = ? AND notification_sent = ?", id, model.RentalActive, false).
		Update("notification_sent", true)
	if res.Error != nil {
		return false, fmt.Errorf("mark rental %s notified: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
