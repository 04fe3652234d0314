package rental

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"surfshop-backend/internal/model"
	"surfshop-backend/internal/store"
)

// alertThreshold is the share of the estimated duration after which a
// rental's one-time alert is due.
const alertThreshold = 0.8

// Alert is the record emitted when an active rental crosses the alert
// threshold. Field names match the storefront's poll response.
type Alert struct {
	RentalID      string  `json:"rental_id"`
	SurfboardName string  `json:"surfboard_name"`
	RenterName    string  `json:"renter_name"`
	Elapsed       float64 `json:"elapsed"`   // minutes, paused time excluded
	Estimated     int     `json:"estimated"` // minutes
}

// Engine owns the rental session state machine and its elapsed-time
// accounting. Surfboard status is a derived shadow of session status: the
// engine flips it through the store's gate calls in lockstep with every
// session transition.
type Engine struct {
	store store.Store
	clock Clock
}

// NewEngine creates a rental engine on top of the given store and clock.
func NewEngine(s store.Store, clock Clock) *Engine {
	return &Engine{store: s, clock: clock}
}

// Start reserves the surfboard and opens a new active session, snapshotting
// the board's name and hourly rate so later catalog edits don't affect a
// running rental.
func (e *Engine) Start(ctx context.Context, boardID, renterName string, estimatedMinutes int) (*model.Rental, error) {
	if estimatedMinutes <= 0 {
		return nil, ErrInvalidEstimate
	}

	board, err := e.store.ReserveBoard(ctx, boardID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		case errors.Is(err, store.ErrBoardUnavailable):
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	r := &model.Rental{
		ID:            uuid.NewString(),
		SurfboardID:   board.ID,
		SurfboardName: board.Name,
		RenterName:    renterName,
		EstimatedTime: estimatedMinutes,
		HourlyRate:    board.HourlyRate,
		StartTime:     e.clock.Now(),
		Status:        model.RentalActive,
	}

	if err := e.store.CreateRental(ctx, r); err != nil {
		// Hand the board back so a failed insert doesn't strand it in rented.
		if relErr := e.store.SetBoardStatus(ctx, board.ID, model.BoardAvailable); relErr != nil {
			return nil, fmt.Errorf("create rental: %w (release surfboard: %v)", err, relErr)
		}
		return nil, err
	}
	return r, nil
}

// Pause moves an active session to paused and records the pause instant.
// A session that is already paused or completed is rejected, not treated as
// a no-op: callers must track state.
func (e *Engine) Pause(ctx context.Context, rentalID string) error {
	ok, err := e.store.PauseRental(ctx, rentalID, e.clock.Now())
	if err != nil {
		return err
	}
	if !ok {
		return e.transitionFailure(ctx, rentalID)
	}
	return e.syncBoard(ctx, rentalID, model.BoardPaused)
}

// Resume moves a paused session back to active, folding the completed pause
// interval into the cumulative paused duration and re-arming the alert flag.
func (e *Engine) Resume(ctx context.Context, rentalID string) error {
	r, err := e.get(ctx, rentalID)
	if err != nil {
		return err
	}
	if r.Status != model.RentalPaused {
		return ErrInvalidTransition
	}
	if r.PauseTime == nil {
		return fmt.Errorf("%w: rental %s is paused but has no pause timestamp", ErrInconsistentState, rentalID)
	}

	elapsedPause := e.clock.Now().Sub(*r.PauseTime).Minutes()
	ok, err := e.store.ResumeRental(ctx, rentalID, r.TotalPausedDuration+elapsedPause)
	if err != nil {
		return err
	}
	if !ok {
		// Status changed between our read and the conditional write.
		return e.transitionFailure(ctx, rentalID)
	}
	return e.syncBoard(ctx, rentalID, model.BoardRented)
}

// Complete finishes a session from active or paused, recording the end time
// and the caller-supplied final amount (manual override is intentional; the
// engine does not recompute it). Returns the full updated session record.
func (e *Engine) Complete(ctx context.Context, rentalID string, finalAmount float64) (*model.Rental, error) {
	if finalAmount < 0 {
		return nil, ErrInvalidAmount
	}

	r, err := e.get(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if r.Status != model.RentalActive && r.Status != model.RentalPaused {
		return nil, ErrInvalidTransition
	}

	ok, err := e.store.CompleteRental(ctx, rentalID, r.Status, e.clock.Now(), finalAmount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, e.transitionFailure(ctx, rentalID)
	}
	if err := e.syncBoard(ctx, rentalID, model.BoardAvailable); err != nil {
		return nil, err
	}
	return e.get(ctx, rentalID)
}

// CheckAlerts sweeps the active, not-yet-notified sessions and emits an
// alert for each one whose elapsed time (paused intervals excluded) has
// reached the threshold share of its estimate. Marking the flag is a
// conditional write, so an alert fires at most once per active period even
// when sweeps run concurrently; a resume re-arms it.
func (e *Engine) CheckAlerts(ctx context.Context) ([]Alert, error) {
	now := e.clock.Now()
	candidates, err := e.store.ListAlertCandidates(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []Alert
	for _, r := range candidates {
		elapsed := now.Sub(r.StartTime).Minutes() - r.TotalPausedDuration
		if elapsed < alertThreshold*float64(r.EstimatedTime) {
			continue
		}

		claimed, err := e.store.MarkNotified(ctx, r.ID)
		if err != nil {
			return alerts, err
		}
		if !claimed {
			continue
		}
		alerts = append(alerts, Alert{
			RentalID:      r.ID,
			SurfboardName: r.SurfboardName,
			RenterName:    r.RenterName,
			Elapsed:       elapsed,
			Estimated:     r.EstimatedTime,
		})
	}
	return alerts, nil
}

// Active returns all sessions that are active or paused.
func (e *Engine) Active(ctx context.Context) ([]model.Rental, error) {
	return e.store.ListOpenRentals(ctx)
}

// History returns completed sessions, optionally only those started on the
// given calendar day (UTC).
func (e *Engine) History(ctx context.Context, day *time.Time) ([]model.Rental, error) {
	return e.store.ListCompletedRentals(ctx, day)
}

// Get returns a session by id.
func (e *Engine) Get(ctx context.Context, rentalID string) (*model.Rental, error) {
	return e.get(ctx, rentalID)
}

func (e *Engine) get(ctx context.Context, rentalID string) (*model.Rental, error) {
	r, err := e.store.GetRental(ctx, rentalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// transitionFailure distinguishes why a conditional transition matched zero
// rows: the session is gone, or it is not in the required source state.
func (e *Engine) transitionFailure(ctx context.Context, rentalID string) error {
	if _, err := e.get(ctx, rentalID); err != nil {
		return err
	}
	return ErrInvalidTransition
}

// syncBoard flips the board status shadow for the rental's board.
func (e *Engine) syncBoard(ctx context.Context, rentalID string, status model.BoardStatus) error {
	r, err := e.get(ctx, rentalID)
	if err != nil {
		return err
	}
	return e.store.SetBoardStatus(ctx, r.SurfboardID, status)
}
