package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"surfshop-backend/internal/model"
)

// ErrBoardUnavailable is returned by ReserveBoard when the board exists but
// is not in the available state.
var ErrBoardUnavailable = errors.New("surfboard is not available")

// Store defines the persistence operations used by the rental engine. The
// plain CRUD endpoints (catalog, gallery, settings, ...) go through DB()
// directly; the engine's operations are kept behind this interface so their
// conditional-update semantics have exactly one implementation.
type Store interface {
	DB() *gorm.DB

	// Availability gate.
	ReserveBoard(ctx context.Context, id string) (*model.Surfboard, error)
	SetBoardStatus(ctx context.Context, id string, status model.BoardStatus) error

	// Rental sessions.
	CreateRental(ctx context.Context, r *model.Rental) error
	GetRental(ctx context.Context, id string) (*model.Rental, error)
	PauseRental(ctx context.Context, id string, at time.Time) (bool, error)
	ResumeRental(ctx context.Context, id string, totalPaused float64) (bool, error)
	CompleteRental(ctx context.Context, id string, from model.RentalStatus, at time.Time, amount float64) (bool, error)
	ListOpenRentals(ctx context.Context) ([]model.Rental, error)
	ListCompletedRentals(ctx context.Context, day *time.Time) ([]model.Rental, error)
	ListAlertCandidates(ctx context.Context) ([]model.Rental, error)
	MarkNotified(ctx context.Context, id string) (bool, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for the plain record-store handlers.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}
