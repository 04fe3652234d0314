package store

import (
	"context"
	"fmt"

	"surfshop-backend/internal/model"
)

// ReserveBoard atomically flips an available board to rented and returns it.
// The status check and the write are a single conditional UPDATE, so two
// concurrent reservations on the same board cannot both succeed. Returns
// gorm.ErrRecordNotFound if the board does not exist and ErrBoardUnavailable
// if it exists in any state other than available.
func (s *gormStore) ReserveBoard(ctx context.Context, id string) (*model.Surfboard, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Surfboard{}).
		Where("id = ? AND status = ?", id, model.BoardAvailable).
		Update("status", model.BoardRented)
	if res.Error != nil {
		return nil, fmt.Errorf("reserve surfboard %s: %w", id, res.Error)
	}

	var board model.Surfboard
	if err := s.db.WithContext(ctx).First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return nil, ErrBoardUnavailable
	}
	return &board, nil
}

// SetBoardStatus unconditionally transitions a board's status. This is a
// trusted internal call: the rental engine is responsible for invoking it in
// the correct order relative to its own session transition.
func (s *gormStore) SetBoardStatus(ctx context.Context, id string, status model.BoardStatus) error {
	res := s.db.WithContext(ctx).
		Model(&model.Surfboard{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("set surfboard %s status to %s: %w", id, status, res.Error)
	}
	return nil
}
