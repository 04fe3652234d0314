package internal

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"surfshop-backend/internal/alerts"
	"surfshop-backend/internal/db"
	"surfshop-backend/internal/model"
	"surfshop-backend/internal/notification"
	"surfshop-backend/internal/rental"
	"surfshop-backend/internal/store"
)

// testClock is a manually advanced clock shared by the whole test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// TestRentalLifecycle walks one rental from checkout to return, with the
// cron poller picking up the overtime alert in between, and verifies the
// database state at each step.
func TestRentalLifecycle(t *testing.T) {
	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := testDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, db.Migrate(testDB))

	// 2. Wire the store, engine and worker pool the way main does, with a
	// fake clock instead of the system one. The pool is not started, so
	// dispatched alerts stay on its channel for the test to read.
	appStore := store.NewGormStore(testDB)
	clock := &testClock{now: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)}
	engine := rental.NewEngine(appStore, clock)
	pool := notification.NewWorkerPool(4, testDB, &webpush.Options{})

	poller, err := alerts.NewPoller(engine, pool, "@every 1s")
	require.NoError(t, err)

	// 3. Pre-populate the catalog.
	board := model.Surfboard{
		ID: "board-1", Name: "Longboard 9'2", HourlyRate: 25.0,
		Status: model.BoardAvailable, CreatedAt: clock.Now(),
	}
	require.NoError(t, testDB.Create(&board).Error)

	var rentalID string

	t.Run("checkout reserves the board", func(t *testing.T) {
		r, err := engine.Start(context.Background(), "board-1", "Ana", 60)
		require.NoError(t, err)
		rentalID = r.ID

		var got model.Surfboard
		require.NoError(t, testDB.First(&got, "id = ?", "board-1").Error)
		assert.Equal(t, model.BoardRented, got.Status)

		// The board cannot be handed out twice.
		_, err = engine.Start(context.Background(), "board-1", "Bia", 30)
		assert.ErrorIs(t, err, rental.ErrNotAvailable)
	})

	t.Run("poller pushes the overtime alert", func(t *testing.T) {
		clock.Advance(50 * time.Minute)

		poller.Start()
		defer poller.Stop()

		select {
		case alert := <-pool.Jobs():
			assert.Equal(t, rentalID, alert.RentalID)
			assert.Equal(t, "Longboard 9'2", alert.SurfboardName)
			assert.Equal(t, "Ana", alert.RenterName)
			assert.Equal(t, 60, alert.Estimated)
			assert.InDelta(t, 50.0, alert.Elapsed, 0.001)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for the poller to dispatch the alert")
		}

		var got model.Rental
		require.NoError(t, testDB.First(&got, "id = ?", rentalID).Error)
		assert.True(t, got.NotificationSent)

		// Further sweeps must not re-dispatch the claimed alert.
		time.Sleep(1500 * time.Millisecond)
		select {
		case alert := <-pool.Jobs():
			t.Fatalf("unexpected duplicate alert for rental %s", alert.RentalID)
		default:
		}
	})

	t.Run("return frees the board and records the charge", func(t *testing.T) {
		clock.Advance(10 * time.Minute)
		done, err := engine.Complete(context.Background(), rentalID, 25.0)
		require.NoError(t, err)
		assert.Equal(t, model.RentalCompleted, done.Status)

		var got model.Surfboard
		require.NoError(t, testDB.First(&got, "id = ?", "board-1").Error)
		assert.Equal(t, model.BoardAvailable, got.Status)

		history, err := engine.History(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.NotNil(t, history[0].FinalAmount)
		assert.Equal(t, 25.0, *history[0].FinalAmount)

		// The freed board can be rented again.
		_, err = engine.Start(context.Background(), "board-1", "Caio", 30)
		assert.NoError(t, err)
	})
}

func TestNewPoller_RejectsBadSchedule(t *testing.T) {
	_, err := alerts.NewPoller(nil, nil, "not a schedule")
	assert.Error(t, err)
}
