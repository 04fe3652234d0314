package alerts

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"surfshop-backend/internal/notification"
	"surfshop-backend/internal/rental"
)

// sweepTimeout bounds one alert sweep.
const sweepTimeout = 30 * time.Second

// Poller periodically runs the rental engine's alert sweep and hands the
// emitted alerts to the notification worker pool. Concurrent or overlapping
// sweeps are safe: claiming an alert is a conditional write in the engine.
type Poller struct {
	cron   *cron.Cron
	engine *rental.Engine
	pool   *notification.WorkerPool
}

// NewPoller creates a poller running on the given cron schedule
// (e.g. "@every 30s").
func NewPoller(engine *rental.Engine, pool *notification.WorkerPool, schedule string) (*Poller, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	p := &Poller{
		cron:   c,
		engine: engine,
		pool:   pool,
	}

	if _, err := c.AddFunc(schedule, p.sweep); err != nil {
		return nil, err
	}
	return p, nil
}

// Start begins the scheduled sweeps.
func (p *Poller) Start() {
	log.Println("Starting rental alert poller...")
	p.cron.Start()
}

// Stop halts scheduling and waits for a running sweep to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
}

func (p *Poller) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	alerts, err := p.engine.CheckAlerts(ctx)
	if err != nil {
		log.Printf("Alert sweep failed: %v", err)
		return
	}
	for _, alert := range alerts {
		p.pool.Dispatch(alert)
	}
}
