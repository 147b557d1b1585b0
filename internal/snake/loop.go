package snake

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Scheduler is a periodic trigger source. The engine makes no assumption
// about the clock behind it.
type Scheduler interface {
	// C delivers one value per period.
	C() <-chan time.Time
	// Stop releases the scheduler. No further values are delivered.
	Stop()
}

// ticker adapts time.Ticker to Scheduler.
type ticker struct {
	t *time.Ticker
}

// NewTicker returns a wall-clock scheduler firing every d.
// d <= 0 selects TickInterval.
func NewTicker(d time.Duration) Scheduler {
	if d <= 0 {
		d = TickInterval
	}
	return &ticker{t: time.NewTicker(d)}
}

func (t *ticker) C() <-chan time.Time { return t.t.C }
func (t *ticker) Stop()               { t.t.Stop() }

// Loop drives a Store from a Scheduler.
type Loop struct {
	store  *Store
	sched  Scheduler
	logger *log.Logger
}

// NewLoop creates a loop ticking store on every scheduler period.
func NewLoop(store *Store, sched Scheduler, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		store:  store,
		sched:  sched,
		logger: logger,
	}
}

// Run ticks the store until ctx is done, then stops the scheduler.
// It always returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	defer l.sched.Stop()

	l.logger.Debug("loop started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-l.sched.C():
			// A tick that races with cancellation is dropped
			if ctx.Err() != nil {
				continue
			}
			l.store.Tick()
		}
	}
}
