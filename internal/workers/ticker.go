package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/logger"
)

// DefaultInterval is used when a ticker is created with a non-positive
// interval.
const DefaultInterval = 90 * time.Second

// Ticker calls a job every interval until stopped.
type Ticker struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context)
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTicker creates an idle ticker. The job is not invoked until Start.
func NewTicker(name string, interval time.Duration, job func(ctx context.Context), log *logger.Logger) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{name: name, interval: interval, job: job, logger: log}
}

// Interval reports the effective tick period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start implements [Worker]. It stops any previously running loop, then
// launches a goroutine that calls the job on every tick. The first call
// happens one interval after Start.
func (t *Ticker) Start(ctx context.Context) {
	t.Stop()

	t.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	t.logger.Debug().
		Str("func", "Ticker.Start").
		Str("worker", t.name).
		Dur("interval", t.interval).
		Msg("worker started")

	go func() {
		defer t.wg.Done()
		tick := time.NewTicker(t.interval)
		defer tick.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-tick.C:
				t.job(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the loop and waits for the running
// job, if any, to return.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	t.wg.Wait()

	t.logger.Debug().Str("func", "Ticker.Stop").Str("worker", t.name).Msg("worker stopped")
}
