// Package workers provides the background jobs of the client: periodic
// tickers and an aggregate that starts and stops them together.
package workers

import "context"

// Worker is the interface implemented by every background job.
//
// Start must not block; the job runs in its own goroutine until ctx is done
// or Stop is called. Stop blocks until the goroutine has exited and is safe
// to call on a worker that never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
