package workers

import (
	"context"
	"sync"
)

// Workers starts and stops a group of workers together.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
}

// New groups ws. Nil entries are skipped.
func New(ws ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range ws {
		w.Add(worker)
	}
	return w
}

// Add appends worker to the group. It does not start it.
func (w *Workers) Add(worker Worker) {
	if worker == nil {
		return
	}
	w.mu.Lock()
	w.workers = append(w.workers, worker)
	w.mu.Unlock()
}

// Start starts every worker in the order they were added.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.snapshot() {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	ws := w.snapshot()
	for i := len(ws) - 1; i >= 0; i-- {
		ws[i].Stop()
	}
}

func (w *Workers) snapshot() []Worker {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Worker(nil), w.workers...)
}
