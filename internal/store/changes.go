package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-quest-client/internal/logger"
)

type changeKey struct {
	userID int64
	table  string
}

// changeBroker fans out "rows changed" signals to live observers. Signals
// are coalesced: an observer that is busy re-reading sees at most one
// pending signal.
type changeBroker struct {
	mu   sync.Mutex
	subs map[changeKey]map[chan struct{}]struct{}
}

func newChangeBroker() *changeBroker {
	return &changeBroker{subs: make(map[changeKey]map[chan struct{}]struct{})}
}

func (b *changeBroker) subscribe(key changeKey) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	if b.subs[key] == nil {
		b.subs[key] = make(map[chan struct{}]struct{})
	}
	b.subs[key][ch] = struct{}{}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		delete(b.subs[key], ch)
		if len(b.subs[key]) == 0 {
			delete(b.subs, key)
		}
		b.mu.Unlock()
	}
}

func (b *changeBroker) publish(keys ...changeKey) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, key := range keys {
		for ch := range b.subs[key] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

// observe emits load() once immediately and again after every change of key,
// until ctx is done. Failed reads are logged and skipped; the stream keeps
// going. Calling observe again starts a fresh stream.
func observe[T any](ctx context.Context, b *changeBroker, key changeKey, load func(context.Context) (T, error), log *logger.Logger) <-chan T {
	out := make(chan T)
	signals, unsubscribe := b.subscribe(key)

	go func() {
		defer close(out)
		defer unsubscribe()

		emit := func() bool {
			value, err := load(ctx)
			if err != nil {
				log.Warn().Err(err).
					Str("func", "store.observe").
					Int64("user_id", key.userID).
					Str("table", key.table).
					Msg("failed to re-read observed rows")
				return ctx.Err() == nil
			}
			select {
			case out <- value:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				if !emit() {
					return
				}
			}
		}
	}()

	return out
}
