package service

import (
	"context"
	"sync"
)

// broadcaster hands the latest value to every subscriber. A slow
// subscriber only ever sees the newest value; intermediate ones are dropped.
type broadcaster[S any] struct {
	mu     sync.Mutex
	latest S
	subs   map[chan S]struct{}
	closed bool
	done   chan struct{}
}

func newBroadcaster[S any](initial S) *broadcaster[S] {
	return &broadcaster[S]{latest: initial, subs: make(map[chan S]struct{}), done: make(chan struct{})}
}

func (b *broadcaster[S]) load() S {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

func (b *broadcaster[S]) publish(v S) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.latest = v
	for ch := range b.subs {
		replace(ch, v)
	}
}

// subscribe returns a channel that receives the current value at once and
// every later one. It is closed when ctx is done or the broadcaster closes.
func (b *broadcaster[S]) subscribe(ctx context.Context) <-chan S {
	ch := make(chan S, 1)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch
	}
	ch <- b.latest
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}()

	return ch
}

func (b *broadcaster[S]) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// replace puts v into a one-slot channel, dropping an unread older value.
// Callers hold the broadcaster lock, so no other sender races.
func replace[S any](ch chan S, v S) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
