package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/workers"
	"github.com/MKhiriev/go-quest-client/models"
)

// Coordinator routes screen events to the synchronizers of one screen.
//
// Only the active collection and the profile are refreshed on a tick;
// switching the active kind never cancels fetches of other kinds.
type Coordinator struct {
	profile     *ProfileLoader
	collections []Collection
	byKind      map[models.ResourceKind]Collection
	logger      *logger.Logger

	mu     sync.Mutex
	active models.ResourceKind
	ticker *workers.Ticker
	closed bool
}

// NewCoordinator groups collections under one screen. The first collection
// is active until Activate is called. profile may be nil.
func NewCoordinator(profile *ProfileLoader, log *logger.Logger, collections ...Collection) *Coordinator {
	c := &Coordinator{
		profile:     profile,
		collections: collections,
		byKind:      make(map[models.ResourceKind]Collection, len(collections)),
		logger:      log.ForComponent("coordinator", ""),
	}
	for _, col := range collections {
		c.byKind[col.Kind()] = col
	}
	if len(collections) > 0 {
		c.active = collections[0].Kind()
	}
	return c
}

// Open loads the profile and the active collection for session.
func (c *Coordinator) Open(ctx context.Context, session models.Session) {
	active := c.Active()

	if c.profile != nil {
		c.profile.Load(ctx, session, false)
	}
	if col, ok := c.byKind[active]; ok && col.NeedsLoad() {
		col.LoadInitial(ctx, session)
	}
}

// Activate makes kind the visible collection and loads it when it has
// nothing to show yet.
func (c *Coordinator) Activate(ctx context.Context, session models.Session, kind models.ResourceKind) error {
	col, ok := c.byKind[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResource, kind)
	}

	c.mu.Lock()
	c.active = kind
	c.mu.Unlock()

	if col.NeedsLoad() {
		col.LoadInitial(ctx, session)
	}
	return nil
}

// Active returns the visible kind.
func (c *Coordinator) Active() models.ResourceKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Kinds lists the collections in display order.
func (c *Coordinator) Kinds() []models.ResourceKind {
	kinds := make([]models.ResourceKind, 0, len(c.collections))
	for _, col := range c.collections {
		kinds = append(kinds, col.Kind())
	}
	return kinds
}

// RefreshAll reloads the profile silently and refreshes the active
// collection. A collection with nothing to show is loaded from scratch.
func (c *Coordinator) RefreshAll(ctx context.Context, session models.Session) {
	if c.profile != nil {
		c.profile.Load(ctx, session, true)
	}

	col, ok := c.byKind[c.Active()]
	if !ok {
		return
	}
	if col.NeedsLoad() {
		col.LoadInitial(ctx, session)
		return
	}
	col.Refresh(ctx, session)
}

// LoadMore asks the active collection for its next page.
func (c *Coordinator) LoadMore(ctx context.Context, session models.Session) bool {
	col, ok := c.byKind[c.Active()]
	if !ok {
		return false
	}
	return col.LoadMore(ctx, session)
}

// Invalidate implements [Invalidator]. Held kinds that were loaded are
// refreshed; kinds this coordinator does not hold are ignored.
func (c *Coordinator) Invalidate(ctx context.Context, session models.Session, kinds ...models.ResourceKind) {
	for _, kind := range kinds {
		if kind == models.KindProfile {
			if c.profile != nil {
				c.profile.Load(ctx, session, true)
			}
			continue
		}

		col, ok := c.byKind[kind]
		if !ok || col.NeedsLoad() {
			continue
		}
		col.Refresh(ctx, session)
	}
}

// Start runs RefreshAll every interval until ctx is done or Close is
// called. A second Start replaces the first.
func (c *Coordinator) Start(ctx context.Context, session models.Session, interval time.Duration) {
	ticker := workers.NewTicker("refresh", interval, func(ctx context.Context) {
		c.logger.Debug().Str("func", "Coordinator.tick").Str("active", c.Active().String()).Msg("periodic refresh")
		c.RefreshAll(ctx, session)
	}, c.logger)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	previous := c.ticker
	c.ticker = ticker
	c.mu.Unlock()

	// the old tick job takes c.mu, so it is stopped outside the lock
	if previous != nil {
		previous.Stop()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.ticker != ticker {
		return
	}
	ticker.Start(ctx)
}

// Stop halts the periodic refresh started by Start. Synchronizers keep
// their state and stay usable.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	ticker := c.ticker
	c.ticker = nil
	c.mu.Unlock()

	if ticker != nil {
		ticker.Stop()
	}
}

// Changes signals whenever the profile or any collection publishes a new
// snapshot. Signals are coalesced; readers re-read the snapshots they show.
func (c *Coordinator) Changes(ctx context.Context) <-chan struct{} {
	var sources []<-chan struct{}
	if c.profile != nil {
		sources = append(sources, c.profile.Watch(ctx))
	}
	for _, col := range c.collections {
		sources = append(sources, col.Watch(ctx))
	}
	return mergeSignals(sources...)
}

// mergeSignals fans change signals into one coalesced channel. It closes
// once every source is closed.
func mergeSignals(sources ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{}, 1)
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src <-chan struct{}) {
			defer wg.Done()
			for range src {
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}(src)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Close stops the tick and every synchronizer. Cached rows are kept.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	ticker := c.ticker
	c.mu.Unlock()

	if ticker != nil {
		ticker.Stop()
	}
	if c.profile != nil {
		c.profile.Close()
	}
	for _, col := range c.collections {
		col.Close()
	}
}
