package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/store"
	"github.com/MKhiriev/go-quest-client/models"
)

// DefaultPageLimit is used when a synchronizer is built with a
// non-positive page size.
const DefaultPageLimit = 20

// PageFetcher loads one page of a collection from the server. Adapter
// methods such as [adapter.ServerAdapter.FetchQuests] fit it directly.
type PageFetcher[T any] func(ctx context.Context, session models.Session, page, limit int) (models.Page[T], error)

type syncOp int

const (
	opLoadInitial syncOp = iota + 1
	opLoadMore
	opRefresh
)

func (op syncOp) String() string {
	switch op {
	case opLoadInitial:
		return "load_initial"
	case opLoadMore:
		return "load_more"
	case opRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

type syncCommand struct {
	op      syncOp
	session models.Session
	reply   chan bool
}

type fetchRequest[T any] struct {
	op      syncOp
	session models.Session
	page    int
	// revert is restored when a load-more fails.
	revert Ready[T]
	// fallback is kept in Failed when a first-page fetch fails from Failed.
	fallback *View[T]
}

type fetchResult[T any] struct {
	req        fetchRequest[T]
	page       models.Page[T]
	err        error
	persistErr error
}

// Synchronizer owns the paginated view of one resource kind and reconciles
// it with the local cache and the server.
//
// All state lives in a single goroutine; LoadInitial, LoadMore and Refresh
// send it commands and report whether the command was accepted. At most one
// network fetch per synchronizer is in flight, and any command that arrives
// meanwhile is rejected.
//
// A nil cache makes the synchronizer network-only.
type Synchronizer[T models.Entity] struct {
	kind   models.ResourceKind
	fetch  PageFetcher[T]
	cache  store.CollectionCache[T]
	limit  int
	logger *logger.Logger

	// ctx is cancelled by Close; fetches and cache writes run under it.
	ctx       context.Context
	cancel    context.CancelFunc
	commands  chan syncCommand
	results   chan fetchResult[T]
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
	fetches   sync.WaitGroup
	snapshots *broadcaster[Snapshot[T]]

	// owned by the run goroutine
	state    State[T]
	fetching bool
	notice   error
}

// NewSynchronizer starts a synchronizer in the [Empty] state.
func NewSynchronizer[T models.Entity](kind models.ResourceKind, fetch PageFetcher[T], cache store.CollectionCache[T], limit int, log *logger.Logger) *Synchronizer[T] {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	log = log.ForComponent("synchronizer", kind.String())
	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))

	s := &Synchronizer[T]{
		kind:      kind,
		fetch:     fetch,
		cache:     cache,
		limit:     limit,
		logger:    log,
		ctx:       ctx,
		cancel:    cancel,
		commands:  make(chan syncCommand),
		results:   make(chan fetchResult[T]),
		done:      make(chan struct{}),
		snapshots: newBroadcaster(Snapshot[T]{Kind: kind, State: Empty[T]{}}),
		state:     Empty[T]{},
	}

	s.wg.Add(1)
	go s.run()
	return s
}

// Kind returns the resource kind served by s.
func (s *Synchronizer[T]) Kind() models.ResourceKind {
	return s.kind
}

// LoadInitial shows cached rows at once, if any, and fetches page 1.
// Accepted only from [Empty] or [Failed].
func (s *Synchronizer[T]) LoadInitial(ctx context.Context, session models.Session) bool {
	return s.send(ctx, opLoadInitial, session)
}

// LoadMore fetches the next page and appends it. Accepted only from [Ready]
// with HasMore set.
func (s *Synchronizer[T]) LoadMore(ctx context.Context, session models.Session) bool {
	return s.send(ctx, opLoadMore, session)
}

// Refresh re-fetches page 1 and replaces the view. The current view stays
// visible meanwhile and the cache is not consulted.
func (s *Synchronizer[T]) Refresh(ctx context.Context, session models.Session) bool {
	return s.send(ctx, opRefresh, session)
}

// Snapshot returns the latest published state.
func (s *Synchronizer[T]) Snapshot() Snapshot[T] {
	return s.snapshots.load()
}

// NeedsLoad reports whether the synchronizer holds nothing worth refreshing
// and should be (re)loaded from scratch.
func (s *Synchronizer[T]) NeedsLoad() bool {
	switch s.Snapshot().State.(type) {
	case Empty[T], Failed[T]:
		return true
	}
	return false
}

// Subscribe streams snapshots, starting with the current one. The channel
// closes when ctx is done or s is closed.
func (s *Synchronizer[T]) Subscribe(ctx context.Context) <-chan Snapshot[T] {
	return s.snapshots.subscribe(ctx)
}

// Watch is Subscribe without the payload.
func (s *Synchronizer[T]) Watch(ctx context.Context) <-chan struct{} {
	return watch(s.Subscribe(ctx))
}

// Close stops the synchronizer. In-flight fetches are cancelled and their
// results discarded; commands are rejected. Close returns only after every
// fetch goroutine has exited, so no cache write of s lands after it.
func (s *Synchronizer[T]) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.cancel()
		s.wg.Wait()
		s.fetches.Wait()
		s.snapshots.close()
	})
}

func (s *Synchronizer[T]) send(ctx context.Context, op syncOp, session models.Session) bool {
	cmd := syncCommand{op: op, session: session, reply: make(chan bool, 1)}

	select {
	case s.commands <- cmd:
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}

	select {
	case accepted := <-cmd.reply:
		return accepted
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (s *Synchronizer[T]) run() {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			return
		case cmd := <-s.commands:
			cmd.reply <- s.handle(cmd)
		case res := <-s.results:
			s.apply(res)
		}
	}
}

func (s *Synchronizer[T]) handle(cmd syncCommand) bool {
	if !cmd.session.Valid() {
		s.logger.Debug().Str("op", cmd.op.String()).Msg("command without session rejected")
		return false
	}
	if s.fetching {
		s.logger.Debug().Str("op", cmd.op.String()).Msg("fetch in flight, command rejected")
		return false
	}

	switch cmd.op {
	case opLoadInitial:
		return s.loadInitial(cmd.session)
	case opLoadMore:
		return s.loadMore(cmd.session)
	case opRefresh:
		return s.refresh(cmd.session)
	}
	return false
}

func (s *Synchronizer[T]) loadInitial(session models.Session) bool {
	req := fetchRequest[T]{op: opLoadInitial, session: session, page: 1}

	switch st := s.state.(type) {
	case Empty[T]:
	case Failed[T]:
		req.fallback = st.View
	default:
		return false
	}

	s.notice = nil
	s.state = Loading[T]{}

	if s.cache != nil {
		rows, err := s.cache.Snapshot(s.ctx, session.UserID)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).
				Str("func", "Synchronizer.loadInitial").
				Int64("user_id", session.UserID).
				Msg("cache read failed, continuing with network only")
			s.notice = err
		case len(rows) > 0:
			s.state = Ready[T]{View: viewFromCache(rows), Freshness: Stale}
		}
	}

	s.startFetch(req)
	return true
}

func (s *Synchronizer[T]) refresh(session models.Session) bool {
	req := fetchRequest[T]{op: opRefresh, session: session, page: 1}

	switch st := s.state.(type) {
	case Ready[T]:
		// the view stays on screen while page 1 is fetched
	case Failed[T]:
		req.fallback = st.View
		s.state = Loading[T]{}
	default:
		s.state = Loading[T]{}
	}

	s.notice = nil
	s.startFetch(req)
	return true
}

func (s *Synchronizer[T]) loadMore(session models.Session) bool {
	st, ok := s.state.(Ready[T])
	if !ok || !st.View.HasMore {
		return false
	}

	s.notice = nil
	s.state = LoadingMore[T]{View: st.View}
	s.startFetch(fetchRequest[T]{op: opLoadMore, session: session, page: st.View.CurrentPage, revert: st})
	return true
}

func (s *Synchronizer[T]) startFetch(req fetchRequest[T]) {
	s.fetching = true
	s.publish()

	s.fetches.Add(1)
	go func() {
		defer s.fetches.Done()

		res := fetchResult[T]{req: req}
		res.page, res.err = s.fetch(s.ctx, req.session, req.page, s.limit)
		if res.err == nil && !s.closed() {
			res.persistErr = s.persist(req, res.page)
		}

		select {
		case s.results <- res:
		case <-s.done:
			s.logger.Debug().
				Str("op", req.op.String()).
				Int("page", req.page).
				Msg("synchronizer closed, fetch result discarded")
		}
	}()
}

// persist writes a fetched page to the cache. A first page replaces the
// stored page 1; an empty first page with nothing after it means the
// collection is empty, so every stored row goes.
func (s *Synchronizer[T]) persist(req fetchRequest[T], page models.Page[T]) error {
	if s.cache == nil {
		return nil
	}

	userID := req.session.UserID
	firstPage := req.op != opLoadMore

	var err error
	if firstPage && len(page.Items) == 0 && !page.HasMore {
		err = s.cache.DeleteAll(s.ctx, userID)
	} else {
		served := servedPage(req, page)
		err = s.cache.Save(s.ctx, models.NewCachedRows(userID, served, page.Items), served, firstPage)
	}

	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "Synchronizer.persist").
			Int64("user_id", userID).
			Int("page", req.page).
			Msg("failed to cache fetched page")
	}
	return err
}

// servedPage is the page number the server reports for page, or the
// requested one when the response omits it.
func servedPage[T any](req fetchRequest[T], page models.Page[T]) int {
	if page.Page > 0 {
		return page.Page
	}
	return req.page
}

func (s *Synchronizer[T]) apply(res fetchResult[T]) {
	s.fetching = false
	defer s.publish()

	if res.err != nil {
		s.applyFailure(res)
		return
	}

	page := res.page
	switch res.req.op {
	case opLoadMore:
		prev := res.req.revert
		items := make([]T, 0, len(prev.View.Items)+len(page.Items))
		items = append(append(items, prev.View.Items...), page.Items...)
		s.state = Ready[T]{
			View: View[T]{
				Items:       items,
				Total:       page.Total,
				CurrentPage: servedPage(res.req, page) + 1,
				HasMore:     page.HasMore,
			},
			Freshness: prev.Freshness,
		}
	default:
		s.state = Ready[T]{
			View: View[T]{
				Items:       page.Items,
				Total:       page.Total,
				CurrentPage: servedPage(res.req, page) + 1,
				HasMore:     page.HasMore,
			},
			Freshness: Fresh,
		}
	}

	s.notice = res.persistErr
}

func (s *Synchronizer[T]) applyFailure(res fetchResult[T]) {
	s.logger.Error().Err(res.err).
		Str("func", "Synchronizer.apply").
		Str("op", res.req.op.String()).
		Int("page", res.req.page).
		Msg("fetch failed")

	if res.req.op == opLoadMore {
		s.state = res.req.revert
		s.notice = res.err
		return
	}

	if st, ok := s.state.(Ready[T]); ok {
		if len(st.View.Items) > 0 {
			s.notice = res.err
			return
		}
		view := st.View
		s.state = Failed[T]{Err: res.err, View: &view}
		return
	}

	s.state = Failed[T]{Err: res.err, View: res.req.fallback}
}

func (s *Synchronizer[T]) publish() {
	_, ready := s.state.(Ready[T])
	s.snapshots.publish(Snapshot[T]{
		Kind:    s.kind,
		State:   s.state,
		Syncing: s.fetching && ready,
		Notice:  s.notice,
	})
}

func (s *Synchronizer[T]) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// watch turns a snapshot stream into a coalesced change signal.
func watch[S any](src <-chan S) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for range src {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out
}
