package service

import "github.com/MKhiriev/go-quest-client/models"

// Freshness tells whether shown data came from the network in this session.
type Freshness int

const (
	// Stale data was read from the local cache and not yet confirmed.
	Stale Freshness = iota + 1
	// Fresh data arrived from the server.
	Fresh
)

func (f Freshness) String() string {
	switch f {
	case Stale:
		return "stale"
	case Fresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// View is the in-memory projection of one paginated collection.
// Items keep server order: the concatenation of the pages fetched so far.
type View[T any] struct {
	Items       []T
	Total       int
	CurrentPage int // next page to fetch
	HasMore     bool
}

// viewFromCache rebuilds a view after a restart. Which pages the server
// still has is unknown, so the next page follows the highest stored one and
// HasMore stays true until the server says otherwise.
func viewFromCache[T models.Entity](rows []models.CachedRow[T]) View[T] {
	maxPage := 0
	for _, row := range rows {
		maxPage = max(maxPage, row.Page)
	}
	return View[T]{
		Items:       models.Items(rows),
		Total:       len(rows),
		CurrentPage: maxPage + 1,
		HasMore:     true,
	}
}

// State is the lifecycle of a [Synchronizer]. The concrete types are
// [Empty], [Loading], [Ready], [LoadingMore] and [Failed].
type State[T any] interface {
	state()
}

// Empty means nothing was loaded yet.
type Empty[T any] struct{}

// Loading means a first-page fetch is in flight and nothing is shown.
type Loading[T any] struct{}

// Ready holds a view and no page append is in flight.
type Ready[T any] struct {
	View      View[T]
	Freshness Freshness
}

// LoadingMore holds the view while the next page is being fetched.
type LoadingMore[T any] struct {
	View View[T]
}

// Failed means the last first-page fetch failed with nothing to show.
// View is set when an earlier fetch produced an empty view.
type Failed[T any] struct {
	Err  error
	View *View[T]
}

func (Empty[T]) state()       {}
func (Loading[T]) state()     {}
func (Ready[T]) state()       {}
func (LoadingMore[T]) state() {}
func (Failed[T]) state()      {}

// Snapshot is what subscribers of a [Synchronizer] observe.
type Snapshot[T any] struct {
	Kind  models.ResourceKind
	State State[T]
	// Syncing is set while a first-page fetch runs behind a visible view.
	Syncing bool
	// Notice is a non-blocking problem: a failed refresh or load-more with
	// data still on screen, or a cache fault.
	Notice error
}

// CurrentView returns the view carried by the state, if any.
func (s Snapshot[T]) CurrentView() (View[T], bool) {
	switch st := s.State.(type) {
	case Ready[T]:
		return st.View, true
	case LoadingMore[T]:
		return st.View, true
	case Failed[T]:
		if st.View != nil {
			return *st.View, true
		}
	}
	return View[T]{}, false
}
