package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quest-client/internal/config"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/store"
	"github.com/MKhiriev/go-quest-client/models"
)

const waitTimeout = 2 * time.Second

var testSession = models.Session{UserID: 7, Token: "token-7"}

// newTestStorages открывает изолированный SQLite кэш во временной директории
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "cache.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	db, err := store.NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	s := store.NewStoragesFromDB(db, logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type pageResponse[T any] struct {
	page models.Page[T]
	err  error
}

// fakeServer: управляемый PageFetcher: каждый вызов ждёт ответа из очереди.
type fakeServer[T any] struct {
	mu    sync.Mutex
	calls []int
	queue chan pageResponse[T]
}

func newFakeServer[T any]() *fakeServer[T] {
	return &fakeServer[T]{queue: make(chan pageResponse[T], 16)}
}

func (f *fakeServer[T]) fetch(ctx context.Context, _ models.Session, page, _ int) (models.Page[T], error) {
	f.mu.Lock()
	f.calls = append(f.calls, page)
	f.mu.Unlock()

	select {
	case r := <-f.queue:
		return r.page, r.err
	case <-ctx.Done():
		return models.Page[T]{}, ctx.Err()
	}
}

func (f *fakeServer[T]) respond(page models.Page[T]) {
	f.queue <- pageResponse[T]{page: page}
}

func (f *fakeServer[T]) fail(err error) {
	f.queue <- pageResponse[T]{err: err}
}

func (f *fakeServer[T]) pagesRequested() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.calls...)
}

func quests(ids ...int64) []models.Quest {
	out := make([]models.Quest, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Quest{ID: id, Title: "quest"})
	}
	return out
}

func questIDs(items []models.Quest) []int64 {
	ids := make([]int64, 0, len(items))
	for _, q := range items {
		ids = append(ids, q.ID)
	}
	return ids
}

// waitSnapshot ждёт, пока снимок синхронизатора не удовлетворит условию
func waitSnapshot[T models.Entity](t *testing.T, s *Synchronizer[T], cond func(Snapshot[T]) bool) Snapshot[T] {
	t.Helper()

	require.Eventually(t, func() bool { return cond(s.Snapshot()) }, waitTimeout, 5*time.Millisecond)
	return s.Snapshot()
}

func isReady[T any](freshness Freshness) func(Snapshot[T]) bool {
	return func(s Snapshot[T]) bool {
		st, ok := s.State.(Ready[T])
		return ok && st.Freshness == freshness && !s.Syncing
	}
}

func isFailed[T any](s Snapshot[T]) bool {
	_, ok := s.State.(Failed[T])
	return ok
}

func readyView[T any](t *testing.T, snap Snapshot[T]) Ready[T] {
	t.Helper()

	st, ok := snap.State.(Ready[T])
	require.Truef(t, ok, "expected Ready, got %T", snap.State)
	return st
}
