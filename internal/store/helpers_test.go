package store

import (
	"context"
	"database/sql/driver"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quest-client/internal/config"
	"github.com/MKhiriev/go-quest-client/internal/logger"
)

// newTestStorages открывает изолированную SQLite базу во временной директории
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "cache.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	s := NewStoragesFromDB(db, logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, logger.Nop()), mock
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emission")
	}
	var zero T
	return zero
}

func sqlmockResult() driver.Result {
	return sqlmock.NewResult(0, 1)
}
