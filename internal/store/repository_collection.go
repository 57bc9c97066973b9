package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

// rawRow is one cache row with the entity kept as a JSON payload.
type rawRow struct {
	ID      int64
	UserID  int64
	Page    int
	Payload []byte
}

// collectionRepository stores one paginated resource kind in its own table.
type collectionRepository struct {
	*DB
	table  string
	logger *logger.Logger
}

func newCollectionRepository(db *DB, table string, log *logger.Logger) *collectionRepository {
	return &collectionRepository{DB: db, table: table, logger: log}
}

func (r *collectionRepository) rows(ctx context.Context, userID int64) ([]rawRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCollectionRows(r.table, userID).ToSql()
	if err != nil {
		return nil, fault(ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.rows").
			Str("table", r.table).
			Int64("user_id", userID).
			Msg("failed to query cached rows")
		return nil, fault(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var result []rawRow
	for rows.Next() {
		var row rawRow
		var payload string
		if err := rows.Scan(&row.ID, &row.UserID, &row.Page, &payload); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.rows").
				Str("table", r.table).
				Int64("user_id", userID).
				Msg("failed to scan cached row")
			return nil, fault(ErrScanningRows, err)
		}
		row.Payload = []byte(payload)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fault(ErrScanningRows, err)
	}

	return result, nil
}

// save deletes the rows of page first when clearPrevious is set, then
// replaces rows. Both steps run in one transaction.
func (r *collectionRepository) save(ctx context.Context, userID int64, page int, rows []rawRow, clearPrevious bool) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "collectionRepository.save").Str("table", r.table).Msg("failed to begin transaction")
		return fault(ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	if clearPrevious {
		if err := execBuilt(ctx, tx, deleteCollectionPage(r.table, userID, page)); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.save").
				Str("table", r.table).
				Int64("user_id", userID).
				Int("page", page).
				Msg("failed to clear cached page")
			return err
		}
	}

	if len(rows) > 0 {
		if err := execBuilt(ctx, tx, replaceCollectionRows(r.table, rows, time.Now().UTC())); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.save").
				Str("table", r.table).
				Int64("user_id", userID).
				Int("page", page).
				Int("rows", len(rows)).
				Msg("failed to replace cached rows")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "collectionRepository.save").Str("table", r.table).Msg("failed to commit transaction")
		return fault(ErrCommitingTransaction, err)
	}

	r.changes.publish(changeKey{userID: userID, table: r.table})
	return nil
}

func (r *collectionRepository) deleteAll(ctx context.Context, userID int64) error {
	if err := execBuilt(ctx, r.DB, deleteCollectionRows(r.table, userID)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "collectionRepository.deleteAll").
			Str("table", r.table).
			Int64("user_id", userID).
			Msg("failed to delete cached rows")
		return err
	}

	r.changes.publish(changeKey{userID: userID, table: r.table})
	return nil
}

type sqlBuilder interface {
	ToSql() (string, []any, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execBuilt(ctx context.Context, ex execer, b sqlBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fault(ErrBuildingSQLQuery, err)
	}
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		return fault(ErrExecutingStatement, err)
	}
	return nil
}

// Collection is the typed cache of one paginated resource kind.
type Collection[T models.Entity] struct {
	repo *collectionRepository
}

// NewCollection binds a typed cache to table.
func NewCollection[T models.Entity](db *DB, table string, log *logger.Logger) *Collection[T] {
	return &Collection[T]{repo: newCollectionRepository(db, table, log)}
}

// Snapshot returns the cached rows of userID ordered by page, then id.
func (c *Collection[T]) Snapshot(ctx context.Context, userID int64) ([]models.CachedRow[T], error) {
	raw, err := c.repo.rows(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.CachedRow[T], 0, len(raw))
	for _, row := range raw {
		var item T
		if err := json.Unmarshal(row.Payload, &item); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "Collection.Snapshot").
				Str("table", c.repo.table).
				Int64("id", row.ID).
				Msg("failed to decode cached payload")
			return nil, fault(ErrScanningRows, err)
		}
		result = append(result, models.CachedRow[T]{UserID: row.UserID, Page: row.Page, Item: item})
	}

	return result, nil
}

// Observe streams the cached rows of userID, re-emitting after every change
// until ctx is done.
func (c *Collection[T]) Observe(ctx context.Context, userID int64) <-chan []models.CachedRow[T] {
	key := changeKey{userID: userID, table: c.repo.table}
	return observe(ctx, c.repo.changes, key, func(ctx context.Context) ([]models.CachedRow[T], error) {
		return c.Snapshot(ctx, userID)
	}, c.repo.logger)
}

// Save stores rows as the contents of page. The owner is taken from the
// first row, so an empty rows slice is a no-op even when clearPrevious is
// set. Rows of other users in the same slice are rejected.
func (c *Collection[T]) Save(ctx context.Context, rows []models.CachedRow[T], page int, clearPrevious bool) error {
	if len(rows) == 0 {
		return nil
	}

	userID := rows[0].UserID
	raw := make([]rawRow, 0, len(rows))
	for _, row := range rows {
		if row.UserID != userID {
			return fault(ErrInvalidRows, fmt.Errorf("mixed owners in one save: %d and %d", userID, row.UserID))
		}
		payload, err := json.Marshal(row.Item)
		if err != nil {
			return fault(ErrEncodingPayload, err)
		}
		raw = append(raw, rawRow{ID: row.Item.EntityID(), UserID: userID, Page: page, Payload: payload})
	}

	return c.repo.save(ctx, userID, page, raw, clearPrevious)
}

// DeleteAll drops every cached row of userID in this kind.
func (c *Collection[T]) DeleteAll(ctx context.Context, userID int64) error {
	return c.repo.deleteAll(ctx, userID)
}
