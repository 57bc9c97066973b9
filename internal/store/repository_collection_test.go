package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

func quests(ids ...int64) []models.Quest {
	out := make([]models.Quest, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Quest{ID: id, Title: "quest"})
	}
	return out
}

func ids[T models.Entity](rows []models.CachedRow[T]) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Item.EntityID())
	}
	return out
}

func TestCollection_SaveAndSnapshot_OrderedByPageThenID(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 2, quests(3, 1)), 2, false))
	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 1, quests(9, 5)), 1, true))

	rows, err := s.Quests.Snapshot(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 9, 1, 3}, ids(rows))
	assert.Equal(t, 1, rows[0].Page)
	assert.Equal(t, 2, rows[3].Page)
	assert.Equal(t, int64(7), rows[0].UserID)
}

func TestCollection_Save_ReplacesEntityFetchedOnAnotherPage(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 1, quests(1, 2)), 1, true))

	moved := []models.Quest{{ID: 2, Title: "updated"}, {ID: 3, Title: "new"}}
	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 2, moved), 2, false))

	rows, err := s.Quests.Snapshot(ctx, 7)
	require.NoError(t, err)

	require.Equal(t, []int64{1, 2, 3}, ids(rows))
	assert.Equal(t, "updated", rows[1].Item.Title)
	assert.Equal(t, 2, rows[1].Page)
}

func TestCollection_Save_ClearPreviousDeletesOnlyThatPage(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 1, quests(1, 2)), 1, true))
	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 2, quests(3, 4)), 2, false))

	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 1, quests(10)), 1, true))

	rows, err := s.Quests.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 3, 4}, ids(rows))
}

func TestCollection_Save_EmptyRowsIsNoop(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 1, quests(1)), 1, true))
	require.NoError(t, s.Quests.Save(ctx, nil, 1, true))

	rows, err := s.Quests.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCollection_Save_RejectsMixedOwners(t *testing.T) {
	s := newTestStorages(t)

	rows := []models.CachedRow[models.Quest]{
		{UserID: 7, Item: models.Quest{ID: 1}},
		{UserID: 8, Item: models.Quest{ID: 2}},
	}
	err := s.Quests.Save(context.Background(), rows, 1, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageFault)
	assert.ErrorIs(t, err, ErrInvalidRows)

	got, err := s.Quests.Snapshot(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// unencodable не сериализуется в JSON из-за поля-канала
type unencodable struct {
	ID int64
	Ch chan int
}

func (u unencodable) EntityID() int64 { return u.ID }

func TestCollection_Save_EncodeFailureIsStorageFault(t *testing.T) {
	s := newTestStorages(t)
	col := NewCollection[unencodable](s.db, tableQuests, logger.Nop())

	rows := []models.CachedRow[unencodable]{{UserID: 7, Item: unencodable{ID: 1, Ch: make(chan int)}}}
	err := col.Save(context.Background(), rows, 1, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageFault)
	assert.ErrorIs(t, err, ErrEncodingPayload)
}

func TestCollection_IsolatedByUserAndKind(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(7, 1, quests(1)), 1, true))
	require.NoError(t, s.Quests.Save(ctx, models.NewCachedRows(8, 1, quests(1, 2)), 1, true))
	require.NoError(t, s.Achievements.Save(ctx, models.NewCachedRows(7, 1, []models.Achievement{{ID: 1, Name: "a"}}), 1, true))

	rows7, err := s.Quests.Snapshot(ctx, 7)
	require.NoError(t, err)
	rows8, err := s.Quests.Snapshot(ctx, 8)
	require.NoError(t, err)

	assert.Len(t, rows7, 1)
	assert.Len(t, rows8, 2)

	require.NoError(t, s.Quests.DeleteAll(ctx, 7))

	rows7, err = s.Quests.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, rows7)

	ach, err := s.Achievements.Snapshot(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, ach, 1)
}

func TestCollection_Observe_ReemitsOnChange(t *testing.T) {
	s := newTestStorages(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Collectibles.Observe(ctx, 7)
	assert.Empty(t, receive(t, ch))

	cats := []models.Collectible{{ID: 4, Name: "Tom"}, {ID: 2, Name: "Felix"}}
	require.NoError(t, s.Collectibles.Save(ctx, models.NewCachedRows(7, 1, cats), 1, true))

	rows := receive(t, ch)
	assert.Equal(t, []int64{2, 4}, ids(rows))
	assert.Equal(t, "Felix", rows[0].Item.Name)

	require.NoError(t, s.Collectibles.DeleteAll(ctx, 7))
	assert.Empty(t, receive(t, ch))
}

func TestCollection_Observe_ClosesOnCancelAndRestarts(t *testing.T) {
	s := newTestStorages(t)
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Quests.Observe(ctx, 7)
	receive(t, ch)
	cancel()

	for range ch {
	}

	require.NoError(t, s.Quests.Save(context.Background(), models.NewCachedRows(7, 1, quests(1)), 1, true))

	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	assert.Len(t, receive(t, s.Quests.Observe(ctx2, 7)), 1)
}

func TestCollection_Snapshot_StorageFault(t *testing.T) {
	db, mock := newMockDB(t)
	coll := NewCollection[models.Quest](db, tableQuests, logger.Nop())

	mock.ExpectQuery("SELECT id, user_id, page, payload FROM user_quests WHERE user_id = \\? ORDER BY page ASC, id ASC").
		WithArgs(int64(7)).
		WillReturnError(errors.New("disk I/O error"))

	_, err := coll.Snapshot(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageFault)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_Snapshot_CorruptedPayload(t *testing.T) {
	db, mock := newMockDB(t)
	coll := NewCollection[models.Quest](db, tableQuests, logger.Nop())

	mock.ExpectQuery("SELECT id, user_id, page, payload FROM user_quests").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "page", "payload"}).AddRow(1, 7, 1, "{not json"))

	_, err := coll.Snapshot(context.Background(), 7)
	assert.ErrorIs(t, err, ErrStorageFault)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestCollection_Save_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)
	coll := NewCollection[models.Quest](db, tableQuests, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := coll.Save(context.Background(), models.NewCachedRows(7, 1, quests(1)), 1, true)
	assert.ErrorIs(t, err, ErrStorageFault)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCollection_Save_DeleteAndReplaceInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	coll := NewCollection[models.Quest](db, tableQuests, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM user_quests WHERE page = \\? AND user_id = \\?").
		WithArgs(1, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("REPLACE INTO user_quests \\(id,user_id,page,payload,updated_at\\)").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := coll.Save(context.Background(), models.NewCachedRows(7, 1, quests(1, 2)), 1, true)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_Save_ReplaceFailsRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	coll := NewCollection[models.Quest](db, tableQuests, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("REPLACE INTO user_quests").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := coll.Save(context.Background(), models.NewCachedRows(7, 2, quests(1)), 2, false)
	assert.ErrorIs(t, err, ErrStorageFault)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_Save_CommitFails(t *testing.T) {
	db, mock := newMockDB(t)
	coll := NewCollection[models.Quest](db, tableQuests, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("REPLACE INTO user_quests").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := coll.Save(context.Background(), models.NewCachedRows(7, 2, quests(1)), 2, false)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}
