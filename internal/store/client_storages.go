package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quest-client/internal/config"
	"github.com/MKhiriev/go-quest-client/internal/crypto"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

// ClientStorages groups the local cache repositories and the secret store
// into a single value passed to the service layer.
type ClientStorages struct {
	db *DB

	Profile      ProfileRepository
	Quests       CollectionCache[models.Quest]
	Achievements CollectionCache[models.Achievement]
	Collectibles CollectionCache[models.Collectible]
	Secrets      SecretStore
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite cache at cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the typed repositories and the sealed secret store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, appCfg config.ClientApp, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	box, err := crypto.NewSecretBox(appCfg.SecretKey)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("secret box: %w", err)
	}

	storages := NewStoragesFromDB(db, logger)
	storages.Secrets = NewFileSecretStore(cfg.Secrets.Path, box, logger)

	return storages, nil
}

// NewStoragesFromDB wires the cache repositories around an already migrated
// database. Secrets is left nil.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		db:           db,
		Profile:      NewProfileRepository(db, logger),
		Quests:       NewCollection[models.Quest](db, tableQuests, logger),
		Achievements: NewCollection[models.Achievement](db, tableAchievements, logger),
		Collectibles: NewCollection[models.Collectible](db, tableCollectibles, logger),
	}
}

// ClearAllUserData removes the profile and every cached collection row of
// userID in one transaction. Used on logout and account switch.
func (s *ClientStorages) ClearAllUserData(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault(ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	keys := []changeKey{{userID: userID, table: tableProfile}}
	if err := execBuilt(ctx, tx, deleteProfile(userID)); err != nil {
		log.Err(err).Str("func", "ClientStorages.ClearAllUserData").Int64("user_id", userID).Msg("failed to delete profile")
		return err
	}
	for _, table := range collectionTables {
		if err := execBuilt(ctx, tx, deleteCollectionRows(table, userID)); err != nil {
			log.Err(err).
				Str("func", "ClientStorages.ClearAllUserData").
				Str("table", table).
				Int64("user_id", userID).
				Msg("failed to delete cached rows")
			return err
		}
		keys = append(keys, changeKey{userID: userID, table: table})
	}

	if err := tx.Commit(); err != nil {
		return fault(ErrCommitingTransaction, err)
	}

	s.db.changes.publish(keys...)
	return nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
