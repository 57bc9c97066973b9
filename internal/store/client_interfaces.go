package store

import (
	"context"

	"github.com/MKhiriev/go-quest-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CollectionCache is the local cache of one paginated resource kind.
// [Collection] is the SQLite implementation.
type CollectionCache[T models.Entity] interface {
	Snapshot(ctx context.Context, userID int64) ([]models.CachedRow[T], error)
	Observe(ctx context.Context, userID int64) <-chan []models.CachedRow[T]
	Save(ctx context.Context, rows []models.CachedRow[T], page int, clearPrevious bool) error
	DeleteAll(ctx context.Context, userID int64) error
}

// ProfileRepository is the single-row-per-user profile cache.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)
	ObserveProfile(ctx context.Context, userID int64) <-chan *models.Profile
	SaveProfile(ctx context.Context, userID int64, profile models.Profile) (models.Profile, error)
	ClearProfile(ctx context.Context, userID int64) error
}

// SecretStore keeps the session between runs.
type SecretStore interface {
	Get(ctx context.Context) (models.Session, error)
	Set(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}
