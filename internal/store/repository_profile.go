package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

type profileRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewProfileRepository returns the single-row-per-user profile cache.
func NewProfileRepository(db *DB, log *logger.Logger) ProfileRepository {
	return &profileRepository{DB: db, logger: log, now: time.Now}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectProfile(userID).ToSql()
	if err != nil {
		return models.Profile{}, fault(ErrBuildingSQLQuery, err)
	}

	var p models.Profile
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Email,
		&p.UserName,
		&p.UserNickname,
		&p.UserPhoto,
		&p.Stars,
		&p.Level,
		&p.NextLevelStars,
		&p.LastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.GetProfile").
			Int64("user_id", userID).
			Msg("failed to read cached profile")
		return models.Profile{}, fault(ErrExecutingQuery, err)
	}

	return p, nil
}

// ObserveProfile emits nil while no profile is cached.
func (r *profileRepository) ObserveProfile(ctx context.Context, userID int64) <-chan *models.Profile {
	key := changeKey{userID: userID, table: tableProfile}
	return observe(ctx, r.changes, key, func(ctx context.Context) (*models.Profile, error) {
		p, err := r.GetProfile(ctx, userID)
		if errors.Is(err, ErrProfileNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &p, nil
	}, r.logger)
}

// SaveProfile upserts the profile of userID and stamps LastUpdated.
func (r *profileRepository) SaveProfile(ctx context.Context, userID int64, profile models.Profile) (models.Profile, error) {
	profile.ID = userID
	profile.LastUpdated = r.now().UTC()

	q := sq.Replace(tableProfile).
		Columns(profileColumns...).
		Values(
			profile.ID,
			profile.Email,
			profile.UserName,
			profile.UserNickname,
			profile.UserPhoto,
			profile.Stars,
			profile.Level,
			profile.NextLevelStars,
			profile.LastUpdated,
		)
	if err := execBuilt(ctx, r.DB, q); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "profileRepository.SaveProfile").
			Int64("user_id", userID).
			Msg("failed to upsert profile")
		return models.Profile{}, err
	}

	r.changes.publish(changeKey{userID: userID, table: tableProfile})
	return profile, nil
}

func (r *profileRepository) ClearProfile(ctx context.Context, userID int64) error {
	if err := execBuilt(ctx, r.DB, deleteProfile(userID)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "profileRepository.ClearProfile").
			Int64("user_id", userID).
			Msg("failed to delete profile")
		return err
	}

	r.changes.publish(changeKey{userID: userID, table: tableProfile})
	return nil
}
