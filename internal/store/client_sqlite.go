package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-quest-client/internal/crypto"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

// fileSecretStore keeps the sealed session in a single file.
type fileSecretStore struct {
	path string
	box  crypto.SecretBox

	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileSecretStore returns a [SecretStore] writing to path through box.
func NewFileSecretStore(path string, box crypto.SecretBox, log *logger.Logger) SecretStore {
	return &fileSecretStore{path: path, box: box, logger: log}
}

func (s *fileSecretStore) Get(ctx context.Context) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Session{}, ErrSecretNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: read secret file: %w", ErrStorageFault, err)
	}

	var session models.Session
	if err := s.box.Open(blob, &session); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "fileSecretStore.Get").
			Msg("stored session cannot be opened")
		return models.Session{}, fmt.Errorf("%w: open secret file: %w", ErrStorageFault, err)
	}

	if !session.Valid() {
		return models.Session{}, ErrSecretNotFound
	}

	return session, nil
}

func (s *fileSecretStore) Set(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.box.Seal(session)
	if err != nil {
		return fmt.Errorf("%w: seal session: %w", ErrStorageFault, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: create secret dir: %w", ErrStorageFault, err)
		}
	}

	// запись через временный файл, чтобы не оставить полузаписанную сессию
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("%w: write secret file: %w", ErrStorageFault, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replace secret file: %w", ErrStorageFault, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "fileSecretStore.Set").
		Int64("user_id", session.UserID).
		Msg("session stored")
	return nil
}

func (s *fileSecretStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: remove secret file: %w", ErrStorageFault, err)
	}
	return nil
}
