package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-quest-client/internal/crypto"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

// plainBox подменяет шифрование на JSON, чтобы не гонять Argon2id в каждом тесте
type plainBox struct{}

func (plainBox) Seal(v any) ([]byte, error)           { return json.Marshal(v) }
func (plainBox) Open(blob []byte, target any) error { return json.Unmarshal(blob, target) }

func TestFileSecretStore_SetGetClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.sealed")
	s := NewFileSecretStore(path, plainBox{}, logger.Nop())
	ctx := context.Background()

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrSecretNotFound)

	session := models.Session{UserID: 7, Token: "tok", Email: "a@b.c"}
	require.NoError(t, s.Set(ctx, session))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.Clear(ctx))
	_, err = s.Get(ctx)
	assert.ErrorIs(t, err, ErrSecretNotFound)

	// повторный Clear не ошибка
	assert.NoError(t, s.Clear(ctx))
}

func TestFileSecretStore_InvalidSessionTreatedAsMissing(t *testing.T) {
	s := NewFileSecretStore(filepath.Join(t.TempDir(), "s"), plainBox{}, logger.Nop())
	require.NoError(t, s.Set(context.Background(), models.Session{UserID: 7}))

	_, err := s.Get(context.Background())
	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestFileSecretStore_SealedWithRealBox(t *testing.T) {
	box, err := crypto.NewSecretBox("passphrase")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "session.sealed")
	s := NewFileSecretStore(path, box, logger.Nop())

	require.NoError(t, s.Set(context.Background(), models.Session{UserID: 7, Token: "secret-token"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-token")

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret-token", got.Token)

	other, err := crypto.NewSecretBox("another")
	require.NoError(t, err)
	_, err = NewFileSecretStore(path, other, logger.Nop()).Get(context.Background())
	assert.ErrorIs(t, err, ErrStorageFault)
}
