// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// newFastBox уменьшает параметры Argon2id, чтобы тесты не жгли 64 MiB на каждый вызов
func newFastBox(t *testing.T, passphrase string) *secretBox {
	t.Helper()
	box, err := NewSecretBox(passphrase)
	require.NoError(t, err)
	sb := box.(*secretBox)
	sb.argonMemory = 1024
	return sb
}

func TestNewSecretBox_EmptyPassphrase(t *testing.T) {
	box, err := NewSecretBox("")
	assert.Nil(t, box)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestSecretBox_RoundTrip(t *testing.T) {
	box := newFastBox(t, "passphrase")

	blob, err := box.Seal(sample{UserID: 7, Token: "tok"})
	require.NoError(t, err)

	var got sample
	require.NoError(t, box.Open(blob, &got))
	assert.Equal(t, sample{UserID: 7, Token: "tok"}, got)
}

func TestSecretBox_SealIsRandomized(t *testing.T) {
	box := newFastBox(t, "passphrase")

	a, err := box.Seal(sample{UserID: 1})
	require.NoError(t, err)
	b, err := box.Seal(sample{UserID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSecretBox_WrongPassphrase(t *testing.T) {
	blob, err := newFastBox(t, "right").Seal(sample{UserID: 1})
	require.NoError(t, err)

	var got sample
	err = newFastBox(t, "wrong").Open(blob, &got)
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestSecretBox_TamperedBlob(t *testing.T) {
	box := newFastBox(t, "passphrase")
	blob, err := box.Seal(sample{UserID: 1})
	require.NoError(t, err)

	blob[len(blob)-1] ^= 0xff

	var got sample
	assert.ErrorIs(t, box.Open(blob, &got), ErrOpenFailed)
}

func TestSecretBox_ShortBlob(t *testing.T) {
	var got sample
	err := newFastBox(t, "passphrase").Open([]byte("short"), &got)
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestSecretBox_UnmarshalableValue(t *testing.T) {
	_, err := newFastBox(t, "passphrase").Seal(make(chan int))
	require.Error(t, err)
}
