// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals the locally stored session with a key derived from a
// configured passphrase.
package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

var (
	// ErrEmptyPassphrase is returned by NewSecretBox for an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")
	// ErrOpenFailed means the blob is truncated, corrupted or sealed with
	// another passphrase.
	ErrOpenFailed = errors.New("secret box open failed")
)

type secretBox struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSecretBox constructs a [SecretBox] with the Argon2id parameters
// recommended by OWASP: 1 iteration, 64 MiB, 4 threads, 256-bit key.
func NewSecretBox(passphrase string) (SecretBox, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	return &secretBox{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}, nil
}

func (b *secretBox) deriveKey(salt []byte) []byte {
	return argon2.IDKey(b.passphrase, salt, b.argonTime, b.argonMemory, b.argonThreads, chacha20poly1305.KeySize)
}

// Seal implements [SecretBox].
func (b *secretBox) Seal(v any) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(b.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), saltSize+aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	return aead.Seal(blob, nonce, plaintext, salt), nil
}

// Open implements [SecretBox].
func (b *secretBox) Open(blob []byte, target any) error {
	if len(blob) < saltSize+chacha20poly1305.NonceSizeX {
		return fmt.Errorf("%w: blob too short", ErrOpenFailed)
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(b.deriveKey(salt))
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}

	// salt идёт как associated data, подмена соли ломает тег
	plaintext, err := aead.Open(nil, nonce, ciphertext, salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}
