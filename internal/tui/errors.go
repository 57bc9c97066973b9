// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-quest-client/internal/service"
)

// ErrUserQuit is returned when the user leaves the program from a TUI flow.
var ErrUserQuit = errors.New("вышел из программы")

func humanizeError(err error) string {
	return service.UserMessage(err)
}
