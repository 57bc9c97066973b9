// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/app"
	"github.com/MKhiriev/go-quest-client/internal/store"
)

// UserMessage translates an error from the service layer into the text
// shown to the user. A nil error yields an empty string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var rejected *adapter.RejectedError
	switch {
	case errors.As(err, &rejected):
		if msg := strings.TrimSpace(rejected.Message); msg != "" {
			return msg
		}
		return app.MsgServerRejected
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNetworkUnavailable
	case errors.Is(err, adapter.ErrMalformedResponse):
		return app.MsgMalformedResponse
	case errors.Is(err, store.ErrStorageFault):
		return app.MsgStorageFault
	case errors.Is(err, ErrNoSession):
		return app.MsgSessionRequired
	case errors.Is(err, ErrEmptyCredentials):
		return app.MsgEmptyCredentials
	case errors.Is(err, ErrEmptyCode):
		return app.MsgEmptyCode
	case errors.Is(err, ErrNothingToUpdate):
		return app.MsgNothingToUpdate
	}

	return app.MsgUnexpected
}

// NoticeMessage is UserMessage for a non-blocking notice: a network
// problem while stale data stays visible says so.
func NoticeMessage(err error, hasData bool) string {
	msg := UserMessage(err)
	if msg == "" || !hasData || errors.Is(err, store.ErrStorageFault) {
		return msg
	}
	return msg + ", " + app.MsgShowingSavedData
}
