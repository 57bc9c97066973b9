// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the service
// layer and the terminal UI of the quest client.
//
// Keeping them in one place ensures consistent wording on every screen.
package app

const (
	// MsgNetworkUnavailable is shown when the server could not be reached.
	MsgNetworkUnavailable = "server is unreachable, check your connection"

	// MsgServerRejected is shown when the server refused a request without
	// explaining why.
	MsgServerRejected = "the server rejected the request"

	// MsgMalformedResponse is shown when the server reply could not be read.
	MsgMalformedResponse = "the server sent an unexpected response"

	// MsgStorageFault is shown when the local cache failed. Data from the
	// network is still displayed.
	MsgStorageFault = "local cache is unavailable, data is not saved offline"

	// MsgShowingSavedData is appended when stale data stays on screen after
	// a failed refresh.
	MsgShowingSavedData = "showing saved data"

	// MsgSessionRequired is shown when a stored session is missing or
	// unreadable.
	MsgSessionRequired = "please log in"

	// MsgEmptyCredentials is shown when a required auth field is blank.
	MsgEmptyCredentials = "email and password are required"

	// MsgEmptyCode is shown when the verification code is blank.
	MsgEmptyCode = "verification code is required"

	// MsgNothingToUpdate is shown when a profile form was submitted empty.
	MsgNothingToUpdate = "nothing to update"

	// MsgUnexpected covers every other failure.
	MsgUnexpected = "something went wrong"
)
