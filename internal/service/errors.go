package service

import "errors"

var (
	// ErrUnknownResource is returned when a coordinator is asked about a
	// kind it does not hold.
	ErrUnknownResource = errors.New("unknown resource kind")
	// ErrNoSession means no stored session exists and the user must log in.
	ErrNoSession = errors.New("no session")
	// ErrClosed is returned by components used after Close.
	ErrClosed = errors.New("component closed")

	ErrEmptyCredentials = errors.New("email and password are required")
	ErrEmptyCode        = errors.New("verification code is required")
	ErrNothingToUpdate  = errors.New("nothing to update")
)
