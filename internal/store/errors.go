package store

import (
	"errors"
	"fmt"
)

// ErrStorageFault wraps every failure of the local cache or the secret
// store. Callers treat it as non-fatal: network data is still shown.
var ErrStorageFault = errors.New("storage fault")

// Sentinel errors for well-known empty results.
var (
	// ErrProfileNotFound is returned when no profile row is cached for the user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSecretNotFound is returned when no session has been stored yet.
	ErrSecretNotFound = errors.New("secret not found")
)

// Low-level database operation errors. They are always wrapped together with
// [ErrStorageFault] so callers can match either.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, REPLACE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning or decoding a result row
	// fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when an item cannot be encoded for
	// storage.
	ErrEncodingPayload = errors.New("failed to encode payload")

	// ErrInvalidRows is returned when a save mixes rows of different users.
	ErrInvalidRows = errors.New("invalid rows")
)

// fault wraps err with ErrStorageFault and the operation sentinel.
func fault(op, err error) error {
	return fmt.Errorf("%w: %w: %w", ErrStorageFault, op, err)
}
