package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound is returned when the requested account does not
	// exist or has no external server attached.
	ErrAccountNotFound = errors.New("account not found")

	// ErrMissingCredential is returned when neither the account nor the
	// configuration carries an API token.
	ErrMissingCredential = errors.New("no api token configured")
)

// SyncStats holds statistics about a sync run.
type SyncStats struct {
	AccountID       string
	Channels        int
	Threads         int
	Messages        int
	NewAuthors      int
	DegradedFetches int
	Duration        time.Duration
}
