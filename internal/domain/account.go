package domain

import "time"

// SyncStatus tracks the lifecycle of an account's sync run.
type SyncStatus string

const (
	SyncPending    SyncStatus = "PENDING"
	SyncInProgress SyncStatus = "IN_PROGRESS"
	SyncDone       SyncStatus = "DONE"
	SyncError      SyncStatus = "ERROR"
)

// Account is the tenant being synchronized, mapped to one external server.
type Account struct {
	ID               string     `db:"id"`
	ExternalServerID string     `db:"external_server_id"`
	SyncStatus       SyncStatus `db:"sync_status"`
	APIToken         *string    `db:"api_token"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// Token returns the account-scoped bot token, or fallback when none is set.
func (a *Account) Token(fallback string) string {
	if a.APIToken != nil && *a.APIToken != "" {
		return *a.APIToken
	}
	return fallback
}
