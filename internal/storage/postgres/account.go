package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"chat_syncer/internal/domain"
)

type AccountStore struct {
	db *sqlx.DB
}

func NewAccountStore(db *sqlx.DB) *AccountStore {
	return &AccountStore{db: db}
}

// GetByID returns the account, or nil when it does not exist.
func (s *AccountStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	query := `
		SELECT id, external_server_id, sync_status, api_token, created_at, updated_at
		FROM accounts
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &account, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountStore) List(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	query := `
		SELECT id, external_server_id, sync_status, api_token, created_at, updated_at
		FROM accounts
		ORDER BY created_at, id`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &accounts, query)
	return accounts, err
}

func (s *AccountStore) UpdateSyncStatus(ctx context.Context, id string, status domain.SyncStatus) error {
	query := `
		UPDATE accounts
		SET sync_status = $2, updated_at = now()
		WHERE id = $1`

	result, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, status)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
