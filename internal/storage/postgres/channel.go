package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chat_syncer/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// Upsert persists the channel keyed by (account_id, external_channel_id) and
// fills in the stored id and next_page_cursor, so callers see the cursor from
// any previous sync run.
func (s *ChannelStore) Upsert(ctx context.Context, channel *domain.Channel) error {
	query := `
		INSERT INTO channels (id, account_id, external_channel_id, channel_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id, external_channel_id) DO UPDATE SET
			channel_name = EXCLUDED.channel_name
		RETURNING id, next_page_cursor`

	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		uuid.NewString(),
		channel.AccountID,
		channel.ExternalChannelID,
		channel.Name,
	)
	return row.Scan(&channel.ID, &channel.NextPageCursor)
}

func (s *ChannelStore) ListByAccount(ctx context.Context, accountID string) ([]domain.Channel, error) {
	var channels []domain.Channel
	query := `
		SELECT id, account_id, external_channel_id, channel_name, next_page_cursor, created_at
		FROM channels
		WHERE account_id = $1
		ORDER BY created_at, id`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &channels, query, accountID)
	return channels, err
}

// UpdateNextPageCursor advances the channel's thread-sync resume point.
func (s *ChannelStore) UpdateNextPageCursor(ctx context.Context, channelID string, cursor time.Time) error {
	query := `
		UPDATE channels
		SET next_page_cursor = $2
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, channelID, cursor)
	return err
}
