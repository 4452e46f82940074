package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chat_syncer/internal/domain"
)

type ThreadStore struct {
	db *sqlx.DB
}

func NewThreadStore(db *sqlx.DB) *ThreadStore {
	return &ThreadStore{db: db}
}

// Upsert persists the thread keyed by its external id. The external id is
// unique across all channels, so a conflict only refreshes message_count.
func (s *ThreadStore) Upsert(ctx context.Context, thread *domain.Thread) (string, error) {
	query := `
		INSERT INTO threads (id, channel_id, external_thread_id, slug, message_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (external_thread_id) DO UPDATE SET
			message_count = EXCLUDED.message_count
		RETURNING id`

	var id string
	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		uuid.NewString(),
		thread.ChannelID,
		thread.ExternalThreadID,
		thread.Slug,
		thread.MessageCount,
	)
	if err := row.Scan(&id); err != nil {
		return "", err
	}

	thread.ID = id
	return id, nil
}

func (s *ThreadStore) ListByChannel(ctx context.Context, channelID string) ([]domain.Thread, error) {
	var threads []domain.Thread
	query := `
		SELECT id, channel_id, external_thread_id, slug, message_count, created_at
		FROM threads
		WHERE channel_id = $1
		ORDER BY created_at, id`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &threads, query, channelID)
	return threads, err
}
