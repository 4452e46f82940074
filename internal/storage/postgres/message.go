package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chat_syncer/internal/domain"
)

type MessageStore struct {
	db *sqlx.DB
}

func NewMessageStore(db *sqlx.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Upsert persists the message keyed by (channel_id, external_message_id).
// Body, author and thread references are overwritten on conflict; sent_at is
// immutable after creation.
func (s *MessageStore) Upsert(ctx context.Context, message *domain.Message) (string, error) {
	query := `
		INSERT INTO messages (
			id, channel_id, thread_id, author_id, external_message_id, body, sent_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (channel_id, external_message_id) DO UPDATE SET
			thread_id = EXCLUDED.thread_id,
			author_id = EXCLUDED.author_id,
			body = EXCLUDED.body
		RETURNING id`

	var id string
	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		uuid.NewString(),
		message.ChannelID,
		message.ThreadID,
		message.AuthorID,
		message.ExternalMessageID,
		message.Body,
		message.SentAt,
	)
	if err := row.Scan(&id); err != nil {
		return "", err
	}

	message.ID = id
	return id, nil
}

// LinkMentions records the mention links for a message, skipping pairs that
// already exist.
func (s *MessageStore) LinkMentions(ctx context.Context, messageID string, authorIDs []string) error {
	if len(authorIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO mentions (message_id, author_id) VALUES ")
	valueArgs := make([]interface{}, 0, len(authorIDs)+1)
	valueArgs = append(valueArgs, messageID)

	for i, authorID := range authorIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, authorID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// GetNewestInThread returns the chronologically newest stored message of a
// thread, or nil when the thread has none.
func (s *MessageStore) GetNewestInThread(ctx context.Context, threadID string) (*domain.Message, error) {
	var message domain.Message
	query := `
		SELECT id, channel_id, thread_id, author_id, external_message_id, body, sent_at, created_at
		FROM messages
		WHERE thread_id = $1
		ORDER BY sent_at DESC
		LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &message, query, threadID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// DeleteWithMentions removes a message by its natural key, dropping its
// mention links first. Missing rows are not an error.
func (s *MessageStore) DeleteWithMentions(ctx context.Context, channelID, externalMessageID string) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx, `
		DELETE FROM mentions
		WHERE message_id IN (
			SELECT id FROM messages
			WHERE channel_id = $1 AND external_message_id = $2
		)`, channelID, externalMessageID)
	if err != nil {
		return err
	}

	_, err = exec.ExecContext(ctx,
		"DELETE FROM messages WHERE channel_id = $1 AND external_message_id = $2",
		channelID, externalMessageID,
	)
	return err
}
