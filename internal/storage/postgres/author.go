package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chat_syncer/internal/domain"
)

type AuthorStore struct {
	db *sqlx.DB
}

func NewAuthorStore(db *sqlx.DB) *AuthorStore {
	return &AuthorStore{db: db}
}

// Upsert creates the author if the (account_id, external_user_id) pair is new
// and returns the stored id either way. Only display_name is refreshed on
// conflict; alias, flags and avatar survive re-sightings.
func (s *AuthorStore) Upsert(ctx context.Context, author *domain.Author) (string, error) {
	query := `
		INSERT INTO authors (
			id, account_id, external_user_id, display_name, anonymous_alias,
			is_bot, is_admin, profile_image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_id, external_user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name
		RETURNING id`

	var id string
	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		uuid.NewString(),
		author.AccountID,
		author.ExternalUserID,
		author.DisplayName,
		author.AnonymousAlias,
		author.IsBot,
		author.IsAdmin,
		author.ProfileImageURL,
	)
	if err := row.Scan(&id); err != nil {
		return "", err
	}

	author.ID = id
	return id, nil
}

func (s *AuthorStore) ListByAccount(ctx context.Context, accountID string) ([]domain.Author, error) {
	var authors []domain.Author
	query := `
		SELECT id, account_id, external_user_id, display_name, anonymous_alias,
			is_bot, is_admin, profile_image_url, created_at
		FROM authors
		WHERE account_id = $1`

	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &authors, query, accountID)
	return authors, err
}

func (s *AuthorStore) UpdateProfileImage(ctx context.Context, authorID, imageURL string) error {
	query := `
		UPDATE authors
		SET profile_image_url = $2
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, authorID, imageURL)
	return err
}
