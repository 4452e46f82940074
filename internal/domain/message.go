package domain

import "time"

// Author is a resolved user identity, created on first sighting in any
// message, mention or referenced message. ProfileImageURL is backfilled
// lazily when a later sighting carries avatar information.
type Author struct {
	ID              string    `db:"id"`
	AccountID       string    `db:"account_id"`
	ExternalUserID  string    `db:"external_user_id"`
	DisplayName     string    `db:"display_name"`
	AnonymousAlias  string    `db:"anonymous_alias"`
	IsBot           bool      `db:"is_bot"`
	IsAdmin         bool      `db:"is_admin"`
	ProfileImageURL *string   `db:"profile_image_url"`
	CreatedAt       time.Time `db:"created_at"`
}

// Message is a persisted chat message. (ChannelID, ExternalMessageID) is the
// natural key for upserts. Mentions holds internal author IDs referenced by
// the message body and is persisted through the mention link table.
type Message struct {
	ID                string    `db:"id"`
	ChannelID         string    `db:"channel_id"`
	ThreadID          string    `db:"thread_id"`
	AuthorID          string    `db:"author_id"`
	ExternalMessageID string    `db:"external_message_id"`
	Body              string    `db:"body"`
	SentAt            time.Time `db:"sent_at"`
	CreatedAt         time.Time `db:"created_at"`
	Mentions          []string  `db:"-"`
}
