package domain

import "time"

// Channel is a persisted external channel. NextPageCursor marks the point up
// to which archived threads have been synchronized; it only moves forward,
// and only after a full thread-paging pass over the channel completes.
type Channel struct {
	ID                string     `db:"id"`
	AccountID         string     `db:"account_id"`
	ExternalChannelID string     `db:"external_channel_id"`
	Name              string     `db:"channel_name"`
	NextPageCursor    *time.Time `db:"next_page_cursor"`
	CreatedAt         time.Time  `db:"created_at"`
}

// Thread maps 1:1 to an external archived thread. ExternalThreadID is unique
// across the whole store, not per channel.
type Thread struct {
	ID               string    `db:"id"`
	ChannelID        string    `db:"channel_id"`
	ExternalThreadID string    `db:"external_thread_id"`
	Slug             string    `db:"slug"`
	MessageCount     int       `db:"message_count"`
	CreatedAt        time.Time `db:"created_at"`
}
