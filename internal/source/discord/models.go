package discord

import "time"

// Message type 21 is the synthetic "thread starter" message the platform
// emits as the first message of a public thread. It points back at the real
// message via referenced_message and carries no content of its own.
const MessageTypeThreadStarter = 21

// ChannelTypeGuildText identifies regular text channels in a server.
const ChannelTypeGuildText = 0

type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

type Author struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
	Bot      bool    `json:"bot"`
}

type Message struct {
	ID                string    `json:"id"`
	Type              int       `json:"type"`
	Content           string    `json:"content"`
	Timestamp         time.Time `json:"timestamp"`
	Author            Author    `json:"author"`
	Mentions          []Author  `json:"mentions"`
	ReferencedMessage *Message  `json:"referenced_message"`
}

type ThreadMetadata struct {
	ArchiveTimestamp time.Time `json:"archive_timestamp"`
}

type Thread struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	MessageCount   int            `json:"message_count"`
	ThreadMetadata ThreadMetadata `json:"thread_metadata"`
}

// ArchivedThreads is one page of the archived-threads endpoint. Threads are
// ordered by archive_timestamp, newest first.
type ArchivedThreads struct {
	Threads []Thread `json:"threads"`
	HasMore bool     `json:"has_more"`
}
