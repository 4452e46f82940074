package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/source/discord"
)

type Source interface {
	ListGuildChannels(ctx context.Context, token, serverID string) ([]discord.Channel, error)
	ListArchivedThreads(ctx context.Context, token, channelID string, before *time.Time, limit int) (*discord.ArchivedThreads, error)
	ListThreadMessages(ctx context.Context, token, threadID, after string) ([]discord.Message, error)
}

type AccountStore interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}

type ChannelStore interface {
	Upsert(ctx context.Context, channel *domain.Channel) error
	UpdateNextPageCursor(ctx context.Context, channelID string, cursor time.Time) error
}

type ThreadStore interface {
	Upsert(ctx context.Context, thread *domain.Thread) (string, error)
	ListByChannel(ctx context.Context, channelID string) ([]domain.Thread, error)
}

type AuthorStore interface {
	Upsert(ctx context.Context, author *domain.Author) (string, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Author, error)
	UpdateProfileImage(ctx context.Context, authorID, imageURL string) error
}

type MessageStore interface {
	Upsert(ctx context.Context, message *domain.Message) (string, error)
	LinkMentions(ctx context.Context, messageID string, authorIDs []string) error
	GetNewestInThread(ctx context.Context, threadID string) (*domain.Message, error)
	DeleteWithMentions(ctx context.Context, channelID, externalMessageID string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StatusNotifier interface {
	UpdateAndNotifySyncStatus(ctx context.Context, accountID string, status domain.SyncStatus) error
}
