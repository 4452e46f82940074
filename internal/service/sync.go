package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat_syncer/internal/config"
	"chat_syncer/internal/domain"
	"chat_syncer/internal/source/discord"
)

// SyncService drives one account's archival sync: it lists and persists the
// server's channels, pages each channel's archived threads, then pages each
// thread's messages into the store. Channels and threads are processed
// strictly sequentially; a single run owns all mutable state it touches, so
// runs for different accounts may execute in parallel while runs for the same
// account must not overlap.
type SyncService struct {
	source    Source
	accounts  AccountStore
	channels  ChannelStore
	threads   ThreadStore
	authors   AuthorStore
	messages  MessageStore
	txManager TransactionManager
	notifier  StatusNotifier
	logger    *slog.Logger
	config    config.SyncConfig
	token     string
	now       func() time.Time
}

func NewSyncService(
	source Source,
	accounts AccountStore,
	channels ChannelStore,
	threads ThreadStore,
	authors AuthorStore,
	messages MessageStore,
	txManager TransactionManager,
	notifier StatusNotifier,
	logger *slog.Logger,
	cfg config.SyncConfig,
	defaultToken string,
) *SyncService {
	return &SyncService{
		source:    source,
		accounts:  accounts,
		channels:  channels,
		threads:   threads,
		authors:   authors,
		messages:  messages,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
		config:    cfg,
		token:     defaultToken,
		now:       time.Now,
	}
}

// Sync synchronizes one account. Account resolution and credential failures
// are terminal and reported before any status transition; any failure after
// the IN_PROGRESS transition flips the status to ERROR and is re-raised, and
// completion flips it to DONE.
func (s *SyncService) Sync(ctx context.Context, accountID string, fullSync bool) (*domain.SyncStats, error) {
	startTime := s.now()
	logger := s.logger.With("account_id", accountID, "full_sync", fullSync)

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if account == nil || account.ExternalServerID == "" {
		return nil, domain.ErrAccountNotFound
	}

	token := account.Token(s.token)
	if token == "" {
		return nil, domain.ErrMissingCredential
	}

	if err := s.notifier.UpdateAndNotifySyncStatus(ctx, account.ID, domain.SyncInProgress); err != nil {
		return nil, fmt.Errorf("mark sync in progress: %w", err)
	}

	logger.Info("starting sync")

	stats := &domain.SyncStats{AccountID: account.ID}
	if err := s.run(ctx, account, token, fullSync, stats, logger); err != nil {
		if nerr := s.notifier.UpdateAndNotifySyncStatus(ctx, account.ID, domain.SyncError); nerr != nil {
			logger.Error("failed to mark sync error", "error", nerr)
		}
		return stats, err
	}

	if err := s.notifier.UpdateAndNotifySyncStatus(ctx, account.ID, domain.SyncDone); err != nil {
		return stats, fmt.Errorf("mark sync done: %w", err)
	}

	stats.Duration = s.now().Sub(startTime)

	logger.Info("sync completed",
		"channels", stats.Channels,
		"threads", stats.Threads,
		"messages", stats.Messages,
		"new_authors", stats.NewAuthors,
		"degraded_fetches", stats.DegradedFetches,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) run(ctx context.Context, account *domain.Account, token string, fullSync bool, stats *domain.SyncStats, logger *slog.Logger) error {
	channels, err := s.listChannelsAndPersist(ctx, account, token)
	if err != nil {
		return err
	}
	stats.Channels = len(channels)
	logger.Info("channels persisted", "count", len(channels))

	authors, err := s.loadAuthors(ctx, account.ID)
	if err != nil {
		return fmt.Errorf("load authors: %w", err)
	}

	for i := range channels {
		channel := &channels[i]
		if err := s.pageThreads(ctx, channel, token, fullSync, stats, logger); err != nil {
			return err
		}

		// Query the store rather than reusing the fetched pages: threads
		// persisted by earlier runs need their messages refreshed too.
		threads, err := s.threads.ListByChannel(ctx, channel.ID)
		if err != nil {
			return fmt.Errorf("list threads for channel %s: %w", channel.Name, err)
		}
		logger.Info("syncing thread messages", "channel", channel.Name, "threads", len(threads))

		for j := range threads {
			if err := s.pageMessages(ctx, account.ID, &threads[j], token, authors, fullSync, stats, logger); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SyncService) listChannelsAndPersist(ctx context.Context, account *domain.Account, token string) ([]domain.Channel, error) {
	apiChannels, err := s.source.ListGuildChannels(ctx, token, account.ExternalServerID)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}

	var saved []domain.Channel
	for _, apiChannel := range apiChannels {
		if apiChannel.Type != discord.ChannelTypeGuildText {
			continue
		}

		channel := domain.Channel{
			AccountID:         account.ID,
			ExternalChannelID: apiChannel.ID,
			Name:              apiChannel.Name,
		}
		if err := s.channels.Upsert(ctx, &channel); err != nil {
			return nil, fmt.Errorf("upsert channel %s: %w", apiChannel.Name, err)
		}
		saved = append(saved, channel)
	}

	return saved, nil
}

func (s *SyncService) loadAuthors(ctx context.Context, accountID string) (map[string]*domain.Author, error) {
	stored, err := s.authors.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	authors := make(map[string]*domain.Author, len(stored))
	for i := range stored {
		authors[stored[i].ExternalUserID] = &stored[i]
	}
	return authors, nil
}
