package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/slug"
	"chat_syncer/internal/source/discord"
)

// pageThreads walks a channel's archived threads from newest to oldest,
// persisting every page before requesting the next one so partial progress
// survives a failing later page. Fetch failures end the walk as if the server
// had reported no more pages; the channel cursor is captured at the start of
// the walk, so a truncated pass never claims coverage it does not have.
func (s *SyncService) pageThreads(ctx context.Context, channel *domain.Channel, token string, fullSync bool, stats *domain.SyncStats, logger *slog.Logger) error {
	logger = logger.With("channel", channel.Name)

	// Everything archived after this instant belongs to the next run.
	cursorFlag := s.now()

	var before *time.Time
	hasMore := true
	for hasMore {
		limit := 0
		if before == nil {
			limit = s.config.FirstPageLimit
		}

		page, err := s.source.ListArchivedThreads(ctx, token, channel.ExternalChannelID, before, limit)
		if err != nil {
			logger.Warn("archived threads fetch failed, stopping pagination", "error", err)
			stats.DegradedFetches++
			break
		}

		hasMore = page.HasMore
		if len(page.Threads) == 0 {
			break
		}

		if err := s.persistThreads(ctx, page.Threads, channel.ID); err != nil {
			return err
		}
		stats.Threads += len(page.Threads)
		logger.Debug("thread page persisted", "count", len(page.Threads), "has_more", hasMore)

		if hasMore {
			if oldest := oldestArchiveTimestamp(page.Threads); oldest != nil {
				before = oldest
			}
		}

		// Incremental runs stop once the page overlaps data covered by the
		// previous run. Persisting it again would be harmless, fetching
		// further pages is pointless.
		if !fullSync && channel.NextPageCursor != nil && before != nil && channel.NextPageCursor.After(*before) {
			logger.Debug("reached previously synchronized range")
			break
		}
	}

	if err := s.channels.UpdateNextPageCursor(ctx, channel.ID, cursorFlag); err != nil {
		return fmt.Errorf("update cursor for channel %s: %w", channel.Name, err)
	}

	return nil
}

func (s *SyncService) persistThreads(ctx context.Context, threads []discord.Thread, channelID string) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, t := range threads {
			if t.ID == "" {
				continue
			}

			thread := &domain.Thread{
				ChannelID:        channelID,
				ExternalThreadID: t.ID,
				Slug:             slug.Create(t.Name),
				// The platform's count excludes the root message.
				MessageCount: t.MessageCount + 1,
			}
			if _, err := s.threads.Upsert(txCtx, thread); err != nil {
				return fmt.Errorf("upsert thread %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

func oldestArchiveTimestamp(threads []discord.Thread) *time.Time {
	var oldest *time.Time
	for i := range threads {
		ts := threads[i].ThreadMetadata.ArchiveTimestamp
		if ts.IsZero() {
			continue
		}
		if oldest == nil || ts.Before(*oldest) {
			oldest = &ts
		}
	}
	return oldest
}
