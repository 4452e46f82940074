package service

import (
	"context"
	"fmt"
	"log/slog"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/source/discord"
)

// pageMessages walks a thread's messages from oldest to newest. Incremental
// runs resume after the newest stored message, falling back to the thread's
// own external id (the root message) when nothing is stored yet; a full sync
// starts from the beginning. The endpoint has no has_more flag: a page of
// exactly the page-size ceiling means more pages likely exist, anything
// smaller is the last page. Fetch failures end the walk for this thread only.
func (s *SyncService) pageMessages(ctx context.Context, accountID string, thread *domain.Thread, token string, authors map[string]*domain.Author, fullSync bool, stats *domain.SyncStats, logger *slog.Logger) error {
	logger = logger.With("thread", thread.ExternalThreadID)

	after := ""
	if !fullSync {
		newest, err := s.messages.GetNewestInThread(ctx, thread.ID)
		if err != nil {
			return fmt.Errorf("resolve resume point for thread %s: %w", thread.ExternalThreadID, err)
		}
		if newest != nil {
			after = newest.ExternalMessageID
		} else {
			after = thread.ExternalThreadID
		}
	}

	hasMore := true
	for hasMore {
		page, err := s.source.ListThreadMessages(ctx, token, thread.ExternalThreadID, after)
		if err != nil {
			logger.Warn("thread messages fetch failed, stopping pagination", "error", err)
			stats.DegradedFetches++
			return nil
		}

		hasMore = len(page) == s.config.MessagePageSize
		if len(page) == 0 {
			return nil
		}

		if err := s.persistMessages(ctx, page, authors, accountID, thread, stats); err != nil {
			return err
		}
		stats.Messages += len(page)
		logger.Debug("message page persisted", "count", len(page))

		if hasMore {
			after = newestMessageID(page)
		}
	}

	return nil
}

func newestMessageID(messages []discord.Message) string {
	if len(messages) == 0 {
		return ""
	}

	newest := messages[0]
	for _, m := range messages[1:] {
		if m.Timestamp.After(newest.Timestamp) {
			newest = m
		}
	}
	return newest.ID
}
