package service

import (
	"context"
	"fmt"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/source/discord"
)

// persistMessages normalizes and stores one page of raw messages. A message
// wrapping a non-empty referenced message is flattened to the referenced
// content; thread-starter wrappers are additionally scheduled for removal
// once the batch commits, since they are synthetic pointers with no content
// of their own. The whole batch commits in a single transaction; the cleanup
// deletions run afterwards, best effort.
func (s *SyncService) persistMessages(ctx context.Context, messages []discord.Message, authors map[string]*domain.Author, accountID string, thread *domain.Thread, stats *domain.SyncStats) error {
	if err := s.resolveAuthors(ctx, messages, authors, accountID, stats); err != nil {
		return err
	}

	batch := make([]domain.Message, 0, len(messages))
	var cleanup []string
	for _, m := range messages {
		effective := m
		if m.ReferencedMessage != nil && m.ReferencedMessage.Content != "" {
			if m.Type == discord.MessageTypeThreadStarter {
				cleanup = append(cleanup, m.ID)
			}
			effective = *m.ReferencedMessage
		}

		author, ok := authors[effective.Author.ID]
		if !ok {
			return fmt.Errorf("author %s not resolved for message %s", effective.Author.ID, effective.ID)
		}

		message := domain.Message{
			ChannelID:         thread.ChannelID,
			ThreadID:          thread.ID,
			AuthorID:          author.ID,
			ExternalMessageID: effective.ID,
			Body:              effective.Content,
			SentAt:            effective.Timestamp,
		}
		for _, mention := range effective.Mentions {
			if mentioned, ok := authors[mention.ID]; ok {
				message.Mentions = append(message.Mentions, mentioned.ID)
			}
		}
		batch = append(batch, message)
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range batch {
			id, err := s.messages.Upsert(txCtx, &batch[i])
			if err != nil {
				return fmt.Errorf("upsert message %s: %w", batch[i].ExternalMessageID, err)
			}
			if len(batch[i].Mentions) > 0 {
				if err := s.messages.LinkMentions(txCtx, id, batch[i].Mentions); err != nil {
					return fmt.Errorf("link mentions for message %s: %w", batch[i].ExternalMessageID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, externalID := range cleanup {
		if err := s.messages.DeleteWithMentions(ctx, thread.ChannelID, externalID); err != nil {
			s.logger.Warn("failed to remove thread starter wrapper",
				"external_message_id", externalID,
				"error", err,
			)
		}
	}

	return nil
}
