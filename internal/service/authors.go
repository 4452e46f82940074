package service

import (
	"context"
	"fmt"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/slug"
	"chat_syncer/internal/source/discord"
)

// resolveAuthors makes every user sighted in the batch resolvable through the
// authors map, creating missing identities and backfilling missing avatars.
// The map is mutated in place; it is the per-run cache shared by all batches
// of a sync run. The database unique constraint on the external user id is
// the dedup authority, the map only saves round trips.
func (s *SyncService) resolveAuthors(ctx context.Context, messages []discord.Message, authors map[string]*domain.Author, accountID string, stats *domain.SyncStats) error {
	sighted := make(map[string]discord.Author)
	var order []string
	record := func(a discord.Author) {
		if a.ID == "" {
			return
		}
		if _, ok := sighted[a.ID]; !ok {
			order = append(order, a.ID)
		}
		sighted[a.ID] = a
	}

	for _, m := range messages {
		record(m.Author)
		for _, mention := range m.Mentions {
			record(mention)
		}
		if ref := m.ReferencedMessage; ref != nil {
			record(ref.Author)
			for _, mention := range ref.Mentions {
				record(mention)
			}
		}
	}

	for _, externalID := range order {
		sighting := sighted[externalID]

		existing, ok := authors[externalID]
		if !ok {
			author := &domain.Author{
				AccountID:      accountID,
				ExternalUserID: externalID,
				DisplayName:    sighting.Username,
				AnonymousAlias: slug.RandomWords(),
				IsBot:          sighting.Bot,
			}
			if sighting.Avatar != nil && *sighting.Avatar != "" {
				imageURL := discord.AvatarURL(externalID, *sighting.Avatar)
				author.ProfileImageURL = &imageURL
			}

			if _, err := s.authors.Upsert(ctx, author); err != nil {
				return fmt.Errorf("create author %s: %w", externalID, err)
			}
			authors[externalID] = author
			stats.NewAuthors++
			continue
		}

		if existing.ProfileImageURL == nil && sighting.Avatar != nil && *sighting.Avatar != "" {
			imageURL := discord.AvatarURL(externalID, *sighting.Avatar)
			if err := s.authors.UpdateProfileImage(ctx, existing.ID, imageURL); err != nil {
				return fmt.Errorf("backfill avatar for author %s: %w", externalID, err)
			}
			existing.ProfileImageURL = &imageURL
		}
	}

	return nil
}
