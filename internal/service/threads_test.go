package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/source/discord"
)

func archivedThread(id, name string, archivedAt time.Time) discord.Thread {
	return discord.Thread{
		ID:           id,
		Name:         name,
		MessageCount: 5,
		ThreadMetadata: discord.ThreadMetadata{
			ArchiveTimestamp: archivedAt,
		},
	}
}

func (s *SyncServiceTestSuite) TestPageThreads_PaginatesUntilNoMore() {
	ctx := context.Background()
	channel := &domain.Channel{ID: "ch-1", AccountID: "acc-1", ExternalChannelID: "ext-ch-1", Name: "general"}
	stats := &domain.SyncStats{}

	older := s.now.Add(-2 * time.Hour)
	oldest := s.now.Add(-3 * time.Hour)

	page1 := &discord.ArchivedThreads{
		Threads: []discord.Thread{
			archivedThread("t1", "first", s.now.Add(-1*time.Hour)),
			archivedThread("t2", "second", older),
		},
		HasMore: true,
	}
	page2 := &discord.ArchivedThreads{
		Threads: []discord.Thread{archivedThread("t3", "third", oldest)},
		HasMore: false,
	}

	s.expectTransaction().Times(2)
	s.threads.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("th", nil).Times(3)

	gomock.InOrder(
		s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", nil, 2).Return(page1, nil),
		// The second request resumes before the oldest archive timestamp of
		// the first page, with the first-page limit no longer applied.
		s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", &older, 0).Return(page2, nil),
		s.channels.EXPECT().UpdateNextPageCursor(ctx, "ch-1", s.now).Return(nil),
	)

	err := s.service.pageThreads(ctx, channel, "tok", false, stats, s.logger)

	s.NoError(err)
	s.Equal(3, stats.Threads)
}

func (s *SyncServiceTestSuite) TestPageThreads_IncrementalStopsAtStoredCursor() {
	ctx := context.Background()
	stored := s.now.Add(-1 * time.Hour)
	channel := &domain.Channel{ID: "ch-1", ExternalChannelID: "ext-ch-1", Name: "general", NextPageCursor: &stored}
	stats := &domain.SyncStats{}

	// The whole page is older than the stored cursor, so the run stops after
	// persisting it even though the server reports more pages.
	page := &discord.ArchivedThreads{
		Threads: []discord.Thread{archivedThread("t1", "old thread", s.now.Add(-2*time.Hour))},
		HasMore: true,
	}

	s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", nil, 2).Return(page, nil)
	s.expectTransaction()
	s.threads.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("th", nil)
	s.channels.EXPECT().UpdateNextPageCursor(ctx, "ch-1", s.now).Return(nil)

	err := s.service.pageThreads(ctx, channel, "tok", false, stats, s.logger)

	s.NoError(err)
	s.Equal(1, stats.Threads)
}

func (s *SyncServiceTestSuite) TestPageThreads_FullSyncIgnoresStoredCursor() {
	ctx := context.Background()
	stored := s.now.Add(-1 * time.Hour)
	channel := &domain.Channel{ID: "ch-1", ExternalChannelID: "ext-ch-1", Name: "general", NextPageCursor: &stored}
	stats := &domain.SyncStats{}

	archivedAt := s.now.Add(-2 * time.Hour)
	page1 := &discord.ArchivedThreads{
		Threads: []discord.Thread{archivedThread("t1", "old thread", archivedAt)},
		HasMore: true,
	}
	page2 := &discord.ArchivedThreads{
		Threads: []discord.Thread{archivedThread("t2", "older thread", s.now.Add(-3*time.Hour))},
		HasMore: false,
	}

	gomock.InOrder(
		s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", nil, 2).Return(page1, nil),
		s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", &archivedAt, 0).Return(page2, nil),
	)
	s.expectTransaction().Times(2)
	s.threads.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("th", nil).Times(2)
	s.channels.EXPECT().UpdateNextPageCursor(ctx, "ch-1", s.now).Return(nil)

	err := s.service.pageThreads(ctx, channel, "tok", true, stats, s.logger)

	s.NoError(err)
	s.Equal(2, stats.Threads)
}

func (s *SyncServiceTestSuite) TestPageThreads_EmptyPageStops() {
	ctx := context.Background()
	channel := &domain.Channel{ID: "ch-1", ExternalChannelID: "ext-ch-1", Name: "general"}
	stats := &domain.SyncStats{}

	s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", nil, 2).Return(&discord.ArchivedThreads{
		Threads: nil,
		HasMore: true,
	}, nil)
	s.channels.EXPECT().UpdateNextPageCursor(ctx, "ch-1", s.now).Return(nil)

	err := s.service.pageThreads(ctx, channel, "tok", false, stats, s.logger)

	s.NoError(err)
	s.Equal(0, stats.Threads)
}

func (s *SyncServiceTestSuite) TestPageThreads_FetchFailureStillAdvancesCursor() {
	ctx := context.Background()
	channel := &domain.Channel{ID: "ch-1", ExternalChannelID: "ext-ch-1", Name: "general"}
	stats := &domain.SyncStats{}

	s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", nil, 2).Return(nil, errors.New("timeout"))
	s.channels.EXPECT().UpdateNextPageCursor(ctx, "ch-1", s.now).Return(nil)

	err := s.service.pageThreads(ctx, channel, "tok", false, stats, s.logger)

	s.NoError(err)
	s.Equal(1, stats.DegradedFetches)
}

func (s *SyncServiceTestSuite) TestPageThreads_SkipsThreadsWithoutID() {
	ctx := context.Background()
	channel := &domain.Channel{ID: "ch-1", ExternalChannelID: "ext-ch-1", Name: "general"}
	stats := &domain.SyncStats{}

	page := &discord.ArchivedThreads{
		Threads: []discord.Thread{
			{Name: "no id"},
			archivedThread("t1", "real", s.now.Add(-1*time.Hour)),
		},
		HasMore: false,
	}

	s.source.EXPECT().ListArchivedThreads(ctx, "tok", "ext-ch-1", nil, 2).Return(page, nil)
	s.expectTransaction()
	s.threads.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, thread *domain.Thread) (string, error) {
			s.Equal("t1", thread.ExternalThreadID)
			s.Equal("real", thread.Slug)
			s.Equal(6, thread.MessageCount)
			return "th-1", nil
		},
	)
	s.channels.EXPECT().UpdateNextPageCursor(ctx, "ch-1", s.now).Return(nil)

	err := s.service.pageThreads(ctx, channel, "tok", false, stats, s.logger)

	s.NoError(err)
	s.Equal(2, stats.Threads)
}
