package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/source/discord"
	"chat_syncer/testdata/utils"
)

// resolvedAuthors returns a map that already contains u1 with an avatar, so
// message paging tests trigger no author store traffic.
func resolvedAuthors() map[string]*domain.Author {
	return map[string]*domain.Author{
		"u1": {
			ID:              "auth-1",
			AccountID:       "acc-1",
			ExternalUserID:  "u1",
			DisplayName:     "user one",
			ProfileImageURL: utils.Ptr("https://cdn.example/u1.png"),
		},
	}
}

func makeMessages(n, offset int, base time.Time) []discord.Message {
	messages := make([]discord.Message, n)
	for i := 0; i < n; i++ {
		messages[i] = discord.Message{
			ID:        fmt.Sprintf("m%d", offset+i),
			Content:   fmt.Sprintf("message %d", offset+i),
			Timestamp: base.Add(time.Duration(offset+i) * time.Second),
			Author:    discord.Author{ID: "u1", Username: "user one"},
		}
	}
	return messages
}

func (s *SyncServiceTestSuite) TestPageMessages_StopsAfterShortPage() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}
	base := s.now.Add(-24 * time.Hour)

	page1 := makeMessages(50, 0, base)
	page2 := makeMessages(50, 50, base)
	page3 := makeMessages(13, 100, base)

	s.messages.EXPECT().GetNewestInThread(ctx, "th-1").Return(nil, nil)

	// Exactly three requests: two full pages, then a short final page.
	gomock.InOrder(
		s.source.EXPECT().ListThreadMessages(ctx, "tok", "ext-th-1", "ext-th-1").Return(page1, nil),
		s.source.EXPECT().ListThreadMessages(ctx, "tok", "ext-th-1", "m49").Return(page2, nil),
		s.source.EXPECT().ListThreadMessages(ctx, "tok", "ext-th-1", "m99").Return(page3, nil),
	)

	s.expectTransaction().Times(3)
	s.messages.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("msg", nil).Times(113)

	err := s.service.pageMessages(ctx, "acc-1", thread, "tok", resolvedAuthors(), false, stats, s.logger)

	s.NoError(err)
	s.Equal(113, stats.Messages)
}

func (s *SyncServiceTestSuite) TestPageMessages_ResumesAfterNewestStored() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	s.messages.EXPECT().GetNewestInThread(ctx, "th-1").Return(&domain.Message{
		ID:                "msg-900",
		ExternalMessageID: "900",
	}, nil)
	s.source.EXPECT().ListThreadMessages(ctx, "tok", "ext-th-1", "900").Return(nil, nil)

	err := s.service.pageMessages(ctx, "acc-1", thread, "tok", resolvedAuthors(), false, stats, s.logger)

	s.NoError(err)
	s.Equal(0, stats.Messages)
}

func (s *SyncServiceTestSuite) TestPageMessages_FullSyncStartsFromBeginning() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	// No resume-point lookup and no after cursor on the first request.
	s.source.EXPECT().ListThreadMessages(ctx, "tok", "ext-th-1", "").Return(nil, nil)

	err := s.service.pageMessages(ctx, "acc-1", thread, "tok", resolvedAuthors(), true, stats, s.logger)

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestPageMessages_FetchFailureDegrades() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	s.messages.EXPECT().GetNewestInThread(ctx, "th-1").Return(nil, nil)
	s.source.EXPECT().ListThreadMessages(ctx, "tok", "ext-th-1", "ext-th-1").Return(nil, errors.New("timeout"))

	err := s.service.pageMessages(ctx, "acc-1", thread, "tok", resolvedAuthors(), false, stats, s.logger)

	s.NoError(err)
	s.Equal(1, stats.DegradedFetches)
	s.Equal(0, stats.Messages)
}

func (s *SyncServiceTestSuite) TestPageMessages_ResumePointLookupFailurePropagates() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	s.messages.EXPECT().GetNewestInThread(ctx, "th-1").Return(nil, errors.New("db gone"))

	err := s.service.pageMessages(ctx, "acc-1", thread, "tok", resolvedAuthors(), false, stats, s.logger)

	s.Error(err)
	s.ErrorContains(err, "resolve resume point")
}

func (s *SyncServiceTestSuite) TestNewestMessageID() {
	base := s.now
	messages := []discord.Message{
		{ID: "m2", Timestamp: base.Add(2 * time.Second)},
		{ID: "m3", Timestamp: base.Add(3 * time.Second)},
		{ID: "m1", Timestamp: base.Add(1 * time.Second)},
	}

	s.Equal("m3", newestMessageID(messages))
	s.Equal("", newestMessageID(nil))
}
