package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/mock/gomock"

	"chat_syncer/internal/domain"
	"chat_syncer/internal/source/discord"
	"chat_syncer/testdata/utils"
)

func (s *SyncServiceTestSuite) twoResolvedAuthors() map[string]*domain.Author {
	return map[string]*domain.Author{
		"u1": {ID: "auth-1", AccountID: "acc-1", ExternalUserID: "u1", ProfileImageURL: utils.Ptr("url")},
		"u2": {ID: "auth-2", AccountID: "acc-1", ExternalUserID: "u2", ProfileImageURL: utils.Ptr("url")},
	}
}

func (s *SyncServiceTestSuite) TestPersistMessages_FlattensThreadStarterWrapper() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}
	sentAt := s.now.Add(-time.Hour)

	wrapper := discord.Message{
		ID:        "wrapper-1",
		Type:      discord.MessageTypeThreadStarter,
		Content:   "",
		Timestamp: s.now,
		Author:    discord.Author{ID: "u1", Username: "user one"},
		ReferencedMessage: &discord.Message{
			ID:        "root-1",
			Content:   "the real first message",
			Timestamp: sentAt,
			Author:    discord.Author{ID: "u2", Username: "user two"},
		},
	}

	upsert := s.messages.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message *domain.Message) (string, error) {
			// The referenced message's content lands under its own external
			// id, authored by the referenced author.
			s.Equal("root-1", message.ExternalMessageID)
			s.Equal("the real first message", message.Body)
			s.Equal("auth-2", message.AuthorID)
			s.Equal("ch-1", message.ChannelID)
			s.Equal("th-1", message.ThreadID)
			s.Equal(sentAt, message.SentAt)
			return "msg-1", nil
		},
	)
	tx := s.expectTransaction()
	// The wrapper row is removed only after the batch has committed.
	cleanup := s.messages.EXPECT().DeleteWithMentions(ctx, "ch-1", "wrapper-1").Return(nil)
	gomock.InOrder(tx, cleanup)
	_ = upsert

	err := s.service.persistMessages(ctx, []discord.Message{wrapper}, s.twoResolvedAuthors(), "acc-1", thread, stats)

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestPersistMessages_FlattensReplyWithoutCleanup() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	// An ordinary reply carries a referenced message too; its content is
	// flattened but nothing is scheduled for deletion.
	reply := discord.Message{
		ID:        "reply-1",
		Type:      0,
		Content:   "replying",
		Timestamp: s.now,
		Author:    discord.Author{ID: "u1", Username: "user one"},
		ReferencedMessage: &discord.Message{
			ID:        "orig-1",
			Content:   "original",
			Timestamp: s.now.Add(-time.Minute),
			Author:    discord.Author{ID: "u2", Username: "user two"},
		},
	}

	s.expectTransaction()
	s.messages.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, message *domain.Message) (string, error) {
			s.Equal("orig-1", message.ExternalMessageID)
			s.Equal("original", message.Body)
			return "msg-1", nil
		},
	)

	err := s.service.persistMessages(ctx, []discord.Message{reply}, s.twoResolvedAuthors(), "acc-1", thread, stats)

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestPersistMessages_LinksMentions() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	message := discord.Message{
		ID:        "m1",
		Content:   "hey @user two",
		Timestamp: s.now,
		Author:    discord.Author{ID: "u1", Username: "user one"},
		Mentions:  []discord.Author{{ID: "u2", Username: "user two"}},
	}

	s.expectTransaction()
	s.messages.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("msg-1", nil)
	s.messages.EXPECT().LinkMentions(gomock.Any(), "msg-1", []string{"auth-2"}).Return(nil)

	err := s.service.persistMessages(ctx, []discord.Message{message}, s.twoResolvedAuthors(), "acc-1", thread, stats)

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestPersistMessages_CleanupFailureIsSwallowed() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	wrapper := discord.Message{
		ID:        "wrapper-1",
		Type:      discord.MessageTypeThreadStarter,
		Timestamp: s.now,
		Author:    discord.Author{ID: "u1", Username: "user one"},
		ReferencedMessage: &discord.Message{
			ID:        "root-1",
			Content:   "content",
			Timestamp: s.now.Add(-time.Hour),
			Author:    discord.Author{ID: "u1", Username: "user one"},
		},
	}

	s.expectTransaction()
	s.messages.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("msg-1", nil)
	s.messages.EXPECT().DeleteWithMentions(ctx, "ch-1", "wrapper-1").Return(errors.New("row locked"))

	err := s.service.persistMessages(ctx, []discord.Message{wrapper}, s.twoResolvedAuthors(), "acc-1", thread, stats)

	s.NoError(err)
}

func (s *SyncServiceTestSuite) TestPersistMessages_TransactionFailureSkipsCleanup() {
	ctx := context.Background()
	thread := &domain.Thread{ID: "th-1", ChannelID: "ch-1", ExternalThreadID: "ext-th-1"}
	stats := &domain.SyncStats{}

	wrapper := discord.Message{
		ID:        "wrapper-1",
		Type:      discord.MessageTypeThreadStarter,
		Timestamp: s.now,
		Author:    discord.Author{ID: "u1", Username: "user one"},
		ReferencedMessage: &discord.Message{
			ID:        "root-1",
			Content:   "content",
			Timestamp: s.now.Add(-time.Hour),
			Author:    discord.Author{ID: "u1", Username: "user one"},
		},
	}

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("commit failed"))

	err := s.service.persistMessages(ctx, []discord.Message{wrapper}, s.twoResolvedAuthors(), "acc-1", thread, stats)

	s.Error(err)
}
