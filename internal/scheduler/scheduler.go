package scheduler

import (
	"context"
	"log/slog"
	"time"

	"chat_syncer/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context, accountID string, fullSync bool) (*domain.SyncStats, error)
}

// AccountLister lists the accounts eligible for synchronization.
type AccountLister interface {
	List(ctx context.Context) ([]domain.Account, error)
}

// Scheduler runs an incremental sync for every stored account on a fixed
// interval. Accounts within a tick run strictly sequentially, which also
// guarantees at most one in-flight sync per account.
type Scheduler struct {
	syncer     Syncer
	accounts   AccountLister
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, accounts AccountLister, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		accounts:   accounts,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		s.logger.Error("failed to list accounts", "error", err)
		return
	}

	for _, account := range accounts {
		if ctx.Err() != nil {
			return
		}
		s.runSync(ctx, account.ID)
	}
}

func (s *Scheduler) runSync(ctx context.Context, accountID string) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.syncer.Sync(syncCtx, accountID, false); err != nil {
		s.logger.Error("sync failed", "account_id", accountID, "error", err)
	}
}
