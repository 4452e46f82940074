package notify

import (
	"context"
	"fmt"

	"chat_syncer/internal/domain"
)

// StatusStore persists the sync status on the account row.
type StatusStore interface {
	UpdateSyncStatus(ctx context.Context, accountID string, status domain.SyncStatus) error
}

// EventPublisher fans a status transition out to interested consumers.
type EventPublisher interface {
	PublishStatus(ctx context.Context, accountID string, status domain.SyncStatus) error
}

// Notifier couples the two halves of a status transition: the account row is
// updated first, then the event is published. Either failure propagates, so
// the orchestrator never proceeds past a transition that did not complete.
type Notifier struct {
	store     StatusStore
	publisher EventPublisher
}

func NewNotifier(store StatusStore, publisher EventPublisher) *Notifier {
	return &Notifier{
		store:     store,
		publisher: publisher,
	}
}

func (n *Notifier) UpdateAndNotifySyncStatus(ctx context.Context, accountID string, status domain.SyncStatus) error {
	if err := n.store.UpdateSyncStatus(ctx, accountID, status); err != nil {
		return fmt.Errorf("update sync status: %w", err)
	}

	if n.publisher != nil {
		if err := n.publisher.PublishStatus(ctx, accountID, status); err != nil {
			return fmt.Errorf("notify sync status: %w", err)
		}
	}

	return nil
}
