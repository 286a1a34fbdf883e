// Package notify tells task owners that a scan finished, over the channel
// selected by their notification preference.
package notify

import (
	"context"
	"fmt"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/serrors"
	"scanrunner/pkg/storage"

	"go.uber.org/zap"
)

// Notifier dispatches scan notifications.
type Notifier struct {
	storage  storage.AllStorage
	registry *Registry
}

// New creates a Notifier.
func New(storage storage.AllStorage, registry *Registry) *Notifier {
	return &Notifier{
		storage:  storage,
		registry: registry,
	}
}

// Notify sends at most one notification about scan. A None preference sends
// nothing and succeeds. An invalid preference returns ErrNotification
// without sending anything.
func (n *Notifier) Notify(ctx context.Context, scan domain.Scan) error {
	task, err := n.storage.ScanTaskByID(ctx, scan.TaskID)
	if err != nil {
		return fmt.Errorf("could not get scan task: %w", err)
	}
	if task == nil {
		return serrors.With(serrors.ErrNotFound, "scan task %d not found", scan.TaskID)
	}

	user, err := n.storage.UserByID(ctx, task.UserID)
	if err != nil {
		return fmt.Errorf("could not get task owner: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "user %d not found", task.UserID)
	}

	channel, sender, err := n.registry.Channel(user.Notification)
	if err != nil {
		return err
	}
	if sender == nil {
		logger.Debug(ctx, "notifications disabled by user preference", zap.Int64("userID", int64(user.ID)))

		return nil
	}

	if err := sender.Send(ctx, NewMessage(scan, *task, *user)); err != nil {
		return serrors.Wrap(serrors.ErrNotification, err, "could not send %s notification", channel.ID)
	}

	logger.Info(ctx, "notification sent", zap.String("channel", channel.ID), zap.Int64("userID", int64(user.ID)))

	return nil
}
