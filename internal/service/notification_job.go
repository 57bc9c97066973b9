package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/internal/workers"
)

// NotificationJob periodically reads the reminder text from the server and
// hands it to a Notifier. It shares no state with the synchronizers.
type NotificationJob struct {
	*workers.Ticker

	adapter  adapter.ServerAdapter
	notifier Notifier
	logger   *logger.Logger
}

func NewNotificationJob(serverAdapter adapter.ServerAdapter, notifier Notifier, interval time.Duration, log *logger.Logger) *NotificationJob {
	j := &NotificationJob{
		adapter:  serverAdapter,
		notifier: notifier,
		logger:   log.ForComponent("notification_job", ""),
	}
	j.Ticker = workers.NewTicker("notification", interval, func(ctx context.Context) {
		_ = j.RunOnce(ctx)
	}, j.logger)
	return j
}

// RunOnce performs one fetch and, when the server sent a non-empty message,
// one notification.
func (j *NotificationJob) RunOnce(ctx context.Context) error {
	n, err := j.adapter.FetchNotificationMessage(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "NotificationJob.RunOnce").Msg("failed to fetch notification")
		return fmt.Errorf("fetch notification: %w", err)
	}

	if strings.TrimSpace(n.Message) == "" {
		return nil
	}

	if err := j.notifier.Notify(ctx, n); err != nil {
		j.logger.Warn().Err(err).Str("func", "NotificationJob.RunOnce").Msg("failed to show notification")
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}
