package notifier

import (
	"context"

	"github.com/BlacAnon1/banqa-wallet-service/internal/metrics"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
)

// NotificationRepo defines the interface for notification persistence.
type NotificationRepo interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// NotifierService materializes ledger events: notification events become
// Notification rows the client apps page through, and every recorded
// transaction feeds the Prometheus counters.
type NotifierService struct {
	Repo NotificationRepo
}

func NewNotifierService(repo NotificationRepo) *NotifierService {
	return &NotifierService{Repo: repo}
}

func (s *NotifierService) RecordNotification(ctx context.Context, event models.NotificationCreatedEvent) error {
	notification := &models.Notification{
		UserID:   event.UserID,
		Title:    event.Title,
		Body:     event.Body,
		Category: event.Category,
	}

	if err := s.Repo.Create(ctx, notification); err != nil {
		return err
	}

	metrics.NotificationsTotal.WithLabelValues(event.Category).Inc()
	return nil
}

func (s *NotifierService) RecordTransaction(ctx context.Context, event models.TransactionRecordedEvent) error {
	metrics.TransactionsTotal.WithLabelValues(event.Type, event.Status).Inc()
	metrics.TransactionAmounts.WithLabelValues(event.Currency, event.Type).Observe(event.Amount.InexactFloat64())
	return nil
}
