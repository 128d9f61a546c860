package notifier

import (
	"context"
	"encoding/json"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/sirupsen/logrus"
)

// NotifierServiceIn defines the interface for event materialization.
type NotifierServiceIn interface {
	RecordNotification(ctx context.Context, event models.NotificationCreatedEvent) error
	RecordTransaction(ctx context.Context, event models.TransactionRecordedEvent) error
}

// Handler routes consumed Kafka events to the notifier service.
type Handler struct {
	Service NotifierServiceIn
}

func NewHandler(s NotifierServiceIn) *Handler {
	return &Handler{Service: s}
}

func (h *Handler) Handle(ctx context.Context, topic string, raw []byte) error {
	switch topic {
	case models.NotificationCreatedTopic:
		var event models.NotificationCreatedEvent

		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling NotificationCreatedEvent: %s", err.Error())
			return err
		}

		if err := h.Service.RecordNotification(ctx, event); err != nil {
			logrus.Errorf("Error recording notification: %s", err.Error())
			return err
		}

		logrus.Info("NotificationCreatedEvent handled successfully")
	case models.TransactionRecordedTopic:
		var event models.TransactionRecordedEvent

		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling TransactionRecordedEvent: %s", err.Error())
			return err
		}

		if err := h.Service.RecordTransaction(ctx, event); err != nil {
			logrus.Errorf("Error recording transaction metrics: %s", err.Error())
			return err
		}

		logrus.Info("TransactionRecordedEvent handled successfully")
	}

	return nil
}
