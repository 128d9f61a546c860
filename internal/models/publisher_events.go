package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionRecordedTopic = "wallet.transaction.recorded"
	NotificationCreatedTopic = "notifications.created"
	WalletDLQTopic           = "wallet.dlq"
)

type TransactionRecordedEvent struct {
	TransactionID string          `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"created_at"`
}

type NotificationCreatedEvent struct {
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
