package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransferStatus string

const (
	TransferCompleted TransferStatus = "completed"
	TransferFailed    TransferStatus = "failed"
)

// MoneyTransfer is the parent record of a peer-to-peer transfer.
// Its two transaction legs (sender debit, recipient credit) share the
// transfer's reference number and commit in the same database transaction.
type MoneyTransfer struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	SenderID        string          `gorm:"index;not null" json:"sender_id"`
	RecipientID     string          `gorm:"index;not null" json:"recipient_id"`
	AmountSent      decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount_sent"`
	AmountReceived  decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"amount_received"`
	Fee             decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"fee"`
	Status          TransferStatus  `gorm:"not null" json:"status"`
	ReferenceNumber string          `gorm:"uniqueIndex;not null" json:"reference_number"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (m *MoneyTransfer) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.ReferenceNumber == "" {
		m.ReferenceNumber = NewReference("TRF")
	}

	return
}
