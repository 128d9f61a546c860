package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string
type TransactionStatus string

const (
	TypeCredit      TransactionType = "credit"
	TypeDebit       TransactionType = "debit"
	TypeBillPayment TransactionType = "bill_payment"
	TypePurchase    TransactionType = "purchase"
	TypeWalletTopup TransactionType = "wallet_topup"

	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is the audit record for a single balance-affecting event.
// Rows are immutable once settled: status moves pending -> completed|failed
// exactly once, and only the settlement pass may touch status and metadata.
type Transaction struct {
	ID              string            `gorm:"primaryKey" json:"id"`
	UserID          string            `gorm:"index;not null" json:"user_id"`
	Type            TransactionType   `gorm:"not null" json:"type"`
	Amount          decimal.Decimal   `gorm:"type:numeric(20,4);not null" json:"amount"`
	Status          TransactionStatus `gorm:"not null" json:"status"`
	ReferenceNumber string            `gorm:"uniqueIndex;not null" json:"reference_number"`
	BalanceAfter    decimal.Decimal   `gorm:"type:numeric(20,4)" json:"balance_after"`
	Description     string            `json:"description,omitempty"`
	ServiceType     string            `json:"service_type,omitempty"`
	ProviderName    string            `json:"provider_name,omitempty"`
	Metadata        string            `json:"metadata,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.ReferenceNumber == "" {
		t.ReferenceNumber = NewReference("TXN")
	}

	return
}

func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("invalid transaction type: %s", t.Type)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("invalid transaction status: %s", t.Status)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative")
	}
	if t.UserID == "" {
		return fmt.Errorf("user ID is required")
	}

	return nil
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TypeCredit, TypeDebit, TypeBillPayment, TypePurchase, TypeWalletTopup:
		return true
	default:
		return false
	}
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// NewReference builds a prefixed reference number, e.g. TXN-7f9c....
func NewReference(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}
