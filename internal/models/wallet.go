package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet holds the balance for one user in one currency.
// Balances are mutated only through the ledger's guarded atomic
// increment, never by assigning the column directly.
type Wallet struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"uniqueIndex:idx_wallets_user_currency;not null" json:"user_id"`
	Currency  string          `gorm:"uniqueIndex:idx_wallets_user_currency;not null" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,4);not null" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	return
}
