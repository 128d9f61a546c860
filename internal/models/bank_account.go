package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankAccount is a withdrawal destination. Only verified accounts may
// receive withdrawals.
type BankAccount struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"index;not null" json:"user_id"`
	AccountName   string    `gorm:"not null" json:"account_name"`
	AccountNumber string    `gorm:"not null" json:"account_number"`
	BankName      string    `gorm:"not null" json:"bank_name"`
	BankCode      string    `json:"bank_code"`
	IsDefault     bool      `json:"is_default"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (b *BankAccount) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	return
}

// WithdrawalPin gatekeeps withdrawals and transfers. PinHash is a bcrypt
// hash; the plaintext pin is never stored.
type WithdrawalPin struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	PinHash   string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
