package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency holds the conversion rate from the base currency (NGN) into
// this currency. A transfer of N base units credits N * ExchangeRateToBase
// destination units.
type Currency struct {
	Code               string          `gorm:"primaryKey" json:"code"`
	Name               string          `json:"name"`
	ExchangeRateToBase decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"exchange_rate_to_base"`
	IsActive           bool            `json:"is_active"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
