package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// WalletSync is the ledger mutation request. Amount is signed: positive
// credits, negative debits.
type WalletSync struct {
	UserID          string          `json:"user_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	Reference       string          `json:"reference,omitempty"`
	Description     string          `json:"description,omitempty"`
	Metadata        string          `json:"metadata,omitempty"`
}

func (r *WalletSync) Sanitize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.TransactionType = strings.ToLower(strings.TrimSpace(r.TransactionType))
	r.Reference = strings.TrimSpace(r.Reference)
}

type Transfer struct {
	SenderID           string          `json:"sender_id"`
	RecipientAccountID string          `json:"recipient_account_id"`
	Amount             decimal.Decimal `json:"amount"`
	SenderCurrency     string          `json:"sender_currency"`
	RecipientCurrency  string          `json:"recipient_currency"`
	Pin                string          `json:"pin"`
	Description        string          `json:"description,omitempty"`
	Reference          string          `json:"reference,omitempty"`
}

func (r *Transfer) Sanitize() {
	r.SenderID = strings.TrimSpace(r.SenderID)
	r.RecipientAccountID = strings.ToUpper(strings.TrimSpace(r.RecipientAccountID))
	r.SenderCurrency = strings.ToUpper(strings.TrimSpace(r.SenderCurrency))
	r.RecipientCurrency = strings.ToUpper(strings.TrimSpace(r.RecipientCurrency))
	r.Reference = strings.TrimSpace(r.Reference)
}

type BillVerify struct {
	ServiceType  string            `json:"service_type"`
	ProviderName string            `json:"provider_name"`
	CustomerData map[string]string `json:"customer_data"`
}

func (r *BillVerify) Sanitize() {
	r.ServiceType = strings.ToLower(strings.TrimSpace(r.ServiceType))
	r.ProviderName = strings.ToLower(strings.TrimSpace(r.ProviderName))
}

type BillPay struct {
	UserID       string            `json:"user_id"`
	ServiceType  string            `json:"service_type"`
	ProviderName string            `json:"provider_name"`
	Amount       decimal.Decimal   `json:"amount"`
	CustomerData map[string]string `json:"customer_data"`
	ReferenceID  string            `json:"reference_id"`
}

func (r *BillPay) Sanitize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.ServiceType = strings.ToLower(strings.TrimSpace(r.ServiceType))
	r.ProviderName = strings.ToLower(strings.TrimSpace(r.ProviderName))
	r.ReferenceID = strings.TrimSpace(r.ReferenceID)
}

const (
	WithdrawalActionVerifyPin = "verify_pin"
	WithdrawalActionWithdraw  = "withdraw"
)

type Withdrawal struct {
	Action        string          `json:"action"`
	UserID        string          `json:"user_id"`
	Pin           string          `json:"pin"`
	Amount        decimal.Decimal `json:"amount"`
	BankAccountID string          `json:"bank_account_id"`
	OTPCode       string          `json:"otp_code,omitempty"`
}

func (r *Withdrawal) Sanitize() {
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
	r.UserID = strings.TrimSpace(r.UserID)
	r.BankAccountID = strings.TrimSpace(r.BankAccountID)
}

type InitializePayment struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
}

type PaymentCallback struct {
	UserID        string `json:"user_id"`
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	Status        string `json:"status"`
}

func (r *PaymentCallback) Sanitize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.TransactionID = strings.TrimSpace(r.TransactionID)
	r.Reference = strings.TrimSpace(r.Reference)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}
