package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TransferStore is the persistence surface of the transfer orchestrator.
type TransferStore interface {
	GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetProfileByAccountID(ctx context.Context, accountID string) (*models.Profile, error)
	GetWallet(ctx context.Context, userID, currency string) (*models.Wallet, error)
	GetCurrency(ctx context.Context, code string) (*models.Currency, error)
	GetWithdrawalPin(ctx context.Context, userID string) (*models.WithdrawalPin, error)
	FindTransferByReference(ctx context.Context, reference string) (*models.MoneyTransfer, error)
	ApplyTransfer(ctx context.Context, transfer *models.MoneyTransfer, debit, credit *models.Transaction, senderCurrency, recipientCurrency string, totalDebit, creditAmount decimal.Decimal) error
}

// TransferResult is returned to the client after a successful submission.
type TransferResult struct {
	Success         bool            `json:"success"`
	Reference       string          `json:"reference"`
	RecipientName   string          `json:"recipient_name"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Fee             decimal.Decimal `json:"fee"`
	Replayed        bool            `json:"replayed,omitempty"`
}

// TransferService orchestrates peer-to-peer transfers: recipient
// resolution, currency conversion, pin verification and the atomic
// debit+credit commit.
//
// The fee is 1% of the converted destination-currency amount, not of the
// source amount, and the sender is debited amount + fee. That base is a
// product decision carried over as-is; only the rate is configurable.
type TransferService struct {
	Store     TransferStore
	Publisher Publisher
	FeeRate   decimal.Decimal
	MaxAmount decimal.Decimal

	searchLimit  int
	searchWindow time.Duration
	searchMu     sync.Mutex
	searchHits   map[string][]time.Time
}

func NewTransferService(store TransferStore, publisher Publisher, feeRate, maxAmount decimal.Decimal, searchLimit int, searchWindow time.Duration) *TransferService {
	return &TransferService{
		Store:        store,
		Publisher:    publisher,
		FeeRate:      feeRate,
		MaxAmount:    maxAmount,
		searchLimit:  searchLimit,
		searchWindow: searchWindow,
		searchHits:   make(map[string][]time.Time),
	}
}

// SearchRecipient resolves a shareable account handle to a profile. The
// handle is case-insensitive, must match the two-letters-eight-digits
// format and may not be the caller's own. Lookups are rate limited per
// caller server-side.
func (s *TransferService) SearchRecipient(ctx context.Context, senderID, rawAccountID string) (*models.Profile, error) {
	if !s.allowSearch(senderID) {
		return nil, models.ErrSearchRateLimited
	}
	return s.resolveRecipient(ctx, senderID, rawAccountID)
}

func (s *TransferService) resolveRecipient(ctx context.Context, senderID, rawAccountID string) (*models.Profile, error) {
	accountID := models.NormalizeAccountID(rawAccountID)
	if !models.AccountIDPattern.MatchString(accountID) {
		return nil, models.ErrInvalidAccountID
	}

	sender, err := s.Store.GetProfileByUserID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if sender.AccountID == accountID {
		return nil, models.ErrSelfTransfer
	}

	return s.Store.GetProfileByAccountID(ctx, accountID)
}

// Process runs one transfer end to end. When req.Reference names an
// already committed transfer the recorded outcome is returned and no
// balances move.
func (s *TransferService) Process(ctx context.Context, req dto.Transfer) (*TransferResult, error) {
	req.Sanitize()

	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if req.Amount.GreaterThan(s.MaxAmount) {
		return nil, models.ErrTransferLimitExceeded
	}

	if req.Reference != "" {
		existing, err := s.Store.FindTransferByReference(ctx, req.Reference)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return s.replayResult(ctx, existing)
		}
	}

	recipient, err := s.resolveRecipient(ctx, req.SenderID, req.RecipientAccountID)
	if err != nil {
		return nil, err
	}

	currency, err := s.Store.GetCurrency(ctx, req.RecipientCurrency)
	if err != nil {
		return nil, err
	}
	if !currency.IsActive {
		return nil, models.ErrCurrencyNotFound
	}

	if err := s.verifyPin(ctx, req.SenderID, req.Pin); err != nil {
		return nil, err
	}

	convertedAmount := req.Amount.Mul(currency.ExchangeRateToBase)
	fee := convertedAmount.Mul(s.FeeRate)
	totalDebit := req.Amount.Add(fee)

	wallet, err := s.Store.GetWallet(ctx, req.SenderID, req.SenderCurrency)
	if err != nil {
		return nil, err
	}
	if wallet.Balance.LessThan(totalDebit) {
		return nil, models.ErrInsufficientFunds
	}

	transfer := &models.MoneyTransfer{
		SenderID:        req.SenderID,
		RecipientID:     recipient.UserID,
		AmountSent:      req.Amount,
		AmountReceived:  convertedAmount,
		Fee:             fee,
		Status:          models.TransferCompleted,
		ReferenceNumber: req.Reference,
		Description:     req.Description,
	}
	debit := &models.Transaction{
		UserID:      req.SenderID,
		Type:        models.TypeDebit,
		Amount:      totalDebit,
		Description: fmt.Sprintf("Transfer to %s", recipient.AccountID),
	}
	credit := &models.Transaction{
		UserID:      recipient.UserID,
		Type:        models.TypeCredit,
		Amount:      convertedAmount,
		Description: fmt.Sprintf("Transfer from %s", req.SenderID),
	}

	if err := s.Store.ApplyTransfer(ctx, transfer, debit, credit, req.SenderCurrency, req.RecipientCurrency, totalDebit, convertedAmount); err != nil {
		return nil, err
	}

	s.notify(ctx, req.SenderID, "Transfer sent",
		fmt.Sprintf("You sent %s %s to %s (fee %s)", req.Amount.String(), req.SenderCurrency, recipient.FullName, fee.String()))
	s.notify(ctx, recipient.UserID, "Transfer received",
		fmt.Sprintf("You received %s %s", convertedAmount.String(), req.RecipientCurrency))

	return &TransferResult{
		Success:         true,
		Reference:       transfer.ReferenceNumber,
		RecipientName:   recipient.FullName,
		ConvertedAmount: convertedAmount,
		Fee:             fee,
	}, nil
}

func (s *TransferService) verifyPin(ctx context.Context, userID, pin string) error {
	record, err := s.Store.GetWithdrawalPin(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PinHash), []byte(pin)); err != nil {
		return models.ErrPinMismatch
	}
	return nil
}

func (s *TransferService) replayResult(ctx context.Context, transfer *models.MoneyTransfer) (*TransferResult, error) {
	result := &TransferResult{
		Success:         transfer.Status == models.TransferCompleted,
		Reference:       transfer.ReferenceNumber,
		ConvertedAmount: transfer.AmountReceived,
		Fee:             transfer.Fee,
		Replayed:        true,
	}

	recipient, err := s.Store.GetProfileByUserID(ctx, transfer.RecipientID)
	if err == nil {
		result.RecipientName = recipient.FullName
	}
	return result, nil
}

func (s *TransferService) notify(ctx context.Context, userID, title, body string) {
	event := models.NotificationCreatedEvent{
		UserID:    userID,
		Title:     title,
		Body:      body,
		Category:  "transfer",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.NotificationCreatedTopic, event); err != nil {
		logrus.Errorf("Error publishing notification event: %s", err.Error())
	}
}

// allowSearch enforces the per-user lookup quota over a sliding window.
func (s *TransferService) allowSearch(userID string) bool {
	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	now := time.Now()
	cutoff := now.Add(-s.searchWindow)

	recent := s.searchHits[userID][:0]
	for _, hit := range s.searchHits[userID] {
		if hit.After(cutoff) {
			recent = append(recent, hit)
		}
	}

	if len(recent) >= s.searchLimit {
		s.searchHits[userID] = recent
		return false
	}

	s.searchHits[userID] = append(recent, now)
	return true
}
