package service

import (
	"context"
	"fmt"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// LedgerStore is the persistence the ledger needs: wallet reads, the
// idempotency lookup and the atomic sync write.
type LedgerStore interface {
	GetWallet(ctx context.Context, userID, currency string) (*models.Wallet, error)
	FindTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
	ApplySync(ctx context.Context, txn *models.Transaction, currency string, delta decimal.Decimal) (decimal.Decimal, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// SyncResult is the outcome of one ledger mutation.
type SyncResult struct {
	TransactionID string          `json:"transaction_id"`
	Reference     string          `json:"reference"`
	NewBalance    decimal.Decimal `json:"new_balance"`
	Replayed      bool            `json:"replayed,omitempty"`
}

// LedgerService owns every wallet balance mutation. A sync applies a
// signed amount to the user's wallet and records the matching
// transaction in one database transaction, then emits the recorded and
// notification events. Event emission is best effort: a publish failure
// is logged, never rolled into the caller's result.
type LedgerService struct {
	Store        LedgerStore
	Publisher    Publisher
	BaseCurrency string
}

func NewLedgerService(store LedgerStore, publisher Publisher, baseCurrency string) *LedgerService {
	return &LedgerService{
		Store:        store,
		Publisher:    publisher,
		BaseCurrency: baseCurrency,
	}
}

// Sync applies req.Amount (positive credits, negative debits) to the
// user's base-currency wallet. The wallet must already exist; a missing
// wallet fails fast with no write. When req.Reference matches an already
// recorded transaction the stored outcome is returned and nothing is
// applied again.
func (s *LedgerService) Sync(ctx context.Context, req dto.WalletSync) (*SyncResult, error) {
	req.Sanitize()

	if req.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	txnType := models.TransactionType(req.TransactionType)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("invalid transaction type: %s", req.TransactionType)
	}
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("amount must not be zero")
	}

	if req.Reference != "" {
		existing, err := s.Store.FindTransactionByReference(ctx, req.Reference)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &SyncResult{
				TransactionID: existing.ID,
				Reference:     existing.ReferenceNumber,
				NewBalance:    existing.BalanceAfter,
				Replayed:      true,
			}, nil
		}
	}

	if _, err := s.Store.GetWallet(ctx, req.UserID, s.BaseCurrency); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		UserID:          req.UserID,
		Type:            txnType,
		Amount:          req.Amount.Abs(),
		ReferenceNumber: req.Reference,
		Description:     req.Description,
		Metadata:        req.Metadata,
	}

	newBalance, err := s.Store.ApplySync(ctx, txn, s.BaseCurrency, req.Amount)
	if err != nil {
		return nil, err
	}

	s.emitRecorded(ctx, txn)
	s.emitNotification(ctx, txn)

	return &SyncResult{
		TransactionID: txn.ID,
		Reference:     txn.ReferenceNumber,
		NewBalance:    newBalance,
	}, nil
}

func (s *LedgerService) emitRecorded(ctx context.Context, txn *models.Transaction) {
	event := models.TransactionRecordedEvent{
		TransactionID: txn.ID,
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		Currency:      s.BaseCurrency,
		Amount:        txn.Amount,
		BalanceAfter:  txn.BalanceAfter,
		Reference:     txn.ReferenceNumber,
		CreatedAt:     txn.CreatedAt,
	}

	if err := s.Publisher.Publish(ctx, models.TransactionRecordedTopic, event); err != nil {
		logrus.Errorf("Error publishing transaction recorded event: %s", err.Error())
	}
}

func (s *LedgerService) emitNotification(ctx context.Context, txn *models.Transaction) {
	verb := "credited to"
	if txn.Type == models.TypeDebit || txn.Type == models.TypeBillPayment || txn.Type == models.TypePurchase {
		verb = "debited from"
	}

	event := models.NotificationCreatedEvent{
		UserID:    txn.UserID,
		Title:     "Wallet update",
		Body:      fmt.Sprintf("%s %s was %s your wallet (ref %s)", txn.Amount.String(), s.BaseCurrency, verb, txn.ReferenceNumber),
		Category:  string(txn.Type),
		CreatedAt: txn.CreatedAt,
	}

	if err := s.Publisher.Publish(ctx, models.NotificationCreatedTopic, event); err != nil {
		logrus.Errorf("Error publishing notification event: %s", err.Error())
	}
}
