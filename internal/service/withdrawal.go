package service

import (
	"context"
	"fmt"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"golang.org/x/crypto/bcrypt"
)

// WithdrawalStore is the persistence surface of the withdrawal flow.
type WithdrawalStore interface {
	GetWithdrawalPin(ctx context.Context, userID string) (*models.WithdrawalPin, error)
	GetBankAccount(ctx context.Context, id string) (*models.BankAccount, error)
}

// WalletSyncer applies a signed ledger mutation; satisfied by
// LedgerService.
type WalletSyncer interface {
	Sync(ctx context.Context, req dto.WalletSync) (*SyncResult, error)
}

// WithdrawalResult reports the outcome of a withdrawal action.
type WithdrawalResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
}

// WithdrawalService gatekeeps wallet withdrawals behind the bcrypt pin
// and a verified bank account, then debits through the ledger so the
// balance guard and audit record apply like any other mutation.
type WithdrawalService struct {
	Store  WithdrawalStore
	Ledger WalletSyncer
}

func NewWithdrawalService(store WithdrawalStore, ledger WalletSyncer) *WithdrawalService {
	return &WithdrawalService{
		Store:  store,
		Ledger: ledger,
	}
}

func (s *WithdrawalService) Process(ctx context.Context, req dto.Withdrawal) (*WithdrawalResult, error) {
	req.Sanitize()

	if err := s.verifyPin(ctx, req.UserID, req.Pin); err != nil {
		return nil, err
	}

	switch req.Action {
	case dto.WithdrawalActionVerifyPin:
		return &WithdrawalResult{Success: true}, nil
	case dto.WithdrawalActionWithdraw:
		return s.withdraw(ctx, req)
	default:
		return nil, fmt.Errorf("unknown action: %s", req.Action)
	}
}

func (s *WithdrawalService) withdraw(ctx context.Context, req dto.Withdrawal) (*WithdrawalResult, error) {
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	account, err := s.Store.GetBankAccount(ctx, req.BankAccountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != req.UserID {
		return nil, models.ErrBankAccountNotFound
	}
	if !account.IsVerified {
		return nil, models.ErrBankAccountUnverified
	}

	sync, err := s.Ledger.Sync(ctx, dto.WalletSync{
		UserID:          req.UserID,
		Amount:          req.Amount.Neg(),
		TransactionType: string(models.TypeDebit),
		Description:     fmt.Sprintf("Withdrawal to %s (%s)", account.BankName, account.AccountNumber),
		Metadata:        fmt.Sprintf(`{"bank_account_id":%q}`, account.ID),
	})
	if err != nil {
		return nil, err
	}

	return &WithdrawalResult{
		Success:   true,
		Reference: sync.Reference,
	}, nil
}

func (s *WithdrawalService) verifyPin(ctx context.Context, userID, pin string) error {
	record, err := s.Store.GetWithdrawalPin(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(record.PinHash), []byte(pin)); err != nil {
		return models.ErrPinMismatch
	}
	return nil
}
