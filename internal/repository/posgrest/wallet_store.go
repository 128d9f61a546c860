package posgrest

import (
	"context"
	"errors"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletStore is the persistence layer for the ledger. Every balance
// mutation goes through adjustBalance, a single guarded UPDATE
// (balance = balance + delta, only when the result stays non-negative),
// so concurrent syncs cannot lose updates and a balance can never go
// negative. Multi-row writes commit in one database transaction.
type WalletStore struct {
	db *gorm.DB
}

func NewWalletStore(db *gorm.DB) *WalletStore {
	return &WalletStore{db: db}
}

func (s *WalletStore) GetWallet(ctx context.Context, userID, currency string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND currency = ?", userID, currency).
		First(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// FindTransactionByReference returns (nil, nil) when no transaction
// carries the reference. Callers use it as the idempotency check.
func (s *WalletStore) FindTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	var txn models.Transaction
	err := s.db.WithContext(ctx).
		Where("reference_number = ?", reference).
		First(&txn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *WalletStore) FindTransferByReference(ctx context.Context, reference string) (*models.MoneyTransfer, error) {
	var transfer models.MoneyTransfer
	err := s.db.WithContext(ctx).
		Where("reference_number = ?", reference).
		First(&transfer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ApplySync mutates one wallet balance by delta and records txn in the
// same database transaction. The transaction row is stored as completed
// with BalanceAfter set to the post-mutation balance, which is returned.
func (s *WalletStore) ApplySync(ctx context.Context, txn *models.Transaction, currency string, delta decimal.Decimal) (decimal.Decimal, error) {
	var newBalance decimal.Decimal

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := adjustBalance(tx, txn.UserID, currency, delta)
		if err != nil {
			return err
		}

		txn.Status = models.StatusCompleted
		txn.BalanceAfter = balance
		if err := txn.Validate(); err != nil {
			return err
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		newBalance = balance
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}

// ApplyTransfer commits both legs of a peer transfer atomically: the
// sender debit (amount plus fee), the recipient credit, the parent
// MoneyTransfer row and the two transaction legs. A failure on any step
// rolls everything back, so the ledger never holds a single leg.
func (s *WalletStore) ApplyTransfer(
	ctx context.Context,
	transfer *models.MoneyTransfer,
	debit *models.Transaction,
	credit *models.Transaction,
	senderCurrency string,
	recipientCurrency string,
	totalDebit decimal.Decimal,
	creditAmount decimal.Decimal,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		senderBalance, err := adjustBalance(tx, transfer.SenderID, senderCurrency, totalDebit.Neg())
		if err != nil {
			return err
		}
		recipientBalance, err := adjustBalance(tx, transfer.RecipientID, recipientCurrency, creditAmount)
		if err != nil {
			return err
		}

		if err := tx.Create(transfer).Error; err != nil {
			return err
		}

		debit.ReferenceNumber = transfer.ReferenceNumber + "-D"
		debit.Status = models.StatusCompleted
		debit.BalanceAfter = senderBalance
		credit.ReferenceNumber = transfer.ReferenceNumber + "-C"
		credit.Status = models.StatusCompleted
		credit.BalanceAfter = recipientBalance

		if err := tx.Create(debit).Error; err != nil {
			return err
		}
		return tx.Create(credit).Error
	})
}

func (s *WalletStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if err := txn.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(txn).Error
}

// SettleTransaction moves a pending transaction to its final status and,
// when debitWallet is set, deducts the amount from the user's wallet in
// the same database transaction. Settling a non-pending row is a no-op
// error so a transaction settles exactly once.
func (s *WalletStore) SettleTransaction(ctx context.Context, txn *models.Transaction, status models.TransactionStatus, currency string, debitWallet bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", txn.ID, models.StatusPending).
			Updates(map[string]interface{}{
				"status":   status,
				"metadata": txn.Metadata,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("transaction already settled")
		}

		txn.Status = status
		if !debitWallet {
			return nil
		}

		balance, err := adjustBalance(tx, txn.UserID, currency, txn.Amount.Neg())
		if err != nil {
			return err
		}
		txn.BalanceAfter = balance
		return tx.Model(&models.Transaction{}).
			Where("id = ?", txn.ID).
			Update("balance_after", balance).Error
	})
}

func (s *WalletStore) GetProfileByAccountID(ctx context.Context, accountID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRecipientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *WalletStore) GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrRecipientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *WalletStore) GetCurrency(ctx context.Context, code string) (*models.Currency, error) {
	var currency models.Currency
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&currency).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrCurrencyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

func (s *WalletStore) GetWithdrawalPin(ctx context.Context, userID string) (*models.WithdrawalPin, error) {
	var pin models.WithdrawalPin
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPinNotSet
	}
	if err != nil {
		return nil, err
	}
	return &pin, nil
}

func (s *WalletStore) GetBankAccount(ctx context.Context, id string) (*models.BankAccount, error) {
	var account models.BankAccount
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrBankAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *WalletStore) GetBillService(ctx context.Context, serviceType, providerName string) (*models.BillService, error) {
	var svc models.BillService
	err := s.db.WithContext(ctx).
		Where("service_type = ? AND provider_name = ? AND is_active = ?", serviceType, providerName, true).
		First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// adjustBalance is the single statement every balance change funnels
// through. The WHERE guard refuses the update when the wallet would go
// negative; RowsAffected disambiguates a missing wallet from an
// insufficient balance.
func adjustBalance(tx *gorm.DB, userID, currency string, delta decimal.Decimal) (decimal.Decimal, error) {
	res := tx.Model(&models.Wallet{}).
		Where("user_id = ? AND currency = ?", userID, currency).
		Where("balance + ? >= 0", delta).
		Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return decimal.Zero, res.Error
	}

	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Wallet{}).
			Where("user_id = ? AND currency = ?", userID, currency).
			Count(&count).Error; err != nil {
			return decimal.Zero, err
		}
		if count == 0 {
			return decimal.Zero, models.ErrWalletNotFound
		}
		return decimal.Zero, models.ErrInsufficientFunds
	}

	var wallet models.Wallet
	if err := tx.Where("user_id = ? AND currency = ?", userID, currency).First(&wallet).Error; err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}
