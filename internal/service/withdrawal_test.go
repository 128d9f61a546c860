package service_test

import (
	"context"
	"testing"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func verifiedBankAccount() *models.BankAccount {
	return &models.BankAccount{
		ID:            "bank-1",
		UserID:        "user-1",
		AccountName:   "Alice Okafor",
		AccountNumber: "0123456789",
		BankName:      "GTBank",
		IsVerified:    true,
	}
}

func TestWithdrawal_VerifyPinAction(t *testing.T) {
	mockStore := mocks.NewMockWithdrawalStore(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	withdrawals := service.NewWithdrawalService(mockStore, mockLedger)

	ctx := context.Background()

	mockStore.EXPECT().
		GetWithdrawalPin(ctx, "user-1").
		Return(&models.WithdrawalPin{UserID: "user-1", PinHash: pinHash(t, "1234")}, nil).
		Once()

	result, err := withdrawals.Process(ctx, dto.Withdrawal{
		Action: "verify_pin",
		UserID: "user-1",
		Pin:    "1234",
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "GetBankAccount", mock.Anything, mock.Anything)
}

func TestWithdrawal_DebitsThroughLedger(t *testing.T) {
	mockStore := mocks.NewMockWithdrawalStore(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	withdrawals := service.NewWithdrawalService(mockStore, mockLedger)

	ctx := context.Background()

	mockStore.EXPECT().
		GetWithdrawalPin(ctx, "user-1").
		Return(&models.WithdrawalPin{UserID: "user-1", PinHash: pinHash(t, "1234")}, nil).
		Once()
	mockStore.EXPECT().
		GetBankAccount(ctx, "bank-1").
		Return(verifiedBankAccount(), nil).
		Once()
	mockLedger.EXPECT().
		Sync(ctx, mock.MatchedBy(func(req dto.WalletSync) bool {
			return req.UserID == "user-1" &&
				req.TransactionType == string(models.TypeDebit) &&
				req.Amount.Equal(decimal.NewFromInt(-1000))
		})).
		Return(&service.SyncResult{
			TransactionID: "txn-1",
			Reference:     "TXN-wd1",
			NewBalance:    decimal.NewFromInt(9000),
		}, nil).
		Once()

	result, err := withdrawals.Process(ctx, dto.Withdrawal{
		Action:        "withdraw",
		UserID:        "user-1",
		Pin:           "1234",
		Amount:        decimal.NewFromInt(1000),
		BankAccountID: "bank-1",
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "TXN-wd1", result.Reference)
	mockStore.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
}

func TestWithdrawal_InsufficientFundsSurfaced(t *testing.T) {
	mockStore := mocks.NewMockWithdrawalStore(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	withdrawals := service.NewWithdrawalService(mockStore, mockLedger)

	ctx := context.Background()

	mockStore.EXPECT().
		GetWithdrawalPin(ctx, "user-1").
		Return(&models.WithdrawalPin{UserID: "user-1", PinHash: pinHash(t, "1234")}, nil).
		Once()
	mockStore.EXPECT().
		GetBankAccount(ctx, "bank-1").
		Return(verifiedBankAccount(), nil).
		Once()
	mockLedger.EXPECT().
		Sync(ctx, mock.MatchedBy(func(req dto.WalletSync) bool {
			return req.Amount.Equal(decimal.NewFromInt(-1500))
		})).
		Return(nil, models.ErrInsufficientFunds).
		Once()

	result, err := withdrawals.Process(ctx, dto.Withdrawal{
		Action:        "withdraw",
		UserID:        "user-1",
		Pin:           "1234",
		Amount:        decimal.NewFromInt(1500),
		BankAccountID: "bank-1",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
}

func TestWithdrawal_PinMismatch(t *testing.T) {
	mockStore := mocks.NewMockWithdrawalStore(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	withdrawals := service.NewWithdrawalService(mockStore, mockLedger)

	ctx := context.Background()

	mockStore.EXPECT().
		GetWithdrawalPin(ctx, "user-1").
		Return(&models.WithdrawalPin{UserID: "user-1", PinHash: pinHash(t, "1234")}, nil).
		Once()

	result, err := withdrawals.Process(ctx, dto.Withdrawal{
		Action:        "withdraw",
		UserID:        "user-1",
		Pin:           "0000",
		Amount:        decimal.NewFromInt(1000),
		BankAccountID: "bank-1",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrPinMismatch)
	mockStore.AssertNotCalled(t, "GetBankAccount", mock.Anything, mock.Anything)
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestWithdrawal_ForeignBankAccountRejected(t *testing.T) {
	mockStore := mocks.NewMockWithdrawalStore(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	withdrawals := service.NewWithdrawalService(mockStore, mockLedger)

	ctx := context.Background()
	account := verifiedBankAccount()
	account.UserID = "user-2"

	mockStore.EXPECT().
		GetWithdrawalPin(ctx, "user-1").
		Return(&models.WithdrawalPin{UserID: "user-1", PinHash: pinHash(t, "1234")}, nil).
		Once()
	mockStore.EXPECT().
		GetBankAccount(ctx, "bank-1").
		Return(account, nil).
		Once()

	result, err := withdrawals.Process(ctx, dto.Withdrawal{
		Action:        "withdraw",
		UserID:        "user-1",
		Pin:           "1234",
		Amount:        decimal.NewFromInt(1000),
		BankAccountID: "bank-1",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrBankAccountNotFound)
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestWithdrawal_UnverifiedBankAccountRejected(t *testing.T) {
	mockStore := mocks.NewMockWithdrawalStore(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	withdrawals := service.NewWithdrawalService(mockStore, mockLedger)

	ctx := context.Background()
	account := verifiedBankAccount()
	account.IsVerified = false

	mockStore.EXPECT().
		GetWithdrawalPin(ctx, "user-1").
		Return(&models.WithdrawalPin{UserID: "user-1", PinHash: pinHash(t, "1234")}, nil).
		Once()
	mockStore.EXPECT().
		GetBankAccount(ctx, "bank-1").
		Return(account, nil).
		Once()

	result, err := withdrawals.Process(ctx, dto.Withdrawal{
		Action:        "withdraw",
		UserID:        "user-1",
		Pin:           "1234",
		Amount:        decimal.NewFromInt(1000),
		BankAccountID: "bank-1",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrBankAccountUnverified)
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestWithdrawal_ZeroAmountRejected(t *testing.T) {
	mockStore := mocks.NewMockWithdrawalStore(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	withdrawals := service.NewWithdrawalService(mockStore, mockLedger)

	ctx := context.Background()

	mockStore.EXPECT().
		GetWithdrawalPin(ctx, "user-1").
		Return(&models.WithdrawalPin{UserID: "user-1", PinHash: pinHash(t, "1234")}, nil).
		Once()

	result, err := withdrawals.Process(ctx, dto.Withdrawal{
		Action:        "withdraw",
		UserID:        "user-1",
		Pin:           "1234",
		Amount:        decimal.Zero,
		BankAccountID: "bank-1",
	})

	assert.Nil(t, result)
	assert.Error(t, err)
	mockStore.AssertNotCalled(t, "GetBankAccount", mock.Anything, mock.Anything)
}
