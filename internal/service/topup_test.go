package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/BlacAnon1/banqa-wallet-service/internal/clients/flutterwave"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInitialize_BuildsCheckoutDescriptor(t *testing.T) {
	mockGateway := mocks.NewMockGatewayClient(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	topups := service.NewTopupService(mockGateway, mockLedger, "FLWPUBK-test", "NGN")

	result, err := topups.Initialize(context.Background(), dto.InitializePayment{
		UserID: "user-1",
		Amount: decimal.NewFromInt(2000),
		Email:  "alice@example.com",
		Name:   "Alice Okafor",
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Reference, "TOP-"))
	assert.Equal(t, result.Reference, result.PaymentData.TxRef)
	assert.Equal(t, "FLWPUBK-test", result.PaymentData.PublicKey)
	assert.Equal(t, "NGN", result.PaymentData.Currency)
	assert.Equal(t, "alice@example.com", result.PaymentData.CustomerEmail)
	assert.True(t, result.PaymentData.Amount.Equal(decimal.NewFromInt(2000)))
}

func TestInitialize_ReferencesAreUnique(t *testing.T) {
	mockGateway := mocks.NewMockGatewayClient(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	topups := service.NewTopupService(mockGateway, mockLedger, "FLWPUBK-test", "NGN")

	req := dto.InitializePayment{UserID: "user-1", Amount: decimal.NewFromInt(2000)}

	first, err := topups.Initialize(context.Background(), req)
	assert.NoError(t, err)
	second, err := topups.Initialize(context.Background(), req)
	assert.NoError(t, err)

	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestCallback_VerifiedChargeCreditsWallet(t *testing.T) {
	mockGateway := mocks.NewMockGatewayClient(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	topups := service.NewTopupService(mockGateway, mockLedger, "FLWPUBK-test", "NGN")

	ctx := context.Background()

	mockGateway.EXPECT().
		VerifyTransaction(ctx, "884210").
		Return(&flutterwave.Charge{
			ID:       884210,
			TxRef:    "TOP-abc",
			Amount:   decimal.NewFromInt(2000),
			Currency: "NGN",
			Status:   flutterwave.StatusSuccessful,
		}, nil).
		Once()
	mockLedger.EXPECT().
		Sync(ctx, mock.MatchedBy(func(req dto.WalletSync) bool {
			return req.UserID == "user-1" &&
				req.TransactionType == string(models.TypeWalletTopup) &&
				req.Reference == "TOP-abc" &&
				req.Amount.Equal(decimal.NewFromInt(2000))
		})).
		Return(&service.SyncResult{
			TransactionID: "txn-1",
			Reference:     "TOP-abc",
			NewBalance:    decimal.NewFromInt(12000),
		}, nil).
		Once()

	result, err := topups.Callback(ctx, dto.PaymentCallback{
		UserID:        "user-1",
		TransactionID: "884210",
		Reference:     "TOP-abc",
		Status:        "successful",
	})

	assert.NoError(t, err)
	assert.True(t, result.NewBalance.Equal(decimal.NewFromInt(12000)))
	mockGateway.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
}

func TestCallback_FailedStatusCreditsNothing(t *testing.T) {
	mockGateway := mocks.NewMockGatewayClient(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	topups := service.NewTopupService(mockGateway, mockLedger, "FLWPUBK-test", "NGN")

	result, err := topups.Callback(context.Background(), dto.PaymentCallback{
		UserID:        "user-1",
		TransactionID: "884210",
		Reference:     "TOP-abc",
		Status:        "failed",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrPaymentNotCompleted)
	mockGateway.AssertNotCalled(t, "VerifyTransaction", mock.Anything, mock.Anything)
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestCallback_ChargeNotSuccessfulServerSide(t *testing.T) {
	mockGateway := mocks.NewMockGatewayClient(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	topups := service.NewTopupService(mockGateway, mockLedger, "FLWPUBK-test", "NGN")

	ctx := context.Background()

	mockGateway.EXPECT().
		VerifyTransaction(ctx, "884210").
		Return(&flutterwave.Charge{
			ID:       884210,
			TxRef:    "TOP-abc",
			Amount:   decimal.NewFromInt(2000),
			Currency: "NGN",
			Status:   "failed",
		}, nil).
		Once()

	result, err := topups.Callback(ctx, dto.PaymentCallback{
		UserID:        "user-1",
		TransactionID: "884210",
		Reference:     "TOP-abc",
		Status:        "successful",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrPaymentNotCompleted)
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestCallback_ReferenceMismatchRejected(t *testing.T) {
	mockGateway := mocks.NewMockGatewayClient(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	topups := service.NewTopupService(mockGateway, mockLedger, "FLWPUBK-test", "NGN")

	ctx := context.Background()

	mockGateway.EXPECT().
		VerifyTransaction(ctx, "884210").
		Return(&flutterwave.Charge{
			ID:       884210,
			TxRef:    "TOP-other",
			Amount:   decimal.NewFromInt(2000),
			Currency: "NGN",
			Status:   flutterwave.StatusSuccessful,
		}, nil).
		Once()

	result, err := topups.Callback(ctx, dto.PaymentCallback{
		UserID:        "user-1",
		TransactionID: "884210",
		Reference:     "TOP-abc",
		Status:        "successful",
	})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reference mismatch")
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestCallback_CurrencyMismatchRejected(t *testing.T) {
	mockGateway := mocks.NewMockGatewayClient(t)
	mockLedger := mocks.NewMockWalletSyncer(t)
	topups := service.NewTopupService(mockGateway, mockLedger, "FLWPUBK-test", "NGN")

	ctx := context.Background()

	mockGateway.EXPECT().
		VerifyTransaction(ctx, "884210").
		Return(&flutterwave.Charge{
			ID:       884210,
			TxRef:    "TOP-abc",
			Amount:   decimal.NewFromInt(2000),
			Currency: "GHS",
			Status:   flutterwave.StatusSuccessful,
		}, nil).
		Once()

	result, err := topups.Callback(ctx, dto.PaymentCallback{
		UserID:        "user-1",
		TransactionID: "884210",
		Reference:     "TOP-abc",
		Status:        "successful",
	})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "currency mismatch")
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}
