package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BlacAnon1/banqa-wallet-service/internal/billers"
	billermocks "github.com/BlacAnon1/banqa-wallet-service/internal/billers/mocks"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func electricityService() *models.BillService {
	return &models.BillService{
		ID:             "svc-1",
		Name:           "Ikeja Electric",
		ServiceType:    "electricity",
		ProviderName:   "ikeja_electric",
		RequiredFields: "meter_number",
		IsActive:       true,
	}
}

func TestPay_ApprovedPaymentDebitsWallet(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()
	svc := electricityService()
	req := dto.BillPay{
		UserID:       "user-1",
		ServiceType:  "electricity",
		ProviderName: "ikeja_electric",
		Amount:       decimal.NewFromInt(2000),
		CustomerData: map[string]string{"meter_number": "45028819"},
		ReferenceID:  "BILL-001",
	}

	mockStore.EXPECT().
		FindTransactionByReference(ctx, "BILL-001").
		Return(nil, nil).
		Once()
	mockStore.EXPECT().
		GetBillService(ctx, "electricity", "ikeja_electric").
		Return(svc, nil).
		Once()
	mockStore.EXPECT().
		GetWallet(ctx, "user-1", "NGN").
		Return(&models.Wallet{ID: "wallet-1", Balance: decimal.NewFromInt(5000)}, nil).
		Once()
	mockStore.EXPECT().
		CreateTransaction(ctx, mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.UserID == "user-1" &&
				txn.Type == models.TypeBillPayment &&
				txn.Status == models.StatusPending &&
				txn.ReferenceNumber == "BILL-001" &&
				txn.Amount.Equal(decimal.NewFromInt(2000))
		})).
		Return(nil).
		Once()
	mockProvider.EXPECT().
		Pay(ctx, svc, mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.NewFromInt(2000))
		}), req.CustomerData, "BILL-001").
		Return(&billers.PaymentResult{Approved: true, ProviderRef: "IKEJA-77", Message: "Payment successful"}, nil).
		Once()
	mockStore.EXPECT().
		SettleTransaction(ctx, mock.Anything, models.StatusCompleted, "NGN", true).
		Return(nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationCreatedTopic, mock.Anything).
		Return(nil).
		Once()

	result, err := bills.Pay(ctx, req)

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, string(models.StatusCompleted), result.Status)
	assert.Equal(t, "BILL-001", result.Reference)
	mockStore.AssertExpectations(t)
	mockProvider.AssertExpectations(t)
}

func TestPay_ProviderDeclineSettlesFailedWithoutDebit(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()
	svc := electricityService()
	req := dto.BillPay{
		UserID:       "user-1",
		ServiceType:  "electricity",
		ProviderName: "ikeja_electric",
		Amount:       decimal.NewFromInt(2000),
		CustomerData: map[string]string{"meter_number": "45020000"},
		ReferenceID:  "BILL-002",
	}

	mockStore.EXPECT().
		FindTransactionByReference(ctx, "BILL-002").
		Return(nil, nil).
		Once()
	mockStore.EXPECT().
		GetBillService(ctx, "electricity", "ikeja_electric").
		Return(svc, nil).
		Once()
	mockStore.EXPECT().
		GetWallet(ctx, "user-1", "NGN").
		Return(&models.Wallet{ID: "wallet-1", Balance: decimal.NewFromInt(5000)}, nil).
		Once()
	mockStore.EXPECT().
		CreateTransaction(ctx, mock.Anything).
		Return(nil).
		Once()
	mockProvider.EXPECT().
		Pay(ctx, svc, mock.Anything, req.CustomerData, "BILL-002").
		Return(&billers.PaymentResult{Approved: false, Message: "Meter not active"}, nil).
		Once()
	mockStore.EXPECT().
		SettleTransaction(ctx, mock.Anything, models.StatusFailed, "NGN", false).
		Return(nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationCreatedTopic, mock.Anything).
		Return(nil).
		Once()

	result, err := bills.Pay(ctx, req)

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, string(models.StatusFailed), result.Status)
	assert.Equal(t, "Meter not active", result.Message)
	mockStore.AssertExpectations(t)
}

func TestPay_ProviderErrorSettlesFailed(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()
	svc := electricityService()
	req := dto.BillPay{
		UserID:       "user-1",
		ServiceType:  "electricity",
		ProviderName: "ikeja_electric",
		Amount:       decimal.NewFromInt(2000),
		CustomerData: map[string]string{"meter_number": "45028819"},
		ReferenceID:  "BILL-003",
	}

	mockStore.EXPECT().
		FindTransactionByReference(ctx, "BILL-003").
		Return(nil, nil).
		Once()
	mockStore.EXPECT().
		GetBillService(ctx, "electricity", "ikeja_electric").
		Return(svc, nil).
		Once()
	mockStore.EXPECT().
		GetWallet(ctx, "user-1", "NGN").
		Return(&models.Wallet{ID: "wallet-1", Balance: decimal.NewFromInt(5000)}, nil).
		Once()
	mockStore.EXPECT().
		CreateTransaction(ctx, mock.Anything).
		Return(nil).
		Once()
	mockProvider.EXPECT().
		Pay(ctx, svc, mock.Anything, req.CustomerData, "BILL-003").
		Return(nil, errors.New("provider timeout")).
		Once()
	mockStore.EXPECT().
		SettleTransaction(ctx, mock.Anything, models.StatusFailed, "NGN", false).
		Return(nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.NotificationCreatedTopic, mock.Anything).
		Return(nil).
		Once()

	result, err := bills.Pay(ctx, req)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "provider timeout")
	mockStore.AssertExpectations(t)
}

func TestPay_MissingFieldsListed(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()
	svc := electricityService()
	svc.RequiredFields = "meter_number,customer_phone"
	req := dto.BillPay{
		UserID:       "user-1",
		ServiceType:  "electricity",
		ProviderName: "ikeja_electric",
		Amount:       decimal.NewFromInt(2000),
		CustomerData: map[string]string{"customer_phone": "   "},
		ReferenceID:  "BILL-004",
	}

	mockStore.EXPECT().
		FindTransactionByReference(ctx, "BILL-004").
		Return(nil, nil).
		Once()
	mockStore.EXPECT().
		GetBillService(ctx, "electricity", "ikeja_electric").
		Return(svc, nil).
		Once()

	result, err := bills.Pay(ctx, req)

	assert.Nil(t, result)
	var missingErr *service.MissingFieldsError
	assert.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"meter_number", "customer_phone"}, missingErr.Fields)
	mockStore.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	mockProvider.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPay_ReplayedReferenceReturnsRecordedOutcome(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()
	req := dto.BillPay{
		UserID:       "user-1",
		ServiceType:  "electricity",
		ProviderName: "ikeja_electric",
		Amount:       decimal.NewFromInt(2000),
		CustomerData: map[string]string{"meter_number": "45028819"},
		ReferenceID:  "BILL-005",
	}

	mockStore.EXPECT().
		FindTransactionByReference(ctx, "BILL-005").
		Return(&models.Transaction{
			ID:              "txn-1",
			Status:          models.StatusCompleted,
			ReferenceNumber: "BILL-005",
		}, nil).
		Once()

	result, err := bills.Pay(ctx, req)

	assert.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.True(t, result.Success)
	assert.Equal(t, "BILL-005", result.Reference)
	mockStore.AssertNotCalled(t, "GetBillService", mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
	mockProvider.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPay_InsufficientFunds(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()
	req := dto.BillPay{
		UserID:       "user-1",
		ServiceType:  "electricity",
		ProviderName: "ikeja_electric",
		Amount:       decimal.NewFromInt(8000),
		CustomerData: map[string]string{"meter_number": "45028819"},
		ReferenceID:  "BILL-006",
	}

	mockStore.EXPECT().
		FindTransactionByReference(ctx, "BILL-006").
		Return(nil, nil).
		Once()
	mockStore.EXPECT().
		GetBillService(ctx, "electricity", "ikeja_electric").
		Return(electricityService(), nil).
		Once()
	mockStore.EXPECT().
		GetWallet(ctx, "user-1", "NGN").
		Return(&models.Wallet{ID: "wallet-1", Balance: decimal.NewFromInt(5000)}, nil).
		Once()

	result, err := bills.Pay(ctx, req)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	mockStore.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestVerify_ReturnsProviderResult(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()
	svc := electricityService()
	customerData := map[string]string{"meter_number": "45028819"}

	mockStore.EXPECT().
		GetBillService(ctx, "electricity", "ikeja_electric").
		Return(svc, nil).
		Once()
	mockProvider.EXPECT().
		Verify(ctx, svc, customerData).
		Return(&billers.VerificationResult{
			Valid:        true,
			CustomerInfo: map[string]string{"name": "Alice Okafor"},
			AmountDue:    decimal.NewFromInt(4500),
		}, nil).
		Once()

	result, err := bills.Verify(ctx, dto.BillVerify{
		ServiceType:  "Electricity",
		ProviderName: "Ikeja_Electric",
		CustomerData: customerData,
	})

	assert.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "Alice Okafor", result.CustomerInfo["name"])
	mockStore.AssertExpectations(t)
}

func TestVerify_UnknownService(t *testing.T) {
	mockStore := mocks.NewMockBillStore(t)
	mockProvider := billermocks.NewMockProvider(t)
	mockPublisher := mocks.NewMockPublisher(t)
	bills := service.NewBillPayService(mockStore, billers.NewRegistry(mockProvider), mockPublisher, "NGN")

	ctx := context.Background()

	mockStore.EXPECT().
		GetBillService(ctx, "water", "lagos_water").
		Return(nil, models.ErrServiceNotFound).
		Once()

	result, err := bills.Verify(ctx, dto.BillVerify{
		ServiceType:  "water",
		ProviderName: "lagos_water",
		CustomerData: map[string]string{"account": "1"},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrServiceNotFound)
	mockProvider.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}
