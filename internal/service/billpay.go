package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BlacAnon1/banqa-wallet-service/internal/billers"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/sirupsen/logrus"
)

// BillStore is the persistence surface of the bill payment orchestrator.
type BillStore interface {
	GetBillService(ctx context.Context, serviceType, providerName string) (*models.BillService, error)
	GetWallet(ctx context.Context, userID, currency string) (*models.Wallet, error)
	FindTransactionByReference(ctx context.Context, reference string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	SettleTransaction(ctx context.Context, txn *models.Transaction, status models.TransactionStatus, currency string, debitWallet bool) error
}

// ProviderRegistry resolves the biller serving a service type.
type ProviderRegistry interface {
	Get(serviceType string) billers.Provider
}

// MissingFieldsError lists the required customer_data fields a request
// omitted or left blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing_fields: " + strings.Join(e.Fields, ", ")
}

// BillPayResult is the client-facing outcome of a pay submission.
type BillPayResult struct {
	Success   bool   `json:"success"`
	Status    string `json:"status"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
	Replayed  bool   `json:"replayed,omitempty"`
}

// BillPayService verifies service inputs and settles bill payments. A
// payment is recorded pending before the provider call and settles
// completed or failed from the provider's answer; the wallet is debited
// only on success, and always in the same database transaction as the
// settlement. reference_id deduplicates retried submissions.
type BillPayService struct {
	Store        BillStore
	Providers    ProviderRegistry
	Publisher    Publisher
	BaseCurrency string
}

func NewBillPayService(store BillStore, providers ProviderRegistry, publisher Publisher, baseCurrency string) *BillPayService {
	return &BillPayService{
		Store:        store,
		Providers:    providers,
		Publisher:    publisher,
		BaseCurrency: baseCurrency,
	}
}

// Verify validates customer_data against the service configuration and
// asks the provider to confirm the customer.
func (s *BillPayService) Verify(ctx context.Context, req dto.BillVerify) (*billers.VerificationResult, error) {
	req.Sanitize()

	svc, err := s.Store.GetBillService(ctx, req.ServiceType, req.ProviderName)
	if err != nil {
		return nil, err
	}

	if missing := missingFields(svc, req.CustomerData); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	return s.Providers.Get(svc.ServiceType).Verify(ctx, svc, req.CustomerData)
}

// Pay runs one bill payment. A replayed reference_id returns the
// recorded outcome without touching the wallet again.
func (s *BillPayService) Pay(ctx context.Context, req dto.BillPay) (*BillPayResult, error) {
	req.Sanitize()

	if req.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	if req.ReferenceID == "" {
		return nil, fmt.Errorf("reference_id is required")
	}

	existing, err := s.Store.FindTransactionByReference(ctx, req.ReferenceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &BillPayResult{
			Success:   existing.Status == models.StatusCompleted,
			Status:    string(existing.Status),
			Message:   "payment already processed",
			Reference: existing.ReferenceNumber,
			Replayed:  true,
		}, nil
	}

	svc, err := s.Store.GetBillService(ctx, req.ServiceType, req.ProviderName)
	if err != nil {
		return nil, err
	}
	if missing := missingFields(svc, req.CustomerData); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	wallet, err := s.Store.GetWallet(ctx, req.UserID, s.BaseCurrency)
	if err != nil {
		return nil, err
	}
	if wallet.Balance.LessThan(req.Amount) {
		return nil, models.ErrInsufficientFunds
	}

	txn := &models.Transaction{
		UserID:          req.UserID,
		Type:            models.TypeBillPayment,
		Amount:          req.Amount,
		Status:          models.StatusPending,
		ReferenceNumber: req.ReferenceID,
		ServiceType:     svc.ServiceType,
		ProviderName:    svc.ProviderName,
		Description:     fmt.Sprintf("%s payment via %s", svc.Name, svc.ProviderName),
	}
	if err := s.Store.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	result, err := s.Providers.Get(svc.ServiceType).Pay(ctx, svc, req.Amount, req.CustomerData, req.ReferenceID)
	if err != nil {
		txn.Metadata = fmt.Sprintf(`{"provider_error":%q}`, err.Error())
		s.settle(ctx, txn, models.StatusFailed, false)
		s.notify(ctx, req.UserID, "Bill payment failed",
			fmt.Sprintf("Your %s payment of %s %s failed", svc.Name, req.Amount.String(), s.BaseCurrency))
		return nil, fmt.Errorf("provider error: %w", err)
	}

	if !result.Approved {
		txn.Metadata = fmt.Sprintf(`{"provider_message":%q}`, result.Message)
		s.settle(ctx, txn, models.StatusFailed, false)
		s.notify(ctx, req.UserID, "Bill payment failed",
			fmt.Sprintf("Your %s payment of %s %s was declined: %s", svc.Name, req.Amount.String(), s.BaseCurrency, result.Message))
		return &BillPayResult{
			Success:   false,
			Status:    string(models.StatusFailed),
			Message:   result.Message,
			Reference: txn.ReferenceNumber,
		}, nil
	}

	txn.Metadata = fmt.Sprintf(`{"provider_ref":%q}`, result.ProviderRef)
	if err := s.Store.SettleTransaction(ctx, txn, models.StatusCompleted, s.BaseCurrency, true); err != nil {
		return nil, err
	}

	s.notify(ctx, req.UserID, "Bill payment successful",
		fmt.Sprintf("Your %s payment of %s %s was successful", svc.Name, req.Amount.String(), s.BaseCurrency))

	return &BillPayResult{
		Success:   true,
		Status:    string(models.StatusCompleted),
		Message:   result.Message,
		Reference: txn.ReferenceNumber,
	}, nil
}

func (s *BillPayService) settle(ctx context.Context, txn *models.Transaction, status models.TransactionStatus, debit bool) {
	if err := s.Store.SettleTransaction(ctx, txn, status, s.BaseCurrency, debit); err != nil {
		logrus.Errorf("Error settling transaction %s: %s", txn.ID, err.Error())
	}
}

func (s *BillPayService) notify(ctx context.Context, userID, title, body string) {
	event := models.NotificationCreatedEvent{
		UserID:    userID,
		Title:     title,
		Body:      body,
		Category:  "bill_payment",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.NotificationCreatedTopic, event); err != nil {
		logrus.Errorf("Error publishing notification event: %s", err.Error())
	}
}

func missingFields(svc *models.BillService, customerData map[string]string) []string {
	var missing []string
	for _, field := range svc.RequiredFieldList() {
		if strings.TrimSpace(customerData[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
