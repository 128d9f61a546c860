package billers

import (
	"context"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/shopspring/decimal"
)

// VerificationResult is the provider's answer to a customer lookup.
type VerificationResult struct {
	Valid        bool              `json:"valid"`
	CustomerInfo map[string]string `json:"customer_info"`
	AmountDue    decimal.Decimal   `json:"amount_due"`
}

// PaymentResult is the provider's settlement decision for one payment.
// Approved false with a nil error is a clean decline; the transaction
// settles failed without a wallet debit.
type PaymentResult struct {
	Approved    bool   `json:"approved"`
	ProviderRef string `json:"provider_ref"`
	Message     string `json:"message"`
}

// Provider is one external biller (electricity, TV, airtime...).
type Provider interface {
	Verify(ctx context.Context, svc *models.BillService, customerData map[string]string) (*VerificationResult, error)
	Pay(ctx context.Context, svc *models.BillService, amount decimal.Decimal, customerData map[string]string, reference string) (*PaymentResult, error)
}

// Registry routes a service type to its provider, falling back to the
// default provider for types without a dedicated integration.
type Registry struct {
	byType   map[string]Provider
	fallback Provider
}

func NewRegistry(fallback Provider) *Registry {
	return &Registry{
		byType:   make(map[string]Provider),
		fallback: fallback,
	}
}

func (r *Registry) Register(serviceType string, p Provider) {
	r.byType[serviceType] = p
}

func (r *Registry) Get(serviceType string) Provider {
	if p, ok := r.byType[serviceType]; ok {
		return p
	}
	return r.fallback
}
