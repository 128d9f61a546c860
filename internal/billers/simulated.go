package billers

import (
	"context"
	"fmt"
	"strings"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/shopspring/decimal"
)

// SimulatedProvider is the default biller used where no live integration
// exists. Verification echoes the customer data back with a
// deterministic amount due; payment approves unless the customer number
// ends in 0000, which simulates a provider-side decline.
type SimulatedProvider struct{}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) Verify(ctx context.Context, svc *models.BillService, customerData map[string]string) (*VerificationResult, error) {
	info := map[string]string{
		"service": svc.Name,
	}
	for k, v := range customerData {
		info[k] = v
	}

	return &VerificationResult{
		Valid:        true,
		CustomerInfo: info,
		AmountDue:    decimal.NewFromInt(1000),
	}, nil
}

func (p *SimulatedProvider) Pay(ctx context.Context, svc *models.BillService, amount decimal.Decimal, customerData map[string]string, reference string) (*PaymentResult, error) {
	for _, v := range customerData {
		if strings.HasSuffix(v, "0000") {
			return &PaymentResult{
				Approved: false,
				Message:  "provider declined the payment",
			}, nil
		}
	}

	return &PaymentResult{
		Approved:    true,
		ProviderRef: fmt.Sprintf("SIM-%s", reference),
		Message:     "payment accepted",
	}, nil
}
