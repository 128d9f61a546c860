package billers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/BlacAnon1/banqa-wallet-service/internal/clients/reloadly"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/shopspring/decimal"
)

// AirtimeClient is the slice of the Reloadly client the airtime provider
// uses.
type AirtimeClient interface {
	DetectOperator(ctx context.Context, phone, countryCode string) (*reloadly.Operator, error)
	Topup(ctx context.Context, operatorID int64, amount decimal.Decimal, phone, countryCode, reference string) (*reloadly.TopupResult, error)
}

// AirtimeProvider fulfils airtime top-ups through Reloadly. Verify
// resolves the operator for the phone number; Pay submits the top-up.
type AirtimeProvider struct {
	Client         AirtimeClient
	DefaultCountry string
}

func NewAirtimeProvider(client AirtimeClient, defaultCountry string) *AirtimeProvider {
	return &AirtimeProvider{
		Client:         client,
		DefaultCountry: defaultCountry,
	}
}

func (p *AirtimeProvider) Verify(ctx context.Context, svc *models.BillService, customerData map[string]string) (*VerificationResult, error) {
	phone, country := p.recipient(customerData)

	operator, err := p.Client.DetectOperator(ctx, phone, country)
	if err != nil {
		return &VerificationResult{Valid: false}, err
	}

	return &VerificationResult{
		Valid: true,
		CustomerInfo: map[string]string{
			"phone_number": phone,
			"operator":     operator.Name,
			"operator_id":  strconv.FormatInt(operator.ID, 10),
		},
	}, nil
}

func (p *AirtimeProvider) Pay(ctx context.Context, svc *models.BillService, amount decimal.Decimal, customerData map[string]string, reference string) (*PaymentResult, error) {
	phone, country := p.recipient(customerData)

	operator, err := p.Client.DetectOperator(ctx, phone, country)
	if err != nil {
		return nil, err
	}

	result, err := p.Client.Topup(ctx, operator.ID, amount, phone, country, reference)
	if err != nil {
		return nil, err
	}

	if result.Status != "SUCCESSFUL" {
		return &PaymentResult{
			Approved: false,
			Message:  fmt.Sprintf("top-up %s", result.Status),
		}, nil
	}

	return &PaymentResult{
		Approved:    true,
		ProviderRef: strconv.FormatInt(result.TransactionID, 10),
		Message:     "airtime delivered",
	}, nil
}

func (p *AirtimeProvider) recipient(customerData map[string]string) (phone, country string) {
	phone = customerData["phone_number"]
	country = customerData["country_code"]
	if country == "" {
		country = p.DefaultCountry
	}
	return phone, country
}
