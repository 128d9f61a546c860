package billers_test

import (
	"context"
	"testing"

	"github.com/BlacAnon1/banqa-wallet-service/internal/billers"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSimulatedVerify_EchoesCustomerData(t *testing.T) {
	provider := billers.NewSimulatedProvider()
	svc := &models.BillService{Name: "DSTV", ServiceType: "tv", ProviderName: "dstv"}

	result, err := provider.Verify(context.Background(), svc, map[string]string{"smartcard_number": "7024512345"})

	assert.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "DSTV", result.CustomerInfo["service"])
	assert.Equal(t, "7024512345", result.CustomerInfo["smartcard_number"])
	assert.True(t, result.AmountDue.GreaterThan(decimal.Zero))
}

func TestSimulatedPay_Approves(t *testing.T) {
	provider := billers.NewSimulatedProvider()
	svc := &models.BillService{Name: "DSTV", ServiceType: "tv", ProviderName: "dstv"}

	result, err := provider.Pay(context.Background(), svc, decimal.NewFromInt(2000), map[string]string{"smartcard_number": "7024512345"}, "BILL-1")

	assert.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "SIM-BILL-1", result.ProviderRef)
}

func TestSimulatedPay_DeclinesTrailingZeros(t *testing.T) {
	provider := billers.NewSimulatedProvider()
	svc := &models.BillService{Name: "DSTV", ServiceType: "tv", ProviderName: "dstv"}

	result, err := provider.Pay(context.Background(), svc, decimal.NewFromInt(2000), map[string]string{"smartcard_number": "7024510000"}, "BILL-2")

	assert.NoError(t, err)
	assert.False(t, result.Approved)
	assert.Empty(t, result.ProviderRef)
}

func TestRegistry_FallsBackToDefaultProvider(t *testing.T) {
	fallback := billers.NewSimulatedProvider()
	registry := billers.NewRegistry(fallback)

	dedicated := billers.NewSimulatedProvider()
	registry.Register("airtime", dedicated)

	assert.Same(t, dedicated, registry.Get("airtime"))
	assert.Same(t, fallback, registry.Get("electricity"))
}
