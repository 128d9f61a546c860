package service

import (
	"context"
	"fmt"

	"github.com/BlacAnon1/banqa-wallet-service/internal/clients/flutterwave"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/shopspring/decimal"
)

// GatewayClient is the verification slice of the payment gateway client.
type GatewayClient interface {
	VerifyTransaction(ctx context.Context, transactionID string) (*flutterwave.Charge, error)
}

// PaymentData is the descriptor the hosted checkout widget is opened
// with. The public key is the only credential that ever reaches the
// client.
type PaymentData struct {
	PublicKey     string          `json:"public_key"`
	TxRef         string          `json:"tx_ref"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CustomerEmail string          `json:"customer_email"`
	CustomerName  string          `json:"customer_name"`
}

type InitializeResult struct {
	PaymentData PaymentData `json:"payment_data"`
	Reference   string      `json:"reference"`
}

// TopupService funds a wallet from the hosted payment gateway. The
// credit happens only after the charge is re-verified server-side
// against the gateway API, and goes through the ledger with the charge
// reference so a replayed callback cannot credit twice.
type TopupService struct {
	Gateway      GatewayClient
	Ledger       WalletSyncer
	PublicKey    string
	BaseCurrency string
}

func NewTopupService(gateway GatewayClient, ledger WalletSyncer, publicKey, baseCurrency string) *TopupService {
	return &TopupService{
		Gateway:      gateway,
		Ledger:       ledger,
		PublicKey:    publicKey,
		BaseCurrency: baseCurrency,
	}
}

// Initialize issues a unique payment reference and the checkout
// descriptor for it.
func (s *TopupService) Initialize(ctx context.Context, req dto.InitializePayment) (*InitializeResult, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	reference := models.NewReference("TOP")
	return &InitializeResult{
		Reference: reference,
		PaymentData: PaymentData{
			PublicKey:     s.PublicKey,
			TxRef:         reference,
			Amount:        req.Amount,
			Currency:      s.BaseCurrency,
			CustomerEmail: req.Email,
			CustomerName:  req.Name,
		},
	}, nil
}

// Callback settles a checkout callback: verify the charge with the
// gateway, then credit the verified amount. A failed or mismatched
// charge credits nothing.
func (s *TopupService) Callback(ctx context.Context, req dto.PaymentCallback) (*SyncResult, error) {
	req.Sanitize()

	if req.Status != flutterwave.StatusSuccessful {
		return nil, models.ErrPaymentNotCompleted
	}

	charge, err := s.Gateway.VerifyTransaction(ctx, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if charge.Status != flutterwave.StatusSuccessful {
		return nil, models.ErrPaymentNotCompleted
	}
	if charge.TxRef != req.Reference {
		return nil, fmt.Errorf("charge reference mismatch")
	}
	if charge.Currency != s.BaseCurrency {
		return nil, fmt.Errorf("charge currency mismatch: %s", charge.Currency)
	}

	return s.Ledger.Sync(ctx, dto.WalletSync{
		UserID:          req.UserID,
		Amount:          charge.Amount,
		TransactionType: string(models.TypeWalletTopup),
		Reference:       charge.TxRef,
		Description:     "Wallet top-up via card payment",
		Metadata:        fmt.Sprintf(`{"gateway_txn_id":%d}`, charge.ID),
	})
}
