package flutterwave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Client verifies hosted-checkout charges against the Flutterwave API.
// The checkout itself runs client-side with the public key; the server
// only ever calls the verify endpoint with the secret key.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

// Charge is the verified state of one gateway transaction.
type Charge struct {
	ID       int64           `json:"id"`
	TxRef    string          `json:"tx_ref"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
}

const StatusSuccessful = "successful"

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		SecretKey:  secretKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// VerifyTransaction fetches the authoritative state of a charge by the
// gateway transaction id returned from the checkout callback.
func (c *Client) VerifyTransaction(ctx context.Context, transactionID string) (*Charge, error) {
	endpoint := fmt.Sprintf("%s/transactions/%s/verify", c.BaseURL, url.PathEscape(transactionID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flutterwave verify failed with status %d", resp.StatusCode)
	}

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    Charge `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("flutterwave verify rejected: %s", body.Message)
	}

	return &body.Data, nil
}
