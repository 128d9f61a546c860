package reloadly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to the Reloadly airtime API. Authentication is OAuth
// client-credentials; the token is cached until shortly before expiry.
type Client struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

type Operator struct {
	ID   int64  `json:"operatorId"`
	Name string `json:"name"`
}

type TopupResult struct {
	TransactionID int64  `json:"transactionId"`
	Status        string `json:"status"`
}

func NewClient(baseURL, authURL, clientID, clientSecret string) *Client {
	return &Client{
		BaseURL:      baseURL,
		AuthURL:      authURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	payload := map[string]string{
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"grant_type":    "client_credentials",
		"audience":      c.BaseURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reloadly token exchange failed with status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}

	c.token = tokenResp.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)
	return c.token, nil
}

// DetectOperator resolves the mobile operator serving a phone number.
func (c *Client) DetectOperator(ctx context.Context, phone, countryCode string) (*Operator, error) {
	path := fmt.Sprintf("/operators/auto-detect/phone/%s/countries/%s",
		url.PathEscape(phone), url.PathEscape(countryCode))

	var operator Operator
	if err := c.get(ctx, path, &operator); err != nil {
		return nil, err
	}
	return &operator, nil
}

// Topup submits an airtime top-up to the detected operator.
func (c *Client) Topup(ctx context.Context, operatorID int64, amount decimal.Decimal, phone, countryCode, reference string) (*TopupResult, error) {
	payload := map[string]interface{}{
		"operatorId":       operatorID,
		"amount":           amount,
		"useLocalAmount":   true,
		"customIdentifier": reference,
		"recipientPhone": map[string]string{
			"countryCode": countryCode,
			"number":      phone,
		},
	}

	var result TopupResult
	if err := c.post(ctx, "/topups", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/com.reloadly.topups-v1+json")

	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/com.reloadly.topups-v1+json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("reloadly error (%d): %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("reloadly request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
