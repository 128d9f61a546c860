package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BlacAnon1/banqa-wallet-service/internal/handlers"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func syncRouter(ledger handlers.LedgerServiceIn) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/wallet/sync", handlers.NewWalletHandler(ledger).Sync)
	return router
}

func TestSyncEndpoint_Success(t *testing.T) {
	mockLedger := mocks.NewMockWalletSyncer(t)
	router := syncRouter(mockLedger)

	mockLedger.EXPECT().
		Sync(mock.Anything, mock.Anything).
		Return(&service.SyncResult{
			TransactionID: "txn-1",
			Reference:     "TXN-abc",
			NewBalance:    decimal.NewFromInt(1500),
		}, nil).
		Once()

	body := `{"user_id":"user-1","amount":"500","transaction_type":"credit"}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "TXN-abc", resp["reference"])
	mockLedger.AssertExpectations(t)
}

func TestSyncEndpoint_ServiceErrorReturnsStructuredFailure(t *testing.T) {
	mockLedger := mocks.NewMockWalletSyncer(t)
	router := syncRouter(mockLedger)

	mockLedger.EXPECT().
		Sync(mock.Anything, mock.Anything).
		Return(nil, models.ErrInsufficientFunds).
		Once()

	body := `{"user_id":"user-1","amount":"-9000","transaction_type":"debit"}`
	req := httptest.NewRequest(http.MethodPost, "/wallet/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, models.ErrInsufficientFunds.Error(), resp["error"])
}

func TestSyncEndpoint_MalformedBody(t *testing.T) {
	mockLedger := mocks.NewMockWalletSyncer(t)
	router := syncRouter(mockLedger)

	req := httptest.NewRequest(http.MethodPost, "/wallet/sync", strings.NewReader(`{"amount":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockLedger.AssertNotCalled(t, "Sync", mock.Anything, mock.Anything)
}

func TestRequireAuth_RejectsAnonymousCalls(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers.RequireAuth())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"", "Bearer ", "Token abc"} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
