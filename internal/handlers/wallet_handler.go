package handlers

import (
	"context"
	"net/http"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/gin-gonic/gin"
)

type LedgerServiceIn interface {
	Sync(ctx context.Context, req dto.WalletSync) (*service.SyncResult, error)
}

// WalletHandler exposes the ledger sync remote function.
type WalletHandler struct {
	Ledger LedgerServiceIn
}

func NewWalletHandler(s LedgerServiceIn) *WalletHandler {
	return &WalletHandler{Ledger: s}
}

// POST /wallet/sync
func (h *WalletHandler) Sync(c *gin.Context) {
	var req dto.WalletSync
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.Ledger.Sync(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"new_balance":    result.NewBalance,
		"transaction_id": result.TransactionID,
		"reference":      result.Reference,
	})
}
