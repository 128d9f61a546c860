package handlers

import (
	"context"
	"net/http"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/gin-gonic/gin"
)

type TransferServiceIn interface {
	SearchRecipient(ctx context.Context, senderID, rawAccountID string) (*models.Profile, error)
	Process(ctx context.Context, req dto.Transfer) (*service.TransferResult, error)
}

// TransferHandler exposes recipient search and the transfer remote
// function.
type TransferHandler struct {
	Transfers TransferServiceIn
}

func NewTransferHandler(s TransferServiceIn) *TransferHandler {
	return &TransferHandler{Transfers: s}
}

// GET /recipients/:account_id
func (h *TransferHandler) SearchRecipient(c *gin.Context) {
	senderID := c.GetHeader("X-User-ID")
	if senderID == "" {
		badRequest(c, "missing X-User-ID header")
		return
	}

	profile, err := h.Transfers.SearchRecipient(c.Request.Context(), senderID, c.Param("account_id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"account_id": profile.AccountID,
		"full_name":  profile.FullName,
	})
}

// POST /transfers
func (h *TransferHandler) Process(c *gin.Context) {
	var req dto.Transfer
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.Transfers.Process(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
