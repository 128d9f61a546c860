package handlers

import (
	"context"
	"net/http"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/gin-gonic/gin"
)

type WithdrawalServiceIn interface {
	Process(ctx context.Context, req dto.Withdrawal) (*service.WithdrawalResult, error)
}

// WithdrawalHandler exposes the withdrawal remote function.
type WithdrawalHandler struct {
	Withdrawals WithdrawalServiceIn
}

func NewWithdrawalHandler(s WithdrawalServiceIn) *WithdrawalHandler {
	return &WithdrawalHandler{Withdrawals: s}
}

// POST /withdrawals
func (h *WithdrawalHandler) Process(c *gin.Context) {
	var req dto.Withdrawal
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.Withdrawals.Process(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
