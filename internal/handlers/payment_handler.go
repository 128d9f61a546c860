package handlers

import (
	"context"
	"net/http"

	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/gin-gonic/gin"
)

type TopupServiceIn interface {
	Initialize(ctx context.Context, req dto.InitializePayment) (*service.InitializeResult, error)
	Callback(ctx context.Context, req dto.PaymentCallback) (*service.SyncResult, error)
}

// PaymentHandler exposes wallet top-up initialization and the checkout
// callback.
type PaymentHandler struct {
	Topups TopupServiceIn
}

func NewPaymentHandler(s TopupServiceIn) *PaymentHandler {
	return &PaymentHandler{Topups: s}
}

// POST /payments/initialize
func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req dto.InitializePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.Topups.Initialize(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"payment_data": result.PaymentData,
		"reference":    result.Reference,
	})
}

// POST /payments/callback
func (h *PaymentHandler) Callback(c *gin.Context) {
	var req dto.PaymentCallback
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.Topups.Callback(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"new_balance": result.NewBalance,
		"reference":   result.Reference,
	})
}
