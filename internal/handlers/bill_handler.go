package handlers

import (
	"context"
	"net/http"

	"github.com/BlacAnon1/banqa-wallet-service/internal/billers"
	"github.com/BlacAnon1/banqa-wallet-service/internal/models/dto"
	"github.com/BlacAnon1/banqa-wallet-service/internal/service"
	"github.com/gin-gonic/gin"
)

type BillPayServiceIn interface {
	Verify(ctx context.Context, req dto.BillVerify) (*billers.VerificationResult, error)
	Pay(ctx context.Context, req dto.BillPay) (*service.BillPayResult, error)
}

// BillHandler exposes the bill verify and pay remote functions.
type BillHandler struct {
	Bills BillPayServiceIn
}

func NewBillHandler(s BillPayServiceIn) *BillHandler {
	return &BillHandler{Bills: s}
}

// POST /bills/verify
func (h *BillHandler) Verify(c *gin.Context) {
	var req dto.BillVerify
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.Bills.Verify(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"valid":         result.Valid,
		"customer_info": result.CustomerInfo,
		"amount_due":    result.AmountDue,
	})
}

// POST /bills/pay
func (h *BillHandler) Pay(c *gin.Context) {
	var req dto.BillPay
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	result, err := h.Bills.Pay(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
