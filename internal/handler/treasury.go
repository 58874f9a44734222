package handler

import (
	"net/http"
	"strconv"

	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/service"

	"github.com/gin-gonic/gin"
)

type TreasuryHandler struct{ svc service.TreasuryService }

func NewTreasuryHandler(svc service.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{svc: svc}
}

// Record godoc
// @Summary Record a cash or bank transaction
// @Tags treasury
// @Accept json
// @Produce json
// @Param body body dto.RecordTransactionRequest true "Transaction data"
// @Success 201 {object} dto.CashTransactionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/treasury/transactions [post]
func (h *TreasuryHandler) Record(c *gin.Context) {
	var req dto.RecordTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Balance godoc
// @Summary Aggregated cash/bank balances, rounded to 2 decimals
// @Tags treasury
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Router /v1/treasury/balance [get]
func (h *TreasuryHandler) Balance(c *gin.Context) {
	resp, err := h.svc.Balance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recent godoc
// @Summary Most recent transactions, id descending
// @Tags treasury
// @Produce json
// @Param limit query int false "Row limit (default 10)"
// @Success 200 {array} dto.CashTransactionResponse
// @Router /v1/treasury/recent [get]
func (h *TreasuryHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
