package handler

import (
	"net/http"

	"github.com/4supreme/business-application/internal/apierror"
	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/repository"

	"github.com/gin-gonic/gin"
)

// MovementsHandler reads the stock audit ledger straight from the repository —
// there is no business logic between the log and its consumers.
type MovementsHandler struct{ repo repository.StockMovementRepository }

func NewMovementsHandler(repo repository.StockMovementRepository) *MovementsHandler {
	return &MovementsHandler{repo: repo}
}

// List godoc
// @Summary List stock movements, newest first
// @Tags movements
// @Produce json
// @Param product_id query int false "Filter by product"
// @Success 200 {object} dto.StockMovementListResponse
// @Router /v1/movements [get]
func (h *MovementsHandler) List(c *gin.Context) {
	var filter dto.MovementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	movements, total, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		name := ""
		if m.Product != nil {
			name = m.Product.Name
		}
		data = append(data, dto.StockMovementResponse{
			ID:         m.ID,
			DocumentID: m.DocumentID,
			ProductID:  m.ProductID,
			Product:    name,
			Qty:        m.Qty,
			Price:      m.Price,
			Direction:  string(m.Direction),
			CreatedAt:  m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	c.JSON(http.StatusOK, dto.StockMovementListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}
