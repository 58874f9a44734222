package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/4supreme/business-application/internal/apierror"
	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Stock figures change on every posting, so cache entries stay short-lived.
const priceCacheTTL = 60 * time.Second

// PriceLookupHandler serves the barcode price check endpoint with a
// best-effort Redis read-through cache.
type PriceLookupHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewPriceLookupHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceLookupHandler {
	return &PriceLookupHandler{repo: repo, rdb: rdb}
}

// GetByBarcode godoc
// @Summary Look up a product by barcode
// @Tags price
// @Produce json
// @Param barcode path string true "Barcode"
// @Success 200 {object} dto.PriceLookupResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/price/{barcode} [get]
func (h *PriceLookupHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	cacheKey := "price:" + barcode

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceLookupResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	product, err := h.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}

	resp := dto.PriceLookupResponse{
		ID:        product.ID,
		Name:      product.Name,
		Unit:      product.Unit,
		QtyOnHand: product.QtyOnHand,
		AvgCost:   product.AvgCost,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
