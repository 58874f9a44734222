package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=120"`
	SKU     *string `json:"sku"     validate:"omitempty,max=64"`
	Unit    *string `json:"unit"    validate:"omitempty,max=16"`
	Barcode *string `json:"barcode" validate:"omitempty,min=8,max=18"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	SKU       *string         `json:"sku"`
	Unit      string          `json:"unit"`
	Barcode   *string         `json:"barcode"`
	QtyOnHand decimal.Decimal `json:"qty_on_hand"`
	AvgCost   decimal.Decimal `json:"avg_cost"`
}

// PriceLookupResponse is returned by the public price check endpoint.
type PriceLookupResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	QtyOnHand decimal.Decimal `json:"qty_on_hand"`
	AvgCost   decimal.Decimal `json:"avg_cost"`
}
