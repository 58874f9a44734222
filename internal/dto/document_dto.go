package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DocumentLineRequest struct {
	ProductID uint            `json:"product_id" validate:"required,min=1"`
	Qty       decimal.Decimal `json:"qty"        validate:"required"`
	Price     decimal.Decimal `json:"price"`
}

type CreateDocumentRequest struct {
	Type string `json:"type" validate:"required,oneof=purchase sale"`
	// Date accepts "YYYY-MM-DD" or RFC3339; empty means today.
	Date    string                `json:"date"`
	Partner *string               `json:"partner" validate:"omitempty,max=120"`
	Lines   []DocumentLineRequest `json:"lines"   validate:"required,min=1,dive"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type DocumentFilter struct {
	Type   string `form:"type"   validate:"omitempty,oneof=purchase sale"`
	Status string `form:"status" validate:"omitempty,oneof=draft posted canceled"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DocumentLineResponse struct {
	ProductID uint            `json:"product_id"`
	Product   string          `json:"product,omitempty"`
	Qty       decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

type DocumentResponse struct {
	ID          uint                   `json:"id"`
	Type        string                 `json:"type"`
	Status      string                 `json:"status"`
	Number      *string                `json:"number"`
	Date        string                 `json:"date"`
	Partner     *string                `json:"partner"`
	Total       decimal.Decimal        `json:"total"`
	TotalCOGS   decimal.Decimal        `json:"total_cogs"`
	GrossProfit decimal.Decimal        `json:"gross_profit"`
	Lines       []DocumentLineResponse `json:"lines"`
}

type DocumentListResponse struct {
	Data  []DocumentResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// VendorHistoryRow is one line of a vendor's purchase history.
type VendorHistoryRow struct {
	Date        string          `json:"date"`
	ProductName string          `json:"product_name"`
	Qty         decimal.Decimal `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}
