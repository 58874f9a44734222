package dto

import "github.com/shopspring/decimal"

type MovementFilter struct {
	ProductID uint `form:"product_id"`
	Page      int  `form:"page,default=1"    validate:"min=1"`
	Limit     int  `form:"limit,default=100" validate:"min=1,max=500"`
}

type StockMovementResponse struct {
	ID         uint            `json:"id"`
	DocumentID uint            `json:"document_id"`
	ProductID  uint            `json:"product_id"`
	Product    string          `json:"product,omitempty"`
	Qty        decimal.Decimal `json:"qty"`
	Price      decimal.Decimal `json:"price"`
	Direction  string          `json:"direction"`
	CreatedAt  string          `json:"created_at"`
}

type StockMovementListResponse struct {
	Data  []StockMovementResponse `json:"data"`
	Total int64                   `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}
