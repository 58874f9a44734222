package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordTransactionRequest struct {
	// Date accepts "YYYY-MM-DD" or RFC3339; empty means now.
	Date         string          `json:"date"`
	Account      string          `json:"account"   validate:"required,oneof=cash bank"`
	Direction    string          `json:"direction" validate:"required,oneof=in out"`
	Amount       decimal.Decimal `json:"amount"    validate:"required"`
	Counterparty *string         `json:"counterparty" validate:"omitempty,max=120"`
	Note         *string         `json:"note"         validate:"omitempty,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CashTransactionResponse struct {
	ID           uint            `json:"id"`
	Date         string          `json:"date"`
	Account      string          `json:"account"`
	Direction    string          `json:"direction"`
	Amount       decimal.Decimal `json:"amount"`
	Counterparty *string         `json:"counterparty"`
	Note         *string         `json:"note"`
}

// BalanceResponse aggregates signed sums per account, rounded to 2 decimals.
type BalanceResponse struct {
	Cash  decimal.Decimal `json:"cash"`
	Bank  decimal.Decimal `json:"bank"`
	Total decimal.Decimal `json:"total"`
}
