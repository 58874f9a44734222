package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransaction is an append-only entry in the cash/bank treasury ledger,
// independent of inventory.
type CashTransaction struct {
	ID           uint            `gorm:"primaryKey"`
	Date         time.Time       `gorm:"not null"`
	Account      Account         `gorm:"type:varchar(4);not null;index"`
	Direction    Direction       `gorm:"type:varchar(3);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Counterparty *string
	Note         *string
	CreatedAt    time.Time
}
