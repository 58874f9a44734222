package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement is one entry in the audit ledger of physical stock changes.
// Rows are written only by document posting and bulk-deleted (by document
// reference) only by unposting — never updated.
type StockMovement struct {
	ID         uint `gorm:"primaryKey"`
	DocumentID uint `gorm:"not null;index"`
	ProductID  uint `gorm:"not null;index"`
	// Qty is signed: positive for "in", negative for "out".
	Qty decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	// Price is the unit price in effect: purchase price for receipts, sale
	// price for issues.
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Direction Direction       `gorm:"type:varchar(3);not null"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
