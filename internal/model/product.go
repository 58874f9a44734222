package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product carries the running operational stock figures next to the catalog
// data. QtyOnHand and AvgCost are mutated exclusively by document posting and
// unposting — no handler or service writes them directly.
type Product struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"index;not null"`
	SKU     *string
	Unit    string `gorm:"not null;default:'pcs'"`
	Barcode *string
	// QtyOnHand may be fractional (kg, liters).
	QtyOnHand decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	// AvgCost is the weighted-average unit cost. Only meaningful while
	// QtyOnHand > 0; reset to 0 when a purchase reversal empties the stock.
	AvgCost   decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
