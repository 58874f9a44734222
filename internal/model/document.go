package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Document is a purchase or sale business document. Created in draft; posting
// applies its stock/cost effects and assigns the permanent Number; unposting
// reverses the effects and returns it to draft without clearing the Number.
type Document struct {
	ID     uint      `gorm:"primaryKey"`
	Type   DocType   `gorm:"type:varchar(10);not null;index"`
	Status DocStatus `gorm:"type:varchar(10);not null;default:'draft';index"`
	// Number is assigned at first posting and immutable afterwards.
	Number  *string   `gorm:"index"`
	Date    time.Time `gorm:"not null"`
	Partner *string   `gorm:"index"`
	// Total = Σ(qty*price) over lines, fixed at creation, never recomputed.
	Total decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// TotalCOGS and GrossProfit are filled for sales at posting time from the
	// average cost in effect, and zeroed again on unposting.
	TotalCOGS   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;column:total_cogs"`
	GrossProfit decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lines []DocumentLine `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// FormatNumber builds the external numbering contract: "<P|S>-<year>-<id:06>".
func (d *Document) FormatNumber() string {
	return fmt.Sprintf("%s-%04d-%06d", d.Type.NumberPrefix(), d.Date.Year(), d.ID)
}

// DocumentLine is owned by its document and removed with it (cascade).
type DocumentLine struct {
	ID         uint            `gorm:"primaryKey"`
	DocumentID uint            `gorm:"not null;index"`
	ProductID  uint            `gorm:"not null;index"`
	Qty        decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
