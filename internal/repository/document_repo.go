package repository

import (
	"context"
	"time"

	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	// FindByID always eager-loads lines — callers never see a document
	// without its line items.
	FindByID(ctx context.Context, id uint) (*model.Document, error)
	List(ctx context.Context, filter dto.DocumentFilter) ([]model.Document, int64, error)
	Delete(ctx context.Context, id uint) error

	// Tx variants used by the posting engine. FindByIDTx locks the document
	// row so concurrent Post calls cannot both observe "draft".
	FindByIDTx(tx *gorm.DB, id uint) (*model.Document, error)
	UpdateTx(tx *gorm.DB, d *model.Document) error

	// RecentVendors returns the partners of the latest purchase documents,
	// most recent first.
	RecentVendors(ctx context.Context, limit int) ([]string, error)
	VendorHistory(ctx context.Context, vendor string, limit int) ([]VendorHistoryRow, error)

	DB() *gorm.DB
}

// VendorHistoryRow is the scan target for the vendor history join.
type VendorHistoryRow struct {
	Date        time.Time
	ProductName string
	Qty         decimal.Decimal
	Price       decimal.Decimal
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) DocumentRepository { return &documentRepo{db: db} }

func (r *documentRepo) DB() *gorm.DB { return r.db }

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *documentRepo) FindByID(ctx context.Context, id uint) (*model.Document, error) {
	var d model.Document
	err := r.db.WithContext(ctx).Preload("Lines.Product").First(&d, id).Error
	return &d, err
}

func (r *documentRepo) List(ctx context.Context, filter dto.DocumentFilter) ([]model.Document, int64, error) {
	var docs []model.Document
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Document{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Lines.Product").Order("id DESC").Limit(filter.Limit).Offset(offset).Find(&docs).Error
	return docs, total, err
}

func (r *documentRepo) Delete(ctx context.Context, id uint) error {
	// Lines go with the document via the FK cascade.
	return r.db.WithContext(ctx).Delete(&model.Document{}, id).Error
}

func (r *documentRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Document, error) {
	var d model.Document
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Lines").First(&d, id).Error
	return &d, err
}

func (r *documentRepo) UpdateTx(tx *gorm.DB, d *model.Document) error {
	return tx.Model(&model.Document{}).Where("id = ?", d.ID).Updates(map[string]interface{}{
		"status":       d.Status,
		"number":       d.Number,
		"total_cogs":   d.TotalCOGS,
		"gross_profit": d.GrossProfit,
	}).Error
}

func (r *documentRepo) RecentVendors(ctx context.Context, limit int) ([]string, error) {
	var vendors []string
	err := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("type = ? AND partner IS NOT NULL", model.DocTypePurchase).
		Group("partner").
		Order("MAX(date) DESC").
		Limit(limit).
		Pluck("partner", &vendors).Error
	return vendors, err
}

func (r *documentRepo) VendorHistory(ctx context.Context, vendor string, limit int) ([]VendorHistoryRow, error) {
	var rows []VendorHistoryRow
	err := r.db.WithContext(ctx).Model(&model.Document{}).
		Select("documents.date AS date, products.name AS product_name, document_lines.qty AS qty, document_lines.price AS price").
		Joins("JOIN document_lines ON document_lines.document_id = documents.id").
		Joins("JOIN products ON products.id = document_lines.product_id").
		Where("documents.type = ? AND documents.partner = ?", model.DocTypePurchase, vendor).
		Order("documents.date DESC, documents.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
