package repository

import (
	"context"

	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/model"

	"gorm.io/gorm"
)

// StockMovementRepository is the append-only writer for the stock audit
// ledger. Movements are created inside posting transactions and bulk-deleted
// by document reference only during unposting — there is no update path.
type StockMovementRepository interface {
	CreateTx(tx *gorm.DB, m *model.StockMovement) error
	DeleteByDocumentTx(tx *gorm.DB, documentID uint) error
	List(ctx context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error)
}

type stockMovementRepo struct{ db *gorm.DB }

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) CreateTx(tx *gorm.DB, m *model.StockMovement) error {
	return tx.Create(m).Error
}

func (r *stockMovementRepo) DeleteByDocumentTx(tx *gorm.DB, documentID uint) error {
	return tx.Where("document_id = ?", documentID).Delete(&model.StockMovement{}).Error
}

func (r *stockMovementRepo) List(ctx context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.StockMovement{}).Preload("Product")
	if filter.ProductID != 0 {
		q = q.Where("product_id = ?", filter.ProductID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	offset := (page - 1) * limit

	var movements []model.StockMovement
	err := q.Order("id DESC").Offset(offset).Limit(limit).Find(&movements).Error
	return movements, total, err
}
