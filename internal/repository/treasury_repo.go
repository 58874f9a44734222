package repository

import (
	"context"

	"github.com/4supreme/business-application/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TreasuryRepository interface {
	Create(ctx context.Context, t *model.CashTransaction) error
	// SumByAccountDirection returns SUM(amount) grouped by (account, direction).
	SumByAccountDirection(ctx context.Context) (map[model.Account]map[model.Direction]decimal.Decimal, error)
	Recent(ctx context.Context, limit int) ([]model.CashTransaction, error)
}

type treasuryRepo struct{ db *gorm.DB }

func NewTreasuryRepository(db *gorm.DB) TreasuryRepository { return &treasuryRepo{db: db} }

func (r *treasuryRepo) Create(ctx context.Context, t *model.CashTransaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *treasuryRepo) SumByAccountDirection(ctx context.Context) (map[model.Account]map[model.Direction]decimal.Decimal, error) {
	var rows []struct {
		Account   model.Account
		Direction model.Direction
		Sum       decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.CashTransaction{}).
		Select("account, direction, COALESCE(SUM(amount), 0) AS sum").
		Group("account").Group("direction").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make(map[model.Account]map[model.Direction]decimal.Decimal)
	for _, row := range rows {
		if sums[row.Account] == nil {
			sums[row.Account] = make(map[model.Direction]decimal.Decimal)
		}
		sums[row.Account][row.Direction] = row.Sum
	}
	return sums, nil
}

func (r *treasuryRepo) Recent(ctx context.Context, limit int) ([]model.CashTransaction, error) {
	var txns []model.CashTransaction
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&txns).Error
	return txns, err
}
